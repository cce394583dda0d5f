package leave

import "context"

type StoreAPI interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error)
	ListRequests(ctx context.Context) ([]Request, error)
	ListRequestsByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListRequestsByStatus(ctx context.Context, status Status) ([]Request, error)
	GetRequest(ctx context.Context, id int64) (*Request, error)
	// SetRequestStatus only updates a row still in status from; it returns nil otherwise.
	SetRequestStatus(ctx context.Context, id int64, from, to Status) (*Request, error)
	DeleteRequest(ctx context.Context, id int64) (bool, error)

	CreateBalance(ctx context.Context, in CreateBalanceInput) (Balance, error)
	GetBalance(ctx context.Context, employeeID string) (*Balance, error)
	// LockBalance reads the row with FOR UPDATE inside a transaction.
	LockBalance(ctx context.Context, employeeID string) (*Balance, error)
	SetBalanceCounter(ctx context.Context, employeeID string, counter Counter, value int) (Balance, error)

	WithTx(ctx context.Context, fn func(StoreAPI) error) error
}
