package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	Create(ctx context.Context, in CheckInInput) (Record, error)
	Get(ctx context.Context, id int64) (*Record, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	// ListBetween returns rows with from <= check_in_time < to, optionally for one employee.
	ListBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}

// EmployeeLookup is satisfied by employee.Service.
type EmployeeLookup interface {
	RequireEmployee(ctx context.Context, employeeID string) error
}
