package leave

import (
	"context"

	"hris/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) WithTx(ctx context.Context, fn func(StoreAPI) error) error {
	return querier.InTx(ctx, s.DB, func(tx querier.Querier) error {
		return fn(&Store{DB: tx})
	})
}

type scanner interface {
	Scan(dest ...any) error
}

const requestColumns = `id, employee_id, leave_type, start_date, end_date, reason, status, created_at`

func scanRequest(row scanner) (Request, error) {
	var r Request
	err := row.Scan(&r.ID, &r.EmployeeID, &r.LeaveType, &r.StartDate, &r.EndDate, &r.Reason, &r.Status, &r.CreatedAt)
	return r, err
}

func (s *Store) CreateRequest(ctx context.Context, in CreateRequestInput) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
    VALUES ($1, $2, $3, $4, $5, 'Pending')
    RETURNING `+requestColumns, in.EmployeeID, in.LeaveType, in.StartDate, in.EndDate, in.Reason))
}

func (s *Store) ListRequests(ctx context.Context) ([]Request, error) {
	return s.listRequests(ctx, `SELECT `+requestColumns+` FROM leave_requests ORDER BY created_at DESC, id DESC`)
}

func (s *Store) ListRequestsByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.listRequests(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1
    ORDER BY start_date DESC, id DESC
  `, employeeID)
}

func (s *Store) ListRequestsByStatus(ctx context.Context, status Status) ([]Request, error) {
	return s.listRequests(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE status = $1
    ORDER BY created_at DESC, id DESC
  `, status)
}

func (s *Store) listRequests(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetRequest(ctx context.Context, id int64) (*Request, error) {
	r, err := scanRequest(s.DB.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) SetRequestStatus(ctx context.Context, id int64, from, to Status) (*Request, error) {
	r, err := scanRequest(s.DB.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $1
    WHERE id = $2 AND status = $3
    RETURNING `+requestColumns, to, id, from))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) DeleteRequest(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const balanceColumns = `id, employee_id, annual_leave_balance, sick_leave_balance, personal_leave_balance, created_at`

func scanBalance(row scanner) (Balance, error) {
	var b Balance
	err := row.Scan(&b.ID, &b.EmployeeID, &b.AnnualLeaveBalance, &b.SickLeaveBalance, &b.PersonalLeaveBalance, &b.CreatedAt)
	return b, err
}

func (s *Store) CreateBalance(ctx context.Context, in CreateBalanceInput) (Balance, error) {
	b, err := scanBalance(s.DB.QueryRow(ctx, `
    INSERT INTO leave_balances (employee_id, annual_leave_balance, sick_leave_balance, personal_leave_balance)
    VALUES ($1, $2, $3, $4)
    RETURNING `+balanceColumns, in.EmployeeID, in.AnnualLeaveBalance, in.SickLeaveBalance, in.PersonalLeaveBalance))
	if querier.IsUniqueViolation(err) {
		return Balance{}, ErrBalanceExists
	}
	return b, err
}

func (s *Store) GetBalance(ctx context.Context, employeeID string) (*Balance, error) {
	return s.getBalance(ctx, `SELECT `+balanceColumns+` FROM leave_balances WHERE employee_id = $1`, employeeID)
}

func (s *Store) LockBalance(ctx context.Context, employeeID string) (*Balance, error) {
	return s.getBalance(ctx, `SELECT `+balanceColumns+` FROM leave_balances WHERE employee_id = $1 FOR UPDATE`, employeeID)
}

func (s *Store) getBalance(ctx context.Context, query, employeeID string) (*Balance, error) {
	b, err := scanBalance(s.DB.QueryRow(ctx, query, employeeID))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) SetBalanceCounter(ctx context.Context, employeeID string, counter Counter, value int) (Balance, error) {
	column := counter.column()
	if column == "" {
		return Balance{}, ErrInvalidLeaveType
	}
	b, err := scanBalance(s.DB.QueryRow(ctx, `
    UPDATE leave_balances
    SET `+column+` = $1
    WHERE employee_id = $2
    RETURNING `+balanceColumns, value, employeeID))
	if querier.IsNoRows(err) {
		return Balance{}, ErrBalanceNotFound
	}
	return b, err
}
