package attendance

import (
	"context"
	"time"

	"hris/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const recordColumns = `id, employee_id, check_in_time, check_out_time, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.EmployeeID, &r.CheckInTime, &r.CheckOutTime, &r.CreatedAt)
	return r, err
}

func (s *Store) Create(ctx context.Context, in CheckInInput) (Record, error) {
	return scanRecord(s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, check_in_time, check_out_time)
    VALUES ($1, $2, $3)
    RETURNING `+recordColumns, in.EmployeeID, in.CheckInTime, in.CheckOutTime))
}

func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	r, err := scanRecord(s.DB.QueryRow(ctx, `SELECT `+recordColumns+` FROM attendance WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Update(ctx context.Context, id int64, in UpdateInput) (*Record, error) {
	var p querier.Patch
	if in.CheckInTime.Set {
		p.Set("check_in_time", in.CheckInTime.Value)
	}
	if in.CheckOutTime.Set {
		p.Set("check_out_time", in.CheckOutTime.Ptr())
	}
	if p.Empty() {
		return s.Get(ctx, id)
	}
	where := p.Arg(id)
	r, err := scanRecord(s.DB.QueryRow(ctx, `UPDATE attendance SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+recordColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.list(ctx, `
    SELECT `+recordColumns+`
    FROM attendance
    WHERE employee_id = $1
    ORDER BY check_in_time DESC, id DESC
  `, employeeID)
}

func (s *Store) ListBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error) {
	query := `
    SELECT ` + recordColumns + `
    FROM attendance
    WHERE check_in_time >= $1 AND check_in_time < $2`
	args := []any{from, to}
	if employeeID != "" {
		args = append(args, employeeID)
		query += ` AND employee_id = $3`
	}
	query += ` ORDER BY check_in_time DESC, id DESC`
	return s.list(ctx, query, args...)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
