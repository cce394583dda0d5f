package payroll

import (
	"context"
	"time"

	"hris/internal/platform/querier"
)

const payslipColumns = `id, employee_id, pay_period_start, pay_period_end, gross_salary, total_allowances,
    total_deductions, net_salary, created_at`

func scanPayslip(row scanner) (Payslip, error) {
	var p Payslip
	err := row.Scan(&p.ID, &p.EmployeeID, &p.PayPeriodStart, &p.PayPeriodEnd, &p.GrossSalary, &p.TotalAllowances,
		&p.TotalDeductions, &p.NetSalary, &p.CreatedAt)
	return p, err
}

func (s *Store) CreatePayslip(ctx context.Context, in CreatePayslipInput) (Payslip, error) {
	p, err := scanPayslip(s.DB.QueryRow(ctx, `
    INSERT INTO payslips (employee_id, pay_period_start, pay_period_end, gross_salary, total_allowances, total_deductions, net_salary)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING `+payslipColumns,
		in.EmployeeID, in.PayPeriodStart, in.PayPeriodEnd, in.GrossSalary, in.TotalAllowances, in.TotalDeductions, in.NetSalary))
	if querier.IsUniqueViolation(err) {
		return Payslip{}, ErrPayslipExists
	}
	return p, err
}

func (s *Store) InsertPayslipIfAbsent(ctx context.Context, in CreatePayslipInput) (Payslip, bool, error) {
	p, err := scanPayslip(s.DB.QueryRow(ctx, `
    INSERT INTO payslips (employee_id, pay_period_start, pay_period_end, gross_salary, total_allowances, total_deductions, net_salary)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (employee_id, pay_period_start, pay_period_end) DO NOTHING
    RETURNING `+payslipColumns,
		in.EmployeeID, in.PayPeriodStart, in.PayPeriodEnd, in.GrossSalary, in.TotalAllowances, in.TotalDeductions, in.NetSalary))
	if err == nil {
		return p, true, nil
	}
	if !querier.IsNoRows(err) {
		return Payslip{}, false, err
	}
	existing, err := s.FindPayslip(ctx, in.EmployeeID, in.PayPeriodStart, in.PayPeriodEnd)
	if err != nil {
		return Payslip{}, false, err
	}
	if existing == nil {
		return Payslip{}, false, ErrPayslipNotFound
	}
	return *existing, false, nil
}

func (s *Store) FindPayslip(ctx context.Context, employeeID string, start, end time.Time) (*Payslip, error) {
	return s.getPayslip(ctx, `
    SELECT `+payslipColumns+`
    FROM payslips
    WHERE employee_id = $1 AND pay_period_start = $2 AND pay_period_end = $3
  `, employeeID, start, end)
}

func (s *Store) GetPayslip(ctx context.Context, id int64) (*Payslip, error) {
	return s.getPayslip(ctx, `SELECT `+payslipColumns+` FROM payslips WHERE id = $1`, id)
}

func (s *Store) getPayslip(ctx context.Context, query string, args ...any) (*Payslip, error) {
	p, err := scanPayslip(s.DB.QueryRow(ctx, query, args...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPayslips(ctx context.Context) ([]Payslip, error) {
	return s.listPayslips(ctx, `SELECT `+payslipColumns+` FROM payslips ORDER BY pay_period_end DESC, id DESC`)
}

func (s *Store) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	return s.listPayslips(ctx, `
    SELECT `+payslipColumns+`
    FROM payslips
    WHERE employee_id = $1
    ORDER BY pay_period_end DESC, id DESC
  `, employeeID)
}

func (s *Store) listPayslips(ctx context.Context, query string, args ...any) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Payslip{}
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) ListActiveEmployeeIDs(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id
    FROM employees
    WHERE employment_status = 'Active'
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
