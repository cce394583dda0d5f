package dashboard

import (
	"context"
	"strconv"
	"time"

	"hris/internal/domain/leave"
	"hris/internal/domain/payroll"
	"hris/internal/domain/performance"
	"hris/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// employeeFilter scopes a query to employeeIDs when it is non-nil.
func employeeFilter(column string, employeeIDs []string, args []any) (string, []any) {
	if employeeIDs == nil {
		return "", args
	}
	args = append(args, employeeIDs)
	return ` AND ` + column + ` = ANY($` + strconv.Itoa(len(args)) + `)`, args
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.DB.QueryRow(ctx, `
    SELECT
      (SELECT COUNT(*) FROM employees),
      (SELECT COUNT(*) FROM employees WHERE employment_status = 'Active'),
      (SELECT COUNT(*) FROM employees WHERE employment_status = 'On Leave'),
      (SELECT COUNT(*) FROM departments),
      (SELECT COUNT(*) FROM leave_requests WHERE status = 'Pending'),
      (SELECT COUNT(*) FROM job_vacancies WHERE status = 'Open'),
      (SELECT COUNT(*) FROM applicants)
  `).Scan(&c.TotalEmployees, &c.ActiveEmployees, &c.EmployeesOnLeave, &c.TotalDepartments,
		&c.PendingLeaveRequests, &c.OpenVacancies, &c.TotalApplicants)
	return c, err
}

func (s *Store) CountCheckIns(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(*) FROM attendance WHERE check_in_time >= $1 AND check_in_time < $2
  `, from, to).Scan(&n)
	return n, err
}

func (s *Store) ListCheckIns(ctx context.Context, employeeIDs []string, from, to time.Time) ([]CheckIn, error) {
	filter, args := employeeFilter("employee_id", employeeIDs, []any{from, to})
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, check_in_time, check_out_time
    FROM attendance
    WHERE check_in_time >= $1 AND check_in_time < $2`+filter+`
    ORDER BY check_in_time DESC, id DESC
  `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CheckIn{}
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(&c.EmployeeID, &c.CheckInTime, &c.CheckOutTime); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListOpenGoals returns dated goals that are not Completed; IsOverdue decides the rest.
func (s *Store) ListOpenGoals(ctx context.Context, employeeIDs []string) ([]performance.Goal, error) {
	filter, args := employeeFilter("employee_id", employeeIDs, nil)
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, title, due_date, status
    FROM performance_goals
    WHERE due_date IS NOT NULL AND status <> 'Completed'`+filter, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []performance.Goal{}
	for rows.Next() {
		var g performance.Goal
		if err := rows.Scan(&g.ID, &g.EmployeeID, &g.Title, &g.DueDate, &g.Status); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) ListRatings(ctx context.Context, employeeIDs []string) ([]int, error) {
	filter, args := employeeFilter("employee_id", employeeIDs, nil)
	rows, err := s.DB.Query(ctx, `SELECT overall_rating FROM performance_reviews WHERE TRUE`+filter, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var r int
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) CountGoalsByStatus(ctx context.Context, employeeID string) (map[performance.GoalStatus]int, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT status, COUNT(*) FROM performance_goals WHERE employee_id = $1 GROUP BY status
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[performance.GoalStatus]int{}
	for rows.Next() {
		var status performance.GoalStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (s *Store) PendingLeaveByEmployee(ctx context.Context, employeeIDs []string) (map[string]int, error) {
	filter, args := employeeFilter("employee_id", employeeIDs, nil)
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, COUNT(*)
    FROM leave_requests
    WHERE status = 'Pending'`+filter+`
    GROUP BY employee_id
  `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

const personColumns = `employee_id, full_name, position, department, gender, date_of_birth, start_date, employment_status, status_changed_at`

func scanPerson(row scanner) (Person, error) {
	var p Person
	err := row.Scan(&p.EmployeeID, &p.FullName, &p.Position, &p.Department, &p.Gender,
		&p.DateOfBirth, &p.StartDate, &p.EmploymentStatus, &p.StatusChangedAt)
	return p, err
}

func (s *Store) GetPerson(ctx context.Context, employeeID string) (*Person, error) {
	p, err := scanPerson(s.DB.QueryRow(ctx, `SELECT `+personColumns+` FROM employees WHERE employee_id = $1`, employeeID))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPeople(ctx context.Context) ([]Person, error) {
	return s.listPeople(ctx, `SELECT `+personColumns+` FROM employees ORDER BY employee_id`)
}

func (s *Store) ListActivePeople(ctx context.Context) ([]Person, error) {
	return s.listPeople(ctx, `SELECT `+personColumns+` FROM employees WHERE employment_status = 'Active' ORDER BY employee_id`)
}

func (s *Store) ListDirectReports(ctx context.Context, managerID string) ([]Person, error) {
	return s.listPeople(ctx, `SELECT `+personColumns+` FROM employees WHERE manager_id = $1 ORDER BY full_name, employee_id`, managerID)
}

func (s *Store) listPeople(ctx context.Context, query string, args ...any) ([]Person, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetLeaveBalance(ctx context.Context, employeeID string) (*leave.Balance, error) {
	var b leave.Balance
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, annual_leave_balance, sick_leave_balance, personal_leave_balance, created_at
    FROM leave_balances WHERE employee_id = $1
  `, employeeID).Scan(&b.ID, &b.EmployeeID, &b.AnnualLeaveBalance, &b.SickLeaveBalance, &b.PersonalLeaveBalance, &b.CreatedAt)
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) LatestPayslip(ctx context.Context, employeeID string) (*payroll.Payslip, error) {
	var p payroll.Payslip
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, pay_period_start, pay_period_end, gross_salary, total_allowances,
      total_deductions, net_salary, created_at
    FROM payslips
    WHERE employee_id = $1
    ORDER BY pay_period_end DESC, id DESC
    LIMIT 1
  `, employeeID).Scan(&p.ID, &p.EmployeeID, &p.PayPeriodStart, &p.PayPeriodEnd, &p.GrossSalary,
		&p.TotalAllowances, &p.TotalDeductions, &p.NetSalary, &p.CreatedAt)
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPayslipRows returns payslips wholly inside [start, end] with the employee's current department label.
func (s *Store) ListPayslipRows(ctx context.Context, start, end time.Time) ([]PayslipRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.employee_id, e.department, p.gross_salary, p.total_allowances,
      p.total_deductions, p.net_salary
    FROM payslips p
    LEFT JOIN employees e ON e.employee_id = p.employee_id
    WHERE p.pay_period_start >= $1 AND p.pay_period_end <= $2
    ORDER BY p.id
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PayslipRow{}
	for rows.Next() {
		var r PayslipRow
		if err := rows.Scan(&r.EmployeeID, &r.Department, &r.GrossSalary, &r.TotalAllowances, &r.TotalDeductions, &r.NetSalary); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
