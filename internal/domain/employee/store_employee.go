package employee

import (
	"context"
	"strings"

	"hris/internal/platform/querier"
)

const employeeColumns = `id, full_name, employee_id, date_of_birth, gender, marital_status, address, phone_number,
    email, position, department, manager_id, start_date, employment_status, bank_name, bank_account_number,
    role, status_changed_at, created_at`

func scanEmployee(row scanner) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.EmployeeID, &e.DateOfBirth, &e.Gender, &e.MaritalStatus, &e.Address, &e.PhoneNumber,
		&e.Email, &e.Position, &e.Department, &e.ManagerID, &e.StartDate, &e.EmploymentStatus, &e.BankName, &e.BankAccountNumber,
		&e.Role, &e.StatusChangedAt, &e.CreatedAt,
	)
	return e, err
}

func conflictFor(err error) error {
	if !querier.IsUniqueViolation(err) {
		return err
	}
	if strings.Contains(querier.ConstraintName(err), "email") {
		return ErrEmailTaken
	}
	return ErrEmployeeIDTaken
}

func (s *Store) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `
    INSERT INTO employees (full_name, employee_id, date_of_birth, gender, marital_status, address, phone_number,
      email, position, department, manager_id, start_date, employment_status, bank_name, bank_account_number, role)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
    RETURNING `+employeeColumns,
		in.FullName, in.EmployeeID, in.DateOfBirth, in.Gender, in.MaritalStatus, in.Address, in.PhoneNumber,
		in.Email, in.Position, in.Department, in.ManagerID, in.StartDate, in.EmploymentStatus, in.BankName, in.BankAccountNumber, in.Role,
	))
	if err != nil {
		return Employee{}, conflictFor(err)
	}
	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, employeeID))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, in UpdateEmployeeInput) (*Employee, error) {
	var p querier.Patch
	if in.FullName.Set {
		p.Set("full_name", in.FullName.Value)
	}
	if in.EmployeeID.Set {
		p.Set("employee_id", in.EmployeeID.Value)
	}
	if in.DateOfBirth.Set {
		p.Set("date_of_birth", in.DateOfBirth.Value)
	}
	if in.Gender.Set {
		p.Set("gender", in.Gender.Value)
	}
	if in.MaritalStatus.Set {
		p.Set("marital_status", in.MaritalStatus.Value)
	}
	if in.Address.Set {
		p.Set("address", in.Address.Ptr())
	}
	if in.PhoneNumber.Set {
		p.Set("phone_number", in.PhoneNumber.Ptr())
	}
	if in.Email.Set {
		p.Set("email", in.Email.Value)
	}
	if in.Position.Set {
		p.Set("position", in.Position.Ptr())
	}
	if in.Department.Set {
		p.Set("department", in.Department.Ptr())
	}
	if in.ManagerID.Set {
		p.Set("manager_id", in.ManagerID.Ptr())
	}
	if in.StartDate.Set {
		p.Set("start_date", in.StartDate.Value)
	}
	if in.EmploymentStatus.Set {
		status := p.Arg(string(in.EmploymentStatus.Value))
		p.SetRaw("status_changed_at", "CASE WHEN employment_status <> "+status+" THEN now() ELSE status_changed_at END")
		p.SetRaw("employment_status", status)
	}
	if in.BankName.Set {
		p.Set("bank_name", in.BankName.Ptr())
	}
	if in.BankAccountNumber.Set {
		p.Set("bank_account_number", in.BankAccountNumber.Ptr())
	}
	if in.Role.Set {
		p.Set("role", in.Role.Value)
	}
	if p.Empty() {
		return s.GetEmployee(ctx, id)
	}

	where := p.Arg(id)
	e, err := scanEmployee(s.DB.QueryRow(ctx, `UPDATE employees SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+employeeColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, conflictFor(err)
	}
	return &e, nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
