package payroll

import (
	"context"

	"hris/internal/platform/querier"
)

const componentColumns = `id, name, type, amount, created_at`

func scanComponent(row scanner) (Component, error) {
	var c Component
	err := row.Scan(&c.ID, &c.Name, &c.Type, &c.Amount, &c.CreatedAt)
	return c, err
}

func (s *Store) CreateComponent(ctx context.Context, in CreateComponentInput) (Component, error) {
	c, err := scanComponent(s.DB.QueryRow(ctx, `
    INSERT INTO payroll_components (name, type, amount)
    VALUES ($1, $2, $3)
    RETURNING `+componentColumns, in.Name, in.Type, in.Amount))
	if querier.IsUniqueViolation(err) {
		return Component{}, ErrComponentNameTaken
	}
	return c, err
}

func (s *Store) ListComponents(ctx context.Context) ([]Component, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+componentColumns+` FROM payroll_components ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Component{}
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetComponent(ctx context.Context, id int64) (*Component, error) {
	c, err := scanComponent(s.DB.QueryRow(ctx, `SELECT `+componentColumns+` FROM payroll_components WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateComponent(ctx context.Context, id int64, in UpdateComponentInput) (*Component, error) {
	var p querier.Patch
	if in.Name.Set {
		p.Set("name", in.Name.Value)
	}
	if in.Type.Set {
		p.Set("type", in.Type.Value)
	}
	if in.Amount.Set {
		p.Set("amount", in.Amount.Value)
	}
	if p.Empty() {
		return s.GetComponent(ctx, id)
	}
	where := p.Arg(id)
	c, err := scanComponent(s.DB.QueryRow(ctx, `UPDATE payroll_components SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+componentColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if querier.IsUniqueViolation(err) {
		return nil, ErrComponentNameTaken
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) DeleteComponent(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM payroll_components WHERE id = $1`, id)
	if querier.IsForeignKeyViolation(err) {
		return false, ErrComponentInUse
	}
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const salaryLineColumns = `id, employee_id, component_id, amount, created_at`

func scanSalaryLine(row scanner) (SalaryLine, error) {
	var l SalaryLine
	err := row.Scan(&l.ID, &l.EmployeeID, &l.ComponentID, &l.Amount, &l.CreatedAt)
	return l, err
}

func (s *Store) CreateSalaryLine(ctx context.Context, in CreateSalaryLineInput) (SalaryLine, error) {
	l, err := scanSalaryLine(s.DB.QueryRow(ctx, `
    INSERT INTO employee_salary_structure (employee_id, component_id, amount)
    VALUES ($1, $2, $3)
    RETURNING `+salaryLineColumns, in.EmployeeID, in.ComponentID, in.Amount))
	if querier.IsForeignKeyViolation(err) {
		return SalaryLine{}, ErrComponentNotFound
	}
	return l, err
}

func (s *Store) ListSalaryLines(ctx context.Context, employeeID string) ([]SalaryLine, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+salaryLineColumns+`
    FROM employee_salary_structure
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SalaryLine{}
	for rows.Next() {
		l, err := scanSalaryLine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) UpdateSalaryLineAmount(ctx context.Context, id int64, amount float64) (*SalaryLine, error) {
	l, err := scanSalaryLine(s.DB.QueryRow(ctx, `
    UPDATE employee_salary_structure
    SET amount = $1
    WHERE id = $2
    RETURNING `+salaryLineColumns, amount, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) DeleteSalaryLine(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM employee_salary_structure WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListStructureLines(ctx context.Context, employeeID string) ([]StructureLine, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT c.name, c.type, s.amount
    FROM employee_salary_structure s
    JOIN payroll_components c ON c.id = s.component_id
    WHERE s.employee_id = $1
    ORDER BY c.type, c.name
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StructureLine
	for rows.Next() {
		var l StructureLine
		if err := rows.Scan(&l.ComponentName, &l.Type, &l.Amount); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
