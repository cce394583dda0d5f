package employee

import (
	"context"

	"hris/internal/platform/querier"
)

const departmentColumns = `id, name, description, created_at`

func scanDepartment(row scanner) (Department, error) {
	var d Department
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt)
	return d, err
}

func (s *Store) CreateDepartment(ctx context.Context, in CreateDepartmentInput) (Department, error) {
	d, err := scanDepartment(s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, description)
    VALUES ($1, $2)
    RETURNING `+departmentColumns, in.Name, in.Description))
	if querier.IsUniqueViolation(err) {
		return Department{}, ErrDepartmentNameTaken
	}
	return d, err
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	d, err := scanDepartment(s.DB.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, in UpdateDepartmentInput) (*Department, error) {
	var p querier.Patch
	if in.Name.Set {
		p.Set("name", in.Name.Value)
	}
	if in.Description.Set {
		p.Set("description", in.Description.Ptr())
	}
	if p.Empty() {
		return s.GetDepartment(ctx, id)
	}
	where := p.Arg(id)
	d, err := scanDepartment(s.DB.QueryRow(ctx, `UPDATE departments SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+departmentColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if querier.IsUniqueViolation(err) {
		return nil, ErrDepartmentNameTaken
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if querier.IsForeignKeyViolation(err) {
		return false, ErrDepartmentInUse
	}
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
