package recruitment

import (
	"context"
	"strconv"
	"strings"

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

const vacancyColumns = `id, title, description, department_id, status, posted_date, created_at`

func scanVacancy(row scanner) (Vacancy, error) {
	var v Vacancy
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.DepartmentID, &v.Status, &v.PostedDate, &v.CreatedAt)
	return v, err
}

func (s *Store) CreateVacancy(ctx context.Context, in CreateVacancyInput) (Vacancy, error) {
	v, err := scanVacancy(s.DB.QueryRow(ctx, `
    INSERT INTO job_vacancies (title, description, department_id, status, posted_date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING `+vacancyColumns, in.Title, in.Description, in.DepartmentID, in.Status, in.PostedDate))
	if querier.IsForeignKeyViolation(err) {
		return Vacancy{}, ErrDepartmentNotFound
	}
	return v, err
}

func (s *Store) ListVacancies(ctx context.Context) ([]Vacancy, error) {
	return s.listVacancies(ctx, `SELECT `+vacancyColumns+` FROM job_vacancies ORDER BY posted_date DESC, id DESC`)
}

func (s *Store) ListVacanciesByStatus(ctx context.Context, status VacancyStatus) ([]Vacancy, error) {
	return s.listVacancies(ctx, `
    SELECT `+vacancyColumns+`
    FROM job_vacancies
    WHERE status = $1
    ORDER BY posted_date DESC, id DESC
  `, status)
}

func (s *Store) ListVacanciesByDepartment(ctx context.Context, departmentID int64) ([]Vacancy, error) {
	return s.listVacancies(ctx, `
    SELECT `+vacancyColumns+`
    FROM job_vacancies
    WHERE department_id = $1
    ORDER BY posted_date DESC, id DESC
  `, departmentID)
}

func (s *Store) listVacancies(ctx context.Context, query string, args ...any) ([]Vacancy, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Vacancy{}
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) GetVacancy(ctx context.Context, id int64) (*Vacancy, error) {
	v, err := scanVacancy(s.DB.QueryRow(ctx, `SELECT `+vacancyColumns+` FROM job_vacancies WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) UpdateVacancy(ctx context.Context, id int64, in UpdateVacancyInput) (*Vacancy, error) {
	var p querier.Patch
	if in.Title.Set {
		p.Set("title", in.Title.Value)
	}
	if in.Description.Set {
		p.Set("description", in.Description.Value)
	}
	if in.DepartmentID.Set {
		p.Set("department_id", in.DepartmentID.Ptr())
	}
	if in.Status.Set {
		p.Set("status", in.Status.Value)
	}
	if in.PostedDate.Set {
		p.Set("posted_date", in.PostedDate.Value)
	}
	if p.Empty() {
		return s.GetVacancy(ctx, id)
	}
	where := p.Arg(id)
	v, err := scanVacancy(s.DB.QueryRow(ctx, `UPDATE job_vacancies SET `+p.Clause()+` WHERE id = `+where+` RETURNING `+vacancyColumns, p.Args()...))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if querier.IsForeignKeyViolation(err) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) DeleteVacancy(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := querier.InTx(ctx, s.DB, func(tx querier.Querier) error {
		var applicants int
		if err := tx.QueryRow(ctx, `SELECT COUNT(1) FROM applicants WHERE job_vacancy_id = $1`, id).Scan(&applicants); err != nil {
			return err
		}
		if applicants > 0 {
			return ErrVacancyHasApplicants
		}
		tag, err := tx.Exec(ctx, `DELETE FROM job_vacancies WHERE id = $1`, id)
		if querier.IsForeignKeyViolation(err) {
			return ErrVacancyHasApplicants
		}
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	return deleted, err
}

func (s *Store) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

const applicantColumns = `id, full_name, email, phone_number, resume_url, job_vacancy_id, application_date, status, created_at`

func scanApplicant(row scanner) (Applicant, error) {
	var a Applicant
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.PhoneNumber, &a.ResumeURL, &a.JobVacancyID, &a.ApplicationDate, &a.Status, &a.CreatedAt)
	return a, err
}

func (s *Store) CreateApplicant(ctx context.Context, in CreateApplicantInput) (Applicant, error) {
	a, err := scanApplicant(s.DB.QueryRow(ctx, `
    INSERT INTO applicants (full_name, email, phone_number, resume_url, job_vacancy_id, application_date, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING `+applicantColumns,
		in.FullName, in.Email, in.PhoneNumber, in.ResumeURL, in.JobVacancyID, in.ApplicationDate, in.Status))
	if querier.IsForeignKeyViolation(err) {
		return Applicant{}, ErrVacancyNotFound
	}
	return a, err
}

func (s *Store) ListApplicants(ctx context.Context, filter ApplicantFilter) ([]Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE 1=1`
	var args []any
	if filter.JobVacancyID != 0 {
		args = append(args, filter.JobVacancyID)
		query += ` AND job_vacancy_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		pos := strconv.Itoa(len(args))
		query += ` AND (full_name ILIKE $` + pos + ` OR email ILIKE $` + pos + `)`
	}
	query += ` ORDER BY application_date DESC, id DESC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// escapeLike makes % and _ in user input match literally.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

func (s *Store) GetApplicant(ctx context.Context, id int64) (*Applicant, error) {
	a, err := scanApplicant(s.DB.QueryRow(ctx, `SELECT `+applicantColumns+` FROM applicants WHERE id = $1`, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) UpdateApplicantStatus(ctx context.Context, id int64, status ApplicantStatus) (*Applicant, error) {
	a, err := scanApplicant(s.DB.QueryRow(ctx, `
    UPDATE applicants
    SET status = $1
    WHERE id = $2
    RETURNING `+applicantColumns, status, id))
	if querier.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) DeleteApplicant(ctx context.Context, id int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListVacancyStatuses(ctx context.Context) ([]VacancyStatus, error) {
	rows, err := s.DB.Query(ctx, `SELECT status FROM job_vacancies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VacancyStatus
	for rows.Next() {
		var status VacancyStatus
		if err := rows.Scan(&status); err != nil {
			return nil, err
		}
		out = append(out, status)
	}
	return out, rows.Err()
}

func (s *Store) ListApplicantStatuses(ctx context.Context) ([]ApplicantStatus, error) {
	rows, err := s.DB.Query(ctx, `SELECT status FROM applicants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ApplicantStatus
	for rows.Next() {
		var status ApplicantStatus
		if err := rows.Scan(&status); err != nil {
			return nil, err
		}
		out = append(out, status)
	}
	return out, rows.Err()
}
