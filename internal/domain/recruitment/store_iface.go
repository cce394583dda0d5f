package recruitment

import "context"

type StoreAPI interface {
	CreateVacancy(ctx context.Context, in CreateVacancyInput) (Vacancy, error)
	ListVacancies(ctx context.Context) ([]Vacancy, error)
	ListVacanciesByStatus(ctx context.Context, status VacancyStatus) ([]Vacancy, error)
	ListVacanciesByDepartment(ctx context.Context, departmentID int64) ([]Vacancy, error)
	GetVacancy(ctx context.Context, id int64) (*Vacancy, error)
	UpdateVacancy(ctx context.Context, id int64, in UpdateVacancyInput) (*Vacancy, error)
	// DeleteVacancy fails with ErrVacancyHasApplicants and deletes nothing while applicants reference it.
	DeleteVacancy(ctx context.Context, id int64) (bool, error)
	DepartmentExists(ctx context.Context, id int64) (bool, error)

	CreateApplicant(ctx context.Context, in CreateApplicantInput) (Applicant, error)
	ListApplicants(ctx context.Context, filter ApplicantFilter) ([]Applicant, error)
	GetApplicant(ctx context.Context, id int64) (*Applicant, error)
	UpdateApplicantStatus(ctx context.Context, id int64, status ApplicantStatus) (*Applicant, error)
	DeleteApplicant(ctx context.Context, id int64) (bool, error)

	ListVacancyStatuses(ctx context.Context) ([]VacancyStatus, error)
	ListApplicantStatuses(ctx context.Context) ([]ApplicantStatus, error)
}

// ApplicantFilter fields are combined with AND; zero values are ignored.
type ApplicantFilter struct {
	JobVacancyID int64
	Status       ApplicantStatus
	Search       string
}
