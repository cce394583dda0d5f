package recruitment

import (
	"context"
	"strings"
	"time"

	"hris/internal/platform/calendar"
	"hris/internal/platform/optional"
)

type Service struct {
	store StoreAPI
	loc   *time.Location
	now   func() time.Time
}

func NewService(store StoreAPI, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, loc: loc, now: time.Now}
}

func (s *Service) today() time.Time {
	return calendar.DateOf(s.now(), s.loc)
}

func (s *Service) CreateVacancy(ctx context.Context, in CreateVacancyInput) (Vacancy, error) {
	if in.Status == "" {
		in.Status = VacancyOpen
	}
	if in.PostedDate.IsZero() {
		in.PostedDate = s.today()
	}
	if !in.Status.Valid() {
		return Vacancy{}, ErrInvalidVacancyStatus
	}
	if in.DepartmentID != nil {
		if err := s.requireDepartment(ctx, *in.DepartmentID); err != nil {
			return Vacancy{}, err
		}
	}
	return s.store.CreateVacancy(ctx, in)
}

func (s *Service) ListVacancies(ctx context.Context) ([]Vacancy, error) {
	return s.store.ListVacancies(ctx)
}

func (s *Service) ListOpenVacancies(ctx context.Context) ([]Vacancy, error) {
	return s.store.ListVacanciesByStatus(ctx, VacancyOpen)
}

func (s *Service) ListVacanciesByDepartment(ctx context.Context, departmentID int64) ([]Vacancy, error) {
	return s.store.ListVacanciesByDepartment(ctx, departmentID)
}

func (s *Service) GetVacancy(ctx context.Context, id int64) (*Vacancy, error) {
	return s.store.GetVacancy(ctx, id)
}

func (s *Service) UpdateVacancy(ctx context.Context, id int64, in UpdateVacancyInput) (Vacancy, error) {
	if in.Status.Set && !in.Status.Value.Valid() {
		return Vacancy{}, ErrInvalidVacancyStatus
	}
	if dept := in.DepartmentID.Ptr(); dept != nil {
		if err := s.requireDepartment(ctx, *dept); err != nil {
			return Vacancy{}, err
		}
	}
	updated, err := s.store.UpdateVacancy(ctx, id, in)
	if err != nil {
		return Vacancy{}, err
	}
	if updated == nil {
		return Vacancy{}, ErrVacancyNotFound
	}
	return *updated, nil
}

func (s *Service) CloseVacancy(ctx context.Context, id int64) (Vacancy, error) {
	return s.UpdateVacancy(ctx, id, UpdateVacancyInput{Status: optional.Of(VacancyClosed)})
}

func (s *Service) DeleteVacancy(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteVacancy(ctx, id)
}

func (s *Service) CreateApplicant(ctx context.Context, in CreateApplicantInput) (Applicant, error) {
	if in.Status == "" {
		in.Status = ApplicantApplied
	}
	if in.ApplicationDate.IsZero() {
		in.ApplicationDate = s.today()
	}
	if !in.Status.Valid() {
		return Applicant{}, ErrInvalidApplicantStatus
	}
	vacancy, err := s.store.GetVacancy(ctx, in.JobVacancyID)
	if err != nil {
		return Applicant{}, err
	}
	if vacancy == nil {
		return Applicant{}, ErrVacancyNotFound
	}
	in.Email = strings.TrimSpace(in.Email)
	return s.store.CreateApplicant(ctx, in)
}

func (s *Service) ListApplicants(ctx context.Context, filter ApplicantFilter) ([]Applicant, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidApplicantStatus
	}
	return s.store.ListApplicants(ctx, filter)
}

func (s *Service) GetApplicant(ctx context.Context, id int64) (*Applicant, error) {
	return s.store.GetApplicant(ctx, id)
}

func (s *Service) UpdateApplicantStatus(ctx context.Context, id int64, status ApplicantStatus) (Applicant, error) {
	if !status.Valid() {
		return Applicant{}, ErrInvalidApplicantStatus
	}
	updated, err := s.store.UpdateApplicantStatus(ctx, id, status)
	if err != nil {
		return Applicant{}, err
	}
	if updated == nil {
		return Applicant{}, ErrApplicantNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteApplicant(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteApplicant(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	vacancies, err := s.store.ListVacancyStatuses(ctx)
	if err != nil {
		return Stats{}, err
	}
	applicants, err := s.store.ListApplicantStatuses(ctx)
	if err != nil {
		return Stats{}, err
	}
	return BuildStats(vacancies, applicants), nil
}

func (s *Service) requireDepartment(ctx context.Context, id int64) error {
	ok, err := s.store.DepartmentExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDepartmentNotFound
	}
	return nil
}
