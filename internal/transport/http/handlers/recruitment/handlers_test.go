package recruitmenthandler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/recruitment"
	"hris/internal/transport/http/handlertest"
)

type fakeStore struct {
	recruitment.StoreAPI
	vacancies  map[int64]recruitment.Vacancy
	applicants map[int64]recruitment.Applicant
	nextID     int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{vacancies: map[int64]recruitment.Vacancy{}, applicants: map[int64]recruitment.Applicant{}}
}

func (f *fakeStore) CreateVacancy(_ context.Context, in recruitment.CreateVacancyInput) (recruitment.Vacancy, error) {
	f.nextID++
	v := recruitment.Vacancy{ID: f.nextID, Title: in.Title, Description: in.Description, DepartmentID: in.DepartmentID, Status: in.Status, PostedDate: in.PostedDate}
	f.vacancies[v.ID] = v
	return v, nil
}

func (f *fakeStore) GetVacancy(_ context.Context, id int64) (*recruitment.Vacancy, error) {
	v, ok := f.vacancies[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeStore) UpdateVacancy(_ context.Context, id int64, in recruitment.UpdateVacancyInput) (*recruitment.Vacancy, error) {
	v, ok := f.vacancies[id]
	if !ok {
		return nil, nil
	}
	if in.Status.Set {
		v.Status = in.Status.Value
	}
	f.vacancies[id] = v
	return &v, nil
}

func (f *fakeStore) DeleteVacancy(_ context.Context, id int64) (bool, error) {
	for _, a := range f.applicants {
		if a.JobVacancyID == id {
			return false, recruitment.ErrVacancyHasApplicants
		}
	}
	_, ok := f.vacancies[id]
	delete(f.vacancies, id)
	return ok, nil
}

func (f *fakeStore) DepartmentExists(_ context.Context, id int64) (bool, error) {
	return id == 1, nil
}

func (f *fakeStore) CreateApplicant(_ context.Context, in recruitment.CreateApplicantInput) (recruitment.Applicant, error) {
	f.nextID++
	a := recruitment.Applicant{ID: f.nextID, FullName: in.FullName, Email: in.Email, JobVacancyID: in.JobVacancyID, ApplicationDate: in.ApplicationDate, Status: in.Status}
	f.applicants[a.ID] = a
	return a, nil
}

func (f *fakeStore) ListVacancyStatuses(context.Context) ([]recruitment.VacancyStatus, error) {
	out := []recruitment.VacancyStatus{}
	for _, v := range f.vacancies {
		out = append(out, v.Status)
	}
	return out, nil
}

func (f *fakeStore) ListApplicantStatuses(context.Context) ([]recruitment.ApplicantStatus, error) {
	out := []recruitment.ApplicantStatus{}
	for _, a := range f.applicants {
		out = append(out, a.Status)
	}
	return out, nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeStore, *handlertest.Auditor) {
	store := newFakeStore()
	auditor := &handlertest.Auditor{}
	return NewHandler(recruitment.NewService(store, time.UTC), handlertest.Guard(t), auditor), store, auditor
}

func createVacancy(t *testing.T, h *Handler) recruitment.Vacancy {
	t.Helper()
	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/job-vacancies", map[string]any{
		"title":        "Backend Engineer",
		"description":  "Build payroll services",
		"departmentId": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var v recruitment.Vacancy
	handlertest.Data(t, rec, &v)
	return v
}

func TestCreateVacancyDefaultsOpenAndToday(t *testing.T) {
	h, _, _ := newTestHandler(t)

	v := createVacancy(t, h)
	assert.Equal(t, recruitment.VacancyOpen, v.Status)
	assert.False(t, v.PostedDate.IsZero())
}

func TestCreateVacancyUnknownDepartment(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/job-vacancies", map[string]any{
		"title": "Analyst", "description": "Numbers", "departmentId": 9,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVacancyWithApplicantsIsConstraintViolation(t *testing.T) {
	h, store, auditor := newTestHandler(t)
	v := createVacancy(t, h)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/applicants", map[string]any{
		"fullName": "Sam Lee", "email": "sam@example.com", "jobVacancyId": v.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = handlertest.Do(t, h, auth.RoleAdmin, http.MethodDelete, "/api/v1/job-vacancies/1", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "constraint_violation", handlertest.Decode(t, rec).Error.Code)
	assert.Len(t, store.vacancies, 1)
	assert.Empty(t, auditor.Entries)
}

func TestCloseVacancyRecordsAudit(t *testing.T) {
	h, _, auditor := newTestHandler(t)
	createVacancy(t, h)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/job-vacancies/1/close", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var v recruitment.Vacancy
	handlertest.Data(t, rec, &v)
	assert.Equal(t, recruitment.VacancyClosed, v.Status)
	assert.Equal(t, []string{audit.ActionVacancyClose}, auditor.Actions())

	rec = handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/job-vacancies/42/close", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplicantForMissingVacancy(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/applicants", map[string]any{
		"fullName": "Sam Lee", "email": "sam@example.com", "jobVacancyId": 5,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsZeroFillsStatuses(t *testing.T) {
	h, _, _ := newTestHandler(t)
	v := createVacancy(t, h)
	require.Equal(t, http.StatusCreated, handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/applicants", map[string]any{
		"fullName": "Sam Lee", "email": "sam@example.com", "jobVacancyId": v.ID,
	}).Code)

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodGet, "/api/v1/recruitment/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats recruitment.Stats
	handlertest.Data(t, rec, &stats)
	assert.Equal(t, 1, stats.TotalVacancies)
	assert.Equal(t, 1, stats.OpenVacancies)
	assert.Equal(t, 1, stats.TotalApplicants)
	assert.Len(t, stats.ApplicantsByStatus, 6)
	assert.Equal(t, 1, stats.ApplicantsByStatus["Applied"])
	assert.Equal(t, 0, stats.ApplicantsByStatus["Hired"])
}

func TestListApplicantsRejectsBadVacancyID(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/applicants?jobVacancyId=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
