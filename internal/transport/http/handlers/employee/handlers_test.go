package employeehandler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/employee"
	"hris/internal/transport/http/handlertest"
)

type fakeStore struct {
	employee.StoreAPI
	employees map[int64]employee.Employee
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: map[int64]employee.Employee{}}
}

func (f *fakeStore) CreateEmployee(_ context.Context, in employee.CreateEmployeeInput) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeID == in.EmployeeID {
			return employee.Employee{}, employee.ErrEmployeeIDTaken
		}
	}
	f.nextID++
	e := employee.Employee{
		ID: f.nextID, FullName: in.FullName, EmployeeID: in.EmployeeID, Email: in.Email,
		DateOfBirth: in.DateOfBirth, StartDate: in.StartDate, Gender: in.Gender,
		MaritalStatus: in.MaritalStatus, EmploymentStatus: in.EmploymentStatus, Role: in.Role,
		CreatedAt: time.Now(),
	}
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeStore) GetEmployee(_ context.Context, id int64) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeStore) GetEmployeeByEmployeeID(_ context.Context, employeeID string) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteEmployee(_ context.Context, id int64) (bool, error) {
	if _, ok := f.employees[id]; !ok {
		return false, nil
	}
	delete(f.employees, id)
	return true, nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeStore, *handlertest.Auditor) {
	store := newFakeStore()
	auditor := &handlertest.Auditor{}
	return NewHandler(employee.NewService(store), handlertest.Guard(t), auditor), store, auditor
}

func validEmployeePayload() map[string]any {
	return map[string]any{
		"fullName":      "Jane Doe",
		"employeeId":    "EMP001",
		"dateOfBirth":   "1990-04-12",
		"gender":        "Female",
		"maritalStatus": "Single",
		"email":         "jane@example.com",
		"startDate":     "2022-01-10",
	}
}

func TestCreateEmployeeAppliesDefaults(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/employees", validEmployeePayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got employee.Employee
	handlertest.Data(t, rec, &got)
	assert.Equal(t, "EMP001", got.EmployeeID)
	assert.Equal(t, employee.StatusActive, got.EmploymentStatus)
	assert.Equal(t, employee.RoleEmployee, got.Role)
	assert.Equal(t, time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC), got.DateOfBirth.UTC())
}

func TestCreateEmployeeReportsFieldIssues(t *testing.T) {
	h, _, _ := newTestHandler(t)
	payload := validEmployeePayload()
	payload["email"] = "nope"
	payload["gender"] = "female"
	delete(payload, "startDate")

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/employees", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := handlertest.Decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
	details := string(env.Error.Details)
	for _, field := range []string{"email", "gender", "startDate"} {
		assert.True(t, strings.Contains(details, `"`+field+`"`), "missing issue for %s in %s", field, details)
	}
}

func TestCreateEmployeeDuplicateIsConflict(t *testing.T) {
	h, _, _ := newTestHandler(t)
	require.Equal(t, http.StatusCreated, handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/employees", validEmployeePayload()).Code)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/employees", validEmployeePayload())
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", handlertest.Decode(t, rec).Error.Code)
}

func TestGetMissingEmployeeReturnsNullData(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodGet, "/api/v1/employees/99", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(handlertest.Decode(t, rec).Data))

	rec = handlertest.Do(t, h, auth.RoleEmployee, http.MethodGet, "/api/v1/employees/by-employee-id/EMP404", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(handlertest.Decode(t, rec).Data))
}

func TestUpdateMissingEmployeeIsNotFound(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPatch, "/api/v1/employees/7", map[string]any{"position": "Engineer"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateEmployeeRejectsNullRequiredField(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPatch, "/api/v1/employees/1", `{"fullName":null}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEmployeeRecordsAudit(t *testing.T) {
	h, _, auditor := newTestHandler(t)
	require.Equal(t, http.StatusCreated, handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/employees", validEmployeePayload()).Code)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodDelete, "/api/v1/employees/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]bool
	handlertest.Data(t, rec, &result)
	assert.True(t, result["success"])
	assert.Equal(t, []string{audit.ActionEmployeeDelete}, auditor.Actions())

	rec = handlertest.Do(t, h, auth.RoleAdmin, http.MethodDelete, "/api/v1/employees/1", nil)
	handlertest.Data(t, rec, &result)
	assert.False(t, result["success"])
	assert.Len(t, auditor.Entries, 1)
}

func TestEmployeeRoutesEnforceRoles(t *testing.T) {
	h, _, _ := newTestHandler(t)

	assert.Equal(t, http.StatusUnauthorized, handlertest.Do(t, h, "", http.MethodGet, "/api/v1/employees", nil).Code)
	assert.Equal(t, http.StatusForbidden, handlertest.Do(t, h, auth.RoleEmployee, http.MethodPost, "/api/v1/employees", validEmployeePayload()).Code)
	assert.Equal(t, http.StatusForbidden, handlertest.Do(t, h, auth.RoleEmployee, http.MethodGet, "/api/v1/employee-documents?employeeId=EMP001", nil).Code)
}
