package employeehandler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/audit"
	"hris/internal/domain/employee"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

const maxEmployeeIDLength = 50

type createEmployeePayload struct {
	FullName          string  `json:"fullName"`
	EmployeeID        string  `json:"employeeId"`
	DateOfBirth       string  `json:"dateOfBirth"`
	Gender            string  `json:"gender"`
	MaritalStatus     string  `json:"maritalStatus"`
	Address           *string `json:"address"`
	PhoneNumber       *string `json:"phoneNumber"`
	Email             string  `json:"email"`
	Position          *string `json:"position"`
	Department        *string `json:"department"`
	ManagerID         *string `json:"managerId"`
	StartDate         string  `json:"startDate"`
	EmploymentStatus  string  `json:"employmentStatus"`
	BankName          *string `json:"bankName"`
	BankAccountNumber *string `json:"bankAccountNumber"`
	Role              string  `json:"role"`
}

type updateEmployeePayload struct {
	FullName          optional.Value[string] `json:"fullName"`
	EmployeeID        optional.Value[string] `json:"employeeId"`
	DateOfBirth       optional.Value[string] `json:"dateOfBirth"`
	Gender            optional.Value[string] `json:"gender"`
	MaritalStatus     optional.Value[string] `json:"maritalStatus"`
	Address           optional.Value[string] `json:"address"`
	PhoneNumber       optional.Value[string] `json:"phoneNumber"`
	Email             optional.Value[string] `json:"email"`
	Position          optional.Value[string] `json:"position"`
	Department        optional.Value[string] `json:"department"`
	ManagerID         optional.Value[string] `json:"managerId"`
	StartDate         optional.Value[string] `json:"startDate"`
	EmploymentStatus  optional.Value[string] `json:"employmentStatus"`
	BankName          optional.Value[string] `json:"bankName"`
	BankAccountNumber optional.Value[string] `json:"bankAccountNumber"`
	Role              optional.Value[string] `json:"role"`
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload createEmployeePayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("fullName", payload.FullName, "is required")
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.MaxLen("employeeId", payload.EmployeeID, maxEmployeeIDLength)
	v.Required("gender", payload.Gender, "is required")
	v.Enum("gender", payload.Gender, employee.Genders)
	v.Required("maritalStatus", payload.MaritalStatus, "is required")
	v.Enum("maritalStatus", payload.MaritalStatus, employee.MaritalStatuses)
	v.Required("email", payload.Email, "is required")
	v.Email("email", payload.Email)
	v.Enum("employmentStatus", payload.EmploymentStatus, employee.EmploymentStatuses)
	v.Enum("role", payload.Role, employee.Roles)
	dob, _ := v.Date("dateOfBirth", payload.DateOfBirth)
	start, _ := v.Date("startDate", payload.StartDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp, err := h.Service.CreateEmployee(r.Context(), employee.CreateEmployeeInput{
		FullName:          strings.TrimSpace(payload.FullName),
		EmployeeID:        strings.TrimSpace(payload.EmployeeID),
		DateOfBirth:       dob,
		Gender:            employee.Gender(payload.Gender),
		MaritalStatus:     employee.MaritalStatus(payload.MaritalStatus),
		Address:           payload.Address,
		PhoneNumber:       payload.PhoneNumber,
		Email:             payload.Email,
		Position:          payload.Position,
		Department:        payload.Department,
		ManagerID:         payload.ManagerID,
		StartDate:         start,
		EmploymentStatus:  employee.EmploymentStatus(payload.EmploymentStatus),
		BankName:          payload.BankName,
		BankAccountNumber: payload.BankAccountNumber,
		Role:              employee.Role(payload.Role),
	})
	if err != nil {
		shared.FailError(w, r, err, "employee_create_failed", "failed to create employee")
		return
	}
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	emps, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "employee_list_failed", "failed to list employees")
		return
	}
	api.Success(w, emps, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	emp, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "employee_get_failed", "failed to load employee")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetByEmployeeID(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.GetEmployeeByEmployeeID(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		shared.FailError(w, r, err, "employee_get_failed", "failed to load employee")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload updateEmployeePayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	for field, value := range map[string]optional.Value[string]{
		"fullName":         payload.FullName,
		"employeeId":       payload.EmployeeID,
		"dateOfBirth":      payload.DateOfBirth,
		"gender":           payload.Gender,
		"maritalStatus":    payload.MaritalStatus,
		"email":            payload.Email,
		"startDate":        payload.StartDate,
		"employmentStatus": payload.EmploymentStatus,
		"role":             payload.Role,
	} {
		v.NotNull(field, value)
	}
	if payload.FullName.Set {
		v.Required("fullName", payload.FullName.Value, "must not be empty")
	}
	if payload.EmployeeID.Set {
		v.Required("employeeId", payload.EmployeeID.Value, "must not be empty")
		v.MaxLen("employeeId", payload.EmployeeID.Value, maxEmployeeIDLength)
	}
	v.Enum("gender", payload.Gender.Value, employee.Genders)
	v.Enum("maritalStatus", payload.MaritalStatus.Value, employee.MaritalStatuses)
	v.Enum("employmentStatus", payload.EmploymentStatus.Value, employee.EmploymentStatuses)
	v.Enum("role", payload.Role.Value, employee.Roles)
	v.Email("email", payload.Email.Value)
	in := employee.UpdateEmployeeInput{
		FullName:          payload.FullName,
		EmployeeID:        payload.EmployeeID,
		DateOfBirth:       v.PatchDate("dateOfBirth", payload.DateOfBirth),
		Gender:            enumValue[employee.Gender](payload.Gender),
		MaritalStatus:     enumValue[employee.MaritalStatus](payload.MaritalStatus),
		Address:           payload.Address,
		PhoneNumber:       payload.PhoneNumber,
		Email:             payload.Email,
		Position:          payload.Position,
		Department:        payload.Department,
		ManagerID:         payload.ManagerID,
		StartDate:         v.PatchDate("startDate", payload.StartDate),
		EmploymentStatus:  enumValue[employee.EmploymentStatus](payload.EmploymentStatus),
		BankName:          payload.BankName,
		BankAccountNumber: payload.BankAccountNumber,
		Role:              enumValue[employee.Role](payload.Role),
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	emp, err := h.Service.UpdateEmployee(r.Context(), id, in)
	if err != nil {
		shared.FailError(w, r, err, "employee_update_failed", "failed to update employee")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	before, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	deleted, err := h.Service.DeleteEmployee(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	if deleted {
		shared.RecordAudit(r, h.Audit, audit.ActionEmployeeDelete, "employee", strconv.FormatInt(id, 10), before, nil)
	}
	shared.Deleted(w, r, deleted)
}

func enumValue[T ~string](in optional.Value[string]) optional.Value[T] {
	return optional.Value[T]{Set: in.Set, Null: in.Null, Value: T(in.Value)}
}
