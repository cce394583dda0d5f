package employeehandler

import (
	"net/http"

	"hris/internal/domain/employee"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	v.MaxLen("name", payload.Name, 100)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	dept, err := h.Service.CreateDepartment(r.Context(), employee.CreateDepartmentInput{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		shared.FailError(w, r, err, "department_create_failed", "failed to create department")
		return
	}
	api.Created(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "department_list_failed", "failed to list departments")
		return
	}
	api.Success(w, depts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	dept, err := h.Service.GetDepartment(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "department_get_failed", "failed to load department")
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Name        optional.Value[string] `json:"name"`
		Description optional.Value[string] `json:"description"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NotNull("name", payload.Name)
	if payload.Name.Set {
		v.Required("name", payload.Name.Value, "must not be empty")
		v.MaxLen("name", payload.Name.Value, 100)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	dept, err := h.Service.UpdateDepartment(r.Context(), id, employee.UpdateDepartmentInput{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		shared.FailError(w, r, err, "department_update_failed", "failed to update department")
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteDepartment(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "department_delete_failed", "failed to delete department")
		return
	}
	shared.Deleted(w, r, deleted)
}
