package payrollhandler

import (
	"net/http"
	"strings"

	"hris/internal/domain/payroll"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateComponent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name   string  `json:"name"`
		Type   string  `json:"type"`
		Amount float64 `json:"amount"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "is required")
	v.Required("type", payload.Type, "is required")
	v.Enum("type", payload.Type, payroll.ComponentTypes)
	v.NonNegative("amount", payload.Amount)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	component, err := h.Service.CreateComponent(r.Context(), payroll.CreateComponentInput{
		Name:   strings.TrimSpace(payload.Name),
		Type:   payroll.ComponentType(payload.Type),
		Amount: payload.Amount,
	})
	if err != nil {
		shared.FailError(w, r, err, "component_create_failed", "failed to create payroll component")
		return
	}
	api.Created(w, component, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.Service.ListComponents(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "component_list_failed", "failed to list payroll components")
		return
	}
	api.Success(w, components, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	component, err := h.Service.GetComponent(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "component_get_failed", "failed to load payroll component")
		return
	}
	api.Success(w, component, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Name   optional.Value[string]                `json:"name"`
		Type   optional.Value[payroll.ComponentType] `json:"type"`
		Amount optional.Value[float64]               `json:"amount"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NotNull("name", payload.Name)
	v.NotNull("type", payload.Type)
	v.NotNull("amount", payload.Amount)
	if payload.Name.Set {
		v.Required("name", payload.Name.Value, "must not be empty")
	}
	v.Enum("type", string(payload.Type.Value), payroll.ComponentTypes)
	v.NonNegative("amount", payload.Amount.Value)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	component, err := h.Service.UpdateComponent(r.Context(), id, payroll.UpdateComponentInput{
		Name:   payload.Name,
		Type:   payload.Type,
		Amount: payload.Amount,
	})
	if err != nil {
		shared.FailError(w, r, err, "component_update_failed", "failed to update payroll component")
		return
	}
	api.Success(w, component, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteComponent(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "component_delete_failed", "failed to delete payroll component")
		return
	}
	shared.Deleted(w, r, deleted)
}

func (h *Handler) handleCreateSalaryLine(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID  string  `json:"employeeId"`
		ComponentID int64   `json:"componentId"`
		Amount      float64 `json:"amount"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Positive("componentId", payload.ComponentID)
	v.NonNegative("amount", payload.Amount)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	line, err := h.Service.CreateSalaryLine(r.Context(), payroll.CreateSalaryLineInput{
		EmployeeID:  strings.TrimSpace(payload.EmployeeID),
		ComponentID: payload.ComponentID,
		Amount:      payload.Amount,
	})
	if err != nil {
		shared.FailError(w, r, err, "salary_structure_create_failed", "failed to create salary structure entry")
		return
	}
	api.Created(w, line, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSalaryLines(w http.ResponseWriter, r *http.Request) {
	employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId"))
	v := shared.NewValidator()
	v.Required("employeeId", employeeID, "query parameter is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	lines, err := h.Service.ListSalaryLines(r.Context(), employeeID)
	if err != nil {
		shared.FailError(w, r, err, "salary_structure_list_failed", "failed to list salary structure")
		return
	}
	api.Success(w, lines, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateSalaryLine(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Amount *float64 `json:"amount"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	if payload.Amount == nil {
		v.Add("amount", "is required")
	} else {
		v.NonNegative("amount", *payload.Amount)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	line, err := h.Service.UpdateSalaryLine(r.Context(), id, *payload.Amount)
	if err != nil {
		shared.FailError(w, r, err, "salary_structure_update_failed", "failed to update salary structure entry")
		return
	}
	api.Success(w, line, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteSalaryLine(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteSalaryLine(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "salary_structure_delete_failed", "failed to delete salary structure entry")
		return
	}
	shared.Deleted(w, r, deleted)
}
