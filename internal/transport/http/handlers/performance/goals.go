package performancehandler

import (
	"net/http"
	"strings"

	"hris/internal/domain/performance"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID  string  `json:"employeeId"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
		DueDate     string  `json:"dueDate"`
		Status      string  `json:"status"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("title", payload.Title, "is required")
	v.Enum("status", payload.Status, performance.GoalStatuses)
	due := v.OptionalDate("dueDate", payload.DueDate)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	goal, err := h.Service.CreateGoal(r.Context(), performance.CreateGoalInput{
		EmployeeID:  strings.TrimSpace(payload.EmployeeID),
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		DueDate:     due,
		Status:      performance.GoalStatus(payload.Status),
	})
	if err != nil {
		shared.FailError(w, r, err, "goal_create_failed", "failed to create performance goal")
		return
	}
	api.Created(w, goal, middleware.GetRequestID(r.Context()))
}

// handleListGoals filters by employeeId or status; without either it lists every goal.
func (h *Handler) handleListGoals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var (
		goals []performance.Goal
		err   error
	)
	switch {
	case strings.TrimSpace(query.Get("employeeId")) != "":
		goals, err = h.Service.ListGoalsByEmployee(r.Context(), strings.TrimSpace(query.Get("employeeId")))
	case query.Get("status") != "":
		goals, err = h.Service.ListGoalsByStatus(r.Context(), performance.GoalStatus(query.Get("status")))
	default:
		goals, err = h.Service.ListGoals(r.Context())
	}
	if err != nil {
		shared.FailError(w, r, err, "goal_list_failed", "failed to list performance goals")
		return
	}
	api.Success(w, goals, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListOverdueGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Service.ListOverdueGoals(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "goal_list_failed", "failed to list overdue goals")
		return
	}
	api.Success(w, goals, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	goal, err := h.Service.GetGoal(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "goal_get_failed", "failed to load performance goal")
		return
	}
	api.Success(w, goal, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Title       optional.Value[string] `json:"title"`
		Description optional.Value[string] `json:"description"`
		DueDate     optional.Value[string] `json:"dueDate"`
		Status      optional.Value[string] `json:"status"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NotNull("title", payload.Title)
	v.NotNull("status", payload.Status)
	if payload.Title.Set {
		v.Required("title", payload.Title.Value, "must not be empty")
	}
	v.Enum("status", payload.Status.Value, performance.GoalStatuses)
	in := performance.UpdateGoalInput{
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     v.PatchDate("dueDate", payload.DueDate),
		Status:      optional.Value[performance.GoalStatus]{Set: payload.Status.Set, Value: performance.GoalStatus(payload.Status.Value)},
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	goal, err := h.Service.UpdateGoal(r.Context(), id, in)
	if err != nil {
		shared.FailError(w, r, err, "goal_update_failed", "failed to update performance goal")
		return
	}
	api.Success(w, goal, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteGoal(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "goal_delete_failed", "failed to delete performance goal")
		return
	}
	shared.Deleted(w, r, deleted)
}
