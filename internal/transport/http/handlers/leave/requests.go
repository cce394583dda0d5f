package leavehandler

import (
	"net/http"
	"strconv"
	"strings"

	"hris/internal/domain/audit"
	"hris/internal/domain/leave"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID string `json:"employeeId"`
		LeaveType  string `json:"leaveType"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
		Reason     string `json:"reason"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("leaveType", payload.LeaveType, "is required")
	v.Enum("leaveType", payload.LeaveType, leave.Types)
	v.Required("reason", payload.Reason, "is required")
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	req, err := h.Service.CreateRequest(r.Context(), leave.CreateRequestInput{
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		LeaveType:  leave.Type(payload.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     payload.Reason,
	})
	if err != nil {
		shared.FailError(w, r, err, "leave_request_create_failed", "failed to create leave request")
		return
	}
	api.Created(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	var (
		requests []leave.Request
		err      error
	)
	if employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId")); employeeID != "" {
		requests, err = h.Service.ListRequestsByEmployee(r.Context(), employeeID)
	} else {
		requests, err = h.Service.ListRequests(r.Context())
	}
	if err != nil {
		shared.FailError(w, r, err, "leave_request_list_failed", "failed to list leave requests")
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.ListPending(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "leave_request_list_failed", "failed to list leave requests")
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("status", payload.Status, "is required")
	v.Enum("status", payload.Status, []string{string(leave.StatusApproved), string(leave.StatusRejected)})
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	decided, err := h.Service.UpdateStatus(r.Context(), id, leave.Status(payload.Status))
	if err != nil {
		shared.FailError(w, r, err, "leave_request_update_failed", "failed to update leave request")
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionLeaveDecision, "leave_request", strconv.FormatInt(id, 10),
		map[string]leave.Status{"status": leave.StatusPending}, decided)
	api.Success(w, decided, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteRequest(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "leave_request_delete_failed", "failed to delete leave request")
		return
	}
	shared.Deleted(w, r, deleted)
}
