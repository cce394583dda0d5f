package leavehandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/leave"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateBalance(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID           string `json:"employeeId"`
		AnnualLeaveBalance   int    `json:"annualLeaveBalance"`
		SickLeaveBalance     int    `json:"sickLeaveBalance"`
		PersonalLeaveBalance int    `json:"personalLeaveBalance"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	in := leave.CreateBalanceInput{
		EmployeeID:           strings.TrimSpace(payload.EmployeeID),
		AnnualLeaveBalance:   payload.AnnualLeaveBalance,
		SickLeaveBalance:     payload.SickLeaveBalance,
		PersonalLeaveBalance: payload.PersonalLeaveBalance,
	}
	v := shared.NewValidator()
	v.Required("employeeId", in.EmployeeID, "is required")
	v.NonNegative("annualLeaveBalance", float64(in.AnnualLeaveBalance))
	v.NonNegative("sickLeaveBalance", float64(in.SickLeaveBalance))
	v.NonNegative("personalLeaveBalance", float64(in.PersonalLeaveBalance))
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	balance, err := h.Service.CreateBalance(r.Context(), in)
	if err != nil {
		shared.FailError(w, r, err, "leave_balance_create_failed", "failed to create leave balance")
		return
	}
	api.Created(w, balance, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Service.GetBalance(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		shared.FailError(w, r, err, "leave_balance_get_failed", "failed to load leave balance")
		return
	}
	api.Success(w, balance, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeductBalance(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		LeaveType string `json:"leaveType"`
		Days      int    `json:"days"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("leaveType", payload.LeaveType, "is required")
	v.NonNegative("days", float64(payload.Days))
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	balance, err := h.Service.DeductBalance(r.Context(), chi.URLParam(r, "employeeId"), payload.LeaveType, payload.Days)
	if err != nil {
		shared.FailError(w, r, err, "leave_balance_deduct_failed", "failed to deduct leave balance")
		return
	}
	api.Success(w, balance, middleware.GetRequestID(r.Context()))
}
