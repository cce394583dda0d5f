package leavehandler

import (
	"github.com/go-chi/chi/v5"

	"hris/internal/domain/leave"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Guard   *middleware.Guard
	Audit   shared.Auditor
}

func NewHandler(service *leave.Service, guard *middleware.Guard, auditor shared.Auditor) *Handler {
	return &Handler{Service: service, Guard: guard, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave-requests", func(r chi.Router) {
		r.With(h.Guard.Write(authz.ObjLeave)).Post("/", h.handleCreateRequest)
		r.With(h.Guard.Read(authz.ObjLeave)).Get("/", h.handleListRequests)
		r.With(h.Guard.Read(authz.ObjLeave)).Get("/pending", h.handleListPending)
		r.With(h.Guard.Write(authz.ObjLeaveApproval)).Patch("/{id}/status", h.handleUpdateStatus)
		r.With(h.Guard.Write(authz.ObjLeave)).Delete("/{id}", h.handleDeleteRequest)
	})

	r.Route("/leave-balances", func(r chi.Router) {
		r.With(h.Guard.Write(authz.ObjLeaveApproval)).Post("/", h.handleCreateBalance)
		r.With(h.Guard.Read(authz.ObjLeave)).Get("/{employeeId}", h.handleGetBalance)
		r.With(h.Guard.Write(authz.ObjLeaveApproval)).Post("/{employeeId}/deduct", h.handleDeductBalance)
	})
}
