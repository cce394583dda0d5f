package payrollhandler

import (
	"github.com/go-chi/chi/v5"

	"hris/internal/domain/payroll"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Guard   *middleware.Guard
	Audit   shared.Auditor
}

func NewHandler(service *payroll.Service, guard *middleware.Guard, auditor shared.Auditor) *Handler {
	return &Handler{Service: service, Guard: guard, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	read := h.Guard.Read(authz.ObjPayroll)
	write := h.Guard.Write(authz.ObjPayroll)

	r.Route("/payroll-components", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreateComponent)
		r.With(read).Get("/", h.handleListComponents)
		r.With(read).Get("/{id}", h.handleGetComponent)
		r.With(write).Patch("/{id}", h.handleUpdateComponent)
		r.With(write).Delete("/{id}", h.handleDeleteComponent)
	})

	r.Route("/salary-structures", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreateSalaryLine)
		r.With(read).Get("/", h.handleListSalaryLines)
		r.With(write).Patch("/{id}", h.handleUpdateSalaryLine)
		r.With(write).Delete("/{id}", h.handleDeleteSalaryLine)
	})

	r.Route("/payslips", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreatePayslip)
		r.With(read).Get("/", h.handleListPayslips)
		r.With(write).Post("/generate", h.handleGeneratePayslip)
		r.With(write).Post("/generate-monthly", h.handleGenerateMonthly)
		r.With(read).Get("/{id}", h.handleGetPayslip)
		r.With(read).Get("/{id}/pdf", h.handlePayslipPDF)
	})
}
