package employeehandler

import (
	"github.com/go-chi/chi/v5"

	"hris/internal/domain/employee"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
	Guard   *middleware.Guard
	Audit   shared.Auditor
}

func NewHandler(service *employee.Service, guard *middleware.Guard, auditor shared.Auditor) *Handler {
	return &Handler{Service: service, Guard: guard, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.With(h.Guard.Write(authz.ObjDepartments)).Post("/", h.handleCreateDepartment)
		r.With(h.Guard.Read(authz.ObjDepartments)).Get("/", h.handleListDepartments)
		r.With(h.Guard.Read(authz.ObjDepartments)).Get("/{id}", h.handleGetDepartment)
		r.With(h.Guard.Write(authz.ObjDepartments)).Patch("/{id}", h.handleUpdateDepartment)
		r.With(h.Guard.Write(authz.ObjDepartments)).Delete("/{id}", h.handleDeleteDepartment)
	})

	r.Route("/employees", func(r chi.Router) {
		r.With(h.Guard.Write(authz.ObjEmployees)).Post("/", h.handleCreateEmployee)
		r.With(h.Guard.Read(authz.ObjEmployees)).Get("/", h.handleListEmployees)
		r.With(h.Guard.Read(authz.ObjEmployees)).Get("/by-employee-id/{employeeId}", h.handleGetByEmployeeID)
		r.With(h.Guard.Read(authz.ObjEmployees)).Get("/{id}", h.handleGetEmployee)
		r.With(h.Guard.Write(authz.ObjEmployees)).Patch("/{id}", h.handleUpdateEmployee)
		r.With(h.Guard.Write(authz.ObjEmployees)).Delete("/{id}", h.handleDeleteEmployee)
	})

	r.Route("/employee-documents", func(r chi.Router) {
		r.With(h.Guard.Write(authz.ObjDocuments)).Post("/", h.handleCreateDocument)
		r.With(h.Guard.Read(authz.ObjDocuments)).Get("/", h.handleListDocuments)
		r.With(h.Guard.Write(authz.ObjDocuments)).Delete("/{id}", h.handleDeleteDocument)
	})
}
