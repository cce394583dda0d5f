package recruitmenthandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/recruitment"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Service *recruitment.Service
	Guard   *middleware.Guard
	Audit   shared.Auditor
}

func NewHandler(service *recruitment.Service, guard *middleware.Guard, auditor shared.Auditor) *Handler {
	return &Handler{Service: service, Guard: guard, Audit: auditor}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	read := h.Guard.Read(authz.ObjRecruitment)
	write := h.Guard.Write(authz.ObjRecruitment)

	r.Route("/job-vacancies", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreateVacancy)
		r.With(read).Get("/", h.handleListVacancies)
		r.With(read).Get("/open", h.handleListOpenVacancies)
		r.With(read).Get("/{id}", h.handleGetVacancy)
		r.With(write).Patch("/{id}", h.handleUpdateVacancy)
		r.With(write).Delete("/{id}", h.handleDeleteVacancy)
		r.With(write).Post("/{id}/close", h.handleCloseVacancy)
	})

	r.Route("/applicants", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreateApplicant)
		r.With(read).Get("/", h.handleListApplicants)
		r.With(read).Get("/{id}", h.handleGetApplicant)
		r.With(write).Patch("/{id}/status", h.handleUpdateApplicantStatus)
		r.With(write).Delete("/{id}", h.handleDeleteApplicant)
	})

	r.With(read).Get("/recruitment/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "recruitment_stats_failed", "failed to compute recruitment stats")
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}
