package performancehandler

import (
	"github.com/go-chi/chi/v5"

	"hris/internal/domain/performance"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Service *performance.Service
	Guard   *middleware.Guard
}

func NewHandler(service *performance.Service, guard *middleware.Guard) *Handler {
	return &Handler{Service: service, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	read := h.Guard.Read(authz.ObjPerformance)
	write := h.Guard.Write(authz.ObjPerformance)

	r.Route("/performance-goals", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreateGoal)
		r.With(read).Get("/", h.handleListGoals)
		r.With(read).Get("/overdue", h.handleListOverdueGoals)
		r.With(read).Get("/{id}", h.handleGetGoal)
		r.With(write).Patch("/{id}", h.handleUpdateGoal)
		r.With(write).Delete("/{id}", h.handleDeleteGoal)
	})

	r.Route("/performance-reviews", func(r chi.Router) {
		r.With(write).Post("/", h.handleCreateReview)
		r.With(read).Get("/", h.handleListReviews)
		r.With(read).Get("/average-rating/{employeeId}", h.handleAverageRating)
		r.With(read).Get("/{id}", h.handleGetReview)
		r.With(write).Patch("/{id}", h.handleUpdateReview)
		r.With(write).Delete("/{id}", h.handleDeleteReview)
	})
}
