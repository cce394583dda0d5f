package performancehandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/performance"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID    string  `json:"employeeId"`
		ReviewerID    string  `json:"reviewerId"`
		ReviewDate    string  `json:"reviewDate"`
		OverallRating int     `json:"overallRating"`
		Comments      *string `json:"comments"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	v.Required("reviewerId", payload.ReviewerID, "is required")
	reviewDate, _ := v.Date("reviewDate", payload.ReviewDate)
	checkRating(v, payload.OverallRating)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	review, err := h.Service.CreateReview(r.Context(), performance.CreateReviewInput{
		EmployeeID:    strings.TrimSpace(payload.EmployeeID),
		ReviewerID:    strings.TrimSpace(payload.ReviewerID),
		ReviewDate:    reviewDate,
		OverallRating: payload.OverallRating,
		Comments:      payload.Comments,
	})
	if err != nil {
		shared.FailError(w, r, err, "review_create_failed", "failed to create performance review")
		return
	}
	api.Created(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var (
		reviews []performance.Review
		err     error
	)
	switch {
	case strings.TrimSpace(query.Get("employeeId")) != "":
		reviews, err = h.Service.ListReviewsByEmployee(r.Context(), strings.TrimSpace(query.Get("employeeId")))
	case strings.TrimSpace(query.Get("reviewerId")) != "":
		reviews, err = h.Service.ListReviewsByReviewer(r.Context(), strings.TrimSpace(query.Get("reviewerId")))
	default:
		reviews, err = h.Service.ListReviews(r.Context())
	}
	if err != nil {
		shared.FailError(w, r, err, "review_list_failed", "failed to list performance reviews")
		return
	}
	api.Success(w, reviews, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	review, err := h.Service.GetReview(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "review_get_failed", "failed to load performance review")
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		ReviewDate    optional.Value[string] `json:"reviewDate"`
		OverallRating optional.Value[int]    `json:"overallRating"`
		Comments      optional.Value[string] `json:"comments"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NotNull("reviewDate", payload.ReviewDate)
	v.NotNull("overallRating", payload.OverallRating)
	if payload.OverallRating.Set && !payload.OverallRating.Null {
		checkRating(v, payload.OverallRating.Value)
	}
	in := performance.UpdateReviewInput{
		ReviewDate:    v.PatchDate("reviewDate", payload.ReviewDate),
		OverallRating: payload.OverallRating,
		Comments:      payload.Comments,
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	review, err := h.Service.UpdateReview(r.Context(), id, in)
	if err != nil {
		shared.FailError(w, r, err, "review_update_failed", "failed to update performance review")
		return
	}
	api.Success(w, review, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteReview(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "review_delete_failed", "failed to delete performance review")
		return
	}
	shared.Deleted(w, r, deleted)
}

func (h *Handler) handleAverageRating(w http.ResponseWriter, r *http.Request) {
	avg, err := h.Service.AverageRating(r.Context(), chi.URLParam(r, "employeeId"))
	if err != nil {
		shared.FailError(w, r, err, "review_average_failed", "failed to compute average rating")
		return
	}
	api.Success(w, avg, middleware.GetRequestID(r.Context()))
}

func checkRating(v *shared.Validator, rating int) {
	if !performance.ValidRating(rating) {
		v.Add("overallRating", "must be between 1 and 5")
	}
}
