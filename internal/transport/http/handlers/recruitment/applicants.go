package recruitmenthandler

import (
	"net/http"
	"strings"

	"hris/internal/domain/recruitment"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FullName        string  `json:"fullName"`
		Email           string  `json:"email"`
		PhoneNumber     *string `json:"phoneNumber"`
		ResumeURL       *string `json:"resumeUrl"`
		JobVacancyID    int64   `json:"jobVacancyId"`
		ApplicationDate string  `json:"applicationDate"`
		Status          string  `json:"status"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("fullName", payload.FullName, "is required")
	v.Required("email", payload.Email, "is required")
	v.Email("email", payload.Email)
	if payload.ResumeURL != nil {
		v.URL("resumeUrl", *payload.ResumeURL)
	}
	v.Positive("jobVacancyId", payload.JobVacancyID)
	v.Enum("status", payload.Status, recruitment.ApplicantStatuses)
	in := recruitment.CreateApplicantInput{
		FullName:     strings.TrimSpace(payload.FullName),
		Email:        payload.Email,
		PhoneNumber:  payload.PhoneNumber,
		ResumeURL:    payload.ResumeURL,
		JobVacancyID: payload.JobVacancyID,
		Status:       recruitment.ApplicantStatus(payload.Status),
	}
	if applied := v.OptionalDate("applicationDate", payload.ApplicationDate); applied != nil {
		in.ApplicationDate = *applied
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	applicant, err := h.Service.CreateApplicant(r.Context(), in)
	if err != nil {
		shared.FailError(w, r, err, "applicant_create_failed", "failed to create applicant")
		return
	}
	api.Created(w, applicant, middleware.GetRequestID(r.Context()))
}

// handleListApplicants combines the jobVacancyId, status and search filters.
func (h *Handler) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	vacancyID, _, ok := shared.QueryInt(w, r, "jobVacancyId")
	if !ok {
		return
	}
	query := r.URL.Query()
	applicants, err := h.Service.ListApplicants(r.Context(), recruitment.ApplicantFilter{
		JobVacancyID: vacancyID,
		Status:       recruitment.ApplicantStatus(strings.TrimSpace(query.Get("status"))),
		Search:       strings.TrimSpace(query.Get("search")),
	})
	if err != nil {
		shared.FailError(w, r, err, "applicant_list_failed", "failed to list applicants")
		return
	}
	api.Success(w, applicants, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	applicant, err := h.Service.GetApplicant(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "applicant_get_failed", "failed to load applicant")
		return
	}
	api.Success(w, applicant, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateApplicantStatus(w http.ResponseWriter, r *http.Request) {
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
	v.Enum("status", payload.Status, recruitment.ApplicantStatuses)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	applicant, err := h.Service.UpdateApplicantStatus(r.Context(), id, recruitment.ApplicantStatus(payload.Status))
	if err != nil {
		shared.FailError(w, r, err, "applicant_update_failed", "failed to update applicant")
		return
	}
	api.Success(w, applicant, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := h.Service.DeleteApplicant(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "applicant_delete_failed", "failed to delete applicant")
		return
	}
	shared.Deleted(w, r, deleted)
}
