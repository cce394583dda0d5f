package recruitmenthandler

import (
	"net/http"
	"strconv"
	"strings"

	"hris/internal/domain/audit"
	"hris/internal/domain/recruitment"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreateVacancy(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		DepartmentID *int64 `json:"departmentId"`
		Status       string `json:"status"`
		PostedDate   string `json:"postedDate"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "is required")
	v.Required("description", payload.Description, "is required")
	v.Enum("status", payload.Status, recruitment.VacancyStatuses)
	if payload.DepartmentID != nil {
		v.Positive("departmentId", *payload.DepartmentID)
	}
	in := recruitment.CreateVacancyInput{
		Title:        strings.TrimSpace(payload.Title),
		Description:  payload.Description,
		DepartmentID: payload.DepartmentID,
		Status:       recruitment.VacancyStatus(payload.Status),
	}
	if posted := v.OptionalDate("postedDate", payload.PostedDate); posted != nil {
		in.PostedDate = *posted
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	vacancy, err := h.Service.CreateVacancy(r.Context(), in)
	if err != nil {
		shared.FailError(w, r, err, "vacancy_create_failed", "failed to create job vacancy")
		return
	}
	api.Created(w, vacancy, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListVacancies(w http.ResponseWriter, r *http.Request) {
	departmentID, filtered, ok := shared.QueryInt(w, r, "departmentId")
	if !ok {
		return
	}
	var (
		vacancies []recruitment.Vacancy
		err       error
	)
	if filtered {
		vacancies, err = h.Service.ListVacanciesByDepartment(r.Context(), departmentID)
	} else {
		vacancies, err = h.Service.ListVacancies(r.Context())
	}
	if err != nil {
		shared.FailError(w, r, err, "vacancy_list_failed", "failed to list job vacancies")
		return
	}
	api.Success(w, vacancies, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListOpenVacancies(w http.ResponseWriter, r *http.Request) {
	vacancies, err := h.Service.ListOpenVacancies(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "vacancy_list_failed", "failed to list open job vacancies")
		return
	}
	api.Success(w, vacancies, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	vacancy, err := h.Service.GetVacancy(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "vacancy_get_failed", "failed to load job vacancy")
		return
	}
	api.Success(w, vacancy, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Title        optional.Value[string] `json:"title"`
		Description  optional.Value[string] `json:"description"`
		DepartmentID optional.Value[int64]  `json:"departmentId"`
		Status       optional.Value[string] `json:"status"`
		PostedDate   optional.Value[string] `json:"postedDate"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NotNull("title", payload.Title)
	v.NotNull("description", payload.Description)
	v.NotNull("status", payload.Status)
	v.NotNull("postedDate", payload.PostedDate)
	if payload.Title.Set {
		v.Required("title", payload.Title.Value, "must not be empty")
	}
	v.Enum("status", payload.Status.Value, recruitment.VacancyStatuses)
	in := recruitment.UpdateVacancyInput{
		Title:        payload.Title,
		Description:  payload.Description,
		DepartmentID: payload.DepartmentID,
		Status:       optional.Value[recruitment.VacancyStatus]{Set: payload.Status.Set, Value: recruitment.VacancyStatus(payload.Status.Value)},
		PostedDate:   v.PatchDate("postedDate", payload.PostedDate),
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	vacancy, err := h.Service.UpdateVacancy(r.Context(), id, in)
	if err != nil {
		shared.FailError(w, r, err, "vacancy_update_failed", "failed to update job vacancy")
		return
	}
	api.Success(w, vacancy, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCloseVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	vacancy, err := h.Service.CloseVacancy(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "vacancy_close_failed", "failed to close job vacancy")
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionVacancyClose, "job_vacancy", strconv.FormatInt(id, 10), nil, vacancy)
	api.Success(w, vacancy, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	before, err := h.Service.GetVacancy(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "vacancy_delete_failed", "failed to delete job vacancy")
		return
	}
	deleted, err := h.Service.DeleteVacancy(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "vacancy_delete_failed", "failed to delete job vacancy")
		return
	}
	if deleted {
		shared.RecordAudit(r, h.Audit, audit.ActionVacancyDelete, "job_vacancy", strconv.FormatInt(id, 10), before, nil)
	}
	shared.Deleted(w, r, deleted)
}
