package attendancehandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/attendance"
	"hris/internal/platform/authz"
	"hris/internal/platform/optional"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
	Guard   *middleware.Guard
}

func NewHandler(service *attendance.Service, guard *middleware.Guard) *Handler {
	return &Handler{Service: service, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.With(h.Guard.Write(authz.ObjAttendance)).Post("/", h.handleCheckIn)
		r.With(h.Guard.Read(authz.ObjAttendance)).Get("/", h.handleList)
		r.With(h.Guard.Read(authz.ObjAttendance)).Get("/today", h.handleToday)
		r.With(h.Guard.Write(authz.ObjAttendance)).Patch("/{id}", h.handleUpdate)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID   string `json:"employeeId"`
		CheckInTime  string `json:"checkInTime"`
		CheckOutTime string `json:"checkOutTime"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	in := attendance.CheckInInput{EmployeeID: strings.TrimSpace(payload.EmployeeID)}
	if payload.CheckInTime != "" {
		in.CheckInTime, _ = v.Timestamp("checkInTime", payload.CheckInTime)
	}
	if payload.CheckOutTime != "" {
		if out, ok := v.Timestamp("checkOutTime", payload.CheckOutTime); ok {
			in.CheckOutTime = &out
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rec, err := h.Service.CheckIn(r.Context(), in)
	if err != nil {
		shared.FailError(w, r, err, "attendance_create_failed", "failed to record check-in")
		return
	}
	api.Created(w, rec, middleware.GetRequestID(r.Context()))
}

// handleList serves getByEmployee, or getByDateRange when both dates are present.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	employeeID := strings.TrimSpace(query.Get("employeeId"))
	rawStart := strings.TrimSpace(query.Get("startDate"))
	rawEnd := strings.TrimSpace(query.Get("endDate"))

	v := shared.NewValidator()
	if rawStart == "" && rawEnd == "" {
		v.Required("employeeId", employeeID, "query parameter is required")
		if v.Reject(w, middleware.GetRequestID(r.Context())) {
			return
		}
		records, err := h.Service.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			shared.FailError(w, r, err, "attendance_list_failed", "failed to list attendance")
			return
		}
		api.Success(w, records, middleware.GetRequestID(r.Context()))
		return
	}

	start, _ := v.Date("startDate", rawStart)
	end, _ := v.Date("endDate", rawEnd)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	records, err := h.Service.ByDateRange(r.Context(), employeeID, start, end)
	if err != nil {
		shared.FailError(w, r, err, "attendance_list_failed", "failed to list attendance")
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.Today(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "attendance_list_failed", "failed to list attendance")
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		CheckInTime  optional.Value[string] `json:"checkInTime"`
		CheckOutTime optional.Value[string] `json:"checkOutTime"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.NotNull("checkInTime", payload.CheckInTime)
	in := attendance.UpdateInput{
		CheckInTime:  v.PatchTimestamp("checkInTime", payload.CheckInTime),
		CheckOutTime: v.PatchTimestamp("checkOutTime", payload.CheckOutTime),
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	rec, err := h.Service.Update(r.Context(), id, in)
	if err != nil {
		shared.FailError(w, r, err, "attendance_update_failed", "failed to update attendance")
		return
	}
	api.Success(w, rec, middleware.GetRequestID(r.Context()))
}
