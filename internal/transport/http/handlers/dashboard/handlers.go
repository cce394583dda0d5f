package dashboardhandler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/dashboard"
	"hris/internal/platform/authz"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Service *dashboard.Service
	Guard   *middleware.Guard
}

func NewHandler(service *dashboard.Service, guard *middleware.Guard) *Handler {
	return &Handler{Service: service, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(h.Guard.Read(authz.ObjDashboard))
		r.Get("/overview", h.handleOverview)
		r.Get("/employees/{employeeId}", h.handleEmployee)
		r.Get("/managers/{employeeId}", h.handleManager)
		r.Get("/attendance-stats", h.handleAttendanceStats)
		r.Get("/payroll-stats", h.handlePayrollStats)
		r.Get("/payroll-stats/export", h.handlePayrollExport)
		r.Get("/hr-metrics", h.handleHRMetrics)
	})
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Overview(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "dashboard_failed", "failed to build overview")
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployee(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.EmployeeDashboard(r.Context(), strings.TrimSpace(chi.URLParam(r, "employeeId")))
	if err != nil {
		shared.FailError(w, r, err, "dashboard_failed", "failed to build employee dashboard")
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleManager(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.ManagerDashboard(r.Context(), strings.TrimSpace(chi.URLParam(r, "employeeId")))
	if err != nil {
		shared.FailError(w, r, err, "dashboard_failed", "failed to build manager dashboard")
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttendanceStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	v := shared.NewValidator()
	start, _ := v.Date("startDate", query.Get("startDate"))
	end, _ := v.Date("endDate", query.Get("endDate"))
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	out, err := h.Service.AttendanceStats(r.Context(), start, end)
	if err != nil {
		shared.FailError(w, r, err, "dashboard_failed", "failed to build attendance statistics")
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

// period reads the required year and month query parameters.
func period(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, hasYear, ok := shared.QueryInt(w, r, "year")
	if !ok {
		return 0, 0, false
	}
	month, hasMonth, ok := shared.QueryInt(w, r, "month")
	if !ok {
		return 0, 0, false
	}
	v := shared.NewValidator()
	if !hasYear {
		v.Add("year", "query parameter is required")
	}
	if !hasMonth {
		v.Add("month", "query parameter is required")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return 0, 0, false
	}
	return int(year), int(month), true
}

func (h *Handler) handlePayrollStats(w http.ResponseWriter, r *http.Request) {
	year, month, ok := period(w, r)
	if !ok {
		return
	}
	out, err := h.Service.PayrollStats(r.Context(), year, month)
	if err != nil {
		shared.FailError(w, r, err, "dashboard_failed", "failed to build payroll statistics")
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayrollExport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := period(w, r)
	if !ok {
		return
	}
	data, filename, err := h.Service.PayrollStatsWorkbook(r.Context(), year, month)
	if err != nil {
		shared.FailError(w, r, err, "export_failed", "failed to export payroll statistics")
		return
	}
	api.Attachment(w, xlsxContentType, filename, data)
}

func (h *Handler) handleHRMetrics(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.HRMetrics(r.Context())
	if err != nil {
		shared.FailError(w, r, err, "dashboard_failed", "failed to build hr metrics")
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}
