package payrollhandler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hris/internal/domain/audit"
	"hris/internal/domain/payroll"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
	"hris/internal/transport/http/shared"
)

func (h *Handler) handleCreatePayslip(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID      string  `json:"employeeId"`
		PayPeriodStart  string  `json:"payPeriodStart"`
		PayPeriodEnd    string  `json:"payPeriodEnd"`
		GrossSalary     float64 `json:"grossSalary"`
		TotalAllowances float64 `json:"totalAllowances"`
		TotalDeductions float64 `json:"totalDeductions"`
		NetSalary       float64 `json:"netSalary"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	start, _ := v.Date("payPeriodStart", payload.PayPeriodStart)
	end, _ := v.Date("payPeriodEnd", payload.PayPeriodEnd)
	v.DateOrder("payPeriodStart", start, "payPeriodEnd", end)
	v.NonNegative("grossSalary", payload.GrossSalary)
	v.NonNegative("totalAllowances", payload.TotalAllowances)
	v.NonNegative("totalDeductions", payload.TotalDeductions)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	payslip, err := h.Service.CreatePayslip(r.Context(), payroll.CreatePayslipInput{
		EmployeeID:      strings.TrimSpace(payload.EmployeeID),
		PayPeriodStart:  start,
		PayPeriodEnd:    end,
		GrossSalary:     payload.GrossSalary,
		TotalAllowances: payload.TotalAllowances,
		TotalDeductions: payload.TotalDeductions,
		NetSalary:       payload.NetSalary,
	})
	if err != nil {
		shared.FailError(w, r, err, "payslip_create_failed", "failed to create payslip")
		return
	}
	api.Created(w, payslip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPayslips(w http.ResponseWriter, r *http.Request) {
	var (
		payslips []payroll.Payslip
		err      error
	)
	if employeeID := strings.TrimSpace(r.URL.Query().Get("employeeId")); employeeID != "" {
		payslips, err = h.Service.ListPayslipsByEmployee(r.Context(), employeeID)
	} else {
		payslips, err = h.Service.ListPayslips(r.Context())
	}
	if err != nil {
		shared.FailError(w, r, err, "payslip_list_failed", "failed to list payslips")
		return
	}
	api.Success(w, payslips, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	payslip, err := h.Service.GetPayslip(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "payslip_get_failed", "failed to load payslip")
		return
	}
	api.Success(w, payslip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID     string `json:"employeeId"`
		PayPeriodStart string `json:"payPeriodStart"`
		PayPeriodEnd   string `json:"payPeriodEnd"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "is required")
	start, _ := v.Date("payPeriodStart", payload.PayPeriodStart)
	end, _ := v.Date("payPeriodEnd", payload.PayPeriodEnd)
	v.DateOrder("payPeriodStart", start, "payPeriodEnd", end)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	payslip, err := h.Service.GeneratePayslip(r.Context(), strings.TrimSpace(payload.EmployeeID), start, end)
	if err != nil {
		shared.FailError(w, r, err, "payslip_generate_failed", "failed to generate payslip")
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionPayslipGenerate, "payslip", strconv.FormatInt(payslip.ID, 10), nil, payslip)
	api.Success(w, payslip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGenerateMonthly(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Year  int `json:"year"`
		Month int `json:"month"`
	}
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	if payload.Year < 1 || payload.Year > 9999 {
		v.Add("year", "must be between 1 and 9999")
	}
	if payload.Month < 1 || payload.Month > 12 {
		v.Add("month", "must be between 1 and 12")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	result, err := h.Service.GenerateMonthly(r.Context(), payload.Year, payload.Month)
	if err != nil {
		shared.FailError(w, r, err, "payroll_monthly_failed", "failed to generate monthly payslips")
		return
	}
	shared.RecordAudit(r, h.Audit, audit.ActionPayrollMonthly, "payroll_month", fmt.Sprintf("%04d-%02d", payload.Year, payload.Month), nil,
		map[string]int{"generated": result.Generated, "existing": result.Existing, "failed": result.Failed})
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	data, filename, err := h.Service.PayslipPDF(r.Context(), id)
	if err != nil {
		shared.FailError(w, r, err, "payslip_pdf_failed", "failed to render payslip")
		return
	}
	api.Attachment(w, "application/pdf", filename, data)
}
