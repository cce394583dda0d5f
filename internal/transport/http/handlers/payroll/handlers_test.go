package payrollhandler

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/audit"
	"hris/internal/domain/auth"
	"hris/internal/domain/employee"
	"hris/internal/domain/payroll"
	"hris/internal/transport/http/handlertest"
)

type fakeStore struct {
	payroll.StoreAPI
	structure map[string][]payroll.StructureLine
	payslips  map[int64]payroll.Payslip
	active    []string
	nextID    int64
}

func (f *fakeStore) ListStructureLines(_ context.Context, employeeID string) ([]payroll.StructureLine, error) {
	return f.structure[employeeID], nil
}

func (f *fakeStore) FindPayslip(_ context.Context, employeeID string, start, end time.Time) (*payroll.Payslip, error) {
	for _, p := range f.payslips {
		if p.EmployeeID == employeeID && p.PayPeriodStart.Equal(start) && p.PayPeriodEnd.Equal(end) {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertPayslipIfAbsent(ctx context.Context, in payroll.CreatePayslipInput) (payroll.Payslip, bool, error) {
	if existing, _ := f.FindPayslip(ctx, in.EmployeeID, in.PayPeriodStart, in.PayPeriodEnd); existing != nil {
		return *existing, false, nil
	}
	f.nextID++
	p := payroll.Payslip{
		ID: f.nextID, EmployeeID: in.EmployeeID, PayPeriodStart: in.PayPeriodStart, PayPeriodEnd: in.PayPeriodEnd,
		GrossSalary: in.GrossSalary, TotalAllowances: in.TotalAllowances, TotalDeductions: in.TotalDeductions, NetSalary: in.NetSalary,
	}
	f.payslips[p.ID] = p
	return p, true, nil
}

func (f *fakeStore) GetPayslip(_ context.Context, id int64) (*payroll.Payslip, error) {
	p, ok := f.payslips[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeStore) ListActiveEmployeeIDs(context.Context) ([]string, error) {
	return f.active, nil
}

type fakeEmployees map[string]employee.Employee

func (f fakeEmployees) GetEmployeeByEmployeeID(_ context.Context, employeeID string) (*employee.Employee, error) {
	e, ok := f[employeeID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeStore, *handlertest.Auditor) {
	store := &fakeStore{
		structure: map[string][]payroll.StructureLine{
			"EMP001": {
				{ComponentName: "Base", Type: payroll.ComponentAllowance, Amount: 5000},
				{ComponentName: "Housing", Type: payroll.ComponentAllowance, Amount: 1000},
				{ComponentName: "Tax", Type: payroll.ComponentDeduction, Amount: 800.5},
			},
		},
		payslips: map[int64]payroll.Payslip{},
		active:   []string{"EMP001", "EMP002"},
	}
	employees := fakeEmployees{
		"EMP001": {EmployeeID: "EMP001", FullName: "Jane Doe"},
		"EMP002": {EmployeeID: "EMP002", FullName: "John Roe"},
	}
	auditor := &handlertest.Auditor{}
	return NewHandler(payroll.NewService(store, employees, nil), handlertest.Guard(t), auditor), store, auditor
}

func TestGeneratePayslipIsIdempotent(t *testing.T) {
	h, store, auditor := newTestHandler(t)
	body := map[string]any{"employeeId": "EMP001", "payPeriodStart": "2024-03-01", "payPeriodEnd": "2024-03-31"}

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/payslips/generate", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var first payroll.Payslip
	handlertest.Data(t, rec, &first)
	assert.Equal(t, 6000.0, first.GrossSalary)
	assert.Equal(t, 800.5, first.TotalDeductions)
	assert.Equal(t, 5199.5, first.NetSalary)

	rec = handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/payslips/generate", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var second payroll.Payslip
	handlertest.Data(t, rec, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.payslips, 1)
	assert.Equal(t, []string{audit.ActionPayslipGenerate, audit.ActionPayslipGenerate}, auditor.Actions())
}

func TestGenerateWithoutStructureIsValidationError(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/payslips/generate", map[string]any{
		"employeeId": "EMP002", "payPeriodStart": "2024-03-01", "payPeriodEnd": "2024-03-31",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateMonthlyReportsFailures(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/payslips/generate-monthly", map[string]any{"year": 2024, "month": 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result payroll.MonthlyResult
	handlertest.Data(t, rec, &result)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Payslips, 1)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), result.Payslips[0].PayPeriodEnd.UTC())
}

func TestGenerateMonthlyValidatesMonth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/payslips/generate-monthly", map[string]any{"year": 2024, "month": 13})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManagersReadButCannotGenerate(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/payslips/generate", map[string]any{
		"employeeId": "EMP001", "payPeriodStart": "2024-03-01", "payPeriodEnd": "2024-03-31",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/payslips/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(handlertest.Decode(t, rec).Data))

	rec = handlertest.Do(t, h, auth.RoleEmployee, http.MethodGet, "/api/v1/payslips/5", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPayslipPDFDownload(t *testing.T) {
	h, _, _ := newTestHandler(t)
	require.Equal(t, http.StatusOK, handlertest.Do(t, h, auth.RoleAdmin, http.MethodPost, "/api/v1/payslips/generate", map[string]any{
		"employeeId": "EMP001", "payPeriodStart": "2024-03-01", "payPeriodEnd": "2024-03-31",
	}).Code)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/payslips/1/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-EMP001-2024-03-31.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/payslips/9/pdf", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
