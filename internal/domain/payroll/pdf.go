package payroll

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hris/internal/platform/calendar"
)

// PayslipPDF renders the payslip on demand; nothing is written to disk.
func (s *Service) PayslipPDF(ctx context.Context, id int64) ([]byte, string, error) {
	payslip, err := s.store.GetPayslip(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if payslip == nil {
		return nil, "", ErrPayslipNotFound
	}
	emp, err := s.employees.GetEmployeeByEmployeeID(ctx, payslip.EmployeeID)
	if err != nil {
		return nil, "", err
	}
	name := payslip.EmployeeID
	if emp != nil {
		name = emp.FullName
	}
	lines, err := s.store.ListStructureLines(ctx, payslip.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	data, err := renderPayslip(*payslip, name, lines)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("payslip-%s-%s.pdf", payslip.EmployeeID, payslip.PayPeriodEnd.Format(calendar.DateLayout))
	return data, filename, nil
}

func renderPayslip(p Payslip, employeeName string, lines []StructureLine) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", employeeName, p.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", p.PayPeriodStart.Format(calendar.DateLayout), p.PayPeriodEnd.Format(calendar.DateLayout)))
	pdf.Ln(10)

	if len(lines) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Salary structure")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range lines {
			pdf.Cell(90, 7, fmt.Sprintf("%s (%s)", line.ComponentName, line.Type))
			pdf.Cell(0, 7, fmt.Sprintf("%.2f", line.Amount))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", p.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %.2f", p.TotalAllowances))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", p.TotalDeductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", p.NetSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
