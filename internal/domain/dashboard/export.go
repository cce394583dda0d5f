package dashboard

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	departmentSheet = "By Department"
)

// PayrollStatsWorkbook renders the monthly payroll statistics as an xlsx file.
func (s *Service) PayrollStatsWorkbook(ctx context.Context, year, month int) ([]byte, string, error) {
	stats, err := s.PayrollStats(ctx, year, month)
	if err != nil {
		return nil, "", err
	}
	data, err := PayrollWorkbook(stats, year, month)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("payroll-stats-%04d-%02d.xlsx", year, month), nil
}

func PayrollWorkbook(stats PayrollStats, year, month int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	summary := [][]any{
		{"Period", fmt.Sprintf("%04d-%02d", year, month)},
		{"Total gross pay", stats.TotalGrossPay},
		{"Total net pay", stats.TotalNetPay},
		{"Total allowances", stats.TotalAllowances},
		{"Total deductions", stats.TotalDeductions},
		{"Average salary", stats.AverageSalary},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(departmentSheet); err != nil {
		return nil, err
	}
	rows := [][]any{{"Department", "Total gross pay", "Total net pay", "Employees"}}
	for _, d := range stats.PayrollByDepartment {
		rows = append(rows, []any{d.Department, d.TotalGrossPay, d.TotalNetPay, d.EmployeeCount})
	}
	if err := writeRows(f, departmentSheet, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
