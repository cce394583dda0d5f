package payroll

import "github.com/shopspring/decimal"

// ComputeTotals sums the salary structure. Gross equals total allowances; net is not clamped.
func ComputeTotals(lines []StructureLine) Totals {
	allowances := decimal.Zero
	deductions := decimal.Zero
	for _, line := range lines {
		amount := decimal.NewFromFloat(line.Amount)
		switch line.Type {
		case ComponentAllowance:
			allowances = allowances.Add(amount)
		case ComponentDeduction:
			deductions = deductions.Add(amount)
		}
	}
	allowances = allowances.Round(2)
	deductions = deductions.Round(2)
	return Totals{
		GrossSalary:     allowances.InexactFloat64(),
		TotalAllowances: allowances.InexactFloat64(),
		TotalDeductions: deductions.InexactFloat64(),
		NetSalary:       allowances.Sub(deductions).Round(2).InexactFloat64(),
	}
}

// Round2 rounds a money value half away from zero to two decimals.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
