package performance

import (
	"time"

	"github.com/shopspring/decimal"
)

// IsOverdue is the one overdue rule: a due date strictly before today on a goal that is not Completed.
// today is a calendar day at UTC midnight, matching how DATE columns scan.
func IsOverdue(g Goal, today time.Time) bool {
	if g.DueDate == nil || g.Status == GoalCompleted {
		return false
	}
	return g.DueDate.Before(today)
}

// MeanRating averages ratings to two decimals; no ratings yields 0.
func MeanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2).InexactFloat64()
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
