package performance

import (
	"time"

	"hris/internal/platform/optional"
)

type Goal struct {
	ID          int64      `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Status      GoalStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type CreateGoalInput struct {
	EmployeeID  string
	Title       string
	Description *string
	DueDate     *time.Time
	Status      GoalStatus
}

type UpdateGoalInput struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	DueDate     optional.Value[time.Time]
	Status      optional.Value[GoalStatus]
}

type Review struct {
	ID            int64     `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	ReviewerID    string    `json:"reviewerId"`
	ReviewDate    time.Time `json:"reviewDate"`
	OverallRating int       `json:"overallRating"`
	Comments      *string   `json:"comments"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateReviewInput struct {
	EmployeeID    string
	ReviewerID    string
	ReviewDate    time.Time
	OverallRating int
	Comments      *string
}

type UpdateReviewInput struct {
	ReviewDate    optional.Value[time.Time]
	OverallRating optional.Value[int]
	Comments      optional.Value[string]
}

type AverageRating struct {
	EmployeeID    string  `json:"employeeId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}
