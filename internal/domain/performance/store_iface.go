package performance

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateGoal(ctx context.Context, in CreateGoalInput) (Goal, error)
	ListGoals(ctx context.Context) ([]Goal, error)
	ListGoalsByEmployee(ctx context.Context, employeeID string) ([]Goal, error)
	ListGoalsByStatus(ctx context.Context, status GoalStatus) ([]Goal, error)
	ListOverdueGoals(ctx context.Context, today time.Time) ([]Goal, error)
	GetGoal(ctx context.Context, id int64) (*Goal, error)
	UpdateGoal(ctx context.Context, id int64, in UpdateGoalInput) (*Goal, error)
	DeleteGoal(ctx context.Context, id int64) (bool, error)

	CreateReview(ctx context.Context, in CreateReviewInput) (Review, error)
	ListReviews(ctx context.Context) ([]Review, error)
	ListReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	ListReviewsByReviewer(ctx context.Context, reviewerID string) ([]Review, error)
	GetReview(ctx context.Context, id int64) (*Review, error)
	UpdateReview(ctx context.Context, id int64, in UpdateReviewInput) (*Review, error)
	DeleteReview(ctx context.Context, id int64) (bool, error)
}
