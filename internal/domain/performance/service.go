package performance

import (
	"context"
	"time"

	"hris/internal/domain/employee"
	"hris/internal/platform/calendar"
)

// Employees is satisfied by employee.Service.
type Employees interface {
	GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error)
}

type Service struct {
	store     StoreAPI
	employees Employees
	loc       *time.Location
	now       func() time.Time
}

func NewService(store StoreAPI, employees Employees, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, employees: employees, loc: loc, now: time.Now}
}

func (s *Service) CreateGoal(ctx context.Context, in CreateGoalInput) (Goal, error) {
	if in.Status == "" {
		in.Status = GoalNotStarted
	}
	if !in.Status.Valid() {
		return Goal{}, ErrInvalidGoalStatus
	}
	if err := s.requireEmployee(ctx, in.EmployeeID, employee.ErrEmployeeNotFound); err != nil {
		return Goal{}, err
	}
	return s.store.CreateGoal(ctx, in)
}

func (s *Service) ListGoals(ctx context.Context) ([]Goal, error) {
	return s.store.ListGoals(ctx)
}

func (s *Service) ListGoalsByEmployee(ctx context.Context, employeeID string) ([]Goal, error) {
	return s.store.ListGoalsByEmployee(ctx, employeeID)
}

func (s *Service) ListGoalsByStatus(ctx context.Context, status GoalStatus) ([]Goal, error) {
	if !status.Valid() {
		return nil, ErrInvalidGoalStatus
	}
	return s.store.ListGoalsByStatus(ctx, status)
}

func (s *Service) ListOverdueGoals(ctx context.Context) ([]Goal, error) {
	return s.store.ListOverdueGoals(ctx, s.Today())
}

// Today is the current calendar day in the configured zone.
func (s *Service) Today() time.Time {
	return calendar.DateOf(s.now(), s.loc)
}

func (s *Service) GetGoal(ctx context.Context, id int64) (*Goal, error) {
	return s.store.GetGoal(ctx, id)
}

func (s *Service) UpdateGoal(ctx context.Context, id int64, in UpdateGoalInput) (Goal, error) {
	if in.Status.Set && !in.Status.Value.Valid() {
		return Goal{}, ErrInvalidGoalStatus
	}
	updated, err := s.store.UpdateGoal(ctx, id, in)
	if err != nil {
		return Goal{}, err
	}
	if updated == nil {
		return Goal{}, ErrGoalNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteGoal(ctx, id)
}

func (s *Service) CreateReview(ctx context.Context, in CreateReviewInput) (Review, error) {
	if !ValidRating(in.OverallRating) {
		return Review{}, ErrRatingOutOfRange
	}
	if err := s.requireEmployee(ctx, in.EmployeeID, employee.ErrEmployeeNotFound); err != nil {
		return Review{}, err
	}
	if err := s.requireEmployee(ctx, in.ReviewerID, ErrReviewerNotFound); err != nil {
		return Review{}, err
	}
	return s.store.CreateReview(ctx, in)
}

func (s *Service) ListReviews(ctx context.Context) ([]Review, error) {
	return s.store.ListReviews(ctx)
}

func (s *Service) ListReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error) {
	return s.store.ListReviewsByEmployee(ctx, employeeID)
}

func (s *Service) ListReviewsByReviewer(ctx context.Context, reviewerID string) ([]Review, error) {
	return s.store.ListReviewsByReviewer(ctx, reviewerID)
}

func (s *Service) GetReview(ctx context.Context, id int64) (*Review, error) {
	return s.store.GetReview(ctx, id)
}

func (s *Service) UpdateReview(ctx context.Context, id int64, in UpdateReviewInput) (Review, error) {
	if in.OverallRating.Set && !ValidRating(in.OverallRating.Value) {
		return Review{}, ErrRatingOutOfRange
	}
	updated, err := s.store.UpdateReview(ctx, id, in)
	if err != nil {
		return Review{}, err
	}
	if updated == nil {
		return Review{}, ErrReviewNotFound
	}
	return *updated, nil
}

func (s *Service) DeleteReview(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteReview(ctx, id)
}

func (s *Service) AverageRating(ctx context.Context, employeeID string) (AverageRating, error) {
	reviews, err := s.store.ListReviewsByEmployee(ctx, employeeID)
	if err != nil {
		return AverageRating{}, err
	}
	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.OverallRating)
	}
	return AverageRating{EmployeeID: employeeID, AverageRating: MeanRating(ratings), ReviewCount: len(ratings)}, nil
}

func (s *Service) requireEmployee(ctx context.Context, employeeID string, missing error) error {
	emp, err := s.employees.GetEmployeeByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp == nil {
		return missing
	}
	return nil
}
