package performance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/employee"
	"hris/internal/platform/optional"
)

type fakeStore struct {
	StoreAPI
	goals     map[int64]Goal
	reviews   []Review
	overdueAt time.Time
}

func (f *fakeStore) CreateGoal(ctx context.Context, in CreateGoalInput) (Goal, error) {
	g := Goal{ID: int64(len(f.goals) + 1), EmployeeID: in.EmployeeID, Title: in.Title, DueDate: in.DueDate, Status: in.Status}
	f.goals[g.ID] = g
	return g, nil
}

func (f *fakeStore) UpdateGoal(ctx context.Context, id int64, in UpdateGoalInput) (*Goal, error) {
	g, ok := f.goals[id]
	if !ok {
		return nil, nil
	}
	if in.Status.Set {
		g.Status = in.Status.Value
	}
	if in.DueDate.Set {
		g.DueDate = in.DueDate.Ptr()
	}
	f.goals[id] = g
	return &g, nil
}

func (f *fakeStore) ListOverdueGoals(ctx context.Context, today time.Time) ([]Goal, error) {
	f.overdueAt = today
	var out []Goal
	for _, g := range f.goals {
		if IsOverdue(g, today) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateReview(ctx context.Context, in CreateReviewInput) (Review, error) {
	r := Review{ID: int64(len(f.reviews) + 1), EmployeeID: in.EmployeeID, ReviewerID: in.ReviewerID, OverallRating: in.OverallRating}
	f.reviews = append(f.reviews, r)
	return r, nil
}

func (f *fakeStore) ListReviewsByEmployee(ctx context.Context, employeeID string) ([]Review, error) {
	var out []Review
	for _, r := range f.reviews {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateReview(ctx context.Context, id int64, in UpdateReviewInput) (*Review, error) {
	return nil, nil
}

type fakeEmployees map[string]bool

func (f fakeEmployees) GetEmployeeByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	if !f[employeeID] {
		return nil, nil
	}
	return &employee.Employee{EmployeeID: employeeID}, nil
}

func newTestService() (*Service, *fakeStore) {
	store := &fakeStore{goals: map[int64]Goal{}}
	svc := NewService(store, fakeEmployees{"EMP001": true, "MGR001": true}, time.UTC)
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestCreateGoalDefaultsStatus(t *testing.T) {
	svc, _ := newTestService()
	g, err := svc.CreateGoal(context.Background(), CreateGoalInput{EmployeeID: "EMP001", Title: "Ship v2"})
	require.NoError(t, err)
	assert.Equal(t, GoalNotStarted, g.Status)

	_, err = svc.CreateGoal(context.Background(), CreateGoalInput{EmployeeID: "EMP404", Title: "x"})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.CreateGoal(context.Background(), CreateGoalInput{EmployeeID: "EMP001", Title: "x", Status: "Paused"})
	require.ErrorIs(t, err, ErrInvalidGoalStatus)
}

func TestOverdueGoalsLeaveOnceCompleted(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	past := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	g, err := svc.CreateGoal(ctx, CreateGoalInput{EmployeeID: "EMP001", Title: "Late", DueDate: &past, Status: GoalInProgress})
	require.NoError(t, err)

	overdue, err := svc.ListOverdueGoals(ctx)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), store.overdueAt)

	_, err = svc.UpdateGoal(ctx, g.ID, UpdateGoalInput{Status: optional.Of(GoalCompleted)})
	require.NoError(t, err)
	overdue, err = svc.ListOverdueGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestUpdateGoalMissing(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.UpdateGoal(context.Background(), 99, UpdateGoalInput{Title: optional.Of("x")})
	require.ErrorIs(t, err, ErrGoalNotFound)
}

func TestCreateReviewChecksRatingAndPeople(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, CreateReviewInput{EmployeeID: "EMP001", ReviewerID: "MGR001", OverallRating: 6})
	require.ErrorIs(t, err, ErrRatingOutOfRange)
	_, err = svc.CreateReview(ctx, CreateReviewInput{EmployeeID: "EMP001", ReviewerID: "MGR404", OverallRating: 3})
	require.ErrorIs(t, err, ErrReviewerNotFound)
	_, err = svc.CreateReview(ctx, CreateReviewInput{EmployeeID: "EMP404", ReviewerID: "MGR001", OverallRating: 3})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAverageRating(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	empty, err := svc.AverageRating(ctx, "EMP001")
	require.NoError(t, err)
	assert.Zero(t, empty.AverageRating)

	for _, rating := range []int{4, 5, 3} {
		_, err := svc.CreateReview(ctx, CreateReviewInput{EmployeeID: "EMP001", ReviewerID: "MGR001", OverallRating: rating})
		require.NoError(t, err)
	}
	avg, err := svc.AverageRating(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg.AverageRating)
	assert.Equal(t, 3, avg.ReviewCount)
}

func TestUpdateReviewRejectsBadRatingAndMissingRow(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.UpdateReview(context.Background(), 1, UpdateReviewInput{OverallRating: optional.Of(0)})
	require.ErrorIs(t, err, ErrRatingOutOfRange)
	_, err = svc.UpdateReview(context.Background(), 1, UpdateReviewInput{OverallRating: optional.Of(4)})
	require.ErrorIs(t, err, ErrReviewNotFound)
}
