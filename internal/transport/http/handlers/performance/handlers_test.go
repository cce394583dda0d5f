package performancehandler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/domain/auth"
	"hris/internal/domain/employee"
	"hris/internal/domain/performance"
	"hris/internal/transport/http/handlertest"
)

type fakeStore struct {
	performance.StoreAPI
	goals   map[int64]performance.Goal
	reviews []performance.Review
	nextID  int64
}

func (f *fakeStore) CreateGoal(_ context.Context, in performance.CreateGoalInput) (performance.Goal, error) {
	f.nextID++
	g := performance.Goal{ID: f.nextID, EmployeeID: in.EmployeeID, Title: in.Title, Description: in.Description, DueDate: in.DueDate, Status: in.Status}
	f.goals[g.ID] = g
	return g, nil
}

func (f *fakeStore) UpdateGoal(_ context.Context, id int64, in performance.UpdateGoalInput) (*performance.Goal, error) {
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

func (f *fakeStore) CreateReview(_ context.Context, in performance.CreateReviewInput) (performance.Review, error) {
	f.nextID++
	r := performance.Review{ID: f.nextID, EmployeeID: in.EmployeeID, ReviewerID: in.ReviewerID, ReviewDate: in.ReviewDate, OverallRating: in.OverallRating}
	f.reviews = append(f.reviews, r)
	return r, nil
}

func (f *fakeStore) ListReviewsByEmployee(_ context.Context, employeeID string) ([]performance.Review, error) {
	out := []performance.Review{}
	for _, r := range f.reviews {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployees map[string]bool

func (f fakeEmployees) GetEmployeeByEmployeeID(_ context.Context, employeeID string) (*employee.Employee, error) {
	if !f[employeeID] {
		return nil, nil
	}
	return &employee.Employee{EmployeeID: employeeID}, nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeStore) {
	store := &fakeStore{goals: map[int64]performance.Goal{}}
	svc := performance.NewService(store, fakeEmployees{"EMP001": true, "MGR001": true}, time.UTC)
	return NewHandler(svc, handlertest.Guard(t)), store
}

func TestCreateGoalDefaultsStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/performance-goals", map[string]any{
		"employeeId": "EMP001",
		"title":      "Ship onboarding revamp",
		"dueDate":    "2024-09-30",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var goal performance.Goal
	handlertest.Data(t, rec, &goal)
	assert.Equal(t, performance.GoalNotStarted, goal.Status)
	require.NotNil(t, goal.DueDate)
}

func TestUpdateGoalClearsDueDate(t *testing.T) {
	h, _ := newTestHandler(t)
	require.Equal(t, http.StatusCreated, handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/performance-goals", map[string]any{
		"employeeId": "EMP001", "title": "Mentor a new hire", "dueDate": "2024-09-30",
	}).Code)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPatch, "/api/v1/performance-goals/1", `{"dueDate":null,"status":"In Progress"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var goal performance.Goal
	handlertest.Data(t, rec, &goal)
	assert.Nil(t, goal.DueDate)
	assert.Equal(t, performance.GoalInProgress, goal.Status)
}

func TestUpdateGoalRejectsUnknownStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPatch, "/api/v1/performance-goals/1", map[string]any{"status": "Done"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReviewValidatesRatingAndReviewer(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/performance-reviews", map[string]any{
		"employeeId": "EMP001", "reviewerId": "MGR001", "reviewDate": "2024-06-30", "overallRating": 6,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/performance-reviews", map[string]any{
		"employeeId": "EMP001", "reviewerId": "MGR404", "reviewDate": "2024-06-30", "overallRating": 4,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "reviewer not found", handlertest.Decode(t, rec).Error.Message)
}

func TestAverageRating(t *testing.T) {
	h, _ := newTestHandler(t)
	for _, rating := range []int{4, 5, 4} {
		rec := handlertest.Do(t, h, auth.RoleManager, http.MethodPost, "/api/v1/performance-reviews", map[string]any{
			"employeeId": "EMP001", "reviewerId": "MGR001", "reviewDate": "2024-06-30", "overallRating": rating,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodGet, "/api/v1/performance-reviews/average-rating/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var avg performance.AverageRating
	handlertest.Data(t, rec, &avg)
	assert.Equal(t, 4.33, avg.AverageRating)
	assert.Equal(t, 3, avg.ReviewCount)
}

func TestEmployeesCannotWriteGoals(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodPost, "/api/v1/performance-goals", map[string]any{"employeeId": "EMP001", "title": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
