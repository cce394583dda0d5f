package attendancehandler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hris/internal/apperr"
	"hris/internal/domain/attendance"
	"hris/internal/domain/auth"
	"hris/internal/transport/http/handlertest"
)

type fakeEmployees map[string]bool

func (f fakeEmployees) RequireEmployee(_ context.Context, employeeID string) error {
	if !f[employeeID] {
		return apperr.NotFound("employee not found")
	}
	return nil
}

type fakeStore struct {
	attendance.StoreAPI
	records map[int64]attendance.Record
	nextID  int64
	lastEmp string
}

func (f *fakeStore) Create(_ context.Context, in attendance.CheckInInput) (attendance.Record, error) {
	f.nextID++
	rec := attendance.Record{ID: f.nextID, EmployeeID: in.EmployeeID, CheckInTime: in.CheckInTime, CheckOutTime: in.CheckOutTime}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (*attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, in attendance.UpdateInput) (*attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	if in.CheckOutTime.Set {
		rec.CheckOutTime = in.CheckOutTime.Ptr()
	}
	f.records[id] = rec
	return &rec, nil
}

func (f *fakeStore) ListBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	f.lastEmp = employeeID
	out := []attendance.Record{}
	for _, rec := range f.records {
		if !rec.CheckInTime.Before(from) && rec.CheckInTime.Before(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeStore) {
	store := &fakeStore{records: map[int64]attendance.Record{}}
	svc := attendance.NewService(store, fakeEmployees{"EMP001": true}, time.UTC)
	return NewHandler(svc, handlertest.Guard(t)), store
}

func TestCheckInAndCheckOut(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodPost, "/api/v1/attendance", map[string]any{
		"employeeId":  "EMP001",
		"checkInTime": "2024-05-06T08:55:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = handlertest.Do(t, h, auth.RoleEmployee, http.MethodPatch, "/api/v1/attendance/1", map[string]any{
		"checkOutTime": "2024-05-06T17:05:00Z",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got attendance.Record
	handlertest.Data(t, rec, &got)
	require.NotNil(t, got.CheckOutTime)
	assert.Equal(t, 17, got.CheckOutTime.UTC().Hour())
}

func TestCheckOutBeforeCheckInIsRejected(t *testing.T) {
	h, _ := newTestHandler(t)
	require.Equal(t, http.StatusCreated, handlertest.Do(t, h, auth.RoleEmployee, http.MethodPost, "/api/v1/attendance", map[string]any{
		"employeeId":  "EMP001",
		"checkInTime": "2024-05-06T09:00:00Z",
	}).Code)

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodPatch, "/api/v1/attendance/1", map[string]any{
		"checkOutTime": "2024-05-06T08:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInUnknownEmployeeIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleEmployee, http.MethodPost, "/api/v1/attendance", map[string]any{"employeeId": "EMP404"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListByDateRangeValidatesOrder(t *testing.T) {
	h, store := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/attendance?employeeId=EMP001&startDate=2024-05-10&endDate=2024-05-01", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/attendance?employeeId=EMP001&startDate=2024-05-01&endDate=2024-05-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EMP001", store.lastEmp)
}

func TestListRequiresEmployeeWithoutRange(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := handlertest.Do(t, h, auth.RoleManager, http.MethodGet, "/api/v1/attendance", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
