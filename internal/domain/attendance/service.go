package attendance

import (
	"context"
	"time"

	"hris/internal/platform/calendar"
)

type Service struct {
	store     StoreAPI
	employees EmployeeLookup
	loc       *time.Location
	now       func() time.Time
}

func NewService(store StoreAPI, employees EmployeeLookup, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, employees: employees, loc: loc, now: time.Now}
}

func (s *Service) CheckIn(ctx context.Context, in CheckInInput) (Record, error) {
	if err := s.employees.RequireEmployee(ctx, in.EmployeeID); err != nil {
		return Record{}, err
	}
	if in.CheckInTime.IsZero() {
		in.CheckInTime = s.now()
	}
	if in.CheckOutTime != nil && in.CheckOutTime.Before(in.CheckInTime) {
		return Record{}, ErrCheckOutBeforeIn
	}
	return s.store.Create(ctx, in)
}

// Update is the check-out path; it also corrects the check-in time.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Record, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if current == nil {
		return Record{}, ErrRecordNotFound
	}

	checkIn := current.CheckInTime
	if in.CheckInTime.Set {
		checkIn = in.CheckInTime.Value
	}
	checkOut := current.CheckOutTime
	if in.CheckOutTime.Set {
		checkOut = in.CheckOutTime.Ptr()
	}
	if checkOut != nil && checkOut.Before(checkIn) {
		return Record{}, ErrCheckOutBeforeIn
	}

	updated, err := s.store.Update(ctx, id, in)
	if err != nil {
		return Record{}, err
	}
	if updated == nil {
		return Record{}, ErrRecordNotFound
	}
	return *updated, nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

// Today lists every check-in between local midnight and the next midnight.
func (s *Service) Today(ctx context.Context) ([]Record, error) {
	from, to := calendar.DayBounds(s.now(), s.loc)
	return s.store.ListBetween(ctx, "", from, to)
}

// ByDateRange treats both dates as inclusive calendar days.
func (s *Service) ByDateRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Record, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidRange
	}
	from, to := calendar.RangeBounds(startDate, endDate, s.loc)
	return s.store.ListBetween(ctx, employeeID, from, to)
}
