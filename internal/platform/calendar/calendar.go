// Package calendar holds the day and month arithmetic shared by attendance, payroll and the dashboards.
// Every function works on calendar days in the supplied location.
package calendar

import "time"

const DateLayout = "2006-01-02"

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayBounds returns [midnight, next midnight) around t.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfDay(t, loc)
	return start, start.AddDate(0, 0, 1)
}

// RangeBounds turns an inclusive date range into a half-open instant range.
func RangeBounds(startDate, endDate time.Time, loc *time.Location) (time.Time, time.Time) {
	return AsLocalDate(startDate, loc), AsLocalDate(endDate, loc).AddDate(0, 0, 1)
}

// AsLocalDate reinterprets the year, month and day of d as a local date.
// DATE columns scan as UTC midnight, so converting with In would shift the day west of UTC.
func AsLocalDate(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// MonthBounds returns the first and last calendar day of the month.
func MonthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return first, first.AddDate(0, 1, -1)
}

func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// InclusiveDays counts calendar days from start to end, both included. It is 0 when end precedes start.
func InclusiveDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// WorkingDays counts Monday to Friday in the inclusive range.
func WorkingDays(start, end time.Time) int {
	count := 0
	for _, day := range Days(start, end) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// Days lists each calendar day of the inclusive range at midnight in start's location.
func Days(start, end time.Time) []time.Time {
	n := InclusiveDays(start, end)
	out := make([]time.Time, 0, n)
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for i := 0; i < n; i++ {
		out = append(out, first.AddDate(0, 0, i))
	}
	return out
}

// DateOf returns the calendar day of t in loc as UTC midnight, the form DATE columns scan into.
func DateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
