// Package calendar holds the date arithmetic shared by memberships and
// attendance: month addition with end-of-month clamping and tenant-local
// calendar days.
package calendar

import (
	"context"
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// AddMonths moves t forward by n calendar months keeping the day of month,
// clamped to the last day of the target month (Jan 31 + 1 => Feb 28/29).
// The wall clock time and location of t are preserved.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := DaysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOf returns the calendar date of t as seen in loc, as midnight UTC.
// The result is what gets stored in DATE columns.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// Zones resolves the timezone a tenant's calendar days are counted in.
type Zones interface {
	Location(ctx context.Context, tenantID int) (*time.Location, error)
}

// StaticZone serves the same location for every tenant.
type StaticZone struct {
	Loc *time.Location
}

func (z StaticZone) Location(_ context.Context, _ int) (*time.Location, error) {
	if z.Loc == nil {
		return time.UTC, nil
	}
	return z.Loc, nil
}

// LoadZone parses an IANA zone name, empty meaning UTC.
func LoadZone(name string) (StaticZone, error) {
	if name == "" {
		return StaticZone{Loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return StaticZone{}, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return StaticZone{Loc: loc}, nil
}
