package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Insert records a check-in unless one exists for the member on the same
	// day. The bool is false when the day was already taken.
	Insert(ctx context.Context, a *Attendance) (*Attendance, bool, error)
	GetForDay(ctx context.Context, tenantID, memberID int, day time.Time) (*Attendance, error)
	ListByMember(ctx context.Context, tenantID, memberID, limit, offset int) ([]Attendance, error)
	ListByDay(ctx context.Context, tenantID int, day time.Time) ([]Attendance, error)
}
