package membership

import (
	"context"
	"time"
)

type Repository interface {
	// Create writes the membership and its member shares atomically.
	Create(ctx context.Context, m *Membership) (*Membership, error)
	GetByID(ctx context.Context, tenantID, id int) (*Membership, error)
	ListByMember(ctx context.Context, tenantID, memberID int) ([]Membership, error)
	// ListActiveByMember returns uncancelled memberships of memberID ending at
	// or after now, soonest end first.
	ListActiveByMember(ctx context.Context, tenantID, memberID int, now time.Time) ([]Membership, error)
	// ListEndingBetween returns uncancelled memberships with from < end_date <= to.
	ListEndingBetween(ctx context.Context, tenantID int, from, to time.Time) ([]Membership, error)
	// Cancel sets cancelled_at when it is still null and reports whether a row changed.
	Cancel(ctx context.Context, tenantID, id int, at time.Time) (bool, error)
}
