package attendance

import (
	"fmt"
	"time"

	"gymdesk/internal/member"
	"gymdesk/internal/membership"
)

type Attendance struct {
	ID         int       `db:"id" json:"id"`
	TenantID   int       `db:"tenant_id" json:"-"`
	MemberID   int       `db:"member_id" json:"member_id"`
	CheckedAt  time.Time `db:"checked_at" json:"checked_at"`
	CheckinDay time.Time `db:"checkin_day" json:"-"`
	Notes      *string   `db:"notes" json:"notes"`
}

type CheckInInput struct {
	MemberCode string  `json:"member_code" binding:"required" example:"M3F9A1C2E"`
	Notes      *string `json:"notes,omitempty"`
}

// CheckInResult carries the member's active memberships so the desk can warn
// when none grant access. The check-in is recorded either way.
type CheckInResult struct {
	Attendance        *Attendance       `json:"attendance"`
	Member            *member.Member    `json:"member"`
	ActiveMemberships []membership.View `json:"active_memberships"`
}

// ConflictError reports a second check-in on the same tenant-local day.
type ConflictError struct {
	Member            *member.Member
	ExistingCheckedAt time.Time
	Existing          *Attendance
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (%s) already checked in at %s", e.Member.FullName(), e.Member.Code, e.ExistingCheckedAt.Format("15:04"))
}

func (e *ConflictError) Unwrap() error {
	return ErrAlreadyCheckedIn
}

type ConflictResponse struct {
	Error             string         `json:"error" example:"already checked in today"`
	Code              string         `json:"code" example:"already_checked_in"`
	Member            *member.Member `json:"member"`
	ExistingCheckedAt time.Time      `json:"existing_checked_at"`
	Existing          *Attendance    `json:"existing"`
}
