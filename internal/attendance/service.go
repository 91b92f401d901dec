package attendance

import (
	"context"
	"time"

	"gymdesk/internal/apperr"
	"gymdesk/internal/calendar"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/metrics"
)

var (
	ErrAlreadyCheckedIn   = apperr.Conflict("already_checked_in", "already checked in today")
	ErrAttendanceNotFound = apperr.NotFound("attendance_not_found", "attendance not found")
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Access is the lookup side of the front desk: code resolution and the
// memberships currently granting access.
type Access interface {
	FindByCode(ctx context.Context, tenantID int, code string) (*member.Member, error)
	ActiveMembershipsOf(ctx context.Context, tenantID, memberID int) ([]membership.View, error)
}

type MemberDirectory interface {
	Get(ctx context.Context, tenantID, id int) (*member.Member, error)
}

type Service interface {
	CheckIn(ctx context.Context, tenantID int, in CheckInInput) (*CheckInResult, error)
	ListByMember(ctx context.Context, tenantID, memberID, limit, offset int) ([]Attendance, error)
	// ListByDay lists check-ins of one tenant-local day; a zero day means today.
	ListByDay(ctx context.Context, tenantID int, day time.Time) ([]Attendance, error)
}

type service struct {
	repo    Repository
	access  Access
	members MemberDirectory
	zones   calendar.Zones
	now     func() time.Time
}

func NewService(repo Repository, access Access, members MemberDirectory, zones calendar.Zones, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:    repo,
		access:  access,
		members: members,
		zones:   zones,
		now:     now,
	}
}

func (s *service) CheckIn(ctx context.Context, tenantID int, in CheckInInput) (*CheckInResult, error) {
	m, err := s.access.FindByCode(ctx, tenantID, in.MemberCode)
	if err != nil {
		return nil, err
	}

	day, now, err := s.today(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	created, inserted, err := s.repo.Insert(ctx, &Attendance{
		TenantID:   tenantID,
		MemberID:   m.ID,
		CheckedAt:  now,
		CheckinDay: day,
		Notes:      in.Notes,
	})
	if err != nil {
		return nil, err
	}

	if !inserted {
		existing, err := s.repo.GetForDay(ctx, tenantID, m.ID, day)
		if err != nil {
			return nil, err
		}
		metrics.RecordCheckIn(metrics.CheckInDuplicate)
		return nil, &ConflictError{
			Member:            m,
			ExistingCheckedAt: existing.CheckedAt,
			Existing:          existing,
		}
	}

	metrics.RecordCheckIn(metrics.CheckInRecorded)

	active, err := s.access.ActiveMembershipsOf(ctx, tenantID, m.ID)
	if err != nil {
		logger.Warn("failed to load active memberships after check-in",
			"tenant_id", tenantID,
			"member_id", m.ID,
			"error", err,
		)
		active = []membership.View{}
	}
	if len(active) == 0 {
		logger.Info("check-in without active membership", "tenant_id", tenantID, "member_id", m.ID)
	}

	return &CheckInResult{
		Attendance:        created,
		Member:            m,
		ActiveMemberships: active,
	}, nil
}

func (s *service) ListByMember(ctx context.Context, tenantID, memberID, limit, offset int) ([]Attendance, error) {
	if _, err := s.members.Get(ctx, tenantID, memberID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByMember(ctx, tenantID, memberID, limit, offset)
}

func (s *service) ListByDay(ctx context.Context, tenantID int, day time.Time) ([]Attendance, error) {
	if day.IsZero() {
		today, _, err := s.today(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		day = today
	}
	return s.repo.ListByDay(ctx, tenantID, day)
}

func (s *service) today(ctx context.Context, tenantID int) (time.Time, time.Time, error) {
	loc, err := s.zones.Location(ctx, tenantID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	now := s.now()
	return calendar.DayOf(now, loc), now, nil
}
