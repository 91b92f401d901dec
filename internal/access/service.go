package access

import (
	"context"

	"gymdesk/internal/apperr"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/metrics"
)

var ErrEmptyCode = apperr.Validation("empty_code", "member code is required")

type MemberDirectory interface {
	GetByCode(ctx context.Context, tenantID int, code string) (*member.Member, error)
}

type MembershipLister interface {
	ListActiveByMember(ctx context.Context, tenantID, memberID int) ([]membership.View, error)
}

// AccessCard is what the front desk sees after scanning a code.
type AccessCard struct {
	Member            *member.Member    `json:"member"`
	ActiveMemberships []membership.View `json:"active_memberships"`
	HasAccess         bool              `json:"has_access"`
}

type Service interface {
	// FindByCode resolves a member code, inactive members included.
	FindByCode(ctx context.Context, tenantID int, code string) (*member.Member, error)
	ActiveMembershipsOf(ctx context.Context, tenantID, memberID int) ([]membership.View, error)
	Scan(ctx context.Context, tenantID int, code string) (*AccessCard, error)
}

type service struct {
	members     MemberDirectory
	memberships MembershipLister
	cache       Cache
}

func NewService(members MemberDirectory, memberships MembershipLister, cache Cache) Service {
	return &service{
		members:     members,
		memberships: memberships,
		cache:       cache,
	}
}

func (s *service) FindByCode(ctx context.Context, tenantID int, code string) (*member.Member, error) {
	code = member.NormalizeCode(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	if s.cache != nil {
		m, ok, err := s.cache.Get(ctx, tenantID, code)
		switch {
		case err != nil:
			metrics.RecordLookupCache(metrics.CacheError)
			logger.Warn("lookup cache read failed", "tenant_id", tenantID, "error", err)
		case ok:
			metrics.RecordLookupCache(metrics.CacheHit)
			return m, nil
		default:
			metrics.RecordLookupCache(metrics.CacheMiss)
		}
	}

	m, err := s.members.GetByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, m); err != nil {
			logger.Warn("lookup cache write failed", "tenant_id", tenantID, "error", err)
		}
	}
	return m, nil
}

func (s *service) ActiveMembershipsOf(ctx context.Context, tenantID, memberID int) ([]membership.View, error) {
	return s.memberships.ListActiveByMember(ctx, tenantID, memberID)
}

func (s *service) Scan(ctx context.Context, tenantID int, code string) (*AccessCard, error) {
	m, err := s.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	active, err := s.ActiveMembershipsOf(ctx, tenantID, m.ID)
	if err != nil {
		return nil, err
	}

	return &AccessCard{
		Member:            m,
		ActiveMemberships: active,
		HasAccess:         m.Active && len(active) > 0,
	}, nil
}
