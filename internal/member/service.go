package member

import (
	"context"
	"errors"
	"strings"

	"gymdesk/internal/apperr"
	"gymdesk/internal/logger"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound = apperr.NotFound("member_not_found", "member not found")
	ErrMemberInactive = apperr.Validation("member_inactive", "member is not active")
	ErrCodeTaken      = apperr.Conflict("member_code_taken", "member code already in use")
)

const generateAttempts = 3

// CodeInvalidator drops cached lookups for a member code.
type CodeInvalidator interface {
	Invalidate(ctx context.Context, tenantID int, code string) error
}

type Service interface {
	Create(ctx context.Context, tenantID int, req CreateMemberRequest) (*Member, error)
	Get(ctx context.Context, tenantID, id int) (*Member, error)
	GetByCode(ctx context.Context, tenantID int, code string) (*Member, error)
	List(ctx context.Context, tenantID int, onlyActive bool) ([]Member, error)
	Deactivate(ctx context.Context, tenantID, id int) (*Member, error)
}

type service struct {
	repo         Repository
	invalidator  CodeInvalidator
	generateCode func() string
}

func NewService(repo Repository, invalidator CodeInvalidator) Service {
	return &service{
		repo:         repo,
		invalidator:  invalidator,
		generateCode: newCode,
	}
}

// newCode yields short printable codes such as "M3F9A1C2E".
func newCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "M" + strings.ToUpper(raw[:8])
}

func (s *service) Create(ctx context.Context, tenantID int, req CreateMemberRequest) (*Member, error) {
	m := &Member{
		TenantID:  tenantID,
		Code:      NormalizeCode(req.Code),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
	}
	if m.FirstName == "" {
		return nil, apperr.Validation("invalid_member", "first_name is required")
	}

	if m.Code != "" {
		return s.repo.Create(ctx, m)
	}

	for attempt := 1; ; attempt++ {
		m.Code = s.generateCode()
		created, err := s.repo.Create(ctx, m)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, ErrCodeTaken) || attempt == generateAttempts {
			return nil, err
		}
		logger.Warn("generated member code collided, retrying", "tenant_id", tenantID, "attempt", attempt)
	}
}

func (s *service) Get(ctx context.Context, tenantID, id int) (*Member, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) GetByCode(ctx context.Context, tenantID int, code string) (*Member, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrMemberNotFound
	}
	return s.repo.GetByCode(ctx, tenantID, code)
}

func (s *service) List(ctx context.Context, tenantID int, onlyActive bool) ([]Member, error) {
	return s.repo.List(ctx, tenantID, onlyActive)
}

func (s *service) Deactivate(ctx context.Context, tenantID, id int) (*Member, error) {
	if err := s.repo.Deactivate(ctx, tenantID, id); err != nil {
		return nil, err
	}

	m, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, tenantID, m.Code); err != nil {
			logger.Warn("failed to invalidate member lookup cache", "tenant_id", tenantID, "member_id", id, "error", err)
		}
	}

	logger.Info("member deactivated", "tenant_id", tenantID, "member_id", id)
	return m, nil
}
