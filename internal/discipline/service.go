package discipline

import (
	"context"
	"strings"

	"gymdesk/internal/apperr"
)

var (
	ErrDisciplineNotFound = apperr.NotFound("discipline_not_found", "discipline not found")
	ErrDisciplineInactive = apperr.Validation("discipline_inactive", "discipline is not active")
	ErrDuplicateName      = apperr.Conflict("discipline_name_taken", "discipline name already in use")
	ErrInvalidName        = apperr.Validation("invalid_discipline", "discipline name is required")
)

type Service interface {
	Create(ctx context.Context, tenantID int, req CreateDisciplineRequest) (*Discipline, error)
	Get(ctx context.Context, tenantID, id int) (*Discipline, error)
	List(ctx context.Context, tenantID int, onlyActive bool) ([]Discipline, error)
	Deactivate(ctx context.Context, tenantID, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, tenantID int, req CreateDisciplineRequest) (*Discipline, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return s.repo.Create(ctx, tenantID, name, strings.TrimSpace(req.Description))
}

func (s *service) Get(ctx context.Context, tenantID, id int) (*Discipline, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) List(ctx context.Context, tenantID int, onlyActive bool) ([]Discipline, error) {
	return s.repo.List(ctx, tenantID, onlyActive)
}

func (s *service) Deactivate(ctx context.Context, tenantID, id int) error {
	return s.repo.Deactivate(ctx, tenantID, id)
}
