package pricing

import (
	"context"

	"gymdesk/internal/apperr"
	"gymdesk/internal/discipline"
)

var (
	ErrPlanNotFound     = apperr.NotFound("plan_not_found", "no pricing plan for this combination")
	ErrInvalidPartySize = apperr.Validation("invalid_num_people", "num_people must be at least 1")
	ErrInvalidDuration  = apperr.Validation("invalid_num_months", "num_months must be at least 1")
	ErrInvalidPrice     = apperr.Validation("invalid_price", "price_cents must be positive")
	ErrDuplicatePlan    = apperr.Conflict("plan_exists", "a plan for this discipline, party size and duration already exists")
)

// DisciplineCatalog is the subset of the discipline catalog the resolver needs.
type DisciplineCatalog interface {
	Get(ctx context.Context, tenantID, id int) (*discipline.Discipline, error)
}

type Service interface {
	// Resolve returns the plan matching the triple exactly. ErrPlanNotFound is
	// an ordinary outcome; callers fall back to a manually entered amount.
	Resolve(ctx context.Context, tenantID, disciplineID, numPeople, numMonths int) (*Plan, error)
	ListForDiscipline(ctx context.Context, tenantID, disciplineID int) ([]Plan, error)
	Get(ctx context.Context, tenantID, planID int) (*Plan, error)
	Create(ctx context.Context, tenantID, disciplineID int, req CreatePlanRequest) (*Plan, error)
}

type service struct {
	repo        Repository
	disciplines DisciplineCatalog
}

func NewService(repo Repository, disciplines DisciplineCatalog) Service {
	return &service{
		repo:        repo,
		disciplines: disciplines,
	}
}

func (s *service) Resolve(ctx context.Context, tenantID, disciplineID, numPeople, numMonths int) (*Plan, error) {
	if numPeople < 1 {
		return nil, ErrInvalidPartySize
	}
	if numMonths < 1 {
		return nil, ErrInvalidDuration
	}
	return s.repo.FindExact(ctx, tenantID, disciplineID, numPeople, numMonths)
}

func (s *service) ListForDiscipline(ctx context.Context, tenantID, disciplineID int) ([]Plan, error) {
	return s.repo.ListForDiscipline(ctx, tenantID, disciplineID)
}

func (s *service) Get(ctx context.Context, tenantID, planID int) (*Plan, error) {
	return s.repo.GetByID(ctx, tenantID, planID)
}

func (s *service) Create(ctx context.Context, tenantID, disciplineID int, req CreatePlanRequest) (*Plan, error) {
	if req.NumPeople < 1 {
		return nil, ErrInvalidPartySize
	}
	if req.NumMonths < 1 {
		return nil, ErrInvalidDuration
	}
	if req.PriceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	if _, err := s.disciplines.Get(ctx, tenantID, disciplineID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Plan{
		TenantID:     tenantID,
		DisciplineID: disciplineID,
		NumPeople:    req.NumPeople,
		NumMonths:    req.NumMonths,
		PriceCents:   req.PriceCents,
	})
}
