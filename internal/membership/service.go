package membership

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/apperr"
	"gymdesk/internal/calendar"
	"gymdesk/internal/config"
	"gymdesk/internal/discipline"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
	"gymdesk/internal/pricing"
)

var (
	ErrMembershipNotFound   = apperr.NotFound("membership_not_found", "membership not found")
	ErrInvalidAmount        = apperr.Validation("invalid_amount", "total_amount_cents must be positive")
	ErrInvalidDuration      = apperr.Validation("invalid_duration", "duration_months must be at least 1")
	ErrInvalidPaymentMethod = apperr.Validation("invalid_payment_method", "payment_method must be one of cash, card, transfer, other")
	ErrEndInPast            = apperr.Validation("end_date_in_past", "membership would already be expired")
	ErrPartySizeMismatch    = apperr.Validation("party_size_mismatch", "number of members does not match the plan")
	ErrPrimaryCount         = apperr.Validation("primary_count", "exactly one member must be primary")
	ErrDuplicateMember      = apperr.Validation("duplicate_member", "a member appears more than once")
	ErrPlanMismatch         = apperr.Validation("plan_mismatch", "pricing plan does not fit this membership")
	ErrCancelExpired        = apperr.InvalidTransition("membership_expired", "expired memberships cannot be cancelled")
	ErrInvalidWindow        = apperr.Validation("invalid_window", "within_days must be between 1 and 366")
)

// MaxExpiringWindowDays bounds ListExpiring lookahead.
const MaxExpiringWindowDays = 366

// MemberDirectory resolves members of the current tenant.
type MemberDirectory interface {
	Get(ctx context.Context, tenantID, id int) (*member.Member, error)
}

type DisciplineCatalog interface {
	Get(ctx context.Context, tenantID, id int) (*discipline.Discipline, error)
}

type PlanCatalog interface {
	Get(ctx context.Context, tenantID, planID int) (*pricing.Plan, error)
}

type Service interface {
	CreateIndividual(ctx context.Context, tenantID int, in CreateIndividualInput) (*View, error)
	CreateGroup(ctx context.Context, tenantID int, in CreateGroupInput) (*View, error)
	Renew(ctx context.Context, tenantID, membershipID int, in RenewInput) (*View, error)
	Cancel(ctx context.Context, tenantID, membershipID int) (*View, error)
	Get(ctx context.Context, tenantID, membershipID int) (*View, error)
	ListByMember(ctx context.Context, tenantID, memberID int) ([]View, error)
	ListActiveByMember(ctx context.Context, tenantID, memberID int) ([]View, error)
	ListExpiring(ctx context.Context, tenantID, withinDays int) ([]View, error)
}

type Options struct {
	// RenewalStartPolicy is config.RenewFromNow or config.RenewFromExpiry.
	RenewalStartPolicy string
	Now                func() time.Time
}

type service struct {
	repo        Repository
	members     MemberDirectory
	disciplines DisciplineCatalog
	plans       PlanCatalog
	policy      string
	now         func() time.Time
}

func NewService(repo Repository, members MemberDirectory, disciplines DisciplineCatalog, plans PlanCatalog, opts Options) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RenewalStartPolicy == "" {
		opts.RenewalStartPolicy = config.RenewFromNow
	}
	return &service{
		repo:        repo,
		members:     members,
		disciplines: disciplines,
		plans:       plans,
		policy:      opts.RenewalStartPolicy,
		now:         opts.Now,
	}
}

func (s *service) CreateIndividual(ctx context.Context, tenantID int, in CreateIndividualInput) (*View, error) {
	if in.TotalAmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if in.DurationMonths < 1 {
		return nil, ErrInvalidDuration
	}
	if !in.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	if err := s.requireActiveMember(ctx, tenantID, in.MemberID); err != nil {
		return nil, err
	}
	if err := s.requireActiveDiscipline(ctx, tenantID, in.DisciplineID); err != nil {
		return nil, err
	}

	if in.PricingPlanID != nil {
		plan, err := s.plans.Get(ctx, tenantID, *in.PricingPlanID)
		if err != nil {
			return nil, err
		}
		if plan.DisciplineID != in.DisciplineID || plan.NumPeople != 1 || plan.NumMonths != in.DurationMonths {
			return nil, ErrPlanMismatch
		}
	}

	now := s.now()
	start := now
	if in.StartDate != nil {
		start = *in.StartDate
	}
	end := calendar.AddMonths(start, in.DurationMonths)
	if end.Before(now) {
		return nil, ErrEndInPast
	}

	created, err := s.repo.Create(ctx, &Membership{
		TenantID:         tenantID,
		DisciplineID:     in.DisciplineID,
		PricingPlanID:    in.PricingPlanID,
		StartDate:        start,
		EndDate:          end,
		TotalAmountCents: in.TotalAmountCents,
		PaymentMethod:    in.PaymentMethod,
		Notes:            in.Notes,
		Members: []MembershipMember{
			{MemberID: in.MemberID, PriceAppliedCents: in.TotalAmountCents, IsPrimary: true},
		},
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMembershipCreated("individual")
	logger.Info("membership created",
		"tenant_id", tenantID,
		"membership_id", created.ID,
		"member_id", in.MemberID,
		"discipline_id", in.DisciplineID,
	)

	view := NewView(created, now)
	return &view, nil
}

func (s *service) CreateGroup(ctx context.Context, tenantID int, in CreateGroupInput) (*View, error) {
	if !in.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	plan, err := s.plans.Get(ctx, tenantID, in.PricingPlanID)
	if err != nil {
		return nil, err
	}
	if plan.DisciplineID != in.DisciplineID {
		return nil, ErrPlanMismatch
	}
	if plan.NumPeople != len(in.Members) {
		return nil, ErrPartySizeMismatch.WithMessage("plan is for %d people, got %d", plan.NumPeople, len(in.Members))
	}

	primary := -1
	seen := make(map[int]struct{}, len(in.Members))
	for i, gm := range in.Members {
		if _, dup := seen[gm.MemberID]; dup {
			return nil, ErrDuplicateMember
		}
		seen[gm.MemberID] = struct{}{}

		if gm.IsPrimary {
			if primary >= 0 {
				return nil, ErrPrimaryCount
			}
			primary = i
		}
	}
	if primary < 0 {
		return nil, ErrPrimaryCount
	}

	if err := s.requireActiveDiscipline(ctx, tenantID, in.DisciplineID); err != nil {
		return nil, err
	}
	for _, gm := range in.Members {
		if err := s.requireActiveMember(ctx, tenantID, gm.MemberID); err != nil {
			return nil, err
		}
	}

	shares := SplitEqual(plan.PriceCents, len(in.Members), primary)
	members := make([]MembershipMember, len(in.Members))
	for i, gm := range in.Members {
		members[i] = MembershipMember{
			MemberID:          gm.MemberID,
			PriceAppliedCents: shares[i],
			IsPrimary:         i == primary,
		}
	}

	now := s.now()
	planID := plan.ID
	created, err := s.repo.Create(ctx, &Membership{
		TenantID:         tenantID,
		DisciplineID:     in.DisciplineID,
		PricingPlanID:    &planID,
		StartDate:        now,
		EndDate:          calendar.AddMonths(now, plan.NumMonths),
		TotalAmountCents: plan.PriceCents,
		PaymentMethod:    in.PaymentMethod,
		Notes:            in.Notes,
		Members:          members,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMembershipCreated("group")
	logger.Info("group membership created",
		"tenant_id", tenantID,
		"membership_id", created.ID,
		"party_size", len(members),
		"plan_id", planID,
	)

	view := NewView(created, now)
	return &view, nil
}

func (s *service) Renew(ctx context.Context, tenantID, membershipID int, in RenewInput) (*View, error) {
	if in.TotalAmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if in.DurationMonths < 1 {
		return nil, ErrInvalidDuration
	}
	if !in.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	source, err := s.repo.GetByID(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := now
	// A cancelled record grants nothing until its end date, so only an
	// ACTIVE source is extended.
	if s.policy == config.RenewFromExpiry && ComputeStatus(source, now) == StatusActive && source.EndDate.After(now) {
		start = source.EndDate
	}

	planID, err := s.renewalPlan(ctx, tenantID, source, in.DurationMonths)
	if err != nil {
		return nil, err
	}

	primary := 0
	for i, mm := range source.Members {
		if mm.IsPrimary {
			primary = i
			break
		}
	}
	shares := SplitEqual(in.TotalAmountCents, len(source.Members), primary)
	members := make([]MembershipMember, len(source.Members))
	for i, mm := range source.Members {
		members[i] = MembershipMember{
			MemberID:          mm.MemberID,
			PriceAppliedCents: shares[i],
			IsPrimary:         mm.IsPrimary,
		}
	}

	sourceID := source.ID
	created, err := s.repo.Create(ctx, &Membership{
		TenantID:         tenantID,
		DisciplineID:     source.DisciplineID,
		PricingPlanID:    planID,
		StartDate:        start,
		EndDate:          calendar.AddMonths(start, in.DurationMonths),
		TotalAmountCents: in.TotalAmountCents,
		PaymentMethod:    in.PaymentMethod,
		Notes:            in.Notes,
		RenewedFromID:    &sourceID,
		Members:          members,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMembershipRenewed()
	logger.Info("membership renewed",
		"tenant_id", tenantID,
		"source_id", sourceID,
		"membership_id", created.ID,
		"primary_member_id", primaryMemberID(source),
		"plan_kept", planID != nil,
		"policy", s.policy,
	)

	view := NewView(created, now)
	return &view, nil
}

// renewalPlan keeps the source's pricing plan only while the renewal still
// matches its duration and party size. Otherwise the renewal is manually priced.
func (s *service) renewalPlan(ctx context.Context, tenantID int, source *Membership, months int) (*int, error) {
	if source.PricingPlanID == nil {
		return nil, nil
	}

	plan, err := s.plans.Get(ctx, tenantID, *source.PricingPlanID)
	if errors.Is(err, pricing.ErrPlanNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if plan.DisciplineID != source.DisciplineID || plan.NumMonths != months || plan.NumPeople != len(source.Members) {
		return nil, nil
	}
	id := plan.ID
	return &id, nil
}

func primaryMemberID(m *Membership) int {
	if mm, ok := m.Primary(); ok {
		return mm.MemberID
	}
	return 0
}

func (s *service) Cancel(ctx context.Context, tenantID, membershipID int) (*View, error) {
	m, err := s.repo.GetByID(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch ComputeStatus(m, now) {
	case StatusCancelled:
		view := NewView(m, now)
		return &view, nil
	case StatusExpired:
		return nil, ErrCancelExpired
	}

	changed, err := s.repo.Cancel(ctx, tenantID, membershipID, now)
	if err != nil {
		return nil, err
	}
	if changed {
		metrics.RecordMembershipCancelled()
		logger.Info("membership cancelled", "tenant_id", tenantID, "membership_id", membershipID)
	}

	// Reload so a concurrent cancel reports its own timestamp.
	m, err = s.repo.GetByID(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}
	view := NewView(m, now)
	return &view, nil
}

func (s *service) Get(ctx context.Context, tenantID, membershipID int) (*View, error) {
	m, err := s.repo.GetByID(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}
	view := NewView(m, s.now())
	return &view, nil
}

func (s *service) ListByMember(ctx context.Context, tenantID, memberID int) ([]View, error) {
	if _, err := s.members.Get(ctx, tenantID, memberID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListByMember(ctx, tenantID, memberID)
	if err != nil {
		return nil, err
	}
	return NewViews(list, s.now()), nil
}

// ListActiveByMember returns the ACTIVE memberships of memberID, soonest end first.
func (s *service) ListActiveByMember(ctx context.Context, tenantID, memberID int) ([]View, error) {
	now := s.now()
	list, err := s.repo.ListActiveByMember(ctx, tenantID, memberID, now)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(list))
	for i := range list {
		if ComputeStatus(&list[i], now) == StatusActive {
			views = append(views, NewView(&list[i], now))
		}
	}
	return views, nil
}

// ListExpiring returns active memberships whose days remaining fall in (0, withinDays].
func (s *service) ListExpiring(ctx context.Context, tenantID, withinDays int) ([]View, error) {
	if withinDays < 1 || withinDays > MaxExpiringWindowDays {
		return nil, ErrInvalidWindow
	}

	now := s.now()
	list, err := s.repo.ListEndingBetween(ctx, tenantID, now, now.AddDate(0, 0, withinDays))
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(list))
	for i := range list {
		d := DaysRemaining(&list[i], now)
		if d > 0 && d <= withinDays {
			views = append(views, NewView(&list[i], now))
		}
	}
	return views, nil
}

func (s *service) requireActiveMember(ctx context.Context, tenantID, memberID int) error {
	m, err := s.members.Get(ctx, tenantID, memberID)
	if err != nil {
		return err
	}
	if !m.Active {
		return member.ErrMemberInactive.WithMessage("member %d is not active", memberID)
	}
	return nil
}

func (s *service) requireActiveDiscipline(ctx context.Context, tenantID, disciplineID int) error {
	d, err := s.disciplines.Get(ctx, tenantID, disciplineID)
	if err != nil {
		return err
	}
	if !d.Active {
		return discipline.ErrDisciplineInactive
	}
	return nil
}
