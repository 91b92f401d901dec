package membership

import "time"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentOther    PaymentMethod = "other"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentOther:
		return true
	}
	return false
}

// Membership is paid access of one or more members to a discipline over
// [StartDate, EndDate]. Status is never stored; the only persisted lifecycle
// fact is CancelledAt.
type Membership struct {
	ID               int                `db:"id"`
	TenantID         int                `db:"tenant_id"`
	DisciplineID     int                `db:"discipline_id"`
	PricingPlanID    *int               `db:"pricing_plan_id"`
	StartDate        time.Time          `db:"start_date"`
	EndDate          time.Time          `db:"end_date"`
	TotalAmountCents int64              `db:"total_amount_cents"`
	PaymentMethod    PaymentMethod      `db:"payment_method"`
	Notes            *string            `db:"notes"`
	CancelledAt      *time.Time         `db:"cancelled_at"`
	RenewedFromID    *int               `db:"renewed_from_id"`
	CreatedAt        time.Time          `db:"created_at"`
	Members          []MembershipMember `db:"-"`
}

type MembershipMember struct {
	MembershipID      int   `db:"membership_id" json:"-"`
	MemberID          int   `db:"member_id" json:"member_id"`
	PriceAppliedCents int64 `db:"price_applied_cents" json:"price_applied_cents"`
	IsPrimary         bool  `db:"is_primary" json:"is_primary"`
}

func (m *Membership) Primary() (MembershipMember, bool) {
	for _, mm := range m.Members {
		if mm.IsPrimary {
			return mm, true
		}
	}
	return MembershipMember{}, false
}

// View is the read model handed to callers. Status and DaysRemaining are
// computed at construction time.
type View struct {
	ID               int                `json:"id"`
	DisciplineID     int                `json:"discipline_id"`
	PricingPlanID    *int               `json:"pricing_plan_id"`
	Members          []MembershipMember `json:"members"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	TotalAmountCents int64              `json:"total_amount_cents"`
	PaymentMethod    PaymentMethod      `json:"payment_method"`
	Notes            *string            `json:"notes"`
	Status           Status             `json:"status"`
	DaysRemaining    int                `json:"days_remaining"`
	RenewedFromID    *int               `json:"renewed_from_id"`
	CancelledAt      *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

func NewView(m *Membership, now time.Time) View {
	members := m.Members
	if members == nil {
		members = []MembershipMember{}
	}
	return View{
		ID:               m.ID,
		DisciplineID:     m.DisciplineID,
		PricingPlanID:    m.PricingPlanID,
		Members:          members,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		TotalAmountCents: m.TotalAmountCents,
		PaymentMethod:    m.PaymentMethod,
		Notes:            m.Notes,
		Status:           ComputeStatus(m, now),
		DaysRemaining:    DaysRemaining(m, now),
		RenewedFromID:    m.RenewedFromID,
		CancelledAt:      m.CancelledAt,
		CreatedAt:        m.CreatedAt,
	}
}

func NewViews(list []Membership, now time.Time) []View {
	views := make([]View, 0, len(list))
	for i := range list {
		views = append(views, NewView(&list[i], now))
	}
	return views
}

type CreateIndividualInput struct {
	MemberID         int           `json:"member_id" binding:"required" example:"12"`
	DisciplineID     int           `json:"discipline_id" binding:"required" example:"3"`
	StartDate        *time.Time    `json:"start_date,omitempty"`
	DurationMonths   int           `json:"duration_months" example:"1"`
	TotalAmountCents int64         `json:"total_amount_cents" example:"12000"`
	PaymentMethod    PaymentMethod `json:"payment_method" binding:"required" example:"cash"`
	Notes            *string       `json:"notes,omitempty"`
	PricingPlanID    *int          `json:"pricing_plan_id,omitempty"`
}

type GroupMemberInput struct {
	MemberID  int  `json:"member_id" binding:"required" example:"12"`
	IsPrimary bool `json:"is_primary"`
}

type CreateGroupInput struct {
	DisciplineID  int                `json:"discipline_id" binding:"required" example:"3"`
	PricingPlanID int                `json:"pricing_plan_id" binding:"required" example:"8"`
	Members       []GroupMemberInput `json:"members" binding:"required,dive"`
	PaymentMethod PaymentMethod      `json:"payment_method" binding:"required" example:"card"`
	Notes         *string            `json:"notes,omitempty"`
}

type RenewInput struct {
	DurationMonths   int           `json:"duration_months" example:"1"`
	TotalAmountCents int64         `json:"total_amount_cents" example:"12000"`
	PaymentMethod    PaymentMethod `json:"payment_method" binding:"required" example:"cash"`
	Notes            *string       `json:"notes,omitempty"`
}
