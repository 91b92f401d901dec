package pricing

import "time"

// Plan prices a (discipline, party size, duration) combination. PriceCents is
// the total for the whole party. Plans are never updated in place.
type Plan struct {
	ID           int       `db:"id" json:"id"`
	TenantID     int       `db:"tenant_id" json:"-"`
	DisciplineID int       `db:"discipline_id" json:"discipline_id"`
	NumPeople    int       `db:"num_people" json:"num_people"`
	NumMonths    int       `db:"num_months" json:"num_months"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (p *Plan) IsGroup() bool {
	return p.NumPeople > 1
}

type CreatePlanRequest struct {
	NumPeople  int   `json:"num_people" binding:"required,min=1" example:"2"`
	NumMonths  int   `json:"num_months" binding:"required,min=1" example:"1"`
	PriceCents int64 `json:"price_cents" binding:"required,gt=0" example:"20000"`
}

type ResolveQuery struct {
	DisciplineID int `form:"discipline_id" binding:"required,min=1"`
	NumPeople    int `form:"num_people"`
	NumMonths    int `form:"num_months"`
}
