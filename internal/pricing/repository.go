package pricing

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const planColumns = `id, tenant_id, discipline_id, num_people, num_months, price_cents, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Plan) (*Plan, error) {
	plan := &Plan{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO pricing_plans (tenant_id, discipline_id, num_people, num_months, price_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+planColumns,
		p.TenantID, p.DisciplineID, p.NumPeople, p.NumMonths, p.PriceCents,
	).StructScan(plan)
	if err != nil {
		if db.IsUniqueViolation(err, "pricing_plans_tuple_key") {
			return nil, ErrDuplicatePlan
		}
		return nil, err
	}
	return plan, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID, id int) (*Plan, error) {
	plan := &Plan{}
	err := r.db.GetContext(ctx, plan, `
		SELECT `+planColumns+`
		FROM pricing_plans
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *repository) FindExact(ctx context.Context, tenantID, disciplineID, numPeople, numMonths int) (*Plan, error) {
	plan := &Plan{}
	err := r.db.GetContext(ctx, plan, `
		SELECT `+planColumns+`
		FROM pricing_plans
		WHERE tenant_id = $1
		  AND discipline_id = $2
		  AND num_people = $3
		  AND num_months = $4
	`, tenantID, disciplineID, numPeople, numMonths)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *repository) ListForDiscipline(ctx context.Context, tenantID, disciplineID int) ([]Plan, error) {
	plans := []Plan{}
	err := r.db.SelectContext(ctx, &plans, `
		SELECT `+planColumns+`
		FROM pricing_plans
		WHERE tenant_id = $1 AND discipline_id = $2
		ORDER BY num_months ASC, num_people ASC
	`, tenantID, disciplineID)
	return plans, err
}
