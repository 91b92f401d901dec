package membership

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const membershipColumns = `m.id, m.tenant_id, m.discipline_id, m.pricing_plan_id, m.start_date, m.end_date,
		m.total_amount_cents, m.payment_method, m.notes, m.cancelled_at, m.renewed_from_id, m.created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Membership) (*Membership, error) {
	created := &Membership{}

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO memberships AS m (tenant_id, discipline_id, pricing_plan_id, start_date, end_date,
				total_amount_cents, payment_method, notes, renewed_from_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+membershipColumns,
			m.TenantID, m.DisciplineID, m.PricingPlanID, m.StartDate, m.EndDate,
			m.TotalAmountCents, m.PaymentMethod, m.Notes, m.RenewedFromID,
		).StructScan(created)
		if err != nil {
			return fmt.Errorf("insert membership: %w", err)
		}

		for _, mm := range m.Members {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO membership_members (membership_id, member_id, price_applied_cents, is_primary)
				VALUES ($1, $2, $3, $4)
			`, created.ID, mm.MemberID, mm.PriceAppliedCents, mm.IsPrimary); err != nil {
				return fmt.Errorf("insert membership member %d: %w", mm.MemberID, err)
			}
			mm.MembershipID = created.ID
			created.Members = append(created.Members, mm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID, id int) (*Membership, error) {
	m := &Membership{}
	err := r.db.GetContext(ctx, m, `
		SELECT `+membershipColumns+`
		FROM memberships m
		WHERE m.tenant_id = $1 AND m.id = $2
	`, tenantID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}

	list := []Membership{*m}
	if err := r.attachMembers(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *repository) ListByMember(ctx context.Context, tenantID, memberID int) ([]Membership, error) {
	return r.selectWithMembers(ctx, `
		SELECT `+membershipColumns+`
		FROM memberships m
		JOIN membership_members mm ON mm.membership_id = m.id
		WHERE m.tenant_id = $1 AND mm.member_id = $2
		ORDER BY m.created_at DESC, m.id DESC
	`, tenantID, memberID)
}

func (r *repository) ListActiveByMember(ctx context.Context, tenantID, memberID int, now time.Time) ([]Membership, error) {
	return r.selectWithMembers(ctx, `
		SELECT `+membershipColumns+`
		FROM memberships m
		JOIN membership_members mm ON mm.membership_id = m.id
		WHERE m.tenant_id = $1
		  AND mm.member_id = $2
		  AND m.cancelled_at IS NULL
		  AND m.end_date >= $3
		ORDER BY m.end_date ASC, m.id ASC
	`, tenantID, memberID, now)
}

func (r *repository) ListEndingBetween(ctx context.Context, tenantID int, from, to time.Time) ([]Membership, error) {
	return r.selectWithMembers(ctx, `
		SELECT `+membershipColumns+`
		FROM memberships m
		WHERE m.tenant_id = $1
		  AND m.cancelled_at IS NULL
		  AND m.end_date > $2
		  AND m.end_date <= $3
		ORDER BY m.end_date ASC, m.id ASC
	`, tenantID, from, to)
}

func (r *repository) Cancel(ctx context.Context, tenantID, id int, at time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE memberships
		SET cancelled_at = $3
		WHERE tenant_id = $1 AND id = $2 AND cancelled_at IS NULL
	`, tenantID, id, at)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *repository) selectWithMembers(ctx context.Context, query string, args ...interface{}) ([]Membership, error) {
	list := []Membership{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, err
	}
	if err := r.attachMembers(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachMembers loads the shares of every membership in list with one query.
func (r *repository) attachMembers(ctx context.Context, list []Membership) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	index := make(map[int]int, len(list))
	for i := range list {
		ids[i] = int64(list[i].ID)
		index[list[i].ID] = i
		list[i].Members = []MembershipMember{}
	}

	shares := []MembershipMember{}
	err := r.db.SelectContext(ctx, &shares, `
		SELECT membership_id, member_id, price_applied_cents, is_primary
		FROM membership_members
		WHERE membership_id = ANY($1)
		ORDER BY membership_id, is_primary DESC, member_id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load membership members: %w", err)
	}

	for _, s := range shares {
		if i, ok := index[s.MembershipID]; ok {
			list[i].Members = append(list[i].Members, s)
		}
	}
	return nil
}
