package member

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

const codeConstraint = "members_tenant_code_key"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (tenant_id, code, first_name, last_name, email, phone, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id, tenant_id, code, first_name, last_name, email, phone, active, created_at
	`

	var created Member
	err := r.db.GetContext(ctx, &created, query, m.TenantID, m.Code, m.FirstName, m.LastName, m.Email, m.Phone)
	if err != nil {
		if db.IsUniqueViolation(err, codeConstraint) {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID, id int) (*Member, error) {
	query := `
		SELECT id, tenant_id, code, first_name, last_name, email, phone, active, created_at
		FROM members
		WHERE tenant_id = $1 AND id = $2
	`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, tenantID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByCode(ctx context.Context, tenantID int, code string) (*Member, error) {
	query := `
		SELECT id, tenant_id, code, first_name, last_name, email, phone, active, created_at
		FROM members
		WHERE tenant_id = $1 AND code = $2
	`

	var m Member
	if err := r.db.GetContext(ctx, &m, query, tenantID, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) List(ctx context.Context, tenantID int, onlyActive bool) ([]Member, error) {
	query := `
		SELECT id, tenant_id, code, first_name, last_name, email, phone, active, created_at
		FROM members
		WHERE tenant_id = $1
	`
	if onlyActive {
		query += " AND active = TRUE"
	}
	query += " ORDER BY last_name ASC, first_name ASC, id ASC"

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query, tenantID); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Deactivate(ctx context.Context, tenantID, id int) error {
	query := `
		UPDATE members
		SET active = FALSE
		WHERE tenant_id = $1 AND id = $2
	`

	result, err := r.db.ExecContext(ctx, query, tenantID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
