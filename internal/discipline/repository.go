package discipline

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenantID int, name, description string) (*Discipline, error) {
	query := `
		INSERT INTO disciplines (tenant_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, tenant_id, name, description, active, created_at
	`

	var d Discipline
	if err := r.db.GetContext(ctx, &d, query, tenantID, name, description); err != nil {
		if db.IsUniqueViolation(err, "disciplines_tenant_name_key") {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &d, nil
}

func (r *repository) GetByID(ctx context.Context, tenantID, id int) (*Discipline, error) {
	query := `
		SELECT id, tenant_id, name, description, active, created_at
		FROM disciplines
		WHERE tenant_id = $1 AND id = $2
	`

	var d Discipline
	if err := r.db.GetContext(ctx, &d, query, tenantID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDisciplineNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *repository) List(ctx context.Context, tenantID int, onlyActive bool) ([]Discipline, error) {
	query := `
		SELECT id, tenant_id, name, description, active, created_at
		FROM disciplines
		WHERE tenant_id = $1
	`
	if onlyActive {
		query += " AND active = TRUE"
	}
	query += " ORDER BY name ASC"

	disciplines := []Discipline{}
	if err := r.db.SelectContext(ctx, &disciplines, query, tenantID); err != nil {
		return nil, err
	}

	return disciplines, nil
}

func (r *repository) Deactivate(ctx context.Context, tenantID, id int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE disciplines
		SET active = FALSE
		WHERE tenant_id = $1 AND id = $2
	`, tenantID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDisciplineNotFound
	}

	return nil
}
