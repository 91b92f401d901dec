package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

const attendanceColumns = `id, tenant_id, member_id, checked_at, checkin_day, notes`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, a *Attendance) (*Attendance, bool, error) {
	created := &Attendance{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO attendances (tenant_id, member_id, checked_at, checkin_day, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT attendances_member_day_key DO NOTHING
		RETURNING `+attendanceColumns,
		a.TenantID, a.MemberID, a.CheckedAt, a.CheckinDay, a.Notes,
	).StructScan(created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (r *repository) GetForDay(ctx context.Context, tenantID, memberID int, day time.Time) (*Attendance, error) {
	a := &Attendance{}
	err := r.db.GetContext(ctx, a, `
		SELECT `+attendanceColumns+`
		FROM attendances
		WHERE tenant_id = $1 AND member_id = $2 AND checkin_day = $3
	`, tenantID, memberID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repository) ListByMember(ctx context.Context, tenantID, memberID, limit, offset int) ([]Attendance, error) {
	list := []Attendance{}
	err := r.db.SelectContext(ctx, &list, `
		SELECT `+attendanceColumns+`
		FROM attendances
		WHERE tenant_id = $1 AND member_id = $2
		ORDER BY checked_at DESC
		LIMIT $3 OFFSET $4
	`, tenantID, memberID, limit, offset)
	return list, err
}

func (r *repository) ListByDay(ctx context.Context, tenantID int, day time.Time) ([]Attendance, error) {
	list := []Attendance{}
	err := r.db.SelectContext(ctx, &list, `
		SELECT `+attendanceColumns+`
		FROM attendances
		WHERE tenant_id = $1 AND checkin_day = $2
		ORDER BY checked_at ASC
	`, tenantID, day)
	return list, err
}
