package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, tenantID, id int) (*Member, error)
	GetByCode(ctx context.Context, tenantID int, code string) (*Member, error)
	List(ctx context.Context, tenantID int, onlyActive bool) ([]Member, error)
	Deactivate(ctx context.Context, tenantID, id int) error
}
