package discipline

import "context"

type Repository interface {
	Create(ctx context.Context, tenantID int, name, description string) (*Discipline, error)
	GetByID(ctx context.Context, tenantID, id int) (*Discipline, error)
	List(ctx context.Context, tenantID int, onlyActive bool) ([]Discipline, error)
	Deactivate(ctx context.Context, tenantID, id int) error
}
