package pricing

import "context"

type Repository interface {
	Create(ctx context.Context, p *Plan) (*Plan, error)
	GetByID(ctx context.Context, tenantID, id int) (*Plan, error)
	FindExact(ctx context.Context, tenantID, disciplineID, numPeople, numMonths int) (*Plan, error)
	ListForDiscipline(ctx context.Context, tenantID, disciplineID int) ([]Plan, error)
}
