package discipline

import "time"

type Discipline struct {
	ID          int       `db:"id" json:"id"`
	TenantID    int       `db:"tenant_id" json:"-"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateDisciplineRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}
