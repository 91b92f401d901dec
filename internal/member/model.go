package member

import (
	"strings"
	"time"
)

type Member struct {
	ID        int       `db:"id" json:"id"`
	TenantID  int       `db:"tenant_id" json:"-"`
	Code      string    `db:"code" json:"code"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email,omitempty"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

type CreateMemberRequest struct {
	Code      string `json:"code" binding:"omitempty,max=32,alphanumunicode"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=50"`
}

// NormalizeCode canonicalises a scanned or typed member code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
