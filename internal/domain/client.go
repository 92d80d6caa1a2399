package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Client is a front-desk account that can hold reservations. Budget-service
// staff accounts reuse the same record with a department attached.
type Client struct {
	ID      int64  `json:"id"`
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required,min=2,max=15"`
	Surname string `json:"surname" validate:"required,min=2,max=15"`

	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"is_active"`

	DepartmentID *int64 `json:"department_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
