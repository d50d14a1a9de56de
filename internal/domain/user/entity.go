package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
