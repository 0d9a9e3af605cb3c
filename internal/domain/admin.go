package domain

import "time"

// AdminRole enumerates back-office roles.
type AdminRole string

const (
	AdminRoleAdmin  AdminRole = "ADMIN"
	AdminRoleEditor AdminRole = "EDITOR"
)

// Admin models a back-office account with access to the management area.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         AdminRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
