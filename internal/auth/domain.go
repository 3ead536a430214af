package auth

import (
	"time"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/permission"
)

// Account is a user account known to the development backend.
type Account struct {
	ID           string
	Username     string
	Email        string
	Status       string
	PasswordHash string
	Personnel    []access.PersonnelInfo
	Roles        []string
	Permissions  []permission.Permission
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Active reports whether the account may sign in.
func (a Account) Active() bool { return a.Status == StatusActive }

// Profile returns the wire representation sent to clients.
func (a Account) Profile() access.User {
	u := access.User{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Status:      a.Status,
		Personnel:   a.Personnel,
		Roles:       a.Roles,
		Permissions: a.Permissions,
	}
	return *u.Clone()
}

// Role is a named permission bundle.
type Role struct {
	Name        string                  `json:"name"`
	DisplayName string                  `json:"display_name"`
	Permissions []permission.Permission `json:"permissions"`
}

// Account statuses.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)
