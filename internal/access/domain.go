// Package access evaluates a user's permissions against required permission
// lists and derives the display fields of a session user.
package access

import "github.com/odyssey-erp/hris-access/internal/permission"

// Department is the organisational unit attached to a personnel profile.
type Department struct {
	ID             string `json:"id"`
	DepartmentName string `json:"department_name"`
}

// PersonnelInfo is a personnel profile linked to a user account.
type PersonnelInfo struct {
	ID             string      `json:"id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	MiddleName     string      `json:"middle_name,omitempty"`
	Department     *Department `json:"department,omitempty"`
	Designation    string      `json:"designation,omitempty"`
	EmploymentType string      `json:"employment_type"`
}

// User is the authenticated identity as returned by the authentication
// backend. Avatar, Name and Role are derived by Enhance and are not
// authoritative.
type User struct {
	ID          string                  `json:"id"`
	Username    string                  `json:"username"`
	Email       string                  `json:"email"`
	Status      string                  `json:"status"`
	Personnel   []PersonnelInfo         `json:"personnel,omitempty"`
	Roles       []string                `json:"roles"`
	Permissions []permission.Permission `json:"permissions"`

	Avatar string `json:"avatar,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Clone returns a deep copy of u. A nil user clones to nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Personnel != nil {
		c.Personnel = make([]PersonnelInfo, len(u.Personnel))
		for i, p := range u.Personnel {
			if p.Department != nil {
				d := *p.Department
				p.Department = &d
			}
			c.Personnel[i] = p
		}
	}
	c.Roles = append([]string(nil), u.Roles...)
	c.Permissions = append([]permission.Permission(nil), u.Permissions...)
	return &c
}
