package access

import (
	"github.com/odyssey-erp/hris-access/internal/permission"
)

// Source yields the user permission checks are evaluated against. A nil
// user means nobody is signed in.
type Source interface {
	CurrentUser() *User
}

type fixedSource struct{ user *User }

func (f fixedSource) CurrentUser() *User { return f.user }

// Evaluator answers permission and role membership questions. It never
// mutates its source.
type Evaluator struct {
	source Source
}

// NewEvaluator builds an Evaluator reading the current user from source on
// every call.
func NewEvaluator(source Source) *Evaluator {
	return &Evaluator{source: source}
}

// For builds an Evaluator bound to a fixed user.
func For(u *User) *Evaluator {
	return &Evaluator{source: fixedSource{user: u}}
}

func (e *Evaluator) user() *User {
	if e == nil || e.source == nil {
		return nil
	}
	return e.source.CurrentUser()
}

// Permissions returns the granted tokens of the current user.
func (e *Evaluator) Permissions() []permission.Permission {
	u := e.user()
	if u == nil {
		return nil
	}
	return append([]permission.Permission(nil), u.Permissions...)
}

// HasPermission reports whether the current user holds p.
func (e *Evaluator) HasPermission(p permission.Permission) bool {
	u := e.user()
	if u == nil {
		return false
	}
	for _, granted := range u.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the user holds at least one of required.
// An empty list is public and always passes.
func (e *Evaluator) HasAnyPermission(required []permission.Permission) bool {
	if len(required) == 0 {
		return true
	}
	set := e.grantedSet()
	for _, p := range required {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the user holds every token in required.
func (e *Evaluator) HasAllPermissions(required []permission.Permission) bool {
	if len(required) == 0 {
		return true
	}
	set := e.grantedSet()
	for _, p := range required {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}

// CanAccessRoute applies the route rule: an empty requirement is public
// regardless of authentication, otherwise any single match grants access.
func (e *Evaluator) CanAccessRoute(required []permission.Permission) bool {
	return e.HasAnyPermission(required)
}

// HasRole reports whether role is the user's display role or one of the
// assigned role names.
func (e *Evaluator) HasRole(role string) bool {
	u := e.user()
	if u == nil || role == "" {
		return false
	}
	if u.Role == role {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether HasRole holds for any of roles.
func (e *Evaluator) HasAnyRole(roles []string) bool {
	for _, r := range roles {
		if e.HasRole(r) {
			return true
		}
	}
	return false
}

func (e *Evaluator) grantedSet() map[permission.Permission]struct{} {
	u := e.user()
	if u == nil {
		return nil
	}
	set := make(map[permission.Permission]struct{}, len(u.Permissions))
	for _, p := range u.Permissions {
		set[p] = struct{}{}
	}
	return set
}
