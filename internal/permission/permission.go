// Package permission holds the closed catalog of capability tokens and the
// named groups that bundle them for route and menu gating.
package permission

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Permission is an opaque capability token named <resource>_<action>.
type Permission string

// Category classifies a permission for display and administration screens.
type Category string

const (
	CategoryPersonnelInformation Category = "Personnel Information"
	CategoryRequests             Category = "Requests"
	CategoryTimekeeping          Category = "Timekeeping & Attendance"
	CategoryPayroll              Category = "Payroll Management"
	CategoryLeave                Category = "Leave Management"
	CategoryRecruitment          Category = "Recruitment"
	CategoryPerformance          Category = "Performance Management"
	CategoryReports              Category = "Report Generation"
	CategoryLearning             Category = "Learning & Development"
	CategorySystemAdministration Category = "System Administration"
)

// CategoryPermissions lists the tokens declared under one category.
type CategoryPermissions struct {
	Category    Category
	Permissions []Permission
}

var (
	all        []Permission
	byName     = make(map[string]Permission)
	categoryOf = make(map[Permission]Category)
)

func init() {
	for _, entry := range catalog {
		for _, p := range entry.Permissions {
			if _, dup := categoryOf[p]; dup {
				panic("permission: token declared twice: " + string(p))
			}
			all = append(all, p)
			byName[string(p)] = p
			categoryOf[p] = entry.Category
		}
	}
	for name, perms := range groups {
		groups[name] = Combine(perms)
	}
	if err := validateGroups(); err != nil {
		panic(err)
	}
}

// All returns every catalog token in declaration order.
func All() []Permission {
	return append([]Permission(nil), all...)
}

// Lookup resolves a raw token. Surrounding whitespace is ignored.
func Lookup(name string) (Permission, bool) {
	p, ok := byName[strings.TrimSpace(name)]
	return p, ok
}

// Valid reports whether p belongs to the catalog.
func Valid(p Permission) bool {
	_, ok := categoryOf[p]
	return ok
}

// Parse converts raw tokens into catalog permissions, failing on the first
// token that is not part of the catalog.
func Parse(values ...string) ([]Permission, error) {
	perms := make([]Permission, 0, len(values))
	for _, v := range values {
		p, ok := Lookup(v)
		if !ok {
			return nil, &ConfigurationError{Token: v}
		}
		perms = append(perms, p)
	}
	return perms, nil
}

// Grouped returns the catalog split by category, in declaration order.
func Grouped() []CategoryPermissions {
	out := make([]CategoryPermissions, 0, len(catalog))
	for _, entry := range catalog {
		out = append(out, CategoryPermissions{
			Category:    entry.Category,
			Permissions: append([]Permission(nil), entry.Permissions...),
		})
	}
	return out
}

// Category returns the category p was declared under, or "" when p is not
// part of the catalog.
func (p Permission) Category() Category {
	return categoryOf[p]
}

// Action is the trailing verb of the token, e.g. "read".
func (p Permission) Action() string {
	s := string(p)
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// Resource is the token without its action, e.g. "leave_request".
func (p Permission) Resource() string {
	s := string(p)
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		return s[:i]
	}
	return s
}

// DisplayName renders the token for humans: "leave_request_read" becomes
// "Leave Request Read".
func (p Permission) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(p), "_", " "))
}

// Description is a one-line summary of what the token grants.
func (p Permission) Description() string {
	module := strings.ReplaceAll(p.Resource(), "_", " ")
	switch p.Action() {
	case "create":
		return "Create new " + module + " records"
	case "read":
		return "View " + module + " information"
	case "update":
		return "Modify existing " + module + " records"
	case "delete":
		return "Remove " + module + " records"
	case "generate":
		return "Generate " + module
	default:
		return "Access to " + strings.ReplaceAll(string(p), "_", " ")
	}
}

// Strings converts permissions to their raw token form.
func Strings(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
