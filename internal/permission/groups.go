package permission

import "fmt"

// GroupName identifies a statically defined permission group.
type GroupName string

func validateGroups() error {
	for _, name := range groupOrder {
		perms, ok := groups[name]
		if !ok {
			return &ConfigurationError{Source: "group table", Group: name}
		}
		for _, p := range perms {
			if !Valid(p) {
				return &ConfigurationError{Source: fmt.Sprintf("group %s", name), Token: string(p), Group: name}
			}
		}
	}
	if len(groupOrder) != len(groups) {
		return fmt.Errorf("permission: group order lists %d groups, table has %d", len(groupOrder), len(groups))
	}
	return nil
}

// Group returns a copy of the tokens bundled under name.
func Group(name GroupName) ([]Permission, error) {
	perms, ok := groups[name]
	if !ok {
		return nil, &ConfigurationError{Group: name}
	}
	return append([]Permission{}, perms...), nil
}

// MustGroup is Group for statically known names; it panics on unknown names.
func MustGroup(name GroupName) []Permission {
	perms, err := Group(name)
	if err != nil {
		panic(err)
	}
	return perms
}

// GroupNames lists every group in declaration order.
func GroupNames() []GroupName {
	return append([]GroupName(nil), groupOrder...)
}

// Combine returns the ordered union of the given permission lists.
func Combine(lists ...[]Permission) []Permission {
	var out []Permission
	seen := make(map[Permission]struct{})
	for _, list := range lists {
		for _, p := range list {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	if out == nil {
		return []Permission{}
	}
	return out
}

// HasAnyGroup reports whether granted covers every token of at least one of
// the given groups.
func HasAnyGroup(granted []Permission, lists ...[]Permission) bool {
	set := make(map[Permission]struct{}, len(granted))
	for _, p := range granted {
		set[p] = struct{}{}
	}
	for _, list := range lists {
		covered := true
		for _, p := range list {
			if _, ok := set[p]; !ok {
				covered = false
				break
			}
		}
		if covered {
			return true
		}
	}
	return false
}
