// Package menu derives the navigation tree a user can reach from the
// static sidebar configuration.
package menu

import "github.com/odyssey-erp/hris-access/internal/permission"

// Item is one navigation node. Empty Permissions marks it public.
type Item struct {
	Name        string                  `json:"name"`
	Icon        string                  `json:"icon"`
	Path        string                  `json:"path"`
	Badge       string                  `json:"badge,omitempty"`
	Permissions []permission.Permission `json:"permissions"`
	Children    []Item                  `json:"children,omitempty"`
}

// Accessor answers route-level permission checks. *access.Evaluator
// satisfies it.
type Accessor interface {
	CanAccessRoute(required []permission.Permission) bool
}

// Filter prunes items to what a reaches. A node is kept when it is
// accessible or when any descendant is; an inaccessible node with
// reachable children is kept as a group header. Order is preserved and
// items is never modified.
func Filter(items []Item, a Accessor) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		allowed := a.CanAccessRoute(item.Permissions)
		children := Filter(item.Children, a)
		if !allowed && len(children) == 0 {
			continue
		}
		node := item
		node.Permissions = append([]permission.Permission(nil), item.Permissions...)
		node.Children = children
		out = append(out, node)
	}
	return out
}

// Flatten lists the nodes of items depth first, without children.
func Flatten(items []Item) []Item {
	var out []Item
	var walk func([]Item)
	walk = func(level []Item) {
		for _, item := range level {
			node := item
			node.Children = nil
			out = append(out, node)
			walk(item.Children)
		}
	}
	walk(items)
	return out
}

// Clone returns a deep copy of items.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		item.Permissions = append([]permission.Permission(nil), item.Permissions...)
		item.Children = Clone(item.Children)
		out[i] = item
	}
	return out
}
