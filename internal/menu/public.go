package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/odyssey-erp/hris-access/internal/platform/kv"
)

const (
	// PublicModeKey is the storage flag set when a visitor enters the job
	// portal without signing in.
	PublicModeKey = "jobPortalPublicMode"
	// JobPortalPath is the only route public mode applies to.
	JobPortalPath = "/online-job-application-portal"
)

// PublicItems is the menu shown to job portal visitors.
func PublicItems() []Item {
	return []Item{
		{Name: "Login", Icon: "login", Path: "/login", Children: []Item{}},
		{Name: "Register", Icon: "person_add", Path: "/register", Children: []Item{}},
	}
}

// Builder produces the menu for the current navigation state.
type Builder struct {
	Storage  kv.Storage
	Accessor Accessor
	// Items defaults to Default().
	Items []Item
}

// Build returns the menu for currentPath. In public mode on the job portal
// it returns PublicItems; public mode on any other path is switched off
// and the regular filtered tree is returned.
func (b *Builder) Build(ctx context.Context, currentPath string) ([]Item, error) {
	flag, _, err := b.Storage.Get(ctx, PublicModeKey)
	if err != nil {
		return nil, fmt.Errorf("menu: read public mode: %w", err)
	}
	public := flag == "true"
	onPortal := strings.HasPrefix(currentPath, JobPortalPath)

	if public && onPortal {
		return PublicItems(), nil
	}
	if public {
		if err := b.Storage.Delete(ctx, PublicModeKey); err != nil {
			return nil, fmt.Errorf("menu: clear public mode: %w", err)
		}
	}

	items := b.Items
	if items == nil {
		items = defaultMenu()
	}
	return Filter(items, b.Accessor), nil
}

// EnterPublicMode switches the menu to the job portal's visitor view.
func (b *Builder) EnterPublicMode(ctx context.Context) error {
	if err := b.Storage.Set(ctx, PublicModeKey, "true"); err != nil {
		return fmt.Errorf("menu: set public mode: %w", err)
	}
	return nil
}
