package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/odyssey-erp/hris-access/internal/permission"
)

//go:embed menu.yaml
var defaultMenuYAML []byte

type itemFile struct {
	Name        string     `yaml:"name"`
	Icon        string     `yaml:"icon"`
	Path        string     `yaml:"path"`
	Badge       string     `yaml:"badge"`
	Group       string     `yaml:"group"`
	Permissions []string   `yaml:"permissions"`
	Children    []itemFile `yaml:"children"`
}

// Load parses a menu tree. Each node's permissions are its group's
// permissions followed by its explicit ones. Unknown groups and tokens
// yield a *permission.ConfigurationError.
func Load(source string, data []byte) ([]Item, error) {
	var file struct {
		Items []itemFile `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("menu: parse %s: %w", source, err)
	}
	return convert(source, file.Items)
}

func convert(source string, raw []itemFile) ([]Item, error) {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		if r.Name == "" {
			return nil, fmt.Errorf("menu: %s: item without name", source)
		}
		var fromGroup []permission.Permission
		if r.Group != "" {
			g, err := permission.Group(permission.GroupName(r.Group))
			if err != nil {
				return nil, annotate(err, source, r.Name)
			}
			fromGroup = g
		}
		explicit, err := permission.Parse(r.Permissions...)
		if err != nil {
			return nil, annotate(err, source, r.Name)
		}
		item := Item{
			Name:        r.Name,
			Icon:        r.Icon,
			Path:        r.Path,
			Badge:       r.Badge,
			Permissions: permission.Combine(fromGroup, explicit),
		}
		if len(r.Children) > 0 {
			children, err := convert(source, r.Children)
			if err != nil {
				return nil, err
			}
			item.Children = children
		}
		items = append(items, item)
	}
	return items, nil
}

func annotate(err error, source, item string) error {
	var cfgErr *permission.ConfigurationError
	if errors.As(err, &cfgErr) {
		cp := *cfgErr
		cp.Source = fmt.Sprintf("%s item %q", source, item)
		return &cp
	}
	return err
}

var defaultMenu = sync.OnceValue(func() []Item {
	items, err := Load("menu.yaml", defaultMenuYAML)
	if err != nil {
		panic(err)
	}
	return items
})

// Default returns a copy of the portal's sidebar configuration.
func Default() []Item {
	return Clone(defaultMenu())
}
