package guard

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/odyssey-erp/hris-access/internal/permission"
)

//go:embed routes.yaml
var defaultRoutesYAML []byte

// Wildcard is the path of the catch-all route.
const Wildcard = "**"

// Route is one entry of the route table.
type Route struct {
	Path        string
	Permissions []permission.Permission
	RedirectTo  string
}

// Public reports whether the route needs no permission.
func (r Route) Public() bool { return len(r.Permissions) == 0 && r.RedirectTo == "" }

type routeFile struct {
	Routes []struct {
		Path        string   `yaml:"path"`
		Permissions []string `yaml:"permissions"`
		RedirectTo  string   `yaml:"redirect_to"`
	} `yaml:"routes"`
}

// Routes is an immutable route table.
type Routes struct {
	ordered  []Route
	byPath   map[string]int
	wildcard *Route
}

// LoadRoutes parses a route table. Every permission must exist in the
// catalog; an unknown one yields a *permission.ConfigurationError.
func LoadRoutes(source string, data []byte) (*Routes, error) {
	var file routeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("guard: parse %s: %w", source, err)
	}

	rt := &Routes{byPath: make(map[string]int, len(file.Routes))}
	for _, raw := range file.Routes {
		path := normalize(raw.Path)
		if raw.Path == Wildcard {
			path = Wildcard
		}
		if _, dup := rt.byPath[path]; dup {
			return nil, fmt.Errorf("guard: %s: duplicate route %q", source, raw.Path)
		}
		perms, err := permission.Parse(raw.Permissions...)
		if err != nil {
			return nil, withSource(err, fmt.Sprintf("%s route %q", source, raw.Path))
		}
		if raw.RedirectTo != "" && len(perms) > 0 {
			return nil, fmt.Errorf("guard: %s: route %q redirects and requires permissions", source, raw.Path)
		}
		route := Route{Path: path, Permissions: perms, RedirectTo: raw.RedirectTo}
		rt.byPath[path] = len(rt.ordered)
		rt.ordered = append(rt.ordered, route)
		if path == Wildcard {
			w := route
			rt.wildcard = &w
		}
	}
	return rt, nil
}

func withSource(err error, source string) error {
	var cfgErr *permission.ConfigurationError
	if errors.As(err, &cfgErr) {
		cp := *cfgErr
		cp.Source = source
		return &cp
	}
	return err
}

var defaultRoutes = sync.OnceValue(func() *Routes {
	rt, err := LoadRoutes("routes.yaml", defaultRoutesYAML)
	if err != nil {
		panic(err)
	}
	return rt
})

// DefaultRoutes returns the portal's built-in route table.
func DefaultRoutes() *Routes { return defaultRoutes() }

// Match finds the route for path. Query strings, fragments and surrounding
// slashes are ignored. Unknown paths match the wildcard route if present.
func (rt *Routes) Match(path string) (Route, bool) {
	if i, ok := rt.byPath[normalize(path)]; ok {
		return rt.ordered[i], true
	}
	if rt.wildcard != nil {
		return *rt.wildcard, true
	}
	return Route{}, false
}

// All returns the routes in declaration order.
func (rt *Routes) All() []Route {
	out := make([]Route, len(rt.ordered))
	for i, r := range rt.ordered {
		r.Permissions = append([]permission.Permission(nil), r.Permissions...)
		out[i] = r
	}
	return out
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.Trim(strings.TrimSpace(path), "/")
}
