// Package guard decides whether a navigation to a permission-gated route
// may proceed.
package guard

import (
	"context"
	"io"
	"log/slog"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/permission"
)

// Reason explains a Decision.
type Reason string

const (
	ReasonPublic          Reason = "public"
	ReasonGranted         Reason = "granted"
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
	ReasonRedirect        Reason = "redirect"
)

// Decision is the outcome of a guard check. A denied decision always
// carries the route the caller is sent to instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
	Reason     Reason
}

// Session is the read side of the session store the guard consults.
type Session interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUser() *access.User
}

// Navigator performs the redirect of a denied navigation.
type Navigator interface {
	Navigate(ctx context.Context, target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, target string)

func (f NavigatorFunc) Navigate(ctx context.Context, target string) { f(ctx, target) }

// Observer receives every decision, typically for metrics.
type Observer interface {
	ObserveGuardDecision(reason string, allowed bool)
}

const (
	DefaultLoginPath     = "/login"
	DefaultAuthenticated = "/dashboard"
)

// Guard checks navigations against the current session. It only reads the
// session and is safe for concurrent use.
type Guard struct {
	Session   Session
	Navigator Navigator
	Routes    *Routes
	// LoginPath receives unauthenticated users, DefaultPath users that
	// lack the required permissions.
	LoginPath   string
	DefaultPath string
	Observer    Observer
	Logger      *slog.Logger
}

// New returns a Guard over session using the built-in route table.
func New(session Session, nav Navigator) *Guard {
	return &Guard{Session: session, Navigator: nav, Routes: DefaultRoutes()}
}

// CanActivate decides a navigation to a route requiring any of required.
// On denial the Navigator is sent to the redirect target before returning.
func (g *Guard) CanActivate(ctx context.Context, required []permission.Permission) Decision {
	d := g.decide(ctx, g.Session, required)
	g.finish(ctx, d, "")
	return d
}

// Navigate resolves path against the route table and decides it. Redirect
// entries and unknown paths are denied with their redirect target.
func (g *Guard) Navigate(ctx context.Context, path string) Decision {
	d := g.resolve(ctx, g.Session, path)
	g.finish(ctx, d, path)
	return d
}

func (g *Guard) resolve(ctx context.Context, s Session, path string) Decision {
	routes := g.Routes
	if routes == nil {
		routes = DefaultRoutes()
	}
	route, ok := routes.Match(path)
	if !ok {
		return Decision{RedirectTo: g.loginPath(), Reason: ReasonRedirect}
	}
	if route.RedirectTo != "" {
		return Decision{RedirectTo: route.RedirectTo, Reason: ReasonRedirect}
	}
	return g.decide(ctx, s, route.Permissions)
}

func (g *Guard) decide(ctx context.Context, s Session, required []permission.Permission) Decision {
	if len(required) == 0 {
		return Decision{Allowed: true, Reason: ReasonPublic}
	}
	if s == nil || !s.IsAuthenticated(ctx) {
		return Decision{RedirectTo: g.loginPath(), Reason: ReasonUnauthenticated}
	}
	if !access.For(s.CurrentUser()).HasAnyPermission(required) {
		return Decision{RedirectTo: g.defaultPath(), Reason: ReasonForbidden}
	}
	return Decision{Allowed: true, Reason: ReasonGranted}
}

func (g *Guard) finish(ctx context.Context, d Decision, path string) {
	if g.Observer != nil {
		g.Observer.ObserveGuardDecision(string(d.Reason), d.Allowed)
	}
	if d.Allowed {
		return
	}
	g.logger().Debug("navigation denied",
		slog.String("path", path),
		slog.String("reason", string(d.Reason)),
		slog.String("redirect", d.RedirectTo))
	if g.Navigator != nil {
		g.Navigator.Navigate(ctx, d.RedirectTo)
	}
}

func (g *Guard) loginPath() string {
	if g.LoginPath != "" {
		return g.LoginPath
	}
	return DefaultLoginPath
}

func (g *Guard) defaultPath() string {
	if g.DefaultPath != "" {
		return g.DefaultPath
	}
	return DefaultAuthenticated
}

func (g *Guard) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
