package guard

import (
	"context"
	"net/http"

	"github.com/odyssey-erp/hris-access/internal/permission"
)

type ctxKey struct{}

// WithSession binds a request-scoped session, overriding Guard.Session for
// middleware checks.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// SessionFromContext returns the session bound by WithSession.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}

// DenyFunc writes the response for a denied request.
type DenyFunc func(w http.ResponseWriter, r *http.Request, d Decision)

// RedirectDenied sends the client to the decision's redirect target.
func RedirectDenied(w http.ResponseWriter, r *http.Request, d Decision) {
	http.Redirect(w, r, d.RedirectTo, http.StatusSeeOther)
}

// StatusDenied answers 401 for missing sessions and 403 otherwise, for
// API routes where a redirect makes no sense.
func StatusDenied(w http.ResponseWriter, _ *http.Request, d Decision) {
	status := http.StatusForbidden
	if d.Reason == ReasonUnauthenticated {
		status = http.StatusUnauthorized
	}
	http.Error(w, http.StatusText(status), status)
}

// Middleware wires guard checks into HTTP handlers.
type Middleware struct {
	Guard *Guard
	// Deny defaults to RedirectDenied.
	Deny DenyFunc
}

// RequireAny lets the request through when the session holds at least one
// of perms. No perms means public.
func (m Middleware) RequireAny(perms ...permission.Permission) func(http.Handler) http.Handler {
	required := append([]permission.Permission(nil), perms...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := m.Guard.decide(r.Context(), m.session(r), required)
			m.serve(w, r, next, d)
		})
	}
}

// Routes gates every request by looking its path up in the guard's route
// table.
func (m Middleware) Routes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := m.Guard.resolve(r.Context(), m.session(r), r.URL.Path)
		m.serve(w, r, next, d)
	})
}

func (m Middleware) serve(w http.ResponseWriter, r *http.Request, next http.Handler, d Decision) {
	if m.Guard.Observer != nil {
		m.Guard.Observer.ObserveGuardDecision(string(d.Reason), d.Allowed)
	}
	if d.Allowed {
		next.ServeHTTP(w, r)
		return
	}
	deny := m.Deny
	if deny == nil {
		deny = RedirectDenied
	}
	deny(w, r, d)
}

func (m Middleware) session(r *http.Request) Session {
	if s := SessionFromContext(r.Context()); s != nil {
		return s
	}
	return m.Guard.Session
}
