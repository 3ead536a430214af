package guard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/permission"
)

type stubSession struct {
	user *access.User
}

func (s stubSession) IsAuthenticated(context.Context) bool { return s.user != nil }
func (s stubSession) CurrentUser() *access.User            { return s.user }

func withPermissions(perms ...permission.Permission) stubSession {
	return stubSession{user: &access.User{Username: "jdoe", Permissions: perms}}
}

type recorder struct {
	targets   []string
	decisions map[string]int
}

func (r *recorder) Navigate(_ context.Context, target string) { r.targets = append(r.targets, target) }

func (r *recorder) ObserveGuardDecision(reason string, _ bool) {
	if r.decisions == nil {
		r.decisions = map[string]int{}
	}
	r.decisions[reason]++
}

func TestAnyMatchAllows(t *testing.T) {
	nav := &recorder{}
	g := New(withPermissions(permission.EmployeeRead), nav)

	d := g.CanActivate(context.Background(), []permission.Permission{permission.EmployeeRead, permission.EmployeeCreate})
	assert.Equal(t, Decision{Allowed: true, Reason: ReasonGranted}, d)
	assert.Empty(t, nav.targets)
}

func TestDenyRedirectsByAuthentication(t *testing.T) {
	ctx := context.Background()
	required := []permission.Permission{permission.RoleRead}

	nav := &recorder{}
	g := New(withPermissions(), nav)
	d := g.CanActivate(ctx, required)
	assert.False(t, d.Allowed)
	assert.Equal(t, "/dashboard", d.RedirectTo)
	assert.Equal(t, ReasonForbidden, d.Reason)

	g = New(stubSession{}, nav)
	d = g.CanActivate(ctx, required)
	assert.False(t, d.Allowed)
	assert.Equal(t, "/login", d.RedirectTo)
	assert.Equal(t, ReasonUnauthenticated, d.Reason)

	assert.Equal(t, []string{"/dashboard", "/login"}, nav.targets)
}

func TestEmptyRequirementIsPublic(t *testing.T) {
	g := New(stubSession{}, nil)
	assert.True(t, g.CanActivate(context.Background(), nil).Allowed)
	assert.True(t, g.CanActivate(context.Background(), []permission.Permission{}).Allowed)
}

func TestCustomRedirectTargets(t *testing.T) {
	g := &Guard{Session: withPermissions(), LoginPath: "/signin", DefaultPath: "/home"}
	d := g.CanActivate(context.Background(), []permission.Permission{permission.UserRead})
	assert.Equal(t, "/home", d.RedirectTo)
	g.Session = nil
	d = g.CanActivate(context.Background(), []permission.Permission{permission.UserRead})
	assert.Equal(t, "/signin", d.RedirectTo)
}

func TestNavigateUsesRouteTable(t *testing.T) {
	ctx := context.Background()
	nav := &recorder{}
	g := New(withPermissions(permission.RoleRead), nav)
	g.Observer = nav

	assert.True(t, g.Navigate(ctx, "/system-administration/role-management").Allowed)
	assert.True(t, g.Navigate(ctx, "/system-administration?tab=roles").Allowed)
	assert.True(t, g.Navigate(ctx, "/login").Allowed)

	d := g.Navigate(ctx, "/payroll-management/payroll-run")
	assert.Equal(t, Decision{RedirectTo: "/dashboard", Reason: ReasonForbidden}, d)

	d = g.Navigate(ctx, "/")
	assert.Equal(t, Decision{RedirectTo: "/login", Reason: ReasonRedirect}, d)

	d = g.Navigate(ctx, "/no/such/page")
	assert.Equal(t, Decision{RedirectTo: "/login", Reason: ReasonRedirect}, d)

	assert.Equal(t, []string{"/dashboard", "/login", "/login"}, nav.targets)
	assert.Equal(t, 2, nav.decisions[string(ReasonRedirect)])
	assert.Equal(t, 2, nav.decisions[string(ReasonGranted)])
}

func TestGuardDoesNotTouchSession(t *testing.T) {
	user := &access.User{Username: "jdoe", Permissions: []permission.Permission{permission.UserRead}}
	before := user.Clone()
	g := New(stubSession{user: user}, nil)
	for _, r := range DefaultRoutes().All() {
		g.Navigate(context.Background(), r.Path)
	}
	assert.Equal(t, before, user)
}

func TestDefaultRoutes(t *testing.T) {
	rt := DefaultRoutes()
	all := rt.All()
	require.Len(t, all, 51)
	assert.Equal(t, "", all[0].Path)
	assert.Equal(t, Wildcard, all[len(all)-1].Path)

	r, ok := rt.Match("system-administration")
	require.True(t, ok)
	assert.Equal(t, []permission.Permission{permission.UserRead, permission.RoleRead, permission.PermissionRead}, r.Permissions)

	for _, public := range []string{"login", "register", "online-job-login", "dashboard", "online-job-application-portal", "health-wellness"} {
		r, ok := rt.Match(public)
		require.True(t, ok, public)
		assert.True(t, r.Public(), public)
	}
}

func TestLoadRoutesRejectsUnknownPermission(t *testing.T) {
	data := []byte("routes:\n  - path: reports\n    permissions: [report_read, report_delete]\n")
	_, err := LoadRoutes("test.yaml", data)
	require.ErrorIs(t, err, permission.ErrUnknownPermission)
	var cfgErr *permission.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "report_delete", cfgErr.Token)
	assert.Contains(t, cfgErr.Source, "reports")
}

func TestLoadRoutesRejectsDuplicates(t *testing.T) {
	data := []byte("routes:\n  - path: login\n  - path: /login/\n")
	_, err := LoadRoutes("test.yaml", data)
	require.Error(t, err)
}

func TestMatchWithoutWildcard(t *testing.T) {
	rt, err := LoadRoutes("test.yaml", []byte("routes:\n  - path: login\n"))
	require.NoError(t, err)
	_, ok := rt.Match("elsewhere")
	assert.False(t, ok)

	g := &Guard{Routes: rt}
	d := g.Navigate(context.Background(), "elsewhere")
	assert.Equal(t, "/login", d.RedirectTo)
}

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	g := New(withPermissions(permission.RoleRead), nil)

	r := chi.NewRouter()
	mw := Middleware{Guard: g}
	r.With(mw.RequireAny(permission.RoleRead, permission.RoleCreate)).Get("/roles", ok)
	r.With(mw.RequireAny(permission.PayrollRecordRead)).Get("/payroll", ok)
	r.With(mw.RequireAny()).Get("/open", ok)

	cases := map[string]int{"/roles": http.StatusNoContent, "/payroll": http.StatusSeeOther, "/open": http.StatusNoContent}
	for path, want := range cases {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payroll", nil))
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestMiddlewareRequestSessionAndStatusDeny(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mw := Middleware{Guard: &Guard{}, Deny: StatusDenied}
	h := mw.RequireAny(permission.RoleRead)(ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/system/roles", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/system/roles", nil)
	req = req.WithContext(WithSession(req.Context(), withPermissions(permission.EmployeeRead)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/system/roles", nil)
	req = req.WithContext(WithSession(req.Context(), withPermissions(permission.RoleRead)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	h := Middleware{Guard: New(stubSession{}, nil)}.Routes(ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recruitment", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
