package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/permission"
)

type fakeAccount struct {
	password string
	user     access.User
}

// fakeAuth is an in-test authentication backend speaking the portal's
// envelope format.
type fakeAuth struct {
	t        *testing.T
	mu       sync.Mutex
	accounts map[string]fakeAccount
	tokenTTL time.Duration
	refresh  string
	issued   map[string]string

	// loginGate, when set, blocks the login handler until closed.
	loginGate    chan struct{}
	loginEntered chan struct{}

	// refreshGate, when set, blocks the refresh handler until closed.
	refreshGate    chan struct{}
	refreshEntered chan struct{}

	refreshCalls atomic.Int32
	lastBearer   atomic.Value
}

func newFakeAuth(t *testing.T) *fakeAuth {
	t.Helper()
	return &fakeAuth{
		t:        t,
		tokenTTL: time.Hour,
		refresh:  "refresh-1",
		issued:   map[string]string{},
		accounts: map[string]fakeAccount{
			"admin": {password: "Admin123!", user: access.User{
				ID: "u-1", Username: "admin", Email: "admin@example.com", Status: "active",
				Personnel:   []access.PersonnelInfo{{ID: "p-1", FirstName: "Ada", LastName: "Admin", EmploymentType: "regular"}},
				Roles:       []string{"super_admin"},
				Permissions: []permission.Permission{permission.RoleRead, permission.UserRead},
			}},
			"employee": {password: "Employee123!", user: access.User{
				ID: "u-3", Username: "employee", Status: "active",
				Roles:       []string{"employee"},
				Permissions: []permission.Permission{permission.EmployeeRead},
			}},
			"applicant": {password: "Applicant123!", user: access.User{
				ID: "u-4", Username: "applicant", Status: "active",
				Roles: []string{"Applicant"},
			}},
		},
	}
}

func (f *fakeAuth) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", f.login)
	mux.HandleFunc("POST /auth/refresh-token", f.refreshToken)
	mux.HandleFunc("POST /auth/change-password", f.changePassword)
	mux.HandleFunc("GET /system/roles", f.roles)
	mux.HandleFunc("GET /boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /unauthorized", func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Token expired", nil)
	})
	srv := httptest.NewServer(mux)
	f.t.Cleanup(srv.Close)
	return srv
}

func (f *fakeAuth) login(w http.ResponseWriter, r *http.Request) {
	if f.loginEntered != nil {
		f.loginEntered <- struct{}{}
	}
	if f.loginGate != nil {
		<-f.loginGate
	}
	var creds Credentials
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&creds))

	f.mu.Lock()
	acct, ok := f.accounts[creds.Username]
	f.mu.Unlock()
	if !ok || acct.password != creds.Password {
		writeEnvelope(w, http.StatusUnauthorized, false, "Invalid username or password", nil)
		return
	}
	token := f.issue(creds.Username)
	writeEnvelope(w, http.StatusOK, true, "Login successful", map[string]any{
		"user":         acct.user,
		"token":        token,
		"refreshToken": f.refresh,
		"expiresIn":    "1h",
		"tokenType":    "Bearer",
	})
}

func (f *fakeAuth) refreshToken(w http.ResponseWriter, r *http.Request) {
	f.refreshCalls.Add(1)
	if f.refreshEntered != nil {
		f.refreshEntered <- struct{}{}
	}
	if f.refreshGate != nil {
		<-f.refreshGate
	}
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
	if body.RefreshToken != f.refresh {
		writeEnvelope(w, http.StatusUnauthorized, false, "Invalid refresh token", nil)
		return
	}
	f.mu.Lock()
	f.tokenTTL = time.Hour
	f.mu.Unlock()
	writeEnvelope(w, http.StatusOK, true, "", map[string]string{"token": f.issue("admin")})
}

func (f *fakeAuth) changePassword(w http.ResponseWriter, r *http.Request) {
	if f.authenticate(r) == "" {
		writeEnvelope(w, http.StatusUnauthorized, false, "", nil)
		return
	}
	var req ChangePasswordRequest
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
	f.mu.Lock()
	defer f.mu.Unlock()
	acct := f.accounts["admin"]
	if acct.password != req.CurrentPassword {
		writeEnvelope(w, http.StatusOK, false, "Current password is incorrect", nil)
		return
	}
	acct.password = req.NewPassword
	f.accounts["admin"] = acct
	writeEnvelope(w, http.StatusOK, true, "Password changed", nil)
}

func (f *fakeAuth) roles(w http.ResponseWriter, r *http.Request) {
	if f.authenticate(r) == "" {
		writeEnvelope(w, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}
	writeEnvelope(w, http.StatusOK, true, "", []string{"super_admin", "hr_manager"})
}

func (f *fakeAuth) authenticate(r *http.Request) string {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	f.lastBearer.Store(token)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issued[token]
}

func (f *fakeAuth) revokeAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued = map[string]string{}
}

func (f *fakeAuth) issue(username string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok := jwt.New()
	require.NoError(f.t, tok.Set(jwt.SubjectKey, username))
	require.NoError(f.t, tok.Set(jwt.IssuedAtKey, time.Now()))
	require.NoError(f.t, tok.Set(jwt.JwtIDKey, time.Now().Format(time.RFC3339Nano)))
	require.NoError(f.t, tok.Set(jwt.ExpirationKey, time.Now().Add(f.tokenTTL)))
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	require.NoError(f.t, err)
	f.issued[string(signed)] = username
	return string(signed)
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"success": success}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	_ = json.NewEncoder(w).Encode(body)
}
