// Package session holds the authenticated identity of the portal: the
// current user, the bearer and refresh tokens, and their durable copy.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/platform/kv"
)

// Login outcomes reported to the Observer.
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeSuperseded = "superseded"
	OutcomeInvalid    = "invalid"
	OutcomeApplicant  = "applicant"
)

// Observer receives session events, typically for metrics.
type Observer interface {
	ObserveLogin(outcome string)
	ObserveLogout(reason string)
}

// Options configures Open.
type Options struct {
	Backend Backend
	// Storage defaults to an in-memory store.
	Storage kv.Storage
	Keys    Keys
	// IdleTimeout expires a restored session whose last recorded activity
	// is older than this. Zero disables the check.
	IdleTimeout time.Duration
	Logger      *slog.Logger
	Observer    Observer
	Now         func() time.Time
}

// Store is the session context handed to the guard, the menu and every
// caller that needs the current identity. Login, Logout and RefreshToken
// are its only mutators.
//
// Every Logout and every applied Login advances a generation counter. A
// Login or refresh whose response arrives after the generation moved is
// discarded with ErrSuperseded, so a logout always wins over an older
// in-flight login.
type Store struct {
	backend  Backend
	storage  kv.Storage
	keys     Keys
	idle     time.Duration
	logger   *slog.Logger
	observer Observer
	now      func() time.Time
	validate *validator.Validate

	// writeMu serializes storage mutation and publication.
	writeMu    sync.Mutex
	generation atomic.Uint64
	current    atomic.Pointer[access.User]

	subMu   sync.Mutex
	subs    map[uint64]func(*access.User)
	nextSub uint64

	refreshGroup singleflight.Group
}

// Open builds a Store and restores any session persisted in storage.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Backend == nil {
		return nil, errors.New("session: backend is required")
	}
	s := &Store{
		backend:  opts.Backend,
		storage:  opts.Storage,
		keys:     opts.Keys.withDefaults(),
		idle:     opts.IdleTimeout,
		logger:   opts.Logger,
		observer: opts.Observer,
		now:      opts.Now,
		validate: validator.New(),
		subs:     make(map[uint64]func(*access.User)),
	}
	if s.storage == nil {
		s.storage = kv.NewMemory()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.now == nil {
		s.now = time.Now
	}
	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) restore(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	token, hasToken, err := s.storage.Get(ctx, s.keys.Token)
	if err != nil {
		return fmt.Errorf("session: restore: %w", err)
	}
	raw, hasUser, err := s.storage.Get(ctx, s.keys.User)
	if err != nil {
		return fmt.Errorf("session: restore: %w", err)
	}
	if !hasToken || token == "" || !hasUser {
		if hasToken || hasUser {
			s.logger.Warn("discarding partial stored session", slog.Bool("token", hasToken), slog.Bool("user", hasUser))
			return s.clearLocked(ctx, "")
		}
		return nil
	}

	var user access.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Error("stored user is unreadable", slog.Any("error", err))
		return s.clearLocked(ctx, "")
	}

	if s.idle > 0 {
		expired, err := s.idleLocked(ctx)
		if err != nil {
			return fmt.Errorf("session: restore: %w", err)
		}
		if expired {
			s.logger.Info("stored session expired", slog.String("user", user.Username), slog.Duration("idle_timeout", s.idle))
			return s.clearLocked(ctx, ReasonSessionTimeout)
		}
	}

	enhanced := access.Enhance(user)
	s.publish(&enhanced)
	s.logger.Info("session restored", slog.String("user", enhanced.Username))
	return nil
}

// idleLocked reports whether the recorded last activity is older than the
// idle timeout. A missing or unreadable timestamp counts as active.
func (s *Store) idleLocked(ctx context.Context) (bool, error) {
	raw, ok, err := s.storage.Get(ctx, s.keys.LastActivity)
	if err != nil || !ok {
		return false, err
	}
	last, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return false, nil
	}
	return s.now().Sub(last) > s.idle, nil
}

// ExpireIfIdle logs the session out with ReasonSessionTimeout when it has
// been idle longer than the configured timeout.
func (s *Store) ExpireIfIdle(ctx context.Context) (bool, error) {
	if s.idle <= 0 {
		return false, nil
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.current.Load() == nil {
		return false, nil
	}
	expired, err := s.idleLocked(ctx)
	if err != nil || !expired {
		return false, err
	}
	return true, s.clearLocked(ctx, ReasonSessionTimeout)
}

// Login authenticates with the backend and installs the returned user as
// the current session. A rejected login leaves storage untouched.
func (s *Store) Login(ctx context.Context, creds Credentials) (*access.User, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if err := s.validate.Struct(creds); err != nil {
		s.observeLogin(OutcomeInvalid)
		return nil, ErrMissingCredentials
	}

	gen := s.generation.Load()
	res, err := s.backend.Login(ctx, creds)
	if err != nil {
		s.observeLogin(OutcomeFailure)
		s.logger.Warn("login failed", slog.String("user", creds.Username), slog.Any("error", err))
		return nil, err
	}
	user := access.Enhance(res.User)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.generation.Load() != gen {
		s.observeLogin(OutcomeSuperseded)
		s.logger.Info("discarding superseded login", slog.String("user", creds.Username))
		return nil, ErrSuperseded
	}

	if err := s.persistLocked(ctx, res, user); err != nil {
		// Storage may now hold a mix of the old and new session; drop both.
		s.observeLogin(OutcomeFailure)
		s.logger.Error("persist session", slog.String("user", creds.Username), slog.Any("error", err))
		return nil, errors.Join(err, s.clearLocked(ctx, ""))
	}

	s.generation.Add(1)
	s.publish(&user)
	s.observeLogin(OutcomeSuccess)
	s.logger.Info("login succeeded", slog.String("user", user.Username), slog.String("role", user.Role))

	out := user.Clone()
	return out, nil
}

func (s *Store) persistLocked(ctx context.Context, res LoginResult, user access.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.storage.Set(ctx, s.keys.Token, res.Token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	if res.RefreshToken != "" {
		err = s.storage.Set(ctx, s.keys.RefreshToken, res.RefreshToken)
	} else {
		err = s.storage.Delete(ctx, s.keys.RefreshToken)
	}
	if err != nil {
		return fmt.Errorf("session: persist refresh token: %w", err)
	}
	if err := s.storage.Set(ctx, s.keys.User, string(payload)); err != nil {
		return fmt.Errorf("session: persist user: %w", err)
	}
	if err := s.touchLocked(ctx); err != nil {
		return fmt.Errorf("session: persist activity: %w", err)
	}
	return nil
}

// LoginStaff is Login for the staff portal: applicant accounts are signed
// out again and rejected with ErrApplicantAccount.
func (s *Store) LoginStaff(ctx context.Context, creds Credentials) (*access.User, error) {
	user, err := s.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if isApplicant(user) {
		s.observeLogin(OutcomeApplicant)
		if err := s.Logout(ctx, ""); err != nil {
			return nil, err
		}
		return nil, ErrApplicantAccount
	}
	return user, nil
}

func isApplicant(u *access.User) bool {
	return strings.EqualFold(u.Role, "Applicant")
}

// DemoCredentials returns the seeded account for a demo role: "admin",
// "hr" or "employee". Unknown roles fall back to admin.
func DemoCredentials(role string) (Credentials, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "applicant":
		return Credentials{}, ErrApplicantAccount
	case "hr":
		return Credentials{Username: "hr_manager", Password: "HR123!"}, nil
	case "employee":
		return Credentials{Username: "employee", Password: "Employee123!"}, nil
	default:
		return Credentials{Username: "admin", Password: "Admin123!"}, nil
	}
}

// DemoLogin signs in with the seeded account for role.
func (s *Store) DemoLogin(ctx context.Context, role string) (*access.User, error) {
	creds, err := DemoCredentials(role)
	if err != nil {
		s.observeLogin(OutcomeApplicant)
		return nil, err
	}
	return s.LoginStaff(ctx, creds)
}

// Logout clears the session. A non-empty reason is kept for one read by
// GetAndClearLogoutReason. The in-memory session is cleared even when
// storage fails; the storage error is returned.
func (s *Store) Logout(ctx context.Context, reason string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.clearLocked(ctx, reason)
}

func (s *Store) clearLocked(ctx context.Context, reason string) error {
	s.generation.Add(1)
	err := s.storage.Delete(ctx, s.keys.credentials()...)
	if err != nil {
		err = fmt.Errorf("session: clear: %w", err)
	} else if reason != "" {
		if setErr := s.storage.Set(ctx, s.keys.LogoutReason, reason); setErr != nil {
			err = fmt.Errorf("session: store logout reason: %w", setErr)
		}
	}

	had := s.current.Load() != nil
	s.publish(nil)
	if had {
		if s.observer != nil {
			s.observer.ObserveLogout(orDefault(reason, "user"))
		}
		s.logger.Info("logged out", slog.String("reason", reason))
	}
	return err
}

// forceLogout ends the session after a 401 on an authenticated call, unless
// the session already changed since the call started.
func (s *Store) forceLogout(ctx context.Context, gen uint64) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.generation.Load() != gen {
		return
	}
	s.logger.Warn("backend rejected session token, logging out")
	if err := s.clearLocked(ctx, ""); err != nil {
		s.logger.Error("forced logout", slog.Any("error", err))
	}
}

// GetAndClearLogoutReason returns the stored logout reason once.
func (s *Store) GetAndClearLogoutReason(ctx context.Context) (string, bool) {
	reason, ok, err := s.storage.Take(ctx, s.keys.LogoutReason)
	if err != nil {
		s.logger.Error("read logout reason", slog.Any("error", err))
		return "", false
	}
	return reason, ok && reason != ""
}

// IsAuthenticated reports whether a token is stored and a user is
// published. It never waits on an in-flight login.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	if s.current.Load() == nil {
		return false
	}
	_, ok := s.Token(ctx)
	return ok
}

// CurrentUser returns a copy of the published user, or nil.
func (s *Store) CurrentUser() *access.User {
	return s.current.Load().Clone()
}

// Token returns the stored bearer token.
func (s *Store) Token(ctx context.Context) (string, bool) {
	token, ok, err := s.storage.Get(ctx, s.keys.Token)
	if err != nil {
		s.logger.Error("read token", slog.Any("error", err))
		return "", false
	}
	return token, ok && token != ""
}

// TokenExpiry reads the exp claim of the stored token. The signature is
// not checked; only the backend can do that.
func (s *Store) TokenExpiry(ctx context.Context) (time.Time, bool) {
	token, ok := s.Token(ctx)
	if !ok {
		return time.Time{}, false
	}
	return tokenExpiry(token)
}

// Subscribe registers fn for every change of the current user. fn is
// called immediately with the current value, then once per change in the
// order changes happen. fn runs synchronously and must not call back into
// the Store's mutators or Subscribe.
func (s *Store) Subscribe(fn func(*access.User)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	fn(s.current.Load().Clone())
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// publish installs u as the current user and notifies subscribers. Callers
// hold writeMu.
func (s *Store) publish(u *access.User) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.current.Store(u)
	for _, fn := range s.subs {
		fn(u.Clone())
	}
}

func (s *Store) touchLocked(ctx context.Context) error {
	return s.storage.Set(ctx, s.keys.LastActivity, s.now().UTC().Format(time.RFC3339Nano))
}

func (s *Store) observeLogin(outcome string) {
	if s.observer != nil {
		s.observer.ObserveLogin(outcome)
	}
}
