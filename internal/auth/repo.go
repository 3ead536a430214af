package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/platform/httpx"
	"github.com/odyssey-erp/hris-access/internal/platform/kv"
)

// Repository defines persistence operations for auth module.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Roles(ctx context.Context) ([]Role, error)
}

// MemoryRepository keeps accounts in process memory.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]Account
	byUsername map[string]string
	roles      []Role
}

// NewMemoryRepository constructs a repository holding accounts and roles.
func NewMemoryRepository(accounts []Account, roles []Role) *MemoryRepository {
	r := &MemoryRepository{
		byID:       make(map[string]Account, len(accounts)),
		byUsername: make(map[string]string, len(accounts)),
	}
	for _, a := range accounts {
		r.byID[a.ID] = a
		r.byUsername[strings.ToLower(a.Username)] = a.ID
	}
	title := cases.Title(language.English)
	for _, role := range roles {
		if role.DisplayName == "" {
			role.DisplayName = title.String(access.HumanizeRole(role.Name))
		}
		r.roles = append(r.roles, role)
	}
	return r
}

// FindByUsername fetches an account by case-insensitive username.
func (r *MemoryRepository) FindByUsername(_ context.Context, username string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return Account{}, httpx.ErrNotFound
	}
	return r.byID[id], nil
}

// FindByID fetches an account by id.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return Account{}, httpx.ErrNotFound
	}
	return a, nil
}

// UpdatePassword replaces the stored password hash.
func (r *MemoryRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return httpx.ErrNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = time.Now().UTC()
	r.byID[id] = a
	return nil
}

// Roles lists the configured roles.
func (r *MemoryRepository) Roles(context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Role(nil), r.roles...), nil
}

var _ Repository = (*MemoryRepository)(nil)

const refreshKeyPrefix = "refresh:"

type refreshRecord struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RefreshStore keeps opaque refresh tokens in a kv.Storage so they survive
// restarts when the storage is Redis or Postgres.
type RefreshStore struct {
	storage kv.Storage
	ttl     time.Duration
	now     func() time.Time
}

// NewRefreshStore constructs a RefreshStore issuing tokens valid for ttl.
func NewRefreshStore(storage kv.Storage, ttl time.Duration) *RefreshStore {
	return &RefreshStore{storage: storage, ttl: ttl, now: time.Now}
}

// Issue creates a refresh token for userID.
func (s *RefreshStore) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(refreshRecord{UserID: userID, ExpiresAt: s.now().Add(s.ttl).UTC()})
	if err != nil {
		return "", fmt.Errorf("auth: encode refresh token: %w", err)
	}
	if err := s.storage.Set(ctx, refreshKeyPrefix+token, string(payload)); err != nil {
		return "", fmt.Errorf("auth: store refresh token: %w", err)
	}
	return token, nil
}

// Resolve returns the user a refresh token was issued to. Unknown and
// expired tokens yield ErrInvalidRefreshToken.
func (s *RefreshStore) Resolve(ctx context.Context, token string) (string, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", ErrInvalidRefreshToken
	}
	raw, ok, err := s.storage.Get(ctx, refreshKeyPrefix+token)
	if err != nil {
		return "", fmt.Errorf("auth: load refresh token: %w", err)
	}
	if !ok {
		return "", ErrInvalidRefreshToken
	}
	var rec refreshRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return "", ErrInvalidRefreshToken
	}
	if !s.now().Before(rec.ExpiresAt) {
		_ = s.storage.Delete(ctx, refreshKeyPrefix+token)
		return "", ErrInvalidRefreshToken
	}
	return rec.UserID, nil
}

// Revoke deletes a refresh token.
func (s *RefreshStore) Revoke(ctx context.Context, token string) error {
	return s.storage.Delete(ctx, refreshKeyPrefix+token)
}
