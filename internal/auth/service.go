package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/platform/httpx"
)

// Domain errors surfaced to clients.
var (
	ErrInvalidCredentials  = httpx.Errorf(httpx.ErrUnauthorized, "Invalid username or password")
	ErrAccountDisabled     = httpx.Errorf(httpx.ErrForbidden, "Account is disabled")
	ErrInvalidRefreshToken = httpx.Errorf(httpx.ErrUnauthorized, "Invalid or expired refresh token")
	ErrWrongPassword       = httpx.Errorf(httpx.ErrValidation, "Current password is incorrect")
)

// Session is the payload of a successful sign-in.
type Session struct {
	User         access.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	ExpiresIn    string      `json:"expiresIn"`
	TokenType    string      `json:"tokenType"`
}

// Service wraps authentication business rules.
type Service struct {
	repo    Repository
	tokens  *TokenIssuer
	refresh *RefreshStore
	cost    int
}

// NewService constructs a new Service. cost is the bcrypt cost used for
// new password hashes.
func NewService(repo Repository, tokens *TokenIssuer, refresh *RefreshStore, cost int) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, tokens: tokens, refresh: refresh, cost: cost}
}

// Login validates username/password credentials and issues tokens.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	if !account.Active() {
		return Session{}, ErrAccountDisabled
	}
	token, _, err := s.tokens.Issue(account)
	if err != nil {
		return Session{}, err
	}
	refreshToken, err := s.refresh.Issue(ctx, account.ID)
	if err != nil {
		return Session{}, err
	}
	return Session{
		User:         account.Profile(),
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresIn:    formatTTL(s.tokens.TTL()),
		TokenType:    "Bearer",
	}, nil
}

// Refresh exchanges a refresh token for a new access token. Refresh tokens
// are not rotated.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.refresh.Resolve(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}
	if !account.Active() {
		_ = s.refresh.Revoke(ctx, refreshToken)
		return "", ErrInvalidRefreshToken
	}
	token, _, err := s.tokens.Issue(account)
	return token, err
}

// ChangePassword verifies current and stores a hash of next.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(current)); err != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

// Profile returns the client representation of an account.
func (s *Service) Profile(ctx context.Context, userID string) (access.User, error) {
	account, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return access.User{}, err
	}
	return account.Profile(), nil
}

// Roles lists the configured roles.
func (s *Service) Roles(ctx context.Context) ([]Role, error) {
	return s.repo.Roles(ctx)
}

func formatTTL(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}
