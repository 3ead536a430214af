package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// RefreshToken exchanges the stored refresh token for a new bearer token.
// Concurrent callers share one backend call; a caller giving up does not
// cancel it for the others. A 401 from the backend ends the session.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.refreshGroup.DoChan("refresh", func() (any, error) {
		return s.refresh(shared)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *Store) refresh(ctx context.Context) (string, error) {
	refreshToken, ok, err := s.storage.Get(ctx, s.keys.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("session: read refresh token: %w", err)
	}
	if !ok || refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	gen := s.generation.Load()
	res, err := s.backend.Refresh(ctx, refreshToken)
	if err != nil {
		if Unauthorized(err) {
			s.forceLogout(ctx, gen)
		}
		s.logger.Warn("token refresh failed", slog.Any("error", err))
		return "", err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.generation.Load() != gen {
		return "", ErrSuperseded
	}
	if err := s.storage.Set(ctx, s.keys.Token, res.Token); err != nil {
		return "", fmt.Errorf("session: persist token: %w", err)
	}
	s.logger.Debug("token refreshed")
	return res.Token, nil
}

// ChangePassword changes the signed-in user's password.
func (s *Store) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	req := ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := s.validate.Struct(req); err != nil {
		return &RequestError{Status: http.StatusBadRequest, Message: "New password must be set and differ from the current password"}
	}
	return s.authorized(ctx, func(token string) error {
		return s.backend.ChangePassword(ctx, token, req)
	})
}

// Do performs an authenticated backend call with the session's bearer
// token. An expired token is refreshed first when a refresh token exists.
// A 401 response ends the session before the error is returned.
func (s *Store) Do(ctx context.Context, method, path string, body, out any) error {
	return s.authorized(ctx, func(token string) error {
		return s.backend.Do(ctx, token, method, path, body, out)
	})
}

func (s *Store) authorized(ctx context.Context, call func(token string) error) error {
	gen := s.generation.Load()
	if s.current.Load() == nil {
		return ErrNotAuthenticated
	}
	token, ok := s.Token(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	if exp, ok := tokenExpiry(token); ok && !s.now().Before(exp) {
		fresh, err := s.RefreshToken(ctx)
		switch {
		case err == nil:
			token = fresh
		case errors.Is(err, ErrNoRefreshToken):
			// the backend decides; a 401 below ends the session
		default:
			return err
		}
	}

	err := call(token)
	if Unauthorized(err) {
		s.forceLogout(ctx, gen)
		return err
	}
	if err == nil {
		s.writeMu.Lock()
		if s.generation.Load() == gen {
			if touchErr := s.touchLocked(ctx); touchErr != nil {
				s.logger.Warn("record activity", slog.Any("error", touchErr))
			}
		}
		s.writeMu.Unlock()
	}
	return err
}

func tokenExpiry(token string) (time.Time, bool) {
	parsed, err := jwt.ParseString(token, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return time.Time{}, false
	}
	exp := parsed.Expiration()
	if exp.IsZero() {
		return time.Time{}, false
	}
	return exp, true
}
