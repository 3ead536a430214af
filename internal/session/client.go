package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/odyssey-erp/hris-access/internal/access"
)

// Credentials are submitted by the login surface.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the data payload of a successful login.
type LoginResult struct {
	User         access.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	ExpiresIn    string      `json:"expiresIn,omitempty"`
	TokenType    string      `json:"tokenType,omitempty"`
}

// RefreshResult is the data payload of a successful token refresh.
type RefreshResult struct {
	Token string `json:"token"`
}

// ChangePasswordRequest is the body of a change-password call.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,nefield=CurrentPassword"`
}

// Backend is the authentication collaborator. Implementations return the
// typed errors of this package for every failure.
type Backend interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResult, error)
	ChangePassword(ctx context.Context, token string, req ChangePasswordRequest) error
	// Do performs an authenticated call. body and out may be nil.
	Do(ctx context.Context, token, method, path string, body, out any) error
}

// envelope is the response wrapper every backend endpoint uses.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

const maxResponseBytes = 1 << 20

// HTTPBackend talks JSON to the authentication backend over HTTP.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend returns a backend rooted at baseURL, e.g.
// "http://localhost:3000/api". A nil client gets a 15 second timeout.
func NewHTTPBackend(baseURL string, client *http.Client) *HTTPBackend {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPBackend{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (b *HTTPBackend) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var res LoginResult
	env, status, err := b.call(ctx, "", http.MethodPost, "/auth/login", creds)
	if err != nil {
		return res, err
	}
	if env.Success == nil || !*env.Success {
		return res, &AuthenticationError{Status: status, Message: orDefault(env.text(), "Login failed")}
	}
	if err := decodeData(env, &res); err != nil {
		return res, err
	}
	if res.Token == "" {
		return res, &AuthenticationError{Status: status, Message: "Login failed"}
	}
	return res, nil
}

func (b *HTTPBackend) Refresh(ctx context.Context, refreshToken string) (RefreshResult, error) {
	var res RefreshResult
	body := map[string]string{"refreshToken": refreshToken}
	env, status, err := b.call(ctx, "", http.MethodPost, "/auth/refresh-token", body)
	if err != nil {
		return res, err
	}
	if env.Success == nil || !*env.Success {
		return res, &AuthenticationError{Status: status, Message: orDefault(env.text(), "Token refresh failed")}
	}
	if err := decodeData(env, &res); err != nil {
		return res, err
	}
	if res.Token == "" {
		return res, &AuthenticationError{Status: status, Message: "Token refresh failed"}
	}
	return res, nil
}

func (b *HTTPBackend) ChangePassword(ctx context.Context, token string, req ChangePasswordRequest) error {
	env, status, err := b.call(ctx, token, http.MethodPost, "/auth/change-password", req)
	if err != nil {
		return err
	}
	if env.Success != nil && !*env.Success {
		return &RequestError{Status: status, Message: orDefault(env.text(), "Password change failed")}
	}
	return nil
}

// Do unwraps the envelope's data into out. Responses that are not wrapped
// in an envelope are decoded into out as a whole.
func (b *HTTPBackend) Do(ctx context.Context, token, method, path string, body, out any) error {
	env, status, err := b.call(ctx, token, method, path, body)
	if err != nil {
		return err
	}
	if env.Success != nil && !*env.Success {
		return &RequestError{Status: status, Message: env.text()}
	}
	if out == nil {
		return nil
	}
	return decodeData(env, out)
}

// call performs the request and classifies non-2xx statuses. On 2xx it
// returns the decoded envelope; a body that is not an envelope comes back
// as Data with a nil Success.
func (b *HTTPBackend) call(ctx context.Context, token, method, path string, body any) (envelope, int, error) {
	var env envelope

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return env, 0, fmt.Errorf("session: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return env, 0, fmt.Errorf("session: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return env, 0, ctxErr
		}
		return env, 0, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return env, resp.StatusCode, &NetworkError{Err: err}
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil || env.Success == nil {
			env = envelope{Data: raw}
		}
	}

	status := resp.StatusCode
	switch {
	case status == http.StatusUnauthorized:
		return env, status, &AuthenticationError{Status: status, Message: orDefault(env.text(), "Invalid credentials")}
	case status >= 500:
		return env, status, &ServerError{Status: status, Message: env.text()}
	case status < 200 || status > 299:
		return env, status, &RequestError{Status: status, Message: env.text()}
	}
	return env, status, nil
}

func decodeData(env envelope, out any) error {
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return errors.New("session: response carried no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("session: decode response: %w", err)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

var _ Backend = (*HTTPBackend)(nil)
