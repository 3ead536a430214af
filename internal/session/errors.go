package session

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned by Store operations.
var (
	ErrNoRefreshToken     = errors.New("session: no refresh token available")
	ErrNotAuthenticated   = errors.New("session: not authenticated")
	ErrSuperseded         = errors.New("session: result superseded by a newer session change")
	ErrApplicantAccount   = errors.New("session: applicant accounts must use the job portal login")
	ErrMissingCredentials = errors.New("session: username and password are required")
)

// AuthenticationError reports rejected credentials or a failure the server
// stated explicitly in its payload. Status is 401 for rejected requests and
// the original 2xx status when the payload carried success=false.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return "session: authentication failed: " + e.Message
}

// NetworkError reports that the backend could not be reached.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("session: backend unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a 5xx response.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("session: server error %d: %s", e.Status, e.Message)
}

// RequestError reports any other non-2xx response, or a 2xx response whose
// payload reported success=false on a non-authentication endpoint.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("session: request failed with status %d: %s", e.Status, e.Message)
}

// Unauthorized reports whether err came from a 401 response.
func Unauthorized(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr) && authErr.Status == http.StatusUnauthorized
}

// Messages shown by the login surface.
const (
	MessageApplicantAccount = "Applicant accounts should use the Job Portal Login. Please use the link below."
	MessageSessionTimeout   = "Your session has expired due to inactivity. Please log in again."
)

// DisplayMessage maps err to the inline message a login form shows. A
// message supplied by the server always wins over the generic text.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var (
		authErr   *AuthenticationError
		netErr    *NetworkError
		serverErr *ServerError
		reqErr    *RequestError
	)
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return "Please enter both username and password"
	case errors.Is(err, ErrApplicantAccount):
		return MessageApplicantAccount
	case errors.Is(err, ErrNoRefreshToken):
		return "No refresh token available"
	case errors.Is(err, ErrNotAuthenticated):
		return "Please log in to continue"
	case errors.As(err, &authErr):
		if authErr.Message != "" {
			return authErr.Message
		}
		return "Invalid credentials"
	case errors.As(err, &netErr):
		return "Unable to connect to server"
	case errors.As(err, &serverErr):
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return "Server error occurred"
	case errors.As(err, &reqErr):
		if reqErr.Message != "" {
			return reqErr.Message
		}
		return fmt.Sprintf("Error: %d - %s", reqErr.Status, http.StatusText(reqErr.Status))
	default:
		return "Login failed. Please try again."
	}
}

// LogoutReasonMessage returns the notice for a stored logout reason, or ""
// when the reason has no dedicated notice.
func LogoutReasonMessage(reason string) string {
	if reason == ReasonSessionTimeout {
		return MessageSessionTimeout
	}
	return ""
}
