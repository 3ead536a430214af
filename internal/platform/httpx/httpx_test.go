package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{Errorf(ErrUnauthorized, "Invalid username or password"), http.StatusUnauthorized, "Invalid username or password"},
		{fmt.Errorf("load: %w", Errorf(ErrValidation, "Username is required")), http.StatusBadRequest, "Username is required"},
		{ErrForbidden, http.StatusForbidden, "Forbidden"},
		{ErrNotFound, http.StatusNotFound, "Not Found"},
		{errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code)
		env := decode(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, tc.message, env.Message)
	}
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, "done", map[string]string{"token": "abc"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, map[string]any{"token": "abc"}, env.Data)
}
