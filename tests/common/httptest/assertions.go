//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DecodeJSON checks the status and decodes the body into T.
func DecodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder, status int) T {
	t.Helper()

	require.Equal(t, status, w.Code, "response: %s", w.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "response: %s", w.Body.String())
	return out
}

// AssertError checks the status and the public error message. An empty msg
// only checks the envelope.
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()

	assert.Equal(t, status, w.Code, "response: %s", w.Body.String())

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response: %s", w.Body.String()) {
		return
	}
	if msg != "" {
		assert.Equal(t, msg, body.Error.Message)
	}
}
