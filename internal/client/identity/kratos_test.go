package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/integrasalud/affiliate-client/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginFlowJSON = `{
  "id": "flow-1",
  "type": "api",
  "state": "choose_method",
  "expires_at": "2030-01-01T00:00:00Z",
  "issued_at": "2026-01-01T00:00:00Z",
  "request_url": "http://kratos/self-service/login/api",
  "ui": {"action": "http://kratos/self-service/login?flow=flow-1", "method": "POST", "nodes": []}
}`

const nativeLoginJSON = `{
  "session_token": "ory_st_123",
  "session": {
    "id": "sess-1",
    "active": true,
    "identity": {
      "id": "ident-1",
      "schema_id": "default",
      "schema_url": "http://kratos/schemas/default",
      "traits": {"email": "ana@example.org"}
    }
  }
}`

func kratosServer(t *testing.T, submitStatus int, submitBody string, seen *map[string]any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/self-service/login/api", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(loginFlowJSON))
	})
	mux.HandleFunc("/self-service/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "flow-1", r.URL.Query().Get("flow"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(submitStatus)
		_, _ = w.Write([]byte(submitBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestKratosSignIn_Success(t *testing.T) {
	var seen map[string]any
	srv := kratosServer(t, http.StatusOK, nativeLoginJSON, &seen)

	id, err := NewKratosProvider(srv.URL, srv.Client()).SignIn(context.Background(), "ana@example.org", []byte("s3cret"))
	require.NoError(t, err)

	assert.Equal(t, "password", seen["method"])
	assert.Equal(t, "ana@example.org", seen["identifier"])
	assert.Equal(t, "s3cret", seen["password"])

	assert.Equal(t, "ident-1", id.UID)
	assert.Equal(t, "ory_st_123", id.Token)
	assert.Equal(t, "ana@example.org", id.Email)
}

func TestKratosSignIn_WrongPassword(t *testing.T) {
	srv := kratosServer(t, http.StatusBadRequest, loginFlowJSON, nil)

	_, err := NewKratosProvider(srv.URL, srv.Client()).SignIn(context.Background(), "ana@example.org", []byte("nope"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestKratosSignIn_ServerError(t *testing.T) {
	srv := kratosServer(t, http.StatusInternalServerError, `{"error":{"code":500,"message":"boom"}}`, nil)

	_, err := NewKratosProvider(srv.URL, srv.Client()).SignIn(context.Background(), "ana@example.org", []byte("x"))
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestKratosSignIn_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewKratosProvider(url, nil).SignIn(context.Background(), "ana@example.org", []byte("x"))
	require.ErrorIs(t, err, common.ErrUnavailable)
}
