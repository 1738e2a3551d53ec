package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "trackr/internal/adapters/http"
	"trackr/internal/domain"
	apperrors "trackr/internal/errors"
	"trackr/internal/mocks"
	"trackr/internal/services/auth"
	"trackr/internal/testutil"
)

func newClient() *auth.Client {
	return auth.NewClient(httpadapter.NewAdapter(5*time.Second, testutil.Logger()), testutil.Logger())
}

func TestClient_CreateAnonymousKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Contains(t, payload["query"], "createAnonymousEntity")

		_, _ = io.WriteString(w, `{"data":{"createAnonymousEntity":{"apiKey":{"name":"`+testutil.APIKey("n")+`"}}}}`)
	}))
	defer server.Close()

	key, err := newClient().CreateAnonymousKey(context.Background(), server.URL+"/")

	require.NoError(t, err)
	assert.Equal(t, testutil.APIKey("n"), key.Value())
}

func TestClient_CreateAnonymousKey_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "graphql error",
			status:  http.StatusOK,
			body:    `{"errors":[{"message":"anonymous logins disabled"}]}`,
			wantErr: "anonymous logins disabled",
		},
		{
			name:    "missing key",
			status:  http.StatusOK,
			body:    `{"data":{"createAnonymousEntity":null}}`,
			wantErr: "no key was returned",
		},
		{
			name:    "bad request",
			status:  http.StatusBadRequest,
			body:    `bad`,
			wantErr: "HTTP 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			key, err := newClient().CreateAnonymousKey(context.Background(), server.URL)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, key.IsZero())
		})
	}
}

func TestClient_Viewer(t *testing.T) {
	key := domain.NewSecret(testutil.APIKey("v"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "api", user)
		assert.Equal(t, key.Value(), pass)

		_, _ = io.WriteString(w, `{"data":{"viewer":{"entity":"team-a","username":"alice"}}}`)
	}))
	defer server.Close()

	identity, err := newClient().Viewer(context.Background(), server.URL, key)

	require.NoError(t, err)
	assert.Equal(t, domain.Identity{Entity: "team-a", Username: "alice"}, identity)
	assert.Equal(t, "team-a", identity.Name())
}

func TestClient_Viewer_Unrecognized(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "null viewer", status: http.StatusOK, body: `{"data":{"viewer":null}}`},
		{name: "unauthorized status", status: http.StatusUnauthorized, body: `denied`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			_, err := newClient().Viewer(context.Background(), server.URL, domain.NewSecret(testutil.APIKey("v")))

			assert.True(t, apperrors.IsUnauthorized(err))
		})
	}
}

func TestClient_Heartbeat(t *testing.T) {
	utilization := 42.5
	beat := domain.Heartbeat{
		SessionID:   "session-1",
		Utilization: &utilization,
		SentAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/agent/heartbeat", r.URL.Path)

		var got domain.Heartbeat
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "session-1", got.SessionID)
		if assert.NotNil(t, got.Utilization) {
			assert.InDelta(t, 42.5, *got.Utilization, 0.001)
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := newClient().Heartbeat(context.Background(), server.URL, domain.NewSecret(testutil.APIKey("h")), beat)

	assert.NoError(t, err)
}

func TestClient_Heartbeat_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	err := newClient().Heartbeat(context.Background(), server.URL, domain.NewSecret(testutil.APIKey("h")), domain.Heartbeat{})

	assert.True(t, apperrors.IsNotFound(err))
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	mockHTTP := mocks.NewMockHTTPAdapter(t)
	mockHTTP.EXPECT().Post(mock.Anything, "https://api.example.com/graphql", mock.Anything).
		Return(nil, errors.New("connection refused"))

	client := auth.NewClient(mockHTTP, testutil.Logger())
	_, err := client.CreateAnonymousKey(context.Background(), "api.example.com")

	assert.True(t, apperrors.IsNetwork(err))
	assert.Contains(t, err.Error(), "connection refused")
}
