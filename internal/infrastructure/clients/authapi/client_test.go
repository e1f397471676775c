package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		grant := r.URL.Query().Get("grant_type")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch grant {
		case "password":
			if body["password"] != "correct-horse" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
				return
			}
		case "refresh_token":
			if body["refresh_token"] != "refresh-1" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid Refresh Token"})
				return
			}
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"expires_in":    3600,
			"user":          map[string]string{"id": "user-1", "email": "angler@example.com"},
		})
	})

	return httptest.NewServer(mux)
}

func TestClient_SignInWithPassword(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClientWithOptions(server.URL, "anon", "http://localhost/auth/callback", server.Client())

	session, err := client.SignInWithPassword(context.Background(), "angler@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.True(t, session.Valid())

	t.Run("bad credentials surface an auth error", func(t *testing.T) {
		_, err := client.SignInWithPassword(context.Background(), "angler@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeAuth))
		assert.Contains(t, err.Error(), "Invalid login credentials")
	})
}

func TestClient_GetSession_SignedOut(t *testing.T) {
	client := NewClientWithOptions("http://localhost:9999", "anon", "", nil)

	session, err := client.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestClient_SetSession_ForcesRefresh(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClientWithOptions(server.URL, "anon", "", server.Client())

	session, err := client.SetSession(context.Background(), entities.TokenPair{
		AccessToken:  "stale-access",
		RefreshToken: "refresh-1",
	})
	require.NoError(t, err)
	// The refresh grant replaces the fragment-delivered access token.
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "user-1", session.UserID)

	t.Run("missing refresh token is rejected", func(t *testing.T) {
		_, err := client.SetSession(context.Background(), entities.TokenPair{AccessToken: "only-access"})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeAuth))
	})
}

func TestClient_Subscribe_ReceivesSignInEvent(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	client := NewClientWithOptions(server.URL, "anon", "", server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := client.Subscribe(ctx)
	require.NoError(t, err)

	_, err = client.SignInWithPassword(context.Background(), "angler@example.com", "correct-horse")
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, entities.AuthEventSignedIn, event.Type)
		require.NotNil(t, event.Session)
		assert.Equal(t, "user-1", event.Session.UserID)
	case <-time.After(time.Second):
		t.Fatal("expected a SIGNED_IN event")
	}
}

func TestClient_Subscribe_UnsubscribesOnCancel(t *testing.T) {
	client := NewClientWithOptions("http://localhost:9999", "anon", "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := client.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	// The channel closes once the subscription is torn down.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("expected subscription channel to close")
		}
	}
}

func TestClient_OAuthAuthorizeURL(t *testing.T) {
	client := NewClientWithOptions("http://auth.local", "anon", "http://app.local/auth/callback", nil)

	u, err := client.OAuthAuthorizeURL("google")
	require.NoError(t, err)
	assert.Contains(t, u, "http://auth.local/authorize?")
	assert.Contains(t, u, "provider=google")

	_, err = client.OAuthAuthorizeURL("myspace")
	require.Error(t, err)
}
