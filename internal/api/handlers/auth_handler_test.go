package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/api/handlers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
	"github.com/AlexSchroder3798/FlyFishing3/tests/mocks"
)

// stubIdentity is a minimal in-memory identity provider for handler tests
type stubIdentity struct {
	mu        sync.Mutex
	session   *entities.Session
	signInErr error
	setCalls  []entities.TokenPair
}

func (s *stubIdentity) SignUp(ctx context.Context, email, password, username string) (*entities.Session, error) {
	return s.SignInWithPassword(ctx, email, password)
}

func (s *stubIdentity) SignInWithPassword(ctx context.Context, email, password string) (*entities.Session, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &entities.Session{
		AccessToken: "at-" + email,
		UserID:      "user-1",
		Email:       email,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	return s.session, nil
}

func (s *stubIdentity) OAuthAuthorizeURL(provider string) (string, error) {
	if provider != "google" && provider != "apple" {
		return "", apperrors.NewValidationError("unsupported provider")
	}
	return "https://auth.example.com/authorize?provider=" + provider, nil
}

func (s *stubIdentity) GetSession(ctx context.Context) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

func (s *stubIdentity) SetSession(ctx context.Context, tokens entities.TokenPair) (*entities.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls = append(s.setCalls, tokens)
	s.session = &entities.Session{
		AccessToken: tokens.AccessToken,
		UserID:      "user-1",
		Email:       "angler@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	return s.session, nil
}

func (s *stubIdentity) ExchangeCode(ctx context.Context, code string) (*entities.Session, error) {
	if code == "bad" {
		return nil, apperrors.NewAuthError("invalid code", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &entities.Session{
		AccessToken: "at-from-" + code,
		UserID:      "user-1",
		Email:       "angler@example.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	return s.session, nil
}

func (s *stubIdentity) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

func (s *stubIdentity) Subscribe(ctx context.Context) (<-chan entities.AuthEvent, error) {
	ch := make(chan entities.AuthEvent)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newAuthHandler(identity *stubIdentity, flow string) (*handlers.AuthHandler, *mocks.MockUserRepository) {
	userRepo := new(mocks.MockUserRepository)
	users := services.NewUserService(userRepo)
	strategy := handlers.NewCallbackStrategy(flow)
	return handlers.NewAuthHandler(identity, users, strategy, 500*time.Millisecond), userRepo
}

func TestAuthHandler_SignIn_ProvisionsProfile(t *testing.T) {
	identity := &stubIdentity{}
	handler, userRepo := newAuthHandler(identity, "implicit")

	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).
		Return(&entities.User{ID: "user-1", Username: "angler"}, nil)

	body := `{"email":"angler@example.com","password":"secret"}`
	req := httptest.NewRequest("POST", "/api/auth/signin", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Session *entities.Session `json:"session"`
		User    *entities.User    `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "user-1", response.Session.UserID)
	require.NotNil(t, response.User)
	assert.Equal(t, "angler", response.User.Username)
}

func TestAuthHandler_SignIn_MissingCredentials(t *testing.T) {
	handler, _ := newAuthHandler(&stubIdentity{}, "implicit")

	req := httptest.NewRequest("POST", "/api/auth/signin", strings.NewReader(`{"email":"x@y.com"}`))
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_OAuthStart(t *testing.T) {
	handler, _ := newAuthHandler(&stubIdentity{}, "implicit")

	req := httptest.NewRequest("GET", "/api/auth/oauth/google", nil)
	req.SetPathValue("provider", "google")
	w := httptest.NewRecorder()
	handler.OAuthStart(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Contains(t, response["url"], "provider=google")
}

func TestAuthHandler_Callback_ImplicitInstallsTokens(t *testing.T) {
	identity := &stubIdentity{}
	handler, userRepo := newAuthHandler(identity, "implicit")

	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&entities.User{ID: "user-1", Username: "angler"}, nil)

	req := httptest.NewRequest("GET", "/auth/callback?access_token=frag-at&refresh_token=frag-rt", nil)
	w := httptest.NewRecorder()
	handler.Callback(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, identity.setCalls, 1)
	assert.Equal(t, "frag-rt", identity.setCalls[0].RefreshToken)
}

func TestAuthHandler_Callback_PKCEExchangesCode(t *testing.T) {
	identity := &stubIdentity{}
	handler, userRepo := newAuthHandler(identity, "pkce")

	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&entities.User{ID: "user-1", Username: "angler"}, nil)

	req := httptest.NewRequest("GET", "/auth/callback?code=good-code", nil)
	w := httptest.NewRecorder()
	handler.Callback(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The code exchange sets the session directly, no token install
	assert.Empty(t, identity.setCalls)

	var response struct {
		Session *entities.Session `json:"session"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "at-from-good-code", response.Session.AccessToken)
}

func TestAuthHandler_Callback_PKCEWithoutCode(t *testing.T) {
	handler, _ := newAuthHandler(&stubIdentity{}, "pkce")

	req := httptest.NewRequest("GET", "/auth/callback", nil)
	w := httptest.NewRecorder()
	handler.Callback(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetSession_SignedOut(t *testing.T) {
	handler, _ := newAuthHandler(&stubIdentity{}, "implicit")

	req := httptest.NewRequest("GET", "/api/auth/session", nil)
	w := httptest.NewRecorder()
	handler.GetSession(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
