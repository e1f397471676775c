package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
)

// CallbackStrategy turns an OAuth redirect request into a session. The
// strategy is chosen once at startup from config, not per request.
type CallbackStrategy interface {
	// Complete extracts whatever the redirect delivered and resolves it
	// into a session
	Complete(r *http.Request, coordinator *services.SessionCoordinator, identity providers.IdentityProvider) (*entities.Session, error)
}

// ImplicitStrategy handles the token-in-redirect flow. The client-side
// shim forwards the fragment tokens as query parameters; the coordinator
// installs them before racing pull against push.
type ImplicitStrategy struct{}

func (ImplicitStrategy) Complete(r *http.Request, coordinator *services.SessionCoordinator, _ providers.IdentityProvider) (*entities.Session, error) {
	var tokens *entities.TokenPair
	query := r.URL.Query()
	if access := query.Get("access_token"); access != "" {
		tokens = &entities.TokenPair{
			AccessToken:  access,
			RefreshToken: query.Get("refresh_token"),
		}
	}
	return coordinator.Resolve(r.Context(), tokens)
}

// PKCEStrategy handles the authorization-code flow: the code is traded
// for a session directly, no race needed.
type PKCEStrategy struct{}

func (PKCEStrategy) Complete(r *http.Request, _ *services.SessionCoordinator, identity providers.IdentityProvider) (*entities.Session, error) {
	code := r.URL.Query().Get("code")
	if code == "" {
		return nil, nil
	}
	return identity.ExchangeCode(r.Context(), code)
}

// NewCallbackStrategy selects the redirect strategy from the configured
// flow name; anything other than "pkce" gets the implicit flow.
func NewCallbackStrategy(flow string) CallbackStrategy {
	if flow == "pkce" {
		return PKCEStrategy{}
	}
	return ImplicitStrategy{}
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	identity       providers.IdentityProvider
	users          *services.UserService
	strategy       CallbackStrategy
	resolveTimeout time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identity providers.IdentityProvider, users *services.UserService, strategy CallbackStrategy, resolveTimeout time.Duration) *AuthHandler {
	return &AuthHandler{
		identity:       identity,
		users:          users,
		strategy:       strategy,
		resolveTimeout: resolveTimeout,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

// SignUp handles POST /api/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := h.identity.SignUp(r.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.respondWithSession(w, r, session, http.StatusCreated)
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	session, err := h.identity.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.respondWithSession(w, r, session, http.StatusOK)
}

// OAuthStart handles GET /api/auth/oauth/{provider}
func (h *AuthHandler) OAuthStart(w http.ResponseWriter, r *http.Request) {
	provider := r.PathValue("provider")
	if provider == "" {
		respondWithError(w, http.StatusBadRequest, "provider is required")
		return
	}

	url, err := h.identity.OAuthAuthorizeURL(provider)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"url": url})
}

// Callback handles GET /auth/callback. Each redirect gets its own
// coordinator so concurrent callbacks race independently.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	coordinator := services.NewSessionCoordinator(h.identity, h.resolveTimeout)

	session, err := h.strategy.Complete(r, coordinator, h.identity)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if session == nil {
		respondWithError(w, http.StatusUnauthorized, "no session established")
		return
	}

	h.respondWithSession(w, r, session, http.StatusOK)
}

// GetSession handles GET /api/auth/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.identity.GetSession(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if session == nil {
		respondWithError(w, http.StatusUnauthorized, "signed out")
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

// SignOut handles POST /api/auth/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.SignOut(r.Context()); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// respondWithSession provisions the profile for the session and returns
// both. Profile provisioning is best-effort on this path; the event
// stream will retry it.
func (h *AuthHandler) respondWithSession(w http.ResponseWriter, r *http.Request, session *entities.Session, status int) {
	payload := map[string]interface{}{"session": session}

	if h.users != nil && session.Valid() {
		profile, err := h.users.EnsureProfile(r.Context(), session)
		if err != nil {
			observability.LoggerFromContext(r.Context()).Warn().
				Err(err).Str("user_id", session.UserID).Msg("failed to provision profile")
		} else {
			payload["user"] = profile
		}
	}

	respondWithJSON(w, status, payload)
}
