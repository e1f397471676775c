package providers

import (
	"context"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
)

// IdentityProvider defines the contract against the external auth service.
// It exposes both a pull-style session probe and a push-style state-change
// stream; the session coordinator races the two.
type IdentityProvider interface {
	// SignUp registers a new identity with email and password
	SignUp(ctx context.Context, email, password, username string) (*entities.Session, error)

	// SignInWithPassword authenticates with email and password
	SignInWithPassword(ctx context.Context, email, password string) (*entities.Session, error)

	// OAuthAuthorizeURL returns the redirect URL to open for a third-party
	// provider ("google", "apple")
	OAuthAuthorizeURL(provider string) (string, error)

	// GetSession returns the current session, or nil when signed out
	GetSession(ctx context.Context) (*entities.Session, error)

	// SetSession installs a session from redirect-delivered tokens, forcing
	// a refresh so the provider state is authoritative
	SetSession(ctx context.Context, tokens entities.TokenPair) (*entities.Session, error)

	// ExchangeCode trades a PKCE authorization code for a session
	ExchangeCode(ctx context.Context, code string) (*entities.Session, error)

	// SignOut invalidates the current session
	SignOut(ctx context.Context) error

	// Subscribe returns the auth state-change stream. Cancelling the context
	// unsubscribes and closes the channel.
	Subscribe(ctx context.Context) (<-chan entities.AuthEvent, error)
}
