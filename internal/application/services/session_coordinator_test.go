package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// fakeIdentityProvider drives the coordinator from a test: the probe
// behavior is a function and pushed events go through Emit
type fakeIdentityProvider struct {
	getSession func(ctx context.Context) (*entities.Session, error)
	setSession func(tokens entities.TokenPair) (*entities.Session, error)

	mu          sync.Mutex
	subscribers []chan entities.AuthEvent
	setCalls    []entities.TokenPair
}

func (f *fakeIdentityProvider) SignUp(ctx context.Context, email, password, username string) (*entities.Session, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entities.Session, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeIdentityProvider) OAuthAuthorizeURL(provider string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeIdentityProvider) GetSession(ctx context.Context) (*entities.Session, error) {
	if f.getSession != nil {
		return f.getSession(ctx)
	}
	return nil, nil
}

func (f *fakeIdentityProvider) SetSession(ctx context.Context, tokens entities.TokenPair) (*entities.Session, error) {
	f.mu.Lock()
	f.setCalls = append(f.setCalls, tokens)
	f.mu.Unlock()
	if f.setSession != nil {
		return f.setSession(tokens)
	}
	return &entities.Session{AccessToken: tokens.AccessToken, UserID: "user-1"}, nil
}

func (f *fakeIdentityProvider) ExchangeCode(ctx context.Context, code string) (*entities.Session, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeIdentityProvider) SignOut(ctx context.Context) error { return nil }

func (f *fakeIdentityProvider) Subscribe(ctx context.Context) (<-chan entities.AuthEvent, error) {
	ch := make(chan entities.AuthEvent, 4)
	f.mu.Lock()
	f.subscribers = append(f.subscribers, ch)
	f.mu.Unlock()
	return ch, nil
}

func (f *fakeIdentityProvider) Emit(event entities.AuthEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subscribers {
		ch <- event
	}
}

func validSession(token string) *entities.Session {
	return &entities.Session{
		AccessToken:  token,
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		UserID:       "user-1",
		Email:        "angler@example.com",
	}
}

func TestSessionCoordinator_PullWins(t *testing.T) {
	provider := &fakeIdentityProvider{
		getSession: func(ctx context.Context) (*entities.Session, error) {
			return validSession("pulled"), nil
		},
	}
	coordinator := services.NewSessionCoordinator(provider, time.Second)

	session, err := coordinator.Resolve(context.Background(), nil)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "pulled", session.AccessToken)
	assert.Equal(t, services.StateResolved, coordinator.State())
}

func TestSessionCoordinator_PushWinsWhenProbeFindsNothing(t *testing.T) {
	provider := &fakeIdentityProvider{
		getSession: func(ctx context.Context) (*entities.Session, error) {
			return nil, nil // signed out at probe time
		},
	}
	coordinator := services.NewSessionCoordinator(provider, 2*time.Second)

	go func() {
		time.Sleep(50 * time.Millisecond)
		provider.Emit(entities.AuthEvent{
			Type:    entities.AuthEventSignedIn,
			Session: validSession("pushed"),
		})
	}()

	session, err := coordinator.Resolve(context.Background(), nil)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "pushed", session.AccessToken)
	assert.Equal(t, services.StateResolved, coordinator.State())
}

func TestSessionCoordinator_TimeoutWhenNothingArrives(t *testing.T) {
	provider := &fakeIdentityProvider{
		getSession: func(ctx context.Context) (*entities.Session, error) {
			return nil, nil
		},
	}
	coordinator := services.NewSessionCoordinator(provider, 50*time.Millisecond)

	session, err := coordinator.Resolve(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, apperrors.IsTimeout(err))
	assert.Equal(t, services.StateTimedOut, coordinator.State())
}

func TestSessionCoordinator_SignedOutEventFails(t *testing.T) {
	provider := &fakeIdentityProvider{
		getSession: func(ctx context.Context) (*entities.Session, error) {
			// Hold the probe open so the push decides the race
			time.Sleep(200 * time.Millisecond)
			return nil, nil
		},
	}
	coordinator := services.NewSessionCoordinator(provider, 2*time.Second)

	go func() {
		time.Sleep(20 * time.Millisecond)
		provider.Emit(entities.AuthEvent{Type: entities.AuthEventSignedOut})
	}()

	session, err := coordinator.Resolve(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeAuth))
	assert.Equal(t, services.StateFailed, coordinator.State())
}

func TestSessionCoordinator_FirstSignalWinsLateSignalsInert(t *testing.T) {
	provider := &fakeIdentityProvider{
		getSession: func(ctx context.Context) (*entities.Session, error) {
			return validSession("pulled"), nil
		},
	}
	coordinator := services.NewSessionCoordinator(provider, time.Second)

	session, err := coordinator.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "pulled", session.AccessToken)

	// Late pushes after the terminal transition must not panic or change
	// the outcome
	provider.Emit(entities.AuthEvent{Type: entities.AuthEventSignedOut})
	provider.Emit(entities.AuthEvent{
		Type:    entities.AuthEventSignedIn,
		Session: validSession("late"),
	})

	assert.Equal(t, services.StateResolved, coordinator.State())
}

func TestSessionCoordinator_FragmentTokensInstalledBeforeRace(t *testing.T) {
	installed := validSession("installed")
	provider := &fakeIdentityProvider{
		setSession: func(tokens entities.TokenPair) (*entities.Session, error) {
			return installed, nil
		},
	}
	provider.getSession = func(ctx context.Context) (*entities.Session, error) {
		provider.mu.Lock()
		defer provider.mu.Unlock()
		if len(provider.setCalls) == 0 {
			return nil, nil
		}
		return installed, nil
	}
	coordinator := services.NewSessionCoordinator(provider, time.Second)

	session, err := coordinator.Resolve(context.Background(), &entities.TokenPair{
		AccessToken:  "frag-access",
		RefreshToken: "frag-refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, "installed", session.AccessToken)
	require.Len(t, provider.setCalls, 1)
	assert.Equal(t, "frag-refresh", provider.setCalls[0].RefreshToken)
}

func TestSessionCoordinator_SetSessionFailureIsTerminal(t *testing.T) {
	provider := &fakeIdentityProvider{
		setSession: func(tokens entities.TokenPair) (*entities.Session, error) {
			return nil, apperrors.NewAuthError("refresh token rejected", nil)
		},
	}
	coordinator := services.NewSessionCoordinator(provider, time.Second)

	session, err := coordinator.Resolve(context.Background(), &entities.TokenPair{
		AccessToken:  "bad",
		RefreshToken: "bad",
	})

	require.Error(t, err)
	assert.Nil(t, session)
	assert.Equal(t, services.StateFailed, coordinator.State())
}
