package services

import (
	"context"
	"sync"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// ResolveState tracks where a session resolution currently stands
type ResolveState string

const (
	StateIdle     ResolveState = "idle"
	StateProbing  ResolveState = "probing"
	StateResolved ResolveState = "resolved"
	StateFailed   ResolveState = "failed"
	StateTimedOut ResolveState = "timed_out"
)

// DefaultResolveTimeout bounds how long a resolution may stay in flight
const DefaultResolveTimeout = 8 * time.Second

// SessionCoordinator races a session pull against the identity provider's
// push stream to answer "who is signed in" exactly once per resolution.
// The pull covers the common warm-start case; the push covers sign-ins
// that complete while the probe is still in flight. Whichever produces an
// authoritative answer first wins, and every later signal is inert.
type SessionCoordinator struct {
	provider providers.IdentityProvider
	timeout  time.Duration

	mu    sync.Mutex
	state ResolveState
}

// NewSessionCoordinator creates a coordinator; a non-positive timeout
// falls back to the default
func NewSessionCoordinator(provider providers.IdentityProvider, timeout time.Duration) *SessionCoordinator {
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	return &SessionCoordinator{
		provider: provider,
		timeout:  timeout,
		state:    StateIdle,
	}
}

// State reports the outcome of the most recent resolution
func (c *SessionCoordinator) State() ResolveState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

type resolveResult struct {
	session *entities.Session
	state   ResolveState
	err     error
}

// Resolve determines the current session. When the caller arrived from an
// OAuth redirect carrying fragment tokens, those are installed on the
// provider first so the race starts from the fresh session.
//
// A probe that finds no session is not terminal: a sign-in may still be
// completing in another flow, so the race keeps waiting for a pushed
// event until the timer fires.
func (c *SessionCoordinator) Resolve(ctx context.Context, tokens *entities.TokenPair) (*entities.Session, error) {
	c.setState(StateProbing)

	if tokens != nil {
		if _, err := c.provider.SetSession(ctx, *tokens); err != nil {
			c.setState(StateFailed)
			return nil, err
		}
	}

	// Subscribe before probing so a sign-in landing between the two
	// cannot slip past both.
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := c.provider.Subscribe(subCtx)
	if err != nil {
		c.setState(StateFailed)
		return nil, err
	}

	results := make(chan resolveResult, 1)
	var once sync.Once
	settle := func(r resolveResult) {
		once.Do(func() { results <- r })
	}

	go c.probe(subCtx, settle)
	go c.watchEvents(events, settle)

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case r := <-results:
		c.setState(r.state)
		return r.session, r.err
	case <-timer.C:
		c.setState(StateTimedOut)
		return nil, apperrors.NewTimeoutError("session resolution timed out")
	case <-ctx.Done():
		c.setState(StateFailed)
		return nil, apperrors.NewAuthError("session resolution canceled", ctx.Err())
	}
}

// probe pulls the persisted session. Finding one settles the race; finding
// none leaves the race open for the push stream.
func (c *SessionCoordinator) probe(ctx context.Context, settle func(resolveResult)) {
	session, err := c.provider.GetSession(ctx)
	if err != nil {
		settle(resolveResult{state: StateFailed, err: err})
		return
	}
	if session != nil && session.Valid() {
		settle(resolveResult{session: session, state: StateResolved})
		return
	}
	observability.LoggerFromContext(ctx).Debug().Msg("session probe found no session, waiting for auth events")
}

// watchEvents settles the race on the first authoritative pushed signal
func (c *SessionCoordinator) watchEvents(events <-chan entities.AuthEvent, settle func(resolveResult)) {
	for event := range events {
		switch event.Type {
		case entities.AuthEventSignedIn, entities.AuthEventTokenRefreshed:
			if event.Session != nil {
				settle(resolveResult{session: event.Session, state: StateResolved})
				return
			}
		case entities.AuthEventSignedOut:
			settle(resolveResult{state: StateFailed, err: apperrors.NewAuthError("signed out", nil)})
			return
		}
	}
}

func (c *SessionCoordinator) setState(s ResolveState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
