package services

import (
	"context"
	"strings"
	"time"

	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/entities"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// UserService handles business logic for angler profiles. Profiles extend
// identities owned by the auth provider; the first sign-in creates the row.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetByID retrieves a profile; an unknown id yields (nil, nil)
func (s *UserService) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update validates and persists mutable profile fields
func (s *UserService) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	if err := user.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	return s.repo.Update(ctx, user)
}

// EnsureProfile returns the profile for an authenticated session, creating
// it on first sign-in. The profile id is the identity provider's user id.
func (s *UserService) EnsureProfile(ctx context.Context, session *entities.Session) (*entities.User, error) {
	if !session.Valid() {
		return nil, apperrors.NewAuthError("session required", nil)
	}

	user, err := s.repo.GetByID(ctx, session.UserID)
	if err == nil {
		return user, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	profile := &entities.User{
		ID:              session.UserID,
		Username:        usernameFromEmail(session.Email),
		Email:           session.Email,
		Experience:      entities.ExperienceBeginner,
		FavoriteSpecies: []string{},
		JoinDate:        time.Now(),
	}
	if err := profile.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	created, err := s.repo.Create(ctx, profile)
	if err != nil {
		// Another request may have created the row between the probe and
		// the insert; re-read before giving up
		if existing, readErr := s.repo.GetByID(ctx, session.UserID); readErr == nil {
			return existing, nil
		}
		return nil, err
	}

	return created, nil
}

// SyncWithAuthEvents consumes the identity provider's state-change stream
// and provisions profiles as sign-ins arrive. Blocks until ctx is done.
func (s *UserService) SyncWithAuthEvents(ctx context.Context, identity providers.IdentityProvider) error {
	events, err := identity.Subscribe(ctx)
	if err != nil {
		return err
	}

	logger := observability.LoggerFromContext(ctx)
	for event := range events {
		if event.Type != entities.AuthEventSignedIn || event.Session == nil {
			continue
		}
		if _, err := s.EnsureProfile(ctx, event.Session); err != nil {
			logger.Warn().Err(err).Str("user_id", event.Session.UserID).Msg("failed to provision profile on sign-in")
		}
	}

	return nil
}

// usernameFromEmail derives a starter username from the email local part
func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
