package entities

import "time"

// Session is the authenticated state held against the identity provider
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
}

// Valid reports whether the session carries a usable access token
func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && s.UserID != ""
}

// TokenPair carries tokens delivered through an OAuth redirect
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthEventType identifies a push notification from the identity provider
type AuthEventType string

const (
	AuthEventSignedIn       AuthEventType = "SIGNED_IN"
	AuthEventSignedOut      AuthEventType = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
)

// AuthEvent is emitted on the identity provider's state-change stream
type AuthEvent struct {
	Type    AuthEventType
	Session *Session
}
