package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ExperienceLevel rates an angler's experience
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// User is the profile extension of an authenticated identity; the ID is
// shared with the identity provider and the row is created at first sign-in
type User struct {
	ID              string          `json:"id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	Avatar          string          `json:"avatar,omitempty"`
	Location        string          `json:"location,omitempty"`
	Experience      ExperienceLevel `json:"experience"`
	TotalCatches    int             `json:"totalCatches"`
	FavoriteSpecies []string        `json:"favoriteSpecies"`
	JoinDate        time.Time       `json:"joinDate"`
}

// Validate checks the profile fields
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Email, is.Email),
		validation.Field(&u.Experience, validation.In(
			ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert,
		)),
		validation.Field(&u.TotalCatches, validation.Min(0)),
	)
}
