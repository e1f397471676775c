package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FishingReport is a user-owned community report for a location
type FishingReport struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	LocationID  string    `json:"locationId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Conditions  string    `json:"conditions"`
	Success     int       `json:"success"`
	Timestamp   time.Time `json:"timestamp"`
	Photos      []string  `json:"photos"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Comment belongs to a report; Username is resolved from the commenting
// user's profile at read time and never persisted
type Comment struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"reportId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks the report fields; success is a 1-5 scale
func (r FishingReport) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.LocationID, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Success, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Timestamp, validation.Required),
	)
}

// Validate checks the comment fields
func (c Comment) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ReportID, validation.Required),
		validation.Field(&c.UserID, validation.Required),
		validation.Field(&c.Content, validation.Required),
	)
}
