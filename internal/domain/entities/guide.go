package entities

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Guide is a catalog entry for a professional fishing guide
type Guide struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	PriceRange  string   `json:"priceRange"`
	Contact     string   `json:"contact"`
	Verified    bool     `json:"verified"`
	Bio         string   `json:"bio"`
	Photos      []string `json:"photos"`
}

// Validate checks the guide fields
func (g Guide) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required),
		validation.Field(&g.Location, validation.Required),
		validation.Field(&g.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&g.Contact, is.Email),
	)
}
