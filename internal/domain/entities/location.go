package entities

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WaterType classifies a fishing location by water body
type WaterType string

const (
	WaterTypeRiver  WaterType = "river"
	WaterTypeLake   WaterType = "lake"
	WaterTypeStream WaterType = "stream"
	WaterTypePond   WaterType = "pond"
)

// Difficulty rates how demanding a location is to fish
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AccessType describes how anglers may access a location
type AccessType string

const (
	AccessPublic  AccessType = "public"
	AccessPrivate AccessType = "private"
	AccessGuided  AccessType = "guided"
)

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FishingLocation is a globally shared catalog entry for a fishable water
type FishingLocation struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Type        WaterType   `json:"type"`
	Difficulty  Difficulty  `json:"difficulty"`
	Species     []string    `json:"species"`
	Access      AccessType  `json:"access"`
	Regulations string      `json:"regulations"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"reviewCount"`
}

// Validate checks the location fields against the catalog constraints
func (l FishingLocation) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.Type, validation.Required, validation.In(
			WaterTypeRiver, WaterTypeLake, WaterTypeStream, WaterTypePond,
		)),
		validation.Field(&l.Difficulty, validation.Required, validation.In(
			DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced,
		)),
		validation.Field(&l.Access, validation.Required, validation.In(
			AccessPublic, AccessPrivate, AccessGuided,
		)),
		validation.Field(&l.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&l.ReviewCount, validation.Min(0)),
	)
}
