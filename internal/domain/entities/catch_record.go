package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WeatherSnapshot is the weather embedded in a catch record at log time
type WeatherSnapshot struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection string  `json:"windDirection"`
	CloudCover    float64 `json:"cloudCover"`
	Condition     string  `json:"condition"`
}

// CatchRecord is a user-owned log entry for a single catch
type CatchRecord struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	LocationID     string          `json:"locationId"`
	Species        string          `json:"species"`
	Length         *float64        `json:"length,omitempty"`
	Weight         *float64        `json:"weight,omitempty"`
	Photos         []string        `json:"photos"`
	FlyPattern     string          `json:"flyPattern"`
	Weather        WeatherSnapshot `json:"weather"`
	WaterCondition WaterCondition  `json:"waterCondition"`
	Notes          string          `json:"notes"`
	IsReleased     bool            `json:"isReleased"`
	Timestamp      time.Time       `json:"timestamp"`
	Coordinates    *Coordinates    `json:"coordinates,omitempty"`
}

// Validate checks the catch record fields
func (c CatchRecord) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserID, validation.Required),
		validation.Field(&c.LocationID, validation.Required),
		validation.Field(&c.Species, validation.Required),
		validation.Field(&c.Timestamp, validation.Required),
	)
}
