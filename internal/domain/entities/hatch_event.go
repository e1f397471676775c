package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HatchEvent is a catalog entry for an insect hatch window in a region
type HatchEvent struct {
	ID               string    `json:"id"`
	Insect           string    `json:"insect"`
	Region           string    `json:"region"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	PeakTime         string    `json:"peakTime"`
	RecommendedFlies []string  `json:"recommendedFlies"`
	Notes            string    `json:"notes"`
}

// ActiveAt reports whether the hatch window covers the reference time
func (h HatchEvent) ActiveAt(t time.Time) bool {
	return !t.Before(h.StartDate) && !t.After(h.EndDate)
}

// Validate checks the hatch fields, including startDate <= endDate
func (h HatchEvent) Validate() error {
	err := validation.ValidateStruct(&h,
		validation.Field(&h.Insect, validation.Required),
		validation.Field(&h.Region, validation.Required),
		validation.Field(&h.StartDate, validation.Required),
		validation.Field(&h.EndDate, validation.Required),
	)
	if err != nil {
		return err
	}
	if h.EndDate.Before(h.StartDate) {
		return validation.NewError("validation_hatch_window", "endDate must not precede startDate")
	}
	return nil
}
