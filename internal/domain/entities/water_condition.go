package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WaterClarity describes how stained the water is
type WaterClarity string

const (
	ClarityClear           WaterClarity = "clear"
	ClaritySlightlyStained WaterClarity = "slightly_stained"
	ClarityStained         WaterClarity = "stained"
	ClarityMuddy           WaterClarity = "muddy"
)

// FlowLevel describes the current flow regime
type FlowLevel string

const (
	FlowLow    FlowLevel = "low"
	FlowNormal FlowLevel = "normal"
	FlowHigh   FlowLevel = "high"
	FlowFlood  FlowLevel = "flood"
)

// WaterCondition is an append-only observation for a location; the
// "current" condition is the most recent by LastUpdated
type WaterCondition struct {
	ID          string       `json:"id,omitempty"`
	LocationID  string       `json:"locationId"`
	Temperature float64      `json:"temperature"`
	Clarity     WaterClarity `json:"clarity"`
	Flow        FlowLevel    `json:"flow"`
	Level       float64      `json:"level"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// Validate checks the observation fields
func (w WaterCondition) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.LocationID, validation.Required),
		validation.Field(&w.Clarity, validation.Required, validation.In(
			ClarityClear, ClaritySlightlyStained, ClarityStained, ClarityMuddy,
		)),
		validation.Field(&w.Flow, validation.Required, validation.In(
			FlowLow, FlowNormal, FlowHigh, FlowFlood,
		)),
	)
}
