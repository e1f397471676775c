package entities

import "time"

// FlowTrend indicates the direction a gauge reading is moving
type FlowTrend string

const (
	TrendRising  FlowTrend = "rising"
	TrendFalling FlowTrend = "falling"
	TrendSteady  FlowTrend = "steady"
)

// StreamFlow is a gauge observation for a river or stream, in cubic feet
// per second
type StreamFlow struct {
	LocationID  string    `json:"locationId"`
	CurrentFlow float64   `json:"currentFlow"`
	AverageFlow float64   `json:"averageFlow"`
	Trend       FlowTrend `json:"trend"`
	Status      FlowLevel `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SolunarPeriod is a window of predicted elevated fish activity
type SolunarPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SolunarForecast holds the solunar table for one day; major periods
// bracket the lunar transits, minor periods bracket moonrise and moonset
type SolunarForecast struct {
	Date         time.Time       `json:"date"`
	MoonPhase    string          `json:"moonPhase"`
	MoonAge      float64         `json:"moonAge"`
	MajorPeriods []SolunarPeriod `json:"majorPeriods"`
	MinorPeriods []SolunarPeriod `json:"minorPeriods"`
	DayRating    int             `json:"dayRating"`
}
