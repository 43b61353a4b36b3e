package storemon

import (
	"time"
)

// Observation is one sampled status reading for a store.
type Observation struct {
	// StoreID is the identifier of the observed store.
	StoreID string `json:"store_id"`

	// Time is the instant the status was sampled.
	Time time.Time `json:"timestamp_utc"`

	Status Status `json:"status"`
}

// HoursEntry is one open interval on one weekday of a store's business hours.
//
// Weekday follows the Monday=0 ... Sunday=6 convention, consistently with the
// seed data and the business-hours oracle.
type HoursEntry struct {
	StoreID string `json:"store_id"`

	Weekday int `json:"day"`

	// Start and End are local times of day in HH:MM:SS format.
	// Start is never after End; overnight intervals are not supported.
	Start string `json:"start_time_local"`
	End   string `json:"end_time_local"`
}
