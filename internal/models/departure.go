// Package models defines the departure records shared by the crawler, normalizer and schedule.
package models

// Field names of the departures board CSV header.
const (
	FieldTimeStamp     = "TimeStamp"
	FieldOrigin        = "Origin"
	FieldTrip          = "Trip"
	FieldDestination   = "Destination"
	FieldScheduledTime = "ScheduledTime"
	FieldLateness      = "Lateness"
	FieldTrack         = "Track"
	FieldStatus        = "Status"
)

// RequiredFields lists the columns every departure row must carry.
var RequiredFields = []string{
	FieldScheduledTime,
	FieldLateness,
	FieldDestination,
	FieldTrip,
	FieldTrack,
	FieldStatus,
	FieldOrigin,
}

// RawRecord is one departure row keyed by header name, exactly as read from the source.
// Keys and values may still carry surrounding whitespace.
type RawRecord map[string]string
