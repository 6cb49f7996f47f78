package models

import "time"

// Train is the normalized view of a departure row.
type Train struct {
	Expected time.Time `json:"-"`

	// Extra holds any trimmed columns beyond the known ones.
	Extra map[string]string `json:"extra,omitempty"`

	ScheduledTime        string `json:"scheduledTime"`
	Lateness             string `json:"lateness"`
	Destination          string `json:"destination"`
	Trip                 string `json:"trip"`
	Track                string `json:"track"`
	Status               string `json:"status"`
	Origin               string `json:"origin"`
	ExpectedTime         string `json:"expectedTime"`
	ExpectedTimeReadable string `json:"expectedTimeReadable"`
}

// Field returns the trimmed value of a column by header name.
func (t Train) Field(name string) (string, bool) {
	switch name {
	case FieldScheduledTime:
		return t.ScheduledTime, true
	case FieldLateness:
		return t.Lateness, true
	case FieldDestination:
		return t.Destination, true
	case FieldTrip:
		return t.Trip, true
	case FieldTrack:
		return t.Track, true
	case FieldStatus:
		return t.Status, true
	case FieldOrigin:
		return t.Origin, true
	}

	v, ok := t.Extra[name]

	return v, ok
}
