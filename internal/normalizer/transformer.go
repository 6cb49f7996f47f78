package normalizer

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"mbtatimes/internal/models"
)

// Parse errors.
var (
	ErrInvalidScheduledTime = errors.New("invalid scheduled time")
	ErrInvalidLateness      = errors.New("invalid lateness")
)

// ReadableLayout renders the expected arrival as "07:45 am".
const ReadableLayout = "03:04 pm"

// Naive layouts are read as UTC.
var scheduledLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseScheduledTime accepts a Unix timestamp in seconds, as the MBTA board
// publishes it, or an ISO 8601 date-time.
func ParseScheduledTime(value string) (time.Time, error) {
	if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(epoch, 0).UTC(), nil
	}

	for _, layout := range scheduledLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidScheduledTime, value)
}

// ParseLateness reads a signed count of seconds.
func ParseLateness(value string) (int64, error) {
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLateness, value)
	}

	return seconds, nil
}

// addSeconds shifts t by whole seconds on the Unix clock. time.Duration only
// spans about 292 years, so the sum is taken on epoch seconds instead.
func addSeconds(t time.Time, seconds int64) (time.Time, bool) {
	epoch := t.Unix()

	sum := epoch + seconds
	if (seconds > 0 && sum < epoch) || (seconds < 0 && sum > epoch) {
		return time.Time{}, false
	}

	return time.Unix(sum, int64(t.Nanosecond())).In(t.Location()), true
}

// Transformer builds Trains from trimmed rows.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform computes the expected arrival fields for a trimmed, validated row.
func (t *Transformer) Transform(fields map[string]string) (models.Train, error) {
	scheduled, err := ParseScheduledTime(fields[models.FieldScheduledTime])
	if err != nil {
		return models.Train{}, err
	}

	lateness, err := ParseLateness(fields[models.FieldLateness])
	if err != nil {
		return models.Train{}, err
	}

	expected, ok := addSeconds(scheduled, lateness)
	if !ok {
		return models.Train{}, fmt.Errorf("%w: %q overflows the scheduled time", ErrInvalidLateness, fields[models.FieldLateness])
	}

	train := models.Train{
		Expected:             expected,
		ScheduledTime:        fields[models.FieldScheduledTime],
		Lateness:             fields[models.FieldLateness],
		Destination:          fields[models.FieldDestination],
		Trip:                 fields[models.FieldTrip],
		Track:                fields[models.FieldTrack],
		Status:               fields[models.FieldStatus],
		Origin:               fields[models.FieldOrigin],
		ExpectedTime:         strconv.FormatInt(expected.Unix(), 10),
		ExpectedTimeReadable: expected.Format(ReadableLayout),
	}

	for key, value := range fields {
		if isKnownField(key) {
			continue
		}

		if train.Extra == nil {
			train.Extra = make(map[string]string)
		}

		train.Extra[key] = value
	}

	return train, nil
}

func isKnownField(name string) bool {
	for _, known := range models.RequiredFields {
		if name == known {
			return true
		}
	}

	return false
}
