package usecase

import (
	"time"

	"github.com/google/uuid"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Clock returns the current time in the application's time zone.
type Clock func() time.Time

// ClockIn reads the wall clock in loc.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

func clockOrLocal(now Clock) Clock {
	if now == nil {
		return time.Now
	}
	return now
}

// parseDate accepts a calendar date or a date-time. Values without a zone are
// read in loc.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

func parseID(value string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
