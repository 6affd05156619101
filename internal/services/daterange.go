package services

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format, expected yyyy-MM-dd")

// ResolvedDateRange is the half-open query window [Start, End) derived
// from the caller's inclusive calendar dates
type ResolvedDateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange parses the optional start and end date strings and
// produces the query window. A missing start defaults to one month before
// today, a missing end to today. Both inputs are inclusive calendar dates;
// the returned End is midnight after the end date so timestamped rows on
// the last day are included. A start after the end resolves to an empty
// window rather than an error; the query simply matches nothing.
func ResolveDateRange(startDate, endDate string, now time.Time) (*ResolvedDateRange, error) {
	today := now.UTC().Truncate(24 * time.Hour)

	start := today.AddDate(0, -1, 0)
	if startDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		start = parsed
	}

	end := today
	if endDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		end = parsed
	}

	return &ResolvedDateRange{
		Start: start,
		End:   end.AddDate(0, 0, 1),
	}, nil
}
