package report

import (
	"fmt"
	"time"

	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
)

// Duration selects how a report's date range is resolved.
type Duration string

const (
	DurationToday     Duration = "today"
	DurationYesterday Duration = "yesterday"
	DurationWeek      Duration = "week"
	DurationMonth     Duration = "month"
	DurationCustom    Duration = "custom"
)

const dateLayout = "2006-01-02"

// ParseDuration validates a caller-supplied duration string.
func ParseDuration(s string) (Duration, error) {
	switch d := Duration(s); d {
	case DurationToday, DurationYesterday, DurationWeek, DurationMonth, DurationCustom:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidDuration, s)
}

// Range is an inclusive time window in a specific location. Start and End
// carry that location so downstream calendar math stays in the caller's zone.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the calendar days covered by the half-open window
// [start-of-Start-day, End). A non-empty range that spans less than one full
// day still yields its start day, so "today" reports get a single bucket.
func (r Range) Days(loc *time.Location) []time.Time {
	var days []time.Time
	for d := startOfDay(r.Start, loc); d.Before(r.End); d = addDays(d, 1, loc) {
		days = append(days, d)
	}
	if len(days) == 0 && !r.Start.After(r.End) {
		days = append(days, startOfDay(r.Start, loc))
	}
	return days
}

// ResolveRange turns a duration keyword into a concrete window anchored at
// now, in the given location.
//
// Relative windows (today, yesterday, week, month) start and end at local
// midnight: week covers the six days before today plus today's start, month
// the twenty-nine before. Custom windows span from midnight of fromDate to
// the last instant of toDate, so records logged any time on the final day
// are included.
func ResolveRange(d Duration, loc *time.Location, now time.Time, fromDate, toDate string) (Range, error) {
	now = now.In(loc)
	today := startOfDay(now, loc)

	switch d {
	case DurationToday:
		return Range{Start: today, End: today}, nil
	case DurationYesterday:
		y := addDays(today, -1, loc)
		return Range{Start: y, End: y}, nil
	case DurationWeek:
		return Range{Start: addDays(today, -6, loc), End: today}, nil
	case DurationMonth:
		return Range{Start: addDays(today, -29, loc), End: today}, nil
	case DurationCustom:
		if fromDate == "" || toDate == "" {
			return Range{}, apperrors.ErrMissingCustomBounds
		}
		from, err := time.ParseInLocation(dateLayout, fromDate, loc)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, fromDate)
		}
		to, err := time.ParseInLocation(dateLayout, toDate, loc)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDateFormat, toDate)
		}
		if from.After(to) {
			return Range{}, apperrors.ErrInvalidDateOrder
		}
		// End of the to-day: next local midnight minus a millisecond.
		end := addDays(startOfDay(to, loc), 1, loc).Add(-time.Millisecond)
		return Range{Start: from, End: end}, nil
	default:
		return Range{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDuration, string(d))
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// addDays shifts by whole calendar days. Going through time.Date keeps the
// result on a midnight boundary even across DST transitions.
func addDays(t time.Time, n int, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
