package report

import "time"

// Record date formats accepted by the pipeline. Date-only strings and naive
// date-times are taken in the caller's zone; RFC3339 strings carry their own
// offset.
var recordDateLayouts = []string{
	dateLayout,
	"2006-01-02T15:04:05",
}

// parseRecordDate interprets a stored record date string in loc. Returns
// false when the string matches no accepted format.
func parseRecordDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range recordDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FilterByRange keeps the records whose date falls inside rng, inclusive on
// both ends. Records whose date string fails to parse are dropped, never
// counted.
func FilterByRange[T any](records []T, rng Range, loc *time.Location, dateOf func(T) string) []T {
	filtered := make([]T, 0, len(records))
	for _, rec := range records {
		t, ok := parseRecordDate(dateOf(rec), loc)
		if !ok {
			continue
		}
		if t.Before(rng.Start) || t.After(rng.End) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
