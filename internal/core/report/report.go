// Package report implements the activity reporting pipeline: resolving a
// duration keyword into a date range, filtering job and call records into it,
// grouping them by marketing team and calendar day, and summarizing peaks
// and averages. All calendar math happens in the requesting user's time zone.
package report

import (
	"fmt"
	"time"

	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
)

// Params selects what a report covers.
type Params struct {
	Duration string
	FromDate string // custom range only, YYYY-MM-DD
	ToDate   string // custom range only, YYYY-MM-DD
	TimeZone string // IANA identifier, e.g. "America/Chicago"
	Now      time.Time
}

// Result is a fully computed report.
type Result struct {
	Range          Range
	TotalJobs      int
	TotalCalls     int
	JobsByTeam     map[string]int
	CallsByTeam    map[string]int
	DailyBreakdown []DailyBucket
	Summary        Summary
}

// Generate runs the full pipeline over the caller's records. The reference
// instant is captured once, so every stage sees the same "now" even if the
// computation straddles midnight. A zero Now falls back to the wall clock.
func Generate(params Params, jobs []JobRecord, calls []CallRecord) (*Result, error) {
	loc, err := time.LoadLocation(params.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeZone, params.TimeZone)
	}

	d, err := ParseDuration(params.Duration)
	if err != nil {
		return nil, err
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	rng, err := ResolveRange(d, loc, now, params.FromDate, params.ToDate)
	if err != nil {
		return nil, err
	}

	filteredJobs := FilterByRange(jobs, rng, loc, func(j JobRecord) string { return j.DateSubmitted })
	filteredCalls := FilterByRange(calls, rng, loc, func(c CallRecord) string { return c.Date })

	agg := Aggregate(filteredJobs, filteredCalls, rng, loc)
	summary := Summarize(agg.DailyBreakdown, len(filteredJobs), len(filteredCalls))

	return &Result{
		Range:          rng,
		TotalJobs:      len(filteredJobs),
		TotalCalls:     len(filteredCalls),
		JobsByTeam:     agg.JobsByTeam,
		CallsByTeam:    agg.CallsByTeam,
		DailyBreakdown: agg.DailyBreakdown,
		Summary:        summary,
	}, nil
}
