package report

import (
	"time"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
)

// DailyBucket is one calendar day of activity counts.
type DailyBucket struct {
	Date  string `json:"date"`
	Jobs  int    `json:"jobs"`
	Calls int    `json:"calls"`
}

// Aggregation groups filtered records by marketing team and by calendar day.
type Aggregation struct {
	JobsByTeam     map[string]int
	CallsByTeam    map[string]int
	DailyBreakdown []DailyBucket
}

// Aggregate builds team totals and the per-day breakdown for records already
// filtered to rng.
//
// Team totals count every record. The daily breakdown only increments weekday
// buckets: weekend activity shows up in totals and averages but not against a
// Saturday or Sunday, mirroring how marketing teams measure working days. The
// breakdown still lists every day in the range, weekends included, with zero
// counts.
func Aggregate(jobs []JobRecord, calls []CallRecord, rng Range, loc *time.Location) Aggregation {
	days := rng.Days(loc)
	buckets := make([]DailyBucket, len(days))
	index := make(map[string]int, len(days))
	for i, day := range days {
		key := day.Format(dateLayout)
		buckets[i] = DailyBucket{Date: key}
		index[key] = i
	}

	jobsByTeam := make(map[string]int)
	for _, j := range jobs {
		jobsByTeam[normalizeTeam(j.MarketingTeam)]++
		if i, ok := bucketFor(j.DateSubmitted, loc, index); ok {
			buckets[i].Jobs++
		}
	}

	callsByTeam := make(map[string]int)
	for _, c := range calls {
		callsByTeam[normalizeTeam(c.MarketingTeam)]++
		if i, ok := bucketFor(c.Date, loc, index); ok {
			buckets[i].Calls++
		}
	}

	return Aggregation{
		JobsByTeam:     jobsByTeam,
		CallsByTeam:    callsByTeam,
		DailyBreakdown: buckets,
	}
}

// bucketFor maps a record date to its weekday bucket, if any.
func bucketFor(date string, loc *time.Location, index map[string]int) (int, bool) {
	t, ok := parseRecordDate(date, loc)
	if !ok {
		return 0, false
	}
	local := t.In(loc)
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return 0, false
	}
	i, ok := index[local.Format(dateLayout)]
	return i, ok
}

func normalizeTeam(team string) string {
	if team == "" {
		return domain.TeamNotSpecified
	}
	return team
}
