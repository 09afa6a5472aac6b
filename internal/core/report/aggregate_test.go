package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

func TestAggregate(t *testing.T) {
	chicago := mustLoadLocation(t, "America/Chicago")
	now := time.Date(2024, 3, 6, 15, 30, 0, 0, chicago)

	t.Run("groups by team and day", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-03-05")
		require.NoError(t, err)

		jobs := []report.JobRecord{
			{ID: "1", MarketingTeam: "Alpha", DateSubmitted: "2024-03-04"},
			{ID: "2", MarketingTeam: "Alpha", DateSubmitted: "2024-03-05"},
			{ID: "3", MarketingTeam: "Bravo", DateSubmitted: "2024-03-05T14:00:00"},
		}
		calls := []report.CallRecord{
			{ID: "c1", MarketingTeam: "Bravo", Date: "2024-03-04"},
		}

		agg := report.Aggregate(jobs, calls, rng, chicago)

		assert.Equal(t, map[string]int{"Alpha": 2, "Bravo": 1}, agg.JobsByTeam)
		assert.Equal(t, map[string]int{"Bravo": 1}, agg.CallsByTeam)

		require.Len(t, agg.DailyBreakdown, 2)
		assert.Equal(t, report.DailyBucket{Date: "2024-03-04", Jobs: 1, Calls: 1}, agg.DailyBreakdown[0])
		assert.Equal(t, report.DailyBucket{Date: "2024-03-05", Jobs: 2, Calls: 0}, agg.DailyBreakdown[1])
	})

	t.Run("empty team label becomes Not Specified", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-03-04")
		require.NoError(t, err)

		jobs := []report.JobRecord{{ID: "1", MarketingTeam: "", DateSubmitted: "2024-03-04"}}

		agg := report.Aggregate(jobs, nil, rng, chicago)
		assert.Equal(t, map[string]int{domain.TeamNotSpecified: 1}, agg.JobsByTeam)
	})

	t.Run("weekend records count in totals but not daily buckets", func(t *testing.T) {
		// March 8th 2024 is a Friday, 9th/10th the weekend, 11th a Monday.
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-08", "2024-03-11")
		require.NoError(t, err)

		jobs := []report.JobRecord{
			{ID: "fri", MarketingTeam: "Alpha", DateSubmitted: "2024-03-08"},
			{ID: "sat", MarketingTeam: "Alpha", DateSubmitted: "2024-03-09"},
			{ID: "sun", MarketingTeam: "Alpha", DateSubmitted: "2024-03-10"},
			{ID: "mon", MarketingTeam: "Alpha", DateSubmitted: "2024-03-11"},
		}

		agg := report.Aggregate(jobs, nil, rng, chicago)

		// Team totals see all four records.
		assert.Equal(t, 4, agg.JobsByTeam["Alpha"])

		// Weekend days still appear in the breakdown, with zero counts.
		require.Len(t, agg.DailyBreakdown, 4)
		assert.Equal(t, report.DailyBucket{Date: "2024-03-08", Jobs: 1}, agg.DailyBreakdown[0])
		assert.Equal(t, report.DailyBucket{Date: "2024-03-09"}, agg.DailyBreakdown[1])
		assert.Equal(t, report.DailyBucket{Date: "2024-03-10"}, agg.DailyBreakdown[2])
		assert.Equal(t, report.DailyBucket{Date: "2024-03-11", Jobs: 1}, agg.DailyBreakdown[3])
	})

	t.Run("no records yields zeroed buckets", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-03-06")
		require.NoError(t, err)

		agg := report.Aggregate(nil, nil, rng, chicago)

		assert.Empty(t, agg.JobsByTeam)
		assert.Empty(t, agg.CallsByTeam)
		require.Len(t, agg.DailyBreakdown, 3)
		for _, b := range agg.DailyBreakdown {
			assert.Zero(t, b.Jobs)
			assert.Zero(t, b.Calls)
		}
	})
}
