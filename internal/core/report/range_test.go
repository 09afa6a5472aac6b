package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/consultrack/jobtrack-backend/internal/core/errors"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestParseDuration(t *testing.T) {
	for _, valid := range []string{"today", "yesterday", "week", "month", "custom"} {
		d, err := report.ParseDuration(valid)
		require.NoError(t, err)
		assert.Equal(t, report.Duration(valid), d)
	}

	for _, invalid := range []string{"", "Today", "fortnight", "7d"} {
		_, err := report.ParseDuration(invalid)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDuration, "input %q", invalid)
	}
}

func TestResolveRange_RelativeDurations(t *testing.T) {
	chicago := mustLoadLocation(t, "America/Chicago")
	// Wednesday afternoon, local time.
	now := time.Date(2024, 3, 6, 15, 30, 0, 0, chicago)

	t.Run("today", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationToday, chicago, now, "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, chicago), rng.Start)
		assert.Equal(t, rng.Start, rng.End)
	})

	t.Run("yesterday", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationYesterday, chicago, now, "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, chicago), rng.Start)
		assert.Equal(t, rng.Start, rng.End)
	})

	t.Run("week spans six days back", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationWeek, chicago, now, "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, chicago), rng.Start)
		assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, chicago), rng.End)
	})

	t.Run("month spans twenty-nine days back", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationMonth, chicago, now, "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 6, 0, 0, 0, 0, chicago), rng.Start)
		assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, chicago), rng.End)
	})

	t.Run("now is interpreted in the requested zone", func(t *testing.T) {
		kolkata := mustLoadLocation(t, "Asia/Kolkata")
		// 22:00 UTC on March 6 is already March 7 in Kolkata.
		utcEvening := time.Date(2024, 3, 6, 22, 0, 0, 0, time.UTC)
		rng, err := report.ResolveRange(report.DurationToday, kolkata, utcEvening, "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, kolkata), rng.Start)
	})
}

func TestResolveRange_Custom(t *testing.T) {
	chicago := mustLoadLocation(t, "America/Chicago")
	now := time.Date(2024, 3, 6, 15, 30, 0, 0, chicago)

	t.Run("covers the full final day", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, chicago), rng.Start)
		assert.Equal(t, time.Date(2024, 3, 5, 23, 59, 59, 999000000, chicago), rng.End)
	})

	t.Run("single day", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-03-04")
		require.NoError(t, err)
		assert.True(t, rng.Start.Before(rng.End))
	})

	t.Run("missing bounds", func(t *testing.T) {
		_, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "")
		assert.ErrorIs(t, err, apperrors.ErrMissingCustomBounds)

		_, err = report.ResolveRange(report.DurationCustom, chicago, now, "", "2024-03-05")
		assert.ErrorIs(t, err, apperrors.ErrMissingCustomBounds)
	})

	t.Run("malformed dates", func(t *testing.T) {
		_, err := report.ResolveRange(report.DurationCustom, chicago, now, "03/04/2024", "2024-03-05")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)

		_, err = report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-02-30")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-05", "2024-03-04")
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateOrder)
	})
}

func TestRange_Days(t *testing.T) {
	chicago := mustLoadLocation(t, "America/Chicago")
	now := time.Date(2024, 3, 6, 15, 30, 0, 0, chicago)

	t.Run("today yields a single day", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationToday, chicago, now, "", "")
		require.NoError(t, err)
		days := rng.Days(chicago)
		require.Len(t, days, 1)
		assert.Equal(t, "2024-03-06", days[0].Format("2006-01-02"))
	})

	t.Run("week yields six days", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationWeek, chicago, now, "", "")
		require.NoError(t, err)
		days := rng.Days(chicago)
		require.Len(t, days, 6)
		assert.Equal(t, "2024-02-29", days[0].Format("2006-01-02"))
		assert.Equal(t, "2024-03-05", days[5].Format("2006-01-02"))
	})

	t.Run("month yields twenty-nine days", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationMonth, chicago, now, "", "")
		require.NoError(t, err)
		assert.Len(t, rng.Days(chicago), 29)
	})

	t.Run("custom includes the final day", func(t *testing.T) {
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-04", "2024-03-08")
		require.NoError(t, err)
		days := rng.Days(chicago)
		require.Len(t, days, 5)
		assert.Equal(t, "2024-03-08", days[4].Format("2006-01-02"))
	})

	t.Run("consecutive across DST spring forward", func(t *testing.T) {
		// US DST began 2024-03-10; that Sunday is 23 hours long in Chicago.
		rng, err := report.ResolveRange(report.DurationCustom, chicago, now, "2024-03-09", "2024-03-11")
		require.NoError(t, err)
		days := rng.Days(chicago)
		require.Len(t, days, 3)
		assert.Equal(t, "2024-03-09", days[0].Format("2006-01-02"))
		assert.Equal(t, "2024-03-10", days[1].Format("2006-01-02"))
		assert.Equal(t, "2024-03-11", days[2].Format("2006-01-02"))
	})
}
