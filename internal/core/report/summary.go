package report

// Summary carries the headline numbers derived from a daily breakdown.
type Summary struct {
	PeakJobs       int     `json:"peakJobs"`
	PeakCalls      int     `json:"peakCalls"`
	AvgJobsPerDay  float64 `json:"avgJobsPerDay"`
	AvgCallsPerDay float64 `json:"avgCallsPerDay"`
}

// Summarize computes peaks from the daily buckets and averages from the
// all-record totals divided by the bucket count. Because weekend records
// count toward totals but never toward a bucket, an average can exceed the
// largest visible daily sum. An empty breakdown yields a zero summary.
func Summarize(daily []DailyBucket, totalJobs, totalCalls int) Summary {
	if len(daily) == 0 {
		return Summary{}
	}

	var s Summary
	for _, b := range daily {
		if b.Jobs > s.PeakJobs {
			s.PeakJobs = b.Jobs
		}
		if b.Calls > s.PeakCalls {
			s.PeakCalls = b.Calls
		}
	}
	days := float64(len(daily))
	s.AvgJobsPerDay = float64(totalJobs) / days
	s.AvgCallsPerDay = float64(totalCalls) / days
	return s
}
