package report

// JobRecord is the read-only view of a job submission the pipeline consumes.
// Date strings are kept verbatim (ISO-8601 date or date-time) and interpreted
// in the caller's time zone at filter/aggregation time.
type JobRecord struct {
	ID            string
	Title         string
	MarketingTeam string
	DateSubmitted string
}

// CallRecord is the read-only view of a call record the pipeline consumes.
type CallRecord struct {
	ID            string
	MarketingTeam string
	Date          string
}
