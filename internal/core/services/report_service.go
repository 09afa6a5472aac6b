package services

import (
	"context"

	"github.com/consultrack/jobtrack-backend/internal/core/domain"
	"github.com/consultrack/jobtrack-backend/internal/core/ports"
	"github.com/consultrack/jobtrack-backend/internal/core/report"
)

// ReportService builds activity reports from a user's jobs and calls. It
// fetches both record sets, projects them into the pipeline's read views and
// delegates the calendar math to the report package.
type ReportService struct {
	jobRepo         ports.JobRepository
	callRepo        ports.CallRepository
	defaultTimeZone string
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service. defaultTimeZone is used
// when a request omits the timeZone parameter.
func NewReportService(jobRepo ports.JobRepository, callRepo ports.CallRepository, defaultTimeZone string) *ReportService {
	return &ReportService{
		jobRepo:         jobRepo,
		callRepo:        callRepo,
		defaultTimeZone: defaultTimeZone,
	}
}

// GenerateReport runs the full reporting pipeline for one user.
func (s *ReportService) GenerateReport(ctx context.Context, params ports.GenerateReportParams) (*report.Result, error) {
	tz := params.TimeZone
	if tz == "" {
		tz = s.defaultTimeZone
	}

	jobs, err := s.jobRepo.ListByUser(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	calls, err := s.callRepo.ListByUser(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	return report.Generate(report.Params{
		Duration: params.Duration,
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
		TimeZone: tz,
	}, jobRecords(jobs), callRecords(calls))
}

func jobRecords(jobs []*domain.Job) []report.JobRecord {
	records := make([]report.JobRecord, len(jobs))
	for i, j := range jobs {
		records[i] = report.JobRecord{
			ID:            j.ID.String(),
			Title:         j.Title,
			MarketingTeam: j.MarketingTeam,
			DateSubmitted: j.DateSubmitted,
		}
	}
	return records
}

func callRecords(calls []*domain.Call) []report.CallRecord {
	records := make([]report.CallRecord, len(calls))
	for i, c := range calls {
		records[i] = report.CallRecord{
			ID:            c.ID.String(),
			MarketingTeam: c.MarketingTeam,
			Date:          c.Date,
		}
	}
	return records
}
