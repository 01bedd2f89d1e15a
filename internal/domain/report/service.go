package report

import (
	"context"
	"time"
)

// ReportService derives read-only reports from the employee set. It
// never writes back to the store.
type ReportService interface {
	EmployeeReport(ctx context.Context, payTypeFilter string) (EmployeeReport, error)
	Summary(ctx context.Context) (SummaryReport, error)
	Payroll(ctx context.Context, date time.Time) (PayrollReport, error)
	Statistics(ctx context.Context) (StatisticsReport, error)
}
