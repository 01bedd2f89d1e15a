package report

import (
	"context"
	"fmt"
	"time"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// ReportServiceImpl derives reports from repository query results. It
// holds no state and never writes.
type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewReportService(employeeRepo employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{employeeRepo: employeeRepo}
}

func (s *ReportServiceImpl) listEmployees(ctx context.Context, payTypeFilter string) ([]employee.Employee, error) {
	if payTypeFilter == "" {
		employees, err := s.employeeRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		return employees, nil
	}

	parsed, err := employee.ParsePayType(payTypeFilter)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.GetByType(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by type: %w", err)
	}
	return employees, nil
}

// EmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) EmployeeReport(ctx context.Context, payTypeFilter string) (report.EmployeeReport, error) {
	employees, err := s.listEmployees(ctx, payTypeFilter)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	rows := make([]report.EmployeeReportRow, 0, len(employees))
	total := decimal.Zero
	for _, e := range employees {
		salary := e.Salary()
		total = total.Add(salary)
		rows = append(rows, report.EmployeeReportRow{
			ID:                   e.ID,
			FullName:             e.FullName(),
			SocialSecurityNumber: e.SocialSecurityNumber,
			PayType:              e.PayType,
			Salary:               salary,
			HiredAt:              e.HiredAt,
		})
	}

	result := report.EmployeeReport{
		Employees:      rows,
		TotalEmployees: len(rows),
		TotalPayroll:   total,
		GeneratedAt:    time.Now(),
	}
	if len(rows) > 0 {
		result.AverageSalary = total.Div(decimal.NewFromInt(int64(len(rows))))
	}
	return result, nil
}

// Summary implements report.ReportService. An empty employee set yields
// a zeroed summary, not an error.
func (s *ReportServiceImpl) Summary(ctx context.Context) (report.SummaryReport, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.SummaryReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	if len(employees) == 0 {
		return report.SummaryReport{ByPayType: []report.PayTypeSummary{}}, nil
	}

	total := decimal.Zero
	highest := employees[0].Salary()
	lowest := highest
	for _, e := range employees {
		salary := e.Salary()
		total = total.Add(salary)
		if salary.GreaterThan(highest) {
			highest = salary
		}
		if salary.LessThan(lowest) {
			lowest = salary
		}
	}

	return report.SummaryReport{
		TotalEmployees: len(employees),
		ByPayType:      groupByPayType(employees),
		TotalPayroll:   total,
		HighestSalary:  highest,
		LowestSalary:   lowest,
		AverageSalary:  total.Div(decimal.NewFromInt(int64(len(employees)))),
	}, nil
}

// Payroll implements report.ReportService. Net pay applies the flat
// deduction to every employee's derived salary.
func (s *ReportServiceImpl) Payroll(ctx context.Context, date time.Time) (report.PayrollReport, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.PayrollReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	rows := make([]report.PayrollRow, 0, len(employees))
	totalNet := decimal.Zero
	for _, e := range employees {
		net := e.NetPay()
		totalNet = totalNet.Add(net)
		rows = append(rows, report.PayrollRow{
			ID:                   e.ID,
			FullName:             e.FullName(),
			SocialSecurityNumber: e.SocialSecurityNumber,
			PayType:              e.PayType,
			GrossPay:             e.Salary(),
			Deductions:           e.Deductions(),
			NetPay:               net,
		})
	}

	return report.PayrollReport{
		Date:           date,
		Employees:      rows,
		TotalNetPay:    totalNet,
		TotalEmployees: len(rows),
	}, nil
}

// Statistics implements report.ReportService. The salary trend stays an
// empty placeholder until historical payroll data exists.
func (s *ReportServiceImpl) Statistics(ctx context.Context) (report.StatisticsReport, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.StatisticsReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	if len(employees) == 0 {
		return report.StatisticsReport{
			ByPayType:   []report.PayTypeSummary{},
			SalaryTrend: []report.SalaryTrendPoint{},
		}, nil
	}

	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.Salary())
	}

	return report.StatisticsReport{
		TotalEmployees: len(employees),
		TotalPayroll:   total,
		AverageSalary:  total.Div(decimal.NewFromInt(int64(len(employees)))),
		ByPayType:      groupByPayType(employees),
		SalaryTrend:    []report.SalaryTrendPoint{},
	}, nil
}

// groupByPayType aggregates per-type count, totals, and the share of
// the headcount, in stable pay-type order.
func groupByPayType(employees []employee.Employee) []report.PayTypeSummary {
	order := []employee.PayType{
		employee.PayTypeSalaried,
		employee.PayTypeHourly,
		employee.PayTypeCommissioned,
		employee.PayTypeSalariedCommissioned,
	}

	counts := make(map[employee.PayType]int)
	totals := make(map[employee.PayType]decimal.Decimal)
	for _, e := range employees {
		counts[e.PayType]++
		totals[e.PayType] = totals[e.PayType].Add(e.Salary())
	}

	var summaries []report.PayTypeSummary
	for _, payType := range order {
		count := counts[payType]
		if count == 0 {
			continue
		}
		summaries = append(summaries, report.PayTypeSummary{
			PayType:    payType,
			Count:      count,
			TotalPay:   totals[payType],
			AveragePay: totals[payType].Div(decimal.NewFromInt(int64(count))),
			Percentage: float64(count) / float64(len(employees)) * 100,
		})
	}
	return summaries
}
