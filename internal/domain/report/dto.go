package report

import (
	"time"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeReportRow struct {
	ID                   int64            `json:"id"`
	FullName             string           `json:"full_name"`
	SocialSecurityNumber string           `json:"social_security_number"`
	PayType              employee.PayType `json:"pay_type"`
	Salary               decimal.Decimal  `json:"salary"`
	HiredAt              time.Time        `json:"hired_at"`
}

type EmployeeReport struct {
	Employees      []EmployeeReportRow `json:"employees"`
	TotalEmployees int                 `json:"total_employees"`
	TotalPayroll   decimal.Decimal     `json:"total_payroll"`
	AverageSalary  decimal.Decimal     `json:"average_salary"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

type PayTypeSummary struct {
	PayType    employee.PayType `json:"pay_type"`
	Count      int              `json:"count"`
	TotalPay   decimal.Decimal  `json:"total_pay"`
	AveragePay decimal.Decimal  `json:"average_pay"`
	Percentage float64          `json:"percentage"`
}

type SummaryReport struct {
	TotalEmployees int              `json:"total_employees"`
	ByPayType      []PayTypeSummary `json:"by_pay_type"`
	TotalPayroll   decimal.Decimal  `json:"total_payroll"`
	HighestSalary  decimal.Decimal  `json:"highest_salary"`
	LowestSalary   decimal.Decimal  `json:"lowest_salary"`
	AverageSalary  decimal.Decimal  `json:"average_salary"`
}

type PayrollRow struct {
	ID                   int64            `json:"id"`
	FullName             string           `json:"full_name"`
	SocialSecurityNumber string           `json:"social_security_number"`
	PayType              employee.PayType `json:"pay_type"`
	GrossPay             decimal.Decimal  `json:"gross_pay"`
	Deductions           decimal.Decimal  `json:"deductions"`
	NetPay               decimal.Decimal  `json:"net_pay"`
}

type PayrollReport struct {
	Date           time.Time       `json:"date"`
	Employees      []PayrollRow    `json:"employees"`
	TotalNetPay    decimal.Decimal `json:"total_net_pay"`
	TotalEmployees int             `json:"total_employees"`
}

type SalaryTrendPoint struct {
	Month         string          `json:"month"`
	TotalPay      decimal.Decimal `json:"total_pay"`
	EmployeeCount int             `json:"employee_count"`
}

type StatisticsReport struct {
	TotalEmployees int                `json:"total_employees"`
	TotalPayroll   decimal.Decimal    `json:"total_payroll"`
	AverageSalary  decimal.Decimal    `json:"average_salary"`
	ByPayType      []PayTypeSummary   `json:"by_pay_type"`
	SalaryTrend    []SalaryTrendPoint `json:"salary_trend"`
}
