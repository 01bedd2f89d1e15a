package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayType discriminates the four employee pay shapes. It is stored as a
// plain string column and selects which pay fields are meaningful and
// how the weekly salary is derived.
type PayType string

const (
	PayTypeSalaried             PayType = "Salaried"
	PayTypeHourly               PayType = "Hourly"
	PayTypeCommissioned         PayType = "Commissioned"
	PayTypeSalariedCommissioned PayType = "SalariedCommissioned"
)

// ParsePayType validates a pay type tag. Unknown tags are rejected,
// never defaulted.
func ParsePayType(s string) (PayType, error) {
	switch PayType(s) {
	case PayTypeSalaried, PayTypeHourly, PayTypeCommissioned, PayTypeSalariedCommissioned:
		return PayType(s), nil
	}
	return "", ErrInvalidPayType
}

var (
	regularHours       = decimal.NewFromInt(40)
	overtimeMultiplier = decimal.RequireFromString("1.5")
	deductionRate      = decimal.RequireFromString("0.15")
)

// Employee is the single-table aggregate for all four pay types. Only
// the fields belonging to the active PayType carry meaning; the rest
// stay at zero and never enter the salary calculation.
//
// CommissionRate is a fraction in [0,1], not a percentage.
type Employee struct {
	ID                   int64
	FirstName            *string
	LastName             string
	SocialSecurityNumber string
	PayType              PayType
	HiredAt              time.Time

	WeeklySalary   decimal.Decimal // Salaried
	HourlyRate     decimal.Decimal // Hourly
	HoursWorked    decimal.Decimal // Hourly
	GrossSales     decimal.Decimal // Commissioned, SalariedCommissioned
	CommissionRate decimal.Decimal // Commissioned, SalariedCommissioned
	BaseSalary     decimal.Decimal // SalariedCommissioned
}

// Salary derives the current weekly salary from the pay fields of the
// active pay type. It is recomputed on every read; no stored value is
// ever trusted as the salary.
func (e Employee) Salary() decimal.Decimal {
	switch e.PayType {
	case PayTypeSalaried:
		return e.WeeklySalary
	case PayTypeHourly:
		// Hours at or below 40 pay straight time; only the excess
		// above 40 earns the 1.5x overtime rate.
		if e.HoursWorked.LessThanOrEqual(regularHours) {
			return e.HoursWorked.Mul(e.HourlyRate)
		}
		overtime := e.HoursWorked.Sub(regularHours)
		return regularHours.Mul(e.HourlyRate).
			Add(overtime.Mul(e.HourlyRate).Mul(overtimeMultiplier))
	case PayTypeCommissioned:
		return e.GrossSales.Mul(e.CommissionRate)
	case PayTypeSalariedCommissioned:
		return e.BaseSalary.Add(e.GrossSales.Mul(e.CommissionRate))
	}
	return decimal.Zero
}

// Deductions applies the flat payroll deduction to the derived salary.
func (e Employee) Deductions() decimal.Decimal {
	return e.Salary().Mul(deductionRate)
}

// NetPay is the derived salary minus deductions.
func (e Employee) NetPay() decimal.Decimal {
	salary := e.Salary()
	return salary.Sub(salary.Mul(deductionRate))
}

// FullName joins the optional first name with the last name.
func (e Employee) FullName() string {
	if e.FirstName == nil || *e.FirstName == "" {
		return e.LastName
	}
	return *e.FirstName + " " + e.LastName
}

// ZeroForeignFields clears every pay field that does not belong to the
// active pay type, keeping the row consistent with the discriminator.
func (e *Employee) ZeroForeignFields() {
	weekly, rate, hours := e.WeeklySalary, e.HourlyRate, e.HoursWorked
	sales, commission, base := e.GrossSales, e.CommissionRate, e.BaseSalary

	e.WeeklySalary, e.HourlyRate, e.HoursWorked = decimal.Zero, decimal.Zero, decimal.Zero
	e.GrossSales, e.CommissionRate, e.BaseSalary = decimal.Zero, decimal.Zero, decimal.Zero

	switch e.PayType {
	case PayTypeSalaried:
		e.WeeklySalary = weekly
	case PayTypeHourly:
		e.HourlyRate, e.HoursWorked = rate, hours
	case PayTypeCommissioned:
		e.GrossSales, e.CommissionRate = sales, commission
	case PayTypeSalariedCommissioned:
		e.GrossSales, e.CommissionRate, e.BaseSalary = sales, commission, base
	}
}

// ApplyPayFields updates only the pay fields meaningful for the active
// pay type. Fields of other pay types are ignored, even when supplied.
func (e *Employee) ApplyPayFields(weeklySalary, hourlyRate, hoursWorked, grossSales, commissionRate, baseSalary *decimal.Decimal) {
	switch e.PayType {
	case PayTypeSalaried:
		if weeklySalary != nil {
			e.WeeklySalary = *weeklySalary
		}
	case PayTypeHourly:
		if hourlyRate != nil {
			e.HourlyRate = *hourlyRate
		}
		if hoursWorked != nil {
			e.HoursWorked = *hoursWorked
		}
	case PayTypeCommissioned:
		if grossSales != nil {
			e.GrossSales = *grossSales
		}
		if commissionRate != nil {
			e.CommissionRate = *commissionRate
		}
	case PayTypeSalariedCommissioned:
		if grossSales != nil {
			e.GrossSales = *grossSales
		}
		if commissionRate != nil {
			e.CommissionRate = *commissionRate
		}
		if baseSalary != nil {
			e.BaseSalary = *baseSalary
		}
	}
}
