package employee

import (
	"time"

	"github.com/gpe-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	PayType              string `json:"pay_type"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	SocialSecurityNumber string `json:"social_security_number"`

	// Pay fields; only those matching pay_type are used. Absent numeric
	// fields default to zero rather than being rejected.
	WeeklySalary   *decimal.Decimal `json:"weekly_salary"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	HoursWorked    *decimal.Decimal `json:"hours_worked"`
	GrossSales     *decimal.Decimal `json:"gross_sales"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	BaseSalary     *decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParsePayType(r.PayType); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_type",
			Message: "pay_type must be one of Salaried, Hourly, Commissioned, SalariedCommissioned",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.SocialSecurityNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "social_security_number",
			Message: "social_security_number is required",
		})
	}
	for field, value := range map[string]*decimal.Decimal{
		"weekly_salary":   r.WeeklySalary,
		"hourly_rate":     r.HourlyRate,
		"hours_worked":    r.HoursWorked,
		"gross_sales":     r.GrossSales,
		"commission_rate": r.CommissionRate,
		"base_salary":     r.BaseSalary,
	} {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEmployee builds the variant instance, populating only the pay
// fields that belong to the requested pay type.
func (r *CreateEmployeeRequest) ToEmployee() (Employee, error) {
	payType, err := ParsePayType(r.PayType)
	if err != nil {
		return Employee{}, err
	}

	e := Employee{
		LastName:             r.LastName,
		SocialSecurityNumber: r.SocialSecurityNumber,
		PayType:              payType,
	}
	if !validator.IsEmpty(r.FirstName) {
		firstName := r.FirstName
		e.FirstName = &firstName
	}
	e.ApplyPayFields(r.WeeklySalary, r.HourlyRate, r.HoursWorked, r.GrossSales, r.CommissionRate, r.BaseSalary)
	return e, nil
}

type UpdateEmployeeRequest struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	SocialSecurityNumber string `json:"social_security_number"`

	WeeklySalary   *decimal.Decimal `json:"weekly_salary"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate"`
	HoursWorked    *decimal.Decimal `json:"hours_worked"`
	GrossSales     *decimal.Decimal `json:"gross_sales"`
	CommissionRate *decimal.Decimal `json:"commission_rate"`
	BaseSalary     *decimal.Decimal `json:"base_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*decimal.Decimal{
		"weekly_salary":   r.WeeklySalary,
		"hourly_rate":     r.HourlyRate,
		"hours_worked":    r.HoursWorked,
		"gross_sales":     r.GrossSales,
		"commission_rate": r.CommissionRate,
		"base_salary":     r.BaseSalary,
	} {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyTo overwrites only the supplied fields on an existing employee.
// The pay type itself is immutable; pay fields go through the pay-type
// dispatch so foreign-variant values are silently ignored.
func (r *UpdateEmployeeRequest) ApplyTo(e *Employee) {
	if !validator.IsEmpty(r.FirstName) {
		firstName := r.FirstName
		e.FirstName = &firstName
	}
	if !validator.IsEmpty(r.LastName) {
		e.LastName = r.LastName
	}
	if !validator.IsEmpty(r.SocialSecurityNumber) {
		e.SocialSecurityNumber = r.SocialSecurityNumber
	}
	e.ApplyPayFields(r.WeeklySalary, r.HourlyRate, r.HoursWorked, r.GrossSales, r.CommissionRate, r.BaseSalary)
}

type EmployeeResponse struct {
	ID                   int64     `json:"id"`
	FirstName            string    `json:"first_name,omitempty"`
	LastName             string    `json:"last_name"`
	SocialSecurityNumber string    `json:"social_security_number"`
	PayType              PayType   `json:"pay_type"`
	HiredAt              time.Time `json:"hired_at"`

	WeeklySalary   *decimal.Decimal `json:"weekly_salary,omitempty"`
	HourlyRate     *decimal.Decimal `json:"hourly_rate,omitempty"`
	HoursWorked    *decimal.Decimal `json:"hours_worked,omitempty"`
	GrossSales     *decimal.Decimal `json:"gross_sales,omitempty"`
	CommissionRate *decimal.Decimal `json:"commission_rate,omitempty"`
	BaseSalary     *decimal.Decimal `json:"base_salary,omitempty"`

	Salary decimal.Decimal `json:"salary"`
}

// ToResponse projects an employee into its variant-specific DTO. Only
// the fields of the employee's own pay type are populated; the salary
// is freshly computed.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                   e.ID,
		LastName:             e.LastName,
		SocialSecurityNumber: e.SocialSecurityNumber,
		PayType:              e.PayType,
		HiredAt:              e.HiredAt,
		Salary:               e.Salary(),
	}
	if e.FirstName != nil {
		resp.FirstName = *e.FirstName
	}

	switch e.PayType {
	case PayTypeSalaried:
		resp.WeeklySalary = ptr(e.WeeklySalary)
	case PayTypeHourly:
		resp.HourlyRate = ptr(e.HourlyRate)
		resp.HoursWorked = ptr(e.HoursWorked)
	case PayTypeCommissioned:
		resp.GrossSales = ptr(e.GrossSales)
		resp.CommissionRate = ptr(e.CommissionRate)
	case PayTypeSalariedCommissioned:
		resp.GrossSales = ptr(e.GrossSales)
		resp.CommissionRate = ptr(e.CommissionRate)
		resp.BaseSalary = ptr(e.BaseSalary)
	}
	return resp
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type SalaryResponse struct {
	EmployeeID int64           `json:"employee_id"`
	Salary     decimal.Decimal `json:"salary"`
}
