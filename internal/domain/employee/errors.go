package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidPayType   = errors.New("pay type must be Salaried, Hourly, Commissioned, or SalariedCommissioned")

	// Salary calculation treats a missing id as a bad argument, not an
	// absent resource.
	ErrSalaryEmployeeNotFound = errors.New("employee not found")
)
