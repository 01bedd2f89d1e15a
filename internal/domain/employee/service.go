package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByType(ctx context.Context, payType string) ([]EmployeeResponse, error)
	CalculateSalary(ctx context.Context, id int64) (decimal.Decimal, error)
}
