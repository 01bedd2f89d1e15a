package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee, err := req.ToEmployee()
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee.ToResponse(found), nil
}

// GetAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Only supplied fields
// overwrite existing ones, and pay fields of other variants are no-ops.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	req.ApplyTo(&existing)

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return deleted, nil
}

// GetByType implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByType(ctx context.Context, payType string) ([]employee.EmployeeResponse, error) {
	parsed, err := employee.ParsePayType(payType)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByType(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by type: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// CalculateSalary implements employee.EmployeeService. The salary is
// always derived from the current pay fields, never read back. A
// missing id is rejected as a bad argument here, unlike plain reads.
func (s *EmployeeServiceImpl) CalculateSalary(ctx context.Context, id int64) (decimal.Decimal, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, employee.ErrSalaryEmployeeNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return found.Salary(), nil
}
