package postgresql

import (
	"context"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/gpe-labs/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// All four pay types share one employees table; pay_type selects the
// concrete shape and the unused pay columns stay at zero.
type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, first_name, last_name, social_security_number, pay_type, hired_at,
		   weekly_salary, hourly_rate, hours_worked, gross_sales, commission_rate, base_salary`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.SocialSecurityNumber,
		&e.PayType,
		&e.HiredAt,
		&e.WeeklySalary,
		&e.HourlyRate,
		&e.HoursWorked,
		&e.GrossSales,
		&e.CommissionRate,
		&e.BaseSalary,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			first_name, last_name, social_security_number, pay_type,
			weekly_salary, hourly_rate, hours_worked, gross_sales, commission_rate, base_salary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.SocialSecurityNumber,
		newEmployee.PayType,
		newEmployee.WeeklySalary,
		newEmployee.HourlyRate,
		newEmployee.HoursWorked,
		newEmployee.GrossSales,
		newEmployee.CommissionRate,
		newEmployee.BaseSalary,
	))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetAll implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows)
}

// GetByType implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByType(ctx context.Context, payType employee.PayType) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE pay_type = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, payType)
	if err != nil {
		return nil, err
	}
	return scanEmployees(rows)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, social_security_number = $3,
			weekly_salary = $4, hourly_rate = $5, hours_worked = $6,
			gross_sales = $7, commission_rate = $8, base_salary = $9
		WHERE id = $10
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		updated.FirstName,
		updated.LastName,
		updated.SocialSecurityNumber,
		updated.WeeklySalary,
		updated.HourlyRate,
		updated.HoursWorked,
		updated.GrossSales,
		updated.CommissionRate,
		updated.BaseSalary,
		updated.ID,
	))
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
