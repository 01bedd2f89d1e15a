package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeColumnNames = []string{
	"id", "first_name", "last_name", "social_security_number", "pay_type", "hired_at",
	"weekly_salary", "hourly_rate", "hours_worked", "gross_sales", "commission_rate", "base_salary",
}

// mockCtx routes repository queries to the mock pool through the same
// context hook transactions use.
func mockCtx(mock pgxmock.PgxPoolIface) context.Context {
	return context.WithValue(context.Background(), "tx", mock)
}

func employeeRow(id int64, lastName string, payType employee.PayType, weekly string) *pgxmock.Rows {
	return pgxmock.NewRows(employeeColumnNames).AddRow(
		id, (*string)(nil), lastName, "123-45-6789", payType, time.Now(),
		decimal.RequireFromString(weekly), decimal.Zero, decimal.Zero,
		decimal.Zero, decimal.Zero, decimal.Zero,
	)
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(nil)

	mock.ExpectQuery(`SELECT (.+) FROM employees\s+WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(employeeRow(7, "Vallejo", employee.PayTypeSalaried, "1500"))

	found, err := repo.GetByID(mockCtx(mock), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), found.ID)
	assert.Equal(t, "Vallejo", found.LastName)
	assert.Equal(t, employee.PayTypeSalaried, found.PayType)
	assert.True(t, found.WeeklySalary.Equal(decimal.RequireFromString("1500")))
	assert.Nil(t, found.FirstName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(nil)

	mock.ExpectQuery(`SELECT (.+) FROM employees\s+WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(mockCtx(mock), 42)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(nil)

	newEmployee := employee.Employee{
		LastName:             "Mora",
		SocialSecurityNumber: "987-65-4321",
		PayType:              employee.PayTypeHourly,
		HourlyRate:           decimal.RequireFromString("25"),
		HoursWorked:          decimal.RequireFromString("40"),
	}

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs(
			newEmployee.FirstName, newEmployee.LastName, newEmployee.SocialSecurityNumber, newEmployee.PayType,
			newEmployee.WeeklySalary, newEmployee.HourlyRate, newEmployee.HoursWorked,
			newEmployee.GrossSales, newEmployee.CommissionRate, newEmployee.BaseSalary,
		).
		WillReturnRows(pgxmock.NewRows(employeeColumnNames).AddRow(
			int64(1), (*string)(nil), "Mora", "987-65-4321", employee.PayTypeHourly, time.Now(),
			decimal.Zero, decimal.RequireFromString("25"), decimal.RequireFromString("40"),
			decimal.Zero, decimal.Zero, decimal.Zero,
		))

	created, err := repo.Create(mockCtx(mock), newEmployee)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.True(t, created.HourlyRate.Equal(decimal.RequireFromString("25")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(nil)

	rows := pgxmock.NewRows(employeeColumnNames).
		AddRow(int64(1), (*string)(nil), "Vallejo", "123-45-6789", employee.PayTypeSalaried, time.Now(),
			decimal.RequireFromString("1500"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero).
		AddRow(int64(2), (*string)(nil), "Mora", "987-65-4321", employee.PayTypeSalaried, time.Now(),
			decimal.RequireFromString("2500"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	mock.ExpectQuery(`SELECT (.+) FROM employees\s+WHERE pay_type = \$1`).
		WithArgs(employee.PayTypeSalaried).
		WillReturnRows(rows)

	employees, err := repo.GetByType(mockCtx(mock), employee.PayTypeSalaried)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Mora", employees[1].LastName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEmployeeRepository(nil)

	mock.ExpectExec(`DELETE FROM employees WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(mockCtx(mock), 7)
	require.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(`DELETE FROM employees WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err = repo.Delete(mockCtx(mock), 7)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
