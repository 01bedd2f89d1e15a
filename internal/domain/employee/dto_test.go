package employee

import (
	"errors"
	"testing"

	"github.com/gpe-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		PayType:              "Salaried",
		FirstName:            "Ana",
		LastName:             "Vallejo",
		SocialSecurityNumber: "123-45-6789",
		WeeklySalary:         decPtr("1500"),
	}
	require.NoError(t, valid.Validate())

	t.Run("unknown pay type", func(t *testing.T) {
		req := valid
		req.PayType = "Freelance"

		err := req.Validate()
		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "pay_type")
	})

	t.Run("missing required fields", func(t *testing.T) {
		req := CreateEmployeeRequest{PayType: "Hourly"}

		err := req.Validate()
		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "last_name")
		assert.Contains(t, errs.ToMap(), "social_security_number")
	})

	t.Run("negative pay field", func(t *testing.T) {
		req := valid
		req.WeeklySalary = decPtr("-1")

		err := req.Validate()
		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "weekly_salary")
	})

	t.Run("absent pay fields default to zero", func(t *testing.T) {
		req := CreateEmployeeRequest{
			PayType:              "Hourly",
			LastName:             "Mora",
			SocialSecurityNumber: "987-65-4321",
		}
		require.NoError(t, req.Validate())

		e, err := req.ToEmployee()
		require.NoError(t, err)
		assert.True(t, e.HourlyRate.IsZero())
		assert.True(t, e.Salary().IsZero())
	})
}

func TestCreateEmployeeRequest_ToEmployee_OnlyVariantFields(t *testing.T) {
	req := CreateEmployeeRequest{
		PayType:              "Commissioned",
		LastName:             "Reyes",
		SocialSecurityNumber: "111-22-3333",
		GrossSales:           decPtr("20000"),
		CommissionRate:       decPtr("0.07"),
		WeeklySalary:         decPtr("9999"),
		HourlyRate:           decPtr("50"),
	}

	e, err := req.ToEmployee()
	require.NoError(t, err)

	assert.Equal(t, PayTypeCommissioned, e.PayType)
	assert.True(t, e.GrossSales.Equal(decimal.RequireFromString("20000")))
	assert.True(t, e.CommissionRate.Equal(decimal.RequireFromString("0.07")))
	assert.True(t, e.WeeklySalary.IsZero(), "foreign pay fields must not leak in")
	assert.True(t, e.HourlyRate.IsZero())
}

func TestUpdateEmployeeRequest_ApplyTo(t *testing.T) {
	first := "Luis"
	existing := Employee{
		ID:                   7,
		FirstName:            &first,
		LastName:             "Mora",
		SocialSecurityNumber: "987-65-4321",
		PayType:              PayTypeHourly,
		HourlyRate:           decimal.RequireFromString("20"),
		HoursWorked:          decimal.RequireFromString("38"),
	}

	req := UpdateEmployeeRequest{
		LastName:   "Mora Castillo",
		HourlyRate: decPtr("22"),
		// Foreign-variant fields are silently ignored.
		WeeklySalary: decPtr("5000"),
	}
	require.NoError(t, req.Validate())
	req.ApplyTo(&existing)

	assert.Equal(t, "Mora Castillo", existing.LastName)
	assert.Equal(t, "Luis", *existing.FirstName)
	assert.True(t, existing.HourlyRate.Equal(decimal.RequireFromString("22")))
	assert.True(t, existing.HoursWorked.Equal(decimal.RequireFromString("38")), "unsupplied fields keep their value")
	assert.True(t, existing.WeeklySalary.IsZero())
}

func TestToResponse_ProjectsVariantFields(t *testing.T) {
	e := Employee{
		ID:                   3,
		LastName:             "Vallejo",
		SocialSecurityNumber: "123-45-6789",
		PayType:              PayTypeSalariedCommissioned,
		BaseSalary:           decimal.RequireFromString("800"),
		GrossSales:           decimal.RequireFromString("5000"),
		CommissionRate:       decimal.RequireFromString("0.05"),
	}

	resp := ToResponse(e)

	require.NotNil(t, resp.BaseSalary)
	require.NotNil(t, resp.GrossSales)
	require.NotNil(t, resp.CommissionRate)
	assert.Nil(t, resp.WeeklySalary)
	assert.Nil(t, resp.HourlyRate)
	assert.Nil(t, resp.HoursWorked)
	assert.True(t, resp.Salary.Equal(decimal.RequireFromString("1050")))
}
