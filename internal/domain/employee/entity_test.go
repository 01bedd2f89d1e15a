package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParsePayType(t *testing.T) {
	for _, tag := range []string{"Salaried", "Hourly", "Commissioned", "SalariedCommissioned"} {
		parsed, err := ParsePayType(tag)
		require.NoError(t, err)
		assert.Equal(t, PayType(tag), parsed)
	}

	for _, tag := range []string{"", "salaried", "Freelance", "HOURLY"} {
		_, err := ParsePayType(tag)
		assert.ErrorIs(t, err, ErrInvalidPayType, "tag %q should be rejected", tag)
	}
}

func TestSalary_Salaried(t *testing.T) {
	e := Employee{PayType: PayTypeSalaried, WeeklySalary: dec("1500")}
	assert.True(t, e.Salary().Equal(dec("1500")))
}

func TestSalary_Hourly(t *testing.T) {
	tests := []struct {
		name  string
		rate  string
		hours string
		want  string
	}{
		{"no hours", "25", "0", "0"},
		{"under regular hours", "25", "30", "750"},
		{"exactly regular hours", "25", "40", "1000"},
		{"overtime pays time and a half on excess", "25", "45", "1187.5"},
		{"fractional hours", "10", "40.5", "407.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Employee{
				PayType:     PayTypeHourly,
				HourlyRate:  dec(tt.rate),
				HoursWorked: dec(tt.hours),
			}
			got := e.Salary()
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestSalary_Commissioned(t *testing.T) {
	e := Employee{
		PayType:        PayTypeCommissioned,
		GrossSales:     dec("10000"),
		CommissionRate: dec("0.1"),
	}
	assert.True(t, e.Salary().Equal(dec("1000")))
}

func TestSalary_SalariedCommissioned(t *testing.T) {
	e := Employee{
		PayType:        PayTypeSalariedCommissioned,
		BaseSalary:     dec("800"),
		GrossSales:     dec("5000"),
		CommissionRate: dec("0.05"),
	}
	assert.True(t, e.Salary().Equal(dec("1050")))
}

func TestSalary_IgnoresForeignFields(t *testing.T) {
	// A salaried employee with stray hourly values still earns the
	// weekly salary and nothing else.
	e := Employee{
		PayType:      PayTypeSalaried,
		WeeklySalary: dec("2000"),
		HourlyRate:   dec("99"),
		HoursWorked:  dec("80"),
		GrossSales:   dec("100000"),
	}
	assert.True(t, e.Salary().Equal(dec("2000")))
}

func TestDeductionsAndNetPay(t *testing.T) {
	e := Employee{PayType: PayTypeSalaried, WeeklySalary: dec("1000")}

	assert.True(t, e.Deductions().Equal(dec("150")))
	assert.True(t, e.NetPay().Equal(dec("850")))
}

func TestFullName(t *testing.T) {
	first := "Ana"
	e := Employee{FirstName: &first, LastName: "Vallejo"}
	assert.Equal(t, "Ana Vallejo", e.FullName())

	e.FirstName = nil
	assert.Equal(t, "Vallejo", e.FullName())

	empty := ""
	e.FirstName = &empty
	assert.Equal(t, "Vallejo", e.FullName())
}

func TestZeroForeignFields(t *testing.T) {
	e := Employee{
		PayType:        PayTypeHourly,
		WeeklySalary:   dec("1500"),
		HourlyRate:     dec("25"),
		HoursWorked:    dec("40"),
		GrossSales:     dec("10000"),
		CommissionRate: dec("0.1"),
		BaseSalary:     dec("800"),
	}

	e.ZeroForeignFields()

	assert.True(t, e.HourlyRate.Equal(dec("25")))
	assert.True(t, e.HoursWorked.Equal(dec("40")))
	assert.True(t, e.WeeklySalary.IsZero())
	assert.True(t, e.GrossSales.IsZero())
	assert.True(t, e.CommissionRate.IsZero())
	assert.True(t, e.BaseSalary.IsZero())
}

func TestApplyPayFields_DispatchesOnPayType(t *testing.T) {
	weekly := dec("1500")
	rate := dec("30")

	e := Employee{PayType: PayTypeSalaried}
	e.ApplyPayFields(&weekly, &rate, nil, nil, nil, nil)

	assert.True(t, e.WeeklySalary.Equal(weekly))
	assert.True(t, e.HourlyRate.IsZero(), "hourly rate belongs to another pay type")
}
