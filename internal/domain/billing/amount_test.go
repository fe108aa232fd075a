package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvoiceAmountPercentage(t *testing.T) {
	m := &Milestone{BillingType: BillingPercentage, BillingPercentage: dec("25")}
	got, err := InvoiceAmount(m, dec("10000"))
	require.NoError(t, err)
	assert.Equal(t, "2500.00", got.StringFixed(2))
}

func TestInvoiceAmountFixed(t *testing.T) {
	m := &Milestone{BillingType: BillingFixed, BillableAmount: dec("1234.567")}
	got, err := InvoiceAmount(m, dec("10000"))
	require.NoError(t, err)
	assert.Equal(t, "1234.57", got.StringFixed(2))
}

func TestInvoiceAmountHourly(t *testing.T) {
	m := &Milestone{BillingType: BillingHourly, BillingRate: dec("85.50"), ActualHours: dec("12.5")}
	got, err := InvoiceAmount(m, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "1068.75", got.StringFixed(2))
}

func TestInvoiceAmountHourlyRequiresHours(t *testing.T) {
	m := &Milestone{BillingType: BillingHourly, BillingRate: dec("85.50")}
	_, err := InvoiceAmount(m, decimal.Zero)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "actual_hours", verr.Field)
}

func TestInvoiceAmountRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		m     *Milestone
		field string
	}{
		{"percentage out of range", &Milestone{BillingType: BillingPercentage, BillingPercentage: dec("150")}, "billing_percentage"},
		{"negative fixed amount", &Milestone{BillingType: BillingFixed, BillableAmount: dec("-1")}, "billable_amount"},
		{"negative rate", &Milestone{BillingType: BillingHourly, BillingRate: dec("-1"), ActualHours: dec("1")}, "billing_rate"},
		{"unknown billing type", &Milestone{BillingType: "weekly"}, "billing_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InvoiceAmount(tt.m, dec("1000"))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
