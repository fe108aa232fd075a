package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name                  string
		down, milestone, last string
		ok                    bool
	}{
		{"even thirds do not sum to 100", "33.33", "33.33", "33.33", false},
		{"classic 30/40/30", "30", "40", "30", true},
		{"all up front", "100", "0", "0", true},
		{"sums to 99", "33", "33", "33", false},
		{"sums to 101", "34", "34", "33", false},
		{"decimal split", "33.33", "33.33", "33.34", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := PaymentSchedule{
				DownPayment:      dec(tt.down),
				MilestonePayment: dec(tt.milestone),
				FinalPayment:     dec(tt.last),
			}
			err := s.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
			}
		})
	}
}

func TestScheduleValidateBounds(t *testing.T) {
	s := PaymentSchedule{
		DownPayment:      dec("150"),
		MilestonePayment: dec("-50"),
		FinalPayment:     dec("0"),
	}
	var verr *ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	// The per-field bound fires before the sum check.
	assert.Equal(t, "down_payment_percentage", verr.Field)
}

func TestScheduleReportsActualSum(t *testing.T) {
	s := PaymentSchedule{
		DownPayment:      dec("33"),
		MilestonePayment: dec("33"),
		FinalPayment:     dec("33"),
	}
	assert.Equal(t, "99", s.Sum().String())
	var verr *ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Contains(t, verr.Message, "99")
}
