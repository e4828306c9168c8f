//go:build unit
// +build unit

package orders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOrderValidation(t *testing.T) {
	valid := func() *Order {
		return &Order{
			ID:              uuid.NewString(),
			UserID:          uuid.NewString(),
			Item:            "widget",
			Quantity:        2,
			PriceCents:      1999,
			Status:          StatusPlaced,
			DateTimeCreated: time.Now(),
		}
	}

	tests := []struct {
		name          string
		mutate        func(*Order)
		expectedError bool
	}{
		{
			name:          "valid order",
			mutate:        func(*Order) {},
			expectedError: false,
		},
		{
			name:          "missing user id",
			mutate:        func(o *Order) { o.UserID = "" },
			expectedError: true,
		},
		{
			name:          "missing item",
			mutate:        func(o *Order) { o.Item = "" },
			expectedError: true,
		},
		{
			name:          "zero quantity",
			mutate:        func(o *Order) { o.Quantity = 0 },
			expectedError: true,
		},
		{
			name:          "unknown status",
			mutate:        func(o *Order) { o.Status = "shipped" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := valid()
			tt.mutate(order)

			err := order.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
