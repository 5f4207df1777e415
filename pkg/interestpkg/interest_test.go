package interestpkg

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name        string
		balance     string
		wantAmount  string
		wantIsFlat  bool
	}{
		{
			name:       "ZeroBalance",
			balance:    "0",
			wantAmount: "5.00",
			wantIsFlat: true,
		},
		{
			name:       "JustUnderThreshold",
			balance:    "99.99",
			wantAmount: "5.00",
			wantIsFlat: true,
		},
		{
			name:       "AtThreshold",
			balance:    "100.00",
			wantAmount: "10.00",
			wantIsFlat: false,
		},
		{
			name:       "AboveThreshold",
			balance:    "250.00",
			wantAmount: "25.00",
			wantIsFlat: false,
		},
		{
			name:       "RoundsToNearestCent",
			balance:    "100.05",
			wantAmount: "10.01",
			wantIsFlat: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			balance, err := decimal.NewFromString(tc.balance)
			require.NoError(t, err)

			accrual := Compute(balance)

			require.Equal(t, tc.wantAmount, accrual.Amount.StringFixed(2))
			require.Equal(t, tc.wantIsFlat, accrual.IsFlatBonus)
		})
	}
}

func TestDescribe(t *testing.T) {
	flatBalance := decimal.New(8000, -2)
	flat := Compute(flatBalance)
	require.Equal(t, "Flat bonus of $5.00 (balance under $100)", Describe(flatBalance, flat))

	pctBalance := decimal.New(25000, -2)
	pct := Compute(pctBalance)
	require.Equal(t, "10% interest: $25.00 on balance of $250.00", Describe(pctBalance, pct))
}

func TestPeriod(t *testing.T) {
	ts := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)
	require.Equal(t, "2026-09", Period(ts))
}
