// Package interestpkg provides the monthly interest policy for save jars.
//
// The policy is a pure function of the current balance: a flat bonus below
// the threshold, a percentage above it. Idempotency per calendar period is
// the caller's concern, not the policy's.
package interestpkg

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// Threshold is the balance at which percentage interest replaces the flat bonus.
	Threshold = decimal.NewFromInt(100)
	// FlatBonus is the accrual for balances under the threshold.
	FlatBonus = decimal.New(500, -2)
	// Rate is the monthly interest rate applied at or above the threshold.
	Rate = decimal.New(10, -2)
)

// Accrual is the outcome of the interest policy for one save jar.
type Accrual struct {
	Amount      decimal.Decimal
	IsFlatBonus bool
}

// Compute returns the monthly accrual for the given save jar balance:
// a flat $5.00 under $100.00, otherwise 10% rounded to the nearest cent.
func Compute(balance decimal.Decimal) Accrual {
	if balance.LessThan(Threshold) {
		return Accrual{Amount: FlatBonus, IsFlatBonus: true}
	}

	return Accrual{Amount: balance.Mul(Rate).Round(2), IsFlatBonus: false}
}

// Describe produces the human-readable justification recorded as the
// interest transaction note.
func Describe(balance decimal.Decimal, accrual Accrual) string {
	if accrual.IsFlatBonus {
		return fmt.Sprintf("Flat bonus of $%s (balance under $100)", accrual.Amount.StringFixed(2))
	}

	return fmt.Sprintf("10%% interest: $%s on balance of $%s",
		accrual.Amount.StringFixed(2), balance.StringFixed(2))
}

// Period returns the calendar period key for the given time, e.g. "2026-09".
// The ledger records at most one accrual per profile per period.
func Period(t time.Time) string {
	return t.Format("2006-01")
}
