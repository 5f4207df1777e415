package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/threejars/ledger/pkg/kindpkg"
)

var (
	// ErrInvalidAmount indicates an amount that is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates a zero or negative amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrUnsupportedTransactionKind indicates an unknown transaction kind.
	ErrUnsupportedTransactionKind = errors.New("unsupported transaction kind")
	// ErrCharityRecipientRequired indicates a charity log entry without a recipient.
	ErrCharityRecipientRequired = errors.New("charity recipient required")
	// ErrCharityFlagInvalid indicates a charity log entry that is not a withdrawal from the give jar.
	ErrCharityFlagInvalid = errors.New("charity log must be a withdrawal from the give jar")
	// ErrEmptyBatch indicates a batch with no entries.
	ErrEmptyBatch = errors.New("batch must contain at least one entry")
	// ErrBatchAlreadyApplied indicates that a batch with the same idempotency key is already committed.
	ErrBatchAlreadyApplied = errors.New("batch already applied")
	// ErrInterestAlreadyAccrued indicates that interest for the period is already recorded.
	ErrInterestAlreadyAccrued = errors.New("interest already accrued for period")
)

// InsufficientBalanceError rejects a withdrawal batch that would drive a jar
// balance below zero. It names the offending jar so callers can render an
// actionable message without re-deriving context.
type InsufficientBalanceError struct {
	JarKind   string
	Requested string
	Available string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in %s jar: requested %s, available %s",
		e.JarKind, e.Requested, e.Available)
}

// Transaction holds one immutable record of money moving into or out of a jar.
// Amount is always stored positive; the sign is implied by Kind.
type Transaction struct {
	ID               int64     `json:"id"`
	JarID            string    `json:"jar_id"`
	ProfileID        string    `json:"profile_id"`
	Kind             string    `json:"kind"`
	JarKind          string    `json:"jar_kind"`
	Amount           string    `json:"amount"`
	Note             string    `json:"note"`
	IsCharityLog     bool      `json:"is_charity_log"`
	CharityRecipient string    `json:"charity_recipient,omitempty"`
	BatchKey         string    `json:"batch_key,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// BatchEntry is one proposed transaction of a batch, before identity and
// timestamp are assigned.
type BatchEntry struct {
	JarKind          string `json:"jar_kind"`
	Kind             string `json:"kind"`
	Amount           string `json:"amount"`
	Note             string `json:"note"`
	IsCharityLog     bool   `json:"is_charity_log"`
	CharityRecipient string `json:"charity_recipient,omitempty"`
}

// Validate checks the shape of a proposed entry: positive decimal amount,
// known kinds, and charity flag consistency.
func (e BatchEntry) Validate() error {
	amount, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	if !kindpkg.IsSupportedJarKind(e.JarKind) {
		return ErrUnsupportedJarKind
	}

	if !kindpkg.IsSupportedTransactionKind(e.Kind) {
		return ErrUnsupportedTransactionKind
	}

	if e.IsCharityLog {
		if e.Kind != kindpkg.Withdrawal || e.JarKind != kindpkg.Give {
			return ErrCharityFlagInvalid
		}

		if e.CharityRecipient == "" {
			return ErrCharityRecipientRequired
		}
	}

	return nil
}

// BatchItem is the caller-facing shape of one proposed deposit or withdrawal.
// The transaction kind is implied by the operation it is submitted to.
type BatchItem struct {
	JarKind string `json:"jar_kind"`
	Amount  string `json:"amount"`
	Note    string `json:"note"`
}

// ExecBatchParams is the input data for an atomic ledger batch.
type ExecBatchParams struct {
	ProfileID      string       `json:"profile_id"`
	IdempotencyKey string       `json:"idempotency_key"`
	Entries        []BatchEntry `json:"entries"`
}

// BatchResult is the outcome of a committed ledger batch.
type BatchResult struct {
	Transactions []Transaction `json:"transactions"`
	Balances     Balances      `json:"balances"`
}

// RunInterestParams is the input data for a monthly interest accrual.
// Amount is the accrual computed by the interest policy from the save balance.
type RunInterestParams struct {
	ProfileID      string `json:"profile_id"`
	IdempotencyKey string `json:"idempotency_key"`
	Period         string `json:"period"`
	Amount         string `json:"amount"`
	Note           string `json:"note"`
}

// InterestResult is the outcome of an interest accrual.
type InterestResult struct {
	Transaction Transaction `json:"transaction"`
	NewBalance  string      `json:"new_balance"`
}

// ListTransactionsParams is the input data to query a profile's history.
// Kind and JarKind are optional filters; empty means no filter.
type ListTransactionsParams struct {
	ProfileID string `json:"profile_id"`
	Kind      string `json:"kind"`
	JarKind   string `json:"jar_kind"`
	Limit     int32  `json:"limit"`
}

// DonationResult is the outcome of a recorded donation.
type DonationResult struct {
	Transaction Transaction `json:"transaction"`
	NewBalance  string      `json:"new_balance"`
}

// DonationsResult holds the charity sub-ledger view of a profile.
type DonationsResult struct {
	Transactions []Transaction `json:"transactions"`
	Total        string        `json:"total"`
}
