// Package ledgerrepo manages the atomic unit pairing balance mutation with
// the transaction log append.
//
// Every batch runs as one database transaction: the idempotency guard row,
// the row locks on affected jars, the balance projection check, the log
// appends and the balance updates either all commit or none do.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/internal/jarrepo"
	"github.com/threejars/ledger/internal/transactionrepo"
	"github.com/threejars/ledger/pkg/errorspkg"
	"github.com/threejars/ledger/pkg/kindpkg"
)

// NotifyChannel is the pg_notify channel carrying profile ids of committed
// changes. Delivery happens only on commit.
const NotifyChannel = "jar_changes"

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

const insertBatchQuery = `
INSERT INTO
    ledger_batches (idempotency_key, profile_id)
VALUES
    ($1, $2)
`

const insertAccrualQuery = `
INSERT INTO
    interest_accruals (profile_id, period, transaction_id)
VALUES
    ($1, $2, $3)
`

const notifyQuery = `SELECT pg_notify($1, $2)`

// ExecBatch commits a validated batch atomically. Affected jars are locked in
// consistent id order, post-batch balances are projected before any update,
// and a projected negative balance rejects the whole batch.
func (r *RepoPGS) ExecBatch(ctx context.Context, arg domain.ExecBatchParams) (domain.BatchResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.BatchResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if err := r.insertBatch(ctx, tx, arg.IdempotencyKey, arg.ProfileID); err != nil {
		return result, err
	}

	jarRepo := jarrepo.NewRepoPGS(tx)
	logRepo := transactionrepo.NewRepoPGS(tx)

	jars, err := jarRepo.ListForProfileLocked(ctx, arg.ProfileID)
	if err != nil {
		return result, err
	}

	if len(jars) == 0 {
		return result, domain.ErrProfileNotFound
	}

	byKind := make(map[string]domain.Jar, len(jars))
	for _, j := range jars {
		byKind[j.Kind] = j
	}

	// Project post-batch balances before touching anything.
	deltas := make(map[string]decimal.Decimal, len(jars))

	for _, e := range arg.Entries {
		jar, ok := byKind[e.JarKind]
		if !ok {
			return result, domain.ErrJarNotFound
		}

		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return result, domain.ErrInvalidAmount
		}

		if e.Kind == kindpkg.Withdrawal {
			amount = amount.Neg()
		}

		deltas[jar.ID] = deltas[jar.ID].Add(amount)
	}

	for _, j := range jars {
		delta, ok := deltas[j.ID]
		if !ok {
			continue
		}

		balance, err := decimal.NewFromString(j.Balance)
		if err != nil {
			l.Error().Err(err).Send()
			return result, errorspkg.ErrInternal
		}

		if balance.Add(delta).IsNegative() {
			return result, &domain.InsufficientBalanceError{
				JarKind:   j.Kind,
				Requested: delta.Neg().StringFixed(2),
				Available: balance.StringFixed(2),
			}
		}
	}

	for _, e := range arg.Entries {
		t, err := logRepo.Append(ctx, byKind[e.JarKind].ID, e, arg.ProfileID, arg.IdempotencyKey)
		if err != nil {
			return result, err
		}

		result.Transactions = append(result.Transactions, t)
	}

	// Apply balance updates in jar id order, matching the lock order.
	for _, j := range jars {
		delta, ok := deltas[j.ID]
		if !ok {
			byKind[j.Kind] = j
			continue
		}

		updated, err := jarRepo.AddBalance(ctx, delta.String(), j.ID)
		if err != nil {
			return result, err
		}

		byKind[j.Kind] = updated
	}

	if _, err := tx.ExecContext(ctx, notifyQuery, NotifyChannel, arg.ProfileID); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	result.Balances = domain.Balances{
		Spend: byKind[kindpkg.Spend].Balance,
		Save:  byKind[kindpkg.Save].Balance,
		Give:  byKind[kindpkg.Give].Balance,
	}

	return result, nil
}

// RunInterest commits one interest accrual atomically, guarded by the unique
// (profile, period) accrual row so a second run in the same calendar month
// is rejected instead of double-applied.
func (r *RepoPGS) RunInterest(ctx context.Context, arg domain.RunInterestParams) (domain.InterestResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.InterestResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if err := r.insertBatch(ctx, tx, arg.IdempotencyKey, arg.ProfileID); err != nil {
		return result, err
	}

	jarRepo := jarrepo.NewRepoPGS(tx)
	logRepo := transactionrepo.NewRepoPGS(tx)

	jars, err := jarRepo.ListForProfileLocked(ctx, arg.ProfileID)
	if err != nil {
		return result, err
	}

	var saveJar domain.Jar

	for _, j := range jars {
		if j.Kind == kindpkg.Save {
			saveJar = j
		}
	}

	if saveJar.ID == "" {
		return result, domain.ErrJarNotFound
	}

	entry := domain.BatchEntry{
		JarKind: kindpkg.Save,
		Kind:    kindpkg.Interest,
		Amount:  arg.Amount,
		Note:    arg.Note,
	}

	result.Transaction, err = logRepo.Append(ctx, saveJar.ID, entry, arg.ProfileID, arg.IdempotencyKey)
	if err != nil {
		return result, err
	}

	_, err = tx.ExecContext(ctx, insertAccrualQuery, arg.ProfileID, arg.Period, result.Transaction.ID)
	if err != nil {
		l.Info().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "interest_accruals_profile_id_period_key" {
				return domain.InterestResult{}, domain.ErrInterestAlreadyAccrued
			}
		}

		return domain.InterestResult{}, errorspkg.ErrInternal
	}

	updated, err := jarRepo.AddBalance(ctx, arg.Amount, saveJar.ID)
	if err != nil {
		return result, err
	}

	if _, err := tx.ExecContext(ctx, notifyQuery, NotifyChannel, arg.ProfileID); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	result.NewBalance = updated.Balance

	return result, nil
}

func (r *RepoPGS) insertBatch(ctx context.Context, tx *sql.Tx, key, profileID string) error {
	l := zerolog.Ctx(ctx)

	if _, err := tx.ExecContext(ctx, insertBatchQuery, key, profileID); err != nil {
		l.Info().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "ledger_batches_pkey":
				return domain.ErrBatchAlreadyApplied
			case "ledger_batches_profile_id_fkey":
				return domain.ErrProfileNotFound
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}
