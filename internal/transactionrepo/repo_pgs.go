// Package transactionrepo manages repository layer of the append-only transaction log.
//
// The log is the system of record: rows are only ever inserted, never updated
// or deleted. Corrections are represented as new offsetting transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/dbpkg"
	"github.com/threejars/ledger/pkg/errorspkg"
)

// Default and maximum history query sizes.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// RepoPGS facilitates transaction log repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction log RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const appendQuery = `
INSERT INTO
    transactions (jar_id, profile_id, kind, jar_kind, amount, note, is_charity_log, charity_recipient, batch_key)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, jar_id, profile_id, kind, jar_kind, amount, note, is_charity_log, charity_recipient, batch_key, created_at
`

// Append inserts one entry of a batch and returns the stored record with
// identity and timestamp assigned. It is called only inside the enclosing
// ledger transaction so a failed batch leaves no rows behind.
func (r *RepoPGS) Append(ctx context.Context, jarID string, e domain.BatchEntry, profileID, batchKey string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var recipient sql.NullString
	if e.CharityRecipient != "" {
		recipient = sql.NullString{String: e.CharityRecipient, Valid: true}
	}

	var key sql.NullString
	if batchKey != "" {
		key = sql.NullString{String: batchKey, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, appendQuery,
		jarID, profileID, e.Kind, e.JarKind, e.Amount, e.Note, e.IsCharityLog, recipient, key)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_amount_check":
				return t, domain.ErrNonPositiveAmount
			case "transactions_charity_check":
				return t, domain.ErrCharityFlagInvalid
			case "transactions_jar_id_fkey":
				return t, domain.ErrJarNotFound
			case "transactions_profile_id_fkey":
				return t, domain.ErrProfileNotFound
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

func scanTransaction(row interface{ Scan(...interface{}) error }) (domain.Transaction, error) {
	var (
		t         domain.Transaction
		recipient sql.NullString
		batchKey  sql.NullString
	)

	err := row.Scan(
		&t.ID,
		&t.JarID,
		&t.ProfileID,
		&t.Kind,
		&t.JarKind,
		&t.Amount,
		&t.Note,
		&t.IsCharityLog,
		&recipient,
		&batchKey,
		&t.CreatedAt,
	)
	if err != nil {
		return t, err
	}

	t.CharityRecipient = recipient.String
	t.BatchKey = batchKey.String

	return t, nil
}

const listQuery = `
SELECT
	id, jar_id, profile_id, kind, jar_kind, amount, note, is_charity_log, charity_recipient, batch_key, created_at
FROM transactions
WHERE
    profile_id = $1
    AND ($2 = '' OR kind = $2)
    AND ($3 = '' OR jar_kind = $3)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

// List returns the profile's transactions newest-first, optionally filtered
// by kind and jar kind. The limit is capped to bound result size.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error) {
	limit := arg.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return r.query(ctx, listQuery, arg.ProfileID, arg.Kind, arg.JarKind, limit)
}

const listCharityQuery = `
SELECT
	id, jar_id, profile_id, kind, jar_kind, amount, note, is_charity_log, charity_recipient, batch_key, created_at
FROM transactions
WHERE profile_id = $1 AND is_charity_log
ORDER BY created_at DESC, id DESC
`

// ListCharity returns the profile's donation entries newest-first.
func (r *RepoPGS) ListCharity(ctx context.Context, profileID string) ([]domain.Transaction, error) {
	return r.query(ctx, listCharityQuery, profileID)
}

const sumCharityQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM transactions
WHERE profile_id = $1 AND is_charity_log
`

// SumCharity returns the total amount the profile has donated.
func (r *RepoPGS) SumCharity(ctx context.Context, profileID string) (string, error) {
	l := zerolog.Ctx(ctx)

	var total string
	if err := r.db.QueryRowContext(ctx, sumCharityQuery, profileID).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return total, nil
}

const listByBatchQuery = `
SELECT
	id, jar_id, profile_id, kind, jar_kind, amount, note, is_charity_log, charity_recipient, batch_key, created_at
FROM transactions
WHERE batch_key = $1
ORDER BY id
`

// ListByBatch returns the transactions committed under the given idempotency
// key, so a retried commit can be answered without re-applying it.
func (r *RepoPGS) ListByBatch(ctx context.Context, batchKey string) ([]domain.Transaction, error) {
	return r.query(ctx, listByBatchQuery, batchKey)
}

func (r *RepoPGS) query(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
