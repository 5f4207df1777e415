// Package jarrepo manages repository layer of jars.
package jarrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/dbpkg"
	"github.com/threejars/ledger/pkg/errorspkg"
)

// RepoPGS facilitates jar repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns jar RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

func scanJar(row interface{ Scan(...interface{}) error }) (domain.Jar, error) {
	var (
		j               domain.Jar
		goalAmount      sql.NullString
		goalDescription sql.NullString
	)

	err := row.Scan(
		&j.ID,
		&j.ProfileID,
		&j.Kind,
		&j.Balance,
		&goalAmount,
		&goalDescription,
		&j.CreatedAt,
	)
	if err != nil {
		return j, err
	}

	j.GoalAmount = goalAmount.String
	j.GoalDescription = goalDescription.String

	return j, nil
}

const getByKindQuery = `
SELECT
	id, profile_id, kind, balance, goal_amount, goal_description, created_at
FROM jars
WHERE profile_id = $1 AND kind = $2
`

// GetByKind returns the profile's jar of the given kind.
func (r *RepoPGS) GetByKind(ctx context.Context, profileID, kind string) (domain.Jar, error) {
	l := zerolog.Ctx(ctx)

	j, err := scanJar(r.db.QueryRowContext(ctx, getByKindQuery, profileID, kind))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJarNotFound
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const listForProfileQuery = `
SELECT
	id, profile_id, kind, balance, goal_amount, goal_description, created_at
FROM jars
WHERE profile_id = $1
ORDER BY id
`

// ListForProfile returns all jars of the profile, three for a well-formed one.
func (r *RepoPGS) ListForProfile(ctx context.Context, profileID string) ([]domain.Jar, error) {
	return r.list(ctx, listForProfileQuery, profileID)
}

const listForProfileLockedQuery = `
SELECT
	id, profile_id, kind, balance, goal_amount, goal_description, created_at
FROM jars
WHERE profile_id = $1
ORDER BY id
FOR UPDATE
`

// ListForProfileLocked returns the profile's jars locked for update, in
// consistent id order so concurrent batches cannot deadlock. Must be called
// inside a transaction.
func (r *RepoPGS) ListForProfileLocked(ctx context.Context, profileID string) ([]domain.Jar, error) {
	return r.list(ctx, listForProfileLockedQuery, profileID)
}

func (r *RepoPGS) list(ctx context.Context, query, profileID string) ([]domain.Jar, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Jar{}

	for rows.Next() {
		j, err := scanJar(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, j)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setGoalQuery = `
UPDATE jars
SET goal_amount = $1, goal_description = $2
WHERE id = $3
RETURNING id, profile_id, kind, balance, goal_amount, goal_description, created_at
`

// SetGoal updates the jar's savings goal metadata. It never touches balance.
func (r *RepoPGS) SetGoal(ctx context.Context, jarID, amount, description string) (domain.Jar, error) {
	l := zerolog.Ctx(ctx)

	j, err := scanJar(r.db.QueryRowContext(ctx, setGoalQuery, amount, description, jarID))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJarNotFound
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const addBalanceQuery = `
UPDATE jars
SET balance = balance + $1
WHERE id = $2
RETURNING id, profile_id, kind, balance, goal_amount, goal_description, created_at
`

// AddBalance changes the jar's balance by the signed amount and returns the
// changed jar. The jars_balance_check constraint is the in-store backstop
// against a negative result.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, jarID string) (domain.Jar, error) {
	l := zerolog.Ctx(ctx)

	j, err := scanJar(r.db.QueryRowContext(ctx, addBalanceQuery, amount, jarID))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJarNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "jars_balance_check" {
				return j, &domain.InsufficientBalanceError{JarKind: j.Kind}
			}
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}
