// Package profilerepo manages repository layer of profiles.
package profilerepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/dbpkg"
	"github.com/threejars/ledger/pkg/errorspkg"
	"github.com/threejars/ledger/pkg/kindpkg"
)

// RepoPGS facilitates profile repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewRepoPGS returns profile RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createProfileQuery = `
INSERT INTO
    profiles (name, age, avatar_color)
VALUES
    ($1, $2, $3)
RETURNING id, name, age, avatar_color, created_at
`

const createJarQuery = `
INSERT INTO
    jars (profile_id, kind)
VALUES
    ($1, $2)
RETURNING id
`

// Create creates the profile together with its three jars in one transaction
// and then returns it. A profile is never observable without a full jar set.
func (r *RepoPGS) Create(ctx context.Context, name string, age int32, avatarColor string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	var p domain.Profile

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return p, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	row := tx.QueryRowContext(ctx, createProfileQuery, name, age, avatarColor)

	var nullAge sql.NullInt32

	err = row.Scan(
		&p.ID,
		&p.Name,
		&nullAge,
		&p.AvatarColor,
		&p.CreatedAt,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Profile{}, errorspkg.ErrInternal
	}

	p.Age = nullAge.Int32

	for _, kind := range kindpkg.JarKinds {
		var jarID string
		if err := tx.QueryRowContext(ctx, createJarQuery, p.ID, kind).Scan(&jarID); err != nil {
			l.Error().Err(err).Send()

			if pqErr, ok := err.(*pq.Error); ok {
				if pqErr.Constraint == "jars_profile_id_kind_key" {
					return domain.Profile{}, domain.ErrJarAlreadyExists
				}
			}

			return domain.Profile{}, errorspkg.ErrInternal
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Profile{}, errorspkg.ErrInternal
	}

	return p, nil
}

const getProfileQuery = `
SELECT
	id, name, age, avatar_color, created_at
FROM profiles
WHERE id = $1
`

// Get returns the profile with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getProfileQuery, id)

	var (
		p       domain.Profile
		nullAge sql.NullInt32
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&nullAge,
		&p.AvatarColor,
		&p.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrProfileNotFound
		}

		return p, errorspkg.ErrInternal
	}

	p.Age = nullAge.Int32

	return p, nil
}

const listProfilesQuery = `
SELECT
	id, name, age, avatar_color, created_at
FROM profiles
ORDER BY age DESC NULLS LAST, created_at
`

// List returns all profiles ordered oldest child first.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listProfilesQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Profile{}

	for rows.Next() {
		var (
			p       domain.Profile
			nullAge sql.NullInt32
		)

		if err := rows.Scan(&p.ID, &p.Name, &nullAge, &p.AvatarColor, &p.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		p.Age = nullAge.Int32

		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const getOverviewQuery = `
SELECT
	p.id, p.name, p.age, p.avatar_color, p.created_at,
	COALESCE(MAX(CASE WHEN j.kind = 'spend' THEN j.balance END), 0) AS spend_balance,
	COALESCE(MAX(CASE WHEN j.kind = 'save' THEN j.balance END), 0) AS save_balance,
	COALESCE(MAX(CASE WHEN j.kind = 'give' THEN j.balance END), 0) AS give_balance,
	MAX(CASE WHEN j.kind = 'save' THEN j.goal_amount END) AS save_goal
FROM profiles p
LEFT JOIN jars j ON j.profile_id = p.id
WHERE p.id = $1
GROUP BY p.id
`

// GetOverview returns the profile together with its three jar balances and
// the save jar goal, if any.
func (r *RepoPGS) GetOverview(ctx context.Context, id string) (domain.ProfileOverview, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getOverviewQuery, id)

	var (
		o        domain.ProfileOverview
		nullAge  sql.NullInt32
		saveGoal sql.NullString
	)

	err := row.Scan(
		&o.ID,
		&o.Name,
		&nullAge,
		&o.AvatarColor,
		&o.CreatedAt,
		&o.SpendBalance,
		&o.SaveBalance,
		&o.GiveBalance,
		&saveGoal,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return o, domain.ErrProfileNotFound
		}

		return o, errorspkg.ErrInternal
	}

	o.Age = nullAge.Int32
	o.SaveGoal = saveGoal.String

	return o, nil
}
