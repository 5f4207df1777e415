// Package jarservice manages business logic layer of jars.
package jarservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/threejars/ledger/internal/domain"
)

// Repo provides data access layer interface needed by jar service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package jarservice
type Repo interface {
	GetByKind(ctx context.Context, profileID, kind string) (domain.Jar, error)
	ListForProfile(ctx context.Context, profileID string) ([]domain.Jar, error)
	SetGoal(ctx context.Context, jarID, amount, description string) (domain.Jar, error)
}

// Service facilitates jar service layer logic.
type Service struct {
	repo Repo
}

// New returns jar service struct to manage jar bussines logic.
func New(jr Repo) *Service {
	return &Service{repo: jr}
}

// GetByKind returns the profile's jar of the given kind.
func (s *Service) GetByKind(ctx context.Context, profileID, kind string) (domain.Jar, error) {
	return s.repo.GetByKind(ctx, profileID, kind)
}

// ListForProfile returns all jars of the profile.
func (s *Service) ListForProfile(ctx context.Context, profileID string) ([]domain.Jar, error) {
	jars, err := s.repo.ListForProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if len(jars) == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return jars, nil
}

// SetGoal updates the jar's savings goal. Metadata only, balance is untouched.
func (s *Service) SetGoal(ctx context.Context, jarID, amount, description string) (domain.Jar, error) {
	l := zerolog.Ctx(ctx)

	goal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Jar{}, domain.ErrInvalidAmount
	}

	if goal.LessThanOrEqual(decimal.Zero) {
		return domain.Jar{}, domain.ErrNonPositiveAmount
	}

	return s.repo.SetGoal(ctx, jarID, amount, description)
}
