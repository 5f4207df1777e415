// Package charityservice manages the read-only charity sub-ledger: the subset
// of give-jar withdrawals flagged as outbound donations.
//
// Recording a donation is not done here; it goes through the ledger facade's
// withdrawal path, which builds the charity-flagged entry so the recipient
// invariant holds by construction.
package charityservice

import (
	"context"

	"github.com/threejars/ledger/internal/domain"
)

// Repo provides data access layer interface needed by charity service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package charityservice
type Repo interface {
	ListCharity(ctx context.Context, profileID string) ([]domain.Transaction, error)
	SumCharity(ctx context.Context, profileID string) (string, error)
}

// Service facilitates charity sub-ledger logic.
type Service struct {
	repo Repo
}

// New returns charity service struct.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// ListDonations returns the profile's donations newest-first.
func (s *Service) ListDonations(ctx context.Context, profileID string) ([]domain.Transaction, error) {
	return s.repo.ListCharity(ctx, profileID)
}

// TotalDonated returns the total amount the profile has donated.
func (s *Service) TotalDonated(ctx context.Context, profileID string) (string, error) {
	return s.repo.SumCharity(ctx, profileID)
}

// Donations returns the donation list together with the total.
func (s *Service) Donations(ctx context.Context, profileID string) (domain.DonationsResult, error) {
	transactions, err := s.repo.ListCharity(ctx, profileID)
	if err != nil {
		return domain.DonationsResult{}, err
	}

	total, err := s.repo.SumCharity(ctx, profileID)
	if err != nil {
		return domain.DonationsResult{}, err
	}

	return domain.DonationsResult{Transactions: transactions, Total: total}, nil
}
