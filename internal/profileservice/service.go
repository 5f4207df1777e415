// Package profileservice manages business logic layer of profiles.
package profileservice

import (
	"context"

	"github.com/threejars/ledger/internal/domain"
)

// Repo provides data access layer interface needed by profile service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package profileservice
type Repo interface {
	Create(ctx context.Context, name string, age int32, avatarColor string) (domain.Profile, error)
	Get(ctx context.Context, id string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	GetOverview(ctx context.Context, id string) (domain.ProfileOverview, error)
}

// Service facilitates profile service layer logic.
type Service struct {
	repo Repo
}

// New returns profile service struct to manage profile bussines logic.
func New(pr Repo) *Service {
	return &Service{repo: pr}
}

// Create creates a profile together with its three jars.
func (s *Service) Create(ctx context.Context, name string, age int32, avatarColor string) (domain.Profile, error) {
	if name == "" {
		return domain.Profile{}, domain.ErrProfileNameRequired
	}

	return s.repo.Create(ctx, name, age, avatarColor)
}

// Get returns the profile with the given id.
func (s *Service) Get(ctx context.Context, id string) (domain.Profile, error) {
	return s.repo.Get(ctx, id)
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.List(ctx)
}

// GetOverview returns the profile with its jar balances and save goal.
func (s *Service) GetOverview(ctx context.Context, id string) (domain.ProfileOverview, error) {
	return s.repo.GetOverview(ctx, id)
}
