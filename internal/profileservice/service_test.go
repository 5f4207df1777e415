package profileservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	profile := domain.Profile{
		ID:          uuid.NewString(),
		Name:        randompkg.Name(),
		Age:         randompkg.IntBetween(5, 18),
		AvatarColor: randompkg.AvatarColor(),
		CreatedAt:   time.Now().Truncate(time.Second).UTC(),
	}

	testCases := []struct {
		name          string
		profileName   string
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.Profile, err error)
	}{
		{
			name:        "OK",
			profileName: profile.Name,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Eq(profile.Name), gomock.Eq(profile.Age), gomock.Eq(profile.AvatarColor)).
					Times(1).
					Return(profile, nil)
			},
			checkResponse: func(got domain.Profile, err error) {
				require.NoError(t, err)
				require.Equal(t, profile, got)
			},
		},
		{
			name:        "EmptyName",
			profileName: "",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(got domain.Profile, err error) {
				require.EqualError(t, err, domain.ErrProfileNameRequired.Error())
				require.Empty(t, got)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			got, err := service.Create(context.Background(), tc.profileName, profile.Age, profile.AvatarColor)
			tc.checkResponse(got, err)
		})
	}
}

func TestGetOverview(t *testing.T) {
	profileID := uuid.NewString()

	overview := domain.ProfileOverview{
		Profile:      domain.Profile{ID: profileID, Name: randompkg.Name()},
		SpendBalance: "30.00",
		SaveBalance:  "115.00",
		GiveBalance:  "85.00",
		SaveGoal:     "150.00",
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().GetOverview(gomock.Any(), gomock.Eq(profileID)).Times(1).Return(overview, nil)

	service := New(repo)

	got, err := service.GetOverview(context.Background(), profileID)
	require.NoError(t, err)
	require.Equal(t, overview, got)
}
