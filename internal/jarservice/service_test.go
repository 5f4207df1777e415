package jarservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/kindpkg"
	"github.com/threejars/ledger/pkg/randompkg"
)

func randomJar(profileID, kind string) domain.Jar {
	return domain.Jar{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Kind:      kind,
		Balance:   randompkg.MoneyAmountBetween(0, 100),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestListForProfile(t *testing.T) {
	profileID := uuid.NewString()

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(jars []domain.Jar, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				jars := []domain.Jar{
					randomJar(profileID, kindpkg.Spend),
					randomJar(profileID, kindpkg.Save),
					randomJar(profileID, kindpkg.Give),
				}

				repo.EXPECT().ListForProfile(gomock.Any(), gomock.Eq(profileID)).Times(1).Return(jars, nil)
			},
			checkResponse: func(jars []domain.Jar, err error) {
				require.NoError(t, err)
				require.Len(t, jars, 3)
			},
		},
		{
			name: "NoJarsMeansNoProfile",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListForProfile(gomock.Any(), gomock.Eq(profileID)).Times(1).Return([]domain.Jar{}, nil)
			},
			checkResponse: func(jars []domain.Jar, err error) {
				require.EqualError(t, err, domain.ErrProfileNotFound.Error())
				require.Empty(t, jars)
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

			jars, err := service.ListForProfile(context.Background(), profileID)
			tc.checkResponse(jars, err)
		})
	}
}

func TestSetGoal(t *testing.T) {
	jarID := uuid.NewString()

	testCases := []struct {
		name          string
		amount        string
		buildStubs    func(repo *MockRepo)
		checkResponse func(jar domain.Jar, err error)
	}{
		{
			name:   "OK",
			amount: "150.00",
			buildStubs: func(repo *MockRepo) {
				want := domain.Jar{ID: jarID, Kind: kindpkg.Save, GoalAmount: "150.00", GoalDescription: "new bike"}

				repo.EXPECT().
					SetGoal(gomock.Any(), gomock.Eq(jarID), gomock.Eq("150.00"), gomock.Eq("new bike")).
					Times(1).
					Return(want, nil)
			},
			checkResponse: func(jar domain.Jar, err error) {
				require.NoError(t, err)
				require.Equal(t, "150.00", jar.GoalAmount)
			},
		},
		{
			name:   "NotANumber",
			amount: "lots",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().SetGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(jar domain.Jar, err error) {
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
				require.Empty(t, jar)
			},
		},
		{
			name:   "ZeroGoal",
			amount: "0",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().SetGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(jar domain.Jar, err error) {
				require.EqualError(t, err, domain.ErrNonPositiveAmount.Error())
			},
		},
		{
			name:   "JarNotFound",
			amount: "150.00",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					SetGoal(gomock.Any(), gomock.Eq(jarID), gomock.Eq("150.00"), gomock.Eq("new bike")).
					Times(1).
					Return(domain.Jar{}, domain.ErrJarNotFound)
			},
			checkResponse: func(jar domain.Jar, err error) {
				require.EqualError(t, err, domain.ErrJarNotFound.Error())
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

			jar, err := service.SetGoal(context.Background(), jarID, tc.amount, "new bike")
			tc.checkResponse(jar, err)
		})
	}
}
