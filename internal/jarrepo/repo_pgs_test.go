package jarrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/internal/profilerepo"
	"github.com/threejars/ledger/pkg/configpkg"
	"github.com/threejars/ledger/pkg/kindpkg"
	"github.com/threejars/ledger/pkg/randompkg"
)

var (
	testRepo        *RepoPGS
	testProfileRepo *profilerepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)
	testProfileRepo = profilerepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomProfile(t *testing.T) domain.Profile {
	profile, err := testProfileRepo.Create(context.Background(),
		randompkg.Name(), randompkg.IntBetween(5, 18), randompkg.AvatarColor())
	require.NoError(t, err)
	require.NotEmpty(t, profile)

	return profile
}

func TestListForProfile(t *testing.T) {
	profile := createRandomProfile(t)

	jars, err := testRepo.ListForProfile(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, jars, len(kindpkg.JarKinds))

	kinds := make(map[string]bool, len(jars))

	for _, j := range jars {
		require.Equal(t, profile.ID, j.ProfileID)
		require.Equal(t, "0.00", j.Balance)
		require.NotZero(t, j.CreatedAt)

		kinds[j.Kind] = true
	}

	for _, kind := range kindpkg.JarKinds {
		require.True(t, kinds[kind])
	}
}

func TestGetByKind(t *testing.T) {
	profile := createRandomProfile(t)

	for _, kind := range kindpkg.JarKinds {
		jar, err := testRepo.GetByKind(context.Background(), profile.ID, kind)
		require.NoError(t, err)
		require.Equal(t, kind, jar.Kind)
		require.Equal(t, profile.ID, jar.ProfileID)
	}
}

func TestGetByKindNotFound(t *testing.T) {
	jar, err := testRepo.GetByKind(context.Background(), uuid.NewString(), kindpkg.Save)
	require.EqualError(t, err, domain.ErrJarNotFound.Error())
	require.Empty(t, jar)
}

func TestSetGoal(t *testing.T) {
	profile := createRandomProfile(t)

	saveJar, err := testRepo.GetByKind(context.Background(), profile.ID, kindpkg.Save)
	require.NoError(t, err)

	updated, err := testRepo.SetGoal(context.Background(), saveJar.ID, "150.00", "new bike")
	require.NoError(t, err)

	require.Equal(t, saveJar.ID, updated.ID)
	require.Equal(t, "150.00", updated.GoalAmount)
	require.Equal(t, "new bike", updated.GoalDescription)
	require.Equal(t, saveJar.Balance, updated.Balance)
}

func TestSetGoalNotFound(t *testing.T) {
	jar, err := testRepo.SetGoal(context.Background(), uuid.NewString(), "150.00", "new bike")
	require.EqualError(t, err, domain.ErrJarNotFound.Error())
	require.Empty(t, jar)
}

func TestAddBalance(t *testing.T) {
	profile := createRandomProfile(t)

	spendJar, err := testRepo.GetByKind(context.Background(), profile.ID, kindpkg.Spend)
	require.NoError(t, err)

	jar, err := testRepo.AddBalance(context.Background(), "50", spendJar.ID)
	require.NoError(t, err)
	require.Equal(t, "50.00", jar.Balance)

	jar, err = testRepo.AddBalance(context.Background(), "-20", spendJar.ID)
	require.NoError(t, err)
	require.Equal(t, "30.00", jar.Balance)
}

func TestAddBalanceBelowZero(t *testing.T) {
	profile := createRandomProfile(t)

	spendJar, err := testRepo.GetByKind(context.Background(), profile.ID, kindpkg.Spend)
	require.NoError(t, err)

	_, err = testRepo.AddBalance(context.Background(), "10", spendJar.ID)
	require.NoError(t, err)

	_, err = testRepo.AddBalance(context.Background(), "-10.01", spendJar.ID)

	var insufficient *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)

	// The rejected update left the balance untouched.
	jar, err := testRepo.GetByKind(context.Background(), profile.ID, kindpkg.Spend)
	require.NoError(t, err)
	require.Equal(t, "10.00", jar.Balance)
}
