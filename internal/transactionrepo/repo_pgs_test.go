package transactionrepo

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
	"github.com/threejars/ledger/internal/jarrepo"
	"github.com/threejars/ledger/internal/profilerepo"
	"github.com/threejars/ledger/pkg/configpkg"
	"github.com/threejars/ledger/pkg/kindpkg"
	"github.com/threejars/ledger/pkg/randompkg"
)

var (
	testRepo        *RepoPGS
	testJarRepo     *jarrepo.RepoPGS
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
	testJarRepo = jarrepo.NewRepoPGS(testDB)
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

func getJar(t *testing.T, profileID, kind string) domain.Jar {
	jar, err := testJarRepo.GetByKind(context.Background(), profileID, kind)
	require.NoError(t, err)

	return jar
}

func appendEntry(t *testing.T, profileID string, e domain.BatchEntry) domain.Transaction {
	jar := getJar(t, profileID, e.JarKind)

	transaction, err := testRepo.Append(context.Background(), jar.ID, e, profileID, "")
	require.NoError(t, err)
	require.NotEmpty(t, transaction)

	return transaction
}

func TestAppend(t *testing.T) {
	profile := createRandomProfile(t)

	entry := domain.BatchEntry{
		JarKind: kindpkg.Spend,
		Kind:    kindpkg.Deposit,
		Amount:  randompkg.MoneyAmountBetween(1, 100),
		Note:    "weekly allowance",
	}

	transaction := appendEntry(t, profile.ID, entry)

	require.Equal(t, profile.ID, transaction.ProfileID)
	require.Equal(t, entry.Kind, transaction.Kind)
	require.Equal(t, entry.JarKind, transaction.JarKind)
	require.Equal(t, entry.Amount, transaction.Amount)
	require.Equal(t, entry.Note, transaction.Note)
	require.False(t, transaction.IsCharityLog)
	require.Empty(t, transaction.BatchKey)

	require.NotZero(t, transaction.ID)
	require.NotZero(t, transaction.CreatedAt)
}

func TestAppendConstraintViolations(t *testing.T) {
	profile := createRandomProfile(t)
	giveJar := getJar(t, profile.ID, kindpkg.Give)

	testCases := []struct {
		name    string
		jarID   string
		entry   domain.BatchEntry
		wantErr error
	}{
		{
			name:    "NegativeAmount",
			jarID:   giveJar.ID,
			entry:   domain.BatchEntry{JarKind: kindpkg.Give, Kind: kindpkg.Deposit, Amount: "-5"},
			wantErr: domain.ErrNonPositiveAmount,
		},
		{
			name:    "ZeroAmount",
			jarID:   giveJar.ID,
			entry:   domain.BatchEntry{JarKind: kindpkg.Give, Kind: kindpkg.Deposit, Amount: "0"},
			wantErr: domain.ErrNonPositiveAmount,
		},
		{
			name:  "CharityFlagOnDeposit",
			jarID: giveJar.ID,
			entry: domain.BatchEntry{
				JarKind: kindpkg.Give, Kind: kindpkg.Deposit, Amount: "10",
				IsCharityLog: true, CharityRecipient: "food bank",
			},
			wantErr: domain.ErrCharityFlagInvalid,
		},
		{
			name:  "CharityFlagWithoutRecipient",
			jarID: giveJar.ID,
			entry: domain.BatchEntry{
				JarKind: kindpkg.Give, Kind: kindpkg.Withdrawal, Amount: "10",
				IsCharityLog: true,
			},
			wantErr: domain.ErrCharityFlagInvalid,
		},
		{
			name:    "UnknownJar",
			jarID:   uuid.NewString(),
			entry:   domain.BatchEntry{JarKind: kindpkg.Give, Kind: kindpkg.Deposit, Amount: "10"},
			wantErr: domain.ErrJarNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transaction, err := testRepo.Append(context.Background(), tc.jarID, tc.entry, profile.ID, "")
			require.EqualError(t, err, tc.wantErr.Error())
			require.Empty(t, transaction)
		})
	}
}

func TestList(t *testing.T) {
	profile := createRandomProfile(t)

	appendEntry(t, profile.ID, domain.BatchEntry{JarKind: kindpkg.Spend, Kind: kindpkg.Deposit, Amount: "20"})
	appendEntry(t, profile.ID, domain.BatchEntry{JarKind: kindpkg.Save, Kind: kindpkg.Deposit, Amount: "30"})
	latest := appendEntry(t, profile.ID, domain.BatchEntry{JarKind: kindpkg.Spend, Kind: kindpkg.Withdrawal, Amount: "5"})

	t.Run("AllNewestFirst", func(t *testing.T) {
		transactions, err := testRepo.List(context.Background(), domain.ListTransactionsParams{ProfileID: profile.ID})
		require.NoError(t, err)
		require.Len(t, transactions, 3)
		require.Equal(t, latest.ID, transactions[0].ID)
	})

	t.Run("FilterByKind", func(t *testing.T) {
		transactions, err := testRepo.List(context.Background(), domain.ListTransactionsParams{
			ProfileID: profile.ID,
			Kind:      kindpkg.Deposit,
		})
		require.NoError(t, err)
		require.Len(t, transactions, 2)

		for _, tr := range transactions {
			require.Equal(t, kindpkg.Deposit, tr.Kind)
		}
	})

	t.Run("FilterByJarKind", func(t *testing.T) {
		transactions, err := testRepo.List(context.Background(), domain.ListTransactionsParams{
			ProfileID: profile.ID,
			JarKind:   kindpkg.Save,
		})
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		require.Equal(t, kindpkg.Save, transactions[0].JarKind)
	})

	t.Run("Limit", func(t *testing.T) {
		transactions, err := testRepo.List(context.Background(), domain.ListTransactionsParams{
			ProfileID: profile.ID,
			Limit:     1,
		})
		require.NoError(t, err)
		require.Len(t, transactions, 1)
	})
}

func TestCharitySubLedger(t *testing.T) {
	profile := createRandomProfile(t)

	appendEntry(t, profile.ID, domain.BatchEntry{JarKind: kindpkg.Give, Kind: kindpkg.Deposit, Amount: "50"})
	appendEntry(t, profile.ID, domain.BatchEntry{
		JarKind: kindpkg.Give, Kind: kindpkg.Withdrawal, Amount: "10",
		IsCharityLog: true, CharityRecipient: "animal shelter",
	})
	appendEntry(t, profile.ID, domain.BatchEntry{
		JarKind: kindpkg.Give, Kind: kindpkg.Withdrawal, Amount: "15",
		IsCharityLog: true, CharityRecipient: "food bank",
	})

	transactions, err := testRepo.ListCharity(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	for _, tr := range transactions {
		require.True(t, tr.IsCharityLog)
		require.NotEmpty(t, tr.CharityRecipient)
	}

	total, err := testRepo.SumCharity(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Equal(t, "25.00", total)
}

func TestSumCharityEmpty(t *testing.T) {
	profile := createRandomProfile(t)

	total, err := testRepo.SumCharity(context.Background(), profile.ID)
	require.NoError(t, err)
	require.Equal(t, "0", total)
}
