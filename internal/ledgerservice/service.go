// Package ledgerservice manages the ledger facade: the single entry point for
// all money movement.
//
// Every operation follows the same three-phase protocol: validate the shape
// of each proposed entry, authorize balances for withdrawals, then commit the
// log append and balance updates as one atomic unit. A failure in any phase
// rejects the whole batch; there is no partially-committed state.
package ledgerservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/internal/jardelivery"
	"github.com/threejars/ledger/pkg/interestpkg"
	"github.com/threejars/ledger/pkg/kindpkg"
)

// Repo provides the atomic commit interface needed by the facade.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	ExecBatch(ctx context.Context, arg domain.ExecBatchParams) (domain.BatchResult, error)
	RunInterest(ctx context.Context, arg domain.RunInterestParams) (domain.InterestResult, error)
}

// LogRepo provides the transaction log read interface needed by the facade.
type LogRepo interface {
	List(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error)
	ListByBatch(ctx context.Context, batchKey string) ([]domain.Transaction, error)
}

// CharityViewer provides the charity sub-ledger view needed by the facade.
type CharityViewer interface {
	Donations(ctx context.Context, profileID string) (domain.DonationsResult, error)
}

// Service facilitates ledger facade logic.
type Service struct {
	repo       Repo
	logRepo    LogRepo
	jarService jardelivery.Service
	charity    CharityViewer
}

// New returns ledger service struct to manage ledger operations.
func New(lr Repo, tr LogRepo, js jardelivery.Service, cs CharityViewer) *Service {
	return &Service{
		repo:       lr,
		logRepo:    tr,
		jarService: js,
		charity:    cs,
	}
}

// DepositBatch adds money to one or more jars atomically.
func (s *Service) DepositBatch(ctx context.Context, profileID, idempotencyKey string, items []domain.BatchItem) (domain.BatchResult, error) {
	entries := make([]domain.BatchEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, domain.BatchEntry{
			JarKind: item.JarKind,
			Kind:    kindpkg.Deposit,
			Amount:  item.Amount,
			Note:    item.Note,
		})
	}

	return s.execBatch(ctx, profileID, idempotencyKey, entries)
}

// WithdrawBatch removes money from one or more jars atomically. The whole
// batch is rejected if any jar's balance would go negative.
func (s *Service) WithdrawBatch(ctx context.Context, profileID, idempotencyKey string, items []domain.BatchItem) (domain.BatchResult, error) {
	entries := make([]domain.BatchEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, domain.BatchEntry{
			JarKind: item.JarKind,
			Kind:    kindpkg.Withdrawal,
			Amount:  item.Amount,
			Note:    item.Note,
		})
	}

	return s.execBatch(ctx, profileID, idempotencyKey, entries)
}

// RecordDonation withdraws from the give jar with the charity flag and
// recipient attached, so every donation satisfies the charity log shape by
// construction.
func (s *Service) RecordDonation(ctx context.Context, profileID, idempotencyKey, amount, recipient, note string) (domain.DonationResult, error) {
	entry := domain.BatchEntry{
		JarKind:          kindpkg.Give,
		Kind:             kindpkg.Withdrawal,
		Amount:           amount,
		Note:             note,
		IsCharityLog:     true,
		CharityRecipient: recipient,
	}

	result, err := s.execBatch(ctx, profileID, idempotencyKey, []domain.BatchEntry{entry})
	if err != nil {
		return domain.DonationResult{}, err
	}

	if len(result.Transactions) == 0 {
		return domain.DonationResult{}, domain.ErrBatchAlreadyApplied
	}

	return domain.DonationResult{
		Transaction: result.Transactions[0],
		NewBalance:  result.Balances.Give,
	}, nil
}

// RunInterest applies the monthly interest policy to the profile's save jar,
// at most once per calendar month.
func (s *Service) RunInterest(ctx context.Context, profileID, idempotencyKey string) (domain.InterestResult, error) {
	l := zerolog.Ctx(ctx)

	saveJar, err := s.jarService.GetByKind(ctx, profileID, kindpkg.Save)
	if err != nil {
		return domain.InterestResult{}, err
	}

	balance, err := decimal.NewFromString(saveJar.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.InterestResult{}, domain.ErrInvalidAmount
	}

	accrual := interestpkg.Compute(balance)

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	arg := domain.RunInterestParams{
		ProfileID:      profileID,
		IdempotencyKey: idempotencyKey,
		Period:         interestpkg.Period(time.Now().UTC()),
		Amount:         accrual.Amount.StringFixed(2),
		Note:           interestpkg.Describe(balance, accrual),
	}

	result, err := s.repo.RunInterest(ctx, arg)
	if err == domain.ErrBatchAlreadyApplied {
		return s.replayInterest(ctx, profileID, idempotencyKey)
	}

	if err != nil {
		return domain.InterestResult{}, err
	}

	return result, nil
}

// GetBalances returns the current balance of each of the profile's jars.
func (s *Service) GetBalances(ctx context.Context, profileID string) (domain.Balances, error) {
	jars, err := s.jarService.ListForProfile(ctx, profileID)
	if err != nil {
		return domain.Balances{}, err
	}

	return balancesFromJars(jars), nil
}

// GetHistory returns the profile's transactions newest-first with optional
// kind and jar kind filters.
func (s *Service) GetHistory(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error) {
	if arg.Kind != "" && !kindpkg.IsSupportedTransactionKind(arg.Kind) {
		return nil, domain.ErrUnsupportedTransactionKind
	}

	if arg.JarKind != "" && !kindpkg.IsSupportedJarKind(arg.JarKind) {
		return nil, domain.ErrUnsupportedJarKind
	}

	return s.logRepo.List(ctx, arg)
}

// GetDonations returns the charity sub-ledger with its total.
func (s *Service) GetDonations(ctx context.Context, profileID string) (domain.DonationsResult, error) {
	return s.charity.Donations(ctx, profileID)
}

func (s *Service) execBatch(ctx context.Context, profileID, idempotencyKey string, entries []domain.BatchEntry) (domain.BatchResult, error) {
	l := zerolog.Ctx(ctx)

	// Phase 1: validate shape, fail fast on the first violation.
	if len(entries) == 0 {
		return domain.BatchResult{}, domain.ErrEmptyBatch
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			l.Info().Err(err).Send()
			return domain.BatchResult{}, err
		}
	}

	// Phase 2: authorize-check balances for withdrawals. The repo re-checks
	// under row locks; this pass rejects obvious insufficiency before any
	// durable write.
	if err := s.authorizeWithdrawals(ctx, profileID, entries); err != nil {
		return domain.BatchResult{}, err
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	// Phase 3: commit as one atomic unit.
	result, err := s.repo.ExecBatch(ctx, domain.ExecBatchParams{
		ProfileID:      profileID,
		IdempotencyKey: idempotencyKey,
		Entries:        entries,
	})

	if err == domain.ErrBatchAlreadyApplied {
		// A retried commit is a no-op: answer with the already-committed
		// transactions and current balances.
		return s.replayBatch(ctx, profileID, idempotencyKey)
	}

	if err != nil {
		return domain.BatchResult{}, err
	}

	return result, nil
}

func (s *Service) authorizeWithdrawals(ctx context.Context, profileID string, entries []domain.BatchEntry) error {
	withdrawals := make(map[string]decimal.Decimal)

	for _, e := range entries {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return domain.ErrInvalidAmount
		}

		switch e.Kind {
		case kindpkg.Withdrawal:
			withdrawals[e.JarKind] = withdrawals[e.JarKind].Add(amount)
		case kindpkg.Deposit, kindpkg.Interest:
			withdrawals[e.JarKind] = withdrawals[e.JarKind].Sub(amount)
		}
	}

	hasWithdrawal := false

	for _, net := range withdrawals {
		if net.IsPositive() {
			hasWithdrawal = true
		}
	}

	if !hasWithdrawal {
		return nil
	}

	jars, err := s.jarService.ListForProfile(ctx, profileID)
	if err != nil {
		return err
	}

	for _, j := range jars {
		net, ok := withdrawals[j.Kind]
		if !ok || !net.IsPositive() {
			continue
		}

		balance, err := decimal.NewFromString(j.Balance)
		if err != nil {
			return domain.ErrInvalidAmount
		}

		if balance.LessThan(net) {
			return &domain.InsufficientBalanceError{
				JarKind:   j.Kind,
				Requested: net.StringFixed(2),
				Available: balance.StringFixed(2),
			}
		}
	}

	return nil
}

func (s *Service) replayBatch(ctx context.Context, profileID, idempotencyKey string) (domain.BatchResult, error) {
	transactions, err := s.logRepo.ListByBatch(ctx, idempotencyKey)
	if err != nil {
		return domain.BatchResult{}, err
	}

	jars, err := s.jarService.ListForProfile(ctx, profileID)
	if err != nil {
		return domain.BatchResult{}, err
	}

	return domain.BatchResult{
		Transactions: transactions,
		Balances:     balancesFromJars(jars),
	}, nil
}

func (s *Service) replayInterest(ctx context.Context, profileID, idempotencyKey string) (domain.InterestResult, error) {
	transactions, err := s.logRepo.ListByBatch(ctx, idempotencyKey)
	if err != nil {
		return domain.InterestResult{}, err
	}

	if len(transactions) == 0 {
		return domain.InterestResult{}, domain.ErrBatchAlreadyApplied
	}

	saveJar, err := s.jarService.GetByKind(ctx, profileID, kindpkg.Save)
	if err != nil {
		return domain.InterestResult{}, err
	}

	return domain.InterestResult{
		Transaction: transactions[0],
		NewBalance:  saveJar.Balance,
	}, nil
}

func balancesFromJars(jars []domain.Jar) domain.Balances {
	var b domain.Balances

	for _, j := range jars {
		switch j.Kind {
		case kindpkg.Spend:
			b.Spend = j.Balance
		case kindpkg.Save:
			b.Save = j.Balance
		case kindpkg.Give:
			b.Give = j.Balance
		}
	}

	return b
}
