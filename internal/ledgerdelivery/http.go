// Package ledgerdelivery manages delivery layer of ledger operations.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/errorspkg"
	"github.com/threejars/ledger/pkg/jsonresponse"
)

// IdempotencyKeyHeader carries the caller-generated batch token that makes a
// retried commit a no-op instead of a duplicate.
const IdempotencyKeyHeader = "Idempotency-Key"

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	DepositBatch(ctx context.Context, profileID, idempotencyKey string, items []domain.BatchItem) (domain.BatchResult, error)
	WithdrawBatch(ctx context.Context, profileID, idempotencyKey string, items []domain.BatchItem) (domain.BatchResult, error)
	RunInterest(ctx context.Context, profileID, idempotencyKey string) (domain.InterestResult, error)
	RecordDonation(ctx context.Context, profileID, idempotencyKey, amount, recipient, note string) (domain.DonationResult, error)
	GetBalances(ctx context.Context, profileID string) (domain.Balances, error)
	GetHistory(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, error)
	GetDonations(ctx context.Context, profileID string) (domain.DonationsResult, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

type profileURI struct {
	ProfileID string `uri:"id" binding:"required,uuid"`
}

type batchItemRequest struct {
	JarKind string `json:"jar_kind" binding:"required,jarkind"`
	Amount  string `json:"amount" binding:"required"`
	Note    string `json:"note"`
}

type batchRequest struct {
	Entries []batchItemRequest `json:"entries" binding:"required,min=1,max=10,dive"`
}

type dataBatch struct {
	Transactions []domain.Transaction `json:"transactions"`
	Balances     domain.Balances      `json:"balances"`
}

type responseBatch struct {
	Data dataBatch `json:"data"`
}

func idempotencyKey(gctx *gin.Context) (string, error) {
	key := gctx.GetHeader(IdempotencyKeyHeader)
	if key == "" {
		return "", nil
	}

	if _, err := uuid.Parse(key); err != nil {
		return "", err
	}

	return key, nil
}

func bindBatch(gctx *gin.Context) (profileURI, batchRequest, string, bool) {
	l := zerolog.Ctx(gctx.Request.Context())

	var uri profileURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return uri, batchRequest{}, "", false
	}

	var req batchRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Message(jsonresponse.BindErrorMsg(ve)))
			return uri, req, "", false
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return uri, req, "", false
	}

	key, err := idempotencyKey(gctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Message("Idempotency-Key header must be a uuid"))

		return uri, req, "", false
	}

	return uri, req, key, true
}

func batchItems(req batchRequest) []domain.BatchItem {
	items := make([]domain.BatchItem, 0, len(req.Entries))
	for _, e := range req.Entries {
		items = append(items, domain.BatchItem{JarKind: e.JarKind, Amount: e.Amount, Note: e.Note})
	}

	return items
}

func writeLedgerError(gctx *gin.Context, err error) {
	var insufficient *domain.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		gctx.JSON(http.StatusUnprocessableEntity, jsonresponse.Error(insufficient))
		return
	}

	switch err {
	case domain.ErrInvalidAmount,
		domain.ErrNonPositiveAmount,
		domain.ErrUnsupportedJarKind,
		domain.ErrUnsupportedTransactionKind,
		domain.ErrCharityFlagInvalid,
		domain.ErrCharityRecipientRequired,
		domain.ErrEmptyBatch:
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
	case domain.ErrProfileNotFound, domain.ErrJarNotFound:
		gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
	case domain.ErrInterestAlreadyAccrued, domain.ErrBatchAlreadyApplied:
		gctx.JSON(http.StatusConflict, jsonresponse.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
	}
}

// Deposit handles http request to add money to one or more jars atomically.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	uri, req, key, ok := bindBatch(gctx)
	if !ok {
		return
	}

	result, err := h.service.DepositBatch(ctx, uri.ProfileID, key, batchItems(req))
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseBatch{Data: dataBatch{result.Transactions, result.Balances}})
}

// Withdraw handles http request to spend money from one or more jars atomically.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	uri, req, key, ok := bindBatch(gctx)
	if !ok {
		return
	}

	result, err := h.service.WithdrawBatch(ctx, uri.ProfileID, key, batchItems(req))
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseBatch{Data: dataBatch{result.Transactions, result.Balances}})
}

type dataInterest struct {
	Transaction domain.Transaction `json:"transaction"`
	NewBalance  string             `json:"new_balance"`
}

type responseInterest struct {
	Data dataInterest `json:"data"`
}

// RunInterest handles http request to apply the monthly interest accrual.
func (h *Handler) RunInterest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri profileURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	key, err := idempotencyKey(gctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Message("Idempotency-Key header must be a uuid"))

		return
	}

	result, err := h.service.RunInterest(ctx, uri.ProfileID, key)
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseInterest{Data: dataInterest{result.Transaction, result.NewBalance}})
}

type donationRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Note      string `json:"note"`
}

// RecordDonation handles http request to record a donation from the give jar.
func (h *Handler) RecordDonation(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri profileURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req donationRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Message(jsonresponse.BindErrorMsg(ve)))
			return
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	key, err := idempotencyKey(gctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Message("Idempotency-Key header must be a uuid"))

		return
	}

	result, err := h.service.RecordDonation(ctx, uri.ProfileID, key, req.Amount, req.Recipient, req.Note)
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseInterest{Data: dataInterest{result.Transaction, result.NewBalance}})
}

type dataBalances struct {
	Balances domain.Balances `json:"balances"`
}

type responseBalances struct {
	Data dataBalances `json:"data"`
}

// GetBalances handles http request to read all three jar balances.
func (h *Handler) GetBalances(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri profileURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	balances, err := h.service.GetBalances(ctx, uri.ProfileID)
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseBalances{Data: dataBalances{balances}})
}

type historyRequest struct {
	Kind    string `form:"kind" binding:"omitempty,oneof=deposit withdrawal interest"`
	JarKind string `form:"jar_kind" binding:"omitempty,jarkind"`
	Limit   int32  `form:"limit" binding:"omitempty,min=1,max=100"`
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type responseTransactions struct {
	Data dataTransactions `json:"data"`
}

// GetHistory handles http request to read the profile's transaction history.
func (h *Handler) GetHistory(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri profileURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	var req historyRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Message(jsonresponse.BindErrorMsg(ve)))
			return
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	arg := domain.ListTransactionsParams{
		ProfileID: uri.ProfileID,
		Kind:      req.Kind,
		JarKind:   req.JarKind,
		Limit:     req.Limit,
	}

	transactions, err := h.service.GetHistory(ctx, arg)
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{transactions}})
}

type dataDonations struct {
	Transactions []domain.Transaction `json:"transactions"`
	Total        string               `json:"total"`
}

type responseDonations struct {
	Data dataDonations `json:"data"`
}

// GetDonations handles http request to read the charity sub-ledger.
func (h *Handler) GetDonations(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri profileURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	result, err := h.service.GetDonations(ctx, uri.ProfileID)
	if err != nil {
		writeLedgerError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseDonations{Data: dataDonations{result.Transactions, result.Total}})
}
