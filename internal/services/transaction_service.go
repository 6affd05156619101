package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"merchant-payments/internal/config"
	"merchant-payments/internal/dto"
	"merchant-payments/internal/models"
	"merchant-payments/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidAmount = errors.New("transaction amount must be a valid decimal")
)

// summaryCurrency is fixed until multi-currency settlement lands;
// per-transaction currency codes are stored but not aggregated separately
const summaryCurrency = "USD"

type transactionService struct {
	txnRepo    repositories.TransactionRepositoryInterface
	detailRepo repositories.TransactionDetailRepositoryInterface
	cfg        config.QueryConfig
	metrics    MetricsRecorderInterface
	now        func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	detailRepo repositories.TransactionDetailRepositoryInterface,
	cfg config.QueryConfig,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		txnRepo:    txnRepo,
		detailRepo: detailRepo,
		cfg:        cfg,
		metrics:    metrics,
		now:        time.Now,
	}
}

// ListTransactions resolves the query window, runs the page fetch, the
// total count and the status aggregate concurrently, then joins detail
// rows onto the page and assembles the response. All three reads share
// one deadline; the first failure cancels the siblings.
func (s *transactionService) ListTransactions(ctx context.Context, merchantID string, query dto.TransactionListQuery) (*dto.TransactionListResponse, error) {
	started := s.now()

	dateRange, err := ResolveDateRange(query.StartDate, query.EndDate, s.now())
	if err != nil {
		return nil, err
	}

	page, size := s.normalizePaging(query.Page, query.Size)

	repoQuery := repositories.TransactionQuery{
		MerchantID: merchantID,
		Start:      dateRange.Start,
		End:        dateRange.End,
		Status:     query.Status,
		Offset:     page * size,
		Limit:      size,
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	var (
		transactions []models.TransactionMaster
		total        int64
		summaries    []models.StatusSummary
	)

	g, gCtx := errgroup.WithContext(queryCtx)
	g.Go(func() error {
		var err error
		transactions, err = s.txnRepo.FetchPage(gCtx, repoQuery)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.txnRepo.CountMatching(gCtx, repoQuery)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.txnRepo.AggregateByStatus(gCtx, repoQuery)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("transaction listing reads failed",
			"merchant_id", merchantID,
			"error", err)
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	detailsByMaster, err := s.fetchDetails(queryCtx, transactions)
	if err != nil {
		slog.Error("transaction detail join failed",
			"merchant_id", merchantID,
			"error", err)
		return nil, err
	}

	response := &dto.TransactionListResponse{
		MerchantID: merchantID,
		DateRange: dto.DateRange{
			StartDate: dateRange.Start,
			EndDate:   dateRange.End,
		},
		Transactions: s.assemblePage(transactions, detailsByMaster),
		Summary:      s.buildSummary(summaries),
		Pagination:   buildPagination(page, size, total),
	}

	s.metrics.RecordProcessingTime("transaction.listing", s.now().Sub(started))
	s.metrics.IncrementCounter("transaction.listed", map[string]string{"status": query.Status})

	slog.Info("transaction listing completed",
		"merchant_id", merchantID,
		"page", page,
		"page_size", size,
		"total", total,
		"returned", len(transactions))

	return response, nil
}

// RecordTransaction persists a new transaction. Any caller-supplied ID is
// discarded so the store always assigns one; missing timestamps and status
// get server-side defaults. Amount, currency and status are stored as
// submitted. The amount only needs to parse; zero and negative values
// (refunds, reversals) are legitimate rows.
func (s *transactionService) RecordTransaction(ctx context.Context, merchantID string, req *dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	amount := decimal.Zero
	if req.Amount != "" {
		parsed, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		amount = parsed
	}

	now := s.now().UTC()
	today := now.Truncate(24 * time.Hour)

	createdAt := now
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC()
	}

	txn := &models.TransactionMaster{
		MerchantID:       merchantID,
		Amount:           amount,
		Currency:         req.Currency,
		Status:           req.Status,
		CardType:         req.CardType,
		CardLast4:        req.CardLast4,
		LocalTxnDateTime: req.LocalTxnDateTime,
		TxnDate:          req.TxnDate,
		CreatedAt:        createdAt,
	}

	if txn.Currency == "" {
		txn.Currency = summaryCurrency
	}
	if txn.Status == "" {
		txn.Status = models.TransactionStatusPending
	}
	if txn.LocalTxnDateTime == nil {
		txn.LocalTxnDateTime = &now
	}
	if txn.TxnDate == nil {
		txn.TxnDate = &today
	}

	if err := s.txnRepo.Insert(ctx, txn); err != nil {
		slog.Error("failed to record transaction",
			"merchant_id", merchantID,
			"error", err)
		return nil, err
	}

	s.metrics.IncrementCounter("transaction.recorded", map[string]string{"status": strings.ToLower(txn.Status)})

	slog.Info("transaction recorded",
		"merchant_id", merchantID,
		"txn_id", txn.TxnID,
		"amount", amount.String(),
		"status", txn.Status)

	return &dto.CreateTransactionResponse{
		MerchantID:    merchantID,
		TransactionID: txn.TxnID,
	}, nil
}

func (s *transactionService) normalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return page, size
}

// fetchDetails batch-loads detail rows for the page and groups them by
// master transaction. An empty page skips the store round trip entirely.
func (s *transactionService) fetchDetails(ctx context.Context, transactions []models.TransactionMaster) (map[int64][]models.TransactionDetail, error) {
	if len(transactions) == 0 {
		return map[int64][]models.TransactionDetail{}, nil
	}

	masterIDs := make([]int64, 0, len(transactions))
	for i := range transactions {
		masterIDs = append(masterIDs, transactions[i].TxnID)
	}

	details, err := s.detailRepo.GetByMasterIDs(ctx, masterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to join transaction details: %w", err)
	}

	grouped := make(map[int64][]models.TransactionDetail, len(transactions))
	for i := range details {
		grouped[details[i].MasterTxnID] = append(grouped[details[i].MasterTxnID], details[i])
	}

	return grouped, nil
}

func (s *transactionService) assemblePage(transactions []models.TransactionMaster, detailsByMaster map[int64][]models.TransactionDetail) []dto.Transaction {
	page := make([]dto.Transaction, 0, len(transactions))

	for i := range transactions {
		txn := &transactions[i]

		details := make([]dto.Detail, 0, len(detailsByMaster[txn.TxnID]))
		for _, d := range detailsByMaster[txn.TxnID] {
			details = append(details, dto.Detail{
				TxnDetailID: d.TxnDetailID,
				DetailType:  d.DetailType,
				Amount:      dto.FormatAmount(d.Amount),
				Description: d.Description,
			})
		}

		page = append(page, dto.Transaction{
			TxnID:            txn.TxnID,
			MerchantID:       txn.MerchantID,
			Amount:           dto.FormatAmount(txn.Amount),
			Currency:         txn.Currency,
			Status:           txn.Status,
			CardType:         txn.CardType,
			CardLast4:        txn.CardLast4,
			LocalTxnDateTime: txn.LocalTxnDateTime,
			TxnDate:          txn.TxnDate,
			CreatedAt:        txn.CreatedAt,
			Details:          details,
		})
	}

	return page
}

// buildSummary folds the per-status aggregate rows into the response
// summary. Stored status values vary in casing, so rows are merged under
// their lowercase form. A NULL amount sum counts as zero.
func (s *transactionService) buildSummary(summaries []models.StatusSummary) dto.Summary {
	byStatus := make(map[string]int64, len(summaries))
	totalAmount := decimal.Zero
	var totalCount int64

	for _, row := range summaries {
		status := strings.ToLower(row.Status)
		byStatus[status] += row.TxnCount
		totalCount += row.TxnCount
		if row.TotalAmount.Valid {
			totalAmount = totalAmount.Add(row.TotalAmount.Decimal)
		}
	}

	return dto.Summary{
		TotalTransactions: totalCount,
		TotalAmount:       dto.FormatAmount(totalAmount),
		Currency:          summaryCurrency,
		ByStatus:          byStatus,
	}
}

// buildPagination reports the page position against the true filtered
// total, even when the requested page is past the end of the set
func buildPagination(page, size int, total int64) dto.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return dto.Pagination{
		Page:          page,
		PageSize:      size,
		TotalPages:    totalPages,
		TotalElements: total,
	}
}
