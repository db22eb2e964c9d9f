// Package store persists analyses, wallets, and the wallet transaction
// ledger in Postgres. The engine never touches this package; it only
// consumes engine output handed over by the caller.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrInsufficientCredit is returned when a wallet cannot cover the analysis
// cost. The caller recovers by prompting a top-up; it is not fatal.
var ErrInsufficientCredit = errors.New("insufficient credit balance")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Ledger entry kinds.
const (
	TxKindAnalysis = "analysis"
	TxKindPurchase = "purchase"
	TxKindReward   = "reward"
	TxKindRefund   = "refund"
)

// AnalysisRecord is the input to SpendAndSave.
type AnalysisRecord struct {
	Title        string
	City         string
	District     string
	Neighborhood string
	Price        float64
	MonthlyRent  float64
	Params       ParamsBlob
}

// Analysis is a stored analysis row.
type Analysis struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	City         string     `json:"city"`
	District     string     `json:"district"`
	Neighborhood string     `json:"neighborhood"`
	Price        float64    `json:"price"`
	MonthlyRent  float64    `json:"monthlyRent"`
	Params       ParamsBlob `json:"params"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// SpendResult reports the outcome of a successful SpendAndSave.
type SpendResult struct {
	AnalysisID int64
	NewBalance int64
}

// Store wraps the Postgres connection.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a Store.
func New(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// SpendAndSave atomically checks the wallet balance, deducts the analysis
// cost, records the ledger entry, and inserts the analysis. All-or-nothing:
// a failed balance check creates no record, and a failed insert leaves the
// balance untouched.
func (s *Store) SpendAndSave(ctx context.Context, userID string, cost int64, rec AnalysisRecord) (SpendResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SpendResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var balance int64
	err = tx.QueryRowContext(ctx,
		`SELECT balance FROM wallets WHERE user_id = $1 FOR UPDATE`, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return SpendResult{}, ErrInsufficientCredit
	}
	if err != nil {
		return SpendResult{}, fmt.Errorf("failed to read wallet: %w", err)
	}
	if balance < cost {
		return SpendResult{}, ErrInsufficientCredit
	}

	newBalance := balance - cost
	if _, err := tx.ExecContext(ctx,
		`UPDATE wallets SET balance = $1 WHERE user_id = $2`, newBalance, userID); err != nil {
		return SpendResult{}, fmt.Errorf("failed to update wallet: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO wallet_transactions (user_id, amount, kind, note, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`,
		userID, -cost, TxKindAnalysis, rec.Title); err != nil {
		return SpendResult{}, fmt.Errorf("failed to record ledger entry: %w", err)
	}

	params, err := rec.Params.Encode()
	if err != nil {
		return SpendResult{}, err
	}

	var analysisID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO analyses (user_id, title, city, district, neighborhood, price, monthly_rent, params, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		 RETURNING id`,
		userID, rec.Title, rec.City, rec.District, rec.Neighborhood,
		rec.Price, rec.MonthlyRent, params).Scan(&analysisID)
	if err != nil {
		return SpendResult{}, fmt.Errorf("failed to insert analysis: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SpendResult{}, fmt.Errorf("failed to commit spend-and-save: %w", err)
	}

	s.logger.Info("analysis committed",
		zap.String("op", "store.SpendAndSave"),
		zap.String("user_id", userID),
		zap.Int64("analysis_id", analysisID),
		zap.Int64("new_balance", newBalance),
	)
	return SpendResult{AnalysisID: analysisID, NewBalance: newBalance}, nil
}

// Grant credits a wallet and records the ledger entry in one transaction.
// Used for purchases, rewarded-ad grants, and report-failure refunds. The
// wallet row is created on first grant.
func (s *Store) Grant(ctx context.Context, userID string, amount int64, kind, note string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("grant amount must be positive, got %d", amount)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var newBalance int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO wallets (user_id, balance) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET balance = wallets.balance + $2
		 RETURNING balance`, userID, amount).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to credit wallet: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO wallet_transactions (user_id, amount, kind, note, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`, userID, amount, kind, note); err != nil {
		return 0, fmt.Errorf("failed to record ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit grant: %w", err)
	}
	return newBalance, nil
}

// Balance returns the wallet balance; a user without a wallet has zero
// credits rather than an error.
func (s *Store) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := s.db.QueryRowContext(ctx,
		`SELECT balance FROM wallets WHERE user_id = $1`, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read wallet: %w", err)
	}
	return balance, nil
}

// ListAnalyses returns a user's analyses, newest first.
func (s *Store) ListAnalyses(ctx context.Context, userID string) ([]Analysis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, city, district, neighborhood, price, monthly_rent, params, created_at
		 FROM analyses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, nil
}

// GetAnalysis returns one stored analysis by ID.
func (s *Store) GetAnalysis(ctx context.Context, id int64) (Analysis, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, city, district, neighborhood, price, monthly_rent, params, created_at
		 FROM analyses WHERE id = $1`, id)
	analysis, err := scanAnalysis(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, ErrNotFound
	}
	return analysis, err
}

func scanAnalysis(scan func(...any) error) (Analysis, error) {
	var analysis Analysis
	var params []byte
	err := scan(&analysis.ID, &analysis.UserID, &analysis.Title,
		&analysis.City, &analysis.District, &analysis.Neighborhood,
		&analysis.Price, &analysis.MonthlyRent, &params, &analysis.CreatedAt)
	if err != nil {
		return Analysis{}, err
	}
	blob, err := DecodeParamsBlob(params)
	if err != nil {
		return Analysis{}, err
	}
	analysis.Params = blob
	return analysis, nil
}
