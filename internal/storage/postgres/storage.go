package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/domain/repository"
)

const rateKey = "exchange_rate"

// Pool is the subset of pgxpool.Pool the storage uses. pgxmock satisfies it
// in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type orderHistoryRepository struct {
	storage *Storage
}

type rateRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) OrderHistories() repository.OrderHistoryRepository {
	return &orderHistoryRepository{storage: s}
}

func (s *Storage) Rates() repository.RateRepository {
	return &rateRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
            id TEXT PRIMARY KEY,
            is_paid BOOLEAN NOT NULL DEFAULT FALSE,
            tracking_status TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_histories (
            phone TEXT PRIMARY KEY,
            history JSONB NOT NULL DEFAULT '[]'::jsonb,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            key TEXT PRIMARY KEY,
            value DOUBLE PRECISION NOT NULL
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AccountRepository implementation ---

func (r *accountRepository) List(ctx context.Context) ([]model.UserAccount, error) {
	const query = `SELECT id, is_paid, tracking_status, created_at, updated_at
                   FROM accounts ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.UserAccount
	for rows.Next() {
		var a model.UserAccount
		if err := rows.Scan(&a.ID, &a.IsPaid, &a.TrackingStatus, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *accountRepository) SetPaid(ctx context.Context, userID string, isPaid bool) error {
	const query = `UPDATE accounts SET is_paid=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, isPaid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *accountRepository) SetTracking(ctx context.Context, userID string, status string) error {
	const query = `UPDATE accounts SET tracking_status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderHistoryRepository implementation ---

func (r *orderHistoryRepository) Append(ctx context.Context, phone string, orders []model.OrderRecord) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	// A single upsert keeps create-or-append atomic: there is no window
	// between the existence check and the write.
	const query = `INSERT INTO order_histories (phone, history) VALUES ($1, $2::jsonb)
                   ON CONFLICT (phone) DO UPDATE
                   SET history = order_histories.history || EXCLUDED.history,
                       updated_at = NOW()`
	if _, err := r.storage.pool.Exec(ctx, query, phone, payload); err != nil {
		return err
	}
	return nil
}

func (r *orderHistoryRepository) List(ctx context.Context, phone string) ([]model.OrderRecord, error) {
	const query = `SELECT history FROM order_histories WHERE phone=$1`
	var payload []byte
	err := r.storage.pool.QueryRow(ctx, query, phone).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []model.OrderRecord{}, nil
		}
		return nil, err
	}

	var history []model.OrderRecord
	if err := json.Unmarshal(payload, &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return history, nil
}

// --- RateRepository implementation ---

func (r *rateRepository) Get(ctx context.Context) (float64, error) {
	const query = `SELECT value FROM settings WHERE key=$1`
	var value float64
	err := r.storage.pool.QueryRow(ctx, query, rateKey).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DefaultExchangeRate, nil
		}
		return 0, err
	}
	return value, nil
}

func (r *rateRepository) Set(ctx context.Context, rate float64) error {
	const query = `INSERT INTO settings (key, value) VALUES ($1, $2)
                   ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := r.storage.pool.Exec(ctx, query, rateKey, rate); err != nil {
		return err
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
