package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/domain/repository"
)

// Storage keeps accounts, order histories and the exchange rate in process
// memory behind one mutex. It backs tests and local development; the
// PostgreSQL storage is the production counterpart.
type Storage struct {
	mu        sync.Mutex
	accounts  map[string]model.UserAccount
	histories map[string][]model.OrderRecord
	rate      float64
	rateSet   bool
}

// New constructs empty in-memory storage.
func New() *Storage {
	return &Storage{
		accounts:  make(map[string]model.UserAccount),
		histories: make(map[string][]model.OrderRecord),
	}
}

// SeedAccount inserts or replaces an account. Intended for tests and fixtures;
// the HTTP surface only mutates accounts that already exist.
func (s *Storage) SeedAccount(account model.UserAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	account.UpdatedAt = account.CreatedAt
	s.accounts[account.ID] = account
}

// Accounts returns the account repository view of the storage.
func (s *Storage) Accounts() repository.AccountRepository {
	return (*accountRepository)(s)
}

// OrderHistories returns the order history repository view of the storage.
func (s *Storage) OrderHistories() repository.OrderHistoryRepository {
	return (*orderHistoryRepository)(s)
}

// Rates returns the rate repository view of the storage.
func (s *Storage) Rates() repository.RateRepository {
	return (*rateRepository)(s)
}

type accountRepository Storage

func (r *accountRepository) List(ctx context.Context) ([]model.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.UserAccount, 0, len(r.accounts))
	for _, account := range r.accounts {
		result = append(result, account)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *accountRepository) SetPaid(ctx context.Context, userID string, isPaid bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	account.IsPaid = isPaid
	account.UpdatedAt = time.Now()
	r.accounts[userID] = account
	return nil
}

func (r *accountRepository) SetTracking(ctx context.Context, userID string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	account.TrackingStatus = status
	account.UpdatedAt = time.Now()
	r.accounts[userID] = account
	return nil
}

type orderHistoryRepository Storage

func (r *orderHistoryRepository) Append(ctx context.Context, phone string, orders []model.OrderRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Create-or-append happens under one lock, mirroring the single upsert
	// the PostgreSQL storage uses.
	r.histories[phone] = append(r.histories[phone], cloneRecords(orders)...)
	return nil
}

func (r *orderHistoryRepository) List(ctx context.Context, phone string) ([]model.OrderRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, ok := r.histories[phone]
	if !ok {
		return []model.OrderRecord{}, nil
	}
	return cloneRecords(history), nil
}

type rateRepository Storage

func (r *rateRepository) Get(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.rateSet {
		return model.DefaultExchangeRate, nil
	}
	return r.rate, nil
}

func (r *rateRepository) Set(ctx context.Context, rate float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rate = rate
	r.rateSet = true
	return nil
}

func cloneRecords(records []model.OrderRecord) []model.OrderRecord {
	cloned := make([]model.OrderRecord, len(records))
	for i, record := range records {
		copied := make(model.OrderRecord, len(record))
		for k, v := range record {
			copied[k] = v
		}
		cloned[i] = copied
	}
	return cloned
}
