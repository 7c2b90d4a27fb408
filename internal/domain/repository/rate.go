package repository

import "context"

// RateRepository stores the single process-wide exchange rate value.
type RateRepository interface {
	// Get returns model.DefaultExchangeRate when no rate was ever set.
	Get(ctx context.Context) (float64, error)
	// Set overwrites the current rate unconditionally.
	Set(ctx context.Context, rate float64) error
}
