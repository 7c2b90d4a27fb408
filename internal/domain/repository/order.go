package repository

import (
	"context"

	"github.com/zathu/shopscrape/internal/domain/model"
)

// OrderHistoryRepository describes persistence operations for phone-keyed
// order histories.
type OrderHistoryRepository interface {
	// Append creates the history when absent and appends to it when present.
	// Create and append must not race with each other.
	Append(ctx context.Context, phone string, orders []model.OrderRecord) error
	// List returns an empty slice, not an error, for an unknown phone.
	List(ctx context.Context, phone string) ([]model.OrderRecord, error)
}
