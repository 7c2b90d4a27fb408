package repository

import (
	"context"

	"github.com/zathu/shopscrape/internal/domain/model"
)

// AccountRepository describes persistence operations for user accounts.
type AccountRepository interface {
	List(ctx context.Context) ([]model.UserAccount, error)
	SetPaid(ctx context.Context, userID string, isPaid bool) error
	SetTracking(ctx context.Context, userID string, status string) error
}
