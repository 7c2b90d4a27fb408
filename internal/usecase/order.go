package usecase

import (
	"context"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/domain/repository"
)

// OrderUseCase manages phone-keyed order histories.
type OrderUseCase struct {
	histories repository.OrderHistoryRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(histories repository.OrderHistoryRepository) *OrderUseCase {
	return &OrderUseCase{histories: histories}
}

// Append stores new orders under phone, creating the history when absent and
// appending otherwise. Orders are never deduplicated.
func (u *OrderUseCase) Append(ctx context.Context, phone string, orders []model.OrderRecord) error {
	if phone == "" {
		return domainErrors.ErrMissingPhone
	}
	if len(orders) == 0 {
		return domainErrors.ErrMissingOrders
	}
	return u.histories.Append(ctx, phone, orders)
}

// History returns the stored orders for phone, oldest first. An unknown phone
// yields an empty history, not an error.
func (u *OrderUseCase) History(ctx context.Context, phone string) ([]model.OrderRecord, error) {
	if phone == "" {
		return nil, domainErrors.ErrMissingPhone
	}
	return u.histories.List(ctx, phone)
}
