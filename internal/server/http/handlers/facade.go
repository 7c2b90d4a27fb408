package handlers

import (
	"context"

	"github.com/zathu/shopscrape/internal/domain/model"
)

// ScrapeFacade describes extraction capabilities required by handlers.
type ScrapeFacade interface {
	Scrape(ctx context.Context, refs []string) ([]model.Product, error)
}

// RateFacade exposes the exchange rate register.
type RateFacade interface {
	Rate(ctx context.Context) (float64, error)
	UpdateRate(ctx context.Context, newRate *float64) (float64, error)
}

// AccountFacade provides account related operations.
type AccountFacade interface {
	Users(ctx context.Context) ([]model.UserAccount, error)
	SetPaid(ctx context.Context, userID string, isPaid bool) error
	SetTracking(ctx context.Context, userID string, status string) error
}

// OrderFacade encapsulates order history operations exposed via HTTP.
type OrderFacade interface {
	SaveOrder(ctx context.Context, phone string, orders []model.OrderRecord) error
	OrderHistory(ctx context.Context, phone string) ([]model.OrderRecord, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	ScrapeFacade
	RateFacade
	AccountFacade
	OrderFacade
}
