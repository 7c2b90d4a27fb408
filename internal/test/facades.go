package test

import (
	"context"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
)

// ScrapeFacadeStub provides controllable behaviour for the scrape endpoint.
type ScrapeFacadeStub struct {
	ScrapeFn func(context.Context, []string) ([]model.Product, error)
}

// Scrape delegates to the provided function or returns one product per ref.
func (s ScrapeFacadeStub) Scrape(ctx context.Context, refs []string) ([]model.Product, error) {
	if s.ScrapeFn != nil {
		return s.ScrapeFn(ctx, refs)
	}
	if len(refs) == 0 {
		return nil, domainErrors.ErrNoReferences
	}
	products := make([]model.Product, 0, len(refs))
	for _, ref := range refs {
		products = append(products, model.Product{
			Title:     "Stub product",
			PriceText: "$1.00",
			PriceUSD:  1,
			PriceMWK:  model.DefaultExchangeRate,
			SourceURL: ref,
		})
	}
	return products, nil
}

// RateFacadeStub simulates the exchange rate register.
type RateFacadeStub struct {
	RateFn   func(context.Context) (float64, error)
	UpdateFn func(context.Context, *float64) (float64, error)
}

// Rate returns the configured rate or the default.
func (s RateFacadeStub) Rate(ctx context.Context) (float64, error) {
	if s.RateFn != nil {
		return s.RateFn(ctx)
	}
	return model.DefaultExchangeRate, nil
}

// UpdateRate validates like the real use case unless overridden.
func (s RateFacadeStub) UpdateRate(ctx context.Context, newRate *float64) (float64, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, newRate)
	}
	if newRate == nil {
		return 0, domainErrors.ErrInvalidRate
	}
	return *newRate, nil
}

// AccountFacadeStub simulates account operations.
type AccountFacadeStub struct {
	UsersFn       func(context.Context) ([]model.UserAccount, error)
	SetPaidFn     func(context.Context, string, bool) error
	SetTrackingFn func(context.Context, string, string) error
}

// Users returns configured accounts or one default account.
func (s AccountFacadeStub) Users(ctx context.Context) ([]model.UserAccount, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.UserAccount{{ID: "user-1", TrackingStatus: "pending"}}, nil
}

// SetPaid executes the configured handler.
func (s AccountFacadeStub) SetPaid(ctx context.Context, userID string, isPaid bool) error {
	if s.SetPaidFn != nil {
		return s.SetPaidFn(ctx, userID, isPaid)
	}
	return nil
}

// SetTracking executes the configured handler.
func (s AccountFacadeStub) SetTracking(ctx context.Context, userID string, status string) error {
	if s.SetTrackingFn != nil {
		return s.SetTrackingFn(ctx, userID, status)
	}
	return nil
}

// OrderFacadeStub simulates order history operations.
type OrderFacadeStub struct {
	SaveFn    func(context.Context, string, []model.OrderRecord) error
	HistoryFn func(context.Context, string) ([]model.OrderRecord, error)
}

// SaveOrder executes the configured handler.
func (s OrderFacadeStub) SaveOrder(ctx context.Context, phone string, orders []model.OrderRecord) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, phone, orders)
	}
	return nil
}

// OrderHistory returns the configured history or an empty one.
func (s OrderFacadeStub) OrderHistory(ctx context.Context, phone string) ([]model.OrderRecord, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, phone)
	}
	return []model.OrderRecord{}, nil
}

// ShopFacadeStub aggregates all facade stubs for router level tests.
type ShopFacadeStub struct {
	ScrapeFacadeStub
	RateFacadeStub
	AccountFacadeStub
	OrderFacadeStub
}
