package app

import (
	"context"

	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/usecase"
)

// ShopFacade aggregates the application use cases behind one surface.
type ShopFacade struct {
	extract  *usecase.ExtractUseCase
	rates    *usecase.RateUseCase
	accounts *usecase.AccountUseCase
	orders   *usecase.OrderUseCase
}

// NewShopFacade constructs ShopFacade.
func NewShopFacade(extract *usecase.ExtractUseCase, rates *usecase.RateUseCase, accounts *usecase.AccountUseCase, orders *usecase.OrderUseCase) *ShopFacade {
	return &ShopFacade{extract: extract, rates: rates, accounts: accounts, orders: orders}
}

// Scrape extracts every reference using the exchange rate in effect at call
// start. The rate is read once so every item of the batch converts with the
// same value even if an update lands mid-batch.
func (f *ShopFacade) Scrape(ctx context.Context, refs []string) ([]model.Product, error) {
	rate, err := f.rates.Rate(ctx)
	if err != nil {
		return nil, err
	}
	return f.extract.Extract(ctx, refs, rate)
}

// Rate returns the current exchange rate.
func (f *ShopFacade) Rate(ctx context.Context) (float64, error) {
	return f.rates.Rate(ctx)
}

// UpdateRate replaces the exchange rate and returns the stored value.
func (f *ShopFacade) UpdateRate(ctx context.Context, newRate *float64) (float64, error) {
	return f.rates.UpdateRate(ctx, newRate)
}

// Users lists every stored account.
func (f *ShopFacade) Users(ctx context.Context) ([]model.UserAccount, error) {
	return f.accounts.List(ctx)
}

// SetPaid updates one account's payment flag.
func (f *ShopFacade) SetPaid(ctx context.Context, userID string, isPaid bool) error {
	return f.accounts.SetPaid(ctx, userID, isPaid)
}

// SetTracking updates one account's tracking status.
func (f *ShopFacade) SetTracking(ctx context.Context, userID string, status string) error {
	return f.accounts.SetTracking(ctx, userID, status)
}

// SaveOrder appends orders to the history stored under phone.
func (f *ShopFacade) SaveOrder(ctx context.Context, phone string, orders []model.OrderRecord) error {
	return f.orders.Append(ctx, phone, orders)
}

// OrderHistory returns the orders stored under phone, oldest first.
func (f *ShopFacade) OrderHistory(ctx context.Context, phone string) ([]model.OrderRecord, error) {
	return f.orders.History(ctx, phone)
}
