package usecase

import (
	"context"
	"math"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/repository"
)

// RateUseCase manages the USD to MWK exchange rate register.
type RateUseCase struct {
	rates repository.RateRepository
}

// NewRateUseCase constructs RateUseCase.
func NewRateUseCase(rates repository.RateRepository) *RateUseCase {
	return &RateUseCase{rates: rates}
}

// Rate returns the current exchange rate.
func (u *RateUseCase) Rate(ctx context.Context) (float64, error) {
	return u.rates.Get(ctx)
}

// UpdateRate replaces the current rate unconditionally and returns the new
// value. A missing or non-finite rate is rejected.
func (u *RateUseCase) UpdateRate(ctx context.Context, newRate *float64) (float64, error) {
	if newRate == nil || math.IsNaN(*newRate) || math.IsInf(*newRate, 0) {
		return 0, domainErrors.ErrInvalidRate
	}
	if err := u.rates.Set(ctx, *newRate); err != nil {
		return 0, err
	}
	return *newRate, nil
}
