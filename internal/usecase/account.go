package usecase

import (
	"context"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/domain/repository"
)

// AccountUseCase manages user account state.
type AccountUseCase struct {
	accounts repository.AccountRepository
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

// List returns every stored account.
func (u *AccountUseCase) List(ctx context.Context) ([]model.UserAccount, error) {
	return u.accounts.List(ctx)
}

// SetPaid updates the payment flag of one account. Unknown accounts fail with
// a not found error rather than silently no-oping.
func (u *AccountUseCase) SetPaid(ctx context.Context, userID string, isPaid bool) error {
	if userID == "" {
		return domainErrors.ErrMissingUserID
	}
	return u.accounts.SetPaid(ctx, userID, isPaid)
}

// SetTracking updates the tracking status of one account.
func (u *AccountUseCase) SetTracking(ctx context.Context, userID string, status string) error {
	if userID == "" {
		return domainErrors.ErrMissingUserID
	}
	return u.accounts.SetTracking(ctx, userID, status)
}
