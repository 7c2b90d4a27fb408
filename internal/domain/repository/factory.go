package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Accounts() AccountRepository
	OrderHistories() OrderHistoryRepository
	Rates() RateRepository
}
