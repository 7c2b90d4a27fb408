package model

import "time"

// UserAccount represents a customer account keyed by an opaque identifier.
type UserAccount struct {
	ID             string
	IsPaid         bool
	TrackingStatus string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
