package dto

import "time"

// UserResponse describes one stored user account.
type UserResponse struct {
	UserID         string    `json:"userId"`
	IsPaid         bool      `json:"isPaid"`
	TrackingStatus string    `json:"trackingStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PaymentUpdateRequest describes a payment flag update.
type PaymentUpdateRequest struct {
	UserID string `json:"userId"`
	IsPaid *bool  `json:"isPaid"`
}

// TrackingUpdateRequest describes a tracking status update.
type TrackingUpdateRequest struct {
	UserID         string  `json:"userId"`
	TrackingStatus *string `json:"trackingStatus"`
}

// SuccessResponse acknowledges a mutation.
type SuccessResponse struct {
	Success bool `json:"success"`
}
