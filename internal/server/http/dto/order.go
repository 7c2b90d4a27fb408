package dto

// SaveOrderRequest appends orders to a phone-keyed history.
type SaveOrderRequest struct {
	Phone  string           `json:"phone"`
	Orders []map[string]any `json:"orders"`
}

// MessageResponse carries a human readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// OrderHistoryResponse returns the stored history, oldest first.
type OrderHistoryResponse struct {
	History []map[string]any `json:"history"`
}
