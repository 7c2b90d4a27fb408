package dto

// UpdateRateRequest describes the exchange rate update payload. A pointer
// distinguishes a missing field from an explicit zero.
type UpdateRateRequest struct {
	NewRate *float64 `json:"newRate"`
}

// RateResponse reports the current exchange rate.
type RateResponse struct {
	Rate float64 `json:"rate"`
}
