package dto

// ErrorResponse is the JSON body returned on every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
