package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrNoReferences  = errors.New("no references provided")
	ErrInvalidRate   = errors.New("invalid rate")
	ErrMissingPhone  = errors.New("phone number is required")
	ErrMissingOrders = errors.New("orders are required")
	ErrMissingUserID = errors.New("user id is required")
	ErrRenderFailed  = errors.New("page render failed")
)
