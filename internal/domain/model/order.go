package model

// OrderRecord is a single order document as submitted by the client. The
// payload shape is client-defined, so it is kept as a free-form JSON object.
type OrderRecord map[string]any

// OrderHistory is the ordered, append-only sequence of orders placed under one
// phone number.
type OrderHistory struct {
	Phone   string
	History []OrderRecord
}
