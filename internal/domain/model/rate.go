package model

// DefaultExchangeRate is the USD to MWK multiplier used until an operator
// sets one explicitly.
const DefaultExchangeRate = 3000
