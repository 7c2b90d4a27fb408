package dto

// ScrapeRequest carries the product and cart page links to extract.
type ScrapeRequest struct {
	Links     []string `json:"links"`
	CartLinks []string `json:"cartLinks"`
}

// ScrapeItem is one extracted product.
type ScrapeItem struct {
	Title         string  `json:"title"`
	Price         string  `json:"price"`
	Image         string  `json:"image"`
	PriceUSD      float64 `json:"priceUSD"`
	PriceMWK      float64 `json:"priceMWK"`
	Link          string  `json:"link"`
	PriceUnparsed bool    `json:"priceUnparsed,omitempty"`
}
