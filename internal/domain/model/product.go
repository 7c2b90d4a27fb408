package model

// Product holds fields extracted from a single rendered product page.
type Product struct {
	Title     string
	PriceText string
	PriceUSD  float64
	PriceMWK  float64
	Image     string
	SourceURL string
	// PriceUnparsed marks items whose raw price text contained no digits.
	// PriceUSD is zero in that case and cannot be told apart from a free
	// item without this flag.
	PriceUnparsed bool
}

// NoTitleSentinel is returned as the title when the page has no matching heading.
const NoTitleSentinel = "No title found"
