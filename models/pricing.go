package models

// PriceLine is one labelled contribution to a configured price
type PriceLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceQuote is the configurator response for a category and configuration
type PriceQuote struct {
	Category    ProductCategory     `json:"category"`
	Strategy    CalculationStrategy `json:"strategy"`
	Price       float64             `json:"price"`
	Description string              `json:"description"`
	Breakdown   []PriceLine         `json:"breakdown"`
}

// PriceQuoteRequest represents the request body of the price endpoint
// Example: {"category": "oak-beams", "configuration": {"dimensions": {"length": 200, "width": 15, "thickness": 15}, "oakType": "green"}}
type PriceQuoteRequest struct {
	Category      ProductCategory `json:"category"`
	Configuration ConfigState     `json:"configuration"`
}

// BasketSummary represents the complete totals of a basket
type BasketSummary struct {
	ItemCount             int     `json:"itemCount"`             // Sum of quantities
	Subtotal              float64 `json:"subtotal"`              // Sum of price * quantity
	VAT                   float64 `json:"vat"`                   // Flat rate VAT on the subtotal
	Shipping              float64 `json:"shipping"`              // Zero for structural categories and above the threshold
	Total                 float64 `json:"total"`                 // Subtotal + VAT + shipping
	ShippedVolumeM3       float64 `json:"shippedVolumeM3"`       // Volume that drives the shipping charge
	FreeShippingThreshold float64 `json:"freeShippingThreshold"` // Subtotal from which shipping is free
}
