package pricing

import (
	"github.com/shopspring/decimal"

	"oakframe-configurator/models"
)

// Subtotal returns the sum of price times quantity, rounded to pence
func Subtotal(items []models.BasketItem) float64 {
	return subtotal(items).InexactFloat64()
}

func subtotal(items []models.BasketItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum.Round(2)
}

// Summarize computes the presentation totals of a basket
// Structural categories carry delivery in their price. Beams and flooring pay for their
// shipped volume with a minimum charge, unless the subtotal reaches the free shipping threshold.
func Summarize(items []models.BasketItem, rates TotalsRates) *models.BasketSummary {
	sub := subtotal(items)
	vat := sub.Mul(decimal.NewFromFloat(rates.VATRate)).Round(2)

	count := 0
	volume := 0.0
	ships := false
	for _, item := range items {
		count += item.Quantity
		if item.Category.IsStructural() {
			continue
		}
		ships = true
		volume += ShippedVolume(item, rates)
	}

	shipping := decimal.Zero
	threshold := decimal.NewFromFloat(rates.FreeShippingThreshold)
	if ships && sub.LessThan(threshold) {
		shipping = decimal.NewFromFloat(volume).Mul(decimal.NewFromFloat(rates.ShippingPerM3))
		shipping = decimal.Max(shipping, decimal.NewFromFloat(rates.MinimumShipping)).Round(2)
	}

	return &models.BasketSummary{
		ItemCount:             count,
		Subtotal:              sub.InexactFloat64(),
		VAT:                   vat.InexactFloat64(),
		Shipping:              shipping.InexactFloat64(),
		Total:                 sub.Add(vat).Add(shipping).InexactFloat64(),
		ShippedVolumeM3:       decimal.NewFromFloat(volume).Round(4).InexactFloat64(),
		FreeShippingThreshold: rates.FreeShippingThreshold,
	}
}

// ShippedVolume returns the cubic metres a basket line ships, zero for unconfigured lines
func ShippedVolume(item models.BasketItem, rates TotalsRates) float64 {
	if item.Configuration.IsEmpty() || item.Quantity <= 0 {
		return 0
	}
	qty := float64(item.Quantity)
	switch item.Category {
	case models.CategoryOakBeams:
		d := item.Configuration.Dimensions("dimensions", models.Dimensions{Length: 200, Width: 15, Thickness: 15})
		return d.VolumeM3() * qty
	case models.CategoryOakFlooring:
		area := item.Configuration.Area("area", models.AreaMeasurement{}).SquareMetres()
		thickness := rates.BoardThicknessCM
		if thickness < 0 {
			thickness = 0
		}
		return area * thickness / 100 * qty
	}
	return 0
}
