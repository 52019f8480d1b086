package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oakframe-configurator/models"
)

func beamItem(qty int, price float64, d models.Dimensions) models.BasketItem {
	return models.BasketItem{
		Category:      models.CategoryOakBeams,
		Quantity:      qty,
		Price:         price,
		Configuration: models.ConfigState{"dimensions": d, "oakType": "green"},
	}
}

func TestSummarize_EmptyBasket(t *testing.T) {
	summary := Summarize(nil, DefaultSchedule().Totals)
	assert.Equal(t, 0, summary.ItemCount)
	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, 2500.0, summary.FreeShippingThreshold)
}

func TestSummarize_MinimumShippingForSmallVolume(t *testing.T) {
	items := []models.BasketItem{beamItem(2, 36, models.Dimensions{Length: 200, Width: 15, Thickness: 15})}

	summary := Summarize(items, DefaultSchedule().Totals)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, 72.0, summary.Subtotal)
	assert.Equal(t, 14.4, summary.VAT)
	assert.Equal(t, 45.0, summary.Shipping)
	assert.Equal(t, 131.4, summary.Total)
	assert.InDelta(t, 0.09, summary.ShippedVolumeM3, 1e-9)
}

func TestSummarize_ShippingByVolume(t *testing.T) {
	items := []models.BasketItem{beamItem(2, 540, models.Dimensions{Length: 600, Width: 30, Thickness: 30})}

	summary := Summarize(items, DefaultSchedule().Totals)
	assert.Equal(t, 1080.0, summary.Subtotal)
	assert.Equal(t, 216.0, summary.VAT)
	assert.InDelta(t, 129.6, summary.Shipping, 1e-9)
	assert.InDelta(t, 1425.6, summary.Total, 1e-9)
}

func TestSummarize_FlooringVolumeUsesBoardThickness(t *testing.T) {
	items := []models.BasketItem{{
		Category:      models.CategoryOakFlooring,
		Quantity:      1,
		Price:         1800,
		Configuration: models.ConfigState{"area": map[string]any{"area": 25}, "flooringType": "engineered"},
	}}

	summary := Summarize(items, DefaultSchedule().Totals)
	assert.InDelta(t, 0.5, summary.ShippedVolumeM3, 1e-9)
	assert.Equal(t, 60.0, summary.Shipping)
	assert.Equal(t, 360.0, summary.VAT)
	assert.Equal(t, 2220.0, summary.Total)
}

func TestSummarize_StructuralOnlyShipsFree(t *testing.T) {
	items := []models.BasketItem{{Category: models.CategoryGarages, Quantity: 1, Price: 12800}}

	summary := Summarize(items, DefaultSchedule().Totals)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.Equal(t, 2560.0, summary.VAT)
	assert.Equal(t, 15360.0, summary.Total)
}

func TestSummarize_FreeShippingAboveThreshold(t *testing.T) {
	items := []models.BasketItem{
		{Category: models.CategoryPorches, Quantity: 1, Price: 3500},
		beamItem(1, 36, models.Dimensions{Length: 200, Width: 15, Thickness: 15}),
	}

	summary := Summarize(items, DefaultSchedule().Totals)
	assert.Equal(t, 3536.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Shipping)
}

func TestSummarize_UnconfiguredNonStructuralPaysMinimum(t *testing.T) {
	items := []models.BasketItem{{Category: models.CategorySpecialDeals, Quantity: 1, Price: 199.99}}

	summary := Summarize(items, DefaultSchedule().Totals)
	assert.Equal(t, 0.0, summary.ShippedVolumeM3)
	assert.Equal(t, 45.0, summary.Shipping)
	assert.Equal(t, 40.0, summary.VAT)
	assert.Equal(t, 284.99, summary.Total)
}

func TestSubtotal(t *testing.T) {
	items := []models.BasketItem{
		{Quantity: 3, Price: 0.1},
		{Quantity: 1, Price: 0.2},
	}
	assert.Equal(t, 0.5, Subtotal(items))
}
