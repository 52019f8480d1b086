package models

// Product is a catalog record, read-only from the basket's point of view
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"` // catalog price in GBP
	Category ProductCategory `json:"category"`
	IsActive bool            `json:"isActive"`
	Images   []string        `json:"images"`
}

// PrimaryImage returns the first image URL of the product, if any
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
