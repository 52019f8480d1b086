package models

import (
	"fmt"
	"time"
)

// BasketItem represents a line of a user's basket
// Price is the unit price snapshot taken when the line was first added; merges and reads never recompute it.
type BasketItem struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	Price         float64         `json:"price"`
	Configuration ConfigState     `json:"configuration"`
	ConfigHash    string          `json:"-"`
	Category      ProductCategory `json:"category,omitempty"`
	Name          string          `json:"name"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// MaxQuantity is the largest quantity a basket line may hold
const MaxQuantity = 9999

// QuantityExceeded reports a quantity above MaxQuantity
func QuantityExceeded(quantity int) error {
	return fmt.Errorf("%w: quantity cannot exceed %d, got %d", ErrInvalidRequest, MaxQuantity, quantity)
}

// LineTotal returns price times quantity
func (b BasketItem) LineTotal() float64 {
	return b.Price * float64(b.Quantity)
}

// AddToBasketRequest represents the request body for adding a product to the basket
// Example: {"userId": "u1", "productId": "garage1", "quantity": 1, "category": "garages", "configuration": {"bays": [2]}}
type AddToBasketRequest struct {
	UserID        string          `json:"userId"`
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	Configuration ConfigState     `json:"configuration,omitempty"`
	Category      ProductCategory `json:"category,omitempty"`
}

// AddToBasketResponse is returned after a successful add
type AddToBasketResponse struct {
	ItemID string `json:"itemId"`
}

// UpdateQuantityRequest represents the request body for changing a line quantity
// Example: {"quantity": 3}
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// BasketResponse is the basket view returned to the storefront
type BasketResponse struct {
	Items   []BasketItem   `json:"items"`
	Summary *BasketSummary `json:"summary"`
}
