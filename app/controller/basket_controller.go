package controller

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"oakframe-configurator/models"
	"oakframe-configurator/service"
)

// BasketController handles HTTP requests for user baskets
type BasketController struct {
	service *service.BasketService
}

// NewBasketController creates a new BasketController
func NewBasketController(svc *service.BasketService) *BasketController {
	return &BasketController{service: svc}
}

// Basket handles GET and DELETE /api/basket?userId=u1
// Example response:
// {
//   "items": [{"id": "…", "productId": "garage1", "quantity": 2, "price": 12800, "name": "3 bay oak frame garage with …"}],
//   "summary": {"itemCount": 2, "subtotal": 25600, "vat": 5120, "shipping": 0, "total": 30720}
// }
func (c *BasketController) Basket(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeError(w, "Basket", missingParam("userId"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		basket, err := c.service.GetBasket(r.Context(), userID)
		if err != nil {
			writeError(w, "GetBasket", err)
			return
		}
		writeJSON(w, http.StatusOK, basket)
	case http.MethodDelete:
		if err := c.service.ClearBasket(r.Context(), userID); err != nil {
			writeError(w, "ClearBasket", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, "Basket", r.Method)
	}
}

// AddItem handles POST /api/basket/items
// Example request:
// POST /api/basket/items
// {
//   "userId": "u1",
//   "productId": "garage1",
//   "quantity": 1,
//   "category": "garages",
//   "configuration": {"bays": [3], "beamSize": "8x8", "catSlide": true}
// }
// Example response:
// {"itemId": "1b4e28ba-2fa1-11d2-883f-0016d3cca427"}
func (c *BasketController) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "AddItem", r.Method)
		return
	}

	var req models.AddToBasketRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, "AddItem", err)
		return
	}

	id, err := c.service.AddToBasket(r.Context(), req)
	if err != nil {
		writeError(w, "AddItem", err)
		return
	}
	zap.S().Infof("✅ AddItem: item=%s", id)
	writeJSON(w, http.StatusCreated, models.AddToBasketResponse{ItemID: id})
}

// Item handles PUT and DELETE /api/basket/items/{id}
// PUT takes {"quantity": 3}; a quantity of zero or less removes the line.
func (c *BasketController) Item(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/basket/items/")
	if id == "" {
		writeError(w, "Item", missingParam("item id"))
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var req models.UpdateQuantityRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, "UpdateItem", err)
			return
		}
		if err := c.service.UpdateBasketItemQuantity(r.Context(), id, req.Quantity); err != nil {
			writeError(w, "UpdateItem", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := c.service.RemoveFromBasket(r.Context(), id); err != nil {
			writeError(w, "RemoveItem", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, "Item", r.Method)
	}
}
