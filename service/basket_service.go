package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"oakframe-configurator/configurator"
	"oakframe-configurator/models"
	"oakframe-configurator/pricing"
	"oakframe-configurator/repository"
)

const defaultClearConcurrency = 8

// BasketService prices basket additions and merges equivalent lines
type BasketService struct {
	basketRepo       repository.BasketRepositoryInterface
	productRepo      repository.ProductRepositoryInterface
	calculator       *pricing.Calculator
	notifier         Notifier
	clearConcurrency int
}

// NewBasketService creates a new BasketService
func NewBasketService(
	basketRepo repository.BasketRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	calculator *pricing.Calculator,
	notifier Notifier,
	clearConcurrency int,
) *BasketService {
	if calculator == nil {
		calculator = pricing.NewCalculator(nil)
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if clearConcurrency < 1 {
		clearConcurrency = defaultClearConcurrency
	}
	return &BasketService{
		basketRepo:       basketRepo,
		productRepo:      productRepo,
		calculator:       calculator,
		notifier:         notifier,
		clearConcurrency: clearConcurrency,
	}
}

// AddToBasket prices a product and stores it as a basket line
// An equivalent line for the same user, product and configuration has its quantity
// incremented instead; its price snapshot is kept.
func (s *BasketService) AddToBasket(ctx context.Context, req models.AddToBasketRequest) (string, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.UserID == "" || req.ProductID == "" {
		return "", fmt.Errorf("%w: userId and productId are required", models.ErrInvalidRequest)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return "", fmt.Errorf("%w: quantity must be positive", models.ErrInvalidRequest)
	}
	if req.Quantity > models.MaxQuantity {
		return "", models.QuantityExceeded(req.Quantity)
	}

	zap.S().Infof("📦 AddToBasket: user=%s, product=%s, quantity=%d, category=%s",
		req.UserID, req.ProductID, req.Quantity, req.Category)

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		s.notifyError(ctx, req.UserID, "Could not add to basket", err)
		return "", err
	}
	if !product.IsActive {
		err := fmt.Errorf("product %s: %w", req.ProductID, models.ErrNotFound)
		s.notifyError(ctx, req.UserID, "Could not add to basket", err)
		return "", err
	}

	item, err := s.buildItem(req, product)
	if err != nil {
		s.notifyError(ctx, req.UserID, "Could not add to basket", err)
		return "", err
	}

	id, merged, err := s.basketRepo.AddOrMerge(ctx, item)
	if err != nil {
		zap.S().Errorf("❌ AddToBasket: %v", err)
		s.notifyError(ctx, req.UserID, "Could not add to basket", err)
		return "", err
	}

	if merged {
		zap.S().Infof("✅ AddToBasket: merged into %s (+%d)", id, item.Quantity)
		s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, UserID: req.UserID, Title: "Basket updated",
			Message: fmt.Sprintf("Added %d more of %s", item.Quantity, item.Name)})
	} else {
		zap.S().Infof("✅ AddToBasket: created %s, 💰 price=%.2f", id, item.Price)
		s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, UserID: req.UserID, Title: "Added to basket",
			Message: item.Name})
	}
	return id, nil
}

// buildItem prices the request and fills in the line snapshot
func (s *BasketService) buildItem(req models.AddToBasketRequest, product *models.Product) (*models.BasketItem, error) {
	category := product.Category
	if req.Category != "" {
		requested, _ := models.ParseProductCategory(string(req.Category))
		if category != "" && requested != category {
			return nil, fmt.Errorf("%w: product %s is not in category %q", models.ErrInvalidConfiguration, product.ID, req.Category)
		}
		category = requested
	}

	item := &models.BasketItem{
		UserID:    req.UserID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
		Price:     product.Price,
		Category:  category,
		Name:      product.Name,
		Image:     product.PrimaryImage(),
	}

	if req.Configuration.IsEmpty() || category == "" || pricing.StrategyFor(category) == models.StrategyFixed {
		return item, nil
	}
	hash, err := configurator.ConfigHash(req.Configuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidConfiguration, err)
	}
	// a state holding only nil values carries no configuration
	if hash == "" {
		return item, nil
	}

	if err := configurator.Validate(category, req.Configuration); err != nil {
		return nil, err
	}
	price := s.calculator.CalculateProductPrice(category, req.Configuration)
	if price <= 0 {
		return nil, fmt.Errorf("%w: configuration prices to zero", models.ErrInvalidConfiguration)
	}

	item.Price = price
	item.Configuration = req.Configuration.Clone()
	item.ConfigHash = hash
	if name := configurator.GenerateConfigurationDescription(category, req.Configuration); name != "" {
		item.Name = name
	}
	return item, nil
}

// UpdateBasketItemQuantity overwrites the quantity of a line; zero or less removes it
func (s *BasketService) UpdateBasketItemQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromBasket(ctx, itemID)
	}
	if quantity > models.MaxQuantity {
		err := models.QuantityExceeded(quantity)
		s.notifyError(ctx, "", "Could not update quantity", err)
		return err
	}

	zap.S().Infof("📦 UpdateBasketItemQuantity: item=%s, quantity=%d", itemID, quantity)
	if err := s.basketRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		zap.S().Errorf("❌ UpdateBasketItemQuantity: %v", err)
		s.notifyError(ctx, "", "Could not update quantity", err)
		return err
	}
	s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, Title: "Basket updated",
		Message: fmt.Sprintf("Quantity set to %d", quantity)})
	return nil
}

// RemoveFromBasket deletes a line; a line that is already gone counts as removed
func (s *BasketService) RemoveFromBasket(ctx context.Context, itemID string) error {
	item, err := s.basketRepo.GetByID(ctx, itemID)
	if errors.Is(err, models.ErrNotFound) {
		zap.S().Infof("📦 RemoveFromBasket: item=%s already removed", itemID)
		return nil
	}
	if err != nil {
		zap.S().Errorf("❌ RemoveFromBasket: %v", err)
		s.notifyError(ctx, "", "Could not remove item", err)
		return err
	}

	zap.S().Infof("📦 RemoveFromBasket: item=%s, user=%s, product=%s, quantity=%d",
		item.ID, item.UserID, item.ProductID, item.Quantity)
	if err := s.basketRepo.Delete(ctx, itemID); err != nil {
		zap.S().Errorf("❌ RemoveFromBasket: %v", err)
		s.notifyError(ctx, item.UserID, "Could not remove item", err)
		return err
	}
	s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, UserID: item.UserID, Title: "Removed from basket", Message: item.Name})
	return nil
}

// GetBasketItems returns the lines of a user, newest first
func (s *BasketService) GetBasketItems(ctx context.Context, userID string) ([]models.BasketItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", models.ErrInvalidRequest)
	}
	items, err := s.basketRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.S().Errorf("❌ GetBasketItems: %v", err)
		return nil, err
	}
	return items, nil
}

// ClearBasket removes every line of a user in parallel
// Removals that succeeded stay removed when others fail; the error then wraps
// models.ErrPartialClear and the caller has to read the basket again.
func (s *BasketService) ClearBasket(ctx context.Context, userID string) error {
	items, err := s.GetBasketItems(ctx, userID)
	if err != nil {
		return err
	}
	zap.S().Infof("📦 ClearBasket: user=%s, lines=%d", userID, len(items))

	var g errgroup.Group
	g.SetLimit(s.clearConcurrency)
	var failed atomic.Int32
	for _, item := range items {
		id := item.ID
		g.Go(func() error {
			if err := s.basketRepo.Delete(ctx, id); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.S().Errorf("❌ ClearBasket: %d of %d removals failed: %v", failed.Load(), len(items), err)
		s.notifyError(ctx, userID, "Could not clear basket", err)
		return fmt.Errorf("%w: %d of %d removals failed: %w", models.ErrPartialClear, failed.Load(), len(items), err)
	}

	s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, UserID: userID, Title: "Basket cleared",
		Message: fmt.Sprintf("%d items removed", len(items))})
	return nil
}

// GetBasketTotal returns the sum of price times quantity, without VAT or shipping
func (s *BasketService) GetBasketTotal(ctx context.Context, userID string) (float64, error) {
	items, err := s.GetBasketItems(ctx, userID)
	if err != nil {
		return 0, err
	}
	return pricing.Subtotal(items), nil
}

// GetBasketSummary returns subtotal, VAT, shipping and total of a basket
func (s *BasketService) GetBasketSummary(ctx context.Context, userID string) (*models.BasketSummary, error) {
	items, err := s.GetBasketItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return pricing.Summarize(items, s.calculator.Schedule().Totals), nil
}

// GetBasket returns the lines of a user together with their summary
func (s *BasketService) GetBasket(ctx context.Context, userID string) (*models.BasketResponse, error) {
	items, err := s.GetBasketItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.BasketResponse{
		Items:   items,
		Summary: pricing.Summarize(items, s.calculator.Schedule().Totals),
	}, nil
}

func (s *BasketService) notifyError(ctx context.Context, userID, title string, err error) {
	message := "Please try again later"
	switch {
	case errors.Is(err, models.ErrNotFound):
		message = "Product not found"
	case errors.Is(err, models.ErrInvalidConfiguration), errors.Is(err, models.ErrInvalidRequest):
		message = err.Error()
	}
	s.notifier.Notify(ctx, Toast{Kind: ToastError, UserID: userID, Title: title, Message: message})
}
