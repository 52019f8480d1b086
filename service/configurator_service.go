package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"oakframe-configurator/configurator"
	"oakframe-configurator/models"
	"oakframe-configurator/pricing"
	"oakframe-configurator/repository"
)

// ConfiguratorService serves category schemas, live prices and saved configurations
type ConfiguratorService struct {
	savedRepo  repository.SavedConfigurationRepositoryInterface
	calculator *pricing.Calculator
	notifier   Notifier
}

// NewConfiguratorService creates a new ConfiguratorService
func NewConfiguratorService(
	savedRepo repository.SavedConfigurationRepositoryInterface,
	calculator *pricing.Calculator,
	notifier Notifier,
) *ConfiguratorService {
	if calculator == nil {
		calculator = pricing.NewCalculator(nil)
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &ConfiguratorService{savedRepo: savedRepo, calculator: calculator, notifier: notifier}
}

func parseCategory(raw models.ProductCategory) (models.ProductCategory, error) {
	category, ok := models.ParseProductCategory(string(raw))
	if !ok {
		return "", fmt.Errorf("category %q: %w", raw, models.ErrNotFound)
	}
	return category, nil
}

// GetCategoryConfig returns the schema of a category variant and its default state
func (s *ConfiguratorService) GetCategoryConfig(raw models.ProductCategory, variant string) (*models.CategoryConfigResponse, error) {
	category, err := parseCategory(raw)
	if err != nil {
		return nil, err
	}
	cfg := configurator.GetCategoryConfigVariant(category, variant)
	return &models.CategoryConfigResponse{Config: cfg, Defaults: configurator.DefaultsFor(cfg)}, nil
}

// Quote validates a configuration and prices it with a breakdown and a description
func (s *ConfiguratorService) Quote(req models.PriceQuoteRequest) (*models.PriceQuote, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if err := configurator.Validate(category, req.Configuration); err != nil {
		return nil, err
	}

	quote := &models.PriceQuote{
		Category:    category,
		Strategy:    pricing.StrategyFor(category),
		Price:       s.calculator.CalculateProductPrice(category, req.Configuration),
		Description: configurator.GenerateConfigurationDescription(category, req.Configuration),
		Breakdown:   s.calculator.Breakdown(category, req.Configuration),
	}
	zap.S().Debugf("💰 Quote: category=%s, price=%.2f", category, quote.Price)
	return quote, nil
}

// SaveConfiguration stores a named, priced snapshot of a configuration
// Names are unique per user.
func (s *ConfiguratorService) SaveConfiguration(ctx context.Context, req models.SaveConfigurationRequest) (*models.SavedConfiguration, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", models.ErrInvalidRequest)
	}
	if req.Config.IsEmpty() {
		return nil, fmt.Errorf("%w: config is required", models.ErrInvalidRequest)
	}

	quote, err := s.Quote(models.PriceQuoteRequest{Category: req.Category, Configuration: req.Config})
	if err != nil {
		return nil, err
	}
	if quote.Strategy != models.StrategyFixed && quote.Price <= 0 {
		return nil, fmt.Errorf("%w: configuration prices to zero", models.ErrInvalidConfiguration)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = quote.Description
	}

	existing, err := s.savedRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	for _, cfg := range existing {
		if strings.EqualFold(cfg.Name, name) {
			return nil, fmt.Errorf("saved configuration %q: %w", name, models.ErrConflict)
		}
	}

	saved := &models.SavedConfiguration{
		UserID:   req.UserID,
		Category: quote.Category,
		Config:   req.Config.Clone(),
		Price:    quote.Price,
		Name:     name,
	}
	if err := s.savedRepo.Insert(ctx, saved); err != nil {
		zap.S().Errorf("❌ SaveConfiguration: %v", err)
		s.notifier.Notify(ctx, Toast{Kind: ToastError, UserID: req.UserID, Title: "Could not save configuration",
			Message: "Please try again later"})
		return nil, err
	}

	zap.S().Infof("✅ SaveConfiguration: id=%s, user=%s, category=%s", saved.ID, saved.UserID, saved.Category)
	s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, UserID: req.UserID, Title: "Configuration saved", Message: name})
	return saved, nil
}

// ListSavedConfigurations returns the saved configurations of a user, newest first
func (s *ConfiguratorService) ListSavedConfigurations(ctx context.Context, userID string) ([]models.SavedConfiguration, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", models.ErrInvalidRequest)
	}
	return s.savedRepo.ListByUser(ctx, userID)
}

// GetSavedConfiguration returns one saved configuration
func (s *ConfiguratorService) GetSavedConfiguration(ctx context.Context, id string) (*models.SavedConfiguration, error) {
	return s.savedRepo.GetByID(ctx, id)
}

// DeleteSavedConfiguration removes a saved configuration; deleting a missing one succeeds
func (s *ConfiguratorService) DeleteSavedConfiguration(ctx context.Context, id string) error {
	if err := s.savedRepo.Delete(ctx, id); err != nil {
		zap.S().Errorf("❌ DeleteSavedConfiguration: %v", err)
		return err
	}
	s.notifier.Notify(ctx, Toast{Kind: ToastSuccess, Title: "Configuration deleted", Message: id})
	return nil
}
