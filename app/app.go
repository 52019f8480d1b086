package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"oakframe-configurator/app/controller"
	"oakframe-configurator/app/router"
	"oakframe-configurator/config"
	"oakframe-configurator/db"
	"oakframe-configurator/pricing"
	"oakframe-configurator/repository"
	"oakframe-configurator/service"
)

// App is the wired HTTP handler together with the resources it holds open
type App struct {
	Handler http.Handler
	closers []func() error
}

// Close releases the store connections
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type stores struct {
	products repository.ProductRepositoryInterface
	basket   repository.BasketRepositoryInterface
	saved    repository.SavedConfigurationRepositoryInterface
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Load price schedule
	schedule := pricing.DefaultSchedule()
	if cfg.PriceSchedulePath != "" {
		loaded, err := pricing.LoadSchedule(cfg.PriceSchedulePath)
		if err != nil {
			return nil, err
		}
		schedule = loaded
	}

	a := &App{}
	st, err := openStores(ctx, cfg, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	images, err := service.NewImageCache(cfg.ImageCacheDir)
	if err != nil {
		zap.S().Warnf("⚠️  Quotes will render without thumbnails: %v", err)
	}

	calculator := pricing.NewCalculator(schedule)
	notifier := service.NewLogNotifier()
	basketService := service.NewBasketService(st.basket, st.products, calculator, notifier, cfg.ClearConcurrency)
	configuratorService := service.NewConfiguratorService(st.saved, calculator, notifier)
	quoteService := service.NewQuoteService(basketService, images, cfg.BaseURL, cfg.ChromePath)

	// Create controllers
	controllers := &router.Controllers{
		Basket:       controller.NewBasketController(basketService),
		Configurator: controller.NewConfiguratorController(configuratorService),
		Quote:        controller.NewQuoteController(quoteService),
	}

	// Setup routes using standard http router
	a.Handler = router.SetupRoutes(http.NewServeMux(), controllers)
	return a, nil
}

func openStores(ctx context.Context, cfg config.Config, a *App) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverBolt:
		store, err := repository.OpenBoltStore(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return &stores{
			products: repository.NewBoltProductRepository(store),
			basket:   repository.NewBoltBasketRepository(store),
			saved:    repository.NewBoltSavedConfigurationRepository(store),
		}, nil
	default:
		if err := db.InitDB(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, db.CloseDB)
		if err := db.EnsureSchema(ctx, db.DB); err != nil {
			return nil, err
		}
		return &stores{
			products: repository.NewProductRepository(),
			basket:   repository.NewBasketRepository(),
			saved:    repository.NewSavedConfigurationRepository(),
		}, nil
	}
}
