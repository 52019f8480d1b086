package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"oakframe-configurator/models"
	"oakframe-configurator/pricing"
	"oakframe-configurator/repository"
)

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []Toast
}

func (n *recordingNotifier) Notify(_ context.Context, toast Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast)
}

func (n *recordingNotifier) last() Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

type fixture struct {
	store    *repository.BoltStore
	products *repository.BoltProductRepository
	basket   *repository.BoltBasketRepository
	saved    *repository.BoltSavedConfigurationRepository
	notifier *recordingNotifier
	service  *BasketService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := repository.OpenBoltStore(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	f := &fixture{
		store:    store,
		products: repository.NewBoltProductRepository(store),
		basket:   repository.NewBoltBasketRepository(store),
		saved:    repository.NewBoltSavedConfigurationRepository(store),
		notifier: &recordingNotifier{},
	}
	f.service = NewBasketService(f.basket, f.products, pricing.NewCalculator(nil), f.notifier, 4)

	ctx := context.Background()
	for _, p := range []models.Product{
		{ID: "garage1", Name: "Oak Frame Garage", Price: 8000, Category: models.CategoryGarages, IsActive: true},
		{ID: "beam1", Name: "Oak Beam", Price: 36, Category: models.CategoryOakBeams, IsActive: true},
		{ID: "floor1", Name: "Oak Flooring", Price: 65, Category: models.CategoryOakFlooring, IsActive: true},
		{ID: "deal1", Name: "Gazebo Kit Offer", Price: 2999, Category: models.CategorySpecialDeals, IsActive: true},
		{ID: "retired", Name: "Old Porch", Price: 3000, Category: models.CategoryPorches, IsActive: false},
	} {
		p := p
		require.NoError(t, f.products.Upsert(ctx, &p))
	}
	return f
}

// flakyBasketRepository fails Delete for the listed ids
type flakyBasketRepository struct {
	repository.BasketRepositoryInterface
	failIDs map[string]bool
}

func (r *flakyBasketRepository) Delete(ctx context.Context, id string) error {
	if r.failIDs[id] {
		return fmt.Errorf("failed to delete basket item: %w: %w", models.ErrStoreUnavailable, errors.New("connection reset"))
	}
	return r.BasketRepositoryInterface.Delete(ctx, id)
}
