package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oakframe-configurator/configurator"
	"oakframe-configurator/models"
)

func TestConfiguratorService_GetCategoryConfig(t *testing.T) {
	f := newFixture(t)
	svc := NewConfiguratorService(f.saved, nil, f.notifier)

	resp, err := svc.GetCategoryConfig("Garages", "")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGarages, resp.Config.Category)
	assert.Equal(t, "6x6", resp.Defaults["beamSize"])

	floor, err := svc.GetCategoryConfig(models.CategoryOakFlooring, configurator.VariantOakType)
	require.NoError(t, err)
	_, hasOak := floor.Config.Option("oakType")
	assert.True(t, hasOak)

	_, err = svc.GetCategoryConfig("sheds", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConfiguratorService_Quote(t *testing.T) {
	f := newFixture(t)
	svc := NewConfiguratorService(f.saved, nil, f.notifier)

	quote, err := svc.Quote(models.PriceQuoteRequest{
		Category:      models.CategoryOakBeams,
		Configuration: models.ConfigState{"dimensions": map[string]any{"length": 200, "width": 15, "thickness": 15}, "oakType": "green"},
	})
	require.NoError(t, err)
	assert.Equal(t, 36.0, quote.Price)
	assert.Equal(t, models.StrategyVolume, quote.Strategy)
	assert.Equal(t, "Green oak beam 200 x 15 x 15 cm (0.045 m³)", quote.Description)
	require.Len(t, quote.Breakdown, 1)

	deal, err := svc.Quote(models.PriceQuoteRequest{Category: models.CategorySpecialDeals})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyFixed, deal.Strategy)
	assert.Equal(t, 0.0, deal.Price)
	assert.Empty(t, deal.Breakdown)

	_, err = svc.Quote(models.PriceQuoteRequest{Category: models.CategoryGarages, Configuration: models.ConfigState{"bays": []int{9}}})
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)

	_, err = svc.Quote(models.PriceQuoteRequest{Category: "sheds"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConfiguratorService_SavedConfigurations(t *testing.T) {
	f := newFixture(t)
	svc := NewConfiguratorService(f.saved, nil, f.notifier)
	ctx := context.Background()

	saved, err := svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{
		UserID:   "u1",
		Category: models.CategoryGazebos,
		Config:   models.ConfigState{"size": "large", "roofStyle": "hipped", "sides": []int{2}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 5000.0+800+300+500, saved.Price)
	assert.Equal(t, "Large oak gazebo with hipped roof, 2 enclosed sides", saved.Name)
	assert.Equal(t, ToastSuccess, f.notifier.last().Kind)

	_, err = svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{
		UserID: "u1", Category: models.CategoryGarages, Name: "  Workshop ", Config: garageConfig(),
	})
	require.NoError(t, err)

	_, err = svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{
		UserID: "u1", Category: models.CategoryPorches, Name: "workshop", Config: models.ConfigState{"legType": "floor"},
	})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{
		UserID: "u2", Category: models.CategoryPorches, Name: "workshop", Config: models.ConfigState{"legType": "floor"},
	})
	require.NoError(t, err)

	list, err := svc.ListSavedConfigurations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	got, err := svc.GetSavedConfiguration(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "large", got.Config["size"])

	require.NoError(t, svc.DeleteSavedConfiguration(ctx, saved.ID))
	require.NoError(t, svc.DeleteSavedConfiguration(ctx, saved.ID))
	_, err = svc.GetSavedConfiguration(ctx, saved.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConfiguratorService_SaveRejections(t *testing.T) {
	f := newFixture(t)
	svc := NewConfiguratorService(f.saved, nil, f.notifier)
	ctx := context.Background()

	_, err := svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{Category: models.CategoryGarages, Config: garageConfig()})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{UserID: "u1", Category: models.CategoryGarages})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.SaveConfiguration(ctx, models.SaveConfigurationRequest{
		UserID: "u1", Category: models.CategoryOakFlooring, Config: models.ConfigState{"finish": "oiled"},
	})
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)

	_, err = svc.ListSavedConfigurations(ctx, "")
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}
