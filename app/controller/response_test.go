package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"oakframe-configurator/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: quantity must be positive", models.ErrInvalidRequest), http.StatusBadRequest},
		{fmt.Errorf("%w: Bays must be between 1 and 6", models.ErrInvalidConfiguration), http.StatusBadRequest},
		{fmt.Errorf("product p1: %w", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("saved configuration %q: %w", "Workshop", models.ErrConflict), http.StatusConflict},
		{fmt.Errorf("failed to query basket: %w: %w", models.ErrStoreUnavailable, errors.New("timeout")), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: 1 of 3 removals failed: %w", models.ErrPartialClear, errors.New("disk full")), http.StatusInternalServerError},
		{invalidBody(errors.New("unexpected EOF")), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, "Test", fmt.Errorf("failed to query basket: %w: %w", models.ErrStoreUnavailable, errors.New("dial tcp 10.0.0.3:5432")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestPathID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/basket/items/abc-123", nil)
	assert.Equal(t, "abc-123", pathID(r, "/api/basket/items/"))

	r = httptest.NewRequest(http.MethodGet, "/api/basket/items/abc/extra", nil)
	assert.Equal(t, "", pathID(r, "/api/basket/items/"))
}
