package router

import (
	"net/http"
	"strings"

	"oakframe-configurator/app/controller"
)

type Controllers struct {
	Basket       *controller.BasketController
	Configurator *controller.ConfiguratorController
	Quote        *controller.QuoteController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every endpoint on mux and returns it wrapped in the request middleware
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) http.Handler {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Configurator routes
	mux.HandleFunc("/api/categories/", controllers.Configurator.CategoryConfig)
	mux.HandleFunc("/api/configurator/price", controllers.Configurator.Price)

	// Saved configurations
	mux.HandleFunc("/api/configurations", controllers.Configurator.Configurations)
	mux.HandleFunc("/api/configurations/", controllers.Configurator.Configuration)

	// Basket routes
	mux.HandleFunc("/api/basket", controllers.Basket.Basket)
	mux.HandleFunc("/api/basket/items", controllers.Basket.AddItem)
	mux.HandleFunc("/api/basket/items/", func(w http.ResponseWriter, r *http.Request) {
		// POST /api/basket/items/ is the collection with a trailing slash
		if strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/basket/items"), "/") == "" {
			controllers.Basket.AddItem(w, r)
			return
		}
		controllers.Basket.Item(w, r)
	})

	// Printable quote
	if controllers.Quote != nil {
		mux.HandleFunc("/api/basket/quote", controllers.Quote.Quote)
	}

	return withRecovery(withRequestLog(mux))
}
