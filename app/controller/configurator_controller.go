package controller

import (
	"net/http"
	"strings"

	"oakframe-configurator/models"
	"oakframe-configurator/service"
)

// ConfiguratorController handles category schemas, live prices and saved configurations
type ConfiguratorController struct {
	service *service.ConfiguratorService
}

// NewConfiguratorController creates a new ConfiguratorController
func NewConfiguratorController(svc *service.ConfiguratorService) *ConfiguratorController {
	return &ConfiguratorController{service: svc}
}

// CategoryConfig handles GET /api/categories/{category}/config?variant=oak-type
func (c *ConfiguratorController) CategoryConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "CategoryConfig", r.Method)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	category, ok := strings.CutSuffix(rest, "/config")
	if !ok || category == "" || strings.Contains(category, "/") {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	resp, err := c.service.GetCategoryConfig(models.ProductCategory(category), r.URL.Query().Get("variant"))
	if err != nil {
		writeError(w, "CategoryConfig", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Price handles POST /api/configurator/price
// Example request:
// {"category": "oak-beams", "configuration": {"dimensions": {"length": 200, "width": 15, "thickness": 15}, "oakType": "green"}}
// Example response:
// {"category": "oak-beams", "strategy": "volume", "price": 36, "description": "Green oak beam 200 x 15 x 15 cm (0.045 m³)", "breakdown": [...]}
func (c *ConfiguratorController) Price(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "Price", r.Method)
		return
	}

	var req models.PriceQuoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, "Price", err)
		return
	}
	quote, err := c.service.Quote(req)
	if err != nil {
		writeError(w, "Price", err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// Configurations handles POST /api/configurations and GET /api/configurations?userId=u1
func (c *ConfiguratorController) Configurations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req models.SaveConfigurationRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, "SaveConfiguration", err)
			return
		}
		saved, err := c.service.SaveConfiguration(r.Context(), req)
		if err != nil {
			writeError(w, "SaveConfiguration", err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	case http.MethodGet:
		list, err := c.service.ListSavedConfigurations(r.Context(), r.URL.Query().Get("userId"))
		if err != nil {
			writeError(w, "ListConfigurations", err)
			return
		}
		writeJSON(w, http.StatusOK, models.SavedConfigurationListResponse{Configurations: list})
	default:
		methodNotAllowed(w, "Configurations", r.Method)
	}
}

// Configuration handles GET and DELETE /api/configurations/{id}
func (c *ConfiguratorController) Configuration(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/configurations/")
	if id == "" {
		writeError(w, "Configuration", missingParam("configuration id"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		saved, err := c.service.GetSavedConfiguration(r.Context(), id)
		if err != nil {
			writeError(w, "GetConfiguration", err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	case http.MethodDelete:
		if err := c.service.DeleteSavedConfiguration(r.Context(), id); err != nil {
			writeError(w, "DeleteConfiguration", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, "Configuration", r.Method)
	}
}
