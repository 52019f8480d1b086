package controller

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"oakframe-configurator/service"
)

// QuoteController serves printable basket quotes
type QuoteController struct {
	service *service.QuoteService
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(svc *service.QuoteService) *QuoteController {
	return &QuoteController{service: svc}
}

// Quote handles GET /api/basket/quote?userId=u1&format=pdf|html
// format defaults to pdf.
func (c *QuoteController) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "Quote", r.Method)
		return
	}

	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		writeError(w, "Quote", missingParam("userId"))
		return
	}
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "pdf"
	}

	switch format {
	case "html":
		html, err := c.service.RenderQuoteHTML(r.Context(), userID)
		if err != nil {
			writeError(w, "Quote", err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	case "pdf":
		pdf, err := c.service.GeneratePDF(r.Context(), userID)
		if err != nil {
			writeError(w, "Quote", err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="quote.pdf"`)
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			zap.S().Errorf("❌ Quote: Error writing PDF: %v", err)
		}
	default:
		writeError(w, "Quote", &requestError{msg: "Invalid format. Valid formats: html, pdf"})
	}
}
