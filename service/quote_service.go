package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"oakframe-configurator/models"
	"oakframe-configurator/utils"
)

//go:embed templates/quote.html
var quoteTemplateHTML string

var quoteTemplate = template.Must(template.New("quote").Parse(quoteTemplateHTML))

// QuoteLine is one rendered basket line
type QuoteLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
	Thumbnail template.URL
}

// QuoteDocument is the data behind a printable basket quote
type QuoteDocument struct {
	Reference    string
	UserID       string
	IssuedAt     string
	Lines        []QuoteLine
	Subtotal     string
	VAT          string
	Shipping     string
	Total        string
	ShippingNote string
}

// QuoteService renders a user's basket as an HTML or PDF quote
type QuoteService struct {
	baskets    *BasketService
	images     *ImageCache
	client     *http.Client
	baseURL    string // Base URL for relative product image paths (e.g., "http://localhost:8080")
	chromePath string
	now        func() time.Time
}

// NewQuoteService creates a new QuoteService
// images may be nil, in which case quotes are rendered without thumbnails.
func NewQuoteService(baskets *BasketService, images *ImageCache, baseURL, chromePath string) *QuoteService {
	return &QuoteService{
		baskets:    baskets,
		images:     images,
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		chromePath: chromePath,
		now:        time.Now,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// BuildQuote collects the basket lines and totals of a user, formatted for display
func (s *QuoteService) BuildQuote(ctx context.Context, userID string) (*QuoteDocument, error) {
	basket, err := s.baskets.GetBasket(ctx, userID)
	if err != nil {
		return nil, err
	}

	issued := s.now()
	doc := &QuoteDocument{
		Reference: fmt.Sprintf("Q-%s-%s", issued.Format("20060102"), shortUser(userID)),
		UserID:    userID,
		IssuedAt:  issued.Format("2 January 2006"),
		Subtotal:  utils.FormatGBP(basket.Summary.Subtotal),
		VAT:       utils.FormatGBP(basket.Summary.VAT),
		Shipping:  utils.FormatGBP(basket.Summary.Shipping),
		Total:     utils.FormatGBP(basket.Summary.Total),
	}
	if basket.Summary.Shipping == 0 {
		doc.ShippingNote = "Delivery is included."
	} else {
		doc.ShippingNote = fmt.Sprintf("Free delivery on orders over %s.", utils.FormatGBP(basket.Summary.FreeShippingThreshold))
	}

	for _, item := range basket.Items {
		doc.Lines = append(doc.Lines, QuoteLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: utils.FormatGBP(item.Price),
			LineTotal: utils.FormatGBP(item.LineTotal()),
			Thumbnail: s.thumbnail(ctx, item),
		})
	}
	return doc, nil
}

// RenderQuoteHTML renders the quote template for a user's basket
func (s *QuoteService) RenderQuoteHTML(ctx context.Context, userID string) (string, error) {
	doc, err := s.BuildQuote(ctx, userID)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the rendered quote to an A4 PDF with headless Chrome
func (s *QuoteService) GeneratePDF(ctx context.Context, userID string) ([]byte, error) {
	html, err := s.RenderQuoteHTML(ctx, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 is 8.27" x 11.69"; margins come from the @page rule
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		zap.S().Errorf("❌ GeneratePDF: %v", err)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	zap.S().Infof("✅ GeneratePDF: user=%s, %d bytes", userID, len(pdfBuf))
	return pdfBuf, nil
}

// thumbnail returns a data URI of the optimized product image, or "" when unavailable
func (s *QuoteService) thumbnail(ctx context.Context, item models.BasketItem) template.URL {
	if s.images == nil || item.Image == "" {
		return ""
	}

	data, ok := s.images.Get(item.ProductID, SizeThumb)
	if !ok {
		raw, err := s.fetchImage(ctx, item.Image)
		if err != nil {
			zap.S().Warnf("⚠️  Failed to fetch image for product %s: %v", item.ProductID, err)
			return ""
		}
		data, err = OptimizeImage(raw, SizeThumb)
		if err != nil {
			zap.S().Warnf("⚠️  Failed to optimize image for product %s: %v", item.ProductID, err)
			return ""
		}
		if err := s.images.Put(item.ProductID, SizeThumb, data); err != nil {
			zap.S().Warnf("⚠️  %v", err)
		}
	}
	return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data))
}

// fetchImage downloads a product image; relative paths are resolved against the base URL
func (s *QuoteService) fetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	fullURL := imageURL
	if strings.HasPrefix(imageURL, "/") {
		fullURL = s.baseURL + imageURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

func shortUser(userID string) string {
	clean := strings.ToUpper(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, userID))
	if len(clean) > 8 {
		clean = clean[:8]
	}
	if clean == "" {
		clean = "GUEST"
	}
	return clean
}
