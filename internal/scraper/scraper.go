package scraper

import (
	"context"
	"strings"
	"time"

	"listing-scraper/internal/dom"
	"listing-scraper/internal/extract"
	"listing-scraper/internal/logger"
	"listing-scraper/internal/models"
)

// Renderer produces the rendered HTML of a page. Implementations own their
// browser session and release it before returning.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// Config holds scraper configuration
type Config struct {
	Browser BrowserConfig
	// ScrapingBeeKey switches rendering to ScrapingBee when set.
	ScrapingBeeKey string
	// ScrapingBeeStealth uses stealth proxies instead of premium ones.
	ScrapingBeeStealth bool
	// Timeout bounds the whole render; zero means no limit.
	Timeout time.Duration
}

// DefaultConfig returns default scraper settings
func DefaultConfig() Config {
	return Config{
		Browser: DefaultBrowserConfig(),
		Timeout: 60 * time.Second,
	}
}

// Scraper turns a listing URL into a record.
type Scraper struct {
	renderer  Renderer
	extractor *extract.Extractor
	timeout   time.Duration
}

// New creates a Scraper that renders with ScrapingBee when a key is
// configured and with a local headless Chrome otherwise.
func New(config Config, extractor *extract.Extractor) *Scraper {
	var r Renderer
	if config.ScrapingBeeKey != "" {
		opts := DefaultScrapingBeeOptions()
		opts.Wait = config.Browser.SettleWait
		opts.Stealth = config.ScrapingBeeStealth
		r = NewScrapingBee(config.ScrapingBeeKey, opts)
	} else {
		r = NewBrowser(config.Browser)
	}
	s := NewWithRenderer(r, extractor)
	s.timeout = config.Timeout
	return s
}

// NewWithRenderer creates a Scraper around an existing renderer.
func NewWithRenderer(r Renderer, extractor *extract.Extractor) *Scraper {
	return &Scraper{renderer: r, extractor: extractor}
}

// Scrape renders url and extracts a record. It returns either a complete
// record, however sparse, or an *Error and no record.
func (s *Scraper) Scrape(ctx context.Context, url string) (*models.Property, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, newError(KindUsage, "", "missing listing URL", nil)
	}
	log := logger.With("url", url)
	if !extract.IsListingURL(url) {
		log.Warn("URL does not look like a listing page, extracting anyway")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	html, err := s.renderer.Render(ctx, url)
	if err != nil {
		return nil, classify(url, err)
	}

	doc, err := dom.Parse(html)
	if err != nil {
		return nil, newError(KindExtraction, url, "failed to read page snapshot", err)
	}

	p := s.extractor.Extract(url, doc)

	log.Info("listing extracted",
		"title", doc.Title(),
		"address", p.Address,
		"photos", len(p.Photos),
		"duration", time.Since(start).Round(time.Millisecond))

	return p, nil
}
