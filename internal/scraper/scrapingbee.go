package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"listing-scraper/internal/logger"
)

// ScrapingBee renders pages through ScrapingBee's hosted browsers instead of
// a local Chrome.
type ScrapingBee struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	options    ScrapingBeeOptions
}

// ScrapingBeeOptions configures the ScrapingBee request
type ScrapingBeeOptions struct {
	// RenderJS enables JavaScript rendering (needed for dynamic content)
	RenderJS bool
	// Premium uses residential proxies
	Premium bool
	// Stealth uses stealth proxies (75 credits per request instead of 25)
	Stealth bool
	// Country sets the proxy country (e.g. "us")
	Country string
	// Wait adds a fixed delay after page load
	Wait time.Duration
}

// DefaultScrapingBeeOptions renders JavaScript and waits the same settle time
// as the local browser.
func DefaultScrapingBeeOptions() ScrapingBeeOptions {
	return ScrapingBeeOptions{
		RenderJS: true,
		Premium:  true,
		Country:  "us",
		Wait:     DefaultBrowserConfig().SettleWait,
	}
}

// NewScrapingBee creates a ScrapingBee renderer
func NewScrapingBee(apiKey string, opts ScrapingBeeOptions) *ScrapingBee {
	return &ScrapingBee{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 180 * time.Second, // stealth mode can take up to 3 minutes
		},
		baseURL: "https://app.scrapingbee.com/api/v1/",
		options: opts,
	}
}

// Render fetches the rendered HTML of targetURL.
func (c *ScrapingBee) Render(ctx context.Context, targetURL string) (string, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("url", targetURL)

	opts := c.options
	if opts.RenderJS {
		params.Set("render_js", "true")
	}
	if opts.Stealth {
		params.Set("stealth_proxy", "true")
	} else if opts.Premium {
		params.Set("premium_proxy", "true")
	}
	if opts.Country != "" {
		params.Set("country_code", opts.Country)
	}
	if opts.Wait > 0 {
		params.Set("wait", strconv.FormatInt(opts.Wait.Milliseconds(), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	// ScrapingBee returns error details in the response body
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ScrapingBee error (HTTP %d): %s", resp.StatusCode, string(body))
	}

	logger.Debug("page rendered via ScrapingBee",
		"url", targetURL,
		"bytes", len(body),
		"cost", resp.Header.Get("Spb-Cost"))

	return string(body), nil
}
