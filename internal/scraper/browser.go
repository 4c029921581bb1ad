package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"listing-scraper/internal/logger"
)

// BrowserConfig holds headless Chrome settings. None of them change what is
// extracted; they only make the session look like an ordinary desktop browser.
type BrowserConfig struct {
	Headless     bool
	ExecPath     string // empty: search common locations
	UserAgent    string
	WindowWidth  int
	WindowHeight int
	// SettleWait is slept after navigation so client-side rendering can finish.
	SettleWait time.Duration
}

// DefaultBrowserConfig returns default browser settings
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless:     true,
		UserAgent:    "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		WindowWidth:  1920,
		WindowHeight: 1080,
		SettleWait:   3 * time.Second,
	}
}

// hideAutomationJS runs before any page script.
const hideAutomationJS = `
Object.defineProperty(navigator, 'webdriver', {get: () => undefined});
Object.defineProperty(navigator, 'plugins', {get: () => [1, 2, 3, 4, 5]});
Object.defineProperty(navigator, 'languages', {get: () => ['en-US', 'en']});
`

// Browser renders pages with a fresh headless Chrome per call.
type Browser struct {
	config BrowserConfig
}

// NewBrowser creates a browser renderer
func NewBrowser(config BrowserConfig) *Browser {
	return &Browser{config: config}
}

// Session is one running Chrome instance with a single tab.
type Session struct {
	ctx    context.Context
	cancel func()
}

// Open launches Chrome. The caller must Close the session.
func (b *Browser) Open(ctx context.Context) (*Session, error) {
	execPath, err := resolveChromePath(b.config.ExecPath)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.Flag("headless", b.config.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		// Anti-detection flags
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.WindowSize(b.config.WindowWidth, b.config.WindowHeight),
		chromedp.UserAgent(b.config.UserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	s := &Session{
		ctx: tabCtx,
		cancel: func() {
			cancelTab()
			cancelAlloc()
		},
	}

	// The first Run starts the browser, so launch failures surface here.
	err = chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(hideAutomationJS).Do(ctx)
		return err
	}))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	logger.Debug("browser session opened", "exec", execPath, "headless", b.config.Headless)
	return s, nil
}

// Load navigates to url, waits settle, and returns the rendered HTML.
func (s *Session) Load(url string, settle time.Duration) (string, error) {
	var html string
	err := chromedp.Run(s.ctx,
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("navigation failed: %w", err)
	}
	return html, nil
}

// Close shuts the browser down. It is safe to call more than once.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Render opens a session, snapshots url and always closes the session.
func (b *Browser) Render(ctx context.Context, url string) (string, error) {
	s, err := b.Open(ctx)
	if err != nil {
		return "", err
	}
	defer s.Close()

	html, err := s.Load(url, b.config.SettleWait)
	if err != nil {
		return "", err
	}

	logger.Debug("page rendered", "url", url, "bytes", len(html))
	return html, nil
}
