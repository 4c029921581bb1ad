package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"listing-scraper/internal/db"
	"listing-scraper/internal/extract"
	"listing-scraper/internal/logger"
	"listing-scraper/internal/models"
	"listing-scraper/internal/scraper"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults := scraper.DefaultConfig()

	// Parse command line flags
	selectorsPath := flag.String("selectors", "", "YAML file overriding the built-in selector table")
	headless := flag.Bool("headless", defaults.Browser.Headless, "Run browser in headless mode (set false to see browser)")
	chromePath := flag.String("chrome", "", "Path to Chrome or Chromium (default: search common locations)")
	wait := flag.Duration("wait", defaults.Browser.SettleWait, "Time to let client-side rendering settle after load")
	timeout := flag.Duration("timeout", defaults.Timeout, "Overall limit for loading the page (0 disables)")
	stealth := flag.Bool("stealth", false, "Use ScrapingBee stealth proxies (needs SCRAPINGBEE_API_KEY)")
	dbPath := flag.String("db", "", "Also save the record to this SQLite database")
	debug := flag.Bool("debug", false, "Log selector misses and other debug detail")
	quiet := flag.Bool("quiet", false, "Only log errors")
	jsonLogs := flag.Bool("json-logs", false, "Write logs as JSON lines")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <listing-url>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger.Init(logger.Options{Debug: *debug, Quiet: *quiet, JSON: *jsonLogs})

	if flag.NArg() < 1 {
		return fail(&scraper.Error{
			Kind:        scraper.KindUsage,
			Message:     "missing listing URL",
			Remediation: "usage: scraper [options] <listing-url>",
		})
	}
	url := flag.Arg(0)

	table := extract.DefaultTable()
	if *selectorsPath != "" {
		t, err := extract.LoadTable(*selectorsPath)
		if err != nil {
			return fail(&scraper.Error{
				Kind:    scraper.KindConfiguration,
				Message: err.Error(),
				URL:     url,
			})
		}
		table = t
	}

	config := defaults
	config.Browser.Headless = *headless
	config.Browser.ExecPath = *chromePath
	config.Browser.SettleWait = *wait
	config.Timeout = *timeout
	config.ScrapingBeeKey = os.Getenv("SCRAPINGBEE_API_KEY")
	config.ScrapingBeeStealth = *stealth

	s := scraper.New(config, extract.New(table))

	// Setup context with cancellation
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := s.Scrape(ctx, url)
	if err != nil {
		var se *scraper.Error
		if !errors.As(err, &se) {
			se = &scraper.Error{Kind: scraper.KindExtraction, Message: err.Error(), URL: url}
		}
		return fail(se)
	}

	if *dbPath != "" {
		save(*dbPath, p)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		logger.Error("failed to write record", "error", err)
		return 1
	}
	return 0
}

// save stores the record. A storage failure is logged and does not change
// the exit status: the record is still printed.
func save(path string, p *models.Property) {
	database, err := db.New(path)
	if err != nil {
		logger.Error("failed to open database", "path", path, "error", err)
		return
	}
	defer database.Close()

	id, err := database.SaveProperty(p)
	if err != nil {
		logger.Error("failed to save property", "url", p.SourceURL, "error", err)
		return
	}
	logger.Info("property saved", "id", id, "db", path)
}

func fail(e *scraper.Error) int {
	logger.Debug("scrape failed", "kind", e.Kind, "error", e.Err)
	if err := writeError(os.Stderr, e); err != nil {
		logger.Error("failed to write error", "kind", e.Kind, "message", e.Message, "error", err)
	}
	return 1
}

// writeError writes e as the indented JSON error object.
func writeError(w io.Writer, e *scraper.Error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
