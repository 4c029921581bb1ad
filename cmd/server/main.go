package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"listing-scraper/internal/api"
	"listing-scraper/internal/db"
	"listing-scraper/internal/extract"
	"listing-scraper/internal/logger"
	"listing-scraper/internal/scraper"
)

func main() {
	defaults := scraper.DefaultConfig()

	// Parse command line flags
	port := flag.Int("port", 8080, "Port to listen on")
	dbPath := flag.String("db", "", "Path to SQLite database")
	selectorsPath := flag.String("selectors", "", "YAML file overriding the built-in selector table")
	chromePath := flag.String("chrome", "", "Path to Chrome or Chromium (default: search common locations)")
	wait := flag.Duration("wait", defaults.Browser.SettleWait, "Time to let client-side rendering settle after load")
	timeout := flag.Duration("timeout", defaults.Timeout, "Per-request limit for loading a page (0 disables)")
	stealth := flag.Bool("stealth", false, "Use ScrapingBee stealth proxies (needs SCRAPINGBEE_API_KEY)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	jsonLogs := flag.Bool("json-logs", false, "Write logs as JSON lines")
	flag.Parse()

	logger.Init(logger.Options{Debug: *debug, JSON: *jsonLogs})

	// Default database path
	if *dbPath == "" {
		cwd, _ := os.Getwd()
		*dbPath = filepath.Join(cwd, "data", "listings.db")
	}
	logger.Info("using database", "path", *dbPath)

	// Initialize database
	database, err := db.New(*dbPath)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	table := extract.DefaultTable()
	if *selectorsPath != "" {
		table, err = extract.LoadTable(*selectorsPath)
		if err != nil {
			logger.Error("invalid selector table", "path", *selectorsPath, "error", err)
			os.Exit(1)
		}
	}

	config := defaults
	config.Browser.ExecPath = *chromePath
	config.Browser.SettleWait = *wait
	config.Timeout = *timeout
	config.ScrapingBeeKey = os.Getenv("SCRAPINGBEE_API_KEY")
	config.ScrapingBeeStealth = *stealth

	s := scraper.New(config, extract.New(table))

	// Create router
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: api.NewRouter(database, s),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	logger.Info("starting server", "addr", "http://localhost"+server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
