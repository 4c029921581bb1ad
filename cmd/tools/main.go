package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"listing-scraper/internal/dom"
	"listing-scraper/internal/extract"
	"listing-scraper/internal/logger"
	"listing-scraper/internal/models"
)

func main() {
	// Sub-commands
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	os.Args = os.Args[1:] // Shift args for flag parsing

	switch cmd {
	case "selectors":
		dumpSelectors()
	case "extract":
		extractFile()
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tools <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  selectors   Print the built-in selector table as YAML")
	fmt.Println("  extract     Extract a record from a saved HTML snapshot")
}

func dumpSelectors() {
	flag.Parse()

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(extract.DefaultTable()); err != nil {
		logger.Error("failed to encode selector table", "error", err)
		os.Exit(1)
	}
	enc.Close()
}

func extractFile() {
	htmlPath := flag.String("html", "", "Saved page snapshot")
	sourceURL := flag.String("url", "", "Listing URL the snapshot came from")
	selectorsPath := flag.String("selectors", "", "YAML file overriding the built-in selector table")
	debug := flag.Bool("debug", false, "Log selector misses")
	flag.Parse()

	logger.Init(logger.Options{Debug: *debug})

	if *htmlPath == "" {
		logger.Error("missing -html")
		os.Exit(1)
	}

	table := extract.DefaultTable()
	if *selectorsPath != "" {
		t, err := extract.LoadTable(*selectorsPath)
		if err != nil {
			logger.Error("invalid selector table", "path", *selectorsPath, "error", err)
			os.Exit(1)
		}
		table = t
	}

	f, err := os.Open(*htmlPath)
	if err != nil {
		logger.Error("failed to open snapshot", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	doc, err := dom.ParseReader(f)
	if err != nil {
		logger.Error("failed to parse snapshot", "error", err)
		os.Exit(1)
	}

	p := extract.New(table).Extract(*sourceURL, doc)

	out, err := encodeRecord(p)
	if err != nil {
		logger.Error("failed to encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// encodeRecord renders a record and its metrics as indented JSON.
func encodeRecord(p *models.Property) ([]byte, error) {
	return json.MarshalIndent(struct {
		Record  *models.Property `json:"record"`
		Metrics models.Metrics   `json:"metrics"`
	}{p, p.Metrics()}, "", "  ")
}
