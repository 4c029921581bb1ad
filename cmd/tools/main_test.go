package main

import (
	"encoding/json"
	"testing"

	"listing-scraper/internal/models"
)

func TestEncodeRecord(t *testing.T) {
	p := &models.Property{
		SourceURL:     "https://www.zillow.com/homedetails/x/1_zpid/",
		Price:         300000,
		SquareFootage: 1500,
		PropertyType:  "Single Family",
		Photos:        []string{},
	}

	out, err := encodeRecord(p)
	if err != nil {
		t.Fatalf("encodeRecord() error = %v", err)
	}

	var got struct {
		Record  models.Property `json:"record"`
		Metrics models.Metrics  `json:"metrics"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Record.SourceURL != p.SourceURL || got.Metrics.PricePerSqft != 200 {
		t.Errorf("unexpected output %s", out)
	}
}
