package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMetrics(t *testing.T) {
	p := Property{Price: 350000, SquareFootage: 1850, LotSize: 10890}
	m := p.Metrics()

	if m.CurrentValue != 350000 {
		t.Errorf("CurrentValue = %d, want price when no estimate", m.CurrentValue)
	}
	if m.PricePerSqft != 189 {
		t.Errorf("PricePerSqft = %d, want 189", m.PricePerSqft)
	}
	if m.LotSizeAcres != 0.25 {
		t.Errorf("LotSizeAcres = %v, want 0.25", m.LotSizeAcres)
	}
}

func TestMetrics_PrefersEstimateAndGuardsZero(t *testing.T) {
	p := Property{Price: 350000, EstimatedValue: 362500}
	m := p.Metrics()

	if m.CurrentValue != 362500 {
		t.Errorf("CurrentValue = %d, want estimate", m.CurrentValue)
	}
	if m.PricePerSqft != 0 || m.LotSizeAcres != 0 {
		t.Errorf("expected zero metrics without sqft/lot, got %+v", m)
	}
}

func TestPropertyJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Property{SourceURL: "u", Photos: []string{}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := string(data)
	for _, key := range []string{
		`"sourceUrl"`, `"identifier":null`, `"zipCode"`, `"squareFootage"`,
		`"lotSize"`, `"yearBuilt"`, `"propertyType"`, `"photos":[]`, `"estimatedValue"`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %s in %s", key, out)
		}
	}
}
