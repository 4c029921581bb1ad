package models

import (
	"math"
	"time"
)

// Property is one extracted listing record. Integer fields use 0 for unknown.
type Property struct {
	SourceURL      string   `json:"sourceUrl"`
	Identifier     *string  `json:"identifier"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zipCode"`
	Price          int      `json:"price"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	SquareFootage  int      `json:"squareFootage"`
	LotSize        int      `json:"lotSize"`
	YearBuilt      int      `json:"yearBuilt"`
	PropertyType   string   `json:"propertyType"`
	Description    string   `json:"description"`
	Photos         []string `json:"photos"`
	EstimatedValue int      `json:"estimatedValue"`
}

// Metrics are values derived from a record for display.
type Metrics struct {
	CurrentValue int     `json:"currentValue"`
	PricePerSqft int     `json:"pricePerSqft"`
	LotSizeAcres float64 `json:"lotSizeAcres"`
}

const sqftPerAcre = 43560

// Metrics computes display metrics. Unknown inputs produce 0.
func (p *Property) Metrics() Metrics {
	m := Metrics{CurrentValue: p.EstimatedValue}
	if m.CurrentValue == 0 {
		m.CurrentValue = p.Price
	}
	if p.SquareFootage > 0 {
		m.PricePerSqft = int(math.Round(float64(p.Price) / float64(p.SquareFootage)))
	}
	if p.LotSize > 0 {
		m.LotSizeAcres = math.Round(float64(p.LotSize)/sqftPerAcre*100) / 100
	}
	return m
}

// StoredProperty is a saved record with its database metadata.
type StoredProperty struct {
	ID        int64     `json:"id"`
	ScrapedAt time.Time `json:"scrapedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Property
}

// PropertyListItem is a lightweight row for listing saved properties.
type PropertyListItem struct {
	ID           int64  `db:"id" json:"id"`
	Identifier   string `db:"identifier" json:"identifier"`
	Address      string `db:"address" json:"address"`
	City         string `db:"city" json:"city"`
	State        string `db:"state" json:"state"`
	Price        int    `db:"price" json:"price"`
	PropertyType string `db:"property_type" json:"propertyType"`
	SourceURL    string `db:"source_url" json:"sourceUrl"`
}
