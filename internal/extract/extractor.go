package extract

import (
	"listing-scraper/internal/logger"
	"listing-scraper/internal/models"
)

// setters write a coerced value into the record, one per known field.
var setters = map[string]func(*models.Property, Value){
	FieldAddress:        func(p *models.Property, v Value) { p.Address = v.Text },
	FieldPrice:          func(p *models.Property, v Value) { p.Price = v.Number },
	FieldBedrooms:       func(p *models.Property, v Value) { p.Bedrooms = v.Number },
	FieldBathrooms:      func(p *models.Property, v Value) { p.Bathrooms = v.Number },
	FieldSquareFootage:  func(p *models.Property, v Value) { p.SquareFootage = v.Number },
	FieldLotSize:        func(p *models.Property, v Value) { p.LotSize = v.Number },
	FieldYearBuilt:      func(p *models.Property, v Value) { p.YearBuilt = v.Number },
	FieldPropertyType:   func(p *models.Property, v Value) { p.PropertyType = v.Text },
	FieldDescription:    func(p *models.Property, v Value) { p.Description = v.Text },
	FieldEstimatedValue: func(p *models.Property, v Value) { p.EstimatedValue = v.Number },
}

// Extractor assembles records using a fixed selector table.
type Extractor struct {
	table Table
}

// New creates an Extractor. The table is expected to have passed Validate;
// DefaultTable always does.
func New(table Table) *Extractor {
	return &Extractor{table: table}
}

// Extract builds a record for sourceURL from the page behind q. Fields whose
// selectors all miss keep their zero value; Extract itself cannot fail.
func (e *Extractor) Extract(sourceURL string, q Querier) *models.Property {
	p := &models.Property{SourceURL: sourceURL}
	if id, ok := Identifier(sourceURL); ok {
		p.Identifier = &id
	}

	found := 0
	for _, f := range e.table.Fields {
		set, ok := setters[f.Name]
		if !ok {
			continue
		}
		raw := Resolve(q, f.Selectors)
		if raw != "" {
			found++
		}
		set(p, Coerce(f.kind(), raw))
	}

	if p.PropertyType == "" {
		p.PropertyType = e.table.DefaultPropertyType
	}

	ph := e.table.Photos
	limit := ph.Limit
	if limit <= 0 || limit > MaxPhotos {
		limit = MaxPhotos
	}
	p.Photos = CollectPhotos(q, ph.Selectors, ph.Pattern, limit)

	if p.Address != "" {
		a := Decompose(p.Address)
		p.City, p.State, p.ZipCode = a.City, a.State, a.ZipCode
	}

	logger.Debug("record assembled",
		"url", sourceURL,
		"fields_found", found,
		"fields_total", len(e.table.Fields),
		"photos", len(p.Photos))

	return p
}
