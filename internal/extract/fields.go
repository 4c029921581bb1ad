package extract

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Field names, as they appear in selector table files.
const (
	FieldAddress        = "address"
	FieldPrice          = "price"
	FieldBedrooms       = "bedrooms"
	FieldBathrooms      = "bathrooms"
	FieldSquareFootage  = "squareFootage"
	FieldLotSize        = "lotSize"
	FieldYearBuilt      = "yearBuilt"
	FieldPropertyType   = "propertyType"
	FieldDescription    = "description"
	FieldEstimatedValue = "estimatedValue"
)

// fieldKinds fixes the coercion for every known field.
var fieldKinds = map[string]Kind{
	FieldAddress:        KindText,
	FieldPrice:          KindCurrency,
	FieldBedrooms:       KindCount,
	FieldBathrooms:      KindCount,
	FieldSquareFootage:  KindCount,
	FieldLotSize:        KindCount,
	FieldYearBuilt:      KindYear,
	FieldPropertyType:   KindText,
	FieldDescription:    KindText,
	FieldEstimatedValue: KindCurrency,
}

// Field is one entry of the selector table.
type Field struct {
	Name      string   `yaml:"name" validate:"required"`
	Kind      Kind     `yaml:"kind,omitempty" validate:"omitempty,oneof=text count currency year"`
	Selectors []string `yaml:"selectors" validate:"dive,required"`
}

// MaxPhotos is the most photos a record ever carries. A table may lower
// the limit but not raise it.
const MaxPhotos = 3

// PhotoSpec configures photo collection.
type PhotoSpec struct {
	Selectors []string `yaml:"selectors" validate:"dive,required"`
	Pattern   string   `yaml:"pattern" validate:"required"`
	Limit     int      `yaml:"limit" validate:"min=1,max=3"`
}

// kind returns the field's coercion, falling back to the built-in kind
// for the field name when the table leaves it out.
func (f Field) kind() Kind {
	if f.Kind != "" {
		return f.Kind
	}
	return fieldKinds[f.Name]
}

// Table maps every field to its selector chain and coercion.
type Table struct {
	Fields              []Field   `yaml:"fields" validate:"dive"`
	Photos              PhotoSpec `yaml:"photos"`
	DefaultPropertyType string    `yaml:"default_property_type" validate:"required"`
}

// DefaultTable returns the built-in selector table.
func DefaultTable() Table {
	return Table{
		Fields: []Field{
			{Name: FieldAddress, Kind: KindText, Selectors: []string{
				`h1[data-testid="property-detail-address"]`,
				`h1.summary-container`,
				`h1`,
			}},
			{Name: FieldPrice, Kind: KindCurrency, Selectors: []string{
				`[data-testid="price"]`,
				`[data-testid="home-value"]`,
				`span[data-testid="price"]`,
			}},
			{Name: FieldBedrooms, Kind: KindCount, Selectors: []string{
				`[data-testid="bed-value"]`,
				`span:contains("bed")`,
				`span:contains("bd")`,
			}},
			{Name: FieldBathrooms, Kind: KindCount, Selectors: []string{
				`[data-testid="bath-value"]`,
				`span:contains("bath")`,
				`span:contains("ba")`,
			}},
			{Name: FieldSquareFootage, Kind: KindCount, Selectors: []string{
				`[data-testid="sqft-value"]`,
				`span:contains("sqft")`,
			}},
			{Name: FieldLotSize, Kind: KindCount, Selectors: []string{
				`[data-testid="lot-size-value"]`,
				`span:contains("acre")`,
				`span:contains("Lot")`,
			}},
			{Name: FieldYearBuilt, Kind: KindYear, Selectors: []string{
				`[data-testid="year-built-value"]`,
				`span:contains("Built")`,
			}},
			{Name: FieldPropertyType, Kind: KindText, Selectors: []string{
				`[data-testid="property-type"]`,
				`span:contains("Family")`,
				`span:contains("Condo")`,
			}},
			{Name: FieldDescription, Kind: KindText, Selectors: []string{
				`.property-description p`,
				`[data-testid="description"]`,
				`.description`,
			}},
			{Name: FieldEstimatedValue, Kind: KindCurrency, Selectors: []string{
				`[data-testid="zestimate-text"]`,
				`[data-testid="zestimate"]`,
				`span:contains("Zestimate")`,
			}},
		},
		Photos: PhotoSpec{
			Selectors: []string{
				`picture img`,
				`img[src*="photos.zillowstatic.com"]`,
				`[data-testid="media-gallery"] img`,
			},
			Pattern: "photos.zillowstatic.com",
			Limit:   MaxPhotos,
		},
		DefaultPropertyType: "Single Family",
	}
}

// LoadTable reads a YAML selector table. Sections missing from the file keep
// their built-in values; a fields list replaces the built-in chains of the
// fields it names and leaves the others alone.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read selector table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable is LoadTable for in-memory YAML.
func ParseTable(data []byte) (Table, error) {
	var file Table
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Table{}, fmt.Errorf("failed to parse selector table: %w", err)
	}

	table := DefaultTable()
	for _, f := range file.Fields {
		replaced := false
		for i := range table.Fields {
			if table.Fields[i].Name == f.Name {
				table.Fields[i].Selectors = f.Selectors
				if f.Kind != "" {
					table.Fields[i].Kind = f.Kind
				}
				replaced = true
				break
			}
		}
		if !replaced {
			table.Fields = append(table.Fields, f)
		}
	}
	if file.Photos.Selectors != nil {
		table.Photos.Selectors = file.Photos.Selectors
	}
	if file.Photos.Pattern != "" {
		table.Photos.Pattern = file.Photos.Pattern
	}
	if file.Photos.Limit != 0 {
		table.Photos.Limit = file.Photos.Limit
	}
	if file.DefaultPropertyType != "" {
		table.DefaultPropertyType = file.DefaultPropertyType
	}

	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Validate checks structural constraints and that every field is known and
// coerced the way the record expects.
func (t Table) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("invalid selector table: %w", err)
	}

	seen := make(map[string]bool, len(t.Fields))
	for _, f := range t.Fields {
		want, ok := fieldKinds[f.Name]
		if !ok {
			return fmt.Errorf("invalid selector table: unknown field %q", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("invalid selector table: duplicate field %q", f.Name)
		}
		seen[f.Name] = true
		if f.Kind != "" && f.Kind != want {
			return fmt.Errorf("invalid selector table: field %q must be %s, not %s", f.Name, want, f.Kind)
		}
	}
	return nil
}
