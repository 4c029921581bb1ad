package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"listing-scraper/internal/models"
)

// ErrNotFound is returned when a property does not exist.
var ErrNotFound = errors.New("property not found")

// PropertyFilter contains filter parameters for property queries
type PropertyFilter struct {
	PropertyTypes []string
	PriceMin      *int
	PriceMax      *int
	// Pagination
	Limit  int
	Offset int
}

type propertyRow struct {
	ID             int64          `db:"id"`
	SourceURL      string         `db:"source_url"`
	Identifier     sql.NullString `db:"identifier"`
	Address        string         `db:"address"`
	City           string         `db:"city"`
	State          string         `db:"state"`
	ZipCode        string         `db:"zip_code"`
	Price          int            `db:"price"`
	Bedrooms       int            `db:"bedrooms"`
	Bathrooms      int            `db:"bathrooms"`
	SquareFootage  int            `db:"square_footage"`
	LotSize        int            `db:"lot_size"`
	YearBuilt      int            `db:"year_built"`
	PropertyType   string         `db:"property_type"`
	Description    string         `db:"description"`
	Photos         string         `db:"photos"`
	EstimatedValue int            `db:"estimated_value"`
	ScrapedAt      time.Time      `db:"scraped_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// SaveProperty inserts or updates a property keyed by its source URL and
// returns its ID. A re-scrape that misses a field keeps the stored value.
// The address and its city, state and zip are replaced together, only when
// the new scrape found an address.
func (db *DB) SaveProperty(p *models.Property) (int64, error) {
	query := `
		INSERT INTO properties (
			source_url, identifier, address, city, state, zip_code,
			price, bedrooms, bathrooms, square_footage, lot_size, year_built,
			property_type, description, photos, estimated_value,
			scraped_at, updated_at
		) VALUES (
			?, ?, ?, ?, ?, ?,
			?, ?, ?, ?, ?, ?,
			?, ?, ?, ?,
			?, ?
		)
		ON CONFLICT(source_url) DO UPDATE SET
			identifier = COALESCE(excluded.identifier, properties.identifier),
			address = CASE WHEN excluded.address <> '' THEN excluded.address ELSE properties.address END,
			city = CASE WHEN excluded.address <> '' THEN excluded.city ELSE properties.city END,
			state = CASE WHEN excluded.address <> '' THEN excluded.state ELSE properties.state END,
			zip_code = CASE WHEN excluded.address <> '' THEN excluded.zip_code ELSE properties.zip_code END,
			price = COALESCE(NULLIF(excluded.price, 0), properties.price),
			bedrooms = COALESCE(NULLIF(excluded.bedrooms, 0), properties.bedrooms),
			bathrooms = COALESCE(NULLIF(excluded.bathrooms, 0), properties.bathrooms),
			square_footage = COALESCE(NULLIF(excluded.square_footage, 0), properties.square_footage),
			lot_size = COALESCE(NULLIF(excluded.lot_size, 0), properties.lot_size),
			year_built = COALESCE(NULLIF(excluded.year_built, 0), properties.year_built),
			property_type = excluded.property_type,
			description = COALESCE(NULLIF(excluded.description, ''), properties.description),
			photos = COALESCE(NULLIF(excluded.photos, '[]'), properties.photos),
			estimated_value = COALESCE(NULLIF(excluded.estimated_value, 0), properties.estimated_value),
			updated_at = excluded.updated_at
		RETURNING id
	`

	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	photosJSON, err := json.Marshal(photos)
	if err != nil {
		return 0, fmt.Errorf("failed to encode photos: %w", err)
	}

	var identifier sql.NullString
	if p.Identifier != nil {
		identifier = sql.NullString{String: *p.Identifier, Valid: true}
	}

	now := time.Now().UTC()
	var id int64
	err = db.QueryRowx(query,
		p.SourceURL, identifier, p.Address, p.City, p.State, p.ZipCode,
		p.Price, p.Bedrooms, p.Bathrooms, p.SquareFootage, p.LotSize, p.YearBuilt,
		p.PropertyType, p.Description, string(photosJSON), p.EstimatedValue,
		now, now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save property: %w", err)
	}

	return id, nil
}

// GetProperty returns a single property by ID
func (db *DB) GetProperty(id int64) (*models.StoredProperty, error) {
	var row propertyRow
	err := db.Get(&row, `SELECT * FROM properties WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	photos := []string{}
	if err := json.Unmarshal([]byte(row.Photos), &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos for property %d: %w", id, err)
	}

	sp := &models.StoredProperty{
		ID:        row.ID,
		ScrapedAt: row.ScrapedAt,
		UpdatedAt: row.UpdatedAt,
		Property: models.Property{
			SourceURL:      row.SourceURL,
			Address:        row.Address,
			City:           row.City,
			State:          row.State,
			ZipCode:        row.ZipCode,
			Price:          row.Price,
			Bedrooms:       row.Bedrooms,
			Bathrooms:      row.Bathrooms,
			SquareFootage:  row.SquareFootage,
			LotSize:        row.LotSize,
			YearBuilt:      row.YearBuilt,
			PropertyType:   row.PropertyType,
			Description:    row.Description,
			Photos:         photos,
			EstimatedValue: row.EstimatedValue,
		},
	}
	if row.Identifier.Valid {
		id := row.Identifier.String
		sp.Identifier = &id
	}
	return sp, nil
}

// ListProperties returns properties matching the given filters, newest first
func (db *DB) ListProperties(f PropertyFilter) ([]models.PropertyListItem, error) {
	query := `
		SELECT
			id,
			COALESCE(identifier, '') as identifier,
			address, city, state, price, property_type, source_url
		FROM properties
		WHERE 1 = 1
	`
	args := make([]interface{}, 0)

	if len(f.PropertyTypes) > 0 {
		placeholders := make([]string, len(f.PropertyTypes))
		for i, pt := range f.PropertyTypes {
			placeholders[i] = "?"
			args = append(args, pt)
		}
		query += fmt.Sprintf(" AND property_type IN (%s)", strings.Join(placeholders, ","))
	}
	if f.PriceMin != nil {
		query += " AND price >= ?"
		args = append(args, *f.PriceMin)
	}
	if f.PriceMax != nil {
		query += " AND price <= ?"
		args = append(args, *f.PriceMax)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY updated_at DESC, id DESC LIMIT %d", limit)
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", f.Offset)
	}

	properties := []models.PropertyListItem{}
	if err := db.Select(&properties, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, nil
}

// GetPropertyCount returns total number of properties
func (db *DB) GetPropertyCount() (int, error) {
	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM properties")
	return count, err
}
