package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"listing-scraper/internal/db"
	"listing-scraper/internal/logger"
	"listing-scraper/internal/models"
	"listing-scraper/internal/scraper"
)

// ListingScraper extracts one listing.
type ListingScraper interface {
	Scrape(ctx context.Context, url string) (*models.Property, error)
}

// Handlers contains HTTP handlers and their dependencies
type Handlers struct {
	db      *db.DB
	scraper ListingScraper
}

// NewHandlers creates a new Handlers instance
func NewHandlers(database *db.DB, s ListingScraper) *Handlers {
	return &Handlers{db: database, scraper: s}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Success bool             `json:"success"`
	ID      int64            `json:"id,omitempty"`
	Data    *models.Property `json:"data,omitempty"`
	Metrics *models.Metrics  `json:"metrics,omitempty"`
	Error   *scraper.Error   `json:"error,omitempty"`
}

// Scrape handles POST /api/scrape
func (h *Handlers) Scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, scrapeResponse{Error: &scraper.Error{
			Kind:    scraper.KindUsage,
			Message: "request body must be JSON with a url field",
		}})
		return
	}

	p, err := h.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		var se *scraper.Error
		if !errors.As(err, &se) {
			se = &scraper.Error{Kind: scraper.KindExtraction, Message: err.Error(), URL: req.URL}
		}
		status := http.StatusInternalServerError
		if se.Kind == scraper.KindUsage {
			status = http.StatusBadRequest
		}
		logger.Error("scrape failed", "url", req.URL, "kind", se.Kind, "error", se.Message)
		writeJSON(w, status, scrapeResponse{Error: se})
		return
	}

	resp := scrapeResponse{Success: true, Data: p}
	m := p.Metrics()
	resp.Metrics = &m

	if h.db != nil {
		id, err := h.db.SaveProperty(p)
		if err != nil {
			// The record is still returned; only persistence failed.
			logger.Error("failed to save property", "url", p.SourceURL, "error", err)
		} else {
			resp.ID = id
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListProperties handles GET /api/properties
func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		http.Error(w, "storage disabled", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	filter := db.PropertyFilter{}

	if v := q.Get("type"); v != "" {
		filter.PropertyTypes = strings.Split(v, ",")
	}
	if v := q.Get("price_min"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			filter.PriceMin = &val
		}
	}
	if v := q.Get("price_max"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			filter.PriceMax = &val
		}
	}
	if v := q.Get("limit"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 && val <= 500 {
			filter.Limit = val
		}
	}
	if v := q.Get("offset"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val >= 0 {
			filter.Offset = val
		}
	}

	properties, err := h.db.ListProperties(filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	total, err := h.db.GetPropertyCount()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"properties": properties,
		"count":      len(properties),
		"total":      total,
	})
}

// GetProperty handles GET /api/properties/{id}
func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		http.Error(w, "storage disabled", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid property ID", http.StatusBadRequest)
		return
	}

	property, err := h.db.GetProperty(id)
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"property": property,
		"metrics":  property.Metrics(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
