package extract

import (
	"strings"

	"listing-scraper/internal/dom"
	"listing-scraper/internal/logger"
)

// photoAttrs are read in order; lazy-loaded gallery images only carry data-src.
var photoAttrs = []string{"src", "data-src"}

// CollectPhotos gathers up to limit distinct image URLs containing pattern.
// Selectors are consulted in order and collection stops as soon as the limit
// is reached. The result is never nil.
func CollectPhotos(q Querier, selectors []string, pattern string, limit int) []string {
	photos := make([]string, 0, limit)
	if limit <= 0 {
		return photos
	}

	for _, selector := range selectors {
		els, err := q.Query(selector)
		if err != nil {
			logger.Debug("photo selector failed", "selector", selector, "error", err)
			continue
		}

		for _, el := range els {
			src := imageSource(el)
			if src == "" || !strings.Contains(src, pattern) || contains(photos, src) {
				continue
			}
			photos = append(photos, src)
			if len(photos) >= limit {
				return photos
			}
		}
	}
	return photos
}

func imageSource(el dom.Element) string {
	for _, attr := range photoAttrs {
		if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
