// Package extract turns a rendered listing page into a models.Property.
//
// Every selector in this package is a guess about markup that may change
// without notice. Lookups that find nothing, and lookups that fail outright,
// are both treated as a miss for that selector and resolution moves on.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"listing-scraper/internal/dom"
	"listing-scraper/internal/logger"
)

// Querier runs a CSS selector against a page.
type Querier interface {
	Query(selector string) ([]dom.Element, error)
}

// ErrSelectorMiss reports that a selector matched nothing or only blank text.
var ErrSelectorMiss = errors.New("selector miss")

// QueryError is a failure raised by the Querier for one selector.
type QueryError struct {
	Selector string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.Selector, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// lookupText returns the trimmed text of the first element matching selector.
// The error is either ErrSelectorMiss or a *QueryError.
func lookupText(q Querier, selector string) (string, error) {
	els, err := q.Query(selector)
	if err != nil {
		return "", &QueryError{Selector: selector, Err: err}
	}
	if len(els) == 0 {
		return "", ErrSelectorMiss
	}
	text := strings.TrimSpace(els[0].Text())
	if text == "" {
		return "", ErrSelectorMiss
	}
	return text, nil
}

// Resolve tries each selector in order and returns the first non-empty text.
// It returns "" when the chain is empty or every selector misses.
func Resolve(q Querier, chain []string) string {
	for _, selector := range chain {
		text, err := lookupText(q, selector)
		if err == nil {
			return text
		}

		var qerr *QueryError
		if errors.As(err, &qerr) {
			logger.Debug("selector query failed", "selector", selector, "error", qerr.Err)
		} else {
			logger.Debug("selector miss", "selector", selector)
		}
	}
	return ""
}
