// Package dom answers CSS selector queries against a rendered page snapshot.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Element is a single matched node.
type Element interface {
	// Text returns the node's text content with surrounding whitespace trimmed.
	Text() string
	// Attr returns the named attribute and whether it was present.
	Attr(name string) (string, bool)
}

// Document is a parsed HTML snapshot.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from rendered HTML.
func Parse(html string) (*Document, error) {
	return ParseReader(strings.NewReader(html))
}

// ParseReader builds a Document from r.
func ParseReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Query returns every element matching selector in document order.
// A selector that matches nothing yields an empty slice and a nil error;
// a selector that cannot be compiled yields an error.
func (d *Document) Query(selector string) ([]Element, error) {
	// goquery's Find swallows compile errors, so compile here to surface them.
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	sel := d.doc.FindMatcher(m)
	elements := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, node{s})
	})
	return elements, nil
}

// Title returns the page title, used for diagnostics.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

type node struct {
	s *goquery.Selection
}

func (n node) Text() string {
	return strings.TrimSpace(n.s.Text())
}

func (n node) Attr(name string) (string, bool) {
	return n.s.Attr(name)
}
