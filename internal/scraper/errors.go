package scraper

import (
	"errors"
	"fmt"
)

// ErrChromeNotFound is returned when no Chrome or Chromium binary can be located.
var ErrChromeNotFound = errors.New("chrome binary not found")

// ErrorKind classifies failures that prevent a record from being produced.
type ErrorKind string

const (
	// KindConfiguration: a required capability (the browser) is unavailable.
	KindConfiguration ErrorKind = "configuration"
	// KindUsage: the caller did not supply a listing URL.
	KindUsage ErrorKind = "usage"
	// KindExtraction: the session could not open, load or snapshot the page.
	KindExtraction ErrorKind = "extraction"
)

const chromeRemediation = "install Google Chrome or Chromium, or pass its path with -chrome"

// Error is a fatal scrape failure. It marshals to the structured error
// object written to stderr and returned by the HTTP API.
type Error struct {
	Kind        ErrorKind `json:"kind"`
	Message     string    `json:"message"`
	URL         string    `json:"url,omitempty"`
	Remediation string    `json:"remediation,omitempty"`
	Err         error     `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, url, msg string, err error) *Error {
	e := &Error{Kind: kind, Message: msg, URL: url, Err: err}
	if err != nil {
		e.Message = fmt.Sprintf("%s: %v", msg, err)
	}
	return e
}

// classify turns a render failure into an *Error.
func classify(url string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, ErrChromeNotFound) {
		ce := newError(KindConfiguration, url, "browser automation unavailable", err)
		ce.Remediation = chromeRemediation
		return ce
	}
	return newError(KindExtraction, url, "failed to load page", err)
}
