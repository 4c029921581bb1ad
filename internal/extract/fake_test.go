package extract

import "listing-scraper/internal/dom"

type fakeElement struct {
	text  string
	attrs map[string]string
}

func (e fakeElement) Text() string { return e.text }

func (e fakeElement) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func textEl(text string) dom.Element { return fakeElement{text: text} }

func imgEl(src string) dom.Element {
	return fakeElement{attrs: map[string]string{"src": src}}
}

// fakeQuerier answers from fixed maps and records the selectors it was asked.
type fakeQuerier struct {
	results map[string][]dom.Element
	errs    map[string]error
	calls   []string
}

func (f *fakeQuerier) Query(selector string) ([]dom.Element, error) {
	f.calls = append(f.calls, selector)
	if err := f.errs[selector]; err != nil {
		return nil, err
	}
	return f.results[selector], nil
}
