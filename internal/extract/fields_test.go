package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTable_Valid(t *testing.T) {
	table := DefaultTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(table.Fields) != len(fieldKinds) {
		t.Errorf("expected every known field in the default table, got %d", len(table.Fields))
	}
	for _, f := range table.Fields {
		if _, ok := setters[f.Name]; !ok {
			t.Errorf("field %q has no setter", f.Name)
		}
	}
}

func TestParseTable_OverridesNamedFieldsOnly(t *testing.T) {
	table, err := ParseTable([]byte(`
fields:
  - name: price
    selectors:
      - '[data-test="list-price"]'
photos:
  limit: 2
`))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}

	defaults := DefaultTable()
	for i, f := range table.Fields {
		switch f.Name {
		case FieldPrice:
			if len(f.Selectors) != 1 || f.Selectors[0] != `[data-test="list-price"]` {
				t.Errorf("price selectors = %v", f.Selectors)
			}
			if f.Kind != KindCurrency {
				t.Errorf("price kind = %q, want currency", f.Kind)
			}
		default:
			if strings.Join(f.Selectors, "|") != strings.Join(defaults.Fields[i].Selectors, "|") {
				t.Errorf("field %q should keep its default chain", f.Name)
			}
		}
	}
	if table.Photos.Limit != 2 || table.Photos.Pattern != defaults.Photos.Pattern {
		t.Errorf("photos = %+v", table.Photos)
	}
	if table.DefaultPropertyType != "Single Family" {
		t.Errorf("DefaultPropertyType = %q", table.DefaultPropertyType)
	}
}

func TestParseTable_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "fields:\n  - name: garage\n    selectors: ['.garage']\n",
		"wrong kind":      "fields:\n  - name: price\n    kind: text\n    selectors: ['.p']\n",
		"bad kind":        "fields:\n  - name: price\n    kind: money\n    selectors: ['.p']\n",
		"blank selector":  "fields:\n  - name: price\n    selectors: ['']\n",
		"negative limit":  "photos:\n  limit: -1\n",
		"limit above cap": "photos:\n  limit: 10\n",
		"not yaml":        "fields: [",
	}
	for name, doc := range tests {
		if _, err := ParseTable([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseTable_EmptyChainAllowed(t *testing.T) {
	table, err := ParseTable([]byte("fields:\n  - name: description\n    selectors: []\n"))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	for _, f := range table.Fields {
		if f.Name == FieldDescription && len(f.Selectors) != 0 {
			t.Errorf("expected empty description chain, got %v", f.Selectors)
		}
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.yaml")
	if err := os.WriteFile(path, []byte("default_property_type: Condo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if table.DefaultPropertyType != "Condo" {
		t.Errorf("DefaultPropertyType = %q", table.DefaultPropertyType)
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
