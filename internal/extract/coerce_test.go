package extract

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"1,234 sqft", 1234},
		{"3 bd", 3},
		{"2.5 baths", 2},
		{"Lot: 10,890 sqft", 10890},
		{"no digits here", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"$350,000", 350000},
		{"$1,250.99", 1250},
		{"Zestimate®: $362,500", 362500},
		{"Contact agent", 0},
	}
	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Built in 1998", 1998},
		{"3 bed", 0},
		{"3 Built-in", 0},
		{"", 0},
		{"12345", 0},
		{"Unit 12, built 2004", 2004},
		{"Renovated 2019 (built 1962)", 2019},
	}
	for _, tt := range tests {
		if got := Year(tt.in); got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCoerce(t *testing.T) {
	if v := Coerce(KindText, "  Single Family  "); v.Text != "Single Family" || v.Number != 0 {
		t.Errorf("Coerce(text) = %+v", v)
	}
	if v := Coerce(KindCount, "4 beds"); v.Number != 4 || v.Text != "" {
		t.Errorf("Coerce(count) = %+v", v)
	}
	if v := Coerce(KindCurrency, "$99"); v.Number != 99 {
		t.Errorf("Coerce(currency) = %+v", v)
	}
	if v := Coerce(KindYear, "1950"); v.Number != 1950 {
		t.Errorf("Coerce(year) = %+v", v)
	}
}
