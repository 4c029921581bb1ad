package extract

import "testing"

func TestDecompose(t *testing.T) {
	tests := []struct {
		in   string
		want Address
	}{
		{"123 Main St, Springfield, IL 62704", Address{"Springfield", "IL", "62704"}},
		{"123 Main St", Address{}},
		{"123 Main St, Springfield IL 62704", Address{}},
		{"123 Main St, Springfield, IL", Address{City: "Springfield", State: "IL"}},
		{"Unit 4, 9 Elm Rd, Shelbyville, KY 40065", Address{"9 Elm Rd", "Shelbyville", ""}},
		{"1 A St, Town, ", Address{City: "Town"}},
		{"", Address{}},
	}
	for _, tt := range tests {
		if got := Decompose(tt.in); got != tt.want {
			t.Errorf("Decompose(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
