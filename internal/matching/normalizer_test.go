package matching

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Citroën   C3 ", "citroen c3"},
		{"TOYOTA\tCorolla", "toyota corolla"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModelKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"CR-V", "crv"},
		{"cr v", "crv"},
		{"3 Series", "3series"},
		{"C-Class", "cclass"},
		{"Škoda", "skoda"},
		{"--", ""},
	}
	for _, tt := range tests {
		if got := ModelKey(tt.in); got != tt.want {
			t.Errorf("ModelKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHyphenate(t *testing.T) {
	if got := Hyphenate(" land   rover "); got != "land-rover" {
		t.Fatalf("got %q", got)
	}
}
