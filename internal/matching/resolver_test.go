package matching

import (
	"strings"
	"testing"
)

func TestResolveEveryBrandKey(t *testing.T) {
	c := testCatalog(t)
	r := NewResolver(c)

	for _, b := range c.Brands() {
		got, ok := r.Resolve(b.Key)
		if !ok || got != b.Key {
			t.Errorf("Resolve(%q) = %q, %v", b.Key, got, ok)
		}

		if strings.Contains(b.Key, "-") {
			spaced := strings.ReplaceAll(b.Key, "-", " ")
			got, ok := r.Resolve(spaced)
			if !ok || got != b.Key {
				t.Errorf("Resolve(%q) = %q, %v; want %q", spaced, got, ok, b.Key)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver(testCatalog(t))

	tests := []struct {
		fragment string
		want     string
		ok       bool
	}{
		{"TOYOTA", "toyota", true},
		{"Land Rover", "land-rover", true},
		{"benz", "mercedes-benz", true},
		{"rover", "land-rover", true},
		{"mercedes benz", "mercedes-benz", true},
		// "mini" sorts before "mini-moke"
		{"min", "mini", true},
		{"mini moke", "mini-moke", true},
		{"zzztopcar", "", false},
		{"   ", "", false},
	}
	for _, tt := range tests {
		got, ok := r.Resolve(tt.fragment)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.fragment, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveStrictSkipsSubstrings(t *testing.T) {
	r := NewResolver(testCatalog(t))

	if _, ok := r.ResolveStrict("benz"); ok {
		t.Fatal("strict resolution should not match substrings")
	}
	if got, ok := r.ResolveStrict("land rover"); !ok || got != "land-rover" {
		t.Fatalf("ResolveStrict(land rover) = %q, %v", got, ok)
	}
}
