package matching

import (
	"errors"
	"reflect"
	"testing"

	"vehicle-lookup-api/internal/model"
)

func TestSearch(t *testing.T) {
	p := NewParser(testCatalog(t))

	tests := []struct {
		name     string
		query    string
		strategy Strategy
		want     []model.MatchRecord
	}{
		{
			name:     "brand model year",
			query:    "toyota corolla 2015",
			strategy: StrategyFull,
			want:     []model.MatchRecord{{Brand: "toyota", Model: "Corolla", Years: []int{2015}}},
		},
		{
			name:     "multi-word brand",
			query:    "Land Rover defender 2021",
			strategy: StrategyFull,
			want:     []model.MatchRecord{{Brand: "land-rover", Model: "Defender", Years: []int{2021}}},
		},
		{
			name:     "multi-word model",
			query:    "toyota land cruiser 2011",
			strategy: StrategyFull,
			want:     []model.MatchRecord{{Brand: "toyota", Model: "Land Cruiser", Years: []int{2011}}},
		},
		{
			name:     "year outside model range falls back to model",
			query:    "toyota corolla 2010",
			strategy: StrategyBrandModel,
			want:     []model.MatchRecord{{Brand: "toyota", Model: "Corolla", Years: []int{2014, 2015, 2016}}},
		},
		{
			name:     "brand model",
			query:    "honda cr-v",
			strategy: StrategyBrandModel,
			want:     []model.MatchRecord{{Brand: "honda", Model: "CR-V", Years: []int{2015, 2017}}},
		},
		{
			name:     "brand year",
			query:    "toyota 2013",
			strategy: StrategyBrandYear,
			want: []model.MatchRecord{
				{Brand: "toyota", Model: "Camry", Years: []int{2013}},
				{Brand: "toyota", Model: "RAV4", Years: []int{2013}},
			},
		},
		{
			name:     "brand only",
			query:    "land rover",
			strategy: StrategyBrand,
			want: []model.MatchRecord{
				{Brand: "land-rover", Model: "Defender", Years: []int{2020, 2021}},
				{Brand: "land-rover", Model: "Range Rover Sport", Years: []int{2014, 2015}},
			},
		},
		{
			name:     "partial brand with model",
			query:    "rover sport",
			strategy: StrategyBrandModel,
			want:     []model.MatchRecord{{Brand: "land-rover", Model: "Range Rover Sport", Years: []int{2014, 2015}}},
		},
		{
			name:     "partial brand with model and year",
			query:    "benz c-class 2015",
			strategy: StrategyFull,
			want:     []model.MatchRecord{{Brand: "mercedes-benz", Model: "C-Class", Years: []int{2015}}},
		},
		{
			name:     "model only",
			query:    "Civic",
			strategy: StrategyModel,
			want:     []model.MatchRecord{{Brand: "honda", Model: "Civic", Years: []int{2015, 2016}}},
		},
		{
			name:     "fuzzy model fragment",
			query:    "cruis",
			strategy: StrategyFuzzy,
			want:     []model.MatchRecord{{Brand: "toyota", Model: "Land Cruiser", Years: []int{2010, 2011}}},
		},
		{
			name:     "nothing matches",
			query:    "zzztopcar 9999",
			strategy: StrategyNone,
			want:     []model.MatchRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Search(tt.query)
			if err != nil {
				t.Fatalf("search %q: %v", tt.query, err)
			}
			if res.Strategy != tt.strategy {
				t.Errorf("strategy = %s, want %s", res.Strategy, tt.strategy)
			}
			if !reflect.DeepEqual(res.Records, tt.want) {
				t.Errorf("records = %+v, want %+v", res.Records, tt.want)
			}
		})
	}
}

func TestSearchEmptyInput(t *testing.T) {
	p := NewParser(testCatalog(t))

	for _, q := range []string{"", "   ", "\t\n"} {
		res, err := p.Search(q)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("Search(%q) err = %v, want ErrEmptyInput", q, err)
		}
		if res != nil {
			t.Fatalf("Search(%q) should not return a result", q)
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	p := NewParser(testCatalog(t))

	for _, q := range []string{"toyota", "o", "rover sport", "mini 2015"} {
		first, err := p.Search(q)
		if err != nil {
			t.Fatal(err)
		}
		second, err := p.Search(q)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Search(%q) not idempotent: %+v vs %+v", q, first, second)
		}
	}
}

func TestFallbackPatterns(t *testing.T) {
	tests := []struct {
		tokens []string
		want   attempt
	}{
		{[]string{"vw", "golf", "gti", "2015"}, attempt{kind: attemptFull, brand: "vw", model: "golf gti", year: 2015}},
		{[]string{"vw", "2015"}, attempt{kind: attemptBrandYear, brand: "vw", year: 2015}},
		{[]string{"vw", "9999"}, attempt{kind: attemptBrandModel, brand: "vw", model: "9999"}},
		{[]string{"vw", "golf", "1800"}, attempt{kind: attemptBrandModel, brand: "vw", model: "golf 1800"}},
		{[]string{"golf"}, attempt{kind: attemptSingle, brand: "golf"}},
	}
	for _, tt := range tests {
		var got attempt
		for _, apply := range fallbackPatterns {
			if a, ok := apply(tt.tokens); ok {
				got = a
				break
			}
		}
		if got != tt.want {
			t.Errorf("tokens %v read as %+v, want %+v", tt.tokens, got, tt.want)
		}
	}
}
