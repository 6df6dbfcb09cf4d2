package matching

import (
	"errors"
	"strings"

	"vehicle-lookup-api/internal/catalog"
	"vehicle-lookup-api/internal/model"
)

// ErrEmptyInput is returned by Search for blank queries; no search is run.
var ErrEmptyInput = errors.New("matching: empty input")

// Strategy names the rule that produced a search result.
type Strategy string

const (
	StrategyFull       Strategy = "full"
	StrategyBrandModel Strategy = "brand_model"
	StrategyBrandYear  Strategy = "brand_year"
	StrategyBrand      Strategy = "brand"
	StrategyModel      Strategy = "model"
	StrategyFuzzy      Strategy = "fuzzy"
	StrategyNone       Strategy = "none"
)

// Result is the outcome of one query.
type Result struct {
	Records  []model.MatchRecord
	Strategy Strategy
}

// Empty reports whether nothing matched.
func (r *Result) Empty() bool {
	return len(r.Records) == 0
}

type attemptKind int

const (
	attemptFull attemptKind = iota
	attemptBrandYear
	attemptBrandModel
	attemptSingle
)

// attempt is one structured reading of the query tokens.
type attempt struct {
	kind  attemptKind
	brand string
	model string
	year  int
}

// pattern reports whether it applies to tokens and, if so, how to read them.
type pattern func(tokens []string) (attempt, bool)

// fallbackPatterns are tried in order when greedy brand extraction finds
// nothing. Only the first applicable pattern runs.
var fallbackPatterns = []pattern{
	// brand model... year
	func(tokens []string) (attempt, bool) {
		n := len(tokens)
		if n < 3 {
			return attempt{}, false
		}
		year, ok := ParseYear(tokens[n-1])
		if !ok {
			return attempt{}, false
		}
		return attempt{
			kind:  attemptFull,
			brand: tokens[0],
			model: strings.Join(tokens[1:n-1], " "),
			year:  year,
		}, true
	},
	// brand year
	func(tokens []string) (attempt, bool) {
		if len(tokens) != 2 {
			return attempt{}, false
		}
		year, ok := ParseYear(tokens[1])
		if !ok {
			return attempt{}, false
		}
		return attempt{kind: attemptBrandYear, brand: tokens[0], year: year}, true
	},
	// brand model...
	func(tokens []string) (attempt, bool) {
		if len(tokens) < 2 {
			return attempt{}, false
		}
		return attempt{
			kind:  attemptBrandModel,
			brand: tokens[0],
			model: strings.Join(tokens[1:], " "),
		}, true
	},
	// brand or model on its own
	func(tokens []string) (attempt, bool) {
		return attempt{kind: attemptSingle, brand: strings.Join(tokens, " ")}, true
	},
}

// Parser turns free-text queries into catalog matches.
type Parser struct {
	matcher *Matcher
}

// NewParser creates a parser over c
func NewParser(c *catalog.Catalog) *Parser {
	return &Parser{matcher: NewMatcher(c)}
}

// Matcher returns the matcher backing the parser.
func (p *Parser) Matcher() *Matcher {
	return p.matcher
}

// Search runs greedy brand extraction, then the fallback patterns, then a
// fuzzy scan, stopping at the first stage that yields records.
func (p *Parser) Search(raw string) (*Result, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	if res := p.searchBrandFirst(tokens); res != nil {
		return res, nil
	}

	if res := p.searchPatterns(tokens); res != nil {
		return res, nil
	}

	if records := p.matcher.FuzzyMatch(strings.Join(tokens, " ")); len(records) > 0 {
		return &Result{Records: records, Strategy: StrategyFuzzy}, nil
	}

	return &Result{Records: []model.MatchRecord{}, Strategy: StrategyNone}, nil
}

// extractBrand finds the longest token prefix naming a brand and returns
// the brand key with the remaining tokens.
func (p *Parser) extractBrand(tokens []string) (string, []string, bool) {
	for i := len(tokens); i >= 1; i-- {
		candidate := strings.Join(tokens[:i], " ")
		if key, ok := p.matcher.Resolver().ResolveStrict(candidate); ok {
			return key, tokens[i:], true
		}
	}
	return "", nil, false
}

func (p *Parser) searchBrandFirst(tokens []string) *Result {
	brand, rest, ok := p.extractBrand(tokens)
	if !ok {
		return nil
	}

	if len(rest) == 0 {
		return result(p.matcher.BrandMatch(brand), StrategyBrand)
	}

	if n := len(rest); n >= 2 {
		if year, ok := ParseYear(rest[n-1]); ok {
			modelName := strings.Join(rest[:n-1], " ")
			if res := result(p.matcher.FullMatch(brand, modelName, year), StrategyFull); res != nil {
				return res
			}
		}
	}

	if res := result(p.matcher.BrandModelMatch(brand, strings.Join(rest, " ")), StrategyBrandModel); res != nil {
		return res
	}

	if len(rest) == 1 {
		if year, ok := ParseYear(rest[0]); ok {
			return result(p.matcher.BrandYearMatch(brand, year), StrategyBrandYear)
		}
	}

	return nil
}

func (p *Parser) searchPatterns(tokens []string) *Result {
	for _, apply := range fallbackPatterns {
		a, ok := apply(tokens)
		if !ok {
			continue
		}
		return p.run(a)
	}
	return nil
}

func (p *Parser) run(a attempt) *Result {
	switch a.kind {
	case attemptFull:
		return result(p.matcher.FullMatch(a.brand, a.model, a.year), StrategyFull)
	case attemptBrandYear:
		return result(p.matcher.BrandYearMatch(a.brand, a.year), StrategyBrandYear)
	case attemptBrandModel:
		return result(p.matcher.BrandModelMatch(a.brand, a.model), StrategyBrandModel)
	default:
		if res := result(p.matcher.BrandMatch(a.brand), StrategyBrand); res != nil {
			return res
		}
		return result(p.matcher.ModelMatch(a.brand), StrategyModel)
	}
}

func result(records []model.MatchRecord, strategy Strategy) *Result {
	if len(records) == 0 {
		return nil
	}
	return &Result{Records: records, Strategy: strategy}
}
