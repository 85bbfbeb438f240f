// internal/tools/scheme_database.go
package tools

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/janmitra/mitra-cli/internal/locale"
)

//go:embed schemes.yaml
var schemesYAML []byte

// Scheme is one catalog entry rendered for a single language. Field names
// mirror the wire keys tools exchange with the planner and the session flow.
type Scheme struct {
	Name         string   `json:"name"`
	EnglishName  string   `json:"english_name"`
	Kind         string   `json:"kind"`
	MinAge       *int     `json:"min_age,omitempty"`
	MaxAge       *int     `json:"max_age,omitempty"`
	MaxIncome    *int     `json:"max_income,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Documents    []string `json:"documents"`
	WhereToApply string   `json:"where_to_apply"`
	ApplySteps   []string `json:"apply_steps"`
}

// Guidance renders the documents, office, and steps blocks as one spoken
// passage, with each block introduced by its localized label.
func (s Scheme) Guidance(language string) string {
	var b strings.Builder
	b.WriteString(locale.Message(locale.MsgDocumentsLabel, language))
	for _, doc := range s.Documents {
		b.WriteString("\n- ")
		b.WriteString(doc)
	}
	b.WriteString("\n")
	b.WriteString(locale.Message(locale.MsgWhereToApplyLabel, language))
	b.WriteString(" ")
	b.WriteString(s.WhereToApply)
	b.WriteString("\n")
	b.WriteString(locale.Message(locale.MsgStepsLabel, language))
	for i, step := range s.ApplySteps {
		fmt.Fprintf(&b, "\n%d. %s", i+1, step)
	}
	return b.String()
}

// MatchScheme finds the scheme the text most plausibly names. Each entry is
// scored by how many words of its localized or English name occur in the
// text; words are matched by containment because native-script names carry
// combining marks that break tokenization. A lone generic word such as
// "scheme" is not enough: a match needs either two word hits or the complete
// name.
func MatchScheme(text string, schemes []Scheme) (Scheme, bool) {
	lower := normalizeForMatch(text)
	if lower == "" {
		return Scheme{}, false
	}
	var best Scheme
	bestScore := 0
	for _, s := range schemes {
		score := nameScore(lower, s.Name)
		if englishScore := nameScore(lower, s.EnglishName); englishScore > score {
			score = englishScore
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	if bestScore < 2 {
		return Scheme{}, false
	}
	return best, true
}

// nameScore counts the name's words found in the text. A fully mentioned
// name earns one extra point, so complete mentions beat partial ones and a
// single-word name can still reach the match threshold.
func nameScore(lower, name string) int {
	words := strings.Fields(normalizeForMatch(name))
	hits := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	if hits > 0 && hits == len(words) {
		hits++
	}
	return hits
}

// normalizeForMatch lowercases and splits hyphenated compounds, so "old age
// pension" finds "Old-Age Pension".
func normalizeForMatch(text string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), "-", " "))
}

// schemeEntry is the raw catalog record: per-language text blocks plus the
// eligibility bounds EligibilityChecker evaluates. A nil bound means the
// scheme does not constrain that field; an empty Categories list admits all.
type schemeEntry struct {
	ID           string              `yaml:"id"`
	EnglishName  string              `yaml:"english_name"`
	Kind         string              `yaml:"kind"`
	MinAge       *int                `yaml:"min_age"`
	MaxAge       *int                `yaml:"max_age"`
	MaxIncome    *int                `yaml:"max_income"`
	Categories   []string            `yaml:"categories"`
	Names        map[string]string   `yaml:"names"`
	Documents    []map[string]string `yaml:"documents"`
	WhereToApply map[string]string   `yaml:"where_to_apply"`
	ApplySteps   []map[string]string `yaml:"apply_steps"`
}

// Catalog holds the parsed scheme data shared by SchemeDatabase and
// EligibilityChecker so the lookup surface and the rule table cannot drift.
type Catalog struct {
	entries []schemeEntry
}

// LoadCatalog parses the embedded scheme data.
func LoadCatalog() (*Catalog, error) {
	var doc struct {
		Schemes []schemeEntry `yaml:"schemes"`
	}
	if err := yaml.Unmarshal(schemesYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing embedded scheme catalog: %w", err)
	}
	if len(doc.Schemes) == 0 {
		return nil, fmt.Errorf("embedded scheme catalog has no schemes")
	}
	for _, e := range doc.Schemes {
		if e.ID == "" || e.EnglishName == "" {
			return nil, fmt.Errorf("scheme catalog entry missing id or english_name: %+v", e)
		}
	}
	return &Catalog{entries: doc.Schemes}, nil
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Localized renders every entry for one language. Any block the language does
// not carry falls back to English.
func (c *Catalog) Localized(language string) []Scheme {
	schemes := make([]Scheme, 0, len(c.entries))
	for _, e := range c.entries {
		schemes = append(schemes, e.localized(language))
	}
	return schemes
}

func (e schemeEntry) localized(language string) Scheme {
	return Scheme{
		Name:         pickText(e.Names, language, e.EnglishName),
		EnglishName:  e.EnglishName,
		Kind:         e.Kind,
		MinAge:       e.MinAge,
		MaxAge:       e.MaxAge,
		MaxIncome:    e.MaxIncome,
		Categories:   append([]string(nil), e.Categories...),
		Documents:    pickTexts(e.Documents, language),
		WhereToApply: pickText(e.WhereToApply, language, ""),
		ApplySteps:   pickTexts(e.ApplySteps, language),
	}
}

// pickText resolves a per-language block: requested language first, English
// second, the fallback last.
func pickText(block map[string]string, language, fallback string) string {
	if v, ok := block[language]; ok && v != "" {
		return v
	}
	if v, ok := block[locale.English]; ok && v != "" {
		return v
	}
	return fallback
}

func pickTexts(blocks []map[string]string, language string) []string {
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if v := pickText(block, language, ""); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// -- SchemeDatabase --

// SchemeDatabase serves the localized scheme catalog. It is a pure function
// of the requested language and safe to share across sessions.
type SchemeDatabase struct {
	logger  *zap.Logger
	catalog *Catalog
}

var _ Tool = (*SchemeDatabase)(nil)

// NewSchemeDatabase wraps a loaded catalog as a dispatchable tool.
func NewSchemeDatabase(catalog *Catalog, logger *zap.Logger) *SchemeDatabase {
	return &SchemeDatabase{
		logger:  logger.Named("scheme_database"),
		catalog: catalog,
	}
}

// Name implements Tool.
func (d *SchemeDatabase) Name() string {
	return ToolSchemeDatabase
}

// Execute returns every scheme rendered for input["language"]. Unsupported
// languages render with the English blocks rather than failing.
func (d *SchemeDatabase) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	language, terr := stringField(ToolSchemeDatabase, input, "language")
	if terr != nil {
		return nil, terr
	}

	schemes := d.catalog.Localized(language)
	d.logger.Debug("catalog lookup",
		zap.String("language", language),
		zap.Int("schemes", len(schemes)))

	return map[string]interface{}{
		"schemes":     schemes,
		"total_count": len(schemes),
	}, nil
}
