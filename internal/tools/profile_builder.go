// internal/tools/profile_builder.go
package tools

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/locale"
)

// Keyword tables for assigning numbers in free text to profile fields. Each
// language lists the words that signal an age or an income mention; the
// English row is always consulted in addition to the active language. The
// Marathi rows carry the common Hindi words as well, since Devanagari input
// mixes them freely.
var (
	ageKeywords = map[string][]string{
		locale.English: {"age", "year", "years", "old"},
		locale.Telugu:  {"వయస్సు", "సంవత్సరాలు", "సంవత్సరం", "ఏళ్ళు"},
		locale.Tamil:   {"வயது", "ஆண்டுகள்", "வயதாகிறது"},
		locale.Marathi: {"वय", "वर्ष", "उम्र", "साल"},
		locale.Bengali: {"বয়স", "বছর"},
		locale.Odia:    {"ବୟସ", "ବର୍ଷ"},
	}
	incomeKeywords = map[string][]string{
		locale.English: {"income", "earn", "earning", "salary", "rupees", "wage"},
		locale.Telugu:  {"ఆదాయం", "జీతం", "రూపాయలు"},
		locale.Tamil:   {"வருமானம்", "சம்பளம்", "ரூபாய்"},
		locale.Marathi: {"उत्पन्न", "आय", "कमाई", "पगार", "रुपये"},
		locale.Bengali: {"আয়", "রোজগার", "বেতন", "টাকা"},
		locale.Odia:    {"ଆୟ", "ରୋଜଗାର", "ଦରମା", "ଟଙ୍କା"},
	}
)

// maxPlausibleAge bounds what a bare number may be read as: anything above
// this is treated as an amount, not an age.
const maxPlausibleAge = 120

// UserProfileBuilder extracts profile facts from free-form user messages.
// Extraction is keyword driven and never fails on unparsable text; it simply
// returns whatever it found.
type UserProfileBuilder struct {
	logger *zap.Logger
}

var _ Tool = (*UserProfileBuilder)(nil)

// NewUserProfileBuilder creates the extraction tool.
func NewUserProfileBuilder(logger *zap.Logger) *UserProfileBuilder {
	return &UserProfileBuilder{
		logger: logger.Named("user_profile_builder"),
	}
}

// Name implements Tool.
func (b *UserProfileBuilder) Name() string {
	return ToolUserProfileBuilder
}

// Execute extracts age, annual income and category mentions from
// input["user_message"]. The current_profile and language inputs are optional
// context; language narrows the keyword tables.
func (b *UserProfileBuilder) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	message, terr := stringField(ToolUserProfileBuilder, input, "user_message")
	if terr != nil {
		return nil, terr
	}
	language, _ := input["language"].(string)

	extracted := extractProfileFacts(message, language)
	b.logger.Debug("profile extraction",
		zap.String("language", language),
		zap.Int("fields", len(extracted)))

	return map[string]interface{}{
		"extracted_info": extracted,
	}, nil
}

// extractProfileFacts assigns each number in the message to the field whose
// keyword occurs nearest to it (ties go to age). When one field is mentioned
// several times the last number wins, which absorbs spoken self-corrections.
func extractProfileFacts(message, language string) map[string]interface{} {
	lower := strings.ToLower(message)
	extracted := make(map[string]interface{})

	agePositions := keywordPositions(lower, ageKeywords, language)
	incomePositions := keywordPositions(lower, incomeKeywords, language)
	runs := digitRuns(lower)

	for _, run := range runs {
		value, err := strconv.Atoi(run.text)
		if err != nil {
			continue // overflows int, not a profile number
		}
		ageDist := nearestDistance(run.start, agePositions)
		incomeDist := nearestDistance(run.start, incomePositions)
		switch {
		case ageDist < 0 && incomeDist < 0:
			// No keyword anywhere; the lone-number rule below decides.
		case incomeDist < 0, ageDist >= 0 && ageDist <= incomeDist:
			if value <= maxPlausibleAge {
				extracted["age"] = value
			}
		default:
			extracted["annual_income"] = value
		}
	}

	// A lone number with no signal words: small reads as an age, large as an
	// income amount. Digits glued to letters ("1st") do not qualify.
	if len(agePositions) == 0 && len(incomePositions) == 0 && len(runs) == 1 && standaloneRun(lower, runs[0]) {
		if value, err := strconv.Atoi(runs[0].text); err == nil {
			if value <= maxPlausibleAge {
				extracted["age"] = value
			} else {
				extracted["annual_income"] = value
			}
		}
	}

	// Token-wise so a later mention overrides an earlier one, same as numbers.
	category := ""
	for _, token := range wordTokens(lower) {
		if c, ok := locale.ParseCategory(token); ok {
			category = c
		}
	}
	if category == "" {
		// Native-script category words carry combining marks that split word
		// tokens, so retry against the whole utterance.
		if c, ok := locale.ParseCategory(lower); ok {
			category = c
		}
	}
	if category != "" {
		extracted["category"] = category
	}

	return extracted
}

var digitRunPattern = regexp.MustCompile(`[0-9]+`)

type digitRun struct {
	text  string
	start int
}

func digitRuns(s string) []digitRun {
	matches := digitRunPattern.FindAllStringIndex(s, -1)
	runs := make([]digitRun, 0, len(matches))
	for _, m := range matches {
		runs = append(runs, digitRun{text: s[m[0]:m[1]], start: m[0]})
	}
	return runs
}

// keywordPositions returns the byte offset of every keyword occurrence for
// the language row and the English row.
func keywordPositions(lower string, table map[string][]string, language string) []int {
	var positions []int
	rows := []string{language}
	if language != locale.English {
		rows = append(rows, locale.English)
	}
	for _, row := range rows {
		for _, keyword := range table[row] {
			start := 0
			for {
				idx := strings.Index(lower[start:], keyword)
				if idx < 0 {
					break
				}
				positions = append(positions, start+idx)
				start += idx + len(keyword)
			}
		}
	}
	return positions
}

// standaloneRun reports whether the digit run is a token of its own rather
// than part of one like "1st".
func standaloneRun(s string, run digitRun) bool {
	if run.start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:run.start])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	end := run.start + len(run.text)
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// nearestDistance returns the smallest absolute byte distance from pos to any
// occurrence, or -1 when there are none.
func nearestDistance(pos int, occurrences []int) int {
	best := -1
	for _, occ := range occurrences {
		d := pos - occ
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

func wordTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
