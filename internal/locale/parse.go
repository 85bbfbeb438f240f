// internal/locale/parse.go
package locale

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// yesWords and noWords hold the affirmative and negative keywords per
// language. The English set is always consulted as a fallback regardless of
// the active language, and the affirmative check runs first, so an utterance
// containing both resolves to yes.
var yesWords = map[string][]string{
	English: {"yes", "y", "yeah", "yep", "ok", "okay", "enough", "done", "fine", "good"},
	Telugu:  {"అవును", "సరే", "చాలు", "ఓకే"},
	Tamil:   {"ஆம்", "சரி", "போதும்"},
	Marathi: {"हो", "होय", "ठीक", "पुरे", "बरं"},
	Bengali: {"হ্যাঁ", "ঠিক আছে", "যথেষ্ট", "হ্যা"},
	Odia:    {"ହଁ", "ଠିକ୍ ଅଛି", "ଯଥେଷ୍ଟ"},
}

var noWords = map[string][]string{
	English: {"no", "n", "nope", "not"},
	Telugu:  {"కాదు", "వద్దు"},
	Tamil:   {"இல்லை", "வேண்டாம்"},
	Marathi: {"नाही", "नको"},
	Bengali: {"না", "চাই না"},
	Odia:    {"ନା", "ଦରକାର ନାହିଁ"},
}

// quitWords end the open conversation loop when they appear as a word of the
// user's utterance, whatever the active language.
var quitWords = []string{"quit", "exit", "bye", "goodbye"}

var digitRun = regexp.MustCompile(`[0-9]+`)

// ParseYesNo interprets text as an affirmative or negative answer in lang.
// The second return value is false when the utterance is not decisive either
// way, which callers treat as "ask again".
func ParseYesNo(text, lang string) (bool, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false, false
	}
	toks := tokenize(t)
	if matchesAny(t, toks, yesWords[lang]) || (lang != English && matchesAny(t, toks, yesWords[English])) {
		return true, true
	}
	if matchesAny(t, toks, noWords[lang]) || (lang != English && matchesAny(t, toks, noWords[English])) {
		return false, true
	}
	return false, false
}

// ExtractNumber returns the first run of digits in text as an int. ok is
// false when text carries no digits, or the run overflows an int.
func ExtractNumber(text string) (int, bool) {
	run := digitRun.FindString(text)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseNumber extracts the first run of digits from text, or the documented
// fallback when none is usable, so slot-filling always ends with a value.
func ParseNumber(text string, fallback int) int {
	if n, ok := ExtractNumber(text); ok {
		return n
	}
	return fallback
}

// ParseLanguage resolves a spoken language choice to a supported code. It
// accepts display names ("Telugu") as substrings and bare codes ("te") as
// whole words, checking languages in the catalog's stable order.
func ParseLanguage(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "", false
	}
	toks := tokenize(t)
	for _, code := range supportedOrder {
		if strings.Contains(t, strings.ToLower(languageNames[code])) {
			return code, true
		}
		if containsToken(toks, code) {
			return code, true
		}
	}
	return "", false
}

// categoryWords maps spoken tokens to the canonical stored social category.
// Prompts spell the choices in Latin letters, so the ASCII tokens cover most
// replies; the native entries catch speakers who answer with their own word
// for the open category or a transliterated abbreviation.
var categoryWords = []struct {
	word     string
	category string
}{
	{"sc", "SC"},
	{"st", "ST"},
	{"obc", "OBC"},
	{"general", "General"},
	{"ఎస్సీ", "SC"},
	{"ఎస్టీ", "ST"},
	{"ఓబీసీ", "OBC"},
	{"జనరల్", "General"},
	{"எஸ்சி", "SC"},
	{"பொது", "General"},
	{"जनरल", "General"},
	{"सामान्य", "General"},
	{"জেনারেল", "General"},
	{"সাধারণ", "General"},
	{"ଜେନେରାଲ", "General"},
	{"ସାଧାରଣ", "General"},
}

// ParseCategory resolves a spoken social category to its canonical stored
// form: SC, ST, OBC or General. A reply naming two different categories is
// not decisive, and callers treat it like silence and ask again.
func ParseCategory(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return "", false
	}
	toks := tokenize(t)
	found := ""
	for _, entry := range categoryWords {
		var hit bool
		if isASCII(entry.word) {
			hit = containsToken(toks, entry.word)
		} else {
			hit = strings.Contains(t, entry.word)
		}
		if !hit {
			continue
		}
		if found != "" && found != entry.category {
			return "", false
		}
		found = entry.category
	}
	return found, found != ""
}

// IsQuit reports whether the utterance contains an explicit quit command.
func IsQuit(text string) bool {
	toks := tokenize(strings.ToLower(text))
	for _, w := range quitWords {
		if containsToken(toks, w) {
			return true
		}
	}
	return false
}

// matchesAny checks keywords against the utterance. ASCII keywords must match
// a whole token so that single letters like "y" or "n" cannot fire inside
// ordinary words; non-Latin keywords (which may span several script words)
// match by containment.
func matchesAny(text string, toks []string, words []string) bool {
	for _, w := range words {
		if isASCII(w) {
			if containsToken(toks, w) {
				return true
			}
			continue
		}
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func containsToken(toks []string, word string) bool {
	for _, t := range toks {
		if t == word {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
