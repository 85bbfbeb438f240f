// internal/locale/parse_test.go
package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- Test Cases: Yes/No parsing --

func TestParseYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		lang     string
		want     bool
		decisive bool
	}{
		// English affirmatives and negatives.
		{"Plain yes", "yes", English, true, true},
		{"Yes with noise", "Yes, please go ahead", English, true, true},
		{"Okay", "okay", English, true, true},
		{"Enough counts as yes", "that is enough", English, true, true},
		{"Single letter y", "y", English, true, true},
		{"Plain no", "no", English, false, true},
		{"No thanks", "No thanks", English, false, true},
		{"Single letter n", "n", English, false, true},

		// Keyword order: affirmative wins when both appear.
		{"Yes beats no", "yes no", English, true, true},

		// Native keywords.
		{"Telugu yes", "అవును", Telugu, true, true},
		{"Telugu no", "వద్దు కావాలి లేదు", Telugu, false, true},
		{"Tamil yes", "ஆம், சரி", Tamil, true, true},
		{"Marathi yes", "हो नक्की", Marathi, true, true},
		{"Bengali phrase yes", "ঠিক আছে", Bengali, true, true},
		{"Odia no", "ନା", Odia, false, true},

		// English fallback stays active in every language.
		{"English yes under Telugu", "yes", Telugu, true, true},
		{"English no under Odia", "no", Odia, false, true},

		// Single-letter keywords must not fire inside ordinary words.
		{"Embedded letters are not answers", "my pension", English, false, false},
		{"Know is not no", "I know", English, false, false},

		// Indecisive input.
		{"Unrelated text", "I live in Warangal", English, false, false},
		{"Empty", "", English, false, false},
		{"Whitespace", "   ", Telugu, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseYesNo(tc.input, tc.lang)
			assert.Equal(t, tc.decisive, ok, "decisiveness mismatch for %q", tc.input)
			if tc.decisive {
				assert.Equal(t, tc.want, got, "answer mismatch for %q", tc.input)
			}
		})
	}
}

// -- Test Cases: Number extraction --

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		fallback int
		want     int
	}{
		{"Bare number", "65", 30, 65},
		{"Number with words", "I am 65 years old", 30, 65},
		{"Income phrase", "my annual income is 40000 rupees", 0, 40000},
		{"First run wins", "between 30 and 40", 0, 30},
		{"No digits takes fallback", "I am sixty five", 30, 30},
		{"Empty takes fallback", "", 0, 0},
		{"Digits glued to script", "వయస్సు 72 సంవత్సరాలు", 30, 72},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNumber(tc.input, tc.fallback))
		})
	}
}

func TestExtractNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"Bare number", "42", 42, true},
		{"Number in phrase", "about 42 I think", 42, true},
		{"No digits", "I am sixty five", 0, false},
		{"Empty", "", 0, false},
		{"Overflowing run", "99999999999999999999", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractNumber(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// -- Test Cases: Category parsing --

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		decisive bool
	}{
		{"Bare token", "obc", "OBC", true},
		{"Uppercase", "OBC", "OBC", true},
		{"In a sentence", "I am from the general category", "General", true},
		{"SC with punctuation", "SC.", "SC", true},
		{"Telugu transliterated", "నేను ఎస్టీ", "ST", true},
		{"Tamil open category", "பொது", "General", true},
		{"Devanagari general", "सामान्य श्रेणी", "General", true},
		{"Bengali general", "সাধারণ", "General", true},
		{"Odia general", "ସାଧାରଣ", "General", true},
		{"Same category twice", "general, yes general", "General", true},
		{"Two different categories", "sc or maybe obc", "", false},
		{"Ordinal is not a category", "I came 1st in class", "", false},
		{"Unrelated", "I need a pension", "", false},
		{"Empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseCategory(tc.input)
			assert.Equal(t, tc.decisive, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// -- Test Cases: Language selection --

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     string
		resolved bool
	}{
		{"Display name", "Telugu please", "te", true},
		{"Lowercase name", "i prefer tamil", "ta", true},
		{"Name inside sentence", "switch to Marathi", "mr", true},
		{"Bare code", "te", "te", true},
		{"Code as word", "use bn now", "bn", true},
		{"English", "English", "en", true},
		{"Odia", "Odia", "or", true},
		{"Code must be a whole word", "apply for pension", "", false},
		{"Unknown", "français", "", false},
		{"Empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLanguage(tc.input)
			assert.Equal(t, tc.resolved, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// -- Test Cases: Quit detection --

func TestIsQuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Quit", "quit", true},
		{"Exit in sentence", "please exit now", true},
		{"Goodbye", "Goodbye!", true},
		{"Bye", "ok bye", true},
		{"Quite is not quit", "I am quite happy", false},
		{"Ordinary request", "I want to apply for a scheme", false},
		{"Empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsQuit(tc.input))
		})
	}
}
