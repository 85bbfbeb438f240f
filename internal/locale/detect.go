// internal/locale/detect.go
package locale

// scriptRanges maps Unicode script blocks to the language whose catalog
// serves them. Devanagari resolves to mr, so Hindi input lands on the
// Marathi catalog rather than going unserved.
var scriptRanges = []struct {
	lo, hi rune
	code   string
}{
	{0x0900, 0x097F, Marathi}, // Devanagari
	{0x0980, 0x09FF, Bengali},
	{0x0B00, 0x0B7F, Odia},
	{0x0B80, 0x0BFF, Tamil},
	{0x0C00, 0x0C7F, Telugu},
}

// DetectLanguage guesses the language of text from the script its letters are
// written in. Latin letters count toward English. The majority script wins,
// with ties resolved in the catalog's stable order. Text with no letters at
// all (a bare number, punctuation) reports false.
func DetectLanguage(text string) (string, bool) {
	counts := make(map[string]int, len(supportedOrder))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			counts[English]++
			continue
		}
		for _, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				counts[sr.code]++
				break
			}
		}
	}

	best, bestCount := "", 0
	for _, code := range supportedOrder {
		if counts[code] > bestCount {
			best, bestCount = code, counts[code]
		}
	}
	if bestCount == 0 {
		return "", false
	}
	return best, true
}
