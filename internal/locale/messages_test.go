// internal/locale/messages_test.go
package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Test Cases: Catalog lookups --

func TestMessage_ReturnsLanguageEntry(t *testing.T) {
	t.Parallel()

	got := Message(MsgWelcome, Telugu)
	assert.Equal(t, "నమస్కారం! నేను మీ సహాయ కార్యకర్త. మీకు ఎలా సహాయం చేయగలను?", got)

	got = Message(MsgWelcome, English)
	assert.Equal(t, "Hello! I am your welfare assistant. How can I help you today?", got)
}

func TestMessage_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	// The detection prompt is deliberately English-only; every language must
	// resolve to the same text.
	want := Message(MsgDetectLanguage, English)
	require.NotEmpty(t, want)
	for _, lang := range Supported() {
		assert.Equal(t, want, Message(MsgDetectLanguage, lang), "language %s should fall back", lang)
	}

	// Unknown languages fall back too rather than producing empty prompts.
	assert.Equal(t, Message(MsgWelcome, English), Message(MsgWelcome, "fr"))
}

func TestMessage_UnknownIDIsEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Message(MessageID("no_such_message"), English))
}

func TestCatalog_EveryEntryHasEnglish(t *testing.T) {
	t.Parallel()
	for id, entry := range catalog {
		assert.NotEmpty(t, entry[English], "catalog entry %q is missing its English fallback", id)
	}
}

func TestMessagef_FormatsSameArgumentOrderAcrossLanguages(t *testing.T) {
	t.Parallel()

	for _, lang := range Supported() {
		notice := Messagef(MsgApplicationSubmitted, lang, "Old-Age Pension", "APP-1234")
		assert.Contains(t, notice, "Old-Age Pension", "language %s", lang)
		assert.Contains(t, notice, "APP-1234", "language %s", lang)
		assert.NotContains(t, notice, "%s", "language %s left an unexpanded verb", lang)
	}

	confirm := Messagef(MsgLanguageConfirm, Telugu, LanguageName(Telugu))
	assert.Contains(t, confirm, "Telugu")
}

// -- Test Cases: Language metadata --

func TestLanguageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want string
	}{
		{"English", "en", "English"},
		{"Telugu", "te", "Telugu"},
		{"Odia", "or", "Odia"},
		{"Unknown code passes through", "fr", "fr"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LanguageName(tc.code))
		})
	}
}

func TestSupported_StableOrderAndCopy(t *testing.T) {
	t.Parallel()

	first := Supported()
	require.Equal(t, []string{"en", "te", "ta", "mr", "bn", "or"}, first)

	// Mutating the returned slice must not corrupt the catalog's order.
	first[0] = "zz"
	assert.Equal(t, []string{"en", "te", "ta", "mr", "bn", "or"}, Supported())
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	for _, lang := range Supported() {
		assert.True(t, IsSupported(lang), "language %s", lang)
	}
	assert.False(t, IsSupported("fr"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("EN"), "codes are case-sensitive")
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "వయస్సు", FieldName("age", Telugu))
	assert.Equal(t, "annual income", FieldName("annual_income", English))
	assert.Equal(t, "social category", FieldName("category", "fr"), "unknown language falls back to English")
	assert.Equal(t, "occupation", FieldName("occupation", Telugu), "unknown fields pass through unchanged")
}

func TestContradictionNotice_MentionsBothValues(t *testing.T) {
	t.Parallel()

	notice := Messagef(MsgContradiction, Marathi, FieldName("annual_income", Marathi), 50000, 30000)
	assert.True(t, strings.Contains(notice, "50000") && strings.Contains(notice, "30000"),
		"notice should carry old and new values: %q", notice)
	assert.Contains(t, notice, "वार्षिक उत्पन्न")
}
