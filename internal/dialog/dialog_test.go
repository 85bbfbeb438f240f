// internal/dialog/dialog_test.go
package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/voice"
)

func setupPrompter(t *testing.T, attempts int, inputs ...string) (*Prompter, *voice.Scripted) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	backend := voice.NewScripted(logger, inputs...)
	return NewPrompter(backend, attempts, logger), backend
}

// spokenTexts flattens the utterances a backend produced, for sequence
// assertions.
func spokenTexts(backend *voice.Scripted) []string {
	texts := make([]string, 0, len(backend.Spoken))
	for _, u := range backend.Spoken {
		texts = append(texts, u.Text)
	}
	return texts
}

// ageQuestion is the canonical slot prompt of these tests: parse the first
// number out of the reply, default to 30.
func ageQuestion(language string) Question[int] {
	return Question[int]{
		Prompt:   locale.Message(locale.MsgAskAge, language),
		Language: language,
		Parse:    locale.ExtractNumber,
		Default:  30,
	}
}

// -- Test Cases: Prompter construction --

func TestNewPrompter_AttemptBudget(t *testing.T) {
	p, _ := setupPrompter(t, 0)
	assert.Equal(t, DefaultAttempts, p.attempts)

	p, _ = setupPrompter(t, 5)
	assert.Equal(t, 5, p.attempts)
}

// -- Test Cases: AskWithRetry --

func TestAskWithRetry_FirstReplyParses(t *testing.T) {
	p, backend := setupPrompter(t, 3, "I am 32 years old")

	age, answered, err := AskWithRetry(context.Background(), p, ageQuestion(locale.English))

	require.NoError(t, err)
	assert.True(t, answered)
	assert.Equal(t, 32, age)
	assert.Equal(t, []string{locale.Message(locale.MsgAskAge, locale.English)}, spokenTexts(backend))
}

func TestAskWithRetry_RepromptsUntilUsable(t *testing.T) {
	p, backend := setupPrompter(t, 3, "around sixty", "", "I am 45")

	age, answered, err := AskWithRetry(context.Background(), p, ageQuestion(locale.English))

	require.NoError(t, err)
	assert.True(t, answered)
	assert.Equal(t, 45, age)

	prompt := locale.Message(locale.MsgAskAge, locale.English)
	repeat := locale.Message(locale.MsgSayAgain, locale.English)
	assert.Equal(t, []string{prompt, repeat, prompt, repeat, prompt}, spokenTexts(backend))
	assert.Equal(t, 0, backend.Remaining())
}

func TestAskWithRetry_ExhaustionTakesDefault(t *testing.T) {
	// Three unparsable answers to the age prompt resolve to the documented
	// default of 30.
	p, backend := setupPrompter(t, 3, "sixty five or so", "next year maybe", "who knows")

	age, answered, err := AskWithRetry(context.Background(), p, ageQuestion(locale.Telugu))

	require.NoError(t, err)
	assert.False(t, answered)
	assert.Equal(t, 30, age)
	assert.Equal(t, 0, backend.Remaining())
}

func TestAskWithRetry_EmptyRepliesAlsoRetry(t *testing.T) {
	p, backend := setupPrompter(t, 3, "", "   ", "")

	income, answered, err := AskWithRetry(context.Background(), p, Question[int]{
		Prompt:   locale.Message(locale.MsgAskIncome, locale.English),
		Language: locale.English,
		Parse:    locale.ExtractNumber,
		Default:  0,
	})

	require.NoError(t, err)
	assert.False(t, answered)
	assert.Equal(t, 0, income)
	assert.Equal(t, 0, backend.Remaining())
}

func TestAskWithRetry_CustomRepeatLine(t *testing.T) {
	p, backend := setupPrompter(t, 2, "no digits", "52")

	q := ageQuestion(locale.English)
	q.Repeat = "Digits only, please."
	age, answered, err := AskWithRetry(context.Background(), p, q)

	require.NoError(t, err)
	assert.True(t, answered)
	assert.Equal(t, 52, age)
	require.Len(t, backend.Spoken, 3)
	assert.Equal(t, "Digits only, please.", backend.Spoken[1].Text)
}

func TestAskWithRetry_SpeaksInQuestionLanguage(t *testing.T) {
	p, backend := setupPrompter(t, 3, "32")

	_, _, err := AskWithRetry(context.Background(), p, ageQuestion(locale.Telugu))

	require.NoError(t, err)
	require.Len(t, backend.Spoken, 1)
	assert.Equal(t, locale.Telugu, backend.Spoken[0].Language)
}

func TestAskWithRetry_VoiceErrorStopsAsking(t *testing.T) {
	p, backend := setupPrompter(t, 3) // nothing queued, the first listen fails

	age, answered, err := AskWithRetry(context.Background(), p, ageQuestion(locale.English))

	require.ErrorIs(t, err, voice.ErrScriptExhausted)
	assert.False(t, answered)
	assert.Equal(t, 30, age)
	// The prompt was spoken once and no reprompt followed the failure.
	assert.Len(t, backend.Spoken, 1)
}

func TestAskWithRetry_HonorsCancelledContext(t *testing.T) {
	p, backend := setupPrompter(t, 3, "32")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, answered, err := AskWithRetry(ctx, p, ageQuestion(locale.English))

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, answered)
	assert.Equal(t, 1, backend.Remaining())
	assert.Empty(t, backend.Spoken)
}

// -- Test Cases: Confirm --

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		language string
		fallback bool
		want     bool
	}{
		{"Yes on first try", []string{"అవును"}, locale.Telugu, false, true},
		{"No on first try", []string{"వద్దు"}, locale.Telugu, true, false},
		{"English words under another language", []string{"yes please"}, locale.Marathi, false, true},
		{"Indecisive then yes", []string{"hmm", "ok yes"}, locale.English, false, true},
		{"Exhaustion takes fallback true", []string{"hmm", "maybe", "dunno"}, locale.English, true, true},
		{"Exhaustion takes fallback false", []string{"hmm", "maybe", "dunno"}, locale.English, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := setupPrompter(t, 3, tc.inputs...)

			got, err := Confirm(context.Background(), p, "Shall we continue?", tc.language, tc.fallback)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfirm_RepromptAsksForYesOrNo(t *testing.T) {
	p, backend := setupPrompter(t, 3, "hmm", "yes")

	got, err := Confirm(context.Background(), p, "Continue?", locale.Tamil, false)

	require.NoError(t, err)
	assert.True(t, got)
	require.Len(t, backend.Spoken, 3)
	assert.Equal(t, locale.Message(locale.MsgSayYesNo, locale.Tamil), backend.Spoken[1].Text)
}

// -- Test Cases: AnyText --

func TestAnyText(t *testing.T) {
	text, ok := AnyText("I need help with a pension")
	assert.True(t, ok)
	assert.Equal(t, "I need help with a pension", text)

	_, ok = AnyText("")
	assert.False(t, ok)
}
