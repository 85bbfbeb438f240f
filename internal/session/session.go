// internal/session/session.go

// Package session implements the conversation surfaces around one Agent: the
// guided voice flow, the interactive text loop, and the scripted demo and
// evaluation drivers. The guided flow owns the spoken question order; the
// Agent owns memory and the tool cycle. Both talk to the same registry, so a
// fact landed by either side is visible to the other.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/agent"
	"github.com/janmitra/mitra-cli/internal/config"
	"github.com/janmitra/mitra-cli/internal/dialog"
	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/memory"
	"github.com/janmitra/mitra-cli/internal/tools"
	"github.com/janmitra/mitra-cli/internal/voice"
)

// Slot defaults taken when a spoken answer never parses. Age 30 and income 0
// leave most schemes reachable; General is the open category.
const (
	defaultAge      = 30
	defaultIncome   = 0
	defaultCategory = "General"
)

// maxOffered caps how many catalog schemes one spoken listing names.
const maxOffered = 5

// farewellTimeout bounds the goodbye spoken after cancellation.
const farewellTimeout = time.Second

// Session runs conversations over one voice backend. It is single-threaded:
// every exchange is a suspension point on the same control flow, so none of
// its methods are safe for concurrent use.
type Session struct {
	logger   *zap.Logger
	agent    *agent.Agent
	voice    voice.Interface
	prompter *dialog.Prompter
	registry *tools.Registry
	out      io.Writer

	language string
}

// New wires a session around an assembled agent. The registry must be the
// same one the agent plans against. out receives machine-readable trailers
// such as the statistics export, never conversation text.
func New(cfg config.AgentConfig, ag *agent.Agent, v voice.Interface, registry *tools.Registry, out io.Writer, logger *zap.Logger) *Session {
	language := cfg.DefaultLanguage
	if !locale.IsSupported(language) {
		language = locale.English
	}
	return &Session{
		logger:   logger.Named("session"),
		agent:    ag,
		voice:    v,
		prompter: dialog.NewPrompter(v, cfg.MaxPromptRetries, logger),
		registry: registry,
		out:      out,
		language: language,
	}
}

// Language returns the active conversation language. Before language
// selection runs it reports the configured default.
func (s *Session) Language() string {
	return s.language
}

// Voice runs the complete guided conversation, from language selection to
// farewell. Running out of input ends the session normally; cancellation ends
// it with a short goodbye. The memory statistics are exported either way.
func (s *Session) Voice(ctx context.Context) error {
	defer s.exportStatistics()
	return s.sessionErr(s.converse(ctx))
}

// converse greets in the settled language and then advises in rounds until
// the user applies for a scheme or confirms they have enough help.
func (s *Session) converse(ctx context.Context) error {
	if err := s.selectLanguage(ctx); err != nil {
		return err
	}
	s.logger.Info("session language settled", zap.String("language", s.language))

	if err := s.voice.Speak(ctx, locale.Message(locale.MsgWelcome, s.language), s.language); err != nil {
		return err
	}

	for round := 0; ; round++ {
		applied, err := s.adviseOnce(ctx, round > 0)
		if err != nil {
			return err
		}
		if applied {
			// apply already said the full goodbye.
			return nil
		}

		enough, err := s.enoughHelp(ctx)
		if err != nil {
			return err
		}
		if enough {
			return s.voice.Speak(ctx, locale.Message(locale.MsgFarewell, s.language), s.language)
		}
		if err := s.voice.Speak(ctx, locale.Message(locale.MsgReaskDetails, s.language), s.language); err != nil {
			return err
		}
	}
}

// -- Language selection --

// selectLanguage settles the conversation language: one auto-detected listen,
// a confirmation when detection produced something, and a by-name fallback
// otherwise. The configured default survives a user who never answers.
func (s *Session) selectLanguage(ctx context.Context) error {
	if err := s.voice.Speak(ctx, locale.Message(locale.MsgDetectLanguage, locale.English), locale.English); err != nil {
		return err
	}
	_, detected, err := s.voice.Listen(ctx, voice.LanguageAuto)
	if err != nil {
		return err
	}

	if detected != "" && locale.IsSupported(detected) {
		prompt := locale.Messagef(locale.MsgLanguageConfirm, detected, locale.LanguageName(detected))
		keep, err := dialog.Confirm(ctx, s.prompter, prompt, detected, true)
		if err != nil {
			return err
		}
		if keep {
			s.language = detected
			return nil
		}
		return s.askLanguageName(ctx, locale.Message(locale.MsgLanguageReselect, detected), detected)
	}
	return s.askLanguageName(ctx, locale.Message(locale.MsgLanguageNotDetected, s.language), s.language)
}

// askLanguageName asks for the language by name and parses the reply in any
// of the supported languages. Exhausted attempts keep the current language.
func (s *Session) askLanguageName(ctx context.Context, prompt, promptLanguage string) error {
	code, _, err := dialog.AskWithRetry(ctx, s.prompter, dialog.Question[string]{
		Prompt:   prompt,
		Repeat:   locale.Message(locale.MsgLanguageRetry, promptLanguage),
		Language: promptLanguage,
		Parse:    locale.ParseLanguage,
		Default:  s.language,
	})
	if err != nil {
		return err
	}
	s.language = code
	return nil
}

// -- Guided advising --

// adviseOnce runs one advice round: gather the profile, evaluate it, present
// what matched, and walk toward an application. It reports whether an
// application was filed; a false return hands control back to the
// enough-help loop.
func (s *Session) adviseOnce(ctx context.Context, reask bool) (bool, error) {
	if err := s.gatherProfile(ctx, reask); err != nil {
		return false, err
	}

	available, eligible, err := s.lookupSchemes(ctx)
	if err != nil {
		var terr *tools.ToolError
		if errors.As(err, &terr) {
			s.logger.Error("scheme lookup failed", zap.Error(err))
			return false, s.voice.Speak(ctx, locale.Message(locale.MsgProcessingError, s.language), s.language)
		}
		return false, err
	}
	if len(eligible) == 0 {
		return s.offerAvailable(ctx, available)
	}

	listing := locale.Messagef(locale.MsgEligibleSchemes, s.language, schemeLines(eligible))
	if err := s.voice.Speak(ctx, listing, s.language); err != nil {
		return false, err
	}
	wantDetail, err := dialog.Confirm(ctx, s.prompter, locale.Message(locale.MsgAskMoreInfo, s.language), s.language, false)
	if err != nil {
		return false, err
	}
	if wantDetail {
		return s.walkGuidance(ctx, eligible, available)
	}

	if err := s.voice.Speak(ctx, locale.Message(locale.MsgAskPickAvailable, s.language), s.language); err != nil {
		return false, err
	}
	return s.pickAndApply(ctx, eligible)
}

// gatherProfile runs the slot-filling round: ask what the user needs, land
// whatever facts the reply carried, then prompt for each required field still
// missing. A reask round asks for every field again so a user who wants a
// fresh verdict can restate everything.
func (s *Session) gatherProfile(ctx context.Context, reask bool) error {
	need, answered, err := dialog.AskWithRetry(ctx, s.prompter, dialog.Question[string]{
		Prompt:   locale.Message(locale.MsgAskNeed, s.language),
		Language: s.language,
		Parse:    dialog.AnyText,
	})
	if err != nil {
		return err
	}
	if answered {
		s.agent.Memory().AddTurn(memory.RoleUser, need, s.language)
		if facts := s.extractFacts(ctx, need); len(facts) > 0 {
			if err := s.speakNotices(ctx, s.agent.Memory().UpdateProfile(facts, s.language)); err != nil {
				return err
			}
		}
	}

	fields := s.agent.Memory().Profile().MissingRequired()
	if reask {
		fields = memory.UserProfile{}.MissingRequired() // every required field
	}
	if len(fields) == 0 {
		return nil
	}

	updates := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		value, err := s.askSlot(ctx, field)
		if err != nil {
			return err
		}
		updates[field] = value
	}
	return s.speakNotices(ctx, s.agent.Memory().UpdateProfile(updates, s.language))
}

// askSlot prompts for one required profile field, parsing the spoken answer
// and falling back to the documented default when the attempts run out.
func (s *Session) askSlot(ctx context.Context, field string) (interface{}, error) {
	switch field {
	case "age":
		value, _, err := dialog.AskWithRetry(ctx, s.prompter, dialog.Question[int]{
			Prompt:   locale.Message(locale.MsgAskAge, s.language),
			Language: s.language,
			Parse:    locale.ExtractNumber,
			Default:  defaultAge,
		})
		return value, err
	case "annual_income":
		value, _, err := dialog.AskWithRetry(ctx, s.prompter, dialog.Question[int]{
			Prompt:   locale.Message(locale.MsgAskIncome, s.language),
			Language: s.language,
			Parse:    locale.ExtractNumber,
			Default:  defaultIncome,
		})
		return value, err
	default:
		value, _, err := dialog.AskWithRetry(ctx, s.prompter, dialog.Question[string]{
			Prompt:   locale.Message(locale.MsgAskCategory, s.language),
			Language: s.language,
			Parse:    locale.ParseCategory,
			Default:  defaultCategory,
		})
		return value, err
	}
}

// extractFacts runs the profile extractor over one free-form utterance.
// Extraction is best-effort: a tool failure yields no facts, not an error.
func (s *Session) extractFacts(ctx context.Context, text string) map[string]interface{} {
	result, err := s.registry.Execute(ctx, tools.ToolUserProfileBuilder, map[string]interface{}{
		"user_message":    text,
		"current_profile": s.agent.Memory().Profile().Fields(),
		"language":        s.language,
	})
	if err != nil {
		s.logger.Warn("profile extraction failed", zap.Error(err))
		return nil
	}
	facts, _ := result["extracted_info"].(map[string]interface{})
	return facts
}

// speakNotices voices the contradiction notices a profile update triggered.
func (s *Session) speakNotices(ctx context.Context, records []memory.ContradictionRecord) error {
	for _, rec := range records {
		if err := s.voice.Speak(ctx, rec.Notice(), s.language); err != nil {
			return err
		}
	}
	return nil
}

// lookupSchemes returns the localized catalog and the subset the current
// profile qualifies for, both in catalog order.
func (s *Session) lookupSchemes(ctx context.Context) (available, eligible []tools.Scheme, err error) {
	lookup, err := s.registry.Execute(ctx, tools.ToolSchemeDatabase, map[string]interface{}{
		"language": s.language,
	})
	if err != nil {
		return nil, nil, err
	}
	available, _ = lookup["schemes"].([]tools.Scheme)

	verdict, err := s.registry.Execute(ctx, tools.ToolEligibilityChecker, map[string]interface{}{
		"user_profile": s.agent.Memory().Profile().Fields(),
	})
	if err != nil {
		return nil, nil, err
	}
	names, _ := verdict["eligible_schemes"].([]string)

	admitted := make(map[string]bool, len(names))
	for _, name := range names {
		admitted[name] = true
	}
	for _, scheme := range available {
		if admitted[scheme.EnglishName] {
			eligible = append(eligible, scheme)
		}
	}
	return available, eligible, nil
}

// walkGuidance speaks the guidance block for each eligible scheme in turn,
// offering the application after each. Declining every one falls back to the
// full catalog listing.
func (s *Session) walkGuidance(ctx context.Context, eligible, available []tools.Scheme) (bool, error) {
	for _, scheme := range eligible {
		detail := locale.Messagef(locale.MsgSchemeGuidance, s.language, scheme.Name, scheme.Guidance(s.language))
		if err := s.voice.Speak(ctx, detail, s.language); err != nil {
			return false, err
		}
		wantApply, err := dialog.Confirm(ctx, s.prompter, locale.Message(locale.MsgAskApply, s.language), s.language, false)
		if err != nil {
			return false, err
		}
		if wantApply {
			return s.apply(ctx, scheme)
		}
	}
	return s.offerAvailable(ctx, available)
}

// offerAvailable lists what the catalog has when nothing matched, capped so
// the spoken listing stays short, and lets the user pick one by name.
func (s *Session) offerAvailable(ctx context.Context, available []tools.Scheme) (bool, error) {
	offered := available
	if len(offered) > maxOffered {
		offered = offered[:maxOffered]
	}
	listing := locale.Message(locale.MsgNoMoreEligible, s.language) + "\n" + schemeLines(offered)
	if err := s.voice.Speak(ctx, listing, s.language); err != nil {
		return false, err
	}
	if err := s.voice.Speak(ctx, locale.Message(locale.MsgAskPickAvailable, s.language), s.language); err != nil {
		return false, err
	}
	return s.pickAndApply(ctx, offered)
}

// schemePick is the parsed outcome of a pick-by-name reply.
type schemePick struct {
	scheme   tools.Scheme
	declined bool
}

// pickAndApply listens for a scheme chosen by name out of the offered set. A
// quit word or a plain "no" declines the offer; an unmatched reply retries
// within the prompt budget. A successful pick hears the scheme's guidance and
// the apply confirmation before anything is filed.
func (s *Session) pickAndApply(ctx context.Context, offered []tools.Scheme) (bool, error) {
	pick, answered, err := dialog.AskWithRetry(ctx, s.prompter, dialog.Question[schemePick]{
		Language: s.language, // the offer was already spoken; no prompt here
		Parse: func(text string) (schemePick, bool) {
			if locale.IsQuit(text) {
				return schemePick{declined: true}, true
			}
			if yes, decisive := locale.ParseYesNo(text, s.language); decisive && !yes {
				return schemePick{declined: true}, true
			}
			if scheme, ok := tools.MatchScheme(text, offered); ok {
				return schemePick{scheme: scheme}, true
			}
			return schemePick{}, false
		},
	})
	if err != nil {
		return false, err
	}
	if !answered || pick.declined {
		return false, nil
	}

	detail := locale.Messagef(locale.MsgSchemeGuidance, s.language, pick.scheme.Name, pick.scheme.Guidance(s.language))
	if err := s.voice.Speak(ctx, detail, s.language); err != nil {
		return false, err
	}
	wantApply, err := dialog.Confirm(ctx, s.prompter, locale.Message(locale.MsgAskApply, s.language), s.language, false)
	if err != nil {
		return false, err
	}
	if !wantApply {
		return false, nil
	}
	return s.apply(ctx, pick.scheme)
}

// apply files the application under the session id and closes the flow with
// the spoken application id and the full farewell. A tracker failure keeps
// the session open behind an apology.
func (s *Session) apply(ctx context.Context, scheme tools.Scheme) (bool, error) {
	result, err := s.registry.Execute(ctx, tools.ToolApplicationTracker, map[string]interface{}{
		"action":      "create",
		"user_id":     s.agent.SessionID(),
		"scheme_name": scheme.EnglishName,
	})
	if err != nil {
		s.logger.Error("application submission failed",
			zap.String("scheme", scheme.EnglishName), zap.Error(err))
		return false, s.voice.Speak(ctx, locale.Message(locale.MsgProcessingError, s.language), s.language)
	}

	id, _ := result["application_id"].(string)
	submitted := locale.Messagef(locale.MsgApplicationSubmitted, s.language, scheme.Name, id)
	if err := s.voice.Speak(ctx, submitted, s.language); err != nil {
		return false, err
	}
	return true, s.voice.Speak(ctx, locale.Message(locale.MsgFarewell, s.language), s.language)
}

// enoughHelp runs the two-step closing confirmation. Only a yes followed by
// a confirming yes ends the session. Silence counts as enough, so a user who
// stopped answering is not looped forever.
func (s *Session) enoughHelp(ctx context.Context) (bool, error) {
	enough, err := dialog.Confirm(ctx, s.prompter, locale.Message(locale.MsgAskEnoughHelp, s.language), s.language, true)
	if err != nil || !enough {
		return enough, err
	}
	return dialog.Confirm(ctx, s.prompter, locale.Message(locale.MsgConfirmEnoughHelp, s.language), s.language, true)
}

// -- Session closing --

// sessionErr translates transport-level endings into a clean close. EOF and
// an exhausted script are normal ends; cancellation earns a best-effort
// goodbye on a fresh deadline; anything else propagates.
func (s *Session) sessionErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, voice.ErrScriptExhausted):
		s.logger.Info("input ended, closing session")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Info("session cancelled, saying goodbye")
		farewell, cancel := context.WithTimeout(context.Background(), farewellTimeout)
		defer cancel()
		if serr := s.voice.Speak(farewell, locale.Message(locale.MsgFarewellShort, s.language), s.language); serr != nil {
			s.logger.Debug("farewell not delivered", zap.Error(serr))
		}
		return nil
	default:
		return err
	}
}

// exportStatistics writes the end-of-session memory summary as JSON.
func (s *Session) exportStatistics() {
	stats := s.agent.Memory().Statistics()
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		s.logger.Warn("could not encode session statistics", zap.Error(err))
		return
	}
	fmt.Fprintf(s.out, "\nSession statistics:\n%s\n", data)
}

// schemeLines renders a spoken scheme listing, one per line, with the English
// name alongside so the user can repeat either form back.
func schemeLines(schemes []tools.Scheme) string {
	lines := make([]string, 0, len(schemes))
	for _, s := range schemes {
		line := "- " + s.Name
		if s.EnglishName != s.Name {
			line += " (" + s.EnglishName + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
