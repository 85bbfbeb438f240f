// internal/session/interactive.go
package session

import (
	"context"
	"fmt"
	"strings"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/dialog"
	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/memory"
	"github.com/janmitra/mitra-cli/internal/tools"
)

// Interactive runs the open text loop: every line is one full conversation
// cycle through the agent, with a few inspection commands on top. Naming a
// catalog scheme offers that scheme's guidance before a cycle is spent on it.
func (s *Session) Interactive(ctx context.Context) error {
	defer s.exportStatistics()
	return s.sessionErr(s.interact(ctx))
}

func (s *Session) interact(ctx context.Context) error {
	fmt.Fprintf(s.out, "Interactive session, language %s. Commands: status, memory, quit.\n", s.language)
	if err := s.voice.Speak(ctx, locale.Message(locale.MsgWelcome, s.language), s.language); err != nil {
		return err
	}

	for {
		text, _, err := s.voice.Listen(ctx, s.language)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		switch {
		case text == "":
			continue
		case locale.IsQuit(text):
			return s.voice.Speak(ctx, locale.Message(locale.MsgFarewellShort, s.language), s.language)
		case strings.EqualFold(text, "status"):
			if err := s.printStatus(); err != nil {
				return err
			}
			continue
		case strings.EqualFold(text, "memory"):
			s.printRecentTurns()
			continue
		}

		handled, err := s.mentionedSchemeDetail(ctx, text)
		if err != nil {
			return err
		}
		if handled {
			continue
		}

		response, err := s.agent.Run(ctx, text, s.language)
		if err != nil {
			return err
		}
		if err := s.voice.Speak(ctx, response, s.language); err != nil {
			return err
		}
	}
}

// mentionedSchemeDetail checks whether the utterance names a catalog scheme
// and, when the user confirms, answers with that scheme's guidance instead of
// a full cycle. Slot answers and generic questions fall through to the agent.
func (s *Session) mentionedSchemeDetail(ctx context.Context, text string) (bool, error) {
	lookup, err := s.registry.Execute(ctx, tools.ToolSchemeDatabase, map[string]interface{}{
		"language": s.language,
	})
	if err != nil {
		s.logger.Warn("catalog lookup failed", zap.Error(err))
		return false, nil
	}
	schemes, _ := lookup["schemes"].([]tools.Scheme)
	scheme, ok := tools.MatchScheme(text, schemes)
	if !ok {
		return false, nil
	}

	wantDetail, err := dialog.Confirm(ctx, s.prompter,
		locale.Messagef(locale.MsgAskSchemeDetails, s.language, scheme.Name), s.language, false)
	if err != nil {
		return false, err
	}
	if !wantDetail {
		return false, nil
	}

	s.agent.Memory().AddTurn(memory.RoleUser, text, s.language)
	guidance := locale.Messagef(locale.MsgSchemeGuidance, s.language, scheme.Name, scheme.Guidance(s.language))
	s.agent.Memory().AddTurn(memory.RoleAssistant, guidance, s.language)
	return true, s.voice.Speak(ctx, guidance, s.language)
}

// printStatus dumps the agent snapshot for the status command.
func (s *Session) printStatus() error {
	data, err := json.MarshalIndent(s.agent.StateInfo(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s\n", data)
	return nil
}

// printRecentTurns shows the memory context window for the memory command.
func (s *Session) printRecentTurns() {
	snapshot := s.agent.Memory().Context()
	if len(snapshot.RecentTurns) == 0 {
		fmt.Fprintln(s.out, "(no conversation recorded yet)")
		return
	}
	for _, turn := range snapshot.RecentTurns {
		fmt.Fprintf(s.out, "%s [%s]: %s\n", turn.Role, turn.Language, turn.Content)
	}
}
