// internal/agent/planner.go
package agent

import (
	"strings"

	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/memory"
	"github.com/janmitra/mitra-cli/internal/tools"
)

// Intent keyword tables. Each language lists the words that signal an
// explicit application request or a documents/guidance question; the English
// row is always consulted in addition to the active language, matching how
// the profile extractor treats its keyword tables.
var (
	applyKeywords = map[string][]string{
		locale.English: {"apply", "application", "enroll", "enrol", "register", "submit"},
		locale.Telugu:  {"దరఖాస్తు", "అప్లై"},
		locale.Tamil:   {"விண்ணப்ப", "அப்ளை"},
		locale.Marathi: {"अर्ज", "नोंदणी"},
		locale.Bengali: {"আবেদন"},
		locale.Odia:    {"ଆବେଦନ", "ଦରଖାସ୍ତ"},
	}
	documentKeywords = map[string][]string{
		locale.English: {"document", "certificate", "paper", "proof"},
		locale.Telugu:  {"పత్రాల", "పత్రం", "డాక్యుమెంట", "ధృవీకరణ"},
		locale.Tamil:   {"ஆவண", "சான்றிதழ்"},
		locale.Marathi: {"कागदपत्र", "दस्तऐवज", "प्रमाणपत्र"},
		locale.Bengali: {"নথি", "কাগজপত্র"},
		locale.Odia:    {"ଦସ୍ତାବେଜ", "କାଗଜପତ୍ର", "ପ୍ରମାଣପତ୍ର"},
	}
)

// detectIntent classifies the latest turn. An explicit apply mention wins
// over a documents mention, since application requests routinely name the
// paperwork as well.
func detectIntent(text, language string) Intent {
	lower := strings.ToLower(text)
	if containsAny(lower, applyKeywords, language) {
		return IntentApply
	}
	if containsAny(lower, documentKeywords, language) {
		return IntentDocuments
	}
	return IntentDiscover
}

// containsAny scans the active language's keyword row plus the English row.
// Matching is substring based: native-script words carry combining marks
// that defeat word tokenization, and English stems should cover their
// inflections.
func containsAny(lower string, table map[string][]string, language string) bool {
	rows := []string{language}
	if language != locale.English {
		rows = append(rows, locale.English)
	}
	for _, row := range rows {
		for _, keyword := range table[row] {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// buildPlan commits the deterministic action list for one turn.
//
// Profile extraction always runs first so fresh facts and self-corrections
// land before anything reads the profile. A documents question is answered
// by a catalog lookup regardless of profile completeness. Otherwise the
// required slots gate everything: while one is missing the extraction is the
// whole plan and evaluation asks for the rest; once the profile is complete
// the eligibility check runs, then the lookup that localizes its matches,
// and last of all the application submission, which requires both an
// explicit apply intent and a previously confirmed scheme.
func buildPlan(profile memory.UserProfile, text, language, userID, confirmedScheme string) Plan {
	plan := Plan{
		Intent:   detectIntent(text, language),
		Language: language,
		Actions: []Action{{
			Tool: tools.ToolUserProfileBuilder,
			Args: map[string]interface{}{
				"user_message":    text,
				"current_profile": profile.Fields(),
				"language":        language,
			},
			Description: "extract profile facts from the latest message",
		}},
	}

	if plan.Intent == IntentDocuments {
		plan.Actions = append(plan.Actions, lookupAction(language))
		return plan
	}
	if len(profile.MissingRequired()) > 0 {
		return plan
	}

	plan.Actions = append(plan.Actions,
		Action{
			Tool:        tools.ToolEligibilityChecker,
			Description: "evaluate the profile against the scheme rules",
		},
		lookupAction(language),
	)
	if plan.Intent == IntentApply && confirmedScheme != "" {
		plan.Actions = append(plan.Actions, Action{
			Tool: tools.ToolApplicationTracker,
			Args: map[string]interface{}{
				"action":      "create",
				"user_id":     userID,
				"scheme_name": confirmedScheme,
			},
			Description: "submit the confirmed application",
		})
	}
	return plan
}

func lookupAction(language string) Action {
	return Action{
		Tool:        tools.ToolSchemeDatabase,
		Args:        map[string]interface{}{"language": language},
		Description: "fetch the localized scheme catalog",
	}
}
