// internal/agent/agent.go

// Package agent drives the conversation cycle: record the turn, commit a
// deterministic plan, execute it tool by tool, and compose the localized
// reply. One Agent serves one session and exclusively owns that session's
// memory and state; its methods are not safe for concurrent use because a
// session is a single thread of suspension points.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/janmitra/mitra-cli/internal/config"
	"github.com/janmitra/mitra-cli/internal/llm"
	"github.com/janmitra/mitra-cli/internal/locale"
	"github.com/janmitra/mitra-cli/internal/memory"
	"github.com/janmitra/mitra-cli/internal/tools"
	"github.com/janmitra/mitra-cli/internal/voice"
)

// Agent owns one conversation: the bounded memory, the state machine
// position, and the pending application confirmation. Tools and the LLM
// provider are injected and may be shared across sessions; memory is built
// here so it cannot be.
type Agent struct {
	logger    *zap.Logger
	memory    *memory.ConversationMemory
	registry  *tools.Registry
	provider  llm.Provider
	sessionID string

	state           AgentState
	confirmedScheme string
}

// New assembles a session agent in the IDLE state.
func New(cfg config.AgentConfig, registry *tools.Registry, provider llm.Provider, logger *zap.Logger) *Agent {
	return &Agent{
		logger:    logger.Named("agent"),
		memory:    memory.NewConversationMemory(cfg, logger),
		registry:  registry,
		provider:  provider,
		sessionID: uuid.NewString(),
		state:     StateIdle,
	}
}

// State returns the agent's position in the conversation cycle.
func (a *Agent) State() AgentState {
	return a.state
}

// SessionID returns the identifier applications are filed under.
func (a *Agent) SessionID() string {
	return a.sessionID
}

// Memory exposes the session memory for status displays and session flows.
func (a *Agent) Memory() *memory.ConversationMemory {
	return a.memory
}

// ConfirmApplication records that the user agreed to apply for the named
// scheme. One confirmation authorizes exactly one submission: the next plan
// that carries an apply intent consumes it.
func (a *Agent) ConfirmApplication(schemeName string) {
	a.confirmedScheme = strings.TrimSpace(schemeName)
	if a.confirmedScheme != "" {
		a.logger.Info("application confirmed", zap.String("scheme", a.confirmedScheme))
	}
}

// StateInfo snapshots the agent for status displays.
func (a *Agent) StateInfo() map[string]interface{} {
	stats := a.memory.Statistics()
	return map[string]interface{}{
		"session_id":     a.sessionID,
		"state":          string(a.state),
		"total_turns":    stats.TotalTurns,
		"held_turns":     stats.HeldTurns,
		"profile_fields": stats.ProfileFields,
		"contradictions": stats.Contradictions,
	}
}

// transition moves the cycle one edge forward, logging the hop. An invalid
// request abandons the in-flight cycle: the agent resets to IDLE, the
// committed plan is dropped, and the caller receives a StateError.
func (a *Agent) transition(next AgentState) error {
	if !a.state.CanTransition(next) {
		serr := &StateError{From: a.state, To: next}
		a.logger.Error("rejected state transition",
			zap.String("from", string(a.state)),
			zap.String("to", string(next)),
			zap.String("error_code", string(ErrCodeInvalidTransition)))
		a.reset("invalid transition")
		return serr
	}
	a.logger.Debug("state transition",
		zap.String("from", string(a.state)),
		zap.String("to", string(next)))
	a.state = next
	return nil
}

// reset abandons whatever cycle is in flight and returns to IDLE.
func (a *Agent) reset(reason string) {
	if a.state == StateIdle {
		return
	}
	a.logger.Debug("conversation cycle abandoned",
		zap.String("at", string(a.state)),
		zap.String("reason", reason))
	a.state = StateIdle
}

// ListenAndProcess captures one utterance and records it as the user turn,
// moving IDLE through LISTENING to PROCESSING. The returned language is the
// detected one when the caller asked for auto detection, otherwise the
// requested one. An empty capture abandons the cycle and returns empty text
// so the caller can re-prompt.
func (a *Agent) ListenAndProcess(ctx context.Context, v voice.Interface, language string) (string, string, error) {
	if err := a.transition(StateListening); err != nil {
		return "", "", err
	}
	text, detected, err := v.Listen(ctx, language)
	if err != nil {
		a.reset("listen failed")
		return "", "", err
	}
	if err := a.transition(StateProcessing); err != nil {
		return "", "", err
	}

	turnLanguage := language
	if detected != "" {
		turnLanguage = detected
	} else if language == voice.LanguageAuto {
		turnLanguage = locale.English
	}
	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Debug("empty capture",
			zap.String("error_code", string(ErrCodeEmptyInput)))
		a.reset("empty capture")
		return "", turnLanguage, nil
	}
	a.memory.AddTurn(memory.RoleUser, text, turnLanguage)
	return text, turnLanguage, nil
}

// Run drives one full conversation cycle for the given user text and returns
// the reply to speak. Callers that already captured voice through
// ListenAndProcess enter with the turn recorded; everyone else enters from
// IDLE. Unrecoverable failures are caught here, logged, and surfaced as a
// localized apology so the session stays usable; only state misuse and
// context cancellation propagate as errors.
func (a *Agent) Run(ctx context.Context, text, language string) (response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("conversation cycle panicked",
				zap.Any("panic", r),
				zap.String("state", string(a.state)),
				zap.String("error_code", string(ErrCodeInternal)),
				zap.Stack("stack"))
			a.reset("panic")
			response = locale.Message(locale.MsgProcessingError, language)
			err = nil
		}
	}()

	text = strings.TrimSpace(text)
	switch a.state {
	case StateProcessing:
		// Voice path: ListenAndProcess already recorded the turn.
	case StateIdle, StateListening:
		if text == "" {
			a.logger.Debug("ignoring empty turn",
				zap.String("error_code", string(ErrCodeEmptyInput)))
			a.reset("empty turn")
			return locale.Message(locale.MsgNotUnderstood, language), nil
		}
		if err := a.transition(StateProcessing); err != nil {
			return "", err
		}
		a.memory.AddTurn(memory.RoleUser, text, language)
	default:
		return "", a.transition(StateProcessing)
	}

	plan, err := a.Plan(text, language)
	if err != nil {
		return "", err
	}
	observations, err := a.Execute(ctx, plan)
	if err != nil {
		return "", err
	}
	return a.Evaluate(ctx, plan, observations)
}

// Plan commits the deterministic action list for the turn, moving
// PROCESSING to PLANNING. A pending application confirmation is consumed
// here when the plan actually carries the submission.
func (a *Agent) Plan(text, language string) (Plan, error) {
	if err := a.transition(StatePlanning); err != nil {
		return Plan{}, err
	}
	plan := buildPlan(a.memory.Profile(), text, language, a.sessionID, a.confirmedScheme)
	if a.confirmedScheme != "" && plan.HasAction(tools.ToolApplicationTracker) {
		a.confirmedScheme = ""
	}
	a.logger.Info("plan committed",
		zap.String("intent", string(plan.Intent)),
		zap.String("language", plan.Language),
		zap.Strings("tools", plan.ToolNames()))
	return plan, nil
}

// Execute runs the plan's actions strictly in order, moving PLANNING to
// EXECUTING. Every action yields an Observation; a failed call records its
// error there and execution continues, so one bad tool cannot abort the
// turn. Extracted profile facts land in memory between actions, which is why
// the eligibility checker receives the live profile rather than a snapshot
// taken at planning time. Only context cancellation stops execution early.
func (a *Agent) Execute(ctx context.Context, plan Plan) ([]Observation, error) {
	if err := a.transition(StateExecuting); err != nil {
		return nil, err
	}

	observations := make([]Observation, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			a.logger.Warn("execution cancelled",
				zap.String("tool", action.Tool),
				zap.String("error_code", string(ErrCodeCancelled)))
			a.reset("cancelled")
			return observations, err
		}

		result, err := a.registry.Execute(ctx, action.Tool, a.resolveArgs(action))
		obs := Observation{Tool: action.Tool, Result: result, Err: err}
		if err != nil {
			a.logger.Warn("action failed",
				zap.String("tool", action.Tool),
				zap.String("error_code", string(classify(err))),
				zap.Error(err))
			observations = append(observations, obs)
			continue
		}
		if action.Tool == tools.ToolUserProfileBuilder {
			obs.Contradictions = a.applyExtraction(result, plan.Language)
		}
		observations = append(observations, obs)
	}
	return observations, nil
}

// resolveArgs produces the final tool input. The eligibility checker reads
// the profile at execution time so facts extracted earlier in the same plan
// count toward its verdict.
func (a *Agent) resolveArgs(action Action) map[string]interface{} {
	if action.Tool == tools.ToolEligibilityChecker {
		return map[string]interface{}{"user_profile": a.memory.Profile().Fields()}
	}
	return action.Args
}

// applyExtraction lands extracted facts in memory and returns the
// contradiction records the overwrites triggered.
func (a *Agent) applyExtraction(result map[string]interface{}, language string) []memory.ContradictionRecord {
	extracted, ok := result["extracted_info"].(map[string]interface{})
	if !ok || len(extracted) == 0 {
		return nil
	}
	return a.memory.UpdateProfile(extracted, language)
}

// Evaluate composes the localized reply from the observations, records it as
// the assistant turn, and closes the cycle back to IDLE.
func (a *Agent) Evaluate(ctx context.Context, plan Plan, observations []Observation) (string, error) {
	if err := a.transition(StateEvaluating); err != nil {
		return "", err
	}
	response := a.compose(ctx, plan, observations)
	a.memory.AddTurn(memory.RoleAssistant, response, plan.Language)
	if err := a.transition(StateIdle); err != nil {
		return "", err
	}
	return response, nil
}

// compose renders the reply for the cycle. Contradiction notices always come
// first, then the branch the results select. Application confirmations and
// slot prompts stay templated so ids and questions reach the user verbatim;
// eligibility answers may be restated by the LLM provider with the template
// as fallback.
func (a *Agent) compose(ctx context.Context, plan Plan, observations []Observation) string {
	language := plan.Language
	parts := noticeLines(observations)

	failed := false
	byTool := make(map[string]Observation, len(observations))
	for _, obs := range observations {
		byTool[obs.Tool] = obs
		if obs.Failed() {
			failed = true
		}
	}

	switch {
	case failed:
		parts = append(parts, locale.Message(locale.MsgProcessingError, language))
	case hasObservation(byTool, tools.ToolApplicationTracker):
		parts = append(parts, applicationReply(byTool[tools.ToolApplicationTracker], language))
	case hasObservation(byTool, tools.ToolEligibilityChecker):
		parts = append(parts, a.eligibilityReply(ctx, byTool, language))
	case plan.Intent == IntentDocuments && hasObservation(byTool, tools.ToolSchemeDatabase):
		parts = append(parts, a.guidanceReply(byTool[tools.ToolSchemeDatabase], language))
	default:
		parts = append(parts, a.slotReply(language))
	}
	return strings.Join(parts, "\n")
}

// noticeLines renders the contradiction notices the turn triggered.
func noticeLines(observations []Observation) []string {
	var lines []string
	for _, obs := range observations {
		for _, rec := range obs.Contradictions {
			lines = append(lines, rec.Notice())
		}
	}
	return lines
}

func hasObservation(byTool map[string]Observation, tool string) bool {
	_, ok := byTool[tool]
	return ok
}

// applicationReply confirms the submission, quoting the allocated id.
func applicationReply(obs Observation, language string) string {
	scheme, _ := obs.Result["scheme_name"].(string)
	id, _ := obs.Result["application_id"].(string)
	return locale.Messagef(locale.MsgApplicationSubmitted, language, scheme, id)
}

// eligibilityReply names every matching scheme under its localized name, or
// falls back to listing what is available when nothing matched.
func (a *Agent) eligibilityReply(ctx context.Context, byTool map[string]Observation, language string) string {
	eligible := stringSlice(byTool[tools.ToolEligibilityChecker].Result["eligible_schemes"])
	schemes := schemeSlice(byTool[tools.ToolSchemeDatabase].Result["schemes"])

	if len(eligible) == 0 {
		lines := []string{locale.Message(locale.MsgNoMoreEligible, language)}
		for _, s := range schemes {
			lines = append(lines, "- "+s.Name)
		}
		lines = append(lines, locale.Message(locale.MsgAskPickAvailable, language))
		return strings.Join(lines, "\n")
	}

	template := locale.Messagef(locale.MsgEligibleSchemes, language,
		bulletList(localizedNames(eligible, schemes))) +
		"\n" + locale.Message(locale.MsgAskMoreInfo, language)
	return a.enrich(ctx, template, language)
}

// guidanceReply answers a documents question for the scheme the user named,
// or lists the catalog when no name could be matched.
func (a *Agent) guidanceReply(obs Observation, language string) string {
	schemes := schemeSlice(obs.Result["schemes"])
	if s, ok := tools.MatchScheme(a.latestUserText(), schemes); ok {
		return locale.Messagef(locale.MsgSchemeGuidance, language, s.Name, s.Guidance(language))
	}
	lines := make([]string, 0, len(schemes)+1)
	for _, s := range schemes {
		lines = append(lines, "- "+s.Name)
	}
	lines = append(lines, locale.Message(locale.MsgAskPickAvailable, language))
	return strings.Join(lines, "\n")
}

// slotReply asks for the first missing required fact, or for the actual need
// once the profile turned out complete.
func (a *Agent) slotReply(language string) string {
	missing := a.memory.Profile().MissingRequired()
	if len(missing) == 0 {
		return locale.Message(locale.MsgAskNeed, language)
	}
	switch missing[0] {
	case "age":
		return locale.Message(locale.MsgAskAge, language)
	case "annual_income":
		return locale.Message(locale.MsgAskIncome, language)
	default:
		return locale.Message(locale.MsgAskCategory, language)
	}
}

// enrich lets the provider restate composed facts naturally. Empty output or
// an error keeps the template; there is no retry.
func (a *Agent) enrich(ctx context.Context, facts, language string) string {
	prompt := fmt.Sprintf(
		"Restate the following for the citizen in clear spoken %s, keeping every scheme name and every question intact:\n%s",
		locale.LanguageName(language), facts)
	text, err := a.provider.Call(ctx, prompt, language)
	if err != nil {
		a.logger.Debug("response enrichment unavailable", zap.Error(err))
		return facts
	}
	if strings.TrimSpace(text) == "" {
		return facts
	}
	return strings.TrimSpace(text)
}

// latestUserText returns the content of the most recent user turn.
func (a *Agent) latestUserText() string {
	turns := a.memory.History()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == memory.RoleUser {
			return turns[i].Content
		}
	}
	return ""
}

// stringSlice tolerates both the native and the JSON-decoded shapes of a
// string list result field.
func stringSlice(v interface{}) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func schemeSlice(v interface{}) []tools.Scheme {
	schemes, _ := v.([]tools.Scheme)
	return schemes
}

// localizedNames maps the checker's English scheme names onto the display
// names from the catalog lookup, keeping the English name when the lookup
// did not run.
func localizedNames(english []string, schemes []tools.Scheme) []string {
	names := make([]string, 0, len(english))
	for _, en := range english {
		name := en
		for _, s := range schemes {
			if s.EnglishName == en && s.Name != "" {
				name = s.Name
				break
			}
		}
		names = append(names, name)
	}
	return names
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
