// internal/agent/models.go
package agent

import (
	"github.com/janmitra/mitra-cli/internal/memory"
)

// AgentState tracks where the agent sits in its conversation cycle. Using a
// custom type ensures that only the predefined phases can be assigned where
// an AgentState is expected.
type AgentState string

// -- Conversation cycle phases --
const (
	StateIdle       AgentState = "IDLE"       // Between turns, ready for input.
	StateListening  AgentState = "LISTENING"  // Capturing a voice utterance.
	StateProcessing AgentState = "PROCESSING" // Recording the turn before planning.
	StatePlanning   AgentState = "PLANNING"   // Choosing the ordered tool calls.
	StateExecuting  AgentState = "EXECUTING"  // Running the committed plan.
	StateEvaluating AgentState = "EVALUATING" // Composing the spoken response.
)

// validNext lists the forward edges of the cycle. LISTENING is skipped when
// the turn arrives as text, so IDLE has two successors; every other state has
// exactly one. There are no backward edges: a cycle either completes or is
// abandoned by a reset to IDLE.
var validNext = map[AgentState][]AgentState{
	StateIdle:       {StateListening, StateProcessing},
	StateListening:  {StateProcessing},
	StateProcessing: {StatePlanning},
	StatePlanning:   {StateExecuting},
	StateExecuting:  {StateEvaluating},
	StateEvaluating: {StateIdle},
}

// CanTransition reports whether moving from s to next follows the cycle.
func (s AgentState) CanTransition(next AgentState) bool {
	for _, allowed := range validNext[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Intent classifies what the latest user turn asks for. It decides which
// tools the planner lines up and which response template the evaluation
// phase reaches for.
type Intent string

// -- Turn intents --
const (
	IntentDiscover  Intent = "DISCOVER"  // Find schemes or general help.
	IntentDocuments Intent = "DOCUMENTS" // Asks for documents or process detail.
	IntentApply     Intent = "APPLY"     // Explicitly asks to apply for a scheme.
)

// Action is one planned tool invocation. Args is the input mapping handed to
// the tool; the eligibility checker is the exception and receives the live
// profile at execution time instead, so extraction earlier in the same plan
// is visible to it.
type Action struct {
	Tool        string                 `json:"tool"`
	Args        map[string]interface{} `json:"args,omitempty"`
	Description string                 `json:"description"`
}

// Observation is the recorded outcome of executing one Action. Exactly one
// of Result and Err is meaningful: a failed call carries its error here and
// never aborts the cycle. Contradictions lists the profile conflicts the
// action's extracted facts triggered, already resolved last-write-wins.
type Observation struct {
	Tool           string                       `json:"tool"`
	Result         map[string]interface{}       `json:"result,omitempty"`
	Err            error                        `json:"-"`
	Contradictions []memory.ContradictionRecord `json:"contradictions,omitempty"`
}

// Failed reports whether the action produced an error instead of a result.
func (o Observation) Failed() bool {
	return o.Err != nil
}

// Plan is the ordered action list committed for one turn, together with the
// intent and language that shaped it. Actions execute strictly in order.
type Plan struct {
	Intent   Intent   `json:"intent"`
	Language string   `json:"language"`
	Actions  []Action `json:"actions"`
}

// ToolNames lists the planned tools in execution order.
func (p Plan) ToolNames() []string {
	names := make([]string, 0, len(p.Actions))
	for _, action := range p.Actions {
		names = append(names, action.Tool)
	}
	return names
}

// HasAction reports whether the plan includes the named tool.
func (p Plan) HasAction(tool string) bool {
	for _, action := range p.Actions {
		if action.Tool == tool {
			return true
		}
	}
	return false
}
