// internal/agent/errors.go
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/janmitra/mitra-cli/internal/tools"
)

// ErrorCode classifies cycle failures for structured logging. Using a custom
// type ensures that only predefined constants can be used where an ErrorCode
// is expected, preventing a class of bugs where arbitrary strings are passed
// around.
type ErrorCode string

const (
	// -- Input failures (recovered by re-prompting, never fatal) --
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// -- Tool failures (recorded on the Observation, cycle completes) --
	ErrCodeToolFailure ErrorCode = "TOOL_FAILURE"

	// -- State machine violations (defensive, fatal to the cycle) --
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// -- Everything else --
	ErrCodeCancelled ErrorCode = "CANCELLED"
	ErrCodeInternal  ErrorCode = "INTERNAL"
)

// ErrInvalidTransition is the sentinel under every StateError, so callers can
// branch with errors.Is without unpacking the states involved.
var ErrInvalidTransition = errors.New("invalid agent state transition")

// StateError reports an attempted transition outside the cycle's forward
// edges. It is defensive: a correctly driven agent never produces one. The
// in-flight cycle is abandoned when it fires; the agent resets to IDLE and
// the committed plan is dropped.
type StateError struct {
	From AgentState
	To   AgentState
}

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StateError) Unwrap() error {
	return ErrInvalidTransition
}

// classify maps an error onto the code used in structured log fields.
func classify(err error) ErrorCode {
	var toolErr *tools.ToolError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &toolErr):
		return ErrCodeToolFailure
	case errors.Is(err, ErrInvalidTransition):
		return ErrCodeInvalidTransition
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeCancelled
	default:
		return ErrCodeInternal
	}
}
