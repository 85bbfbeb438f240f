// internal/tools/tools.go
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Tool names as registered with the Registry. The planner emits Actions
// against these names, so they are part of the dispatch contract.
const (
	ToolSchemeDatabase     = "scheme_database"
	ToolEligibilityChecker = "eligibility_checker"
	ToolApplicationTracker = "application_tracker"
	ToolUserProfileBuilder = "user_profile_builder"
)

// Tool is a single capability the agent can plan against. Execute takes a
// flat input mapping and returns a result mapping. Failures are reported as
// *ToolError; a Tool never lets a raw transport or parsing error escape to
// the orchestrator.
type Tool interface {
	Name() string
	Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error)
}

// ErrorCode classifies tool failures for structured reporting. Using a custom
// type ensures that only predefined constants can be used where an ErrorCode
// is expected.
type ErrorCode string

const (
	// -- Dispatch errors --
	ErrCodeUnknownTool   ErrorCode = "UNKNOWN_TOOL"
	ErrCodeUnknownAction ErrorCode = "UNKNOWN_ACTION"

	// -- Input contract errors --
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD"

	// -- Backing data errors --
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeBackingData ErrorCode = "BACKING_DATA_FAILURE"
)

// ToolError is the typed failure every Tool returns. Consumers classify it
// with errors.As instead of matching message strings; Field carries the
// offending input field when the code concerns one.
type ToolError struct {
	Code    ErrorCode
	Tool    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %s: %s", e.Tool, e.Message)
}

// NewMissingFieldError reports a required input field that was absent. The
// field name travels on the error so callers can say exactly what was missing.
func NewMissingFieldError(tool, field string) *ToolError {
	return &ToolError{
		Code:    ErrCodeMissingField,
		Tool:    tool,
		Field:   field,
		Message: fmt.Sprintf("missing required field %q", field),
	}
}

// NewInvalidFieldError reports an input field that was present but unusable.
func NewInvalidFieldError(tool, field, message string) *ToolError {
	return &ToolError{
		Code:    ErrCodeInvalidField,
		Tool:    tool,
		Field:   field,
		Message: message,
	}
}

// stringField extracts a required, non-empty string field from the input map.
func stringField(tool string, input map[string]interface{}, key string) (string, *ToolError) {
	v, ok := input[key]
	if !ok || v == nil {
		return "", NewMissingFieldError(tool, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", NewInvalidFieldError(tool, key, fmt.Sprintf("field %q must be a string, got %T", key, v))
	}
	if strings.TrimSpace(s) == "" {
		return "", NewMissingFieldError(tool, key)
	}
	return s, nil
}

// -- Registry --

// Registry maps tool names to implementations and dispatches Execute calls.
// It is assembled once at session start; tools are read-mostly and shared, so
// the map is not guarded after construction.
type Registry struct {
	logger *zap.Logger
	tools  map[string]Tool
}

// NewRegistry creates a registry over the given tools, keyed by Tool.Name().
func NewRegistry(logger *zap.Logger, tools ...Tool) *Registry {
	r := &Registry{
		logger: logger.Named("tool_registry"),
		tools:  make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		r.register(t)
	}
	return r
}

// NewDefaultRegistry assembles the full welfare capability set over one
// shared catalog. The tracker is the only stateful member; the rest are pure
// and safe to share across sessions.
func NewDefaultRegistry(logger *zap.Logger) (*Registry, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return NewRegistry(logger,
		NewSchemeDatabase(catalog, logger),
		NewEligibilityChecker(catalog, logger),
		NewApplicationTracker(logger),
		NewUserProfileBuilder(logger),
	), nil
}

// register associates a tool with its name, replacing any previous entry.
func (r *Registry) register(t Tool) {
	r.tools[t.Name()] = t
}

// Register adds a tool for callers assembling a custom capability set.
func (r *Registry) Register(t Tool) {
	r.register(t)
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute dispatches to the named tool. Unknown names come back as a
// *ToolError listing the registered set, which surfaces planner typos in the
// observation instead of dropping the action silently.
func (r *Registry) Execute(ctx context.Context, name string, input map[string]interface{}) (map[string]interface{}, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &ToolError{
			Code:    ErrCodeUnknownTool,
			Tool:    name,
			Message: fmt.Sprintf("no tool registered under this name; registered tools: %s", strings.Join(r.Names(), ", ")),
		}
	}

	result, err := tool.Execute(ctx, input)
	if err != nil {
		r.logger.Warn("tool call failed",
			zap.String("tool", name),
			zap.Error(err))
		return nil, err
	}
	r.logger.Debug("tool call completed", zap.String("tool", name))
	return result, nil
}
