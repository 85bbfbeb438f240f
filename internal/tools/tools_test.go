package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// stubTool is a minimal Tool for exercising registry dispatch.
type stubTool struct {
	name   string
	result map[string]interface{}
	err    error
	calls  int
}

func (s *stubTool) Name() string { return s.name }

func (s *stubTool) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRegistry(t *testing.T, tools ...Tool) *Registry {
	t.Helper()
	return NewRegistry(zaptest.NewLogger(t), tools...)
}

func TestRegistry_Execute_DispatchesByName(t *testing.T) {
	stub := &stubTool{name: "echo", result: map[string]interface{}{"ok": true}}
	registry := newTestRegistry(t, stub)

	result, err := registry.Execute(context.Background(), "echo", nil)
	require.NoError(t, err)
	assert.Equal(t, true, result["ok"])
	assert.Equal(t, 1, stub.calls, "the registered tool should have been invoked once")
}

func TestRegistry_Execute_UnknownToolListsRegisteredNames(t *testing.T) {
	registry := newTestRegistry(t,
		&stubTool{name: "alpha"},
		&stubTool{name: "beta"},
	)

	_, err := registry.Execute(context.Background(), "gamma", nil)
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, ErrCodeUnknownTool, toolErr.Code)
	assert.Equal(t, "gamma", toolErr.Tool)
	assert.Contains(t, toolErr.Message, "alpha, beta", "the error should name what is registered")
}

func TestRegistry_Execute_PropagatesToolError(t *testing.T) {
	failing := &stubTool{name: "broken", err: NewMissingFieldError("broken", "language")}
	registry := newTestRegistry(t, failing)

	_, err := registry.Execute(context.Background(), "broken", nil)
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, ErrCodeMissingField, toolErr.Code)
	assert.Equal(t, "language", toolErr.Field)
}

func TestRegistry_Names_Sorted(t *testing.T) {
	registry := newTestRegistry(t,
		&stubTool{name: "zeta"},
		&stubTool{name: "alpha"},
		&stubTool{name: "mid"},
	)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, registry.Names())
}

func TestNewDefaultRegistry_CarriesFullCapabilitySet(t *testing.T) {
	registry, err := NewDefaultRegistry(zaptest.NewLogger(t))
	require.NoError(t, err)

	want := []string{
		ToolApplicationTracker,
		ToolEligibilityChecker,
		ToolSchemeDatabase,
		ToolUserProfileBuilder,
	}
	assert.Equal(t, want, registry.Names())

	for _, name := range want {
		tool, ok := registry.Get(name)
		require.True(t, ok, "tool %s should be registered", name)
		assert.Equal(t, name, tool.Name())
	}
}

// -- Test Cases: ToolError formatting --

func TestToolError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ToolError
		expected string
	}{
		{
			name:     "missing field",
			err:      NewMissingFieldError(ToolSchemeDatabase, "language"),
			expected: `tool scheme_database: missing required field "language"`,
		},
		{
			name:     "invalid field",
			err:      NewInvalidFieldError(ToolEligibilityChecker, "user_profile", "field \"user_profile\" must be a mapping, got string"),
			expected: `tool eligibility_checker: field "user_profile" must be a mapping, got string`,
		},
		{
			name: "plain message",
			err: &ToolError{
				Code:    ErrCodeBackingData,
				Tool:    ToolSchemeDatabase,
				Message: "catalog unavailable",
			},
			expected: "tool scheme_database: catalog unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestToolError_ErrorsAsFromWrappedChain(t *testing.T) {
	inner := NewMissingFieldError(ToolApplicationTracker, "scheme_name")
	wrapped := errors.Join(errors.New("observation failed"), inner)

	var toolErr *ToolError
	require.ErrorAs(t, wrapped, &toolErr)
	assert.Equal(t, "scheme_name", toolErr.Field)
}

func TestStringField(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]interface{}
		wantValue string
		wantCode  ErrorCode
	}{
		{
			name:      "present",
			input:     map[string]interface{}{"language": "te"},
			wantValue: "te",
		},
		{
			name:     "absent",
			input:    map[string]interface{}{},
			wantCode: ErrCodeMissingField,
		},
		{
			name:     "nil value",
			input:    map[string]interface{}{"language": nil},
			wantCode: ErrCodeMissingField,
		},
		{
			name:     "blank value",
			input:    map[string]interface{}{"language": "   "},
			wantCode: ErrCodeMissingField,
		},
		{
			name:     "wrong type",
			input:    map[string]interface{}{"language": 42},
			wantCode: ErrCodeInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, terr := stringField("test_tool", tt.input, "language")
			if tt.wantCode == "" {
				require.Nil(t, terr)
				assert.Equal(t, tt.wantValue, value)
				return
			}
			require.NotNil(t, terr)
			assert.Equal(t, tt.wantCode, terr.Code)
			assert.Equal(t, "language", terr.Field)
		})
	}
}
