// internal/llm/mock.go
package llm

import "context"

// MockCall records one Call invocation for assertions.
type MockCall struct {
	Prompt   string
	Language string
}

// MockProvider is a configurable Provider for tests and offline modes. Set
// Response and Err to control what Call returns. The zero value returns
// empty output, which callers treat as "use the templated text", keeping
// demo and evaluate runs deterministic.
type MockProvider struct {
	Response string
	Err      error

	// Call tracking for assertions.
	Calls []MockCall
}

var _ Provider = (*MockProvider)(nil)

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Call(_ context.Context, prompt, language string) (string, error) {
	m.Calls = append(m.Calls, MockCall{Prompt: prompt, Language: language})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Reset clears all recorded calls and restores the zero-value behavior.
func (m *MockProvider) Reset() {
	m.Response = ""
	m.Err = nil
	m.Calls = nil
}
