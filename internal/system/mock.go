package system

import (
	"context"
	"strings"
	"sync"
)

// MockCall represents a recorded command invocation.
type MockCall struct {
	Name        string
	Args        []string
	Interactive bool
}

// Line returns the full command line for matching in assertions.
func (c MockCall) Line() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// MockResponse is a canned result for a matched command.
type MockResponse struct {
	Output []byte
	Err    error
}

// MockExecutor is a CommandExecutor test double. Responses are keyed by a
// substring of the full command line; the first configured key that matches
// wins. Unmatched commands succeed with empty output.
type MockExecutor struct {
	mu sync.Mutex

	// Keys holds response keys in match order.
	Keys []string

	// Responses maps keys to canned results.
	Responses map[string]MockResponse

	// CallLog records all invocations for verification.
	CallLog []MockCall
}

// NewMockExecutor creates an empty MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Responses: make(map[string]MockResponse),
	}
}

// Respond registers a canned response for command lines containing key.
func (m *MockExecutor) Respond(key string, output string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Responses[key]; !ok {
		m.Keys = append(m.Keys, key)
	}
	m.Responses[key] = MockResponse{Output: []byte(output), Err: err}
}

// Calls returns a copy of the recorded call log.
func (m *MockExecutor) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.CallLog))
	copy(calls, m.CallLog)
	return calls
}

// CallsMatching returns recorded calls whose command line contains key.
func (m *MockExecutor) CallsMatching(key string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var calls []MockCall
	for _, c := range m.CallLog {
		if strings.Contains(c.Line(), key) {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset clears all recorded calls and responses.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Keys = nil
	m.Responses = make(map[string]MockResponse)
	m.CallLog = nil
}

func (m *MockExecutor) match(call MockCall) MockResponse {
	line := call.Line()
	for _, key := range m.Keys {
		if strings.Contains(line, key) {
			return m.Responses[key]
		}
	}
	return MockResponse{}
}

// Execute records the call and returns the matching canned response.
func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	call := MockCall{Name: name, Args: args}
	m.CallLog = append(m.CallLog, call)
	resp := m.match(call)
	m.mu.Unlock()
	return resp.Output, resp.Err
}

// ExecuteInteractive records the call and returns the matching canned error.
func (m *MockExecutor) ExecuteInteractive(ctx context.Context, name string, args ...string) error {
	m.mu.Lock()
	call := MockCall{Name: name, Args: args, Interactive: true}
	m.CallLog = append(m.CallLog, call)
	resp := m.match(call)
	m.mu.Unlock()
	return resp.Err
}

// Ensure MockExecutor implements CommandExecutor.
var _ CommandExecutor = (*MockExecutor)(nil)
