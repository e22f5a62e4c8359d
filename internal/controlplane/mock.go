package controlplane

import (
	"context"
	"strings"
	"sync"
)

// MockClient is a mock implementation of Client for testing.
type MockClient struct {
	mu sync.RWMutex

	// Sandboxes is returned by List.
	Sandboxes []Sandbox

	// States maps sandbox names to the sequence of states State returns;
	// the last entry repeats once the sequence is exhausted.
	States map[string][]State

	// ExecOutputs maps script substrings to canned Exec output.
	ExecOutputs map[string]string

	// Errors allows injecting errors for specific operations
	// ("create", "list", "state", "exec", "session", "delete").
	Errors map[string]error

	// CallLog records all method calls for verification.
	CallLog []MockClientCall

	stateIdx map[string]int
}

// MockClientCall represents a recorded method call.
type MockClientCall struct {
	Method string
	Args   []interface{}
}

// NewMockClient creates a new mock control-plane client.
func NewMockClient() *MockClient {
	return &MockClient{
		States:      make(map[string][]State),
		ExecOutputs: make(map[string]string),
		Errors:      make(map[string]error),
		CallLog:     make([]MockClientCall, 0),
		stateIdx:    make(map[string]int),
	}
}

func (m *MockClient) record(method string, args ...interface{}) {
	m.CallLog = append(m.CallLog, MockClientCall{Method: method, Args: args})
}

// SetError sets an error to be returned for a specific operation.
func (m *MockClient) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[operation] = err
}

// AddSandbox adds a sandbox to the mock's list output.
func (m *MockClient) AddSandbox(name, repo string, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sandboxes = append(m.Sandboxes, Sandbox{
		Name:  name,
		Repo:  repo,
		State: state,
		Raw:   name + "\t" + repo + "\t" + string(state),
	})
}

// SetStates sets the sequence of states State reports for a sandbox.
func (m *MockClient) SetStates(name string, states ...State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.States[name] = states
}

// SetExecOutput sets canned output for Exec calls whose script contains key.
func (m *MockClient) SetExecOutput(key, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExecOutputs[key] = output
}

// GetCalls returns all recorded calls.
func (m *MockClient) GetCalls() []MockClientCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	calls := make([]MockClientCall, len(m.CallLog))
	copy(calls, m.CallLog)
	return calls
}

// GetCallsFor returns all calls for a specific method.
func (m *MockClient) GetCallsFor(method string) []MockClientCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var calls []MockClientCall
	for _, call := range m.CallLog {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Reset clears all state.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sandboxes = nil
	m.States = make(map[string][]State)
	m.ExecOutputs = make(map[string]string)
	m.Errors = make(map[string]error)
	m.CallLog = make([]MockClientCall, 0)
	m.stateIdx = make(map[string]int)
}

// Create records the call and returns any injected error.
func (m *MockClient) Create(ctx context.Context, opts CreateOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Create", opts)
	return m.Errors["create"]
}

// List returns the configured sandboxes.
func (m *MockClient) List(ctx context.Context) ([]Sandbox, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")
	if err := m.Errors["list"]; err != nil {
		return nil, err
	}
	out := make([]Sandbox, len(m.Sandboxes))
	copy(out, m.Sandboxes)
	return out, nil
}

// State returns the next configured state for the sandbox.
func (m *MockClient) State(ctx context.Context, name string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("State", name)
	if err := m.Errors["state"]; err != nil {
		return StateUnknown, err
	}
	states := m.States[name]
	if len(states) == 0 {
		return StateUnknown, nil
	}
	idx := m.stateIdx[name]
	if idx >= len(states) {
		idx = len(states) - 1
	}
	m.stateIdx[name]++
	return states[idx], nil
}

// Exec records the call and returns matching canned output.
func (m *MockClient) Exec(ctx context.Context, name string, script string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Exec", name, script)
	if err := m.Errors["exec"]; err != nil {
		return nil, err
	}
	for key, out := range m.ExecOutputs {
		if key != "" && strings.Contains(script, key) {
			return []byte(out), nil
		}
	}
	return nil, nil
}

// Session records the call and returns any injected error.
func (m *MockClient) Session(ctx context.Context, name string, env []string, script string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Session", name, env, script)
	return m.Errors["session"]
}

// Delete records the call and returns any injected error.
func (m *MockClient) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Delete", name)
	return m.Errors["delete"]
}

// Ensure MockClient implements Client.
var _ Client = (*MockClient)(nil)
