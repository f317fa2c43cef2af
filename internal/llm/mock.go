package llm

import (
	"context"
	"sync"
)

// MockClient is a Client for tests that records prompts and returns canned
// responses without touching the network.
type MockClient struct {
	Response string
	Err      error

	// RespondFunc, when set, overrides Response/Err per call.
	RespondFunc func(system, user string) (string, error)

	mu    sync.Mutex
	calls []string
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) Chat(ctx context.Context, system, user string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	m.calls = append(m.calls, user)
	m.mu.Unlock()

	if m.RespondFunc != nil {
		return m.RespondFunc(system, user)
	}
	return m.Response, m.Err
}

// Calls returns the user prompts seen so far.
func (m *MockClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
