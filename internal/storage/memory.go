package storage

import "context"

// Memory is an in-memory KV used by tests and as a crash-only fallback.
type Memory struct {
	data map[string]string

	// FailWrites makes every mutation return ErrWriteFailed, for exercising
	// the fail-soft paths.
	FailWrites bool
}

var _ KV = (*Memory)(nil)

// errWrite is returned by a Memory with FailWrites set.
type errWrite struct{}

func (errWrite) Error() string { return "storage: simulated write failure" }

// ErrWriteFailed is the sentinel returned by a failing Memory store.
var ErrWriteFailed error = errWrite{}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) RemoveMany(_ context.Context, keys []string) error {
	if m.FailWrites {
		return ErrWriteFailed
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}
