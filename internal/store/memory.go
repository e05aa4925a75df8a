// internal/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/solatis/fieldgate/internal/types"
)

// MemoryStore is a mutex-guarded in-memory FormStateStore. Intended for
// tests and single-process embedding; state does not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[types.InstanceID]types.FormState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[types.InstanceID]types.FormState)}
}

// SaveState implements FormStateStore. The data bag is deep-copied through
// JSON so callers mutating their map afterwards cannot corrupt stored state.
func (s *MemoryStore) SaveState(_ context.Context, state types.FormState) error {
	state.Data = copyData(state.Data)
	s.mu.Lock()
	s.states[state.InstanceID] = state
	s.mu.Unlock()
	return nil
}

// LoadState implements FormStateStore.
func (s *MemoryStore) LoadState(_ context.Context, id types.InstanceID) (types.FormState, error) {
	s.mu.RLock()
	state, ok := s.states[id]
	s.mu.RUnlock()
	if !ok {
		return types.FormState{}, types.ErrStateNotFound
	}
	state.Data = copyData(state.Data)
	return state, nil
}

// RemoveState implements FormStateStore.
func (s *MemoryStore) RemoveState(_ context.Context, id types.InstanceID) error {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
	return nil
}

// StateExists implements FormStateStore.
func (s *MemoryStore) StateExists(_ context.Context, id types.InstanceID) (bool, error) {
	s.mu.RLock()
	_, ok := s.states[id]
	s.mu.RUnlock()
	return ok, nil
}

// ListStates implements FormStateStore.
func (s *MemoryStore) ListStates(_ context.Context, formID types.FormID) ([]types.FormState, error) {
	s.mu.RLock()
	var states []types.FormState
	for _, state := range s.states {
		if formID != "" && state.FormID != formID {
			continue
		}
		state.Data = copyData(state.Data)
		states = append(states, state)
	}
	s.mu.RUnlock()

	sort.Slice(states, func(i, j int) bool {
		return states[i].InstanceID < states[j].InstanceID
	})
	return states, nil
}

// copyData deep-copies a data bag via JSON. The bags are JSON-like by
// contract, so the round trip is lossless.
func copyData(data types.FormData) types.FormData {
	if data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		// Non-JSON-able values violate the FormData contract; keep the
		// original reference rather than dropping data.
		return data
	}
	var out types.FormData
	if err := json.Unmarshal(raw, &out); err != nil {
		return data
	}
	return out
}
