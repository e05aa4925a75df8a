// Package store provides persistence adapters for form state snapshots.
//
// The engine consumes storage through the FormStateStore interface only;
// backends are interchangeable. Absence is an error for LoadState (the
// caller asked for a specific instance) but a no-op for RemoveState,
// matching the total-operation style of the rest of the system.
//
// No retry or backoff policy lives here; hosts that need one wrap the
// interface.
package store

import (
	"context"

	"github.com/solatis/fieldgate/internal/types"
)

// FormStateStore persists in-progress form instances.
type FormStateStore interface {
	// SaveState inserts or overwrites the state for its instance id.
	SaveState(ctx context.Context, state types.FormState) error

	// LoadState returns the stored state or types.ErrStateNotFound.
	LoadState(ctx context.Context, id types.InstanceID) (types.FormState, error)

	// RemoveState deletes the state. No-op for unknown ids.
	RemoveState(ctx context.Context, id types.InstanceID) error

	// StateExists reports whether the instance id has stored state.
	StateExists(ctx context.Context, id types.InstanceID) (bool, error)

	// ListStates returns states for one form, or all states when formID is
	// empty, ordered by instance id.
	ListStates(ctx context.Context, formID types.FormID) ([]types.FormState, error)
}
