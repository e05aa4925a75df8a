// internal/store/sql.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/solatis/fieldgate/internal/core/db"
	"github.com/solatis/fieldgate/internal/types"
)

/*
 * SQL-backed form state store.
 *
 * Works against sqlite3 and postgres through the shared db.Queries layer
 * (dotsql named queries + sqlx placeholder rebinding). The data bag is
 * stored as a JSON TEXT column and timestamps as RFC3339 TEXT, so rows scan
 * identically on both drivers.
 *
 * Run db.MigrateUp before first use; the form_states table comes from the
 * embedded migrations.
 */

// timeFormat is RFC3339 truncated to seconds, matching the CHECK constraint
// in the sqlite migration.
const timeFormat = "2006-01-02T15:04:05Z"

// SQLStore is a FormStateStore backed by sqlite or postgres.
type SQLStore struct {
	queries *db.Queries
}

// NewSQLStore wraps an opened connection's query layer.
func NewSQLStore(queries *db.Queries) *SQLStore {
	return &SQLStore{queries: queries}
}

// stateRow mirrors the form_states table.
type stateRow struct {
	InstanceID  string `db:"instance_id"`
	FormID      string `db:"form_id"`
	CurrentStep string `db:"current_step"`
	Data        string `db:"data"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

// SaveState implements FormStateStore as an upsert. Zero timestamps are
// filled in: CreatedAt on first save, UpdatedAt always.
func (s *SQLStore) SaveState(ctx context.Context, state types.FormState) error {
	raw, err := json.Marshal(state.Data)
	if err != nil {
		return fmt.Errorf("failed to encode form data: %w", err)
	}

	now := time.Now().UTC()
	createdAt := state.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = s.queries.Exec(ctx, "save-form-state",
		string(state.InstanceID),
		string(state.FormID),
		state.CurrentStep,
		string(raw),
		createdAt.UTC().Truncate(time.Second).Format(timeFormat),
		now.Truncate(time.Second).Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to save form state: %w", err)
	}
	return nil
}

// LoadState implements FormStateStore.
func (s *SQLStore) LoadState(ctx context.Context, id types.InstanceID) (types.FormState, error) {
	var row stateRow
	err := s.queries.Get(ctx, "load-form-state", &row, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return types.FormState{}, types.ErrStateNotFound
	}
	if err != nil {
		return types.FormState{}, fmt.Errorf("failed to load form state: %w", err)
	}
	return row.toState()
}

// RemoveState implements FormStateStore. Deleting an unknown id is a no-op.
func (s *SQLStore) RemoveState(ctx context.Context, id types.InstanceID) error {
	if _, err := s.queries.Exec(ctx, "remove-form-state", string(id)); err != nil {
		return fmt.Errorf("failed to remove form state: %w", err)
	}
	return nil
}

// StateExists implements FormStateStore.
func (s *SQLStore) StateExists(ctx context.Context, id types.InstanceID) (bool, error) {
	var count int
	if err := s.queries.Get(ctx, "form-state-exists", &count, string(id)); err != nil {
		return false, fmt.Errorf("failed to check form state: %w", err)
	}
	return count > 0, nil
}

// ListStates implements FormStateStore.
func (s *SQLStore) ListStates(ctx context.Context, formID types.FormID) ([]types.FormState, error) {
	var rows []stateRow
	var err error
	if formID == "" {
		err = s.queries.Select(ctx, "list-all-form-states", &rows)
	} else {
		err = s.queries.Select(ctx, "list-form-states", &rows, string(formID))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list form states: %w", err)
	}

	states := make([]types.FormState, 0, len(rows))
	for _, row := range rows {
		state, err := row.toState()
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

// toState decodes a row back into the domain type.
func (r stateRow) toState() (types.FormState, error) {
	var data types.FormData
	if err := json.Unmarshal([]byte(r.Data), &data); err != nil {
		return types.FormState{}, fmt.Errorf("failed to decode form data for %s: %w", r.InstanceID, err)
	}

	createdAt, err := time.Parse(timeFormat, r.CreatedAt)
	if err != nil {
		return types.FormState{}, fmt.Errorf("invalid created_at for %s: %w", r.InstanceID, err)
	}
	updatedAt, err := time.Parse(timeFormat, r.UpdatedAt)
	if err != nil {
		return types.FormState{}, fmt.Errorf("invalid updated_at for %s: %w", r.InstanceID, err)
	}

	return types.FormState{
		InstanceID:  types.InstanceID(r.InstanceID),
		FormID:      types.FormID(r.FormID),
		CurrentStep: r.CurrentStep,
		Data:        data,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
