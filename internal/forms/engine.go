// Package forms wires the condition engine into form lifecycles: it
// registers form configurations, maintains one dependency graph per form,
// and turns data-path changes into fresh field/step states.
//
// The update discipline is the synchronous UI loop the dependency graph
// assumes: the host reports which data paths changed, the engine looks up
// affected fields in O(1) per path, and only those fields are re-evaluated
// against the current data snapshot.
package forms

import (
	"fmt"
	"sync"
	"time"

	"github.com/solatis/fieldgate/internal/conditions"
	"github.com/solatis/fieldgate/internal/monitor"
	"github.com/solatis/fieldgate/internal/types"
)

// registeredForm holds everything the engine derives from one FormConfig.
type registeredForm struct {
	config types.FormConfig
	graph  *conditions.DependencyGraph

	// behavior lookup by id, split by kind since steps and fields share the
	// graph's id namespace
	fields map[string]*types.ConditionalBehavior
	steps  map[string]*types.StepConditionalBehavior

	fieldOrder []string
	stepOrder  []string
}

// Update is the engine's answer to one change cycle: fresh states for every
// affected field and step, in declaration order.
type Update struct {
	Fields []types.FieldState
	Steps  []types.StepState
}

// Engine registers forms and resolves conditional behavior incrementally.
// Registration and lookup are safe for concurrent use; within one form the
// host must serialize update cycles itself (single-writer discipline).
type Engine struct {
	mu       sync.RWMutex
	forms    map[types.FormID]*registeredForm
	sink     monitor.Sink
	maxBatch int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMaxChangedPaths lowers the per-cycle changed-path cap below the hard
// limit, e.g. from host configuration. Values outside
// (0, types.MaxChangedPathsPerCycle] keep the default.
func WithMaxChangedPaths(n int) Option {
	return func(e *Engine) {
		if n > 0 && n <= types.MaxChangedPathsPerCycle {
			e.maxBatch = n
		}
	}
}

// NewEngine creates an engine emitting monitoring events to sink.
// A nil sink discards events.
func NewEngine(sink monitor.Sink, opts ...Option) *Engine {
	if sink == nil {
		sink = monitor.NopSink{}
	}
	e := &Engine{
		forms:    make(map[types.FormID]*registeredForm),
		sink:     sink,
		maxBatch: types.MaxChangedPathsPerCycle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register validates cfg and builds its dependency graph, replacing any
// prior registration under the same form id.
//
// Validation is strict where the evaluator is permissive: unknown operators,
// empty leaf paths and malformed in/matches operands are configuration bugs
// and rejected here, before they can silently hide a field at runtime.
func (e *Engine) Register(cfg types.FormConfig) error {
	form := &registeredForm{
		config: cfg,
		graph:  conditions.NewDependencyGraph(),
		fields: make(map[string]*types.ConditionalBehavior),
		steps:  make(map[string]*types.StepConditionalBehavior),
	}

	for _, step := range cfg.Steps {
		if _, ok := form.steps[step.ID]; ok {
			return fmt.Errorf("step %q: %w", step.ID, types.ErrDuplicateStep)
		}
		if _, ok := form.fields[step.ID]; ok {
			return fmt.Errorf("step %q: %w", step.ID, types.ErrDuplicateField)
		}
		if err := conditions.ValidateStepBehavior(step.Behavior); err != nil {
			return fmt.Errorf("step %q: %w", step.ID, err)
		}
		form.steps[step.ID] = step.Behavior
		form.stepOrder = append(form.stepOrder, step.ID)
		form.graph.AddStep(step.ID, step.Behavior)

		for _, field := range step.Fields {
			if _, ok := form.fields[field.ID]; ok {
				return fmt.Errorf("field %q: %w", field.ID, types.ErrDuplicateField)
			}
			if _, ok := form.steps[field.ID]; ok {
				return fmt.Errorf("field %q: %w", field.ID, types.ErrDuplicateStep)
			}
			if err := conditions.ValidateBehavior(field.Behavior); err != nil {
				return fmt.Errorf("field %q: %w", field.ID, err)
			}
			form.fields[field.ID] = field.Behavior
			form.fieldOrder = append(form.fieldOrder, field.ID)
			form.graph.AddField(field.ID, field.Behavior)
		}
	}

	e.mu.Lock()
	e.forms[cfg.ID] = form
	e.mu.Unlock()

	e.emit(monitor.Event{
		Name:      "form_registered",
		FormID:    cfg.ID,
		Timestamp: time.Now().UTC(),
		Attributes: map[string]any{
			"steps":  len(cfg.Steps),
			"fields": len(form.fieldOrder),
		},
	})
	return nil
}

// Deregister removes a form. No-op for unknown ids.
func (e *Engine) Deregister(formID types.FormID) {
	e.mu.Lock()
	_, existed := e.forms[formID]
	delete(e.forms, formID)
	e.mu.Unlock()

	if existed {
		e.emit(monitor.Event{
			Name:      "form_removed",
			FormID:    formID,
			Timestamp: time.Now().UTC(),
		})
	}
}

// Changed re-evaluates exactly the fields and steps whose conditions read
// one of the changed paths, against the given data snapshot.
func (e *Engine) Changed(formID types.FormID, changedPaths []string, data types.FormData) (*Update, error) {
	if len(changedPaths) > e.maxBatch {
		return nil, types.ErrTooManyChangedPaths
	}

	form, err := e.lookup(formID)
	if err != nil {
		return nil, err
	}

	affected := make(map[string]struct{})
	for _, id := range form.graph.AffectedFieldsMulti(changedPaths) {
		affected[id] = struct{}{}
	}

	update := form.resolve(data, func(id string) bool {
		_, ok := affected[id]
		return ok
	})

	e.emit(monitor.Event{
		Name:      "fields_reevaluated",
		FormID:    formID,
		Timestamp: time.Now().UTC(),
		Attributes: map[string]any{
			"changedPaths":   len(changedPaths),
			"affectedFields": len(update.Fields),
			"affectedSteps":  len(update.Steps),
		},
	})
	return update, nil
}

// EvaluateAll resolves every field and step of the form against data,
// e.g. for the initial render.
func (e *Engine) EvaluateAll(formID types.FormID, data types.FormData) (*Update, error) {
	form, err := e.lookup(formID)
	if err != nil {
		return nil, err
	}
	return form.resolve(data, func(string) bool { return true }), nil
}

// AffectedFields exposes the per-form reverse dependency lookup.
func (e *Engine) AffectedFields(formID types.FormID, path string) ([]string, error) {
	form, err := e.lookup(formID)
	if err != nil {
		return nil, err
	}
	return form.graph.AffectedFields(path), nil
}

// GraphSnapshot returns the form's dependency graph debug snapshot.
func (e *Engine) GraphSnapshot(formID types.FormID) (map[string]map[string][]string, error) {
	form, err := e.lookup(formID)
	if err != nil {
		return nil, err
	}
	return form.graph.DebugSnapshot(), nil
}

func (e *Engine) lookup(formID types.FormID) (*registeredForm, error) {
	e.mu.RLock()
	form, ok := e.forms[formID]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("form %q: %w", formID, types.ErrFormNotFound)
	}
	return form, nil
}

// emit sends best-effort; sink failures never affect evaluation results.
func (e *Engine) emit(event monitor.Event) {
	_ = e.sink.Send([]monitor.Event{event})
}

// resolve evaluates the form's fields and steps in declaration order,
// filtered by include.
func (f *registeredForm) resolve(data types.FormData, include func(string) bool) *Update {
	update := &Update{}
	for _, id := range f.fieldOrder {
		if !include(id) {
			continue
		}
		state := conditions.EvaluateBehavior(f.fields[id], data)
		state.FieldID = id
		update.Fields = append(update.Fields, state)
	}
	for _, id := range f.stepOrder {
		if !include(id) {
			continue
		}
		state := conditions.EvaluateStepBehavior(f.steps[id], data)
		state.StepID = id
		update.Steps = append(update.Steps, state)
	}
	return update
}
