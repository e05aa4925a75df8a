// internal/types/forms.go
package types

import "time"

/*
 * Form, step and field configuration.
 *
 * A FormConfig is the declarative description of a multi-step form: ordered
 * steps, each holding ordered fields, with optional conditional behavior
 * attached at both levels. Configurations are built once (by hand, by a
 * builder layer, or loaded from JSON) and treated as immutable afterwards.
 *
 * FormState is the runtime counterpart persisted by internal/store: which
 * form, which step, and the current data bag.
 *
 * Validation note: the Standard-Schema validation pipeline is an external
 * collaborator. FieldConfig carries only an opaque descriptor so hosts can
 * route values to their validator of choice.
 */

// ValidationRef is an opaque pointer to an externally-owned validation
// schema. The engine never interprets it.
type ValidationRef struct {
	Schema string `json:"schema,omitempty"`
}

// FieldConfig describes a single form field.
type FieldConfig struct {
	ID         string               `json:"id"`
	Type       string               `json:"type,omitempty"`
	Label      string               `json:"label,omitempty"`
	Behavior   *ConditionalBehavior `json:"behavior,omitempty"`
	Validation *ValidationRef       `json:"validation,omitempty"`
}

// StepConfig describes one step of a multi-step form.
type StepConfig struct {
	ID       string                   `json:"id"`
	Title    string                   `json:"title,omitempty"`
	Fields   []FieldConfig            `json:"fields"`
	Behavior *StepConditionalBehavior `json:"behavior,omitempty"`
}

// FormConfig is a complete form definition.
type FormConfig struct {
	ID      FormID       `json:"id"`
	Title   string       `json:"title,omitempty"`
	Version int          `json:"version,omitempty"`
	Steps   []StepConfig `json:"steps"`
}

// FieldState is the resolved runtime state of one field after evaluating its
// conditional behavior against the current data bag.
type FieldState struct {
	FieldID  string `json:"fieldId"`
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	Required bool   `json:"required"`
	Readonly bool   `json:"readonly"`
}

// StepState is the resolved runtime state of one step.
type StepState struct {
	StepID    string `json:"stepId"`
	Visible   bool   `json:"visible"`
	Skippable bool   `json:"skippable"`
}

// FormState is a persisted snapshot of an in-progress form instance.
type FormState struct {
	InstanceID  InstanceID `json:"instanceId" db:"instance_id"`
	FormID      FormID     `json:"formId" db:"form_id"`
	CurrentStep string     `json:"currentStep" db:"current_step"`
	Data        FormData   `json:"data"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
