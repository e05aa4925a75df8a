// internal/types/conditions.go
package types

/*
 * Domain types for conditional field behavior.
 *
 * Provides Condition, Operator, and the behavior slot structures used by
 * internal/conditions for evaluation and dependency extraction. These types
 * are wire-format agnostic; JSON tags exist so form definitions can be loaded
 * from disk, but nothing here depends on a transport.
 *
 * Key types:
 *   - Condition: single node type covering both leaf comparisons and
 *     logical combinators (a node is a combinator iff it has children)
 *   - Operator: comparison operator enum
 *   - ConditionalBehavior: per-field visible/disabled/required/readonly slots
 *   - StepConditionalBehavior: per-step visible/skippable slots
 *
 * Dependencies: none (standard library only)
 */

// Operator identifies the comparison applied by a leaf condition.
type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "notEquals"
	OpGreaterThan        Operator = "greaterThan"
	OpLessThan           Operator = "lessThan"
	OpGreaterThanOrEqual Operator = "greaterThanOrEqual"
	OpLessThanOrEqual    Operator = "lessThanOrEqual"
	OpContains           Operator = "contains"
	OpNotContains        Operator = "notContains"
	OpIn                 Operator = "in"
	OpNotIn              Operator = "notIn"
	OpMatches            Operator = "matches"
	OpExists             Operator = "exists"
	OpNotExists          Operator = "notExists"
)

// Operators lists every known operator. Used by configuration-time
// validation; the evaluator treats anything not listed here as false.
var Operators = []Operator{
	OpEquals, OpNotEquals,
	OpGreaterThan, OpLessThan, OpGreaterThanOrEqual, OpLessThanOrEqual,
	OpContains, OpNotContains,
	OpIn, OpNotIn,
	OpMatches,
	OpExists, OpNotExists,
}

// LogicalOperator combines child conditions in a combinator node.
type LogicalOperator string

const (
	LogicalAnd LogicalOperator = "and"
	LogicalOr  LogicalOperator = "or"
)

// Condition is a boolean-valued expression over a data context. One struct
// covers both shapes: a leaf comparison (Field/Operator/Value set, Conditions
// empty) and a logical combinator (Conditions non-empty, own Field ignored).
//
// Conditions are immutable snapshots owned by the field/step configuration;
// the engine never mutates a Condition it is handed.
type Condition struct {
	// Field is a non-empty dot-separated path for leaves
	// (e.g. "user.profile.age"). Combinators leave it empty.
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`

	// Value is the comparison operand: a scalar (string/float64/bool/nil)
	// or []any for in/notIn. Unused by exists/notExists.
	Value any `json:"value,omitempty"`

	// Conditions makes this node a combinator when non-empty.
	Conditions      []Condition     `json:"conditions,omitempty"`
	LogicalOperator LogicalOperator `json:"logicalOperator,omitempty"`
}

// IsCombinator reports whether the node combines child conditions.
func (c Condition) IsCombinator() bool {
	return len(c.Conditions) > 0
}

// ConditionalBehavior holds up to four named condition slots controlling a
// field's runtime state. A nil slot means the corresponding state is static
// (visible=true, disabled/required/readonly=false).
type ConditionalBehavior struct {
	Visible  *Condition `json:"visible,omitempty"`
	Disabled *Condition `json:"disabled,omitempty"`
	Required *Condition `json:"required,omitempty"`
	Readonly *Condition `json:"readonly,omitempty"`
}

// Slots returns the behavior's named condition slots. Nil slots are included
// so callers can union dependencies over exactly the declared shape.
func (b *ConditionalBehavior) Slots() map[string]*Condition {
	if b == nil {
		return nil
	}
	return map[string]*Condition{
		"visible":  b.Visible,
		"disabled": b.Disabled,
		"required": b.Required,
		"readonly": b.Readonly,
	}
}

// StepConditionalBehavior holds the condition slots controlling a step's
// visibility and skippability in a multi-step form.
type StepConditionalBehavior struct {
	Visible   *Condition `json:"visible,omitempty"`
	Skippable *Condition `json:"skippable,omitempty"`
}

// Slots returns the step behavior's named condition slots.
func (b *StepConditionalBehavior) Slots() map[string]*Condition {
	if b == nil {
		return nil
	}
	return map[string]*Condition{
		"visible":   b.Visible,
		"skippable": b.Skippable,
	}
}
