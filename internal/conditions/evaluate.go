// internal/conditions/evaluate.go

// Package conditions implements the conditional-visibility engine: a small
// boolean expression language over nested form data, dependency extraction,
// and a bidirectional dependency graph for incremental re-evaluation.
package conditions

import (
	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Condition evaluation.
 *
 * Evaluates a types.Condition tree against a form data bag. Pure and total:
 * identical inputs yield identical results, nothing is mutated, and no input
 * makes it panic or error. Ambiguous or type-mismatched comparisons resolve
 * to false.
 *
 * Evaluation flow:
 *   1. Combinator node (has children): evaluate every child against the same
 *      data; "and" requires all true, anything else is "or" (any true). The
 *      node's own field/operator/value are ignored once it has children.
 *   2. Leaf node: resolve the dot-path, then apply the operator via compare().
 *
 * Short-circuit semantics: "and" stops at the first false child, "or" at the
 * first true child. Children are evaluated in declaration order.
 *
 * The evaluator is safe to call concurrently from multiple logical contexts
 * (e.g. several fields re-checked in the same tick) since it only reads its
 * inputs.
 */

// Evaluate reports whether the condition holds against data.
func Evaluate(cond types.Condition, data types.FormData) bool {
	if cond.IsCombinator() {
		if cond.LogicalOperator == types.LogicalAnd {
			for _, child := range cond.Conditions {
				if !Evaluate(child, data) {
					return false
				}
			}
			return true
		}
		for _, child := range cond.Conditions {
			if Evaluate(child, data) {
				return true
			}
		}
		return false
	}

	// Missing paths resolve to nil: exists fails, notExists holds, and typed
	// comparisons fall through to false. equals/notEquals additionally see
	// the presence bit, so a null operand matches only a stored null.
	fieldValue, present := Resolve(cond.Field, data)
	return compare(cond.Operator, fieldValue, present, cond.Value)
}

// EvaluateBehavior resolves a field's conditional behavior against data.
// Absent slots take the static defaults: visible, enabled, optional, writable.
func EvaluateBehavior(behavior *types.ConditionalBehavior, data types.FormData) types.FieldState {
	state := types.FieldState{Visible: true}
	if behavior == nil {
		return state
	}
	if behavior.Visible != nil {
		state.Visible = Evaluate(*behavior.Visible, data)
	}
	if behavior.Disabled != nil {
		state.Disabled = Evaluate(*behavior.Disabled, data)
	}
	if behavior.Required != nil {
		state.Required = Evaluate(*behavior.Required, data)
	}
	if behavior.Readonly != nil {
		state.Readonly = Evaluate(*behavior.Readonly, data)
	}
	return state
}

// EvaluateStepBehavior resolves a step's conditional behavior against data.
// Absent slots default to visible and not skippable.
func EvaluateStepBehavior(behavior *types.StepConditionalBehavior, data types.FormData) types.StepState {
	state := types.StepState{Visible: true}
	if behavior == nil {
		return state
	}
	if behavior.Visible != nil {
		state.Visible = Evaluate(*behavior.Visible, data)
	}
	if behavior.Skippable != nil {
		state.Skippable = Evaluate(*behavior.Skippable, data)
	}
	return state
}
