// Package types provides domain models shared across fieldgate components.
//
// Zero-dependency design: conditions.go, forms.go and errors.go use only the
// standard library so the condition engine can be embedded without pulling in
// storage or CLI dependencies. ID utilities in ids.go import uuid but are
// isolated for selective inclusion.
package types

// Resource limits enforced at configuration load time. The evaluator itself
// stays permissive (it never errors); these bounds exist so malformed form
// definitions are rejected before they reach the evaluation hot path.
const (
	// MaxConditionDepth limits combinator nesting. Builder chains nest one
	// level per .And()/.Or() call, so 32 levels covers any condition a form
	// author plausibly writes while keeping recursion bounded.
	MaxConditionDepth = 32

	// MaxPathSegments limits dot-path length in a leaf condition.
	// 16 levels handles deeply nested data bags (user.profile.address.city).
	MaxPathSegments = 16

	// MaxInOperatorValues limits in/notIn list size to keep membership
	// checks linear in a small constant.
	MaxInOperatorValues = 64

	// MaxChangedPathsPerCycle caps the batch of data paths the engine
	// accepts in one update cycle.
	MaxChangedPathsPerCycle = 256
)

// FormData is the data context conditions are evaluated against: the current
// field/step/workflow values as a nested key/value structure. Values are
// JSON-like (string, float64, bool, nil, []any, map[string]any).
type FormData = map[string]any
