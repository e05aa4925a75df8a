package types

import "errors"

// Sentinel errors for fieldgate operations.
var (
	// ErrUnknownOperator indicates a condition uses an operator outside the
	// known enum. Caught at configuration load time; the evaluator itself
	// silently resolves unknown operators to false.
	ErrUnknownOperator = errors.New("unknown condition operator")

	// ErrEmptyFieldPath indicates a leaf condition with an empty field path.
	ErrEmptyFieldPath = errors.New("leaf condition has empty field path")

	// ErrConditionTooDeep indicates combinator nesting exceeds MaxConditionDepth.
	ErrConditionTooDeep = errors.New("condition nesting exceeds maximum depth")

	// ErrPathTooLong indicates a field path exceeds MaxPathSegments.
	ErrPathTooLong = errors.New("field path exceeds maximum segments")

	// ErrTooManyInValues indicates an in/notIn operator exceeds MaxInOperatorValues.
	ErrTooManyInValues = errors.New("in operator has too many values")

	// ErrInValueNotArray indicates an in/notIn operator whose value is not an array.
	ErrInValueNotArray = errors.New("in operator value must be an array")

	// ErrInvalidPattern indicates a matches operator with an uncompilable pattern.
	ErrInvalidPattern = errors.New("matches operator has invalid pattern")

	// ErrDuplicateField indicates a form declares the same field id twice.
	ErrDuplicateField = errors.New("duplicate field id in form")

	// ErrDuplicateStep indicates a form declares the same step id twice.
	ErrDuplicateStep = errors.New("duplicate step id in form")

	// ErrFormNotFound indicates an operation referenced an unregistered form.
	ErrFormNotFound = errors.New("form not found")

	// ErrStateNotFound indicates a form state lookup for an unknown instance.
	ErrStateNotFound = errors.New("form state not found")

	// ErrTooManyChangedPaths indicates an update cycle exceeded
	// MaxChangedPathsPerCycle.
	ErrTooManyChangedPaths = errors.New("too many changed paths in one update cycle")
)
