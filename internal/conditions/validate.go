// internal/conditions/validate.go
package conditions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Configuration-time condition validation.
 *
 * The evaluator is deliberately permissive: a typo'd operator name silently
 * evaluates to false, which hides a field instead of erroring. Validation
 * moves that sharp edge to form load time, where a broken condition is a
 * configuration bug worth reporting, not a runtime visibility decision.
 *
 * Checks per node:
 *   - leaf field path non-empty and within MaxPathSegments
 *   - operator member of the known enum
 *   - in/notIn operand is an array within MaxInOperatorValues
 *   - matches pattern compiles
 *   - combinator nesting within MaxConditionDepth
 *
 * Conditions built through the fluent Builder satisfy most of these by
 * construction; validation matters for conditions loaded from JSON.
 */

var knownOperators = func() map[types.Operator]struct{} {
	m := make(map[types.Operator]struct{}, len(types.Operators))
	for _, op := range types.Operators {
		m[op] = struct{}{}
	}
	return m
}()

// Validate checks that the condition tree is well-formed.
// Returns nil for valid conditions; errors wrap the types sentinel and name
// the offending path or operator.
func Validate(cond types.Condition) error {
	return validateNode(cond, 0)
}

func validateNode(cond types.Condition, depth int) error {
	if depth > types.MaxConditionDepth {
		return types.ErrConditionTooDeep
	}

	if cond.IsCombinator() {
		for _, child := range cond.Conditions {
			if err := validateNode(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	field := strings.TrimSpace(cond.Field)
	if field == "" {
		return types.ErrEmptyFieldPath
	}
	if strings.Count(field, ".")+1 > types.MaxPathSegments {
		return fmt.Errorf("%w: %q", types.ErrPathTooLong, field)
	}

	if _, ok := knownOperators[cond.Operator]; !ok {
		return fmt.Errorf("%w: %q on field %q", types.ErrUnknownOperator, cond.Operator, field)
	}

	switch cond.Operator {
	case types.OpIn, types.OpNotIn:
		arr, ok := cond.Value.([]any)
		if !ok {
			return fmt.Errorf("%w: field %q", types.ErrInValueNotArray, field)
		}
		if len(arr) > types.MaxInOperatorValues {
			return fmt.Errorf("%w: field %q has %d values", types.ErrTooManyInValues, field, len(arr))
		}
	case types.OpMatches:
		pattern, ok := cond.Value.(string)
		if !ok {
			return fmt.Errorf("%w: field %q pattern is not a string", types.ErrInvalidPattern, field)
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%w: field %q: %v", types.ErrInvalidPattern, field, err)
		}
	}

	return nil
}

// ValidateBehavior validates every non-nil slot of a field behavior.
func ValidateBehavior(behavior *types.ConditionalBehavior) error {
	return validateSlots(behavior.Slots())
}

// ValidateStepBehavior validates every non-nil slot of a step behavior.
func ValidateStepBehavior(behavior *types.StepConditionalBehavior) error {
	return validateSlots(behavior.Slots())
}

func validateSlots(slots map[string]*types.Condition) error {
	for _, name := range sortedKeys(slots) {
		cond := slots[name]
		if cond == nil {
			continue
		}
		if err := Validate(*cond); err != nil {
			return fmt.Errorf("slot %s: %w", name, err)
		}
	}
	return nil
}
