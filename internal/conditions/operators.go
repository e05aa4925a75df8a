package conditions

import (
	"regexp"
	"strings"

	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Operator comparison logic.
 *
 * Implements the 13 comparison operators with type-aware comparison rules.
 * Every comparison is total: a type mismatch resolves to false rather than
 * erroring, the conservative default for visibility gating (an indeterminate
 * condition hides rather than shows).
 *
 * Operators:
 *   - equals/notEquals: strict equality, numeric types compared numerically;
 *     a null operand matches only an explicitly stored null, never an
 *     absent path (mirroring strict undefined !== null)
 *   - greaterThan/lessThan/greaterThanOrEqual/lessThanOrEqual: numeric only
 *   - contains/notContains: substring on strings, membership on arrays
 *   - in/notIn: membership against an array-valued operand
 *   - matches: regexp test, both sides strings
 *   - exists/notExists: non-null check
 *
 * Numeric comparison: float64/int/int64 mix freely for JSON compatibility
 * (JSON has a single number type; requiring exact Go types would make
 * equality depend on how the data bag was produced).
 *
 * Negated operators do not invert a type mismatch: notContains on an
 * unsupported type combination is false, same as contains. Absence of
 * evidence is not evidence of absence.
 *
 * Why function-based: 13 operators via switch statement cleaner than 13
 * interface implementations with minimal behavior variation.
 */

// compare applies the operator to the resolved field value and the
// condition's operand. present reports whether the field path actually
// resolved; only equals/notEquals distinguish an absent path from a stored
// null. Unknown operators resolve to false.
func compare(op types.Operator, fieldValue any, present bool, operand any) bool {
	switch op {
	case types.OpEquals:
		return equalsValue(fieldValue, present, operand)
	case types.OpNotEquals:
		return !equalsValue(fieldValue, present, operand)
	case types.OpGreaterThan:
		cmp, ok := compareNumeric(fieldValue, operand)
		return ok && cmp > 0
	case types.OpLessThan:
		cmp, ok := compareNumeric(fieldValue, operand)
		return ok && cmp < 0
	case types.OpGreaterThanOrEqual:
		cmp, ok := compareNumeric(fieldValue, operand)
		return ok && cmp >= 0
	case types.OpLessThanOrEqual:
		cmp, ok := compareNumeric(fieldValue, operand)
		return ok && cmp <= 0
	case types.OpContains:
		contains, ok := containsValue(fieldValue, operand)
		return ok && contains
	case types.OpNotContains:
		contains, ok := containsValue(fieldValue, operand)
		return ok && !contains
	case types.OpIn:
		member, ok := memberOf(fieldValue, operand)
		return ok && member
	case types.OpNotIn:
		member, ok := memberOf(fieldValue, operand)
		return ok && !member
	case types.OpMatches:
		return matchesPattern(fieldValue, operand)
	case types.OpExists:
		return fieldValue != nil
	case types.OpNotExists:
		return fieldValue == nil
	default:
		return false
	}
}

// equalsValue is strict equality for the equals/notEquals operators. When
// either side is null the presence bit decides: a null operand equals a
// stored null but not a missing path.
func equalsValue(fieldValue any, present bool, operand any) bool {
	if fieldValue == nil || operand == nil {
		return present && fieldValue == nil && operand == nil
	}
	return equalValues(fieldValue, operand)
}

// equalValues performs strict equality with numeric type mixing.
// Non-scalar values (maps, slices) never compare equal; reference equality
// is meaningless once a data bag has been through JSON.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if na, nb, ok := asNumbers(a, b); ok {
		return na == nb
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

// compareNumeric performs three-way numeric comparison (-1/0/1).
// Returns ok=false when either side is not numeric.
func compareNumeric(a, b any) (int, bool) {
	na, nb, ok := asNumbers(a, b)
	if !ok {
		return 0, false
	}
	switch {
	case na < nb:
		return -1, true
	case na > nb:
		return 1, true
	default:
		return 0, true
	}
}

// asNumbers attempts to convert both values to float64 for numeric comparison.
func asNumbers(a, b any) (float64, float64, bool) {
	na, oka := toFloat64(a)
	nb, okb := toFloat64(b)
	return na, nb, oka && okb
}

// toFloat64 converts value to float64 if it's a numeric type.
// Handles float64, float32, int, int64 from JSON unmarshaling and Go callers.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// containsValue handles the contains/notContains operand shapes:
// string field + string operand is a substring test, array field is a
// membership test. ok=false for any other combination, so the negated
// operator stays false too.
func containsValue(fieldValue, operand any) (contains, ok bool) {
	switch fv := fieldValue.(type) {
	case string:
		needle, isString := operand.(string)
		if !isString {
			return false, false
		}
		return strings.Contains(fv, needle), true
	case []any:
		for _, elem := range fv {
			if equalValues(elem, operand) {
				return true, true
			}
		}
		return false, true
	default:
		return false, false
	}
}

// memberOf tests fieldValue against an array-valued operand.
// ok=false when the operand is not an array.
func memberOf(fieldValue, operand any) (member, ok bool) {
	arr, isArray := operand.([]any)
	if !isArray {
		return false, false
	}
	for _, elem := range arr {
		if equalValues(fieldValue, elem) {
			return true, true
		}
	}
	return false, true
}

// matchesPattern tests fieldValue against a regexp pattern. Both sides must
// be strings; the pattern is compiled unanchored per evaluation and an
// uncompilable pattern resolves to false. Validate() catches bad patterns at
// configuration load time, so the per-evaluation compile never surfaces as
// an error here.
func matchesPattern(fieldValue, operand any) bool {
	fv, ok1 := fieldValue.(string)
	pattern, ok2 := operand.(string)
	if !ok1 || !ok2 {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(fv)
}
