// internal/conditions/builder.go
package conditions

import (
	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Fluent condition builder.
 *
 * Ergonomic construction of types.Condition values:
 *
 *   cond := conditions.When("user.profile.age").GreaterThan(18).
 *       And(conditions.When("country").In("FI", "SE", "NO")).
 *       Build()
 *
 * Builder is an immutable value type: every method returns a new Builder and
 * never mutates the receiver, so holding a reference to an intermediate
 * builder state is safe. The only currency between builder, evaluator and
 * extractor is types.Condition itself; Build() is a plain accessor, and
 * combinators also accept raw Conditions via the package-level And/Or.
 *
 * And/Or wrap the accumulated node one level deeper on each call:
 * a.And(b).And(c) produces And(And(a,b),c), left-associative nesting rather
 * than a flat three-way list. The evaluator and extractor recurse to
 * arbitrary depth, so nesting shape never changes semantics.
 *
 * Operator methods fix the operator from a closed set, so built conditions
 * cannot carry a typo'd operator name; conditions loaded from JSON go
 * through Validate() instead.
 */

// Builder accumulates a single condition node.
type Builder struct {
	cond types.Condition
}

// When starts a condition on the given dot-separated data path.
func When(field string) Builder {
	return Builder{cond: types.Condition{Field: field}}
}

// From wraps an existing condition so it can be combined fluently.
func From(cond types.Condition) Builder {
	return Builder{cond: cond}
}

// Build returns the accumulated condition.
func (b Builder) Build() types.Condition {
	return b.cond
}

func (b Builder) withOp(op types.Operator, value any) Builder {
	next := b.cond
	next.Operator = op
	next.Value = value
	return Builder{cond: next}
}

// Equals tests strict equality against value.
func (b Builder) Equals(value any) Builder { return b.withOp(types.OpEquals, value) }

// NotEquals tests strict inequality against value.
func (b Builder) NotEquals(value any) Builder { return b.withOp(types.OpNotEquals, value) }

// GreaterThan tests a strict numeric greater-than.
func (b Builder) GreaterThan(value any) Builder { return b.withOp(types.OpGreaterThan, value) }

// LessThan tests a strict numeric less-than.
func (b Builder) LessThan(value any) Builder { return b.withOp(types.OpLessThan, value) }

// GreaterThanOrEqual tests a numeric greater-or-equal.
func (b Builder) GreaterThanOrEqual(value any) Builder {
	return b.withOp(types.OpGreaterThanOrEqual, value)
}

// LessThanOrEqual tests a numeric less-or-equal.
func (b Builder) LessThanOrEqual(value any) Builder {
	return b.withOp(types.OpLessThanOrEqual, value)
}

// Contains tests substring (string field) or membership (array field).
func (b Builder) Contains(value any) Builder { return b.withOp(types.OpContains, value) }

// NotContains is the negation of Contains over supported type combinations.
func (b Builder) NotContains(value any) Builder { return b.withOp(types.OpNotContains, value) }

// In tests membership of the field value in the given set.
func (b Builder) In(values ...any) Builder { return b.withOp(types.OpIn, values) }

// NotIn tests absence of the field value from the given set.
func (b Builder) NotIn(values ...any) Builder { return b.withOp(types.OpNotIn, values) }

// Matches tests the field value against an unanchored regexp pattern.
func (b Builder) Matches(pattern string) Builder { return b.withOp(types.OpMatches, pattern) }

// Exists tests that the path resolves to a non-null value.
func (b Builder) Exists() Builder { return b.withOp(types.OpExists, nil) }

// NotExists tests that the path is absent or null.
func (b Builder) NotExists() Builder { return b.withOp(types.OpNotExists, nil) }

// And combines the accumulated condition with other under logical AND.
func (b Builder) And(other Builder) Builder {
	return Builder{cond: And(b.cond, other.cond)}
}

// Or combines the accumulated condition with other under logical OR.
func (b Builder) Or(other Builder) Builder {
	return Builder{cond: Or(b.cond, other.cond)}
}

// And combines conditions under logical AND.
func And(conds ...types.Condition) types.Condition {
	return types.Condition{
		Conditions:      conds,
		LogicalOperator: types.LogicalAnd,
	}
}

// Or combines conditions under logical OR.
func Or(conds ...types.Condition) types.Condition {
	return types.Condition{
		Conditions:      conds,
		LogicalOperator: types.LogicalOr,
	}
}
