// internal/conditions/evaluate_test.go
package conditions

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/solatis/fieldgate/internal/types"
)

func TestEvaluate_Operators(t *testing.T) {
	data := types.FormData{
		"age":      float64(25),
		"name":     "Alice Smith",
		"active":   true,
		"country":  "FI",
		"products": []any{"x", "y"},
		"empty":    []any{},
		"nothing":  nil,
		"user": map[string]any{
			"profile": map[string]any{"age": float64(25)},
		},
	}

	tests := []struct {
		name string
		cond types.Condition
		want bool
	}{
		{"equals string match", types.Condition{Field: "country", Operator: types.OpEquals, Value: "FI"}, true},
		{"equals string mismatch", types.Condition{Field: "country", Operator: types.OpEquals, Value: "SE"}, false},
		{"equals number match", types.Condition{Field: "age", Operator: types.OpEquals, Value: float64(25)}, true},
		{"equals numeric int operand", types.Condition{Field: "age", Operator: types.OpEquals, Value: 25}, true},
		{"equals cross-type", types.Condition{Field: "age", Operator: types.OpEquals, Value: "25"}, false},
		{"equals bool", types.Condition{Field: "active", Operator: types.OpEquals, Value: true}, true},
		{"notEquals match", types.Condition{Field: "country", Operator: types.OpNotEquals, Value: "SE"}, true},
		{"notEquals mismatch", types.Condition{Field: "country", Operator: types.OpNotEquals, Value: "FI"}, false},
		{"equals null on stored null", types.Condition{Field: "nothing", Operator: types.OpEquals, Value: nil}, true},
		{"equals null on missing path", types.Condition{Field: "missing", Operator: types.OpEquals, Value: nil}, false},
		{"equals value on missing path", types.Condition{Field: "missing", Operator: types.OpEquals, Value: "x"}, false},
		{"notEquals null on stored null", types.Condition{Field: "nothing", Operator: types.OpNotEquals, Value: nil}, false},
		{"notEquals null on missing path", types.Condition{Field: "missing", Operator: types.OpNotEquals, Value: nil}, true},

		{"greaterThan true", types.Condition{Field: "age", Operator: types.OpGreaterThan, Value: float64(18)}, true},
		{"greaterThan equal is false", types.Condition{Field: "age", Operator: types.OpGreaterThan, Value: float64(25)}, false},
		{"greaterThan false", types.Condition{Field: "age", Operator: types.OpGreaterThan, Value: float64(30)}, false},
		{"greaterThan non-numeric field", types.Condition{Field: "name", Operator: types.OpGreaterThan, Value: float64(1)}, false},
		{"greaterThan non-numeric operand", types.Condition{Field: "age", Operator: types.OpGreaterThan, Value: "18"}, false},
		{"lessThan true", types.Condition{Field: "age", Operator: types.OpLessThan, Value: float64(30)}, true},
		{"lessThan equal is false", types.Condition{Field: "age", Operator: types.OpLessThan, Value: float64(25)}, false},
		{"greaterThanOrEqual at boundary", types.Condition{Field: "age", Operator: types.OpGreaterThanOrEqual, Value: float64(25)}, true},
		{"lessThanOrEqual at boundary", types.Condition{Field: "age", Operator: types.OpLessThanOrEqual, Value: float64(25)}, true},
		{"lessThanOrEqual below", types.Condition{Field: "age", Operator: types.OpLessThanOrEqual, Value: float64(24)}, false},

		{"contains substring", types.Condition{Field: "name", Operator: types.OpContains, Value: "Smith"}, true},
		{"contains substring absent", types.Condition{Field: "name", Operator: types.OpContains, Value: "Jones"}, false},
		{"contains array member", types.Condition{Field: "products", Operator: types.OpContains, Value: "x"}, true},
		{"contains array non-member", types.Condition{Field: "products", Operator: types.OpContains, Value: "z"}, false},
		{"contains empty array", types.Condition{Field: "empty", Operator: types.OpContains, Value: "x"}, false},
		{"contains type mismatch", types.Condition{Field: "age", Operator: types.OpContains, Value: "2"}, false},
		{"notContains substring absent", types.Condition{Field: "name", Operator: types.OpNotContains, Value: "Jones"}, true},
		{"notContains array member", types.Condition{Field: "products", Operator: types.OpNotContains, Value: "x"}, false},
		{"notContains type mismatch stays false", types.Condition{Field: "age", Operator: types.OpNotContains, Value: "2"}, false},

		{"in member", types.Condition{Field: "country", Operator: types.OpIn, Value: []any{"FI", "SE"}}, true},
		{"in non-member", types.Condition{Field: "country", Operator: types.OpIn, Value: []any{"DE", "FR"}}, false},
		{"in numeric member", types.Condition{Field: "age", Operator: types.OpIn, Value: []any{float64(25), float64(30)}}, true},
		{"in non-array operand", types.Condition{Field: "country", Operator: types.OpIn, Value: "FI"}, false},
		{"notIn non-member", types.Condition{Field: "country", Operator: types.OpNotIn, Value: []any{"DE"}}, true},
		{"notIn member", types.Condition{Field: "country", Operator: types.OpNotIn, Value: []any{"FI"}}, false},
		{"notIn non-array operand stays false", types.Condition{Field: "country", Operator: types.OpNotIn, Value: "FI"}, false},

		{"matches pattern", types.Condition{Field: "name", Operator: types.OpMatches, Value: "^Alice"}, true},
		{"matches unanchored", types.Condition{Field: "name", Operator: types.OpMatches, Value: "Smith"}, true},
		{"matches no match", types.Condition{Field: "name", Operator: types.OpMatches, Value: "^Smith"}, false},
		{"matches invalid pattern", types.Condition{Field: "name", Operator: types.OpMatches, Value: "("}, false},
		{"matches non-string field", types.Condition{Field: "age", Operator: types.OpMatches, Value: "25"}, false},

		{"exists present", types.Condition{Field: "name", Operator: types.OpExists}, true},
		{"exists null", types.Condition{Field: "nothing", Operator: types.OpExists}, false},
		{"exists missing", types.Condition{Field: "missing", Operator: types.OpExists}, false},
		{"notExists missing", types.Condition{Field: "missing", Operator: types.OpNotExists}, true},
		{"notExists null", types.Condition{Field: "nothing", Operator: types.OpNotExists}, true},
		{"notExists present", types.Condition{Field: "name", Operator: types.OpNotExists}, false},

		{"unknown operator", types.Condition{Field: "name", Operator: "startsWith", Value: "A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cond, data); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_NumericGating(t *testing.T) {
	cond := types.Condition{Field: "age", Operator: types.OpGreaterThan, Value: float64(18)}

	if got := Evaluate(cond, types.FormData{"age": float64(25)}); !got {
		t.Errorf("Evaluate(age>18, age=25) = false, want true")
	}
	if got := Evaluate(cond, types.FormData{"age": float64(15)}); got {
		t.Errorf("Evaluate(age>18, age=15) = true, want false")
	}
	if got := Evaluate(cond, types.FormData{"age": float64(18)}); got {
		t.Errorf("Evaluate(age>18, age=18) = true, want false (strict greater-than)")
	}
}

func TestEvaluate_NestedPath(t *testing.T) {
	cond := When("user.profile.age").GreaterThan(float64(18)).Build()

	full := types.FormData{"user": map[string]any{"profile": map[string]any{"age": float64(25)}}}
	if got := Evaluate(cond, full); !got {
		t.Errorf("Evaluate() on populated nested path = false, want true")
	}

	hollow := types.FormData{"user": map[string]any{"profile": map[string]any{}}}
	if got := Evaluate(cond, hollow); got {
		t.Errorf("Evaluate() on missing nested leaf = true, want false")
	}
}

func TestEvaluate_Combinators(t *testing.T) {
	a := When("a").Equals(float64(1))
	b := When("b").Equals(float64(2))

	tests := []struct {
		name string
		cond types.Condition
		data types.FormData
		want bool
	}{
		{"and both true", a.And(b).Build(), types.FormData{"a": float64(1), "b": float64(2)}, true},
		{"and left false", a.And(b).Build(), types.FormData{"a": float64(0), "b": float64(2)}, false},
		{"and right false", a.And(b).Build(), types.FormData{"a": float64(1), "b": float64(0)}, false},
		{"or both false", a.Or(b).Build(), types.FormData{"a": float64(0), "b": float64(0)}, false},
		{"or left true", a.Or(b).Build(), types.FormData{"a": float64(1), "b": float64(0)}, true},
		{"or right true", a.Or(b).Build(), types.FormData{"a": float64(0), "b": float64(2)}, true},
		{
			"nested and of or",
			a.Or(b).And(When("c").Exists()).Build(),
			types.FormData{"a": float64(1), "c": "here"},
			true,
		},
		{
			"combinator ignores own field and operator",
			types.Condition{
				Field:    "ignored",
				Operator: types.OpExists,
				Conditions: []types.Condition{
					{Field: "a", Operator: types.OpEquals, Value: float64(1)},
				},
				LogicalOperator: types.LogicalAnd,
			},
			types.FormData{"a": float64(1)},
			true,
		},
		{
			"empty logical operator combines as or",
			types.Condition{
				Conditions: []types.Condition{
					{Field: "a", Operator: types.OpEquals, Value: float64(9)},
					{Field: "b", Operator: types.OpEquals, Value: float64(2)},
				},
			},
			types.FormData{"a": float64(1), "b": float64(2)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cond, tt.data); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_DeepNesting(t *testing.T) {
	// a.And(b).And(c).And(d) nests one level per call; the evaluator must
	// recurse through the accumulated shape, not expect a flat list.
	cond := When("a").Exists().
		And(When("b").Exists()).
		And(When("c").Exists()).
		And(When("d").Exists()).
		Build()

	all := types.FormData{"a": 1, "b": 1, "c": 1, "d": 1}
	if !Evaluate(cond, all) {
		t.Errorf("Evaluate() deep and-chain with all present = false, want true")
	}

	missing := types.FormData{"a": 1, "b": 1, "d": 1}
	if Evaluate(cond, missing) {
		t.Errorf("Evaluate() deep and-chain with c missing = true, want false")
	}
}

func TestEvaluateBehavior_Defaults(t *testing.T) {
	state := EvaluateBehavior(nil, types.FormData{})
	if !state.Visible || state.Disabled || state.Required || state.Readonly {
		t.Errorf("EvaluateBehavior(nil) = %+v, want visible-only defaults", state)
	}
}

func TestEvaluateBehavior_Slots(t *testing.T) {
	visible := When("trigger").Equals("show").Build()
	required := When("mode").Equals("strict").Build()
	behavior := &types.ConditionalBehavior{Visible: &visible, Required: &required}

	state := EvaluateBehavior(behavior, types.FormData{"trigger": "show", "mode": "lenient"})
	if !state.Visible {
		t.Errorf("Visible = false, want true")
	}
	if state.Required {
		t.Errorf("Required = true, want false")
	}
	if state.Disabled || state.Readonly {
		t.Errorf("unset slots = %+v, want static defaults", state)
	}
}

func TestEvaluateStepBehavior(t *testing.T) {
	visible := When("plan").NotEquals("basic").Build()
	behavior := &types.StepConditionalBehavior{Visible: &visible}

	if state := EvaluateStepBehavior(behavior, types.FormData{"plan": "basic"}); state.Visible {
		t.Errorf("step Visible = true, want false")
	}
	if state := EvaluateStepBehavior(nil, types.FormData{}); !state.Visible || state.Skippable {
		t.Errorf("EvaluateStepBehavior(nil) = %+v, want visible and not skippable", state)
	}
}

// Property-based test: evaluation is deterministic (no hidden state).
func TestEvaluate_PropertyDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("identical inputs yield identical results", prop.ForAll(
		func(field string, threshold int, value int) bool {
			cond := When(field).GreaterThan(float64(threshold)).
				Or(When(field).Equals(float64(value))).
				Build()
			data := types.FormData{field: float64(value)}

			first := Evaluate(cond, data)
			for i := 0; i < 5; i++ {
				if Evaluate(cond, data) != first {
					return false
				}
			}
			return true
		},
		gen.Identifier(),
		gen.IntRange(-100, 100),
		gen.IntRange(-100, 100),
	))

	properties.TestingRun(t)
}

// Property-based test: evaluation is total, no input makes it panic.
func TestEvaluate_PropertyNeverPanics(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	operators := []types.Operator{
		types.OpEquals, types.OpNotEquals, types.OpGreaterThan, types.OpLessThan,
		types.OpContains, types.OpNotContains, types.OpIn, types.OpNotIn,
		types.OpMatches, types.OpExists, types.OpNotExists, "bogus",
	}

	properties.Property("evaluation never panics regardless of operand shapes", prop.ForAll(
		func(opIdx int, path string, operandKind int) bool {
			var operand any
			switch operandKind % 5 {
			case 0:
				operand = "text"
			case 1:
				operand = float64(operandKind)
			case 2:
				operand = []any{"a", float64(1), nil}
			case 3:
				operand = nil
			case 4:
				operand = map[string]any{"k": "v"}
			}

			cond := types.Condition{
				Field:    path,
				Operator: operators[opIdx%len(operators)],
				Value:    operand,
			}
			data := types.FormData{
				"a": map[string]any{"b": []any{"x"}},
				"s": "text",
				"n": float64(3),
			}

			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Evaluate() panicked: %v", r)
				}
			}()

			_ = Evaluate(cond, data)
			return true
		},
		gen.IntRange(0, len(operators)-1),
		gen.OneConstOf("a", "a.b", "s", "n", "", "a.b.c.d"),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
