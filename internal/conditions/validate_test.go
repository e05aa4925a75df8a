// internal/conditions/validate_test.go
package conditions

import (
	"errors"
	"strings"
	"testing"

	"github.com/solatis/fieldgate/internal/types"
)

func TestValidate(t *testing.T) {
	deepNest := When("a").Exists()
	for i := 0; i < types.MaxConditionDepth+1; i++ {
		deepNest = deepNest.And(When("b").Exists())
	}

	longPath := strings.Repeat("seg.", types.MaxPathSegments) + "leaf"

	bigIn := make([]any, types.MaxInOperatorValues+1)
	for i := range bigIn {
		bigIn[i] = float64(i)
	}

	tests := []struct {
		name    string
		cond    types.Condition
		wantErr error
	}{
		{"valid leaf", When("age").GreaterThan(float64(18)).Build(), nil},
		{"valid combinator", When("a").Exists().And(When("b").Exists()).Build(), nil},
		{"valid in", When("c").In("x", "y").Build(), nil},
		{"valid matches", When("c").Matches("^[a-z]+$").Build(), nil},
		{"empty field path", types.Condition{Operator: types.OpExists}, types.ErrEmptyFieldPath},
		{"whitespace field path", types.Condition{Field: "  ", Operator: types.OpExists}, types.ErrEmptyFieldPath},
		{"unknown operator", types.Condition{Field: "f", Operator: "startsWith"}, types.ErrUnknownOperator},
		{"empty operator", types.Condition{Field: "f"}, types.ErrUnknownOperator},
		{"in with scalar value", types.Condition{Field: "f", Operator: types.OpIn, Value: "x"}, types.ErrInValueNotArray},
		{"notIn with scalar value", types.Condition{Field: "f", Operator: types.OpNotIn, Value: float64(1)}, types.ErrInValueNotArray},
		{"in too many values", types.Condition{Field: "f", Operator: types.OpIn, Value: bigIn}, types.ErrTooManyInValues},
		{"matches non-string pattern", types.Condition{Field: "f", Operator: types.OpMatches, Value: float64(1)}, types.ErrInvalidPattern},
		{"matches uncompilable pattern", types.Condition{Field: "f", Operator: types.OpMatches, Value: "("}, types.ErrInvalidPattern},
		{"path too long", types.Condition{Field: longPath, Operator: types.OpExists}, types.ErrPathTooLong},
		{"nesting too deep", deepNest.Build(), types.ErrConditionTooDeep},
		{
			"error inside nested child",
			When("ok").Exists().And(From(types.Condition{Field: "bad", Operator: "nope"})).Build(),
			types.ErrUnknownOperator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cond)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBehavior(t *testing.T) {
	good := When("a").Exists().Build()
	bad := types.Condition{Field: "b", Operator: "typo"}

	if err := ValidateBehavior(&types.ConditionalBehavior{Visible: &good}); err != nil {
		t.Errorf("ValidateBehavior(valid) = %v, want nil", err)
	}
	if err := ValidateBehavior(nil); err != nil {
		t.Errorf("ValidateBehavior(nil) = %v, want nil", err)
	}

	err := ValidateBehavior(&types.ConditionalBehavior{Visible: &good, Required: &bad})
	if !errors.Is(err, types.ErrUnknownOperator) {
		t.Errorf("ValidateBehavior(invalid slot) = %v, want ErrUnknownOperator", err)
	}
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("error should name the offending slot, got %v", err)
	}
}

func TestValidateStepBehavior(t *testing.T) {
	bad := types.Condition{Operator: types.OpExists}
	err := ValidateStepBehavior(&types.StepConditionalBehavior{Skippable: &bad})
	if !errors.Is(err, types.ErrEmptyFieldPath) {
		t.Errorf("ValidateStepBehavior() = %v, want ErrEmptyFieldPath", err)
	}
}
