// internal/conditions/extract.go
package conditions

import (
	"strings"

	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Dependency extraction.
 *
 * Walks a condition tree and produces the deduplicated list of data paths it
 * reads. Used to populate the dependency graph: the graph stores only
 * extracted path strings, never condition values.
 *
 * Leaves contribute their trimmed, non-empty field path; combinators recurse
 * into every child and never contribute their own (conventionally empty)
 * field. Result order is first-seen, which keeps extraction deterministic
 * for a given tree shape.
 */

// Dependencies returns the deduplicated data paths the condition reads,
// in first-seen order.
func Dependencies(cond types.Condition) []string {
	var paths []string
	seen := make(map[string]struct{})
	collectDependencies(cond, seen, &paths)
	return paths
}

func collectDependencies(cond types.Condition, seen map[string]struct{}, paths *[]string) {
	if cond.IsCombinator() {
		for _, child := range cond.Conditions {
			collectDependencies(child, seen, paths)
		}
		return
	}

	field := strings.TrimSpace(cond.Field)
	if field == "" {
		return
	}
	if _, ok := seen[field]; ok {
		return
	}
	seen[field] = struct{}{}
	*paths = append(*paths, field)
}

// AllDependencies unions Dependencies over every non-nil condition in an
// arbitrary map of named slots (e.g. a ConditionalBehavior's four slots).
// Iteration over named slots is sorted-key for deterministic output order.
func AllDependencies(slots map[string]*types.Condition) []string {
	var paths []string
	seen := make(map[string]struct{})

	for _, name := range sortedKeys(slots) {
		cond := slots[name]
		if cond == nil {
			continue
		}
		collectDependencies(*cond, seen, &paths)
	}
	return paths
}

// BehaviorDependencies extracts the union of paths read by a field's
// conditional behavior. Nil behavior yields no paths.
func BehaviorDependencies(behavior *types.ConditionalBehavior) []string {
	return AllDependencies(behavior.Slots())
}

// StepBehaviorDependencies extracts the union of paths read by a step's
// conditional behavior.
func StepBehaviorDependencies(behavior *types.StepConditionalBehavior) []string {
	return AllDependencies(behavior.Slots())
}
