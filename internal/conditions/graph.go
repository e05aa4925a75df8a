// internal/conditions/graph.go
package conditions

import (
	"sort"

	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Condition dependency graph.
 *
 * Bidirectional index between field ids and the data paths their conditions
 * read. Enables O(1) "who depends on path P" lookups when a data path
 * changes, instead of re-checking every condition on every change, plus the
 * inverse "what does field F read" direction.
 *
 * Sync invariant: for every (field, path) pair in the forward index, field
 * appears in the reverse bucket for path, and vice versa. Every mutation
 * goes through setPaths(), the single internal entry point that updates both
 * maps together, so no public operation can leave them diverged.
 *
 * Path matching is exact string match only. Depending on "step1" does not
 * match a change to "step1.field1"; hosts report the precise paths they
 * mutate.
 *
 * Not a concurrent data structure: callers serialize mutating calls
 * themselves. The intended discipline is a single-writer synchronous UI
 * update loop (data change -> affected fields -> re-evaluate), where no
 * serialization is needed.
 */

// DependencyGraph indexes field ids against the data paths their
// conditional behavior reads. The zero value is not usable; call
// NewDependencyGraph.
type DependencyGraph struct {
	// forward: field id -> set of paths the field's conditions read
	fieldDeps map[string]map[string]struct{}
	// reverse: path -> set of field ids reading it
	reverseDeps map[string]map[string]struct{}
}

// NewDependencyGraph creates an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		fieldDeps:   make(map[string]map[string]struct{}),
		reverseDeps: make(map[string]map[string]struct{}),
	}
}

// setPaths is the single mutation entry point keeping both indexes in sync.
// It fully unregisters fieldID's previous paths before indexing the new set,
// so re-registration can never leak stale reverse entries.
func (g *DependencyGraph) setPaths(fieldID string, paths []string) {
	if old, ok := g.fieldDeps[fieldID]; ok {
		for path := range old {
			g.dropReverse(path, fieldID)
		}
	}

	deps := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		deps[path] = struct{}{}
		bucket, ok := g.reverseDeps[path]
		if !ok {
			bucket = make(map[string]struct{})
			g.reverseDeps[path] = bucket
		}
		bucket[fieldID] = struct{}{}
	}
	g.fieldDeps[fieldID] = deps
}

// dropReverse removes fieldID from the reverse bucket for path, pruning the
// bucket when it empties.
func (g *DependencyGraph) dropReverse(path, fieldID string) {
	bucket, ok := g.reverseDeps[path]
	if !ok {
		return
	}
	delete(bucket, fieldID)
	if len(bucket) == 0 {
		delete(g.reverseDeps, path)
	}
}

// AddField registers a field's dependencies extracted from its conditional
// behavior, replacing any prior registration for the same id. A nil behavior
// registers the field with an empty dependency set (it still appears in
// Fields()).
func (g *DependencyGraph) AddField(fieldID string, behavior *types.ConditionalBehavior) {
	g.setPaths(fieldID, BehaviorDependencies(behavior))
}

// AddStep registers a step's dependencies extracted from its step-level
// conditional behavior. Steps and fields share one id namespace in the
// graph; hosts that need separation prefix their ids.
func (g *DependencyGraph) AddStep(stepID string, behavior *types.StepConditionalBehavior) {
	g.setPaths(stepID, StepBehaviorDependencies(behavior))
}

// RemoveField unregisters a field and scrubs it from every reverse bucket it
// appeared in. No-op for ids that were never registered.
func (g *DependencyGraph) RemoveField(fieldID string) {
	deps, ok := g.fieldDeps[fieldID]
	if !ok {
		return
	}
	for path := range deps {
		g.dropReverse(path, fieldID)
	}
	delete(g.fieldDeps, fieldID)
}

// AffectedFields returns the ids of fields whose dependency set contains
// exactly path, sorted for deterministic order. Unknown paths yield an
// empty slice.
func (g *DependencyGraph) AffectedFields(path string) []string {
	return sortedKeys(g.reverseDeps[path])
}

// AffectedFieldsMulti returns the deduplicated union of AffectedFields over
// each path, for update cycles that mutate a batch of paths at once.
func (g *DependencyGraph) AffectedFieldsMulti(paths []string) []string {
	union := make(map[string]struct{})
	for _, path := range paths {
		for fieldID := range g.reverseDeps[path] {
			union[fieldID] = struct{}{}
		}
	}
	return sortedKeys(union)
}

// Dependencies returns the field's own dependency set, sorted. Empty for
// unregistered ids.
func (g *DependencyGraph) Dependencies(fieldID string) []string {
	return sortedKeys(g.fieldDeps[fieldID])
}

// HasDependencies reports whether the field is registered with at least one
// dependency path.
func (g *DependencyGraph) HasDependencies(fieldID string) bool {
	return len(g.fieldDeps[fieldID]) > 0
}

// Fields returns every registered field id, sorted.
func (g *DependencyGraph) Fields() []string {
	return sortedKeys(g.fieldDeps)
}

// DependencyPaths returns every indexed data path, sorted.
func (g *DependencyGraph) DependencyPaths() []string {
	return sortedKeys(g.reverseDeps)
}

// Size returns the number of registered fields.
func (g *DependencyGraph) Size() int {
	return len(g.fieldDeps)
}

// Clear resets both indexes to empty.
func (g *DependencyGraph) Clear() {
	g.fieldDeps = make(map[string]map[string]struct{})
	g.reverseDeps = make(map[string]map[string]struct{})
}

// DebugSnapshot returns a plain copy of both indexes for inspection and
// tests. Mutating the snapshot does not affect the graph.
func (g *DependencyGraph) DebugSnapshot() map[string]map[string][]string {
	forward := make(map[string][]string, len(g.fieldDeps))
	for fieldID, deps := range g.fieldDeps {
		forward[fieldID] = sortedKeys(deps)
	}
	reverse := make(map[string][]string, len(g.reverseDeps))
	for path, fields := range g.reverseDeps {
		reverse[path] = sortedKeys(fields)
	}
	return map[string]map[string][]string{
		"fieldDependencies":   forward,
		"reverseDependencies": reverse,
	}
}

// sortedKeys returns the map's keys in lexicographic order so query results
// are deterministic across runs (stable evaluation invariant).
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
