// internal/conditions/fieldpath.go
package conditions

import (
	"strings"

	"github.com/solatis/fieldgate/internal/types"
)

/*
 * Field path resolution for form data bags.
 *
 * Resolves dot-separated paths ("user.profile.age") through nested
 * map[string]any structures. Plain segment traversal, no wildcards and no
 * prefix semantics: a path either resolves exactly or it does not.
 *
 * Name collisions between outer and inner keys (a step id equal to a field
 * id inside it, e.g. "coveredPersons.coveredPersons") need no special
 * casing; traversal only ever looks at the next segment of the current map.
 *
 * Missing semantics: an absent segment, or an intermediate value that is not
 * an object, resolves to (nil, false); an explicitly stored null resolves to
 * (nil, true). Most operators treat the two alike, equality does not.
 */

// Resolve walks data following the dot-separated path.
// Returns the resolved value and whether every segment was present.
func Resolve(path string, data types.FormData) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = map[string]any(data)
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
