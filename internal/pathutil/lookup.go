// Package pathutil provides nested-key lookup into JSON-compatible
// map structures such as an OpenAPI components registry.
package pathutil

// Lookup walks root along segs, one map level per segment, and returns the
// value found at the end of the path. Each segment indexes the current map
// exactly as-is: a key that literally contains "." or "/" is matched without
// any splitting.
//
// Lookup returns def when root is nil or empty, when a segment is missing,
// or when the walk hits a non-map value before the segments are exhausted.
// An empty segs returns root itself.
//
// The segment slice is never modified; traversal uses an index cursor, so
// callers may reuse the same slice across lookups.
func Lookup(root any, segs []string, def any) any {
	current := root
	for i := 0; ; i++ {
		if isEmpty(current) {
			return def
		}
		if i == len(segs) {
			return current
		}
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current = m[segs[i]]
	}
}

// isEmpty reports whether v is nil or an empty map, i.e. a value that cannot
// yield a lookup result.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if m, ok := v.(map[string]any); ok {
		return len(m) == 0
	}
	return false
}
