package logspec

import "sort"

// directive maps a module path prefix to the most verbose level allowed
// for modules under that prefix. An empty module is the global fallback,
// consulted when no specific prefix matches.
type directive struct {
	module string
	level  Level
}

// sortDirectives orders directives by prefix length, shortest first, so
// that a reverse scan hits the most specific applicable rule first. The
// sort is stable: equal-length prefixes keep their insertion order.
func sortDirectives(dirs []directive) {
	sort.SliceStable(dirs, func(i, j int) bool {
		return len(dirs[i].module) < len(dirs[j].module)
	})
}
