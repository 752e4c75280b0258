package jsonschema

import (
	"sort"
	"strings"
	"sync"
)

// resolver produces, for a dialect and a concrete set of schema keys, the
// stable topological order in which those keywords must be compiled and
// evaluated so that every annotation-reading keyword runs after the
// annotation-writing siblings it depends on. Grounded on the teacher's
// fixed sequential order in validate.go (type/enum/const, then allOf/anyOf/
// oneOf/not, then if/then/else, then array group, ...) — generalized into a
// real topological sort driven by catalog.go's dependency sets, since the
// dialect resolver must additionally vary per draft.
type resolver struct {
	mu    sync.Mutex
	cache map[string][]string
}

func newResolver() *resolver {
	return &resolver{cache: make(map[string][]string)}
}

// order returns the keywords of present (filtered to the ones active in d,
// deduplicated) sorted so each keyword follows all its dependencies, ties
// broken lexicographically. The result is memoized on (draft, key-set).
func (r *resolver) order(d *dialect, present []string) []string {
	cacheKey := string(d.draft) + "|" + strings.Join(sortedCopy(present), ",")

	r.mu.Lock()
	if cached, ok := r.cache[cacheKey]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	active := dialectCatalog(d)
	activeNames := make(map[string]bool, len(active))
	deps := make(map[string][]string, len(active))
	for _, e := range active {
		activeNames[e.keyword] = true
		deps[e.keyword] = e.dependsOn
	}

	presentSet := make(map[string]bool, len(present))
	var keys []string
	for _, k := range present {
		if activeNames[k] && !presentSet[k] {
			presentSet[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	ordered := topoSort(keys, deps, presentSet)

	r.mu.Lock()
	r.cache[cacheKey] = ordered
	r.mu.Unlock()
	return ordered
}

// topoSort performs a stable topological sort over keys using Kahn's
// algorithm: dependency edges not present in the key set are ignored (a
// keyword may depend on a sibling that simply isn't present in this
// schema object), and among keywords with no remaining unsatisfied
// dependency, the lexicographically smallest is emitted next, which is
// exactly the catalog's own tie-break order since keys arrives sorted.
func topoSort(keys []string, deps map[string][]string, present map[string]bool) []string {
	indegree := make(map[string]int, len(keys))
	dependents := make(map[string][]string)
	for _, k := range keys {
		indegree[k] = 0
	}
	for _, k := range keys {
		for _, dep := range deps[k] {
			if !present[dep] {
				continue
			}
			indegree[k]++
			dependents[dep] = append(dependents[dep], k)
		}
	}

	var ready []string
	for _, k := range keys {
		if indegree[k] == 0 {
			ready = append(ready, k)
		}
	}
	sort.Strings(ready)

	var ordered []string
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		ordered = append(ordered, next)

		var newlyReady []string
		for _, d := range dependents[next] {
			indegree[d]--
			if indegree[d] == 0 {
				newlyReady = append(newlyReady, d)
			}
		}
		sort.Strings(newlyReady)
		ready = mergeSorted(ready, newlyReady)
	}
	// Any remaining keys (a dependency cycle in the catalog itself, which
	// should never happen for a hand-authored table) are appended in
	// lexicographic order rather than dropped, so compilation never loses
	// a keyword silently.
	if len(ordered) < len(keys) {
		seen := make(map[string]bool, len(ordered))
		for _, k := range ordered {
			seen[k] = true
		}
		for _, k := range keys {
			if !seen[k] {
				ordered = append(ordered, k)
			}
		}
	}
	return ordered
}

func mergeSorted(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	out := append(a, b...)
	sort.Strings(out)
	return out
}

func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
