package reconcile

import (
	"sort"

	"github.com/agext/levenshtein"
)

// suggest returns up to limit candidates close to key, nearest first. A
// candidate qualifies when its edit distance is at most a third of the key
// length (minimum 2).
func suggest(key string, candidates []string, limit int) []string {
	if limit <= 0 || key == "" || len(candidates) == 0 {
		return nil
	}

	maxDistance := len(key) / 3
	if maxDistance < 2 {
		maxDistance = 2
	}

	type scored struct {
		value    string
		distance int
		position int
	}
	var matches []scored
	for i, candidate := range candidates {
		if candidate == "" || candidate == key {
			continue
		}
		d := levenshtein.Distance(key, candidate, nil)
		if d <= maxDistance {
			matches = append(matches, scored{value: candidate, distance: d, position: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].position < matches[j].position
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}
