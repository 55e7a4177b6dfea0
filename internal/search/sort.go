package search

import "sort"

// sortByScore orders scored candidates descending by score. The sort is
// stable: candidates with equal scores keep index-build order, which is what
// makes suggestion output reproducible.
func sortByScore(matches []scoredCandidate) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
}
