package search

import "strings"

// Relevance weights. These constants are a fixed compatibility contract with
// the stored relevance expectations of existing module corpora; do not tune.
const (
	weightCategory = 0.3
	weightDomain   = 0.2
	weightTokens   = 0.5
)

// Score rates how well a candidate matches the keyword bag, in [0,1]:
//
//   - +0.3 when the candidate's category equals the top detected category
//   - +0.2 for each detected domain term found in the candidate's
//     name/description/keywords
//   - +0.5 × (matched raw tokens / total raw tokens)
//
// The sum is capped at 1.0. A score of 0 means "no relationship at all";
// callers exclude such candidates from results entirely.
func Score(c Candidate, bag KeywordBag) float64 {
	text := c.searchText()
	score := 0.0

	if len(bag.Categories) > 0 && c.Category == bag.Categories[0].Category {
		score += weightCategory
	}

	for _, d := range bag.Domains {
		if strings.Contains(text, d) {
			score += weightDomain
		}
	}

	if total := len(bag.RawTokens); total > 0 {
		matched := 0
		for _, tok := range bag.RawTokens {
			if strings.Contains(text, tok) {
				matched++
			}
		}
		score += weightTokens * float64(matched) / float64(total)
	}

	if score > 1 {
		score = 1
	}
	return score
}
