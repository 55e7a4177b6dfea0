package search

import (
	"fmt"
	"math"
	"strings"

	"github.com/dfalcao/modscout/internal/search/index"
)

// MaxRecommendations caps how many recommendations a suggestion carries.
const MaxRecommendations = 10

// Relevance breakpoints for the task decision policy. Fixed contract.
const (
	reuseThreshold  = 80
	extendThreshold = 60
)

// Suggest answers an ad-hoc context query: extract keywords, score every
// module/component/hook/service in the index, and return the top matches.
//
// limit further restricts the result below the fixed cap of 10; pass 0 for
// the full cap.
func Suggest(idx *index.Index, contextText string, limit int) Suggestion {
	bag := Extract(contextText)

	s := Suggestion{
		Context:          strings.TrimSpace(contextText),
		DetectedCategory: "unknown",
		Keywords:         bag,
		Recommendations:  []Recommendation{},
	}
	if len(bag.Categories) > 0 {
		s.DetectedCategory = bag.Categories[0].Category
		s.Confidence = bag.Categories[0].Confidence
	}
	if bag.Empty() {
		return s
	}

	var matches []scoredCandidate
	for _, c := range collectCandidates(idx) {
		if sc := Score(c, bag); sc > 0 {
			matches = append(matches, scoredCandidate{c, sc})
		}
	}
	sortByScore(matches)

	if limit <= 0 || limit > MaxRecommendations {
		limit = MaxRecommendations
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	for _, m := range matches {
		s.Recommendations = append(s.Recommendations, Recommendation{
			Type:         m.c.Type,
			Name:         m.c.Name,
			Module:       m.c.Module,
			Category:     m.c.Category,
			Relevance:    int(math.Round(m.score * 100)),
			Description:  m.c.Description,
			UsageSnippet: usageSnippet(m.c),
		})
	}
	return s
}

// SuggestFromTask runs Suggest over a natural-language task description and
// applies the three-band decision policy on the top recommendation.
func SuggestFromTask(idx *index.Index, taskDescription string, limit int) TaskAnalysis {
	s := Suggest(idx, taskDescription, limit)
	a := TaskAnalysis{Suggestion: s}

	top := 0
	if len(s.Recommendations) > 0 {
		top = s.Recommendations[0].Relevance
	}
	switch {
	case top >= reuseThreshold:
		a.Decision = DecisionReuse
		a.Reason = fmt.Sprintf("reuse %s %q — high confidence match (%d%%)",
			s.Recommendations[0].Type, s.Recommendations[0].Name, top)
	case top >= extendThreshold:
		a.Decision = DecisionExtend
		a.Reason = fmt.Sprintf("consider extending %s %q (%d%%) or create a new module",
			s.Recommendations[0].Type, s.Recommendations[0].Name, top)
	default:
		a.Decision = DecisionCreate
		a.TargetCategory = s.DetectedCategory
		a.Reason = "no close match in the registry — create a new module"
	}
	return a
}

// scoredCandidate pairs a candidate with its relevance score while ranking.
type scoredCandidate struct {
	c     Candidate
	score float64
}

// collectCandidates flattens the index into one typed candidate list.
// Modules come first in sorted-id order (the index build order), then the
// flat export collections in their stored order.
func collectCandidates(idx *index.Index) []Candidate {
	var out []Candidate
	for _, id := range idx.ModuleIDs() {
		m := idx.Modules[id]
		out = append(out, Candidate{
			Type:        TypeModule,
			Name:        m.Name,
			Module:      m.ID,
			Category:    m.Category,
			Path:        m.Path,
			Description: m.Description,
			Keywords:    m.Keywords,
		})
	}
	for _, set := range []struct {
		typ     string
		entries []index.ExportEntry
	}{
		{TypeComponent, idx.Components},
		{TypeHook, idx.Hooks},
		{TypeService, idx.Services},
	} {
		for _, e := range set.entries {
			out = append(out, Candidate{
				Type:        set.typ,
				Name:        e.Name,
				Module:      e.Module,
				Category:    e.Category,
				Path:        e.Path,
				Description: e.Description,
				Keywords:    e.Keywords,
			})
		}
	}
	return out
}

// usageSnippet synthesizes the usage hint attached to a recommendation: an
// import statement for exported symbols, a path pointer for whole modules.
func usageSnippet(c Candidate) string {
	if c.Type == TypeModule {
		return fmt.Sprintf("see %s", c.Path)
	}
	return fmt.Sprintf("import { %s } from '%s'", c.Name, c.Path)
}
