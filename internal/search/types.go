package search

import "strings"

// Candidate types, matching the index collections they come from.
const (
	TypeModule    = "module"
	TypeComponent = "component"
	TypeHook      = "hook"
	TypeService   = "service"
)

// CategoryMatch is one detected category with its supporting patterns.
// Confidence is matchedPatterns / totalPatternsForCategory.
type CategoryMatch struct {
	Category        string   `json:"category"`
	MatchedPatterns []string `json:"matchedPatterns"`
	Confidence      float64  `json:"confidence"`
}

// ActionMatch is one detected action intent (create/read/update/...).
type ActionMatch struct {
	Action          string   `json:"action"`
	MatchedPatterns []string `json:"matchedPatterns"`
}

// KeywordBag is the transient classification of one free-text query.
type KeywordBag struct {
	Categories []CategoryMatch `json:"categories"`
	Actions    []ActionMatch   `json:"actions"`
	Domains    []string        `json:"domains"`
	RawTokens  []string        `json:"rawTokens"`
}

// Empty reports whether the bag carries no signal at all.
func (b KeywordBag) Empty() bool {
	return len(b.Categories) == 0 && len(b.Actions) == 0 && len(b.Domains) == 0 && len(b.RawTokens) == 0
}

// Candidate is any index entry the ranker can score: a whole module or one of
// its exported components/hooks/services.
type Candidate struct {
	Type        string
	Name        string
	Module      string
	Category    string
	Path        string
	Description string
	Keywords    []string
}

// searchText returns the normalized blob domain terms and raw tokens are
// matched against.
func (c Candidate) searchText() string {
	return Normalize(strings.Join([]string{c.Name, c.Description, strings.Join(c.Keywords, " ")}, "\n"))
}

// Recommendation is one ranked, user-facing suggestion.
type Recommendation struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Module       string `json:"module"`
	Category     string `json:"category"`
	Relevance    int    `json:"relevance"`
	Description  string `json:"description,omitempty"`
	UsageSnippet string `json:"usageSnippet"`
}

// Suggestion is the result of one context query.
type Suggestion struct {
	Context          string           `json:"context"`
	DetectedCategory string           `json:"detectedCategory"`
	Confidence       float64          `json:"confidence"`
	Keywords         KeywordBag       `json:"keywords"`
	Recommendations  []Recommendation `json:"recommendations"`
}

// Task decision outcomes, keyed off the top recommendation's relevance.
const (
	DecisionReuse  = "reuse"
	DecisionExtend = "extend"
	DecisionCreate = "create"
)

// TaskAnalysis is the result of a natural-language task query: a suggestion
// plus a reuse/extend/create recommendation.
type TaskAnalysis struct {
	Suggestion
	Decision       string `json:"decision"`
	Reason         string `json:"reason"`
	TargetCategory string `json:"targetCategory,omitempty"`
}
