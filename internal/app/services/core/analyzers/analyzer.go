// Package analyzers implements the scoring engine for standardized
// psychological questionnaires. Each exam type registers a Scorer under its
// canonical name; scorers are pure functions over the raw item answers and are
// safe to invoke concurrently.
package analyzers

import (
	"strings"
)

// Answers holds raw item answers indexed by item position. A nil entry means
// the item was left unanswered; each scorer applies its own default policy.
type Answers []*int

// Notice is a non-fatal data-quality finding raised while scoring, such as a
// missing item that was defaulted. The caller decides whether to log it.
type Notice struct {
	Item    int
	Message string
}

// Domain is the static definition of a clinical sub-scale: the item indices it
// covers and the maximum score those items can contribute.
type Domain struct {
	Name     string `json:"name"`
	Items    []int  `json:"items"`
	MaxScore int    `json:"max_score"`
}

// DomainScore is a Domain evaluated against one result.
type DomainScore struct {
	Domain
	Score    int    `json:"score"`
	Severity string `json:"severity"`
}

// Scored is the outcome of scoring one raw result.
type Scored struct {
	TotalScore     int
	Index          *float64
	Severity       string
	Interpretation string
	ItemScores     []int
	Domains        []DomainScore
}

type Scorer interface {
	// Name returns the canonical (already normalized) exam name.
	Name() string
	// ItemCount returns the number of items the exam defines.
	ItemCount() int
	// ScoreRange returns the inclusive bounds of the total score.
	ScoreRange() (min int, max int)
	// Domains returns the exam's fixed sub-scale definitions, in order.
	Domains() []Domain
	// Score computes the outcome for the given answers. Answers beyond
	// ItemCount are ignored; missing answers are defaulted per the exam's
	// policy and reported as notices. An answer outside the exam's allowed
	// range is an error and no outcome is produced.
	Score(answers Answers) (*Scored, []Notice, error)
}

// Registry resolves exam names to scorers. The set is populated at process
// start; resolution is a pure map lookup.
type Registry struct {
	scorers map[string]Scorer
}

func NewRegistry(scorers ...Scorer) *Registry {
	registry := &Registry{scorers: make(map[string]Scorer)}
	for _, scorer := range scorers {
		registry.Register(scorer)
	}
	return registry
}

// Default returns a registry with every built-in questionnaire scorer.
func Default() *Registry {
	return NewRegistry(NewPHQ9Scorer(), NewSDSScorer())
}

func (r *Registry) Register(scorer Scorer) {
	r.scorers[NormalizeExamName(scorer.Name())] = scorer
}

func (r *Registry) Resolve(examName string) (Scorer, bool) {
	scorer, ok := r.scorers[NormalizeExamName(examName)]
	return scorer, ok
}

// NormalizeExamName maps a display name to its registry key, so "PHQ-9" and
// "phq_9" resolve to the same scorer.
func NormalizeExamName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
