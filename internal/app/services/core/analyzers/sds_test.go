package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sdsAnswersForScores builds raw answers that score to the given effective
// item scores, undoing the reversal for positively worded items.
func sdsAnswersForScores(scores ...int) Answers {
	answers := make(Answers, len(scores))
	for item := range scores {
		raw := scores[item]
		if sdsReversedItems[item] {
			raw = 5 - raw
		}
		value := raw
		answers[item] = &value
	}
	return answers
}

func uniformScores(value int) []int {
	scores := make([]int, sdsItemCount)
	for i := range scores {
		scores[i] = value
	}
	return scores
}

func TestSDSScore(t *testing.T) {
	scorer := NewSDSScorer()

	t.Run("Reversed Items Score As Five Minus Raw", func(t *testing.T) {
		answers := make(Answers, sdsItemCount)
		for item := 0; item < sdsItemCount; item++ {
			value := 1
			answers[item] = &value
		}

		scored, notices, err := scorer.Score(answers)
		assert.NoError(t, err)
		assert.Empty(t, notices)
		// Twelve plain items stay 1, eight reversed items become 4.
		assert.Equal(t, 44, scored.TotalScore)
		assert.Equal(t, 4, scored.ItemScores[2])
		assert.Equal(t, 1, scored.ItemScores[0])
	})

	t.Run("Severity Boundaries", func(t *testing.T) {
		testCases := []struct {
			name         string
			total        int
			wantSeverity string
		}{
			{"score 20 is normal range", 20, SeverityNormalRange},
			{"score 49 is normal range", 49, SeverityNormalRange},
			{"score 50 is mild-to-moderate", 50, SeverityMildToModerate},
			{"score 59 is mild-to-moderate", 59, SeverityMildToModerate},
			{"score 60 is moderate-to-severe", 60, SeverityModerateToSevere},
			{"score 69 is moderate-to-severe", 69, SeverityModerateToSevere},
			{"score 70 is severe", 70, SeveritySevere},
			{"score 80 is severe", 80, SeveritySevere},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				scores := uniformScores(1)
				remaining := tc.total - sdsItemCount
				for i := 0; i < sdsItemCount && remaining > 0; i++ {
					bump := remaining
					if bump > 3 {
						bump = 3
					}
					scores[i] += bump
					remaining -= bump
				}

				scored, _, err := scorer.Score(sdsAnswersForScores(scores...))
				assert.NoError(t, err)
				assert.Equal(t, tc.total, scored.TotalScore)
				assert.Equal(t, tc.wantSeverity, scored.Severity)
			})
		}
	})

	t.Run("Index Is Total Over Eighty Times Hundred", func(t *testing.T) {
		scored, _, err := scorer.Score(sdsAnswersForScores(uniformScores(4)...))
		assert.NoError(t, err)
		assert.Equal(t, 80, scored.TotalScore)
		assert.NotNil(t, scored.Index)
		assert.InDelta(t, 100.0, *scored.Index, 0.001)

		scored, _, err = scorer.Score(sdsAnswersForScores(uniformScores(1)...))
		assert.NoError(t, err)
		assert.Equal(t, 20, scored.TotalScore)
		assert.InDelta(t, 25.0, *scored.Index, 0.001)
	})

	t.Run("Missing Answer Defaults To One Without Reversal", func(t *testing.T) {
		answers := sdsAnswersForScores(uniformScores(4)...)
		answers[7] = nil
		answers[2] = nil // reversed item

		scored, notices, err := scorer.Score(answers)
		assert.NoError(t, err)
		assert.Equal(t, 1, scored.ItemScores[7])
		assert.Equal(t, 1, scored.ItemScores[2])
		assert.Equal(t, 74, scored.TotalScore)
		assert.Len(t, notices, 2)
	})

	t.Run("Out Of Range Answer Fails", func(t *testing.T) {
		answers := sdsAnswersForScores(uniformScores(1)...)
		zero := 0
		answers[5] = &zero
		_, _, err := scorer.Score(answers)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "item 5")

		five := 5
		answers[5] = &five
		_, _, err = scorer.Score(answers)
		assert.Error(t, err)
	})

	t.Run("Domain Scores", func(t *testing.T) {
		scored, _, err := scorer.Score(sdsAnswersForScores(uniformScores(4)...))
		assert.NoError(t, err)
		assert.Len(t, scored.Domains, 3)

		byName := make(map[string]DomainScore)
		for _, domain := range scored.Domains {
			byName[domain.Name] = domain
		}

		assert.Equal(t, 24, byName["affective"].Score)
		assert.Equal(t, 32, byName["physiological"].Score)
		assert.Equal(t, 24, byName["psychological"].Score)
		for _, domain := range scored.Domains {
			assert.Equal(t, SeveritySevere, domain.Severity)
		}
	})

	t.Run("Interpretation Carries Total And Index", func(t *testing.T) {
		scored, _, err := scorer.Score(sdsAnswersForScores(uniformScores(4)...))
		assert.NoError(t, err)
		assert.Contains(t, scored.Interpretation, "The SDS total score is 80")
		assert.Contains(t, scored.Interpretation, "100.0")
	})
}
