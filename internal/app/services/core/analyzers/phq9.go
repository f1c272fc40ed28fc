package analyzers

import (
	"fmt"
)

// PHQ-9 (Patient Health Questionnaire-9) measures depression severity over
// nine items answered 0-3, for a total score of 0-27.
const (
	phq9Name      = "phq_9"
	phq9ItemCount = 9
	phq9AnswerMin = 0
	phq9AnswerMax = 3
)

const (
	SeverityNoneMinimal      = "none/minimal"
	SeverityMild             = "mild"
	SeverityModerate         = "moderate"
	SeverityModeratelySevere = "moderately severe"
	SeveritySevere           = "severe"
)

var phq9Domains = []Domain{
	{Name: "mood/affect", Items: []int{0, 1}, MaxScore: 6},
	{Name: "somatic", Items: []int{2, 3, 4}, MaxScore: 9},
	{Name: "cognitive", Items: []int{6, 7}, MaxScore: 6},
	{Name: "self-evaluation", Items: []int{5}, MaxScore: 3},
	{Name: "suicidality", Items: []int{8}, MaxScore: 3},
}

type phq9Scorer struct{}

func NewPHQ9Scorer() Scorer {
	return phq9Scorer{}
}

func (phq9Scorer) Name() string { return phq9Name }

func (phq9Scorer) ItemCount() int { return phq9ItemCount }

func (phq9Scorer) ScoreRange() (int, int) { return 0, 27 }

func (phq9Scorer) Domains() []Domain { return phq9Domains }

func (s phq9Scorer) Score(answers Answers) (*Scored, []Notice, error) {
	itemScores := make([]int, phq9ItemCount)
	var notices []Notice
	totalScore := 0

	for item := 0; item < phq9ItemCount; item++ {
		var answer *int
		if item < len(answers) {
			answer = answers[item]
		}
		if answer == nil {
			// Missing items count as 0; scoring proceeds.
			notices = append(notices, Notice{Item: item, Message: "answer missing, defaulted to 0"})
			itemScores[item] = 0
			continue
		}
		if *answer < phq9AnswerMin || *answer > phq9AnswerMax {
			return nil, nil, fmt.Errorf("item %d answer %d outside allowed range [%d,%d]", item, *answer, phq9AnswerMin, phq9AnswerMax)
		}
		itemScores[item] = *answer
		totalScore += *answer
	}

	severity := phq9Severity(totalScore)
	return &Scored{
		TotalScore:     totalScore,
		Severity:       severity,
		Interpretation: phq9Interpretation(totalScore, severity),
		ItemScores:     itemScores,
		Domains:        scoreDomains(phq9Domains, itemScores, phq9DomainSeverity),
	}, notices, nil
}

func phq9Severity(score int) string {
	switch {
	case score <= 4:
		return SeverityNoneMinimal
	case score <= 9:
		return SeverityMild
	case score <= 14:
		return SeverityModerate
	case score <= 19:
		return SeverityModeratelySevere
	default:
		return SeveritySevere
	}
}

func phq9Interpretation(score int, severity string) string {
	baseText := fmt.Sprintf("The PHQ-9 total score is %d, indicating %s depressive symptoms.", score, severity)
	switch {
	case score <= 4:
		return baseText + " No clinically significant depressive symptoms are present at this time."
	case score <= 9:
		return baseText + " Watchful waiting and reassessment over time are recommended."
	case score <= 14:
		return baseText + " A treatment plan should be considered; evaluate the need for counseling or pharmacotherapy."
	case score <= 19:
		return baseText + " Active treatment is recommended; consider starting pharmacotherapy or psychotherapy."
	default:
		return baseText + " Immediate treatment is required; consider combined pharmacotherapy and psychotherapy, and possibly inpatient care."
	}
}

// phq9DomainSeverity bands a sub-scale by the percentage of its own maximum.
// The comparisons are strict, so a domain exactly at 33% or 66% falls into the
// higher band.
func phq9DomainSeverity(percent float64) string {
	switch {
	case percent < 33:
		return SeverityMild
	case percent < 66:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

func scoreDomains(domains []Domain, itemScores []int, severity func(percent float64) string) []DomainScore {
	scored := make([]DomainScore, 0, len(domains))
	for _, domain := range domains {
		score := 0
		for _, item := range domain.Items {
			if item < len(itemScores) {
				score += itemScores[item]
			}
		}
		percent := float64(score) / float64(domain.MaxScore) * 100
		scored = append(scored, DomainScore{
			Domain:   domain,
			Score:    score,
			Severity: severity(percent),
		})
	}
	return scored
}
