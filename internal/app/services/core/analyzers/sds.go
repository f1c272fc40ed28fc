package analyzers

import (
	"fmt"
)

// SDS (Zung Self-Rating Depression Scale) measures depression severity over
// twenty items answered 1-4, for a total score of 20-80. The SDS index is the
// total score over the maximum (80) times 100. Eight items are worded
// positively and score-reversed before summation.
const (
	sdsName      = "sds"
	sdsItemCount = 20
	sdsAnswerMin = 1
	sdsAnswerMax = 4
	sdsScoreMax  = 80
)

const (
	SeverityNormalRange      = "normal range"
	SeverityMildToModerate   = "mild-to-moderate"
	SeverityModerateToSevere = "moderate-to-severe"
)

var sdsReversedItems = map[int]bool{
	2: true, 6: true, 11: true, 12: true, 14: true, 16: true, 17: true, 18: true,
}

var sdsDomains = []Domain{
	{Name: "affective", Items: []int{0, 3, 4, 7, 8, 9}, MaxScore: 24},
	{Name: "physiological", Items: []int{1, 2, 11, 12, 14, 16, 17, 18}, MaxScore: 32},
	{Name: "psychological", Items: []int{5, 6, 10, 13, 15, 19}, MaxScore: 24},
}

type sdsScorer struct{}

func NewSDSScorer() Scorer {
	return sdsScorer{}
}

func (sdsScorer) Name() string { return sdsName }

func (sdsScorer) ItemCount() int { return sdsItemCount }

func (sdsScorer) ScoreRange() (int, int) { return 20, sdsScoreMax }

func (sdsScorer) Domains() []Domain { return sdsDomains }

func (s sdsScorer) Score(answers Answers) (*Scored, []Notice, error) {
	itemScores := make([]int, sdsItemCount)
	var notices []Notice
	totalScore := 0

	for item := 0; item < sdsItemCount; item++ {
		var answer *int
		if item < len(answers) {
			answer = answers[item]
		}
		if answer == nil {
			// SDS has no zero-equivalent answer, so a missing item defaults
			// to the scale minimum. A defaulted item is never reversed.
			notices = append(notices, Notice{Item: item, Message: "answer missing, defaulted to 1"})
			itemScores[item] = sdsAnswerMin
			totalScore += sdsAnswerMin
			continue
		}
		if *answer < sdsAnswerMin || *answer > sdsAnswerMax {
			return nil, nil, fmt.Errorf("item %d answer %d outside allowed range [%d,%d]", item, *answer, sdsAnswerMin, sdsAnswerMax)
		}

		score := *answer
		if sdsReversedItems[item] {
			score = 5 - score
		}
		itemScores[item] = score
		totalScore += score
	}

	index := float64(totalScore) / float64(sdsScoreMax) * 100
	severity := sdsSeverity(totalScore)
	return &Scored{
		TotalScore:     totalScore,
		Index:          &index,
		Severity:       severity,
		Interpretation: sdsInterpretation(totalScore, index, severity),
		ItemScores:     itemScores,
		Domains:        scoreDomains(sdsDomains, itemScores, sdsDomainSeverity),
	}, notices, nil
}

// sdsSeverity bands the total score with strict upper bounds, so a score
// exactly at a boundary falls into the higher band (50 is mild-to-moderate).
func sdsSeverity(score int) string {
	switch {
	case score < 50:
		return SeverityNormalRange
	case score < 60:
		return SeverityMildToModerate
	case score < 70:
		return SeverityModerateToSevere
	default:
		return SeveritySevere
	}
}

func sdsInterpretation(score int, index float64, severity string) string {
	baseText := fmt.Sprintf("The SDS total score is %d with an SDS index of %.1f, indicating %s.", score, index, severity)
	switch {
	case score < 50:
		return baseText + " No clinically significant depressive symptoms are present at this time."
	case score < 60:
		return baseText + " Mild to moderate depressive symptoms are present; follow-up and psychological support are recommended."
	case score < 70:
		return baseText + " Moderate to severe depressive symptoms are present; professional intervention may be needed, consider counseling or pharmacotherapy."
	default:
		return baseText + " Severe depressive symptoms are present; specialist psychiatric evaluation and treatment are required without delay."
	}
}

// sdsDomainSeverity uses 60/70/80 percent thresholds, distinct from the PHQ-9
// domain banding.
func sdsDomainSeverity(percent float64) string {
	switch {
	case percent < 60:
		return SeverityNormalRange
	case percent < 70:
		return SeverityMildToModerate
	case percent < 80:
		return SeverityModerateToSevere
	default:
		return SeveritySevere
	}
}
