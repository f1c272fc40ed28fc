package models

import (
	"time"

	"psyexam-service/internal/pkg/dto/responses"
)

// AnalysisDomain is one scored sub-scale embedded in an analysis result.
type AnalysisDomain struct {
	Name     string `json:"name" bson:"name"`
	Items    []int  `json:"items" bson:"items"`
	Score    int    `json:"score" bson:"score"`
	MaxScore int    `json:"max_score" bson:"max_score"`
	Severity string `json:"severity" bson:"severity"`
}

// AnalysisDetails carries the per-item normalized scores and the domain
// breakdown. It is persisted as a JSON document alongside the scalar columns.
type AnalysisDetails struct {
	ItemScores     []int            `json:"item_scores" bson:"item_scores"`
	DomainAnalysis []AnalysisDomain `json:"domain_analysis" bson:"domain_analysis"`
}

// AnalysisResult is the scored outcome of one Result. At most one exists per
// result id, enforced by a unique constraint at the persistence boundary, and
// it is never mutated after creation.
type AnalysisResult struct {
	ID             string          `bson:"_id"`
	ResultID       string          `bson:"result_id"`
	PatientID      string          `bson:"patient_id"`
	ExamID         string          `bson:"exam_id"`
	TotalScore     int             `bson:"total_score"`
	SDSIndex       *float64        `bson:"sds_index,omitempty"`
	Severity       string          `bson:"severity"`
	Interpretation string          `bson:"interpretation"`
	Details        AnalysisDetails `bson:"details"`
	CreatedAt      time.Time       `bson:"created_at"`
}

func (a AnalysisResult) ConvertIntoResponse() responses.Analysis {
	domains := make([]responses.AnalysisDomain, 0, len(a.Details.DomainAnalysis))
	for _, domain := range a.Details.DomainAnalysis {
		domains = append(domains, responses.AnalysisDomain{
			Name:     domain.Name,
			Items:    domain.Items,
			Score:    domain.Score,
			MaxScore: domain.MaxScore,
			Severity: domain.Severity,
		})
	}
	return responses.Analysis{
		ID:             a.ID,
		ResultID:       a.ResultID,
		PatientID:      a.PatientID,
		ExamID:         a.ExamID,
		TotalScore:     a.TotalScore,
		SDSIndex:       a.SDSIndex,
		Severity:       a.Severity,
		Interpretation: a.Interpretation,
		ItemScores:     a.Details.ItemScores,
		DomainAnalysis: domains,
		CreatedAt:      a.CreatedAt,
	}
}
