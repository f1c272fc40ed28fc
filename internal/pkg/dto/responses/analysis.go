package responses

import "time"

type AnalysisDomain struct {
	Name     string `json:"name"`
	Items    []int  `json:"items"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Severity string `json:"severity"`
}

type Analysis struct {
	ID             string           `json:"id"`
	ResultID       string           `json:"result_id"`
	PatientID      string           `json:"patient_id"`
	ExamID         string           `json:"exam_id"`
	ExamName       string           `json:"exam_name,omitempty"`
	TotalScore     int              `json:"total_score"`
	SDSIndex       *float64         `json:"sds_index,omitempty"`
	Severity       string           `json:"severity"`
	Interpretation string           `json:"interpretation"`
	ItemScores     []int            `json:"item_scores"`
	DomainAnalysis []AnalysisDomain `json:"domain_analysis"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ExamDomain struct {
	Name     string `json:"name"`
	Items    []int  `json:"items"`
	MaxScore int    `json:"max_score"`
}
