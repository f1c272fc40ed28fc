package models

import "time"

// Exam is immutable reference data for one questionnaire type. Name is the
// canonical dispatch key for the analyzer registry.
type Exam struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Cutoff    *int      `bson:"cutoff,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
