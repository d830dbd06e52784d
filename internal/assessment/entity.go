package assessment

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	Text      string    `json:"text"`
	Archetype Archetype `json:"archetype"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Answers []Answer `json:"answers"`
}

type ResultDetail struct {
	Archetype        Archetype `json:"archetype"`
	BehaviorPattern  string    `json:"behavior_pattern"`
	HabitImpact      string    `json:"habit_impact"`
	InterventionTips string    `json:"intervention_tips"`
}

type Test struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Archetypes []Archetype    `json:"archetypes"`
	Questions  []Question     `json:"questions"`
	Results    []ResultDetail `json:"results"`
}

func (t *Test) Result(a Archetype) (*ResultDetail, bool) {
	for i := range t.Results {
		if t.Results[i].Archetype == a {
			return &t.Results[i], true
		}
	}
	return nil, false
}

// Submission is the latest result a user got on a test. A new submission
// for the same test replaces the previous one.
type Submission struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestID          string    `gorm:"type:text;not null;uniqueIndex:idx_submission_user_test" json:"test_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_user_test" json:"user_id"`
	ResultArchetype Archetype `gorm:"type:text;not null" json:"result_archetype"`
	SubmissionDate  time.Time `gorm:"not null" json:"submission_date"`
}

func (Submission) TableName() string {
	return "test_submissions"
}
