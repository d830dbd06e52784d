package assessment

type SubmitAnswersDTO struct {
	// Answers holds the chosen answer position for each question, in order.
	Answers []int `json:"answers"`
}

type TestSummary struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Archetypes     []Archetype `json:"archetypes"`
	QuestionCount  int         `json:"question_count"`
	CanRetake      bool        `json:"can_retake"`
	LastSubmission *Submission `json:"last_submission,omitempty"`
}

type SubmissionResult struct {
	Submission     *Submission   `json:"submission"`
	ArchetypeLabel string        `json:"archetype_label"`
	Result         *ResultDetail `json:"result"`
}
