package assessment

import (
	"context"

	"github.com/google/uuid"
)

type SubmissionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Submission, error)
	// Save removes any earlier submission for the same user and test, then
	// stores s with SubmissionDate stamped by the store's clock.
	Save(ctx context.Context, s *Submission) error
}
