package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrTestNotFound   = errors.New("test not found")
	ErrInvalidAnswers = errors.New("invalid answers")
	ErrRetakeTooSoon  = errors.New("test can only be retaken one month after the last submission")
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]TestSummary, error)
	Get(testID string) (*Test, error)
	Submit(ctx context.Context, userID uuid.UUID, testID string, dto SubmitAnswersDTO) (*SubmissionResult, error)
	Submissions(ctx context.Context, userID uuid.UUID) ([]Submission, error)
}

type service struct {
	repo SubmissionRepository
	now  util.Clock
}

func NewService(repo SubmissionRepository, now util.Clock) Service {
	return &service{repo: repo, now: now}
}

// Catalogue returns the available tests in display order.
func Catalogue() []Test {
	return catalogue
}

func Lookup(testID string) (*Test, bool) {
	for i := range catalogue {
		if catalogue[i].ID == testID {
			return &catalogue[i], true
		}
	}
	return nil, false
}

func (s *service) Get(testID string) (*Test, error) {
	t, ok := Lookup(testID)
	if !ok {
		return nil, ErrTestNotFound
	}
	return t, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]TestSummary, error) {
	submissions, err := s.Submissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summaries := make([]TestSummary, 0, len(catalogue))
	for _, t := range catalogue {
		summaries = append(summaries, TestSummary{
			ID:             t.ID,
			Title:          t.Title,
			Archetypes:     t.Archetypes,
			QuestionCount:  len(t.Questions),
			CanRetake:      CanRetake(submissions, t.ID, now),
			LastSubmission: latestFor(submissions, t.ID),
		})
	}
	return summaries, nil
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, testID string, dto SubmitAnswersDTO) (*SubmissionResult, error) {
	log := config.WithContext(ctx).WithField("test_id", testID)

	t, err := s.Get(testID)
	if err != nil {
		return nil, err
	}
	if len(dto.Answers) != len(t.Questions) {
		return nil, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidAnswers, len(t.Questions), len(dto.Answers))
	}

	existing, err := s.Submissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !CanRetake(existing, testID, s.now()) {
		log.Warn("Test retake attempted before cooldown")
		return nil, ErrRetakeTooSoon
	}

	session := NewSession(t)
	for _, choice := range dto.Answers {
		if err := session.Answer(choice); err != nil {
			return nil, err
		}
	}
	detail, ok := session.Result()
	if !ok {
		return nil, fmt.Errorf("%w: no result for test %s", ErrInvalidAnswers, testID)
	}

	sub := &Submission{
		ID:              uuid.New(),
		TestID:          testID,
		UserID:          userID,
		ResultArchetype: detail.Archetype,
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to save test submission")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"submission_id": sub.ID,
		"archetype":     sub.ResultArchetype,
	}).Info("Test submitted")

	return &SubmissionResult{
		Submission:     sub,
		ArchetypeLabel: detail.Archetype.Label(),
		Result:         detail,
	}, nil
}

func (s *service) Submissions(ctx context.Context, userID uuid.UUID) ([]Submission, error) {
	submissions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list test submissions")
		return nil, err
	}
	return submissions, nil
}
