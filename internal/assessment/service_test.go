package assessment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/assessment"
	"github.com/saulo-duarte/menteviva-api/internal/store"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

var now = time.Date(2024, time.July, 10, 12, 0, 0, 0, util.Location())

func TestCanRetake(t *testing.T) {
	assert.True(t, assessment.CanRetake(nil, "autossabotagem", now))

	subs := []assessment.Submission{{TestID: "autossabotagem", SubmissionDate: now}}
	assert.False(t, assessment.CanRetake(subs, "autossabotagem", now))
	assert.True(t, assessment.CanRetake(subs, "controle-executivo", now))

	subs[0].SubmissionDate = now.AddDate(0, 0, -31)
	assert.True(t, assessment.CanRetake(subs, "autossabotagem", now))

	subs[0].SubmissionDate = now.AddDate(0, 0, -20)
	assert.False(t, assessment.CanRetake(subs, "autossabotagem", now))
}

func TestServiceSubmit(t *testing.T) {
	current := now.AddDate(0, 0, -31)
	clock := func() time.Time { return current }
	mem := store.NewMemory(clock)
	svc := assessment.NewService(mem.Submissions(), clock)
	ctx := context.Background()
	userID := store.DemoUserID

	res, err := svc.Submit(ctx, userID, "controle-executivo", assessment.SubmitAnswersDTO{Answers: choose(10, 0)})
	require.NoError(t, err)
	assert.Equal(t, assessment.ArchetypeGuardian, res.Submission.ResultArchetype)
	assert.Equal(t, "Guardião da Disciplina", res.ArchetypeLabel)
	assert.NotEmpty(t, res.Result.InterventionTips)

	t.Run("retake blocked right after submitting", func(t *testing.T) {
		_, err := svc.Submit(ctx, userID, "controle-executivo", assessment.SubmitAnswersDTO{Answers: choose(10, 2)})
		assert.ErrorIs(t, err, assessment.ErrRetakeTooSoon)

		list, err := svc.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.False(t, list[0].CanRetake)
		require.NotNil(t, list[0].LastSubmission)
		assert.True(t, list[1].CanRetake)
		assert.Nil(t, list[1].LastSubmission)
	})

	t.Run("retake allowed after a month and supersedes", func(t *testing.T) {
		current = now

		res, err := svc.Submit(ctx, userID, "controle-executivo", assessment.SubmitAnswersDTO{Answers: choose(10, 2)})
		require.NoError(t, err)
		assert.Equal(t, assessment.ArchetypeWind, res.Submission.ResultArchetype)

		subs, err := svc.Submissions(ctx, userID)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, assessment.ArchetypeWind, subs[0].ResultArchetype)
	})

	t.Run("rejects unknown test and wrong answer count", func(t *testing.T) {
		_, err := svc.Submit(ctx, uuid.New(), "nope", assessment.SubmitAnswersDTO{Answers: choose(10, 0)})
		assert.ErrorIs(t, err, assessment.ErrTestNotFound)

		_, err = svc.Submit(ctx, uuid.New(), "autossabotagem", assessment.SubmitAnswersDTO{Answers: choose(9, 0)})
		assert.ErrorIs(t, err, assessment.ErrInvalidAnswers)

		_, err = svc.Submit(ctx, uuid.New(), "autossabotagem", assessment.SubmitAnswersDTO{Answers: choose(10, 5)})
		assert.ErrorIs(t, err, assessment.ErrInvalidAnswers)
	})
}
