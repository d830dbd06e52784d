package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/assessment"
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/store"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

var fixedNow = time.Date(2024, time.May, 10, 9, 0, 0, 0, util.Location())

func newMemory(t *testing.T) *store.Memory {
	t.Helper()
	return store.NewMemory(util.FixedClock(fixedNow))
}

func TestMemorySeedsDemoUser(t *testing.T) {
	m := newMemory(t)
	ctx := context.Background()

	u, err := m.Users().FindByEmail(ctx, "TESTE@mente-viva.com")
	require.NoError(t, err)
	assert.Equal(t, store.DemoUserID, u.ID)
	assert.Equal(t, "Usuário Teste", u.FullName)

	require.NoError(t, m.Users().Create(ctx, &user.User{ID: uuid.New(), Email: "other@example.com"}))
	m.Reset()
	_, err = m.Users().FindByEmail(ctx, "other@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMemoryUsers(t *testing.T) {
	m := newMemory(t)
	ctx := context.Background()

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := m.Users().Create(ctx, &user.User{ID: uuid.New(), Email: "Teste@Mente-Viva.com"})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyRegistered)
	})

	t.Run("update unknown user fails", func(t *testing.T) {
		err := m.Users().Update(ctx, &user.User{ID: uuid.New()})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		u, err := m.Users().FindByID(ctx, store.DemoUserID)
		require.NoError(t, err)
		u.FullName = "changed"

		again, err := m.Users().FindByID(ctx, store.DemoUserID)
		require.NoError(t, err)
		assert.Equal(t, "Usuário Teste", again.FullName)
	})
}

func addHabit(t *testing.T, m *store.Memory, userID uuid.UUID) habit.Habit {
	t.Helper()
	h := habit.Habit{ID: uuid.New(), UserID: userID, Name: "Ler", DaysPerWeek: 7, TimesPerDay: 1, DurationDays: 30}
	require.NoError(t, m.Habits().Create(context.Background(), &h))
	return h
}

func addCheckin(t *testing.T, m *store.Memory, habitID uuid.UUID) checkin.Checkin {
	t.Helper()
	c := checkin.Checkin{ID: uuid.New(), HabitID: habitID, ExecutionStatus: checkin.ExecutionCompleted}
	require.NoError(t, m.Checkins().Create(context.Background(), &c))
	return c
}

func TestMemoryDeleteHabitCascades(t *testing.T) {
	m := newMemory(t)
	ctx := context.Background()

	doomed := addHabit(t, m, store.DemoUserID)
	other := addHabit(t, m, uuid.New())
	addCheckin(t, m, doomed.ID)
	addCheckin(t, m, doomed.ID)
	kept := addCheckin(t, m, other.ID)

	require.NoError(t, m.Habits().Delete(ctx, doomed.ID, store.DemoUserID))

	habits, err := m.Habits().ListByUser(ctx, store.DemoUserID)
	require.NoError(t, err)
	assert.Empty(t, habits)

	gone, err := m.Checkins().ListByHabit(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, gone)

	left, err := m.Checkins().ListByHabit(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)
}

func TestMemoryDeleteHabitRequiresOwner(t *testing.T) {
	m := newMemory(t)
	h := addHabit(t, m, store.DemoUserID)

	err := m.Habits().Delete(context.Background(), h.ID, uuid.New())
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)

	err = m.Habits().Delete(context.Background(), uuid.New(), store.DemoUserID)
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)
}

func TestMemoryCheckinsAreStampedAndOrdered(t *testing.T) {
	m := newMemory(t)
	h := addHabit(t, m, store.DemoUserID)

	first := addCheckin(t, m, h.ID)
	second := addCheckin(t, m, h.ID)
	assert.True(t, first.CheckinDate.Equal(fixedNow))

	list, err := m.Checkins().ListByHabit(context.Background(), h.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestMemorySaveSubmissionSupersedes(t *testing.T) {
	m := newMemory(t)
	ctx := context.Background()
	repo := m.Submissions()

	require.NoError(t, repo.Save(ctx, &assessment.Submission{ID: uuid.New(), UserID: store.DemoUserID, TestID: "autossabotagem", ResultArchetype: assessment.ArchetypeShadow}))
	require.NoError(t, repo.Save(ctx, &assessment.Submission{ID: uuid.New(), UserID: store.DemoUserID, TestID: "sensibilidade-recompensa", ResultArchetype: assessment.ArchetypeFire}))
	require.NoError(t, repo.Save(ctx, &assessment.Submission{ID: uuid.New(), UserID: store.DemoUserID, TestID: "autossabotagem", ResultArchetype: assessment.ArchetypeBuilder}))

	subs, err := repo.ListByUser(ctx, store.DemoUserID)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	var matches []assessment.Submission
	for _, s := range subs {
		if s.TestID == "autossabotagem" {
			matches = append(matches, s)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, assessment.ArchetypeBuilder, matches[0].ResultArchetype)
	assert.True(t, matches[0].SubmissionDate.Equal(fixedNow))
}
