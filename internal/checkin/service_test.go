package checkin_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/store"
)

func dto(status checkin.ExecutionStatus) checkin.CreateCheckinDTO {
	return checkin.CreateCheckinDTO{
		ExecutionStatus:  status,
		DifficultyMoment: checkin.DifficultyNone,
		SabotageType:     checkin.SabotageNone,
		MotivationType:   checkin.MotivationNotApplicable,
		EnergyLevel:      checkin.EnergyNotApplicable,
		NextDayPlan:      checkin.PlanRepeat,
	}
}

func TestNormalize(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		d := dto(checkin.ExecutionCompleted)
		d.DifficultyMoment = checkin.DifficultyNight
		d.Normalize()
		assert.Equal(t, checkin.DifficultyNone, d.DifficultyMoment)
		assert.Equal(t, checkin.MotivationGrowth, d.MotivationType)
		assert.Equal(t, checkin.EnergySame, d.EnergyLevel)
	})

	t.Run("missed", func(t *testing.T) {
		d := dto(checkin.ExecutionMissed)
		d.MotivationType = checkin.MotivationJoy
		d.EnergyLevel = checkin.EnergyBetter
		d.Normalize()
		assert.Equal(t, checkin.DifficultyMorning, d.DifficultyMoment)
		assert.Equal(t, checkin.MotivationNotApplicable, d.MotivationType)
		assert.Equal(t, checkin.EnergyNotApplicable, d.EnergyLevel)
	})

	t.Run("partial keeps chosen values", func(t *testing.T) {
		d := dto(checkin.ExecutionPartial)
		d.DifficultyMoment = checkin.DifficultyAfternoon
		d.MotivationType = checkin.MotivationSupport
		d.Normalize()
		assert.Equal(t, checkin.DifficultyAfternoon, d.DifficultyMoment)
		assert.Equal(t, checkin.MotivationSupport, d.MotivationType)
		assert.Equal(t, checkin.EnergySame, d.EnergyLevel)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := checkin.NewService(store.NewMemory(nil).Checkins())
	habitID := uuid.New()

	d := dto(checkin.ExecutionCompleted)
	d.Learnings = "  <b>Acordei</b> cedo  "
	c, err := svc.Create(ctx, habitID, d)
	require.NoError(t, err)
	assert.Equal(t, "Acordei cedo", c.Learnings)
	assert.False(t, c.CheckinDate.IsZero())

	list, err := svc.List(ctx, habitID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	t.Run("unknown enum", func(t *testing.T) {
		bad := dto(checkin.ExecutionCompleted)
		bad.SabotageType = "LAZINESS"
		_, err := svc.Create(ctx, habitID, bad)
		assert.ErrorIs(t, err, checkin.ErrInvalidCheckin)
	})

	t.Run("learnings keep quotes and ampersands", func(t *testing.T) {
		d := dto(checkin.ExecutionPartial)
		d.Learnings = `Eu & minha irmã, "juntas", D'Ávila 5 < 6`
		c, err := svc.Create(ctx, habitID, d)
		require.NoError(t, err)
		assert.Equal(t, `Eu & minha irmã, "juntas", D'Ávila 5 < 6`, c.Learnings)
	})

	t.Run("length counts characters", func(t *testing.T) {
		accented := dto(checkin.ExecutionCompleted)
		accented.Learnings = strings.Repeat("á", 2000)
		_, err := svc.Create(ctx, habitID, accented)
		require.NoError(t, err)

		quoted := dto(checkin.ExecutionCompleted)
		quoted.Learnings = strings.Repeat(`"`, 2000)
		_, err = svc.Create(ctx, habitID, quoted)
		require.NoError(t, err)
	})

	t.Run("learnings too long", func(t *testing.T) {
		long := dto(checkin.ExecutionCompleted)
		long.Learnings = strings.Repeat("a", 2001)
		_, err := svc.Create(ctx, habitID, long)
		assert.ErrorIs(t, err, checkin.ErrInvalidCheckin)
	})
}
