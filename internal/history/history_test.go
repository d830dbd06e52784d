package history_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/history"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

var now = time.Date(2024, time.March, 15, 20, 30, 0, 0, util.Location())

func entry(daysAgo int, status checkin.ExecutionStatus) checkin.Checkin {
	return checkin.Checkin{
		ID:               uuid.New(),
		CheckinDate:      util.DaysBefore(now, daysAgo),
		ExecutionStatus:  status,
		DifficultyMoment: checkin.DifficultyNone,
		SabotageType:     checkin.SabotageNone,
		MotivationType:   checkin.MotivationNotApplicable,
		EnergyLevel:      checkin.EnergySame,
		NextDayPlan:      checkin.PlanRepeat,
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name     string
		checkins []checkin.Checkin
		want     int
	}{
		{"empty history", nil, 0},
		{"only today completed", []checkin.Checkin{entry(0, checkin.ExecutionCompleted)}, 1},
		{
			"three consecutive completed days",
			[]checkin.Checkin{
				entry(2, checkin.ExecutionCompleted),
				entry(1, checkin.ExecutionCompleted),
				entry(0, checkin.ExecutionCompleted),
			},
			3,
		},
		{
			"day before yesterday missed",
			[]checkin.Checkin{
				entry(2, checkin.ExecutionMissed),
				entry(1, checkin.ExecutionCompleted),
				entry(0, checkin.ExecutionCompleted),
			},
			2,
		},
		{
			"gap breaks the run",
			[]checkin.Checkin{
				entry(3, checkin.ExecutionCompleted),
				entry(1, checkin.ExecutionCompleted),
				entry(0, checkin.ExecutionCompleted),
			},
			2,
		},
		{
			"newest is not today",
			[]checkin.Checkin{
				entry(2, checkin.ExecutionCompleted),
				entry(1, checkin.ExecutionCompleted),
			},
			0,
		},
		{
			"today partial",
			[]checkin.Checkin{
				entry(2, checkin.ExecutionCompleted),
				entry(1, checkin.ExecutionCompleted),
				entry(0, checkin.ExecutionPartial),
			},
			0,
		},
		{
			"insertion order does not matter",
			[]checkin.Checkin{
				entry(0, checkin.ExecutionCompleted),
				entry(2, checkin.ExecutionCompleted),
				entry(1, checkin.ExecutionCompleted),
			},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := history.Streak(tt.checkins, now)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestAlreadyCheckedInToday(t *testing.T) {
	assert.False(t, history.AlreadyCheckedInToday(nil, now))
	assert.True(t, history.AlreadyCheckedInToday([]checkin.Checkin{entry(1, checkin.ExecutionMissed), entry(0, checkin.ExecutionMissed)}, now))
	// Only the last added entry is looked at.
	assert.False(t, history.AlreadyCheckedInToday([]checkin.Checkin{entry(0, checkin.ExecutionMissed), entry(1, checkin.ExecutionMissed)}, now))
}

func TestRecentKeepsLastAdded(t *testing.T) {
	var all []checkin.Checkin
	for i := 9; i >= 0; i-- {
		all = append(all, entry(i, checkin.ExecutionCompleted))
	}

	recent := history.Recent(all, history.InsightWindow)
	require.Len(t, recent, history.InsightWindow)
	assert.Equal(t, all[3].ID, recent[0].ID)
	assert.Equal(t, all[9].ID, recent[6].ID)

	assert.Len(t, history.Recent(all[:2], history.InsightWindow), 2)
}

func TestNewest(t *testing.T) {
	a, b, c := entry(2, checkin.ExecutionCompleted), entry(0, checkin.ExecutionCompleted), entry(1, checkin.ExecutionCompleted)
	sorted := history.Newest([]checkin.Checkin{a, b, c})
	require.Len(t, sorted, 3)
	assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, []uuid.UUID{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestEnergySummary(t *testing.T) {
	better := entry(0, checkin.ExecutionCompleted)
	better.EnergyLevel = checkin.EnergyBetter
	worse := entry(1, checkin.ExecutionCompleted)
	worse.EnergyLevel = checkin.EnergyWorse

	assert.Equal(t, "Acompanhe sua energia após cada hábito.", history.EnergySummary(nil))
	assert.Equal(t, "Seus hábitos estão te deixando com mais energia!", history.EnergySummary([]checkin.Checkin{better, worse}))
	assert.Equal(t, "Seus hábitos estão te deixando com energia estável!", history.EnergySummary([]checkin.Checkin{better, worse, worse}))
}
