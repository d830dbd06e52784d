package habit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/store"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

var now = time.Date(2024, time.August, 5, 10, 0, 0, 0, util.Location())

func strPtr(s string) *string { return &s }

func validHabit() habit.CreateHabitDTO {
	return habit.CreateHabitDTO{
		Name:         "  Ler 10 páginas ",
		DaysPerWeek:  5,
		TimesPerDay:  1,
		DurationDays: 30,
		ReminderTime: strPtr("07:30"),
		ReminderDays: []int{5, 1, 3, 1},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := habit.NewService(store.NewMemory(util.FixedClock(now)).Habits(), util.FixedClock(now))

	h, err := svc.Create(ctx, store.DemoUserID, validHabit())
	require.NoError(t, err)
	assert.Equal(t, "Ler 10 páginas", h.Name)
	assert.Equal(t, []int{1, 3, 5}, []int(h.ReminderDays))
	assert.True(t, h.StartDate.Equal(now))

	active, err := svc.Active(ctx, store.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, active.ID)

	_, err = svc.Create(ctx, store.DemoUserID, validHabit())
	assert.ErrorIs(t, err, habit.ErrHabitAlreadyActive)
}

func TestCreateValidation(t *testing.T) {
	tests := map[string]func(*habit.CreateHabitDTO){
		"blank name":         func(d *habit.CreateHabitDTO) { d.Name = "   " },
		"zero days per week": func(d *habit.CreateHabitDTO) { d.DaysPerWeek = 0 },
		"eight days":         func(d *habit.CreateHabitDTO) { d.DaysPerWeek = 8 },
		"zero times per day": func(d *habit.CreateHabitDTO) { d.TimesPerDay = 0 },
		"odd duration":       func(d *habit.CreateHabitDTO) { d.DurationDays = 21 },
		"bad reminder time":  func(d *habit.CreateHabitDTO) { d.ReminderTime = strPtr("25:00") },
		"bad reminder day":   func(d *habit.CreateHabitDTO) { d.ReminderDays = []int{7} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			svc := habit.NewService(store.NewMemory(nil).Habits(), util.FixedClock(now))
			dto := validHabit()
			mutate(&dto)
			_, err := svc.Create(context.Background(), store.DemoUserID, dto)
			assert.ErrorIs(t, err, habit.ErrInvalidHabit)
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := habit.NewService(store.NewMemory(nil).Habits(), util.FixedClock(now))

	assert.ErrorIs(t, svc.Reset(ctx, store.DemoUserID), habit.ErrHabitNotFound)

	_, err := svc.Create(ctx, store.DemoUserID, validHabit())
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, store.DemoUserID))

	_, err = svc.Active(ctx, store.DemoUserID)
	assert.ErrorIs(t, err, habit.ErrHabitNotFound)
}

func TestReminderLabel(t *testing.T) {
	tests := []struct {
		days []int
		want string
	}{
		{[]int{0, 1, 2, 3, 4, 5, 6}, "Todos os dias"},
		{[]int{5, 4, 3, 2, 1}, "Dias úteis"},
		{[]int{6, 0}, "Fins de semana"},
		{[]int{3, 1}, "Seg, Qua"},
		{nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, habit.ReminderLabel(tt.days), "%v", tt.days)
	}
}
