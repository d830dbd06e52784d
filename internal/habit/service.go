package habit

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidHabit       = errors.New("invalid habit")
	ErrHabitAlreadyActive = errors.New("user already has an active habit")
)

var reminderTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateHabitDTO) (*Habit, error)
	Active(ctx context.Context, userID uuid.UUID) (*Habit, error)
	Reset(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo Repository
	now  util.Clock
}

func NewService(repo Repository, now util.Clock) Service {
	return &service{repo: repo, now: now}
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidHabit, reason)
}

func validate(dto *CreateHabitDTO) error {
	dto.Name = strings.TrimSpace(dto.Name)
	if dto.Name == "" {
		return invalid("name is required")
	}
	if dto.DaysPerWeek < 1 || dto.DaysPerWeek > 7 {
		return invalid("days_per_week must be between 1 and 7")
	}
	if dto.TimesPerDay < 1 {
		return invalid("times_per_day must be at least 1")
	}
	if !IsValidDuration(dto.DurationDays) {
		return invalid("duration_days must be one of 7, 10, 15 or 30")
	}
	if dto.ReminderTime != nil {
		t := strings.TrimSpace(*dto.ReminderTime)
		if t == "" {
			dto.ReminderTime = nil
		} else if !reminderTimeRegex.MatchString(t) {
			return invalid("reminder_time must be HH:MM")
		} else {
			dto.ReminderTime = &t
		}
	}

	seen := make(map[int]bool, len(dto.ReminderDays))
	days := make([]int, 0, len(dto.ReminderDays))
	for _, d := range dto.ReminderDays {
		if d < 0 || d > 6 {
			return invalid("reminder_days must be between 0 (Sunday) and 6 (Saturday)")
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Ints(days)
	dto.ReminderDays = days
	return nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateHabitDTO) (*Habit, error) {
	log := config.WithContext(ctx)

	if err := validate(&dto); err != nil {
		log.WithError(err).Warn("Rejected habit creation")
		return nil, err
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrHabitAlreadyActive
	}

	h := &Habit{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         dto.Name,
		DaysPerWeek:  dto.DaysPerWeek,
		TimesPerDay:  dto.TimesPerDay,
		DurationDays: dto.DurationDays,
		StartDate:    s.now(),
		ReminderTime: dto.ReminderTime,
		ReminderDays: dto.ReminderDays,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"habit_id":      h.ID,
		"duration_days": h.DurationDays,
	}).Info("Habit created")
	return h, nil
}

// Active returns the habit the product surfaces: the user's first one.
func (s *service) Active(ctx context.Context, userID uuid.UUID) (*Habit, error) {
	habits, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list habits")
		return nil, err
	}
	if len(habits) == 0 {
		return nil, ErrHabitNotFound
	}
	h := habits[0]
	return &h, nil
}

func (s *service) Reset(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	h, err := s.Active(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, h.ID, userID); err != nil {
		log.WithError(err).Error("Failed to delete habit")
		return err
	}

	log.WithField("habit_id", h.ID).Info("Habit reset")
	return nil
}

var weekdayLabels = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// ReminderLabel renders the reminder days the way the dashboard card shows them.
func ReminderLabel(days []int) string {
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)

	switch {
	case len(sorted) == 0:
		return ""
	case len(sorted) == 7:
		return "Todos os dias"
	case equalInts(sorted, []int{1, 2, 3, 4, 5}):
		return "Dias úteis"
	case equalInts(sorted, []int{0, 6}):
		return "Fins de semana"
	}

	labels := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if d >= 0 && d < len(weekdayLabels) {
			labels = append(labels, weekdayLabels[d])
		}
	}
	return strings.Join(labels, ", ")
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ToResponse(h *Habit) HabitResponse {
	resp := HabitResponse{Habit: h}
	if h.HasReminder() {
		resp.ReminderLabel = ReminderLabel(h.ReminderDays)
	}
	return resp
}
