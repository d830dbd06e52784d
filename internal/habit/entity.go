package habit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Habit struct {
	ID           uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID                `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string                   `gorm:"type:text;not null" json:"name"`
	DaysPerWeek  int                      `gorm:"not null" json:"days_per_week"`
	TimesPerDay  int                      `gorm:"not null" json:"times_per_day"`
	DurationDays int                      `gorm:"not null" json:"duration_days"`
	StartDate    time.Time                `gorm:"not null" json:"start_date"`
	ReminderTime *string                  `gorm:"type:text" json:"reminder_time,omitempty"`
	ReminderDays datatypes.JSONSlice[int] `gorm:"type:jsonb" json:"reminder_days,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

// HasReminder reports whether the habit asks for reminders at all.
func (h *Habit) HasReminder() bool {
	return h.ReminderTime != nil && *h.ReminderTime != "" && len(h.ReminderDays) > 0
}
