package checkin

import (
	"time"

	"github.com/google/uuid"
)

type Checkin struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	HabitID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"habit_id"`
	CheckinDate      time.Time        `gorm:"not null;index" json:"checkin_date"`
	ExecutionStatus  ExecutionStatus  `gorm:"type:text;not null" json:"execution_status"`
	DifficultyMoment DifficultyMoment `gorm:"type:text;not null" json:"difficulty_moment"`
	SabotageType     SabotageType     `gorm:"type:text;not null" json:"sabotage_type"`
	MotivationType   MotivationType   `gorm:"type:text;not null" json:"motivation_type"`
	EnergyLevel      EnergyLevel      `gorm:"type:text;not null" json:"energy_level"`
	NextDayPlan      NextDayPlan      `gorm:"type:text;not null" json:"next_day_plan"`
	Learnings        string           `gorm:"type:text" json:"learnings"`
	// Seq preserves insertion order; check-in dates can collide.
	Seq int64 `gorm:"autoIncrement;index" json:"-"`
}
