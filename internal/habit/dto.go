package habit

type CreateHabitDTO struct {
	Name         string  `json:"name"`
	DaysPerWeek  int     `json:"days_per_week"`
	TimesPerDay  int     `json:"times_per_day"`
	DurationDays int     `json:"duration_days"`
	ReminderTime *string `json:"reminder_time"`
	ReminderDays []int   `json:"reminder_days"`
}

type HabitResponse struct {
	*Habit
	ReminderLabel string `json:"reminder_label,omitempty"`
}
