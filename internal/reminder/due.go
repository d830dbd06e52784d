// Package reminder sends habit reminders at each habit's configured local
// time on its configured weekdays.
package reminder

import (
	"time"

	"github.com/saulo-duarte/menteviva-api/internal/habit"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

// Due reports whether h asks for a reminder at the local minute of now.
func Due(h habit.Habit, now time.Time) bool {
	if !h.HasReminder() {
		return false
	}
	if *h.ReminderTime != util.ClockTime(now) {
		return false
	}
	weekday := int(now.In(util.Location()).Weekday())
	for _, d := range h.ReminderDays {
		if d == weekday {
			return true
		}
	}
	return false
}
