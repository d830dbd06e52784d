// Package history derives streaks, reports and summaries from a habit's
// check-in list. Every function is pure: callers pass the check-ins in
// insertion order together with the instant they consider "now".
package history

import (
	"sort"
	"time"

	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

// InsightWindow is how many of the latest check-ins feed the AI summary.
const InsightWindow = 7

// AlreadyCheckedInToday reports whether the most recently added check-in
// falls on today's local calendar day.
func AlreadyCheckedInToday(checkins []checkin.Checkin, now time.Time) bool {
	if len(checkins) == 0 {
		return false
	}
	return util.SameDay(checkins[len(checkins)-1].CheckinDate, now)
}

// Newest returns a copy sorted by check-in date, most recent first.
// Equal dates keep their insertion order.
func Newest(checkins []checkin.Checkin) []checkin.Checkin {
	sorted := append([]checkin.Checkin(nil), checkins...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CheckinDate.After(sorted[j].CheckinDate)
	})
	return sorted
}

// Recent returns at most the n most recently added check-ins, oldest first.
func Recent(checkins []checkin.Checkin, n int) []checkin.Checkin {
	if n <= 0 {
		return nil
	}
	if len(checkins) > n {
		checkins = checkins[len(checkins)-n:]
	}
	return append([]checkin.Checkin(nil), checkins...)
}

// Streak counts consecutive local days ending today with a COMPLETED
// check-in. A history whose newest entry is not from today has no streak.
func Streak(checkins []checkin.Checkin, now time.Time) int {
	sorted := Newest(checkins)
	if len(sorted) == 0 {
		return 0
	}

	newest := sorted[0]
	if !util.SameDay(newest.CheckinDate, now) {
		return 0
	}

	count := 0
	if newest.ExecutionStatus == checkin.ExecutionCompleted {
		count = 1
	}

	// Walk back one day per entry from the first unexamined one. The offset is
	// anchored to where counting started so each step moves a full day.
	start := count
	for i := start; i < len(sorted); i++ {
		expected := util.DaysBefore(now, i+1-start)
		c := sorted[i]
		if !util.SameDay(c.CheckinDate, expected) || c.ExecutionStatus != checkin.ExecutionCompleted {
			break
		}
		count++
	}
	return count
}

const (
	energyEmpty  = "Acompanhe sua energia após cada hábito."
	energyBetter = "Seus hábitos estão te deixando com mais energia!"
	energyStable = "Seus hábitos estão te deixando com energia estável!"
)

// EnergySummary is the one-line energy reading shown on the dashboard.
func EnergySummary(checkins []checkin.Checkin) string {
	if len(checkins) == 0 {
		return energyEmpty
	}
	energy := util.NewTally[checkin.EnergyLevel]()
	for _, c := range checkins {
		energy.Add(c.EnergyLevel)
	}
	if float64(energy.Count(checkin.EnergyBetter)) >= float64(len(checkins))/2 {
		return energyBetter
	}
	return energyStable
}
