package dashboard

import (
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/history"
	"github.com/saulo-duarte/menteviva-api/internal/insight"
)

// ChartPoint is one bar of the recent execution chart: 3 completed,
// 2 partial, 1 missed.
type ChartPoint struct {
	Date   string                  `json:"date"`
	Status checkin.ExecutionStatus `json:"status"`
	Value  int                     `json:"value"`
}

type Overview struct {
	Habit                 habit.HabitResponse `json:"habit"`
	Streak                int                 `json:"streak"`
	CompletedCount        int                 `json:"completed_count"`
	TotalCheckins         int                 `json:"total_checkins"`
	AlreadyCheckedInToday bool                `json:"already_checked_in_today"`
	Recent                []ChartPoint        `json:"recent"`
	EnergySummary         string              `json:"energy_summary"`
	Insight               *insight.Insight    `json:"insight,omitempty"`
}

type ReportResponse struct {
	Habit habit.HabitResponse `json:"habit"`
	history.Report
}

type HistoryResponse struct {
	Habit    habit.HabitResponse `json:"habit"`
	Checkins []checkin.Checkin   `json:"checkins"`
}
