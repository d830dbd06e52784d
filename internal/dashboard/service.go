// Package dashboard assembles the read views over a user's active habit:
// the overview card, the category report and the full history.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/history"
	"github.com/saulo-duarte/menteviva-api/internal/insight"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

type Service interface {
	Overview(ctx context.Context, userID uuid.UUID) (*Overview, error)
	Report(ctx context.Context, userID uuid.UUID) (*ReportResponse, error)
	History(ctx context.Context, userID uuid.UUID) (*HistoryResponse, error)
}

type service struct {
	habits   habit.Service
	checkins checkin.Service
	insights insight.Service
	now      util.Clock
}

func NewService(habits habit.Service, checkins checkin.Service, insights insight.Service, now util.Clock) Service {
	return &service{habits: habits, checkins: checkins, insights: insights, now: now}
}

func (s *service) load(ctx context.Context, userID uuid.UUID) (*habit.Habit, []checkin.Checkin, error) {
	active, err := s.habits.Active(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	checkins, err := s.checkins.List(ctx, active.ID)
	if err != nil {
		return nil, nil, err
	}
	return active, checkins, nil
}

func chartValue(status checkin.ExecutionStatus) int {
	switch status {
	case checkin.ExecutionCompleted:
		return 3
	case checkin.ExecutionPartial:
		return 2
	default:
		return 1
	}
}

func (s *service) Overview(ctx context.Context, userID uuid.UUID) (*Overview, error) {
	active, checkins, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	recent := history.Recent(checkins, history.InsightWindow)
	points := make([]ChartPoint, 0, len(recent))
	for _, c := range recent {
		points = append(points, ChartPoint{
			Date:   c.CheckinDate.In(util.Location()).Format("02/01"),
			Status: c.ExecutionStatus,
			Value:  chartValue(c.ExecutionStatus),
		})
	}

	completed := 0
	for _, c := range checkins {
		if c.ExecutionStatus == checkin.ExecutionCompleted {
			completed++
		}
	}

	o := &Overview{
		Habit:                 habit.ToResponse(active),
		Streak:                history.Streak(checkins, now),
		CompletedCount:        completed,
		TotalCheckins:         len(checkins),
		AlreadyCheckedInToday: history.AlreadyCheckedInToday(checkins, now),
		Recent:                points,
		EnergySummary:         history.EnergySummary(checkins),
	}
	if len(checkins) >= insight.MinCheckins {
		in := s.insights.Insight(ctx, checkins)
		o.Insight = &in
	}
	return o, nil
}

func (s *service) Report(ctx context.Context, userID uuid.UUID) (*ReportResponse, error) {
	active, checkins, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ReportResponse{
		Habit:  habit.ToResponse(active),
		Report: history.BuildReport(checkins),
	}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) (*HistoryResponse, error) {
	active, checkins, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sorted := history.Newest(checkins)
	if sorted == nil {
		sorted = []checkin.Checkin{}
	}
	return &HistoryResponse{
		Habit:    habit.ToResponse(active),
		Checkins: sorted,
	}, nil
}
