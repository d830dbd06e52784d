package checkin

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
	"github.com/sirupsen/logrus"
)

const maxLearningsLength = 2000

var ErrInvalidCheckin = errors.New("invalid check-in")

type Service interface {
	Create(ctx context.Context, habitID uuid.UUID, dto CreateCheckinDTO) (*Checkin, error)
	List(ctx context.Context, habitID uuid.UUID) ([]Checkin, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(dto CreateCheckinDTO) error {
	switch {
	case !dto.ExecutionStatus.IsValid():
		return fmt.Errorf("%w: unknown execution_status %q", ErrInvalidCheckin, dto.ExecutionStatus)
	case !dto.DifficultyMoment.IsValid():
		return fmt.Errorf("%w: unknown difficulty_moment %q", ErrInvalidCheckin, dto.DifficultyMoment)
	case !dto.SabotageType.IsValid():
		return fmt.Errorf("%w: unknown sabotage_type %q", ErrInvalidCheckin, dto.SabotageType)
	case !dto.MotivationType.IsValid():
		return fmt.Errorf("%w: unknown motivation_type %q", ErrInvalidCheckin, dto.MotivationType)
	case !dto.EnergyLevel.IsValid():
		return fmt.Errorf("%w: unknown energy_level %q", ErrInvalidCheckin, dto.EnergyLevel)
	case !dto.NextDayPlan.IsValid():
		return fmt.Errorf("%w: unknown next_day_plan %q", ErrInvalidCheckin, dto.NextDayPlan)
	}
	return nil
}

func (s *service) Create(ctx context.Context, habitID uuid.UUID, dto CreateCheckinDTO) (*Checkin, error) {
	log := config.WithContext(ctx)

	if err := validate(dto); err != nil {
		log.WithError(err).Warn("Rejected check-in")
		return nil, err
	}
	dto.Normalize()

	learnings := util.PlainText(dto.Learnings)
	if utf8.RuneCountInString(learnings) > maxLearningsLength {
		return nil, fmt.Errorf("%w: learnings is too long (max %d characters)", ErrInvalidCheckin, maxLearningsLength)
	}

	c := &Checkin{
		ID:               uuid.New(),
		HabitID:          habitID,
		ExecutionStatus:  dto.ExecutionStatus,
		DifficultyMoment: dto.DifficultyMoment,
		SabotageType:     dto.SabotageType,
		MotivationType:   dto.MotivationType,
		EnergyLevel:      dto.EnergyLevel,
		NextDayPlan:      dto.NextDayPlan,
		Learnings:        learnings,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create check-in")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"habit_id":   habitID,
		"checkin_id": c.ID,
		"status":     c.ExecutionStatus,
	}).Info("Check-in recorded")
	return c, nil
}

func (s *service) List(ctx context.Context, habitID uuid.UUID) ([]Checkin, error) {
	checkins, err := s.repo.ListByHabit(ctx, habitID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list check-ins")
		return nil, err
	}
	return checkins, nil
}
