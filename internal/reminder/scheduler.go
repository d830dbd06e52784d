package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

const runTimeout = time.Minute

// Scheduler checks every habit on each tick and notifies the owners of
// those that are due. A habit is notified at most once per local minute.
type Scheduler struct {
	habits   habit.Repository
	users    user.Repository
	notifier Notifier
	now      util.Clock
	cron     *cron.Cron

	mu   sync.Mutex
	sent map[uuid.UUID]string
}

func NewScheduler(habits habit.Repository, users user.Repository, notifier Notifier, now util.Clock) *Scheduler {
	if now == nil {
		now = util.SystemClock
	}
	return &Scheduler{
		habits:   habits,
		users:    users,
		notifier: notifier,
		now:      now,
		cron:     cron.New(cron.WithLocation(util.Location())),
		sent:     make(map[uuid.UUID]string),
	}
}

func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("failed to add reminder job: %w", err)
	}
	s.cron.Start()
	config.Logger.WithField("schedule", spec).Info("Reminder scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	config.Logger.Info("Reminder scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	if _, err := s.Run(ctx); err != nil {
		config.WithContext(ctx).WithError(err).Error("Reminder run failed")
	}
}

// Run sends every reminder due now and returns how many were sent.
// Individual delivery failures are logged and skipped.
func (s *Scheduler) Run(ctx context.Context) (int, error) {
	log := config.WithContext(ctx)
	now := s.now()
	minute := util.DayKey(now) + " " + util.ClockTime(now)

	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list habits: %w", err)
	}

	sent := 0
	for _, h := range habits {
		if !Due(h, now) || !s.claim(h.ID, minute) {
			continue
		}

		owner, err := s.users.FindByID(ctx, h.UserID)
		if err != nil {
			log.WithError(err).WithField("habit_id", h.ID).Warn("Reminder owner not found")
			continue
		}
		if err := s.notifier.Notify(ctx, *owner, h); err != nil {
			log.WithError(err).WithField("habit_id", h.ID).Error("Failed to send reminder")
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *Scheduler) claim(habitID uuid.UUID, minute string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sent[habitID] == minute {
		return false
	}
	s.sent[habitID] = minute
	return true
}
