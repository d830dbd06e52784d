package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saulo-duarte/menteviva-api/internal/assessment"
	"github.com/saulo-duarte/menteviva-api/internal/auth"
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/config"
	"github.com/saulo-duarte/menteviva-api/internal/dashboard"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/insight"
	"github.com/saulo-duarte/menteviva-api/internal/middlewares"
	"github.com/saulo-duarte/menteviva-api/internal/reminder"
	"github.com/saulo-duarte/menteviva-api/internal/router"
	"github.com/saulo-duarte/menteviva-api/internal/store"
	"github.com/saulo-duarte/menteviva-api/internal/user"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

// Store is the record store every feature repository comes from.
type Store interface {
	Users() user.Repository
	Habits() habit.Repository
	Checkins() checkin.Repository
	Submissions() assessment.SubmissionRepository
}

type Container struct {
	Settings config.Settings
	Store    Store

	UserContainer       *user.UserContainer
	HabitContainer      *habit.HabitContainer
	CheckinContainer    *checkin.CheckinContainer
	InsightContainer    *insight.InsightContainer
	AssessmentContainer *assessment.AssessmentContainer
	DashboardContainer  *dashboard.DashboardContainer
	Scheduler           *reminder.Scheduler
}

// New wires the application from settings. With no DATABASE_DSN everything
// runs against a seeded in-memory store.
func New(ctx context.Context, s config.Settings) (*Container, error) {
	config.Init(s)
	auth.Init(s.JWTSecret)
	log := config.WithContext(ctx)
	now := util.Clock(util.SystemClock)

	st, err := openStore(ctx, s, now)
	if err != nil {
		return nil, err
	}

	userContainer := user.NewUserContainer(st.Users(), s.JWTTTL)
	habitContainer := habit.NewHabitContainer(st.Habits(), now)
	checkinContainer := checkin.NewCheckinContainer(st.Checkins(), habitContainer.Service)
	insightContainer := insight.NewInsightContainer(ctx, insight.Options{
		APIKey:  s.GeminiAPIKey,
		Model:   s.GeminiModel,
		Timeout: s.InsightTimeout,
		Redis:   openRedis(ctx, s),
		Now:     now,
	})
	assessmentContainer := assessment.NewAssessmentContainer(st.Submissions(), now)
	dashboardContainer := dashboard.NewDashboardContainer(
		habitContainer.Service,
		checkinContainer.Service,
		insightContainer.Service,
		now,
	)

	var notifier reminder.Notifier = reminder.LogNotifier{}
	if s.SMTPHost != "" {
		notifier = reminder.NewMailNotifier(reminder.SMTPConfig{
			Host:     s.SMTPHost,
			Port:     s.SMTPPort,
			Username: s.SMTPUsername,
			Password: s.SMTPPassword,
			From:     s.SMTPFrom,
		})
	} else {
		log.Info("SMTP not configured, reminders will only be logged")
	}
	scheduler := reminder.NewScheduler(habitContainer.Repo, userContainer.Repo, notifier, now)

	return &Container{
		Settings:            s,
		Store:               st,
		UserContainer:       userContainer,
		HabitContainer:      habitContainer,
		CheckinContainer:    checkinContainer,
		InsightContainer:    insightContainer,
		AssessmentContainer: assessmentContainer,
		DashboardContainer:  dashboardContainer,
		Scheduler:           scheduler,
	}, nil
}

func openStore(ctx context.Context, s config.Settings, now util.Clock) (Store, error) {
	if s.DatabaseDSN == "" {
		config.WithContext(ctx).Warn("DATABASE_DSN not set, using in-memory store")
		return store.NewMemory(now), nil
	}

	config.InitCrypto(s.CryptoKey)
	if err := config.Connect(ctx, s.DatabaseDSN); err != nil {
		return nil, err
	}
	pg := store.NewPostgres(config.DB, now)
	if err := pg.Migrate(ctx); err != nil {
		return nil, err
	}
	if err := pg.SeedDemoUser(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed demo user: %w", err)
	}
	return pg, nil
}

// openRedis returns nil when Redis is not configured or not reachable.
func openRedis(ctx context.Context, s config.Settings) *redis.Client {
	if s.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:         s.RedisAddr,
		Password:     s.RedisPassword,
		DB:           s.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Redis unreachable, phrase cache falls back to memory")
		_ = client.Close()
		return nil
	}
	return client
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		HabitHandler:      c.HabitContainer.Handler,
		CheckinHandler:    c.CheckinContainer.Handler,
		DashboardHandler:  c.DashboardContainer.Handler,
		InsightHandler:    c.InsightContainer.Handler,
		AssessmentHandler: c.AssessmentContainer.Handler,
		AllowedOrigins:    c.Settings.AllowedOrigins,
		RateLimiter:       middlewares.NewRateLimiter(c.Settings.RateLimitPerMinute),
	})
}
