package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/menteviva-api/internal/assessment"
	"github.com/saulo-duarte/menteviva-api/internal/auth"
	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	"github.com/saulo-duarte/menteviva-api/internal/dashboard"
	"github.com/saulo-duarte/menteviva-api/internal/habit"
	"github.com/saulo-duarte/menteviva-api/internal/insight"
	"github.com/saulo-duarte/menteviva-api/internal/middlewares"
	"github.com/saulo-duarte/menteviva-api/internal/tips"
	"github.com/saulo-duarte/menteviva-api/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	HabitHandler      *habit.Handler
	CheckinHandler    *checkin.Handler
	DashboardHandler  *dashboard.Handler
	InsightHandler    *insight.Handler
	AssessmentHandler *assessment.Handler

	AllowedOrigins []string
	// RateLimiter guards the endpoints that may call the generation service.
	RateLimiter *middlewares.RateLimiter
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	limited := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimiter != nil {
		limited = cfg.RateLimiter.Middleware
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/habits", habit.Routes(cfg.HabitHandler, checkin.Mount(cfg.CheckinHandler)))
		r.Mount("/tests", assessment.Routes(cfg.AssessmentHandler))
		r.Mount("/tips", tips.Routes())

		r.With(limited).Get("/dashboard", cfg.DashboardHandler.Overview)
		r.With(limited).Mount("/insights", insight.Routes(cfg.InsightHandler))
		r.Get("/reports", cfg.DashboardHandler.Report)
		r.Get("/history", cfg.DashboardHandler.History)
	})
	return r
}
