package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saulo-duarte/clubhouse/internal/attendance"
	"github.com/saulo-duarte/clubhouse/internal/auth"
	"github.com/saulo-duarte/clubhouse/internal/event"
	"github.com/saulo-duarte/clubhouse/internal/finance"
	"github.com/saulo-duarte/clubhouse/internal/goal"
	"github.com/saulo-duarte/clubhouse/internal/member"
)

type RouterConfig struct {
	Tokens            *auth.TokenManager
	AuthHandler       *auth.Handler
	MemberHandler     *member.Handler
	AttendanceHandler *attendance.Handler
	FinanceHandler    *finance.Handler
	EventHandler      *event.Handler
	GoalHandler       *goal.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/auth", auth.Routes(cfg.AuthHandler, cfg.Tokens))

	r.Group(func(r chi.Router) {
		r.Use(cfg.Tokens.Middleware)

		r.Mount("/members", member.Routes(cfg.MemberHandler))
		r.Mount("/attendance", attendance.Routes(cfg.AttendanceHandler))
		r.Mount("/finances", finance.Routes(cfg.FinanceHandler))
		r.Mount("/events", event.Routes(cfg.EventHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
	})
	return r
}
