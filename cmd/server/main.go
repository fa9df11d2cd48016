package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hrdesk/internal/db"
	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/domain/users"
	"hrdesk/internal/domain/vacation"
	"hrdesk/internal/platform/calendar"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/transport/http/handlers/attendancehandler"
	"hrdesk/internal/transport/http/handlers/authhandler"
	"hrdesk/internal/transport/http/handlers/vacationhandler"
	"hrdesk/internal/transport/http/middleware"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	cal, err := calendar.Load(cfg.HolidayFile)
	if err != nil {
		slog.Error("holiday calendar load failed", "err", err)
		os.Exit(1)
	}
	slog.Info("holiday calendar loaded", "holidays", cal.HolidayCount())

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	usersSvc := users.NewService(users.NewStore(pool), cfg.JWTSecret, cfg.TokenTTL)

	notifier := notifications.NewWebhook(cfg.WebhookURL)
	vacationStore := vacation.NewStore(pool, cfg.DefaultTotalDays)
	tracker := vacation.NewTracker(vacationStore, cal)
	vacationSvc := vacation.NewService(vacationStore, tracker, vacation.SystemClock{}, notifier, cfg.PrenoticeDays)

	attendanceSvc := attendance.NewService(attendance.NewStore(pool), attendance.SystemClock{}, cfg.AllowedClientIPs)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.With(middleware.RequireAdmin).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(usersSvc).RegisterRoutes(r)
		vacationhandler.NewHandler(vacationSvc, usersSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc).RegisterRoutes(r)
	})

	slog.Info("hrdesk server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
