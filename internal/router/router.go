package router

import (
	"context"
	"net/http"

	_ "petpal/docs"
	mem "petpal/internal/adapters/storage/memory"
	"petpal/internal/dashboard"
	"petpal/internal/domain/health"
	"petpal/internal/domain/profile"
	"petpal/internal/domain/reminders"
	"petpal/internal/domain/session"
	"petpal/internal/domain/tips"
	"petpal/internal/domain/vets"
	"petpal/internal/middleware"
	"petpal/internal/platform/logger"
	"petpal/internal/platform/metrics"
	"petpal/internal/platform/records"
	"petpal/internal/ports/kv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, in-memory (modo dev / tests).
	Store kv.Store

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Si viene, se expone en /metrics.
	Registry prometheus.Gatherer

	// Fuente de azar para tips y vets; nil usa math/rand/v2.
	Rand tips.Source
}

// NewRouter arma servicios, vista y rutas sobre un único store.
// Si hay un puntero de sesión persistido, la vista arranca con ese usuario.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))

	sessions := session.NewManager(store, log)
	r.Use(middleware.AuthContext(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(opts.Registry))
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	recOpts := []records.Option{records.WithLogger(log), records.WithMetrics(opts.Metrics)}

	// Services por módulo
	profilesSvc := profile.NewService(profile.NewRepository(store, recOpts...))
	healthSvc := health.NewService(health.NewRepository(store, recOpts...))
	remindersSvc := reminders.NewService(reminders.NewRepository(store, recOpts...), profilesSvc, opts.Metrics)
	tipsSvc := tips.NewService(profilesSvc, opts.Rand)
	vetsSvc := vets.NewService(profilesSvc, opts.Rand)

	dash := dashboard.New(dashboard.Deps{
		Sessions:  sessions,
		Profiles:  profilesSvc,
		Health:    healthSvc,
		Reminders: remindersSvc,
		Logger:    log,
		Metrics:   opts.Metrics,
	})
	if _, err := dash.Restore(context.Background()); err != nil {
		log.Warn("session restore failed", map[string]any{"error": err.Error()})
	}

	// Rutas por módulo
	dashboard.RegisterRoutes(r, dash)
	profile.RegisterRoutes(r, profilesSvc, dash)
	health.RegisterRoutes(r, healthSvc, dash)
	reminders.RegisterRoutes(r, remindersSvc, dash)
	tips.RegisterRoutes(r, tipsSvc)
	vets.RegisterRoutes(r, vetsSvc)

	return r
}
