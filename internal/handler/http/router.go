package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

const (
	appName    = "attendance-backend"
	appVersion = "v1.0.0"
)

func NewRouter(
	cfg *config.Config,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	geocodeHandler GeocodeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/overall/{type}", func(r chi.Router) {
			r.Get("/", reportHandler.Overall)
			r.Get("/export", reportHandler.Export)
		})

		r.Get("/daily/{employeeId}", reportHandler.Daily)
		r.Get("/weekly/{employeeId}", reportHandler.Weekly)
		r.Get("/monthly/{employeeId}", reportHandler.Monthly)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Delete("/", employeeHandler.Delete)
				r.Get("/stats/{type}", reportHandler.Stats)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/mark", attendanceHandler.Mark)
			r.Get("/today", attendanceHandler.Today)
			r.Get("/stream", attendanceHandler.Stream)
		})

		r.Get("/geocode", geocodeHandler.Reverse)
	})
	return r
}
