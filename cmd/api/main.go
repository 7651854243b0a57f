package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/maps"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
	geocodeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/geocode"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
)

const shutdownTimeout = 10 * time.Second

type store struct {
	employees   employee.EmployeeRepository
	attendances attendance.AttendanceRepository
	close       func(ctx context.Context)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid timezone: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}

	geocodeCache := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisCache, client, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Warn("Redis unavailable, geocode cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			geocodeCache = redisCache
			defer client.Close()
		}
	}

	// Providers stay nil interfaces when not configured
	var google geocodeService.GoogleAPI
	if cfg.Geocode.GoogleAPIKey != "" {
		google = maps.NewGoogleClient(cfg.Geocode.GoogleBaseURL, cfg.Geocode.GoogleAPIKey, cfg.Geocode.Timeout, cfg.Geocode.RetryDelay)
	}
	var nominatim geocodeService.NominatimAPI
	if cfg.Geocode.NominatimURL != "" {
		nominatim = maps.NewNominatimClient(cfg.Geocode.NominatimURL, cfg.Geocode.NominatimUserAgent, cfg.Geocode.Timeout, cfg.Geocode.RetryDelay)
	}

	hub := sse.NewHub()

	geocodeSvc := geocodeService.NewGeocodeService(google, nominatim, geocodeCache, cfg.Redis.TTL)
	employeeSvc := employeeService.NewEmployeeService(st.employees)
	attendanceSvc := attendanceService.NewAttendanceService(st.attendances, st.employees, geocodeSvc, hub)
	reportSvc := reportService.NewReportService(st.attendances, st.employees)

	router := appHTTP.NewRouter(
		cfg,
		appHTTP.NewReportHandler(reportSvc, loc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc, loc),
		appHTTP.NewGeocodeHandler(geocodeSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "store", cfg.Store.Driver, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	st.close(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config) (store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongoDB:
		mongo, err := database.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return store{}, err
		}
		if err := mongodb.EnsureIndexes(ctx, mongo.Database); err != nil {
			_ = mongo.Close(ctx)
			return store{}, err
		}
		return store{
			employees:   mongodb.NewEmployeeRepository(mongo.Database),
			attendances: mongodb.NewAttendanceRepository(mongo.Database),
			close: func(ctx context.Context) {
				if err := mongo.Close(ctx); err != nil {
					slog.Error("Failed to disconnect MongoDB", "error", err)
				}
			},
		}, nil

	case config.StorePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return store{}, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return store{}, err
		}
		return store{
			employees:   postgresql.NewEmployeeRepository(db),
			attendances: postgresql.NewAttendanceRepository(db),
			close:       func(context.Context) { db.Close() },
		}, nil

	default:
		slog.Warn("Using in-memory store, data is lost on restart")
		return store{
			employees:   memory.NewEmployeeRepository(),
			attendances: memory.NewAttendanceRepository(),
			close:       func(context.Context) {},
		}, nil
	}
}
