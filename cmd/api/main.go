package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/shiftlinehq/shiftline-backend/api/routes"
	"github.com/shiftlinehq/shiftline-backend/internal/attendance"
	"github.com/shiftlinehq/shiftline-backend/internal/scheduling"
	"github.com/shiftlinehq/shiftline-backend/internal/swaps"
	"github.com/shiftlinehq/shiftline-backend/internal/timeoff"
	"github.com/shiftlinehq/shiftline-backend/internal/users"
	"github.com/shiftlinehq/shiftline-backend/pkg/config"
	"github.com/shiftlinehq/shiftline-backend/pkg/db"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
	"github.com/shiftlinehq/shiftline-backend/pkg/mailer"
	"github.com/shiftlinehq/shiftline-backend/pkg/metrics"
	"github.com/shiftlinehq/shiftline-backend/pkg/migrate"
	"github.com/shiftlinehq/shiftline-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, dbClient.Close())
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, redisClient.Close())
	}()

	mail := mailer.New(cfg.SMTP, logg)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	usersRepo := users.NewRepository(dbClient.DB())
	usersService, err := users.NewService(users.ServiceParams{
		Repo:           usersRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return err
	}

	schedulingService, err := scheduling.NewService(scheduling.NewRepository(dbClient.DB()), usersRepo)
	if err != nil {
		return err
	}

	swapsService, err := swaps.NewService(swaps.ServiceParams{TxRunner: dbClient})
	if err != nil {
		return err
	}

	timeoffService, err := timeoff.NewService(timeoff.ServiceParams{
		Repo:   timeoff.NewRepository(dbClient.DB()),
		Mail:   mail,
		Logger: logg,
	})
	if err != nil {
		return err
	}

	attendanceService, err := attendance.NewService(attendance.NewRepository(dbClient.DB()), nil)
	if err != nil {
		return err
	}

	router := routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, registry, routes.Services{
		Users:      usersService,
		Scheduling: schedulingService,
		Swaps:      swapsService,
		TimeOff:    timeoffService,
		Attendance: attendanceService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": server.Addr,
	})
	logg.Info(startCtx, "starting api server")

	errCh := make(chan error, 1)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case serveErr := <-errCh:
		return serveErr
	case sig := <-stop:
		logg.Info(logg.WithFields(ctx, map[string]any{"signal": sig.String()}), "shutting down api server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}
	return <-errCh
}
