package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shareit/config"
	_ "shareit/docs" // Swagger docs
	"shareit/internal/booking"
	"shareit/internal/httpserver"
	"shareit/pkg/cache"
	"shareit/pkg/gcalendar"
	"shareit/pkg/log"
	"shareit/pkg/postgres"
)

// @title       ShareIt API
// @description Item sharing: users, items, bookings and item requests.
// @version     1
// @host        localhost:9090
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt server...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgres.New(ctx, cfg.Postgres.DSN, postgres.Options{
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer db.Close()

	if cfg.Postgres.Migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Error(ctx, "Failed to apply schema: ", err)
			return
		}
		logger.Info(ctx, "Schema applied")
	}

	// 4. Redis user cache (optional)
	var httpCfg httpserver.Config
	if cfg.Redis.Addr != "" {
		rdb, closeRedis := cache.NewRedis(cache.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer closeRedis()

		if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
			logger.Warnf(ctx, "Redis not reachable, cache will fall back to postgres: %v", pingErr)
		}
		httpCfg.Redis = rdb
		httpCfg.UserTTL = cfg.Redis.UserTTL
	}

	// 5. Google Calendar (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			httpCfg.Calendar = calendarClient
			httpCfg.CalendarCfg = booking.CalendarConfig{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.GoogleCalendar.Timezone,
			}
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpCfg.Port = cfg.HTTPServer.Port
	httpCfg.Mode = cfg.HTTPServer.Mode
	httpCfg.Environment = cfg.Environment.Name
	httpCfg.ShutdownTimeout = cfg.HTTPServer.ShutdownTimeout
	httpCfg.RateLimit = cfg.RateLimit
	httpCfg.PostgresDB = db

	httpServer, err := httpserver.New(logger, httpCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
