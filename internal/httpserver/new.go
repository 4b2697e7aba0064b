package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shareit/config"
	"shareit/internal/booking"
	"shareit/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	rateLimit       config.RateLimitConfig

	// Storage
	postgresDB *sql.DB
	redis      *redis.Client
	userTTL    time.Duration

	// Integrations
	calendar    booking.Calendar
	calendarCfg booking.CalendarConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimit       config.RateLimitConfig

	// Storage. Redis is optional: without it user lookups hit postgres directly.
	PostgresDB *sql.DB
	Redis      *redis.Client
	UserTTL    time.Duration

	// Calendar is optional: without it approved bookings are not published.
	Calendar    booking.Calendar
	CalendarCfg booking.CalendarConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		rateLimit:       cfg.RateLimit,
		postgresDB:      cfg.PostgresDB,
		redis:           cfg.Redis,
		userTTL:         cfg.UserTTL,
		calendar:        cfg.Calendar,
		calendarCfg:     cfg.CalendarCfg,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	return nil
}
