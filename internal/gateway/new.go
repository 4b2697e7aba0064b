package gateway

import (
	"errors"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"shareit/pkg/httpx"
	"shareit/pkg/log"
)

// Gateway validates incoming calls and forwards the valid ones to the server.
type Gateway struct {
	l               log.Logger
	e               *echo.Echo
	port            int
	shutdownTimeout time.Duration
	server          *serverClient

	now func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	ServerURL       string
	ClientTimeout   time.Duration
	ShutdownTimeout time.Duration
}

// New creates the gateway with its routes registered.
func New(l log.Logger, cfg Config) (*Gateway, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Port == 0 {
		return nil, errors.New("port is required")
	}
	base, err := url.Parse(cfg.ServerURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.New("server url must be absolute, e.g. http://localhost:9090")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()

	g := &Gateway{
		l:               l,
		e:               e,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		server:          &serverClient{baseURL: base, client: httpx.NewClient(cfg.ClientTimeout)},
		now:             time.Now,
	}
	e.HTTPErrorHandler = g.errorHandler

	g.registerMiddlewares()
	g.registerRoutes()
	return g, nil
}
