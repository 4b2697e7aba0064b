package main

import (
	"context"
	"fmt"

	"shareit/config"
	"shareit/internal/gateway"
	"shareit/pkg/log"
)

// main starts the validating gateway. Valid calls are forwarded to the server
// and its responses are returned unchanged.
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

	ctx := context.Background()
	logger.Info(ctx, "Starting ShareIt gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gateway
	gw, err := gateway.New(logger, gateway.Config{
		Port:            cfg.Gateway.Port,
		ServerURL:       cfg.Gateway.ServerURL,
		ClientTimeout:   cfg.Gateway.ClientTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize gateway: ", err)
		return
	}

	// 4. Run
	if err := gw.Run(); err != nil {
		logger.Error(ctx, "Failed to run gateway: ", err)
		return
	}

	logger.Info(ctx, "Gateway stopped gracefully")
}
