// Package main is the Strider client: a third-person locomotion sandbox
// with a mouse-orbit camera.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/app"
	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/internal/logger"
)

func main() {
	// Parse CLI flags
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Strider ===")

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("Initialization failed", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("Runtime error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Shutdown complete")
}
