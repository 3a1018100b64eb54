// Package main is the entry point for Drivetown.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/drivetown/internal/config"
	"github.com/Faultbox/drivetown/internal/game"
	"github.com/Faultbox/drivetown/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, configPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Close()

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			return 1
		}
		logger.Info("config saved", zap.String("path", path))
		return 0
	}

	logger.Info("=== Drivetown ===")
	if configPath == "" {
		logger.Info("no config file found, using defaults")
	} else {
		logger.Info("config loaded", zap.String("path", configPath))
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg, configPath)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		return 1
	}

	logger.Info("game closed normally")
	return 0
}
