// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/entity"
	"github.com/Faultbox/drivetown/pkg/math"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig    `yaml:"graphics"`
	Game     GameConfig        `yaml:"game"`
	Controls controls.Bindings `yaml:"controls"`
	Scene    SceneConfig       `yaml:"scene"`
	Logging  LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"` // 0 = unlimited
}

// GameConfig holds gameplay and overlay settings.
type GameConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig holds where things start.
type SceneConfig struct {
	Human   PoseConfig `yaml:"human"`
	Vehicle PoseConfig `yaml:"vehicle"`
	House   PoseConfig `yaml:"house"`
}

// PoseConfig is a position plus heading in radians.
type PoseConfig struct {
	Position [3]float32 `yaml:"position,flow"`
	Heading  float32    `yaml:"heading"`
}

// Pose converts to an entity pose.
func (p PoseConfig) Pose() entity.Pose {
	return entity.Pose{
		Position: math.Vec3{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]},
		Heading:  p.Heading,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Game: GameConfig{
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Controls: controls.DefaultBindings(),
		Scene: SceneConfig{
			Human: PoseConfig{Position: [3]float32{5, 0.1, 1}},
			House: PoseConfig{Position: [3]float32{-10, 0, 10}},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative fps_limit %d", c.Graphics.FPSLimit))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}
	if err := c.Controls.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("controls: %w", err))
	}
	return errors.Join(errs...)
}
