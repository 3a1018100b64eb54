// Package game implements the main loop: input, fixed ticks, rendering.
package game

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/drivetown/internal/config"
	"github.com/Faultbox/drivetown/internal/engine/debug"
	"github.com/Faultbox/drivetown/internal/engine/input"
	"github.com/Faultbox/drivetown/internal/engine/overlay"
	"github.com/Faultbox/drivetown/internal/engine/renderer"
	"github.com/Faultbox/drivetown/internal/engine/window"
	"github.com/Faultbox/drivetown/internal/game/clock"
	"github.com/Faultbox/drivetown/internal/game/controls"
	"github.com/Faultbox/drivetown/internal/game/hud"
	"github.com/Faultbox/drivetown/internal/game/physics"
	"github.com/Faultbox/drivetown/internal/game/world"
	"github.com/Faultbox/drivetown/internal/logger"
)

// Title is the window title.
const Title = "Drivetown"

// MaxCatchUpTicks bounds the ticks run in one frame after a stall.
const MaxCatchUpTicks = 5

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	overlay  *overlay.Renderer
	input    *input.Input

	sampler *controls.Sampler
	world   *world.World
	snap    world.Snapshot
	clock   *clock.Clock

	watcher     *config.Watcher
	cfgLog      *zap.Logger
	screenshots *debug.Screenshots
	shotPending bool

	fps float64
}

// New creates the window, GL resources and world. configPath is watched
// for changes when non-empty.
func New(cfg *config.Config, configPath string) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		cfg:         cfg,
		input:       input.New(),
		sampler:     controls.NewSampler(cfg.Controls),
		world:       world.New(spawnFrom(cfg.Scene), cfg.Controls),
		clock:       clock.New(physics.TickInterval, MaxCatchUpTicks),
		screenshots: debug.NewScreenshots(cfg.Game.ScreenshotDir, "drivetown"),
		cfgLog:      logger.Named("config"),
	}
	g.snap = g.world.Snapshot()

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the renderers are created.
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.overlay, err = overlay.New(width, height)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	if configPath != "" {
		g.watcher, err = config.Watch(configPath)
		if err != nil {
			g.cfgLog.Warn("hot reload disabled", zap.String("path", configPath), zap.Error(err))
		} else {
			g.cfgLog.Info("watching", zap.String("path", g.watcher.Path()))
		}
	}

	logger.Info("game initialized")
	return g, nil
}

func spawnFrom(s config.SceneConfig) world.Spawn {
	return world.Spawn{
		Human:   s.Human.Pose(),
		Vehicle: s.Vehicle.Pose(),
		House:   s.House.Pose(),
	}
}

// Run starts the main loop and returns when the player quits.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		elapsed := frameStart.Sub(lastTime)
		lastTime = frameStart

		g.input.Update()
		g.handleEvents()
		if !g.running {
			break
		}
		g.drainConfig()

		for range g.clock.Advance(elapsed) {
			g.tick()
		}

		g.render()

		if g.shotPending {
			g.shotPending = false
			g.screenshot()
		}

		g.window.SwapBuffers()

		frameCount++
		if since := time.Since(fpsTimer); since >= time.Second {
			g.fps = float64(frameCount) / since.Seconds()
			logger.Debug("fps", zap.Float64("fps", g.fps), zap.Uint64("tick", g.snap.Tick))
			frameCount = 0
			fpsTimer = time.Now()
		}

		g.limitFrameRate(frameStart)
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.cfgLog.Warn("closing watcher", zap.Error(err))
		}
	}
	if g.overlay != nil {
		g.overlay.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventQuit:
			g.running = false
		case input.EventWindowResize:
			width, height := g.window.DrawableSize()
			g.renderer.Resize(width, height)
			g.overlay.Resize(width, height)
		case input.EventFocusLost:
			// Key-up events are not delivered to an unfocused window.
			g.sampler.Reset()
		case input.EventKeyDown:
			if event.Key == "escape" {
				g.running = false
				continue
			}
			if event.Repeat {
				g.sampler.KeyRepeat(event.Key)
				continue
			}
			g.sampler.KeyDown(event.Key)
		case input.EventKeyUp:
			g.sampler.KeyUp(event.Key)
		}
	}
}

func (g *Game) tick() {
	frame := g.sampler.Sample()
	g.snap = g.world.Tick(frame)
	if slices.Contains(frame.Actions, controls.ActionScreenshot) {
		g.shotPending = true
	}
}

func (g *Game) render() {
	g.renderer.Begin()
	g.renderer.DrawScene(sceneOf(g.snap), g.world.ViewMatrix())

	width, height := g.renderer.Size()
	atlas := g.overlay.Atlas()
	const scale, pad = 2, 12

	g.overlay.Begin()

	speed := g.snap.Speedometer
	sw, sh := atlas.Measure(speed, scale)
	x, y := float32(pad), float32(height)-sh-2*pad
	g.overlay.DrawPanel(x-pad/2, y-pad/2, sw+pad, sh+pad, overlay.ColorPanelBg, overlay.ColorBorder)
	g.overlay.DrawText(x, y, speed, scale, overlay.ColorText)

	hints := hud.Hints(g.snap.Mode, g.cfg.Controls)
	hw, _ := atlas.Measure(hints, 1)
	g.overlay.DrawText(float32(width)-hw-pad, float32(height)-2*pad, hints, 1, overlay.ColorTextDim)

	if g.cfg.Game.ShowFPS {
		status := fmt.Sprintf("%s\nmode: %s  camera: %s", hud.FormatFPS(g.fps), g.snap.Mode, g.snap.CameraMode)
		g.overlay.DrawText(pad, pad, status, 1, overlay.ColorText)
	}

	g.overlay.End()
}

func sceneOf(snap world.Snapshot) renderer.Scene {
	human := snap.Human.Position
	human.Y += snap.HumanBob
	return renderer.Scene{
		House:        renderer.Placement{Position: snap.House.Position, Heading: snap.House.Heading},
		Vehicle:      renderer.Placement{Position: snap.Vehicle.Position, Heading: snap.Vehicle.Heading},
		Human:        renderer.Placement{Position: human, Heading: snap.Human.Heading},
		HumanVisible: snap.HumanVisible,
	}
}

func (g *Game) screenshot() {
	width, height := g.renderer.Size()
	path, err := g.screenshots.SavePixels(debug.ReadFramebuffer(width, height), width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// drainConfig applies a reloaded config, if one arrived since last frame.
func (g *Game) drainConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if ok {
			g.applyConfig(cfg)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.cfgLog.Warn("reload rejected, keeping previous settings", zap.Error(err))
		}
	default:
	}
}

// applyConfig switches to cfg at runtime. The window size is left to the
// player.
func (g *Game) applyConfig(cfg *config.Config) {
	logger.SetLevel(cfg.Logging.Level)
	g.sampler.SetBindings(cfg.Controls)
	g.world.SetBindings(cfg.Controls)
	g.window.SetVSync(cfg.Graphics.VSync)
	g.window.SetFullscreen(cfg.Graphics.Fullscreen)
	g.screenshots.SetDir(cfg.Game.ScreenshotDir)

	// Logging outputs and spawn points are fixed for the session.
	cfg.Logging.LogFile = g.cfg.Logging.LogFile
	cfg.Scene = g.cfg.Scene
	g.cfg = cfg

	g.cfgLog.Info("reloaded",
		zap.Bool("vsync", cfg.Graphics.VSync),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
		zap.String("log_level", cfg.Logging.Level),
	)
}

func (g *Game) limitFrameRate(frameStart time.Time) {
	if g.cfg.Graphics.FPSLimit <= 0 {
		return
	}
	budget := time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	if rest := budget - time.Since(frameStart); rest > 0 {
		time.Sleep(rest)
	}
}
