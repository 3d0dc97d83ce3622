// Package app wires the window, input, camera, physics and locomotion
// together and runs the main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/internal/engine/camera"
	"github.com/Faultbox/strider/internal/engine/input"
	"github.com/Faultbox/strider/internal/engine/physics"
	"github.com/Faultbox/strider/internal/engine/render"
	"github.com/Faultbox/strider/internal/engine/window"
	"github.com/Faultbox/strider/internal/locomotion"
	"github.com/Faultbox/strider/internal/logger"
	"github.com/Faultbox/strider/pkg/math"
)

// maxFrameTime caps the simulation debt a single slow frame can create.
const maxFrameTime = 0.25

// App is the main application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *render.Renderer
	input    *input.Input
	rig      *camera.Rig
	body     *physics.Body
	ctrl     *locomotion.Controller

	grid []render.Vertex
}

// New creates the application: window and GL context first, then the
// renderer, then the simulation objects.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Strider",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = render.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.rig = camera.New(camera.Config{
		Sensitivity: cfg.Camera.MouseSensitivity,
		MinPitch:    cfg.Camera.MinPitch,
		MaxPitch:    cfg.Camera.MaxPitch,
		Distance:    cfg.Camera.Distance,
		MinDistance: cfg.Camera.MinDistance,
		MaxDistance: cfg.Camera.MaxDistance,
	})

	a.body = physics.NewBody(math.Vec3{}, 0)
	a.ctrl = locomotion.New(locomotion.Tuning{
		MaxSpeed:       cfg.Movement.MaxSpeed,
		TimeToMaxSpeed: cfg.Movement.TimeToMaxSpeed,
		TurnTime:       cfg.Movement.TurnTime,
		TurnEpsilon:    cfg.Movement.TurnEpsilon,
	}, a.body, a.rig, a.input)

	a.grid = render.GridLines(20, 1, 0)

	logger.Info("app initialized",
		zap.Float32("tick_rate", cfg.Simulation.TickRate),
		zap.Float32("max_speed", cfg.Movement.MaxSpeed),
	)
	return a, nil
}

// Run starts the main loop: render as fast as the display allows, advance
// the simulation on a fixed tick.
func (a *App) Run() error {
	a.running = true

	tickDt := 1 / a.cfg.Simulation.TickRate
	accumulator := float32(0)

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		if a.input.Update() {
			break
		}
		a.handleEvents()

		// Fixed-timestep simulation. Mouse deltas were already applied
		// to the rig in handleEvents, independent of tick cadence; the
		// controller samples the rig's yaw once per tick.
		accumulator += dt
		for accumulator >= tickDt {
			a.ctrl.Step(tickDt)
			a.body.Integrate(tickDt)
			accumulator -= tickDt
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("frame stats",
				zap.Int("fps", frameCount),
				zap.Float32("speed", a.ctrl.Speed()),
				zap.Bool("turning", a.ctrl.Turning()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents routes this frame's input events. Clicking the window
// captures the pointer; Escape releases it, or quits when already released.
func (a *App) handleEvents() {
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			a.renderer.Resize(e.Width, e.Height)

		case input.EventKeyDown:
			if e.Key == sdl.SCANCODE_ESCAPE {
				if a.input.Mode() == input.ModeCaptured {
					a.input.SetMode(input.ModeVisible)
				} else {
					a.running = false
				}
			}

		case input.EventMouseDown:
			if a.input.Mode() == input.ModeVisible {
				a.input.SetMode(input.ModeCaptured)
			}

		case input.EventMouseMove:
			if a.input.Mode() == input.ModeCaptured {
				a.rig.ApplyMouseDelta(e.MouseDX, e.MouseDY)
			}

		case input.EventMouseWheel:
			a.rig.HandleZoom(e.WheelY)
		}
	}
}

func (a *App) render() {
	a.renderer.Begin()

	proj := math.Perspective(math.Radians(60), a.window.AspectRatio(), 0.1, 200)
	view := a.rig.ViewMatrix(a.body.Position)
	viewProj := proj.Mul(view)

	a.renderer.DrawLines(a.grid, viewProj)
	a.renderer.DrawTriangles(render.HeadingMarker(a.body.Position, a.body.Orientation(), 0.5), viewProj)
	a.renderer.DrawLines(render.VelocityLine(a.body.Position, a.body.Velocity), viewProj)
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
