// Package desktop hosts the particle field in a GLFW window rendered with
// OpenGL.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"driftfield/internal/audio"
	"driftfield/internal/field"
)

type Config struct {
	Title         string
	Width, Height int
	Seed          uint64
	Fade          field.Fade
	Audio         *audio.System // nil plays nothing
}

// Run opens the window and drives the field until the window is closed.
// It must be called from the main goroutine.
func Run(cfg Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	f := field.NewField(fbW, fbH, field.NewRand(cfg.Seed))
	slog.Info("field ready", "width", fbW, "height", fbH, "particles", f.Len(), "seed", cfg.Seed)

	bus := field.NewEventBus()
	f.Attach(bus)
	bus.Subscribe(field.EventResize, func(e field.Event) {
		slog.Debug("surface resized", "width", e.Width, "height", e.Height, "particles", f.Len())
	})
	bus.Subscribe(field.EventClick, func(e field.Event) {
		cfg.Audio.PlayBurst(panFor(e.X, f.W))
	})
	bindInput(window, bus)

	// Reusable render buffers.
	var dotBuf, haloBuf, lineBuf []float32
	var conns []field.Connection

	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised: nothing to draw, but keep pumping events.
			glfw.WaitEventsTimeout(0.1)
			continue
		}

		f.Update()

		rend.BeginFrame(fbW, fbH, cfg.Fade.Alpha(time.Since(start)))
		dotBuf, haloBuf = f.RenderData(dotBuf, haloBuf)
		rend.DrawHalos(haloBuf)
		rend.DrawDots(dotBuf)
		conns = f.Connections(conns)
		lineBuf = f.LineData(conns, lineBuf)
		rend.DrawLines(lineBuf)
		rend.EndFrame()

		window.SwapBuffers()
	}
	return nil
}

// panFor maps a surface x coordinate to a stereo pan in [-1, 1].
func panFor(x, w float64) float64 {
	if w <= 0 {
		return 0
	}
	return x/w*2 - 1
}
