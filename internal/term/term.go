// Package term hosts the particle field in a terminal. One cell covers
// CellW×CellH surface units; the mouse drives the pointer and bursts.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"driftfield/internal/audio"
	"driftfield/internal/field"
)

type Config struct {
	Seed  uint64
	FPS   int
	Fade  field.Fade
	Audio *audio.System // nil plays nothing
}

// Run takes over the terminal until ctx is done or the user quits.
func Run(ctx context.Context, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	return run(ctx, screen, cfg)
}

// run drives an initialised screen and finalises it before returning.
// Events are read on one goroutine and handed to the frame loop, which is the
// only goroutine that touches the field.
func run(ctx context.Context, screen tcell.Screen, cfg Config) error {
	ctx, cancel := context.WithCancel(ctx)
	s := newSession(screen, cfg)

	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}

	events := make(chan tcell.Event, 64)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// Fini unblocks PollEvent above.
		defer screen.Fini()
		defer cancel()

		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		start := time.Now()

		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if !s.handle(ev) {
					return nil
				}
			case <-ticker.C:
				s.frame(time.Since(start))
			}
		}
	})

	return g.Wait()
}

// session is the per-run state owned by the frame loop.
type session struct {
	screen tcell.Screen
	cfg    Config
	f      *field.Field
	bus    *field.EventBus
	raster *Raster

	prevButtons tcell.ButtonMask
	conns       []field.Connection
}

func newSession(screen tcell.Screen, cfg Config) *session {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	s := &session{
		screen: screen,
		cfg:    cfg,
		f:      field.NewField(cols*CellW, rows*CellH, field.NewRand(cfg.Seed)),
		bus:    field.NewEventBus(),
		raster: NewRaster(cols, rows),
	}
	slog.Info("field ready", "cols", cols, "rows", rows, "particles", s.f.Len(), "seed", cfg.Seed)

	s.f.Attach(s.bus)
	s.bus.Subscribe(field.EventResize, func(e field.Event) {
		s.raster.Resize(e.Width/CellW, e.Height/CellH)
		slog.Debug("surface resized", "width", e.Width, "height", e.Height, "particles", s.f.Len())
	})
	s.bus.Subscribe(field.EventClick, func(e field.Event) {
		pan := 0.0
		if s.f.W > 0 {
			pan = e.X/s.f.W*2 - 1
		}
		s.cfg.Audio.PlayBurst(pan)
	})
	return s
}

// handle translates one terminal event. It returns false when the user quits.
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			return false
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.screen.Sync()
		s.bus.Emit(field.Event{Type: field.EventResize, Width: cols * CellW, Height: rows * CellH})

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := cellCentre(cx, cy)
		s.bus.Emit(field.Event{Type: field.EventPointerMove, X: x, Y: y})

		// A click completes when the left button is released.
		buttons := ev.Buttons()
		if s.prevButtons&tcell.Button1 != 0 && buttons&tcell.Button1 == 0 {
			s.bus.Emit(field.Event{Type: field.EventClick, X: x, Y: y})
		}
		s.prevButtons = buttons
	}
	return true
}

// frame advances the field one tick and redraws.
func (s *session) frame(elapsed time.Duration) {
	s.f.Update()
	s.conns = s.f.Connections(s.conns)
	s.raster.Draw(s.f, s.conns)
	s.raster.Flush(s.screen, s.cfg.Fade.Alpha(elapsed))
	s.screen.Show()
}

func cellCentre(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * CellW, (float64(cy) + 0.5) * CellH
}
