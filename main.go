// Command driftfield renders an ambient, interactive particle field: drifting
// glowing dots that link up when close, shy away from the pointer and burst
// on click.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"driftfield/internal/audio"
	"driftfield/internal/desktop"
	"driftfield/internal/field"
	"driftfield/internal/term"
)

const seedEnv = "DRIFTFIELD_SEED"

func main() {
	var (
		backend  = flag.String("backend", "desktop", "surface to draw on: desktop or term")
		width    = flag.Int("width", 1280, "initial window width (desktop)")
		height   = flag.Int("height", 800, "initial window height (desktop)")
		seedFlag = flag.Uint64("seed", 0, "random seed; 0 reads "+seedEnv+" or falls back to the clock")
		mute     = flag.Bool("mute", false, "disable the burst chime")
		volume   = flag.Float64("volume", 0.5, "chime volume 0..1")
		fps      = flag.Int("fps", 60, "frame rate (term)")
		logPath  = flag.String("log", "", "log file; empty logs to stderr (desktop) or nowhere (term)")
		logLevel = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	logger, closeLog, err := newLogger(*backend, *logPath, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "driftfield: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(*backend, *width, *height, resolveSeed(*seedFlag, os.Getenv(seedEnv)), *mute, *volume, *fps); err != nil {
		slog.Error("exiting", "err", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "driftfield: %v\n", err)
		os.Exit(1)
	}
}

func run(backend string, width, height int, seed uint64, mute bool, volume float64, fps int) error {
	var snd *audio.System
	if !mute {
		s, err := audio.Init(volume)
		if err != nil {
			slog.Warn("audio init failed, continuing without sound", "err", err)
		} else {
			snd = s
		}
	}

	switch backend {
	case "desktop":
		return desktop.Run(desktop.Config{
			Title:  "driftfield",
			Width:  width,
			Height: height,
			Seed:   seed,
			Fade:   field.DefaultFade,
			Audio:  snd,
		})
	case "term":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return term.Run(ctx, term.Config{
			Seed:  seed,
			FPS:   fps,
			Fade:  field.DefaultFade,
			Audio: snd,
		})
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}

// resolveSeed prefers the flag, then the environment, then the clock.
func resolveSeed(flagSeed uint64, env string) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil {
			return v
		}
	}
	return uint64(time.Now().UnixNano())
}

// newLogger builds the process logger. The terminal backend owns stdout and
// stderr, so it only logs when given a file.
func newLogger(backend, path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case backend == "term":
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
