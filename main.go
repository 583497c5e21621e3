package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"shuriken/app"
	"shuriken/export"
	"shuriken/hal"
	"shuriken/internal/buildinfo"
	"shuriken/internal/config"
	"shuriken/internal/logging"
)

// terminalLogFile keeps log lines off the terminal surface.
const terminalLogFile = "shuriken.log"

func main() {
	var flags config.Flags
	var version bool
	flags.Register(flag.CommandLine)
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	if err := run(flag.CommandLine, &flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fs *flag.FlagSet, flags *config.Flags) error {
	cfg, err := config.Load(flags.Path)
	if err != nil {
		return err
	}
	flags.Apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode, _ := cfg.AnimMode()

	if cfg.Surface == config.SurfaceTerminal && isStdStream(cfg.Log.Output) {
		cfg.Log.Output = terminalLogFile
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("surface", cfg.Surface),
		zap.Stringer("mode", mode),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	var a *app.App
	newApp := func(h hal.HAL) (func() error, error) {
		var err error
		a, err = app.New(h, app.Config{
			Mode:  mode,
			Seed:  cfg.Seed,
			HUD:   cfg.HUD,
			Chime: cfg.Audio,
		})
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}

	opts := hal.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Audio:  cfg.Audio,
		Log:    log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Surface {
	case config.SurfaceHeadless:
		_, err = hal.RunHeadless(ctx, hal.HeadlessOptions{
			Options:     opts,
			Hz:          cfg.Headless.Hz,
			Frames:      cfg.Headless.Frames,
			DigestEvery: cfg.Headless.DigestEvery,
		}, newApp)
	case config.SurfaceTerminal:
		err = hal.RunTerminal(ctx, hal.TerminalOptions{Options: opts, TPS: cfg.Window.TPS}, newApp)
	default:
		err = hal.RunWindow(hal.WindowOptions{Options: opts, Scale: cfg.Window.Scale, TPS: cfg.Window.TPS}, newApp)
	}
	if err != nil && !errors.Is(err, hal.ErrQuit) {
		log.Error("run failed", zap.Error(err))
		return err
	}

	if cfg.SVG != "" && a != nil {
		if err := writeSnapshot(cfg.SVG, a, cfg.Width, cfg.Height); err != nil {
			log.Error("svg snapshot", zap.Error(err))
			return err
		}
		log.Info("svg snapshot written", zap.String("path", cfg.SVG))
	}
	log.Info("stopped")
	return nil
}

func writeSnapshot(path string, a *app.App, w, h int) error {
	s := a.State()
	return export.WriteFile(path, export.Frame{
		Width:      w,
		Height:     h,
		Background: s.ClearColor(),
		Batch:      a.Batch(),
		Title:      fmt.Sprintf("%s frame %d", s.Mode, s.Frame),
	})
}

func isStdStream(out string) bool {
	return out == "" || out == "stderr" || out == "stdout"
}
