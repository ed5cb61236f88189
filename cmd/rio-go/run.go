// ABOUTME: Wires config, logging, the PTY actor and the selected front end together
// ABOUTME: UI mode runs the event loop, timers and Bubble Tea under one errgroup

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/cancelreader"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/rio-go/internal/config"
	"github.com/mauromedda/rio-go/internal/headless"
	riolog "github.com/mauromedda/rio-go/internal/log"
	"github.com/mauromedda/rio-go/internal/loop"
	"github.com/mauromedda/rio-go/internal/pty"
	"github.com/mauromedda/rio-go/internal/terminal"
	"github.com/mauromedda/rio-go/internal/ui"
	"github.com/mauromedda/rio-go/internal/xterm"
)

func run(ctx context.Context, args cliArgs, shellArgs []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(args.configPath, cwd)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, args, shellArgs); err != nil {
		return err
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}
	defer func() { _ = riolog.Close() }()

	overrides, err := cfg.PaletteOverrides()
	if err != nil {
		return err
	}
	palette, err := xterm.NewPalette(overrides)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	if !terminal.IsTerminal() {
		return errors.New("stdin is not a terminal")
	}

	session, err := pty.Spawn(pty.SpawnConfig{
		Shell: cfg.Shell,
		Args:  cfg.Args,
		Env:   cfg.Env,
		Dir:   cwd,
		Size:  cfg.WindowSize(),
	})
	if err != nil {
		return err
	}
	riolog.Info("started %s (headless=%t)", cfg.Shell, args.headless)

	if args.headless {
		return runHeadless(ctx, cfg, session)
	}
	return runUI(ctx, cfg, session, palette)
}

// setupLogging sends logs to a file since both front ends own the screen.
func setupLogging(cfg *config.Config) error {
	riolog.SetLevel(riolog.ParseLevel(cfg.Log.Level))

	path := cfg.Log.File
	if path == "" {
		path = config.LogFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return riolog.OpenFile(path)
}

func runHeadless(ctx context.Context, cfg *config.Config, session *pty.Session) error {
	host := terminal.NewProcessTerminal(cfg.Window.CellWidth, cfg.Window.CellHeight)
	defer host.Close()
	defer terminal.RestoreOnPanic(host)

	in, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return fmt.Errorf("wrapping stdin: %w", err)
	}
	defer func() { _ = in.Close() }()

	return headless.Run(ctx, session, host, in)
}

func runUI(ctx context.Context, cfg *config.Config, session *pty.Session, palette *xterm.Palette) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l := loop.New()
	listener := l.Listener()
	screen := ui.NewScreen(ui.DefaultScrollback)

	model := ui.NewModel(session.Notifier(), screen, ui.Options{
		Size:         cfg.WindowSize(),
		Palette:      palette,
		Blinking:     cfg.Cursor.Blinking,
		VisualBell:   cfg.Bell.Visual,
		BellDuration: cfg.Bell.Duration.Std(),
		Host:         os.Stdout,
	})
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.Run(gctx, screen, listener)
	})
	g.Go(func() error {
		return ui.Bridge(gctx, program, l)
	})
	g.Go(func() error {
		defer cancel()
		defer session.Notifier().Shutdown()
		_, err := program.Run()
		if err == nil || errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	})

	if cfg.Cursor.Blinking {
		loop.StartCursorBlink(gctx, listener, cfg.Cursor.BlinkInterval.Std(), cfg.Cursor.BlinkTimeout.Std())
	}
	loop.StartFrameTicker(gctx, listener, cfg.FPS)

	return g.Wait()
}
