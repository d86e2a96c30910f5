package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"go.uber.org/multierr"

	"github.com/luca-patrignani/casino/config"
	"github.com/luca-patrignani/casino/console"
	"github.com/luca-patrignani/casino/domain/roulette"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		pterm.Fprintln(errOut, pterm.Error.Sprint(err))
		return 1
	}
	logger := cfg.Logger(errOut)

	st, err := cfg.OpenStore()
	if err != nil {
		logger.Error("failed to open store", "error", err)
		return 1
	}

	term := console.New(in, out)
	table := console.NewRoulette(term)
	term.Banner("Roulette", console.RouletteRules...)

	session := roulette.NewSession(ctx, cfg.Source(), st, table, roulette.WithLogger(logger))
	done := make(chan error, 1)
	go func() {
		if err := term.Pause("Press Enter to start..."); err != nil && !errors.Is(err, io.EOF) {
			done <- err
			return
		}
		done <- session.Run(context.WithoutCancel(ctx))
	}()

	select {
	case err := <-done:
		if err := multierr.Append(err, st.Close()); err != nil {
			logger.Error("roulette ended with errors", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		term.Warn("Game interrupted. Saving stats...")
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := multierr.Append(session.Flush(flushCtx), st.Close()); err != nil {
			logger.Error("failed to save on interrupt", "error", err)
		}
		session.Final()
		return 0
	}
}
