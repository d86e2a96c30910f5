package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"go.uber.org/multierr"

	"github.com/luca-patrignani/casino/config"
	"github.com/luca-patrignani/casino/console"
	"github.com/luca-patrignani/casino/domain/blackjack"
	"github.com/luca-patrignani/casino/domain/deck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run plays until the player leaves and returns the exit code. When ctx is
// cancelled the bankroll is saved and the statistics shown.
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
	table := console.NewBlackjack(term)
	term.Banner("Blackjack", console.BlackjackRules...)

	shoe, err := deck.New(cfg.Decks,
		deck.WithSource(cfg.Source()),
		deck.WithReshuffleHook(func() {
			term.Info("Reshuffling deck...")
			logger.Info("shoe rebuilt", "decks", cfg.Decks)
		}),
	)
	if err != nil {
		logger.Error("failed to build shoe", "error", err)
		return 1
	}
	logger.Debug("shoe ready", "decks", shoe.Decks(), "cards", shoe.Remaining())

	session := blackjack.NewSession(ctx, shoe, st, table, blackjack.WithLogger(logger))
	done := make(chan error, 1)
	go func() {
		done <- session.Run(context.WithoutCancel(ctx))
	}()

	select {
	case err := <-done:
		if err := multierr.Append(err, st.Close()); err != nil {
			logger.Error("blackjack ended with errors", "error", err)
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
		session.Summary()
		return 0
	}
}
