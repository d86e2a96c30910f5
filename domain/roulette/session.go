package roulette

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"
	"go.uber.org/multierr"

	"github.com/luca-patrignani/casino/domain/deck"
	"github.com/luca-patrignani/casino/ledger"
	"github.com/luca-patrignani/casino/store"
)

// StoreKey is the key of the roulette record in the store.
const StoreKey = "roulette"

// TeaserLength is how many pockets flash by before the result.
const TeaserLength = 3

// TableView is what the console shows between spins.
type TableView struct {
	Bankroll int
	Bets     []Bet
	Staked   int
}

// Console is what the session needs from the terminal. Prompt and Pause
// return io.EOF when input is exhausted, which the session treats as quit.
type Console interface {
	Prompt(label string) (string, error)
	Pause(label string) error
	Render(v TableView)
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Spinning(teaser []int)
	Result(r SpinResult, bankroll int)
	Final(bankroll int)
}

// Session is a roulette game for one player.
type Session struct {
	ID      string
	ledger  *ledger.Ledger
	wheel   *Wheel
	table   *Table
	store   store.Store
	console Console
	logger  *slog.Logger
}

type option func(Session) Session

func WithLogger(logger *slog.Logger) option {
	return func(s Session) Session {
		s.logger = logger
		return s
	}
}

// NewSession loads the saved bankroll and prepares a table spinning with
// src. A missing or unreadable record starts from the default bankroll.
func NewSession(ctx context.Context, src deck.Source, st store.Store, c Console, opts ...option) *Session {
	s := Session{
		ID:      uuid.NewString(),
		wheel:   NewWheel(src),
		store:   st,
		console: c,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	rec := store.LoadOrDefault(ctx, st, StoreKey, s.logger)
	s.ledger = ledger.New(rec.Bankroll, ledger.Stats{})
	s.table = NewTable(s.ledger, s.wheel)
	s.logger.Info("roulette session started", "session", s.ID, "bankroll", rec.Bankroll)
	return &s
}

func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

func (s *Session) Table() *Table {
	return s.table
}

func (s *Session) view() TableView {
	return TableView{Bankroll: s.ledger.Balance(), Bets: s.table.Bets(), Staked: s.table.Total()}
}

// Run takes commands until the player quits or has no money left on or off
// the table. Unspun bets are refunded before the final save.
func (s *Session) Run(ctx context.Context) error {
	err := s.play(ctx)
	if refunded := s.table.Clear(); refunded > 0 {
		s.logger.Info("refunded unspun bets", "session", s.ID, "amount", refunded)
	}
	s.Final()
	return multierr.Append(err, s.save(ctx))
}

func (s *Session) play(ctx context.Context) error {
	for {
		if s.ledger.Balance() <= 0 && len(s.table.Bets()) == 0 {
			s.console.Warn("You're broke! Game over!")
			return nil
		}
		s.console.Render(s.view())
		choice, err := s.console.Prompt("Select bet type (0-9) or 's' to spin, 'c' to clear bets, 'q' to quit")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := s.Handle(ctx, choice)
		if err != nil || quit {
			return err
		}
	}
}

// Handle executes one menu command. quit is true when the player typed q.
func (s *Session) Handle(ctx context.Context, choice string) (quit bool, err error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "q":
		return true, nil
	case "s":
		return false, s.Spin(ctx)
	case "c":
		s.table.Clear()
		s.console.Info("Bets cleared!")
		return false, nil
	}

	category, err := ParseCategory(choice)
	if err != nil {
		s.console.Warn("Invalid choice!")
		return false, nil
	}
	balance := s.ledger.Balance()
	input, err := s.console.Prompt(fmt.Sprintf("Bet amount (max $%d): $", balance))
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	amount, err := ledger.ParseAmount(input, balance)
	if err == nil {
		err = s.table.Place(category, amount)
	}
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		s.console.Warn("Insufficient funds!")
	case errors.Is(err, ledger.ErrInvalidAmount):
		s.console.Warn("Minimum bet is $1!")
	case err != nil:
		s.console.Warn("Invalid amount!")
	default:
		s.console.Info(fmt.Sprintf("Bet %s", Bet{Category: category, Amount: amount}))
		s.logger.Debug("bet placed", "session", s.ID, "category", category, "amount", amount)
	}
	return false, nil
}

// Spin spins the wheel for the bets on the table and saves the bankroll.
// An empty table only produces a notice.
func (s *Session) Spin(ctx context.Context) error {
	if len(s.table.Bets()) == 0 {
		s.console.Warn("No bets placed!")
		return nil
	}
	s.console.Render(s.view())
	s.console.Info("Spinning the wheel...")
	_ = s.console.Pause("Press Enter to spin...")
	s.console.Spinning(s.wheel.Teaser(TeaserLength))

	r, err := s.table.Spin()
	if err != nil {
		return err
	}
	s.console.Result(r, s.ledger.Balance())
	s.logger.Info("wheel spun", "session", s.ID, "spin", r.ID, "number", r.Number, "staked", r.Staked, "won", r.Total, "bankroll", s.ledger.Balance())
	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug("spin state", "session", s.ID, "state", litter.Sdump(r))
	}
	if err := s.save(ctx); err != nil {
		return err
	}
	_ = s.console.Pause("Press Enter to continue...")
	return nil
}

// Flush returns unspun bets to the bankroll and saves it. It only touches
// the ledger, so it is safe to call while the game waits for input.
func (s *Session) Flush(ctx context.Context) error {
	if refunded := s.ledger.Refund("flush " + s.ID); refunded > 0 {
		s.logger.Info("refunded unspun bets", "session", s.ID, "amount", refunded)
	}
	return s.save(ctx)
}

// Final shows the closing bankroll.
func (s *Session) Final() {
	s.console.Final(s.ledger.Balance())
}

func (s *Session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, StoreKey, store.Record{Bankroll: s.ledger.Balance()}); err != nil {
		s.logger.Error("failed to save record", "session", s.ID, "error", err)
		return fmt.Errorf("failed to save %s record: %w", StoreKey, err)
	}
	return nil
}
