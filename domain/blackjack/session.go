package blackjack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"
	"go.uber.org/multierr"

	"github.com/luca-patrignani/casino/domain/cards"
	"github.com/luca-patrignani/casino/ledger"
	"github.com/luca-patrignani/casino/store"
)

// StoreKey is the key of the blackjack record in the store.
const StoreKey = "blackjack"

// Console is what the session needs from the terminal. Prompt and Pause
// return io.EOF when input is exhausted, which the session treats as quit.
type Console interface {
	Prompt(label string) (string, error)
	Pause(label string) error
	Render(v TableView)
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Summary(bankroll int, stats ledger.Stats)
}

// Session is a blackjack game: one player, one ledger, rounds played until
// the player quits or runs out of money.
type Session struct {
	ID      string
	shoe    Drawer
	ledger  *ledger.Ledger
	store   store.Store
	console Console
	logger  *slog.Logger
	policy  DealerPolicy
}

type option func(Session) Session

func WithLogger(logger *slog.Logger) option {
	return func(s Session) Session {
		s.logger = logger
		return s
	}
}

func WithDealerPolicy(p DealerPolicy) option {
	return func(s Session) Session {
		s.policy = p
		return s
	}
}

// NewSession loads the saved bankroll and statistics and prepares a game.
// A missing or unreadable record starts from the defaults.
func NewSession(ctx context.Context, shoe Drawer, st store.Store, c Console, opts ...option) *Session {
	s := Session{
		ID:      uuid.NewString(),
		shoe:    shoe,
		store:   st,
		console: c,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy:  DefaultDealerPolicy,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	rec := store.LoadOrDefault(ctx, st, StoreKey, s.logger)
	s.ledger = ledger.New(rec.Bankroll, rec.StatsOrZero())
	s.logger.Info("blackjack session started", "session", s.ID, "bankroll", rec.Bankroll)
	return &s
}

func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Run plays rounds until the player quits or is broke, then shows the
// statistics. The record is saved after every round and once more at the end.
func (s *Session) Run(ctx context.Context) error {
	err := s.play(ctx)
	s.Summary()
	return multierr.Append(err, s.save(ctx))
}

func (s *Session) play(ctx context.Context) error {
	if s.ledger.Balance() <= 0 {
		s.console.Warn("You're broke! Game over!")
		return nil
	}
	for {
		step, err := s.PlayRound(ctx)
		if err != nil || step == Aborted {
			return err
		}
		if err := s.save(ctx); err != nil {
			return err
		}
		if s.ledger.Balance() <= 0 {
			s.console.Warn("You're broke! Game over!")
			return nil
		}
	}
}

// PlayRound plays a single hand. It returns Aborted when the player quits,
// Done otherwise.
func (s *Session) PlayRound(ctx context.Context) (Step, error) {
	r := NewRound(s.shoe, s.ledger, s.policy)

	step, err := s.takeBet(r)
	if err != nil || step == Aborted {
		return step, err
	}
	s.logger.Info("round started", "round", r.ID, "wager", r.Player.Wager)

	if err := r.Deal(); err != nil {
		return Aborted, err
	}
	if r.Phase() == PhasePlayerActing {
		step, err := s.playerTurn(r)
		if err != nil || step == Aborted {
			s.logger.Info("round aborted", "round", r.ID)
			return step, err
		}
	}
	if r.Phase() == PhaseDealerActing {
		if err := s.dealerTurn(r); err != nil {
			return Aborted, err
		}
	}

	settlement, ok := r.Settlement()
	if !ok {
		return Aborted, fmt.Errorf("round %s ended without settlement", r.ID)
	}
	s.console.Render(r.View(true))
	s.announce(settlement)
	s.logger.Info("round settled", "round", r.ID, "result", settlement.Result, "payout", settlement.Payout, "bankroll", s.ledger.Balance())
	s.dump(ctx, "round state", r.View(true))

	if err := s.console.Pause("Press Enter to continue..."); errors.Is(err, io.EOF) {
		return Aborted, nil
	}
	return Done, nil
}

func (s *Session) takeBet(r *Round) (Step, error) {
	for {
		balance := s.ledger.Balance()
		input, err := s.console.Prompt(fmt.Sprintf("Place your bet (1-%d, or 'q' to quit): $", balance))
		if errors.Is(err, io.EOF) {
			return Aborted, nil
		}
		if err != nil {
			return Aborted, err
		}
		amount, quit, err := ParseBet(input, balance)
		if quit {
			r.Abort()
			return Aborted, nil
		}
		if err == nil {
			err = r.PlaceBet(amount)
		}
		if err != nil {
			s.console.Warn(betNotice(err, balance))
			continue
		}
		return Continue, nil
	}
}

func betNotice(err error, balance int) string {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fmt.Sprintf("Insufficient funds! You have $%d", balance)
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Bet must be positive!"
	default:
		return "Please enter a valid number!"
	}
}

func (s *Session) playerTurn(r *Round) (Step, error) {
	for {
		s.console.Render(r.View(false))
		input, err := s.console.Prompt(actionPrompt(r.CanDouble()))
		if errors.Is(err, io.EOF) {
			r.Abort()
			return Aborted, nil
		}
		if err != nil {
			r.Abort()
			return Aborted, err
		}

		action, err := ParseAction(input)
		if err != nil {
			s.console.Warn("Invalid choice!")
			continue
		}
		step, err := r.Act(action)
		if errors.Is(err, ErrIllegalAction) {
			s.console.Warn("Invalid choice!")
			continue
		}
		if err != nil {
			r.Abort()
			return Aborted, err
		}

		switch action {
		case ActionHit:
			s.console.Info(fmt.Sprintf("You drew: %s", last(r.Player)))
		case ActionDouble:
			s.console.Info(fmt.Sprintf("You doubled down and drew: %s", last(r.Player)))
		}
		if step != Continue {
			return step, nil
		}
	}
}

func actionPrompt(canDouble bool) string {
	if canDouble {
		return "[h] Hit  [s] Stand  [d] Double Down  [q] Quit\nYour choice"
	}
	return "[h] Hit  [s] Stand  [q] Quit\nYour choice"
}

// dealerTurn pauses between draws so the player can follow the dealer.
func (s *Session) dealerTurn(r *Round) error {
	s.console.Info("Dealer's turn...")
	_ = s.console.Pause("Press Enter to continue...")
	_, err := r.PlayDealer(func(c cards.Card) {
		s.console.Render(r.View(true))
		s.console.Info(fmt.Sprintf("Dealer drew: %s", c))
		_ = s.console.Pause("Press Enter to continue...")
	})
	return err
}

func (s *Session) announce(st Settlement) {
	switch st.Outcome {
	case ledger.OutcomeWin, ledger.OutcomeBlackjack:
		s.console.Success(st.Message())
	case ledger.OutcomeLoss:
		s.console.Warn(st.Message())
	default:
		s.console.Info(st.Message())
	}
}

// Summary shows the bankroll and the statistics.
func (s *Session) Summary() {
	s.console.Summary(s.ledger.Balance(), s.ledger.Stats())
}

// Flush returns any stake still on the table and saves the record. It is
// safe to call from another goroutine while a round is waiting for input.
func (s *Session) Flush(ctx context.Context) error {
	if refunded := s.ledger.Refund("flush " + s.ID); refunded > 0 {
		s.logger.Info("refunded open stake", "session", s.ID, "amount", refunded)
	}
	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	stats := s.ledger.Stats()
	rec := store.Record{Bankroll: s.ledger.Balance(), Stats: &stats}
	if err := s.store.Save(ctx, StoreKey, rec); err != nil {
		s.logger.Error("failed to save record", "session", s.ID, "error", err)
		return fmt.Errorf("failed to save %s record: %w", StoreKey, err)
	}
	return nil
}

func (s *Session) dump(ctx context.Context, msg string, v any) {
	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug(msg, "session", s.ID, "state", litter.Sdump(v))
	}
}

func last(h Hand) string {
	if len(h.Cards) == 0 {
		return ""
	}
	return h.Cards[len(h.Cards)-1].String()
}
