package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrInvalidAmount is returned for stakes that are not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds is returned when a stake exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Ledger tracks a single player's balance, staked money and statistics.
type Ledger struct {
	mu      sync.RWMutex
	balance int
	staked  int
	stats   Stats
	entries []Entry
	now     func() time.Time
}

// New creates a ledger opened with the given balance and statistics.
// The first journal entry records the opening balance.
func New(balance int, stats Stats) *Ledger {
	l := &Ledger{
		balance: balance,
		stats:   stats,
		now:     time.Now,
	}
	l.entries = append(l.entries, Entry{
		Index:     0,
		Timestamp: l.now().Unix(),
		Kind:      KindOpen,
		Amount:    balance,
		Balance:   balance,
	})
	return l
}

// Balance returns the money not currently on the table.
func (l *Ledger) Balance() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance
}

// Staked returns the money currently on the table.
func (l *Ledger) Staked() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.staked
}

// Stats returns a copy of the outcome counters.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}

// Stake moves amount from the balance onto the table.
func (l *Ledger) Stake(amount int, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return fmt.Errorf("stake %d: %w", amount, ErrInvalidAmount)
	}
	if amount > l.balance {
		return fmt.Errorf("stake %d with balance %d: %w", amount, l.balance, ErrInsufficientFunds)
	}
	l.balance -= amount
	l.staked += amount
	l.append(KindStake, amount, reason)
	return nil
}

// Settle clears the table, credits payout to the balance and counts the
// outcome, all under one lock so readers never see the payout without the
// counter. A payout of zero records a lost stake; OutcomeNone leaves the
// statistics alone.
func (l *Ledger) Settle(payout int, outcome Outcome, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if payout < 0 {
		return fmt.Errorf("payout %d: %w", payout, ErrInvalidAmount)
	}
	l.balance += payout
	l.staked = 0
	l.stats.record(outcome)
	l.append(KindPayout, payout, reason)
	return nil
}

// Refund returns everything on the table to the balance and reports how much
// was returned.
func (l *Ledger) Refund(reason string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	amount := l.staked
	if amount == 0 {
		return 0
	}
	l.balance += amount
	l.staked = 0
	l.append(KindRefund, amount, reason)
	return amount
}

// Entries returns a copy of the journal.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Verify replays the journal and checks index continuity and running
// balances against the current state.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 || l.entries[0].Kind != KindOpen {
		return fmt.Errorf("journal does not start with an opening entry")
	}

	balance, staked := l.entries[0].Balance, 0
	for i := 1; i < len(l.entries); i++ {
		e := l.entries[i]
		if e.Index != l.entries[i-1].Index+1 {
			return fmt.Errorf("entry %d: invalid index: expected %d, got %d", i, l.entries[i-1].Index+1, e.Index)
		}
		switch e.Kind {
		case KindStake:
			balance -= e.Amount
			staked += e.Amount
		case KindPayout:
			balance += e.Amount
			staked = 0
		case KindRefund:
			balance += e.Amount
			staked = 0
		default:
			return fmt.Errorf("entry %d: unexpected kind %q", i, e.Kind)
		}
		if balance != e.Balance || staked != e.Staked {
			return fmt.Errorf("entry %d: expected balance %d staked %d, got %d and %d", i, balance, staked, e.Balance, e.Staked)
		}
	}
	if balance != l.balance || staked != l.staked {
		return fmt.Errorf("journal ends at balance %d staked %d, ledger holds %d and %d", balance, staked, l.balance, l.staked)
	}
	return nil
}

// append must be called with the lock held.
func (l *Ledger) append(kind Kind, amount int, reason string) {
	l.entries = append(l.entries, Entry{
		Index:     len(l.entries),
		Timestamp: l.now().Unix(),
		Kind:      kind,
		Amount:    amount,
		Balance:   l.balance,
		Staked:    l.staked,
		Reason:    reason,
	})
}
