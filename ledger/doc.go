// Package ledger implements the bankroll ledger of a single player: the
// balance, the amount currently staked on the table and the running
// outcome statistics.
//
// # Core Components
//
// Ledger: Balance plus an append-only journal of every movement. Money leaves
// the balance when it is staked and comes back through Settle (payouts) or
// Refund (cancelled bets).
//
// Entry: A single movement with its index, timestamp, kind, amount and the
// balance after it was applied.
//
// Stats: Wins, losses, pushes and blackjacks, updated once per settled round.
//
// # Integrity
//
// Verify replays the journal and checks index continuity and the running
// balance against the current state.
//
// # Concurrency
//
// A Ledger is safe for concurrent use. The games mutate it from the game loop
// while the interrupt handler may read it to flush the record to storage.
package ledger
