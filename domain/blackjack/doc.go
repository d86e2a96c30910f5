// Package blackjack implements single-seat blackjack against a computer
// dealer.
//
// # Core Types
//
// Hand: the cards of the player or the dealer, plus the player's wager.
//
// Round: one hand from bet to settlement. A round moves through the phases
// awaiting_bet → dealt → player_acting → dealer_acting → settled and is
// thrown away afterwards.
//
// Session: the game loop. It owns the shoe, the bankroll ledger, the store
// and the console, and plays rounds until the player quits or goes broke.
//
// # Payouts
//
// A natural blackjack returns 2.5× the wager, any other win returns 2×, a
// push returns the wager. The dealer hits below 17 and stands on every 17,
// soft ones included.
package blackjack
