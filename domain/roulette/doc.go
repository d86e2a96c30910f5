// Package roulette implements a single-zero roulette table with outside
// bets: colours, parity, halves, dozens and a straight bet on zero.
//
// Bets are staked as soon as they are placed and stay on the table until the
// next spin or until they are cleared. Every bet resolves on its own against
// the winning pocket and the total is credited in one step.
package roulette
