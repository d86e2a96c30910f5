package roulette

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownBet is returned for a menu choice that names no bet.
	ErrUnknownBet = errors.New("unknown bet")
	// ErrNoBets is returned when spinning an empty table.
	ErrNoBets = errors.New("no bets placed")
)

// Category is the kind of an outside bet.
type Category string

const (
	BetRed         Category = "red"
	BetBlack       Category = "black"
	BetEven        Category = "even"
	BetOdd         Category = "odd"
	BetHigh        Category = "high"
	BetLow         Category = "low"
	BetFirstDozen  Category = "1-12"
	BetSecondDozen Category = "13-24"
	BetThirdDozen  Category = "25-36"
	BetZero        Category = "zero"
)

// MenuKeys lists the menu choices in display order.
var MenuKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// Menu maps the typed choice to the bet category.
var Menu = map[string]Category{
	"1": BetRed,
	"2": BetBlack,
	"3": BetEven,
	"4": BetOdd,
	"5": BetHigh,
	"6": BetLow,
	"7": BetFirstDozen,
	"8": BetSecondDozen,
	"9": BetThirdDozen,
	"0": BetZero,
}

// ParseCategory reads a menu choice.
func ParseCategory(choice string) (Category, error) {
	c, ok := Menu[strings.TrimSpace(choice)]
	if !ok {
		return "", fmt.Errorf("%q: %w", choice, ErrUnknownBet)
	}
	return c, nil
}

// Multiplier is what a winning bet returns per unit staked, stake included.
func (c Category) Multiplier() int {
	switch c {
	case BetZero:
		return 36
	case BetFirstDozen, BetSecondDozen, BetThirdDozen:
		return 3
	case BetRed, BetBlack, BetEven, BetOdd, BetHigh, BetLow:
		return 2
	default:
		return 0
	}
}

// Wins reports whether the bet wins when the ball lands on n. Zero only
// wins the zero bet.
func (c Category) Wins(n int) bool {
	if n == 0 {
		return c == BetZero
	}
	switch c {
	case BetRed:
		return ColorOf(n) == Red
	case BetBlack:
		return ColorOf(n) == Black
	case BetEven:
		return n%2 == 0
	case BetOdd:
		return n%2 == 1
	case BetHigh:
		return n >= 19 && n <= 36
	case BetLow:
		return n >= 1 && n <= 18
	case BetFirstDozen:
		return n >= 1 && n <= 12
	case BetSecondDozen:
		return n >= 13 && n <= 24
	case BetThirdDozen:
		return n >= 25 && n <= 36
	default:
		return false
	}
}

// Label is the menu text of the category.
func (c Category) Label() string {
	switch c {
	case BetHigh:
		return "High (19-36)"
	case BetLow:
		return "Low (1-18)"
	case BetFirstDozen:
		return "1st Dozen"
	case BetSecondDozen:
		return "2nd Dozen"
	case BetThirdDozen:
		return "3rd Dozen"
	default:
		s := string(c)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Odds is the payout label shown next to the category, e.g. "2:1".
func (c Category) Odds() string {
	return fmt.Sprintf("%d:1", c.Multiplier())
}

// Bet is a stake on a category.
type Bet struct {
	Category Category
	Amount   int
}

func (b Bet) String() string {
	return fmt.Sprintf("$%d on %s", b.Amount, strings.ToUpper(string(b.Category)))
}

// Win is a bet that paid out.
type Win struct {
	Bet
	Payout int
}

// SpinResult is the outcome of a spin for the bets on the table.
type SpinResult struct {
	ID     string
	Number int
	Color  Color
	Staked int
	Wins   []Win
	Total  int
}

// Resolve pays every bet independently against pocket n.
func Resolve(n int, bets []Bet) SpinResult {
	r := SpinResult{Number: n, Color: ColorOf(n)}
	for _, b := range bets {
		r.Staked += b.Amount
		if b.Category.Wins(n) {
			w := Win{Bet: b, Payout: b.Amount * b.Category.Multiplier()}
			r.Wins = append(r.Wins, w)
			r.Total += w.Payout
		}
	}
	return r
}
