package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ParseAmount for input that is not an integer.
var ErrNotANumber = errors.New("not a number")

// ParseAmount reads a typed amount and checks it can be staked from balance.
func ParseAmount(input string, balance int) (int, error) {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "$"))
	amount, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount %d: %w", amount, ErrInvalidAmount)
	}
	if amount > balance {
		return 0, fmt.Errorf("amount %d with balance %d: %w", amount, balance, ErrInsufficientFunds)
	}
	return amount, nil
}
