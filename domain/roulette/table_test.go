package roulette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/casino/domain/deck"
	"github.com/luca-patrignani/casino/ledger"
)

// sequenceSource returns the given indexes in a loop.
type sequenceSource struct {
	values []int
	calls  int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

// landOn makes the wheel stop at pocket n on every spin.
func landOn(n int) *sequenceSource {
	for i, p := range Pockets() {
		if p == n {
			return &sequenceSource{values: []int{i}}
		}
	}
	panic("no such pocket")
}

func TestTablePlace(t *testing.T) {
	l := ledger.New(100, ledger.Stats{})
	tb := NewTable(l, NewWheel(landOn(0)))

	require.NoError(t, tb.Place(BetRed, 40))
	require.NoError(t, tb.Place(BetOdd, 60))
	assert.Equal(t, 0, l.Balance())
	assert.Equal(t, 100, tb.Total())
	assert.Equal(t, []Bet{{BetRed, 40}, {BetOdd, 60}}, tb.Bets())

	require.True(t, errors.Is(tb.Place(BetBlack, 1), ledger.ErrInsufficientFunds))
	require.True(t, errors.Is(tb.Place(Category("corner"), 1), ErrUnknownBet))
	assert.Len(t, tb.Bets(), 2)
}

func TestTableClearRefunds(t *testing.T) {
	l := ledger.New(1000, ledger.Stats{})
	tb := NewTable(l, NewWheel(landOn(0)))
	require.NoError(t, tb.Place(BetRed, 100))
	require.NoError(t, tb.Place(BetZero, 25))

	assert.Equal(t, 125, tb.Clear())
	assert.Empty(t, tb.Bets())
	assert.Equal(t, 1000, l.Balance())
	assert.Zero(t, tb.Clear())
	require.NoError(t, l.Verify())
}

func TestTableSpin(t *testing.T) {
	t.Run("red wins", func(t *testing.T) {
		l := ledger.New(1000, ledger.Stats{})
		tb := NewTable(l, NewWheel(landOn(32)))
		require.NoError(t, tb.Place(BetRed, 50))
		require.Equal(t, 950, l.Balance())

		r, err := tb.Spin()
		require.NoError(t, err)
		assert.Equal(t, 32, r.Number)
		assert.Equal(t, 100, r.Total)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, 1050, l.Balance())
		assert.Empty(t, tb.Bets())
		assert.Zero(t, l.Staked())
	})
	t.Run("zero pays 36", func(t *testing.T) {
		l := ledger.New(1000, ledger.Stats{})
		tb := NewTable(l, NewWheel(landOn(0)))
		require.NoError(t, tb.Place(BetZero, 10))

		r, err := tb.Spin()
		require.NoError(t, err)
		assert.Equal(t, 360, r.Total)
		assert.Equal(t, 990+360, l.Balance())
	})
	t.Run("losing bets are cleared", func(t *testing.T) {
		l := ledger.New(1000, ledger.Stats{})
		tb := NewTable(l, NewWheel(landOn(0)))
		require.NoError(t, tb.Place(BetEven, 200))

		_, err := tb.Spin()
		require.NoError(t, err)
		assert.Equal(t, 800, l.Balance())
		assert.Empty(t, tb.Bets())
		require.NoError(t, l.Verify())
	})
	t.Run("no bets", func(t *testing.T) {
		l := ledger.New(1000, ledger.Stats{})
		src := landOn(0)
		tb := NewTable(l, NewWheel(src))

		_, err := tb.Spin()
		require.True(t, errors.Is(err, ErrNoBets))
		assert.Equal(t, 1000, l.Balance())
		assert.Zero(t, src.calls)
	})
}

func TestWheelIsUniform(t *testing.T) {
	w := NewWheel(deck.NewSeededSource(7))
	counts := map[int]int{}
	const spins = 37 * 400
	for i := 0; i < spins; i++ {
		counts[w.Spin()]++
	}
	require.Len(t, counts, 37)
	for n, c := range counts {
		assert.InDelta(t, 400, c, 150, "pocket %d", n)
	}
}
