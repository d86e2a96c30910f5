package console

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/casino/domain/blackjack"
	"github.com/luca-patrignani/casino/domain/cards"
	"github.com/luca-patrignani/casino/domain/roulette"
	"github.com/luca-patrignani/casino/ledger"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func newTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, WithFrameDelay(0)), &out
}

func TestPrompt(t *testing.T) {
	term, out := newTerminal("100\r\ns\nlast")

	line, err := term.Prompt("Place your bet (1-1000, or 'q' to quit): $")
	require.NoError(t, err)
	assert.Equal(t, "100", line)
	assert.Contains(t, out.String(), "Place your bet")

	line, err = term.Prompt("Your choice")
	require.NoError(t, err)
	assert.Equal(t, "s", line)
	assert.Contains(t, out.String(), "> ")

	line, err = term.Prompt("Your choice")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = term.Prompt("Your choice")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, io.EOF, term.Pause("Press Enter to continue..."))
}

func TestMessages(t *testing.T) {
	term, out := newTerminal("")
	term.Info("Reshuffling deck...")
	term.Success("You win $100!")
	term.Warn("Invalid choice!")
	term.Error("failed to save")

	for _, s := range []string{"Reshuffling deck...", "You win $100!", "Invalid choice!", "failed to save"} {
		assert.Contains(t, out.String(), s)
	}
}

func TestBanner(t *testing.T) {
	term, out := newTerminal("")
	term.Banner("Blackjack", BlackjackRules...)
	assert.Contains(t, out.String(), "Blackjack pays 3:2")
	assert.Contains(t, out.String(), "RULES")
}

func TestBlackjackRender(t *testing.T) {
	term, out := newTerminal("")
	bj := NewBlackjack(term)

	bj.Render(blackjack.TableView{
		Bankroll:     900,
		Wager:        100,
		Player:       cards.MustParseAll("A♠ 6♥"),
		PlayerValue:  17,
		PlayerSoft:   true,
		Dealer:       cards.MustParseAll("10♦"),
		DealerHidden: true,
	})
	s := out.String()
	assert.Contains(t, s, "Bankroll: $900")
	assert.Contains(t, s, "Current Bet: $100")
	assert.Contains(t, s, "10♦ [?]")
	assert.Contains(t, s, "Value: ?")
	assert.Contains(t, s, "A♠ 6♥")
	assert.Contains(t, s, "17 (soft)")

	out.Reset()
	bj.Render(blackjack.TableView{
		Player:          cards.MustParseAll("A♠ K♥"),
		PlayerValue:     21,
		PlayerBlackjack: true,
		Dealer:          cards.MustParseAll("10♦ 7♣"),
		DealerValue:     17,
	})
	assert.Contains(t, out.String(), "BLACKJACK!")
	assert.Contains(t, out.String(), "Value: 17")
	assert.NotContains(t, out.String(), "[?]")
}

func TestBlackjackSummary(t *testing.T) {
	term, out := newTerminal("")
	NewBlackjack(term).Summary(1150, ledger.Stats{Wins: 3, Losses: 1, Pushes: 0, Blackjacks: 1})

	s := out.String()
	assert.Contains(t, s, "STATISTICS")
	assert.Contains(t, s, "Bankroll: $1150")
	assert.Contains(t, s, "Blackjacks: 1")
	assert.Contains(t, s, "Win Rate: 75.0%")
}

func TestRouletteRender(t *testing.T) {
	term, out := newTerminal("")
	NewRoulette(term).Render(roulette.TableView{
		Bankroll: 850,
		Staked:   150,
		Bets:     []roulette.Bet{{Category: roulette.BetRed, Amount: 50}, {Category: roulette.BetZero, Amount: 100}},
	})

	s := out.String()
	assert.Contains(t, s, "Bankroll: $850")
	assert.Contains(t, s, "Current Bets: $150")
	assert.Contains(t, s, "1. $50 on RED")
	assert.Contains(t, s, "2. $100 on ZERO")
	assert.Contains(t, s, "[5] High (19-36)")
	assert.Contains(t, s, "(36:1)")
}

func TestRouletteSpin(t *testing.T) {
	term, out := newTerminal("")
	r := NewRoulette(term)

	r.Spinning([]int{17, 0, 32})
	assert.Equal(t, 3, strings.Count(out.String(), "Spinning..."))
	assert.Contains(t, out.String(), "0 GREEN")

	out.Reset()
	res := roulette.Resolve(32, []roulette.Bet{{Category: roulette.BetRed, Amount: 50}})
	r.Result(res, 1050)
	assert.Contains(t, out.String(), "RESULT:  32 RED")
	assert.Contains(t, out.String(), "$50 on RED → $100")
	assert.Contains(t, out.String(), "Total Win: $100")
	assert.Contains(t, out.String(), "New Bankroll: $1050")

	out.Reset()
	r.Result(roulette.Resolve(2, []roulette.Bet{{Category: roulette.BetRed, Amount: 50}}), 950)
	assert.Contains(t, out.String(), "No winning bets this round.")

	out.Reset()
	r.Final(950)
	assert.Contains(t, out.String(), "Final Bankroll: $950")
}
