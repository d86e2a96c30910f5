package blackjack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/casino/ledger"
)

func wagered(s string, wager int) Hand {
	h := hand(s)
	h.Wager = wager
	return h
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		player  Hand
		dealer  Hand
		result  Result
		outcome ledger.Outcome
		payout  int
	}{
		{"both blackjack", wagered("A♠ K♥", 100), hand("A♦ Q♣"), ResultBothBlackjack, ledger.OutcomePush, 100},
		{"player blackjack", wagered("A♠ K♥", 100), hand("9♦ K♣"), ResultBlackjack, ledger.OutcomeBlackjack, 250},
		{"blackjack payout truncates", wagered("A♠ K♥", 15), hand("9♦ K♣"), ResultBlackjack, ledger.OutcomeBlackjack, 37},
		{"dealer blackjack beats 21", wagered("7♠ 7♥ 7♦", 100), hand("A♦ K♣"), ResultDealerBlackjack, ledger.OutcomeLoss, 0},
		{"player bust before dealer bust", wagered("K♠ Q♥ 5♦", 100), hand("K♦ 6♣ 9♥"), ResultPlayerBust, ledger.OutcomeLoss, 0},
		{"dealer bust", wagered("K♠ 8♥", 100), hand("K♦ 6♣ 9♥"), ResultDealerBust, ledger.OutcomeWin, 200},
		{"higher total", wagered("K♠ 9♥", 100), hand("K♦ 8♣"), ResultWin, ledger.OutcomeWin, 200},
		{"lower total", wagered("K♠ 7♥", 100), hand("K♦ 8♣"), ResultLoss, ledger.OutcomeLoss, 0},
		{"push on 18", wagered("10♠ 8♥", 100), hand("10♦ 8♣"), ResultPush, ledger.OutcomePush, 100},
		{"three-card 21 is not blackjack", wagered("7♠ 7♥ 7♦", 100), hand("K♦ Q♣"), ResultWin, ledger.OutcomeWin, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Resolve(tt.player, tt.dealer)
			assert.Equal(t, tt.result, s.Result)
			assert.Equal(t, tt.outcome, s.Outcome)
			assert.Equal(t, tt.payout, s.Payout)
			assert.Equal(t, tt.player.Wager, s.Wager)
		})
	}
}

func TestSettlementMessage(t *testing.T) {
	assert.Equal(t, "BLACKJACK! You win $150!", Resolve(wagered("A♠ K♥", 100), hand("9♦ K♣")).Message())
	assert.Equal(t, "You win $100! (19 vs 18)", Resolve(wagered("K♠ 9♥", 100), hand("K♦ 8♣")).Message())
	assert.Equal(t, "Dealer wins! (18 vs 17)", Resolve(wagered("K♠ 7♥", 100), hand("K♦ 8♣")).Message())
	assert.Equal(t, "Push! It's a tie at 18", Resolve(wagered("10♠ 8♥", 100), hand("10♦ 8♣")).Message())
}

func TestDealerPolicy(t *testing.T) {
	tests := []struct {
		cards string
		hit   bool
	}{
		{"10♠ 6♥", true},
		{"10♠ 7♥", false},
		{"A♠ 6♥", false},
		{"A♠ 5♥", true},
		{"K♠ 2♥ 4♦", true},
		{"K♠ Q♥ 5♦", false},
	}
	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.hit, DefaultDealerPolicy.ShouldHit(hand(tt.cards)))
		})
	}
}

func TestCanDouble(t *testing.T) {
	assert.True(t, CanDouble(wagered("5♠ 6♥", 100), 100))
	assert.False(t, CanDouble(wagered("5♠ 6♥", 100), 99))
	assert.False(t, CanDouble(wagered("5♠ 6♥ 2♦", 100), 500))
}

func TestParseBet(t *testing.T) {
	tests := []struct {
		input   string
		amount  int
		quit    bool
		wantErr error
	}{
		{"100", 100, false, nil},
		{"q", 0, true, nil},
		{" Q ", 0, true, nil},
		{"1000", 1000, false, nil},
		{"1001", 0, false, ledger.ErrInsufficientFunds},
		{"0", 0, false, ledger.ErrInvalidAmount},
		{"-10", 0, false, ledger.ErrInvalidAmount},
		{"lots", 0, false, ledger.ErrNotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, quit, err := ParseBet(tt.input, 1000)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, amount)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestParseAction(t *testing.T) {
	for input, want := range map[string]Action{"h": ActionHit, "S": ActionStand, " d ": ActionDouble, "q": ActionQuit} {
		got, err := ParseAction(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, input := range []string{"", "x", "hit", "hs"} {
		_, err := ParseAction(input)
		assert.True(t, errors.Is(err, ErrIllegalAction), "input %q", input)
	}
}
