package console

import (
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/casino/domain/blackjack"
	"github.com/luca-patrignani/casino/ledger"
)

// BlackjackRules is the welcome text of the blackjack binary.
var BlackjackRules = []string{
	"Try to get closer to 21 than the dealer",
	"Dealer hits on 16, stands on 17",
	"Blackjack pays 3:2",
	"Type 'q' to quit anytime",
}

// Blackjack draws the blackjack table on a Terminal.
type Blackjack struct {
	*Terminal
}

func NewBlackjack(t *Terminal) Blackjack {
	return Blackjack{Terminal: t}
}

func (b Blackjack) Render(v blackjack.TableView) {
	header := pterm.Sprintf("Bankroll: $%d    Current Bet: $%d", v.Bankroll, v.Wager)

	panels := pterm.Panels{
		{{Data: pterm.BgGreen.Sprint(" " + header + " ")}},
		{{Data: box("|DEALER|").Sprint(dealerInfo(v))}, {Data: box("|YOU|").Sprint(playerInfo(v))}},
	}
	out, err := pterm.DefaultPanel.WithPanels(panels).Srender()
	if err != nil {
		out = header + "\n"
	}
	b.print("\n" + out + "\n")
}

func dealerInfo(v blackjack.TableView) string {
	if len(v.Dealer) == 0 {
		return "-"
	}
	if v.DealerHidden {
		return pterm.Sprintf("%s [?]\nValue: ?", styledCards(v.Dealer))
	}
	s := pterm.Sprintf("%s\nValue: %d", styledCards(v.Dealer), v.DealerValue)
	if v.DealerBlackjack {
		s += "\n" + pterm.LightMagenta("BLACKJACK!")
	}
	return s
}

func playerInfo(v blackjack.TableView) string {
	value := pterm.Sprint(v.PlayerValue)
	if v.PlayerSoft && !v.PlayerBlackjack {
		value += " (soft)"
	}
	s := pterm.Sprintf("%s\nValue: %s", styledCards(v.Player), value)
	switch {
	case v.PlayerBlackjack:
		s += "\n" + pterm.LightMagenta("BLACKJACK!")
	case v.PlayerBusted:
		s += "\n" + pterm.LightRed("BUSTED!")
	}
	return s
}

// Summary prints the statistics box shown when the game ends.
func (b Blackjack) Summary(bankroll int, stats ledger.Stats) {
	body := pterm.Sprintf(
		"Bankroll: $%d\nWins: %d\nLosses: %d\nPushes: %d\nBlackjacks: %d\nWin Rate: %.1f%%",
		bankroll, stats.Wins, stats.Losses, stats.Pushes, stats.Blackjacks, stats.WinRate(),
	)
	b.print("\n" + box("|STATISTICS|").Sprint(body) + "\n")
	b.print(pterm.LightCyan("Thanks for playing!") + "\n")
}

var _ blackjack.Console = Blackjack{}
