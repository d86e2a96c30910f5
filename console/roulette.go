package console

import (
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/casino/domain/roulette"
)

// RouletteRules is the welcome text of the roulette binary.
var RouletteRules = []string{
	"Place bets on Red, Black, Even, Odd, High/Low, Dozens",
	"Red/Black/Even/Odd/High/Low pay 2:1",
	"Dozens pay 3:1",
	"Zero pays 36:1",
	"Type 's' to spin, 'c' to clear bets, 'q' to quit",
}

// Roulette draws the roulette table on a Terminal.
type Roulette struct {
	*Terminal
}

func NewRoulette(t *Terminal) Roulette {
	return Roulette{Terminal: t}
}

func (r Roulette) Render(v roulette.TableView) {
	header := pterm.Sprintf("Bankroll: $%d    Current Bets: $%d", v.Bankroll, v.Staked)
	r.print("\n" + pterm.BgGreen.Sprint(" "+header+" ") + "\n")

	if len(v.Bets) > 0 {
		lines := make([]string, len(v.Bets))
		for i, b := range v.Bets {
			lines[i] = pterm.Sprintf("%d. %s", i+1, b)
		}
		r.print(box("|YOUR BETS|").Sprint(strings.Join(lines, "\n")) + "\n")
	}

	menu, err := pterm.DefaultTable.WithData(menuRows()).Srender()
	if err != nil {
		return
	}
	r.print(box("|BETTING OPTIONS|").Sprint(menu) + "\n")
}

// menuRows lays the ten bets out two per row.
func menuRows() pterm.TableData {
	var rows pterm.TableData
	for i := 0; i < len(roulette.MenuKeys); i += 2 {
		row := []string{}
		for _, k := range roulette.MenuKeys[i:min(i+2, len(roulette.MenuKeys))] {
			c := roulette.Menu[k]
			row = append(row, pterm.Sprintf("[%s] %s", k, c.Label()), pterm.Sprintf("(%s)", c.Odds()))
		}
		rows = append(rows, row)
	}
	return rows
}

// Spinning flashes the teaser pockets before the result.
func (r Roulette) Spinning(teaser []int) {
	for _, n := range teaser {
		r.print(pterm.Sprintf("Spinning... -> %s\n", pocket(n)))
		time.Sleep(r.frameDelay)
	}
}

func (r Roulette) Result(res roulette.SpinResult, bankroll int) {
	r.print("\n" + pterm.Sprintf("RESULT: %s!", pocket(res.Number)) + "\n")
	if res.Total > 0 {
		lines := make([]string, len(res.Wins))
		for i, w := range res.Wins {
			lines[i] = pterm.Sprintf("✓ %s → $%d", w.Bet, w.Payout)
		}
		lines = append(lines, "", pterm.Sprintf("Total Win: $%d", res.Total))
		r.print(box("|WINNING BETS|").Sprint(strings.Join(lines, "\n")) + "\n")
	} else {
		r.Warn("No winning bets this round.")
	}
	r.print(pterm.Sprintf("New Bankroll: $%d\n", bankroll))
}

func (r Roulette) Final(bankroll int) {
	r.print("\n" + pterm.Sprintf("Final Bankroll: $%d", bankroll) + "\n")
	r.print(pterm.LightCyan("Thanks for playing!") + "\n")
}

var _ roulette.Console = Roulette{}
