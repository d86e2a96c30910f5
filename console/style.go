package console

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/casino/domain/cards"
	"github.com/luca-patrignani/casino/domain/roulette"
)

func box(title string) *pterm.BoxPrinter {
	return pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle(pterm.LightYellow(title)).WithTitleTopCenter()
}

// titleLetters paints the first letter of every word red and the rest gray.
func titleLetters(title string) []pterm.Letters {
	var letters []pterm.Letters
	for i, word := range strings.Fields(title) {
		if i > 0 {
			word = " " + word
			letters = append(letters, putils.LettersFromStringWithStyle(word[:2], pterm.FgRed.ToStyle()))
			word = word[2:]
		} else {
			letters = append(letters, putils.LettersFromStringWithStyle(word[:1], pterm.FgRed.ToStyle()))
			word = word[1:]
		}
		if word != "" {
			letters = append(letters, putils.LettersFromStringWithStyle(word, pterm.FgDarkGray.ToStyle()))
		}
	}
	return letters
}

func styledCards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Styled()
	}
	return strings.Join(parts, " ")
}

func pocket(n int) string {
	color := roulette.ColorOf(n)
	label := pterm.Sprintf(" %d %s ", n, strings.ToUpper(string(color)))
	switch color {
	case roulette.Red:
		return pterm.NewStyle(pterm.FgWhite, pterm.BgRed, pterm.Bold).Sprint(label)
	case roulette.Black:
		return pterm.NewStyle(pterm.FgWhite, pterm.BgBlack, pterm.Bold).Sprint(label)
	default:
		return pterm.NewStyle(pterm.FgWhite, pterm.BgGreen, pterm.Bold).Sprint(label)
	}
}
