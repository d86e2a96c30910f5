// Package console renders the games with pterm and reads the player's
// commands one line at a time.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Terminal is the line-oriented console shared by both games.
type Terminal struct {
	in         *bufio.Reader
	out        io.Writer
	frameDelay time.Duration
}

type option func(Terminal) Terminal

// WithFrameDelay sets the pause between spin teaser frames.
func WithFrameDelay(d time.Duration) option {
	return func(t Terminal) Terminal {
		t.frameDelay = d
		return t
	}
}

// New creates a terminal reading commands from in and drawing to out.
func New(in io.Reader, out io.Writer, opts ...option) *Terminal {
	t := Terminal{
		in:         bufio.NewReader(in),
		out:        out,
		frameDelay: 300 * time.Millisecond,
	}
	for _, opt := range opts {
		t = opt(t)
	}
	return &t
}

// Prompt shows label and reads one line. Labels ending in "$" keep the
// cursor on the same line. It returns io.EOF once input is exhausted.
func (t *Terminal) Prompt(label string) (string, error) {
	if strings.HasSuffix(label, "$") {
		t.print(pterm.LightCyan(label))
	} else {
		t.print(pterm.LightCyan(label) + "\n> ")
	}
	return t.readLine()
}

// Pause waits for Enter.
func (t *Terminal) Pause(label string) error {
	t.print(pterm.Gray(label))
	_, err := t.readLine()
	return err
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Info(msg string) {
	t.print(pterm.Info.Sprintln(msg))
}

func (t *Terminal) Success(msg string) {
	t.print(pterm.Success.Sprintln(msg))
}

func (t *Terminal) Warn(msg string) {
	t.print(pterm.Warning.Sprintln(msg))
}

func (t *Terminal) Error(msg string) {
	t.print(pterm.Error.Sprintln(msg))
}

// Banner draws the game title in big letters followed by the rules.
func (t *Terminal) Banner(title string, rules ...string) {
	big, err := pterm.DefaultBigText.WithLetters(titleLetters(title)...).Srender()
	if err != nil {
		big = pterm.DefaultHeader.Sprint(title)
	}
	t.print(big)
	t.print(box("|RULES|").Sprint(bulletList(rules)) + "\n")
}

func (t *Terminal) print(s string) {
	fmt.Fprint(t.out, s)
}

func bulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + item)
	}
	return b.String()
}
