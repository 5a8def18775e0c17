// Package display renders solver progress as text.
//
// Each guess takes two lines: the numbered guess with exact letters
// uppercased, and a marker line with '*' under present letters. With colour
// on, exact and present letters are also tinted; the characters are the same.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Separator opens every round.
var Separator = strings.Repeat("-", 59)

const indent = "       "

// Renderer writes the transcript of a session.
type Renderer struct {
	w     io.Writer
	color bool

	lg      *lipgloss.Renderer
	exact   lipgloss.Style
	present lipgloss.Style
}

// New returns a Renderer writing plain text to w.
func New(w io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		lg:      lg,
		exact:   lg.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		present: lg.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// WithColor enables or disables tinted letters. Once enabled, ANSI colour is
// written even when w is not a terminal.
func (r *Renderer) WithColor(on bool) *Renderer {
	r.color = on
	if on {
		r.lg.SetColorProfile(termenv.ANSI)
	}
	return r
}

// ColorEnabled resolves a colour mode ("auto", "always", "never") for f.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Dictionary announces the loaded word list.
func (r *Renderer) Dictionary(source string, n int) {
	fmt.Fprintf(r.w, "Using file %s with %d words.\n", source, n)
}

// RoundStart prints the separator that precedes each prompt.
func (r *Renderer) RoundStart() {
	fmt.Fprintf(r.w, "%s\n\n", Separator)
}

// Secret prints the word being searched for, spaced like the guesses.
func (r *Renderer) Secret(secret string) {
	fmt.Fprintf(r.w, "Trying to find secret word:\n%s%s\n\n", indent, spaced(secret))
}

// Step prints one guess and its marker line.
func (r *Renderer) Step(s solver.Step) {
	fmt.Fprint(r.w, r.Guess(s.Number, s.Guess, s.Feedback))
}

// Guess formats guess n as two lines.
func (r *Renderer) Guess(n int, guess string, fb game.Feedback) string {
	letters := make([]string, len(guess))
	marks := make([]string, len(guess))
	for i := 0; i < len(guess); i++ {
		c := string(guess[i])
		marks[i] = " "
		switch {
		case i < len(fb) && fb[i] == game.MarkExact:
			c = strings.ToUpper(c)
			if r.color {
				c = r.exact.Render(c)
			}
		case i < len(fb) && fb[i] == game.MarkPresent:
			marks[i] = "*"
			if r.color {
				c = r.present.Render(c)
			}
		}
		letters[i] = c
	}
	return fmt.Sprintf("%5d. %s\n%s%s\n", n, strings.Join(letters, " "), indent, strings.TrimRight(strings.Join(marks, " "), " "))
}

// Found reports a solved round.
func (r *Renderer) Found(res *solver.Result) {
	fmt.Fprintf(r.w, "Found secret word in %d guesses. %s\n", res.Guesses(), res.Secret)
}

// Failed reports a round that ended in error.
func (r *Renderer) Failed(err error) {
	fmt.Fprintf(r.w, "Round failed: %v\n", err)
}

// NotInList is the message for a secret missing from the dictionary.
func (r *Renderer) NotInList() {
	fmt.Fprintln(r.w, "Word not in list! Try again!")
}

// SummaryLine describes one finished round.
type SummaryLine struct {
	Number  int
	Secret  string
	Guesses int
	Err     error
}

// Summary prints one line per round and the closing "Done".
func (r *Renderer) Summary(lines []SummaryLine) {
	if len(lines) > 0 {
		fmt.Fprintf(r.w, "\n%s\n", Separator)
	}
	for _, l := range lines {
		if l.Err != nil {
			fmt.Fprintf(r.w, "Round %d: %s failed: %v\n", l.Number, l.Secret, l.Err)
			continue
		}
		fmt.Fprintf(r.w, "Round %d: %s in %d guesses\n", l.Number, l.Secret, l.Guesses)
	}
	fmt.Fprintln(r.w, "Done")
}

func spaced(w string) string {
	return strings.Join(strings.Split(w, ""), " ")
}
