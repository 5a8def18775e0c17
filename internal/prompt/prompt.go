// Package prompt reads the secret word for each round.
//
// Interactive terminals get readline editing; pipes and files are read line
// by line; scripted answers come from the command line. All three end with
// io.EOF when input runs out.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Reader yields one answer per call.
type Reader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Open picks readline when in is a terminal and a plain scanner otherwise.
// Prompts go to out.
func Open(in io.Reader, out io.Writer) (Reader, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewReadline(f, out)
	}
	return NewScanner(in, out), nil
}

// readlineReader wraps github.com/chzyer/readline.
type readlineReader struct {
	rl *readline.Instance
}

// NewReadline returns an interactive reader with history kept in memory.
func NewReadline(in io.ReadCloser, out io.Writer) (Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (r *readlineReader) Close() error { return r.rl.Close() }

// scanner reads answers from a non-interactive stream, one per line.
type scanner struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewScanner reads one line per answer from in, echoing prompts to out.
func NewScanner(in io.Reader, out io.Writer) Reader {
	return &scanner{sc: bufio.NewScanner(in), out: out}
}

func (s *scanner) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(s.sc.Text())
	fmt.Fprintln(s.out)
	return line, nil
}

func (s *scanner) Close() error { return nil }

// scripted replays a fixed list of answers, such as `solve` arguments.
type scripted struct {
	answers []string
	out     io.Writer
}

// Scripted returns a reader that answers from list, then reports io.EOF.
func Scripted(out io.Writer, answers ...string) Reader {
	return &scripted{answers: answers, out: out}
}

func (s *scripted) ReadLine(prompt string) (string, error) {
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	fmt.Fprintf(s.out, "%s%s\n", prompt, a)
	return strings.TrimSpace(a), nil
}

func (s *scripted) Close() error { return nil }
