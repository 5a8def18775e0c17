// Package solver guesses a secret word by repeatedly narrowing a
// dictionary with Wordle feedback.
//
// A round runs AwaitingGuess → Evaluating → (Done | Filtering) → AwaitingGuess:
// the Selector proposes a guess, game.Evaluate scores it against the secret,
// and Filter removes every candidate the feedback rules out. Each round owns
// a fresh CandidateSet, so a failed round leaves nothing behind for the next.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxGuesses bounds a round in case a rule ever stalls the search.
const DefaultMaxGuesses = 20

var (
	ErrSecretNotInDictionary = errors.New("word not in list")
	ErrNoCandidatesRemaining = errors.New("no candidates remaining")
	ErrDidNotConverge        = errors.New("solver did not converge")
)

// Step is one guess and what it did to the candidate set.
type Step struct {
	Number    int
	Guess     string
	Feedback  game.Feedback
	Remaining int // live candidates after filtering; unchanged on the winning guess
}

// Result summarises a round.
type Result struct {
	Secret string
	Steps  []Step
	Solved bool
}

// Guesses is the number of guesses made.
func (r *Result) Guesses() int { return len(r.Steps) }

// Observer is told about each guess as soon as it is evaluated.
type Observer func(Step)

// Solver plays rounds against one dictionary.
type Solver struct {
	dict       *words.Dictionary
	selector   Selector
	maxGuesses int
	observer   Observer
}

// Option configures a Solver.
type Option func(*Solver)

// WithOpeners replaces the fixed opening guesses.
func WithOpeners(openers []string) Option {
	return func(s *Solver) { s.selector.Openers = append([]string(nil), openers...) }
}

// WithMaxGuesses sets the guess bound; values below 1 keep the default.
func WithMaxGuesses(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxGuesses = n
		}
	}
}

// WithObserver registers a callback invoked after every guess.
func WithObserver(o Observer) Option {
	return func(s *Solver) { s.observer = o }
}

// New builds a Solver over d.
func New(d *words.Dictionary, opts ...Option) *Solver {
	s := &Solver{
		dict:       d,
		selector:   Selector{Openers: DefaultOpeners},
		maxGuesses: DefaultMaxGuesses,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Solve guesses until it hits secret. The returned Result holds every step
// taken, including on error.
func (s *Solver) Solve(secret string) (*Result, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	res := &Result{Secret: secret}
	if !s.dict.Contains(secret) {
		return res, fmt.Errorf("%q: %w", secret, ErrSecretNotInDictionary)
	}

	set := NewCandidateSet(s.dict)
	for n := 1; ; n++ {
		if n > s.maxGuesses {
			return res, fmt.Errorf("%q after %d guesses: %w", secret, s.maxGuesses, ErrDidNotConverge)
		}

		guess, err := s.selector.Next(set, n)
		if err != nil {
			return res, err
		}

		fb := game.Evaluate(guess, secret)
		step := Step{Number: n, Guess: guess, Feedback: fb, Remaining: set.Len()}

		if guess == secret {
			res.Steps = append(res.Steps, step)
			res.Solved = true
			s.notify(step)
			log.Debug().Str("secret", secret).Int("guesses", n).Msg("solved")
			return res, nil
		}

		eliminated := Filter(set, guess, fb)
		step.Remaining = set.Len()
		res.Steps = append(res.Steps, step)
		s.notify(step)

		log.Debug().
			Int("guess", n).
			Str("word", guess).
			Str("feedback", fb.String()).
			Int("eliminated", eliminated).
			Int("remaining", step.Remaining).
			Msg("filtered candidates")
	}
}

func (s *Solver) notify(step Step) {
	if s.observer != nil {
		s.observer(step)
	}
}
