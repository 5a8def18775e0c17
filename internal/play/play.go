// internal/play/play.go
//
// Session driver around the solver.
// Responsibilities:
//   - Prompt for each round's secret (typed word, random pick, or daily word).
//   - Reject secrets missing from the dictionary before any guess is made.
//   - Run one solver round per secret and stream its guesses to the display.
//   - Record every round in the store and print the closing summary.
//
// Notes:
//   - A secret not in the dictionary aborts the session, as in the classic game.
//   - Solver failures (no candidates, no convergence) end only their round.
//   - Each round gets its own candidate set; the dictionary is never mutated.

package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/display"
	"github.com/robalobadob/wordle/apps/go-solver/internal/prompt"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Prompt is shown before reading each secret.
const Prompt = "Enter a secret word or just r to choose one at random: "

// DailyKeyword asks for the deterministic word of the day.
const DailyKeyword = ":daily"

// ErrRoundsFailed is returned by Run when at least one round did not solve.
var ErrRoundsFailed = errors.New("some rounds failed")

// Options tune a Driver. Zero values fall back to solver defaults.
type Options struct {
	MaxGuesses int
	Openers    []string
	DailySalt  string
	Now        func() time.Time
}

// Driver runs rounds against one dictionary.
type Driver struct {
	dict   *words.Dictionary
	input  prompt.Reader
	view   *display.Renderer
	rounds store.Store
	solver *solver.Solver
	salt   string
	now    func() time.Time
}

// New wires a Driver. The solver streams each guess straight to view.
func New(dict *words.Dictionary, in prompt.Reader, view *display.Renderer, st store.Store, opts Options) *Driver {
	d := &Driver{
		dict:   dict,
		input:  in,
		view:   view,
		rounds: st,
		salt:   opts.DailySalt,
		now:    opts.Now,
	}
	if d.salt == "" {
		d.salt = daily.DefaultSalt
	}
	if d.now == nil {
		d.now = time.Now
	}
	sopts := []solver.Option{solver.WithMaxGuesses(opts.MaxGuesses), solver.WithObserver(view.Step)}
	if opts.Openers != nil {
		sopts = append(sopts, solver.WithOpeners(opts.Openers))
	}
	d.solver = solver.New(dict, sopts...)
	return d
}

// Run plays up to n rounds, prompting for each secret, then prints the
// summary. Input running out ends the session early without error.
func (d *Driver) Run(ctx context.Context, n int) error {
	d.view.Dictionary(d.dict.Source(), d.dict.Len())

	played, failed := 0, 0
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.view.RoundStart()
		line, err := d.input.ReadLine(Prompt)
		if errors.Is(err, io.EOF) {
			log.Debug().Int("round", i).Msg("input closed")
			break
		}
		if err != nil {
			return fmt.Errorf("read secret: %w", err)
		}

		round, err := d.Play(ctx, i, line)
		played++
		if errors.Is(err, solver.ErrSecretNotInDictionary) {
			return err
		}
		if err != nil && round.Err == nil {
			return err
		}
		if round.Failed() {
			failed++
		}
	}

	if err := d.summary(ctx); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, played, ErrRoundsFailed)
	}
	return nil
}

// Play runs round number n for the raw secret input and records it.
func (d *Driver) Play(ctx context.Context, n int, input string) (*store.Round, error) {
	secret, source := d.resolve(input)
	round := &store.Round{
		ID:     uuid.NewString(),
		Number: n,
		Secret: secret,
		Source: source,
	}
	logger := log.With().Str("round_id", round.ID).Int("round", n).Logger()

	if !d.dict.Contains(secret) {
		round.Err = fmt.Errorf("%q: %w", secret, solver.ErrSecretNotInDictionary)
		d.view.NotInList()
		logger.Warn().Str("secret", secret).Msg("secret not in dictionary")
		return round, d.save(ctx, round, round.Err)
	}

	logger.Info().Str("source", string(source)).Msg("round started")
	d.view.Secret(secret)

	res, err := d.solver.Solve(secret)
	round.Result, round.Err = res, err
	if err != nil {
		d.view.Failed(err)
		logger.Error().Err(err).Int("guesses", res.Guesses()).Msg("round failed")
	} else {
		d.view.Found(res)
		logger.Info().Int("guesses", res.Guesses()).Msg("round solved")
	}
	return round, d.save(ctx, round, err)
}

// save records the round and hands back the round's own error, unless the
// store itself failed.
func (d *Driver) save(ctx context.Context, r *store.Round, roundErr error) error {
	if err := d.rounds.Save(ctx, r); err != nil {
		return fmt.Errorf("record round %d: %w", r.Number, err)
	}
	return roundErr
}

// resolve turns raw input into a secret: one character or less picks at
// random, DailyKeyword picks today's word, anything else is taken literally.
func (d *Driver) resolve(input string) (string, store.SecretSource) {
	in := strings.ToLower(strings.TrimSpace(input))
	switch {
	case len(in) <= 1:
		return d.dict.RandomWord(), store.SourceRandom
	case in == DailyKeyword:
		return daily.Secret(d.dict, d.now(), d.salt), store.SourceDaily
	default:
		return in, store.SourceTyped
	}
}

func (d *Driver) summary(ctx context.Context) error {
	rounds, err := d.rounds.List(ctx)
	if err != nil {
		return fmt.Errorf("list rounds: %w", err)
	}
	lines := make([]display.SummaryLine, 0, len(rounds))
	for _, r := range rounds {
		l := display.SummaryLine{Number: r.Number, Secret: r.Secret, Err: r.Err}
		if r.Result != nil {
			l.Guesses = r.Result.Guesses()
		}
		lines = append(lines, l)
	}
	d.view.Summary(lines)
	return nil
}
