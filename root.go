package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/display"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/play"
	"github.com/robalobadob/wordle/apps/go-solver/internal/prompt"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// app carries flag values and the resolved config between cobra hooks.
type app struct {
	cfgPath    string
	wordsFile  string
	rounds     int
	maxGuesses int
	openers    string
	color      string
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wordle-solver",
		Short: "Guess a secret five-letter word from Wordle feedback",
		Long: `wordle-solver narrows a dictionary with exact / present / absent feedback
until it finds the secret word. Without a subcommand it plays interactive
rounds: enter a word, "r" for a random one, or ":daily" for today's word.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := prompt.Open(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer in.Close()
			return a.run(cmd, in, a.cfg.Rounds, time.Now)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVar(&a.wordsFile, "words", "", "word list file (default: embedded list)")
	pf.IntVar(&a.rounds, "rounds", 0, "number of interactive rounds (default 3)")
	pf.IntVar(&a.maxGuesses, "max-guesses", 0, "give up on a round after this many guesses (default 20)")
	pf.StringVar(&a.openers, "openers", "", `comma separated opening guesses, or "none"`)
	pf.StringVar(&a.color, "color", "", "colour letters: auto, always or never")
	pf.StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn or error")

	root.AddCommand(solveCmd(a), dailyCmd(a), scoreCmd(a), candidatesCmd(a))
	return root
}

// setup resolves config from file, environment and flags, in that order.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.WordsFile = a.wordsFile
	}
	if flags.Changed("rounds") {
		cfg.Rounds = a.rounds
	}
	if flags.Changed("max-guesses") {
		cfg.MaxGuesses = a.maxGuesses
	}
	if flags.Changed("openers") {
		cfg.Openers = config.SplitList(a.openers)
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)
	a.cfg = cfg
	return nil
}

// run plays up to n rounds with answers from in.
func (a *app) run(cmd *cobra.Command, in prompt.Reader, n int, now func() time.Time) error {
	dict, err := words.Load(a.cfg.WordsFile)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	view := display.New(out).WithColor(colorFor(a.cfg.Color, out))
	d := play.New(dict, in, view, store.NewMemoryStore(), play.Options{
		MaxGuesses: a.cfg.MaxGuesses,
		Openers:    a.cfg.Openers,
		DailySalt:  a.cfg.DailySalt,
		Now:        now,
	})
	return d.Run(cmd.Context(), n)
}

func solveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve WORD...",
		Short: `Solve each WORD in turn ("r" picks at random, ":daily" picks today's word)`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := prompt.Scripted(cmd.OutOrStdout(), args...)
			return a.run(cmd, in, len(args), time.Now)
		},
	}
}

func dailyCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Solve the word of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				t, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				day = t
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily word for %s\n", daily.DateKey(day))
			in := prompt.Scripted(cmd.OutOrStdout(), play.DailyKeyword)
			return a.run(cmd, in, 1, func() time.Time { return day })
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to solve, YYYY-MM-DD (default today, UTC)")
	return cmd
}

func scoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score GUESS SECRET",
		Short: "Show the feedback GUESS earns against SECRET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range args {
				if !words.Valid(w) {
					return fmt.Errorf("%q: want %d lowercase letters", w, words.Length)
				}
			}
			fb := game.Evaluate(args[0], args[1])
			out := cmd.OutOrStdout()
			view := display.New(out).WithColor(colorFor(a.cfg.Color, out))
			fmt.Fprint(out, view.Guess(1, args[0], fb))
			fmt.Fprintf(out, "%s\n", fb)
			return nil
		},
	}
}

func candidatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates GUESS CODE [GUESS CODE]...",
		Short: "List the words still consistent with the given guesses and feedback codes",
		Long: `Each CODE is the feedback for the GUESS before it: '=' exact, '*' present,
'.' absent. For example: candidates ratio .*... mends .....`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("want GUESS CODE pairs, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := words.Load(a.cfg.WordsFile)
			if err != nil {
				return err
			}
			set := solver.NewCandidateSet(dict)
			for i := 0; i < len(args); i += 2 {
				guess := strings.ToLower(args[i])
				if !words.Valid(guess) {
					return fmt.Errorf("%q: want %d lowercase letters", args[i], words.Length)
				}
				fb, err := game.ParseFeedback(args[i+1])
				if err != nil {
					return err
				}
				if len(fb) != len(guess) {
					return fmt.Errorf("code %q: want %d marks", args[i+1], len(guess))
				}
				solver.Filter(set, guess, fb)
			}
			out := cmd.OutOrStdout()
			for _, w := range set.Words() {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(out, "%d candidates\n", set.Len())
			return nil
		},
	}
}

// colorFor resolves the colour mode; auto only colours a real stdout.
func colorFor(mode string, out io.Writer) bool {
	f, _ := out.(*os.File)
	return display.ColorEnabled(mode, f)
}
