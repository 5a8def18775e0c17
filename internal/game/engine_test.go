package game_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   string
	}{
		{"all exact", "allay", "allay", "====="},
		{"nothing shared", "mends", "allay", "....."},
		{"single present", "ratio", "allay", ".*..."},
		{"duplicate guess letter credited once per secret s", "sassy", "glass", "**.=."},
		{"exact consumes before present", "lolly", "allay", "*.=.="},
		{"secret double a and l", "llama", "allay", "*=*.*"},
		{"present then absent for repeated letter", "eerie", "there", "*.*.="},
		{"guess with repeated a against one a", "kayak", "ratio", ".=..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := game.Evaluate(tt.guess, tt.secret)
			assert.Equal(t, tt.want, got.String())
			assert.Len(t, got, len(tt.guess))
		})
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	got := game.Evaluate("ratio", "rat")
	assert.Equal(t, ".....", got.String())
}

func TestEvaluate_SelfIsSolved(t *testing.T) {
	for _, w := range corpus {
		fb := game.Evaluate(w, w)
		assert.True(t, fb.Solved(), w)
	}
}

// Exact+present credits for a letter never exceed its count in the secret.
func TestEvaluate_CreditBound(t *testing.T) {
	for _, secret := range corpus {
		for _, guess := range corpus {
			fb := game.Evaluate(guess, secret)
			require.Len(t, fb, len(guess))
			for c := byte('a'); c <= 'z'; c++ {
				credits := fb.Credits(guess, c)
				limit := strings.Count(secret, string(c))
				if credits > limit {
					t.Fatalf("%s vs %s: %d credits for %q, secret has %d", guess, secret, credits, c, limit)
				}
				if want := min(limit, strings.Count(guess, string(c))); credits != want {
					t.Fatalf("%s vs %s: %d credits for %q, want %d", guess, secret, credits, c, want)
				}
			}
		}
	}
}

func TestParseFeedback(t *testing.T) {
	fb, err := game.ParseFeedback("=*..=")
	require.NoError(t, err)
	assert.Equal(t, game.Feedback{game.MarkExact, game.MarkPresent, game.MarkAbsent, game.MarkAbsent, game.MarkExact}, fb)
	assert.False(t, fb.Solved())
	assert.False(t, fb.Equal(game.Evaluate("lolly", "allay")))
	assert.True(t, game.Evaluate("lolly", "allay").Equal(game.Feedback{game.MarkPresent, game.MarkAbsent, game.MarkExact, game.MarkAbsent, game.MarkExact}))

	_, err = game.ParseFeedback("=?...")
	assert.ErrorIs(t, err, game.ErrBadCode)
}

func TestFeedback_Solved_Empty(t *testing.T) {
	assert.False(t, game.Feedback{}.Solved())
}

var corpus = []string{
	"allay", "alley", "llama", "lolly", "sassy", "glass", "abbey", "eerie",
	"geese", "there", "kayak", "level", "radar", "ratio", "mends", "lucky",
	"mamma", "array", "belle", "sissy", "tatty", "apply", "otter", "teeth",
}
