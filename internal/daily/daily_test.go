package daily_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("east", 10*3600)
	ts := time.Date(2026, 10, 20, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-19", daily.DateKey(ts))
}

func TestWordIndex_Deterministic(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	a := daily.WordIndex(day, "salt", 796)
	assert.Equal(t, a, daily.WordIndex(later, "salt", 796), "same day, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 796)
}

func TestWordIndex_VariesByDayAndSalt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[daily.WordIndex(start.AddDate(0, 0, i), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 20)

	differ := false
	for i := 0; i < 10; i++ {
		d := start.AddDate(0, 0, i)
		if daily.WordIndex(d, "a", 1000) != daily.WordIndex(d, "b", 1000) {
			differ = true
		}
	}
	assert.True(t, differ)
}

func TestWordIndex_EmptyList(t *testing.T) {
	assert.Zero(t, daily.WordIndex(time.Now(), "salt", 0))
}

func TestSecret_InDictionary(t *testing.T) {
	d, err := words.LoadEmbedded()
	require.NoError(t, err)
	w := daily.Secret(d, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), daily.DefaultSalt)
	assert.True(t, d.Contains(w))
}
