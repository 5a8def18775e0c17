// internal/words/embedded.go
//
// Wraps the assets package so callers get a Dictionary for the built-in list.
// The embedded list is parsed on every call; each caller owns its copy.

package words

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// LoadEmbedded parses the dictionary compiled into the binary.
func LoadEmbedded() (*Dictionary, error) {
	f, err := assets.Words()
	if err != nil {
		return nil, fmt.Errorf("open embedded words: %w", err)
	}
	defer f.Close()
	return Read(assets.WordsFile, f)
}
