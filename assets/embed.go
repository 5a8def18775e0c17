// Package assets carries the built-in dictionary so the solver runs
// without a word list on disk.
package assets

import (
	"embed"
	"io"
)

// WordsFile is the name of the embedded dictionary, also reported as its source.
const WordsFile = "words.txt"

//go:embed words.txt
var FS embed.FS

// Words opens the embedded dictionary. The caller closes it.
func Words() (io.ReadCloser, error) {
	return FS.Open(WordsFile)
}
