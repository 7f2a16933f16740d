// Package assets holds files compiled into the binary.
package assets

import "embed"

// WordsFile is the bundled fallback word list inside FS: one word per line,
// '#' comments allowed. Parsing is left to the words package.
const WordsFile = "words.txt"

//go:embed words.txt
var FS embed.FS
