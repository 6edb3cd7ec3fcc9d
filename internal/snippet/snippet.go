// Package snippet loads the before/after example files that illustrate each
// extension command.
package snippet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	generr "github.com/vrcomputing/readmegen/internal/errors"
)

const (
	InputExt  = ".input"
	OutputExt = ".output"
)

// Pair is the trimmed contents of <command>.input and <command>.output.
type Pair struct {
	Command string
	Input   string
	Output  string
}

// Paths returns the input and output file paths for command inside dir.
func Paths(dir, command string) (input, output string) {
	return filepath.Join(dir, command+InputExt), filepath.Join(dir, command+OutputExt)
}

// Load reads both snippet files for command from dir. A missing or
// unreadable file is a KindSnippetNotFound error.
func Load(dir, command string) (*Pair, error) {
	inPath, outPath := Paths(dir, command)

	in, err := readTrimmed(inPath)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", command, err)
	}
	out, err := readTrimmed(outPath)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", command, err)
	}

	return &Pair{Command: command, Input: in, Output: out}, nil
}

// readTrimmed returns the file contents with trailing whitespace removed.
func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", generr.Errorf(generr.KindSnippetNotFound, "reading snippet %s: %w", path, err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}
