// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive session history.
package history

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// DefaultName is the history file in the user's home directory that is
// used when no other path is configured.
const DefaultName = ".brack_history"

// Path returns configured, if set, or the default history file.
// It returns "" if there is no home directory.
func Path(configured string) string {
	if configured != "" {
		return configured
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, DefaultName)
}

// Load passes the history file at path to read.
// A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}
	defer f.Close()

	_, err = read(f)

	return err
}

// Save replaces the history file at path with what write produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
