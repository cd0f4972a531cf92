// Released under an MIT license. See LICENSE.

//go:build !unix

package source

import (
	"os"
)

// Open reads the file at path.
func Open(path string) (*source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return newSource(data, nil), nil
}
