// Released under an MIT license. See LICENSE.

// Package source provides read access to program files.
//
// On Unix systems the file is mapped into memory rather than read.
package source

import (
	"bytes"
)

// T (source) is the contents of a program file.
type T struct {
	*bytes.Reader

	data  []byte
	unmap func([]byte) error
}

type source = T

// Bytes returns the contents of the file.
func (s *source) Bytes() []byte {
	return s.data
}

// Close releases the contents of the file.
func (s *source) Close() error {
	data := s.data
	unmap := s.unmap

	s.Reader = bytes.NewReader(nil)
	s.data = nil
	s.unmap = nil

	if unmap == nil {
		return nil
	}

	return unmap(data)
}

func newSource(data []byte, unmap func([]byte) error) *source {
	return &source{
		Reader: bytes.NewReader(data),
		data:   data,
		unmap:  unmap,
	}
}
