// Released under an MIT license. See LICENSE.

package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.brk")

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestOpen(t *testing.T) {
	const text = "[print hello]\n"

	s, err := Open(write(t, text))
	if err != nil {
		t.Fatal(err)
	}

	if string(s.Bytes()) != text {
		t.Fatalf("expected %q, got %q", text, s.Bytes())
	}

	b, err := io.ReadAll(s)
	if err != nil {
		t.Fatal(err)
	}

	if string(b) != text {
		t.Fatalf("expected %q, got %q", text, b)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("expected a second close to succeed, got %v", err)
	}

	if s.Bytes() != nil || s.Len() != 0 {
		t.Fatal("expected no contents after close")
	}
}

func TestEmpty(t *testing.T) {
	s, err := Open(write(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if len(s.Bytes()) != 0 {
		t.Fatalf("expected nothing, got %q", s.Bytes())
	}
}

func TestMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nonesuch")); !os.IsNotExist(err) {
		t.Fatalf("expected the file not to exist, got %v", err)
	}
}
