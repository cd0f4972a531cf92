// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for Brack.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Text is passed to the lexer in chunks. A token that straddles chunks is
// held back until the rest of it arrives or the lexer is closed.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/bracklang/brack/internal/common/struct/loc"
	"github.com/bracklang/brack/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string   // Buffer being scanned.
	closed bool     // No more buffers will be passed to Scan.
	first  int      // Index of the current token's first byte.
	index  int      // Index of the current byte.
	queue  []string // Buffers waiting to be scanned.
	runes  int      // Runes scanned on the current line.
	saved  action   // Escaped action.
	state  action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Close tells the lexer that no more text will be passed to Scan.
// A word held back at the end of the text is then emitted. A string left
// open is reported with an Error token.
func (l *T) Close() {
	if l.closed {
		return
	}

	l.gather()

	l.closed = true
	l.tokens = make(chan *token.T, 16)
}

// Location returns the position of the next rune to be scanned.
func (l *T) Location() loc.T {
	s := l.source
	s.Char = l.runes

	return s
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()

		if len(l.bytes) == 0 || l.tokens == nil {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if w == 0 {
		return
	}

	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, l.source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 || l.closed {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	r := l.next()

	if r == eof && !l.closed {
		return nil
	}

	return l.resume()
}

func scanQuoted(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			if l.closed {
				l.emit(token.Error, "unterminated string")
			}

			return nil
		case '"':
			l.emit(token.Quoted, l.Text())

			return skipWhitespace
		case '\\':
			return l.escape(scanQuoted, escapeNextCharacter)
		}
	}
}

func scanWord(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			if l.closed && l.index > l.first {
				l.emit(token.Word, l.Text())
			}

			return nil
		case '\t', '\n', '\r', ' ', '"', '#', '[', ']':
			l.emit(token.Word, l.Text())

			return skipWhitespace
		case '\\':
			l.accept(r, w)

			return l.escape(scanWord, escapeNextCharacter)
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '#':
			l.skip()

			return skipWhitespace
		case '\\':
			return l.escape(skipComment, escapeNextCharacter)
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.skip()

			continue
		case '[', ']':
			l.emit(r, l.Text())

			return skipWhitespace
		case '"':
			return scanQuoted
		case '#':
			return skipComment
		case '\\':
			return l.escape(scanWord, escapeNextCharacter)
		default:
			return scanWord
		}
	}
}
