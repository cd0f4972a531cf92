// Released under an MIT license. See LICENSE.

// Package str provides Brack's text type.
package str

import (
	"strings"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/type/num"
)

const name = "text"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	v, ok := To(c)

	return ok && string(*s) == string(*v)
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns the str in c, if c is a str.
func To(c cell.I) (*str, bool) {
	s, ok := c.(*str)

	return s, ok
}

//nolint:gochecknoglobals
var (
	escaper = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"#", `\#`,
		"\t", `\t`,
		"\r", `\r`,
	)
	unescaper = strings.NewReplacer(
		`\\`, `\`,
		`\"`, `"`,
		`\n`, "\n",
		`\#`, "#",
		`\t`, "\t",
		`\r`, "\r",
		`\[`, "[",
		`\]`, "]",
	)
)

// Escape escapes the characters that have special meaning in Brack text.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Quote returns s in a form that reads back as the text s. The escaped
// text is wrapped in double quotes when it would otherwise be split,
// read as a number, or disappear.
func Quote(s string) string {
	e := Escape(s)

	if s == "" || strings.ContainsAny(s, " \t\n\r[]") {
		return `"` + e + `"`
	}

	if _, ok := num.Parse(s); ok {
		return `"` + e + `"`
	}

	return e
}

// Unescape converts the escape sequences in s to the characters they
// represent. Unknown sequences are left as they are.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	return unescaper.Replace(s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = cell.Literal(&t)

	// The str type is a stringer.
	_ = cell.Stringer(&t)
}
