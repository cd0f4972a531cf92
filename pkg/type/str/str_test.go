// Released under an MIT license. See LICENSE.

package str

import (
	"testing"
)

func TestQuote(t *testing.T) {
	for s, q := range map[string]string{
		"add":       "add",
		"":          `""`,
		"a b":       `"a b"`,
		"12":        `"12"`,
		"1.5e3":     `"1.5e3"`,
		"[x]":       `"[x]"`,
		"say\nhi":   `"say\nhi"`,
		`a"b`:       `a\"b`,
		"a#b":       `a\#b`,
		`back\word`: `back\\word`,
		"tab\there": `"tab\there"`,
	} {
		if actual := Quote(s); actual != q {
			t.Fatalf("Quote(%q): expected %q, got %q", s, q, actual)
		}
	}
}

func TestUnescape(t *testing.T) {
	for e, s := range map[string]string{
		`\"`:    `"`,
		`\n`:    "\n",
		`\t`:    "\t",
		`\r`:    "\r",
		`\#`:    "#",
		`\[\]`:  "[]",
		`\\`:    `\`,
		`\q`:    `\q`,
		`plain`: "plain",
	} {
		if actual := Unescape(e); actual != s {
			t.Fatalf("Unescape(%q): expected %q, got %q", e, s, actual)
		}
	}
}

func TestEscapeUnescape(t *testing.T) {
	for _, s := range []string{"", `a\b`, "x\"y#z\n\t\r", `\n`} {
		if actual := Unescape(Escape(s)); actual != s {
			t.Fatalf("expected %q, got %q", s, actual)
		}
	}
}
