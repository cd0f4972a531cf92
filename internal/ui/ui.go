// Released under an MIT license. See LICENSE.

// Package ui provides an interactive interface for Brack.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/adapted"
	"github.com/peterh/liner"

	"github.com/bracklang/brack/internal/system/config"
	"github.com/bracklang/brack/internal/system/history"
	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/reader"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/str"
)

var errAborted = errors.New("aborted") //nolint:gochecknoglobals

// Prompter reads lines from the user.
type Prompter interface {
	AppendHistory(item string)
	Prompt(prompt string) (string, error)
}

// T (ui) reads statements from a Prompter and evaluates them.
type T struct {
	out    io.Writer
	p      Prompter
	prompt string
	quit   bool
	r      *ram.T
}

type ui = T

// New creates a UI that evaluates statements read from p against r.
// Results and errors are written to out.
func New(r *ram.T, p Prompter, out io.Writer, prompt string) *ui {
	return &ui{
		out:    out,
		p:      p,
		prompt: prompt,
		r:      r,
	}
}

// Start runs an interactive session on the terminal.
func Start(r *ram.T, out io.Writer, c *config.T) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	path := history.Path(c.History)
	if path != "" {
		if err := history.Load(path, cli.ReadHistory); err != nil {
			slog.Debug("history not loaded", slog.String("path", path), slog.Any("error", err))
		}
	}

	u := New(r, cli, out, c.Prompt)

	cli.SetWordCompleter(u.Complete)

	err := u.Run()

	if path != "" {
		if herr := history.Save(path, cli.WriteHistory); herr != nil {
			slog.Debug("history not saved", slog.String("path", path), slog.Any("error", herr))
		}
	}

	return err
}

// Complete completes the word before pos in line with the name of an
// operator, a script, or, at the start of a line, a meta command.
func (u *ui) Complete(line string, pos int) (string, []string, string) {
	head := line[:pos]
	tail := line[pos:]

	start := strings.LastIndexAny(head, " \t[]\"") + 1
	prefix := head[start:]

	var names []string
	if start == 0 && strings.HasPrefix(prefix, ":") {
		names = metas()
	} else {
		names = append(u.r.Operators().Names(), u.r.ScriptNames()...)
	}

	completions := []string{}

	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			completions = append(completions, n)
		}
	}

	return head[:start], completions, tail
}

// Run reads and evaluates statements until there is no more input or the
// user quits. Locals defined at the top level persist between statements.
func (u *ui) Run() error {
	u.r.PushFrame()
	defer u.r.PopFrame() //nolint:errcheck

	for {
		if u.session(reader.New("brack", &lines{u: u})) {
			return nil
		}
	}
}

// Display returns the form in which c is shown to the user.
// Text with unprintable characters is shown in dollar single-quoted form.
func Display(c cell.I) string {
	if s, ok := str.To(c); ok {
		if strings.IndexFunc(string(*s), unprintable) >= 0 {
			return adapted.CanonicalString(string(*s))
		}

		return str.Quote(string(*s))
	}

	return expr.Literal(c)
}

func (u *ui) report(err error) {
	fmt.Fprintln(u.out, "error:", err)
}

// The session is over when it returns true. Otherwise, start a new one.
func (u *ui) session(src *reader.T) bool {
	for src.HasNext() {
		s, err := src.Next()
		if err != nil {
			if errors.Is(err, errAborted) {
				fmt.Fprintln(u.out)
			} else {
				u.report(err)
			}

			return u.quit
		}

		v, err := u.r.Value(s)
		if err != nil {
			u.report(err)

			continue
		}

		if v != nil {
			fmt.Fprintln(u.out, Display(v))
		}
	}

	return true
}

type lines struct {
	buf []byte
	u   *ui
}

func (l *lines) Read(b []byte) (int, error) {
	for len(l.buf) == 0 {
		if l.u.quit {
			return 0, io.EOF
		}

		line, err := l.u.p.Prompt(l.u.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return 0, errAborted
			}

			return 0, io.EOF
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			l.u.p.AppendHistory(line)
		}

		if strings.HasPrefix(trimmed, ":") {
			l.u.meta(trimmed)

			continue
		}

		l.buf = []byte(line + "\n")
	}

	n := copy(b, l.buf)
	l.buf = l.buf[n:]

	return n, nil
}

func unprintable(r rune) bool {
	return r == unicode.ReplacementChar || (!unicode.IsPrint(r) && !unicode.IsSpace(r))
}
