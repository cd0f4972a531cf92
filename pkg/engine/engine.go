// Released under an MIT license. See LICENSE.

// Package engine runs whole Brack sources against a RAM.
//
// A source may be run in one of two ways. Unthreaded, every statement is
// read before the first is evaluated. Threaded, a reader goroutine feeds
// statements to the evaluator through a bounded channel so evaluation
// starts as soon as the first statement is read.
package engine

import (
	"io"
	"log/slog"
	"sync"

	"github.com/bracklang/brack/pkg/cell"
	"github.com/bracklang/brack/pkg/codec"
	"github.com/bracklang/brack/pkg/ram"
	"github.com/bracklang/brack/pkg/reader"
	"github.com/bracklang/brack/pkg/type/expr"
	"github.com/bracklang/brack/pkg/type/prog"
)

// DefaultQueue is the number of statements buffered between the reader
// and the evaluator when no other size is given.
const DefaultQueue = 64

// Source yields statements one at a time.
type Source interface {
	HasNext() bool
	Next() (*expr.T, error)
}

// Options control how a source is run.
type Options struct {
	Queue    int  // Statements buffered between reader and evaluator.
	Threaded bool // Read and evaluate concurrently.
}

// Collect reads every statement from src.
func Collect(src Source) (*prog.T, error) {
	p := prog.New()

	for src.HasNext() {
		s, err := src.Next()
		if err != nil {
			return nil, err
		}

		p.Append(s)
	}

	return p, nil
}

// Run evaluates every statement from src in a new frame of r.
func Run(r *ram.T, src Source, o Options) (cell.I, error) {
	if o.Threaded {
		return Stream(r, src, o.Queue)
	}

	p, err := Collect(src)
	if err != nil {
		return nil, err
	}

	return r.Execute(p)
}

// RunBytes evaluates the binary records read from in.
func RunBytes(r *ram.T, in io.Reader, o Options) (cell.I, error) {
	return Run(r, codec.NewDecoder(in), o)
}

// RunText evaluates the statements read from in.
// The label is used in error messages.
func RunText(r *ram.T, label string, in io.Reader, o Options) (cell.I, error) {
	return Run(r, reader.New(label, in), o)
}

// Stream evaluates the statements from src while they are being read.
//
// Statements are evaluated in the order they are read, in one new frame
// of r, exactly as Execute would evaluate them. Evaluation stops at the
// first signal or error. A read error is returned unless evaluation
// stopped first.
func Stream(r *ram.T, src Source, queue int) (result cell.I, err error) {
	if queue <= 0 {
		queue = DefaultQueue
	}

	slog.Debug("stream start", slog.Int("queue", queue))

	var (
		rerr  error
		stmts = make(chan *expr.T, queue)
		stop  = make(chan struct{})
		wg    sync.WaitGroup
	)

	wg.Add(1)

	go func() {
		defer wg.Done()
		defer close(stmts)

		for src.HasNext() {
			s, err := src.Next()
			if err != nil {
				rerr = err

				return
			}

			select {
			case stmts <- s:
			case <-stop:
				return
			}
		}
	}()

	r.PushFrame()

	defer func() {
		if perr := r.PopFrame(); perr != nil && err == nil {
			err = perr
		}
	}()

	n := 0

	for s := range stmts {
		n++

		result, err = r.Statement(s)
		if err != nil || result != nil {
			break
		}
	}

	close(stop)
	wg.Wait()

	slog.Debug("stream finish", slog.Int("statements", n))

	if err == nil && result == nil && rerr != nil {
		return nil, rerr
	}

	return result, err
}
