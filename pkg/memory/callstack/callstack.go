// Released under an MIT license. See LICENSE.

// Package callstack provides the stack of local memories, one per active call.
package callstack

import (
	"github.com/bracklang/brack/pkg/fault"
	"github.com/bracklang/brack/pkg/memory/local"
)

// T (callstack) is a stack of call frames. The last frame is current.
type T struct {
	frames []*local.T
}

type callstack = T

// New creates an empty call stack.
func New() *callstack {
	return &callstack{}
}

// Current returns the current frame.
func (c *callstack) Current() (*local.T, error) {
	n := len(c.frames)
	if n == 0 {
		return nil, fault.NoFrame("frame")
	}

	return c.frames[n-1], nil
}

// Depth returns the number of active frames.
func (c *callstack) Depth() int {
	return len(c.frames)
}

// Pop removes the current frame.
func (c *callstack) Pop() error {
	n := len(c.frames)
	if n == 0 {
		return fault.NoFrame("frame")
	}

	c.frames[n-1] = nil
	c.frames = c.frames[:n-1]

	return nil
}

// Push adds a fresh frame and makes it current.
func (c *callstack) Push() *local.T {
	f := local.New()
	c.frames = append(c.frames, f)

	return f
}

// Reset discards every frame.
func (c *callstack) Reset() {
	c.frames = nil
}
