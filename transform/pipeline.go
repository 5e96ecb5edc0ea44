// SPDX-License-Identifier: MIT
// Package: transform
//
// Purpose:
//   - Chain handlers in a fixed, caller-chosen order and fold an input through them.
//
// Determinism:
//   - Stages run strictly front to back; the output of stage i is the input of stage i+1.

package transform

import (
	"fmt"

	"github.com/katalvlaran/cloudalign/matrix"
)

// Pipeline is an ordered, immutable list of handlers.
// The zero value is an empty pipeline whose Execute returns its input unchanged.
type Pipeline struct {
	handlers []Handler
}

// Compile-time assertion: a Pipeline nests as a single stage.
var _ Handler = Pipeline{}

// NewPipeline returns a pipeline running hs in order.
// Panics on a nil handler (programmer error).
func NewPipeline(hs ...Handler) Pipeline {
	var p Pipeline
	for _, h := range hs {
		p = p.AddHandler(h)
	}

	return p
}

// AddHandler returns a new pipeline with h appended.
// The receiver keeps its own stages, so one prefix can be extended in
// several directions and every result stays usable.
// Panics on a nil handler (programmer error).
//
// Complexity:
//   - Time O(len), Space O(len).
func (p Pipeline) AddHandler(h Handler) Pipeline {
	if h == nil {
		panic(ErrNilHandler)
	}
	next := make([]Handler, len(p.handlers), len(p.handlers)+1)
	copy(next, p.handlers)

	return Pipeline{handlers: append(next, h)}
}

// Len reports the number of stages.
func (p Pipeline) Len() int { return len(p.handlers) }

// Handlers returns a copy of the stages in execution order.
func (p Pipeline) Handlers() []Handler {
	out := make([]Handler, len(p.handlers))
	copy(out, p.handlers)

	return out
}

// Execute folds x through every stage, left to right.
//
// Implementation:
//   - Stage 1: cur = x.
//   - Stage 2: for each handler h, cur = h.Process(cur); stop at the first error.
//
// Errors:
//   - The first failing stage, wrapped as "transform: stage <i> (<name>): <cause>".
//     No partial result is returned.
func (p Pipeline) Execute(x *matrix.Dense) (*matrix.Dense, error) {
	return p.Trace(x, nil)
}

// Trace is Execute with a hook called after every successful stage.
// hook may be nil. stage is the 0-based position, name the stage label.
func (p Pipeline) Trace(x *matrix.Dense, hook func(stage int, name string, out *matrix.Dense)) (*matrix.Dense, error) {
	cur := x
	var err error
	for i, h := range p.handlers {
		cur, err = h.Process(cur)
		if err != nil {
			return nil, stageErrorf(i, handlerName(h), err)
		}
		if hook != nil {
			hook(i, handlerName(h), cur)
		}
	}

	return cur, nil
}

// Process makes a Pipeline usable as a Handler.
func (p Pipeline) Process(in *matrix.Dense) (*matrix.Dense, error) { return p.Execute(in) }

// String lists the stage names, e.g. "Pipeline[Transpose AppendConstantRow(1)]".
func (p Pipeline) String() string {
	names := make([]string, len(p.handlers))
	for i, h := range p.handlers {
		names[i] = handlerName(h)
	}

	return fmt.Sprintf("Pipeline%v", names)
}
