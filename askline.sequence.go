package askline

import (
	"context"

	"go.uber.org/zap"
)

// Sequence collects several values in one caller expression, each with its
// own destination, prompt and options. Bindings run strictly in the order
// they were added, each as an independent retry loop; no state is shared
// between them beyond ordering and the engine's channels.
type Sequence struct {
	engine   *Engine
	bindings []binding
}

type binding struct {
	dst    any
	prompt string
	opts   []AskOption
}

// NewSequence creates an empty sequence on the given engine.
func NewSequence(e *Engine) *Sequence {
	return &Sequence{engine: e}
}

// Bind appends one value request: dst must be a non-nil pointer with a
// resolvable parse capability. Returns the sequence for chaining.
func (s *Sequence) Bind(dst any, prompt string, opts ...AskOption) *Sequence {
	s.bindings = append(s.bindings, binding{dst: dst, prompt: prompt, opts: opts})
	return s
}

// Len returns the number of bound requests.
func (s *Sequence) Len() int {
	return len(s.bindings)
}

// Run processes the bindings in order. Each binding's loop runs to
// completion before the next begins. A fatal stream error aborts the
// remainder of the sequence; destinations already filled keep their values
// and are not rolled back.
func (s *Sequence) Run(ctx context.Context) error {
	s.engine.logger.Debug(LogMsgSequenceStart, zap.Int(LogFieldBindings, len(s.bindings)))

	for _, b := range s.bindings {
		if err := AskInto(ctx, s.engine, b.dst, b.prompt, b.opts...); err != nil {
			return err
		}
	}

	s.engine.logger.Debug(LogMsgSequenceDone, zap.Int(LogFieldBindings, len(s.bindings)))
	return nil
}
