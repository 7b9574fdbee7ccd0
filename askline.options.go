package askline

import (
	"io"

	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	source     LineSource
	out        io.Writer
	errOut     io.Writer
	handler    ErrorHandler
	hooks      []Hook
	logger     *zap.Logger
	typeHint   bool
	serialize  bool
	transcript TranscriptStore
	session    string
}

// defaultEngineConfig returns the default engine configuration.
// Reader/writer defaults (stdin/stdout/stderr) are applied in New so tests
// can detect "not set" explicitly.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		typeHint: false,
		logger:   nil,
	}
}

// WithSource sets the line source the engine reads from.
// Default: NewReaderSource(os.Stdin)
func WithSource(source LineSource) Option {
	return func(c *engineConfig) {
		c.source = source
	}
}

// WithReader is shorthand for WithSource(NewReaderSource(r)).
func WithReader(r io.Reader) Option {
	return func(c *engineConfig) {
		if r != nil {
			c.source = NewReaderSource(r)
		}
	}
}

// WithWriter sets the writer prompts are displayed on.
// Default: os.Stdout
func WithWriter(w io.Writer) Option {
	return func(c *engineConfig) {
		c.out = w
	}
}

// WithErrWriter sets the writer the default error handler's diagnostics go to.
// Default: os.Stderr
func WithErrWriter(w io.Writer) Option {
	return func(c *engineConfig) {
		c.errOut = w
	}
}

// WithErrorHandler sets the engine-wide error handler, replacing the built-in
// diagnostic for every request. A per-request WithHandler still wins.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *engineConfig) {
		c.handler = handler
	}
}

// WithHooks appends lifecycle hooks called during every ask loop.
func WithHooks(hooks ...Hook) Option {
	return func(c *engineConfig) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithTypeHint makes prompts render as "<prompt> (<type>): " instead of the
// verbatim prompt text. An empty prompt still prints nothing.
// Default: false (verbatim prompts)
func WithTypeHint(enabled bool) Option {
	return func(c *engineConfig) {
		c.typeHint = enabled
	}
}

// WithSerializedIO makes the engine hold the process-wide console lock for
// each entire ask loop (prompt through accept). Use it when multiple
// goroutines prompt on the same terminal.
func WithSerializedIO() Option {
	return func(c *engineConfig) {
		c.serialize = true
	}
}

// WithTranscript attaches a transcript store; every attempt outcome is
// recorded to it. Recording failures are logged, never surfaced.
func WithTranscript(store TranscriptStore) Option {
	return func(c *engineConfig) {
		c.transcript = store
	}
}

// WithSession overrides the generated session identifier used for transcript
// entries.
func WithSession(session string) Option {
	return func(c *engineConfig) {
		c.session = session
	}
}

// AskOption is a functional option scoped to a single value request.
type AskOption func(*askConfig)

// askConfig holds per-request configuration.
type askConfig struct {
	handler  ErrorHandler
	typeHint *bool
	parser   func(dst any) (setter func(text string) error, typeName string, ok bool)
}

// WithHandler sets the error handler for this request only, replacing both
// the default diagnostic and any engine-wide handler.
func WithHandler(handler ErrorHandler) AskOption {
	return func(c *askConfig) {
		c.handler = handler
	}
}

// WithHint overrides the engine's type-hint setting for this request.
func WithHint(enabled bool) AskOption {
	return func(c *askConfig) {
		c.typeHint = &enabled
	}
}
