package askline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Engine is the main entry point for interactive input collection. It owns
// the line source and output writers and runs the prompt/parse/retry loop
// for Ask, Sequence and Script requests.
//
// An Engine is safe for sequential use; concurrent asks against the same
// terminal require WithSerializedIO, since interleaved reads would corrupt
// line boundaries.
type Engine struct {
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

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.source == nil {
		config.source = NewReaderSource(os.Stdin)
	}
	if config.out == nil {
		config.out = os.Stdout
	}
	if config.errOut == nil {
		config.errOut = os.Stderr
	}
	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	session := config.session
	if session == "" {
		session = newID(sessionIDPrefix)
	}

	engine := &Engine{
		source:     config.source,
		out:        config.out,
		errOut:     config.errOut,
		handler:    config.handler,
		hooks:      config.hooks,
		logger:     logger,
		typeHint:   config.typeHint,
		serialize:  config.serialize,
		transcript: config.transcript,
		session:    session,
	}

	logger.Debug(LogMsgEngineCreated, zap.String(LogFieldSession, session))
	return engine, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Session returns the session identifier used for transcript entries.
func (e *Engine) Session() string {
	return e.session
}

// askConfig builds the per-request configuration from ask options.
func (e *Engine) askConfig(opts ...AskOption) *askConfig {
	c := &askConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ask runs one full prompt/parse/retry loop for a single value.
//
// The loop is unbounded: it only terminates on a successful parse or a fatal
// stream error. Parse failures invoke the active error handler exactly once
// each and never escape as return values.
func (e *Engine) ask(ctx context.Context, prompt, typeName string, set func(text string) error, cfg *askConfig) error {
	if e.serialize {
		consoleMu.Lock()
		defer consoleMu.Unlock()
	}

	handler := e.handler
	if cfg.handler != nil {
		handler = cfg.handler
	}
	if handler == nil {
		handler = NewDefaultHandler(e.errOut)
	}

	attempt := 0
	for {
		attempt++

		e.fireHooks(ctx, HookBeforePrompt, &HookData{Prompt: prompt, TypeName: typeName, Attempt: attempt})
		e.emitPrompt(prompt, typeName, cfg)

		line, err := e.readLine(ctx)
		if err != nil {
			streamErr := NewStreamError(err)
			e.logger.Debug(LogMsgStreamError,
				zap.String(LogFieldType, typeName),
				zap.Int(LogFieldAttempt, attempt),
				zap.Error(err))
			e.record(ctx, prompt, typeName, "", OutcomeAborted, attempt, err)
			e.fireHooks(ctx, HookStreamError, &HookData{Prompt: prompt, TypeName: typeName, Attempt: attempt, Err: streamErr})
			return streamErr
		}

		text := strings.TrimSpace(line)
		e.logger.Debug(LogMsgLineRead,
			zap.String(LogFieldType, typeName),
			zap.Int(LogFieldAttempt, attempt),
			zap.Int(LogFieldInputLn, len(text)))
		e.fireHooks(ctx, HookAfterRead, &HookData{Prompt: prompt, TypeName: typeName, Input: text, Attempt: attempt})

		if parseErr := set(text); parseErr != nil {
			failure := NewParseFailureError(text, typeName, attempt, parseErr)
			e.logger.Debug(LogMsgParseRejected,
				zap.String(LogFieldType, typeName),
				zap.Int(LogFieldAttempt, attempt),
				zap.Error(parseErr))
			e.record(ctx, prompt, typeName, text, OutcomeRejected, attempt, parseErr)
			e.fireHooks(ctx, HookParseFailure, &HookData{Prompt: prompt, TypeName: typeName, Input: text, Attempt: attempt, Err: failure})
			handler(ctx, Invalid{Input: text, TypeName: typeName, Err: parseErr, Attempt: attempt})
			continue
		}

		e.logger.Debug(LogMsgValueAccepted,
			zap.String(LogFieldType, typeName),
			zap.Int(LogFieldAttempt, attempt))
		e.record(ctx, prompt, typeName, text, OutcomeAccepted, attempt, nil)
		e.fireHooks(ctx, HookAccept, &HookData{Prompt: prompt, TypeName: typeName, Input: text, Attempt: attempt})
		return nil
	}
}

// emitPrompt displays the prompt. An empty prompt prints nothing, with or
// without type hints; a non-empty prompt is written verbatim unless type
// hints are active for this request.
func (e *Engine) emitPrompt(prompt, typeName string, cfg *askConfig) {
	if prompt == "" {
		return
	}
	hint := e.typeHint
	if cfg.typeHint != nil {
		hint = *cfg.typeHint
	}
	if hint {
		fmt.Fprintf(e.out, TypeHintFormat, prompt, typeName)
	} else {
		fmt.Fprint(e.out, prompt)
	}
	e.logger.Debug(LogMsgPromptEmitted, zap.Int(LogFieldPromptLn, len(prompt)))
}

// readLine obtains one line from the source. With a cancelable context the
// read runs on its own goroutine so cancellation can interrupt the wait; a
// canceled read is abandoned and its eventual line is lost, which is
// acceptable because cancellation aborts the whole request.
func (e *Engine) readLine(ctx context.Context) (string, error) {
	if ctx.Done() == nil {
		return e.source.ReadLine()
	}

	type lineResult struct {
		text string
		err  error
	}
	ch := make(chan lineResult, 1)
	go func() {
		text, err := e.source.ReadLine()
		ch <- lineResult{text: text, err: err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// record appends one attempt outcome to the transcript store, if attached.
// Recording never affects the ask loop; failures are logged.
func (e *Engine) record(ctx context.Context, prompt, typeName, input, outcome string, attempt int, cause error) {
	if e.transcript == nil {
		return
	}

	entry := &TranscriptEntry{
		ID:        newID(entryIDPrefix),
		Session:   e.session,
		Prompt:    prompt,
		TypeName:  typeName,
		Input:     input,
		Outcome:   outcome,
		Attempt:   attempt,
		CreatedAt: time.Now().UTC(),
	}
	if cause != nil {
		entry.Detail = cause.Error()
	}

	if err := e.transcript.Append(ctx, entry); err != nil {
		e.logger.Warn(LogMsgTranscriptFailed,
			zap.String(LogFieldOutcome, outcome),
			zap.Error(err))
	}
}
