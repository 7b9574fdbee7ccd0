package askline

import (
	"context"

	"go.uber.org/zap"
)

// HookPoint identifies when a hook is called during an ask loop.
type HookPoint string

// Hook points for the prompt/read/parse lifecycle.
const (
	// HookBeforePrompt is called before the prompt is displayed, once per
	// attempt.
	HookBeforePrompt HookPoint = "before_prompt"

	// HookAfterRead is called after a line was obtained and trimmed, before
	// parsing.
	HookAfterRead HookPoint = "after_read"

	// HookParseFailure is called after a failed parse, before the error
	// handler runs.
	HookParseFailure HookPoint = "parse_failure"

	// HookAccept is called once when a value is successfully parsed.
	HookAccept HookPoint = "accept"

	// HookStreamError is called once when the loop aborts on a stream error.
	HookStreamError HookPoint = "stream_error"
)

// HookData carries context information to hooks.
type HookData struct {
	// Prompt is the prompt text for this request (verbatim, pre-formatting).
	Prompt string

	// TypeName is the expected type's human-readable name.
	TypeName string

	// Input is the trimmed line for after_read, parse_failure and accept;
	// empty for before_prompt and stream_error.
	Input string

	// Attempt is the 1-based attempt counter.
	Attempt int

	// Err is set for parse_failure and stream_error.
	Err error
}

// Hook is a function called at specific points during an ask loop. Hooks are
// observational: a returned error is logged and does not affect the loop.
type Hook func(ctx context.Context, point HookPoint, data *HookData) error

// fireHooks invokes all registered hooks in registration order.
func (e *Engine) fireHooks(ctx context.Context, point HookPoint, data *HookData) {
	for _, hook := range e.hooks {
		if err := hook(ctx, point, data); err != nil {
			e.logger.Warn(LogMsgHookFailed,
				zap.String("point", string(point)),
				zap.Error(err))
		}
	}
}
