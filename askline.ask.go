package askline

import "context"

// Ask prompts for and returns a single validated T, retrying on invalid
// input until the line source yields something parseable. The retry loop is
// unbounded; the only error ever returned is a fatal stream error (see
// IsStreamFatal) or a configuration error for an unusable destination type.
//
// T must carry a parse capability: implement encoding.TextUnmarshaler, be
// one of the builtin kinds (string, bool, integer and float widths,
// time.Duration, or named types over those), or be paired with WithParseFunc.
//
// Ask is a package-level generic function rather than a method because Go
// methods cannot introduce type parameters.
func Ask[T any](e *Engine, prompt string, opts ...AskOption) (T, error) {
	return AskContext[T](context.Background(), e, prompt, opts...)
}

// AskContext is Ask with cancellation: a canceled context aborts the wait
// for input and surfaces as a fatal stream error wrapping ctx.Err().
func AskContext[T any](ctx context.Context, e *Engine, prompt string, opts ...AskOption) (T, error) {
	var dst T

	cfg := e.askConfig(opts...)
	set, typeName, err := cfg.setterFor(&dst)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := e.ask(ctx, prompt, typeName, set, cfg); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// AskInto is the destination-pointer form of Ask, used when the target type
// is only known at runtime (Sequence and Script are built on it). dst must
// be a non-nil pointer with a resolvable parse capability.
func AskInto(ctx context.Context, e *Engine, dst any, prompt string, opts ...AskOption) error {
	cfg := e.askConfig(opts...)
	set, typeName, err := cfg.setterFor(dst)
	if err != nil {
		return err
	}
	return e.ask(ctx, prompt, typeName, set, cfg)
}
