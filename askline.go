// Package askline collects validated values interactively: print a prompt,
// read one line, parse it into the requested type, and on failure report the
// problem and re-prompt until the input is valid.
//
// # Basic Usage
//
// Ask for one value on a custom engine, or use the package-level default
// bound to stdin/stdout:
//
//	age, err := askline.Input[int]("How old are you? ")
//	if err != nil {
//	    // the input stream ended or failed; invalid input never lands here
//	}
//
// Invalid lines are diagnosed and re-prompted automatically:
//
//	How old are you? abc
//	invalid entry "abc": expected int: strconv.ParseInt: parsing "abc": invalid syntax
//	How old are you? 42
//
// # Engines
//
// An Engine owns the line source and output writers. Wire it to any reader
// and writer for tests or non-terminal use:
//
//	engine := askline.MustNew(
//	    askline.WithReader(conn),
//	    askline.WithWriter(conn),
//	    askline.WithLogger(logger),
//	)
//	port, err := askline.Ask[uint16](engine, "Port: ")
//
// # Parse capability
//
// Any type with a text parse capability works: builtin kinds (string, bool,
// integer and float widths, time.Duration, and named types over them), types
// implementing encoding.TextUnmarshaler, or an explicit parser:
//
//	level, err := askline.Ask[string](engine, "Level: ",
//	    askline.WithParseFunc(func(text string) (string, error) {
//	        if text != "debug" && text != "info" { return "", errors.New("unknown level") }
//	        return text, nil
//	    }))
//
// # Error handling
//
// Parse failures are recovered inside the loop; the default diagnostic can
// be replaced per request or engine-wide with a custom ErrorHandler. Only
// stream exhaustion, I/O failure, or context cancellation abort a request -
// those surface as fatal errors (IsStreamFatal) because an exhausted stream
// can never succeed on retry.
//
// The retry loop is deliberately unbounded: the contract is "returns a valid
// value or a fatal stream error", never a bounded number of attempts.
//
// # Multiple values
//
// Sequence binds several destinations in one expression; Script does the
// same from a YAML declaration:
//
//	var age int
//	var height float64
//	err := askline.NewSequence(engine).
//	    Bind(&age, "Age: ").
//	    Bind(&height, "Height: ").
//	    Run(ctx)
//
// # Transcripts
//
// Attach a TranscriptStore (memory, file, or postgres) to record every
// attempt outcome for diagnostics and audit of interactive sessions.
package askline

import (
	"context"
	"sync"
)

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the shared engine bound to os.Stdin/os.Stdout/os.Stderr,
// created on first use with serialized console I/O.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = MustNew(WithSerializedIO())
	})
	return defaultEngine
}

// Input asks for one validated T on the default engine.
func Input[T any](prompt string, opts ...AskOption) (T, error) {
	return Ask[T](Default(), prompt, opts...)
}

// InputContext is Input with cancellation.
func InputContext[T any](ctx context.Context, prompt string, opts ...AskOption) (T, error) {
	return AskContext[T](ctx, Default(), prompt, opts...)
}
