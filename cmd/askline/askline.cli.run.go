package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itsatony/go-askline"
)

// runConfig holds parsed run command configuration
type runConfig struct {
	scriptPath     string
	format         string
	transcriptSpec string
	hint           bool
}

// answerOutput represents one answer in JSON output
type answerOutput struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func runScript(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRunFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingScript, err)
		return ExitCodeUsageError
	}

	script, exitCode := loadScriptFile(cfg.scriptPath, stdin, stderr)
	if exitCode != ExitCodeSuccess {
		return exitCode
	}

	opts := []askline.Option{
		askline.WithReader(stdin),
		askline.WithWriter(stdout),
		askline.WithErrWriter(stderr),
		askline.WithTypeHint(cfg.hint),
	}

	if cfg.transcriptSpec != "" {
		store, err := openTranscript(cfg.transcriptSpec)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgTranscriptOpen, err)
			return ExitCodeError
		}
		defer store.Close()
		opts = append(opts, askline.WithTranscript(store))
	}

	engine, err := askline.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRunAborted, err)
		return ExitCodeError
	}

	answers, err := script.Run(context.Background(), engine)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRunAborted, err)
		return ExitCodeInputError
	}

	return printAnswers(answers, cfg.format, stdout, stderr)
}

func parseRunFlags(args []string) (*runConfig, error) {
	fs := flag.NewFlagSet(CmdNameRun, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &runConfig{}

	fs.StringVar(&cfg.scriptPath, FlagScript, "", "")
	fs.StringVar(&cfg.scriptPath, FlagScriptShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.StringVar(&cfg.transcriptSpec, FlagTranscript, "", "")
	fs.BoolVar(&cfg.hint, FlagHint, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.scriptPath == "" {
		return nil, errors.New(ErrMsgMissingScript)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgUnknownFormat)
	}

	return cfg, nil
}

// loadScriptFile reads and parses a script from a path or stdin ("-").
// Reading the script from stdin is disallowed when stdin also feeds the
// prompts, so "-" only works for check.
func loadScriptFile(path string, stdin io.Reader, stderr io.Writer) (*askline.Script, int) {
	var (
		data []byte
		err  error
	)
	if path == InputSourceStdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgScriptReadFailed, err)
		return nil, ExitCodeError
	}

	script, err := askline.LoadScript(data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgScriptInvalid, err)
		return nil, ExitCodeValidationError
	}
	return script, ExitCodeSuccess
}

// openTranscript opens a store from a "driver" or "driver=dsn" spec.
func openTranscript(spec string) (askline.TranscriptStore, error) {
	driver, dsn, _ := strings.Cut(spec, "=")
	if driver == "" {
		return nil, errors.New(ErrMsgBadTranscriptSpec)
	}
	return askline.OpenStore(driver, dsn)
}

func printAnswers(answers askline.Answers, format string, stdout, stderr io.Writer) int {
	switch format {
	case OutputFormatJSON:
		out := make([]answerOutput, 0, len(answers))
		for _, ans := range answers {
			out = append(out, answerOutput{Name: ans.Name, Type: ans.TypeName, Value: ans.Value})
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEncodeFailed, err)
			return ExitCodeError
		}
	default:
		for _, ans := range answers {
			fmt.Fprintf(stdout, FmtAnswerLine, ans.Name, ans.Value)
		}
	}
	return ExitCodeSuccess
}
