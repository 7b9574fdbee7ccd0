package main

// Command names
const (
	CmdNameRun     = "run"
	CmdNameCheck   = "check"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagScript     = "script"
	FlagFormat     = "format"
	FlagTranscript = "transcript"
	FlagHint       = "hint"
)

// Flag names - short form
const (
	FlagScriptShort = "s"
	FlagFormatShort = "F"
)

// Flag default values
const (
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingScript     = "script file required"
	ErrMsgScriptReadFailed  = "failed to read script"
	ErrMsgScriptInvalid     = "script is invalid"
	ErrMsgUnknownFormat     = "unknown output format"
	ErrMsgBadTranscriptSpec = "transcript spec must be driver or driver=dsn"
	ErrMsgTranscriptOpen    = "failed to open transcript store"
	ErrMsgRunAborted        = "input aborted"
	ErrMsgEncodeFailed      = "failed to encode output"
	ErrMsgUnknownCommand    = "unknown command"
)

// Output format strings
const (
	FmtErrorWithCause  = "error: %s: %v\n"
	FmtErrorWithDetail = "error: %s: %s\n"
	FmtAnswerLine      = "%s = %v\n"
	FmtVersionLine     = "askline version %s\n"
	FmtScriptOK        = "script ok: %d field(s)\n"
)

// Help text
const (
	HelpMainUsage = `askline - interactive typed input, driven by YAML scripts

Usage:
  askline <command> [flags]

Commands:
  run      Run a script, prompting interactively for each field
  check    Validate a script without running it
  version  Print version information
  help     Show help for a command

Use "askline help <command>" for command details.`

	HelpRunUsage = `Usage: askline run -s <script.yaml> [flags]

Prompts for each script field in order, re-asking on invalid input, and
prints the collected answers.

Flags:
  -s, --script      Script file path, or "-" for stdin (required)
  -F, --format      Output format: text or json (default "text")
      --transcript  Record attempts: driver or driver=dsn
                    (memory, file=<path>, postgres=<dsn>)
      --hint        Append "(<type>): " to every prompt`

	HelpCheckUsage = `Usage: askline check -s <script.yaml>

Validates the script's version, field names and types.`

	HelpVersionUsage = `Usage: askline version

Prints version information.`

	HelpHelpUsage = `Usage: askline help [command]

Shows general help, or help for a command.`
)
