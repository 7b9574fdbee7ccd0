package askline

import "time"

// Version is the library version.
const Version = "1.0.0"

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Parse errors
	ErrMsgParseFailed = "input could not be parsed as the expected type"

	// Stream errors
	ErrMsgStreamExhausted = "input stream exhausted"
	ErrMsgStreamRead      = "input stream read failed"
	ErrMsgStreamCanceled  = "input read canceled"

	// Configuration errors
	ErrMsgNilDestination  = "destination must be a non-nil pointer"
	ErrMsgUnsupportedType = "no parser available for destination type"
	ErrMsgParserMismatch  = "custom parser does not match destination type"

	// Script errors
	ErrMsgScriptDecode       = "script decoding failed"
	ErrMsgScriptVersion      = "unsupported script version"
	ErrMsgScriptNoFields     = "script declares no fields"
	ErrMsgScriptEmptyName    = "script field name cannot be empty"
	ErrMsgScriptDupName      = "script field name declared twice"
	ErrMsgScriptUnknownType  = "script field type is not supported"
	ErrMsgScriptEncodeFailed = "script encoding failed"

	// Transcript store errors
	ErrMsgStoreClosed        = "transcript store is closed"
	ErrMsgStoreUnknownDriver = "unknown transcript store driver"
	ErrMsgStoreAppendFailed  = "transcript append failed"
	ErrMsgStoreListFailed    = "transcript list failed"
	ErrMsgStoreOpenFailed    = "transcript store open failed"

	// Postgres store errors
	ErrMsgPostgresEmptyConnString  = "postgres connection string cannot be empty"
	ErrMsgPostgresConnectionFailed = "postgres connection failed"
	ErrMsgPostgresMigrationFailed  = "postgres migration failed"
)

// Error code constants for categorization
const (
	ErrCodeParse  = "ASKLINE_PARSE"
	ErrCodeStream = "ASKLINE_STREAM"
	ErrCodeConfig = "ASKLINE_CONFIG"
	ErrCodeScript = "ASKLINE_SCRIPT"
	ErrCodeStore  = "ASKLINE_STORE"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyInput   = "input"
	MetaKeyType    = "expected_type"
	MetaKeyAttempt = "attempt"
	MetaKeyKind    = "kind"
	MetaKeyReason  = "reason"
	MetaKeyField   = "field"
	MetaKeyVersion = "version"
	MetaKeyDriver  = "driver"
)

// Error kind values stored under MetaKeyKind
const (
	errKindParse  = "parse"
	errKindStream = "stream"
	errKindConfig = "config"
)

// Stream failure reasons stored under MetaKeyReason
const (
	StreamReasonEOF      = "eof"
	StreamReasonIO       = "io"
	StreamReasonCanceled = "canceled"
)

// Output formatting constants.
//
// TypeHintFormat mirrors the classic "<prompt> (<type>): " console style.
// DefaultDiagnosticFormat is the diagnostic emitted by the default error
// handler after a failed parse.
const (
	TypeHintFormat          = "%s (%s): "
	DefaultDiagnosticFormat = "invalid entry %q: expected %s: %v\n"
)

// Transcript outcome values
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeAborted  = "aborted"
)

// Transcript store driver names
const (
	StoreDriverNameMemory   = "memory"
	StoreDriverNameFile     = "file"
	StoreDriverNamePostgres = "postgres"
)

// ID prefixes for generated identifiers
const (
	entryIDPrefix   = "trn_"
	sessionIDPrefix = "ses_"
)

// Script format constants
const (
	// ScriptVersion is the current script schema version.
	ScriptVersion = 1
)

// Postgres store defaults
const (
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
	PostgresTablePrefix            = "askline_"
)

// Log message constants
const (
	LogMsgEngineCreated    = "engine created"
	LogMsgPromptEmitted    = "prompt emitted"
	LogMsgLineRead         = "line read"
	LogMsgParseRejected    = "input rejected"
	LogMsgValueAccepted    = "value accepted"
	LogMsgStreamError      = "input stream error"
	LogMsgHookFailed       = "hook returned error"
	LogMsgTranscriptFailed = "transcript append failed"
	LogMsgSequenceStart    = "sequence started"
	LogMsgSequenceDone     = "sequence complete"
	LogMsgScriptStart      = "script run started"
	LogMsgScriptDone       = "script run complete"
)

// Log field name constants
const (
	LogFieldType     = "expected_type"
	LogFieldAttempt  = "attempt"
	LogFieldPromptLn = "prompt_length"
	LogFieldInputLn  = "input_length"
	LogFieldOutcome  = "outcome"
	LogFieldBindings = "bindings"
	LogFieldFields   = "fields"
	LogFieldSession  = "session"
	LogFieldDriver   = "driver"
)
