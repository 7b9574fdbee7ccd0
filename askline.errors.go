package askline

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// NewParseFailureError creates the per-attempt parse error handed to hooks
// and transcripts. It never escapes an ask loop as a return value.
func NewParseFailureError(input, typeName string, attempt int, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgParseFailed)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, ErrMsgParseFailed)
	}
	return err.
		WithMetadata(MetaKeyKind, errKindParse).
		WithMetadata(MetaKeyInput, input).
		WithMetadata(MetaKeyType, typeName).
		WithMetadata(MetaKeyAttempt, strconv.Itoa(attempt))
}

// NewStreamError creates the fatal error returned when the line source is
// exhausted, fails, or the surrounding context is canceled. The cause is
// wrapped, so errors.Is(err, io.EOF) and errors.Is(err, context.Canceled)
// keep working.
func NewStreamError(cause error) error {
	msg := ErrMsgStreamRead
	reason := StreamReasonIO
	switch {
	case errors.Is(cause, io.EOF):
		msg = ErrMsgStreamExhausted
		reason = StreamReasonEOF
	case errors.Is(cause, context.Canceled), errors.Is(cause, context.DeadlineExceeded):
		msg = ErrMsgStreamCanceled
		reason = StreamReasonCanceled
	}
	return cuserr.WrapStdError(cause, ErrCodeStream, msg).
		WithMetadata(MetaKeyKind, errKindStream).
		WithMetadata(MetaKeyReason, reason)
}

// NewNilDestinationError creates an error for a nil or non-pointer destination.
func NewNilDestinationError() error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgNilDestination).
		WithMetadata(MetaKeyKind, errKindConfig)
}

// NewUnsupportedTypeError creates an error for a destination type with no
// known parse capability.
func NewUnsupportedTypeError(typeName string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnsupportedType).
		WithMetadata(MetaKeyKind, errKindConfig).
		WithMetadata(MetaKeyType, typeName)
}

// NewParserMismatchError creates an error for a custom parser whose value
// type does not match the destination.
func NewParserMismatchError(typeName string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgParserMismatch).
		WithMetadata(MetaKeyKind, errKindConfig).
		WithMetadata(MetaKeyType, typeName)
}

// NewScriptError creates a script loading/validation error.
func NewScriptError(msg string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeScript, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeScript, msg)
	}
	return err
}

// NewScriptFieldError creates a script validation error scoped to one field.
func NewScriptFieldError(msg, field string) error {
	return cuserr.NewValidationError(ErrCodeScript, msg).
		WithMetadata(MetaKeyField, field)
}

// NewScriptVersionError creates an error for an unsupported script version.
func NewScriptVersionError(version int) error {
	return cuserr.NewValidationError(ErrCodeScript, ErrMsgScriptVersion).
		WithMetadata(MetaKeyVersion, strconv.Itoa(version))
}

// NewStoreError creates a transcript store error.
func NewStoreError(msg string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeStore, msg)
	} else {
		err = cuserr.NewInternalError(ErrCodeStore, nil)
	}
	return err
}

// NewStoreClosedError creates an error for operations on a closed store.
func NewStoreClosedError() error {
	return cuserr.NewValidationError(ErrCodeStore, ErrMsgStoreClosed)
}

// NewUnknownStoreDriverError creates an error for an unregistered driver name.
func NewUnknownStoreDriverError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyDriver, ErrMsgStoreUnknownDriver).
		WithMetadata(MetaKeyDriver, name)
}

// IsStreamFatal reports whether err is a fatal stream error produced by an
// ask loop (stream exhaustion, I/O failure, or cancellation).
func IsStreamFatal(err error) bool {
	return errKind(err) == errKindStream
}

// IsParseFailure reports whether err is a per-attempt parse failure. Such
// errors are only observable through hooks and transcripts.
func IsParseFailure(err error) bool {
	return errKind(err) == errKindParse
}

func errKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	if !ok {
		return ""
	}
	return kind
}
