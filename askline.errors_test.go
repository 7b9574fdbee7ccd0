package askline

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParseFailureError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("bad digit")
		err := NewParseFailureError("abc", "int", 3, cause)

		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsParseFailure(err))
		assert.False(t, IsStreamFatal(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		input, ok := customErr.GetMetadata(MetaKeyInput)
		assert.True(t, ok)
		assert.Equal(t, "abc", input)

		typeName, ok := customErr.GetMetadata(MetaKeyType)
		assert.True(t, ok)
		assert.Equal(t, "int", typeName)

		attempt, ok := customErr.GetMetadata(MetaKeyAttempt)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(3), attempt)
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewParseFailureError("x", "bool", 1, nil)
		require.Error(t, err)
		assert.True(t, IsParseFailure(err))
	})
}

func TestNewStreamError(t *testing.T) {
	t.Run("eof", func(t *testing.T) {
		err := NewStreamError(io.EOF)

		require.Error(t, err)
		assert.True(t, IsStreamFatal(err))
		assert.True(t, errors.Is(err, io.EOF))
		assert.Contains(t, err.Error(), ErrMsgStreamExhausted)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		reason, ok := customErr.GetMetadata(MetaKeyReason)
		assert.True(t, ok)
		assert.Equal(t, StreamReasonEOF, reason)
	})

	t.Run("io failure", func(t *testing.T) {
		cause := errors.New("read: connection reset")
		err := NewStreamError(cause)

		assert.True(t, IsStreamFatal(err))
		assert.True(t, errors.Is(err, cause))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		reason, _ := customErr.GetMetadata(MetaKeyReason)
		assert.Equal(t, StreamReasonIO, reason)
	})

	t.Run("canceled", func(t *testing.T) {
		err := NewStreamError(context.Canceled)

		assert.True(t, IsStreamFatal(err))
		assert.True(t, errors.Is(err, context.Canceled))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		reason, _ := customErr.GetMetadata(MetaKeyReason)
		assert.Equal(t, StreamReasonCanceled, reason)
	})
}

func TestConfigErrors(t *testing.T) {
	t.Run("nil destination", func(t *testing.T) {
		err := NewNilDestinationError()
		assert.Contains(t, err.Error(), ErrMsgNilDestination)
	})

	t.Run("unsupported type", func(t *testing.T) {
		err := NewUnsupportedTypeError("chan int")
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		typeName, ok := customErr.GetMetadata(MetaKeyType)
		assert.True(t, ok)
		assert.Equal(t, "chan int", typeName)
	})

	t.Run("parser mismatch", func(t *testing.T) {
		err := NewParserMismatchError("float64")
		assert.Contains(t, err.Error(), ErrMsgParserMismatch)
	})
}

func TestScriptErrors(t *testing.T) {
	t.Run("field error carries field name", func(t *testing.T) {
		err := NewScriptFieldError(ErrMsgScriptUnknownType, "age")

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		field, ok := customErr.GetMetadata(MetaKeyField)
		assert.True(t, ok)
		assert.Equal(t, "age", field)
	})

	t.Run("version error carries version", func(t *testing.T) {
		err := NewScriptVersionError(9)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		version, ok := customErr.GetMetadata(MetaKeyVersion)
		assert.True(t, ok)
		assert.Equal(t, "9", version)
	})
}

func TestStoreErrors(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		err := NewStoreClosedError()
		assert.Contains(t, err.Error(), ErrMsgStoreClosed)
	})

	t.Run("unknown driver", func(t *testing.T) {
		err := NewUnknownStoreDriverError("redis")

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		driver, ok := customErr.GetMetadata(MetaKeyDriver)
		assert.True(t, ok)
		assert.Equal(t, "redis", driver)
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewStoreError(ErrMsgStoreAppendFailed, cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestErrKindClassifiers(t *testing.T) {
	assert.False(t, IsStreamFatal(nil))
	assert.False(t, IsParseFailure(nil))
	assert.False(t, IsStreamFatal(errors.New("plain")))
	assert.False(t, IsParseFailure(io.EOF))
}
