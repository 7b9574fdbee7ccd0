package internal

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fahrenheit float64

func TestSupported(t *testing.T) {
	supported := []any{"", true, int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0), time.Duration(0), fahrenheit(0)}
	for _, v := range supported {
		assert.True(t, Supported(reflect.TypeOf(v)), "%T should be supported", v)
	}

	unsupported := []any{struct{}{}, []int{}, map[string]int{}, complex128(0)}
	for _, v := range unsupported {
		assert.False(t, Supported(reflect.TypeOf(v)), "%T should not be supported", v)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		proto    any
		text     string
		expected any
	}{
		{"string", "", "hello", "hello"},
		{"bool true", false, "true", true},
		{"bool numeric", false, "1", true},
		{"int", int(0), "-12", int(-12)},
		{"int8", int8(0), "127", int8(127)},
		{"uint16", uint16(0), "65535", uint16(65535)},
		{"float64", float64(0), "2.5", 2.5},
		{"float32", float32(0), "0.25", float32(0.25)},
		{"duration", time.Duration(0), "1h30m", 90 * time.Minute},
		{"named float", fahrenheit(0), "98.6", fahrenheit(98.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Convert(reflect.TypeOf(tt.proto), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Interface())
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name  string
		proto any
		text  string
	}{
		{"int from letters", int(0), "abc"},
		{"int8 overflow", int8(0), "128"},
		{"uint from negative", uint(0), "-1"},
		{"uint16 overflow", uint16(0), "70000"},
		{"float from letters", float64(0), "tall"},
		{"bool from word", false, "yep"},
		{"duration without unit", time.Duration(0), "90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(reflect.TypeOf(tt.proto), tt.text)
			require.Error(t, err)
		})
	}
}

func TestConvert_UnsupportedKind(t *testing.T) {
	_, err := Convert(reflect.TypeOf(struct{}{}), "x")
	require.Error(t, err)

	var kindErr *UnsupportedKindError
	assert.ErrorAs(t, err, &kindErr)
	assert.Contains(t, err.Error(), "struct")
}
