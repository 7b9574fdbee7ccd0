package internal

import (
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Supported reports whether Convert can produce a value of type t from text.
// Named types over the builtin kinds (e.g. "type Port uint16") are supported.
func Supported(t reflect.Type) bool {
	if t == durationType {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Convert parses text into a value of type t. The returned reflect.Value is
// addressable-assignable to a destination of type t. Errors come straight
// from strconv / time and carry the offending literal.
func Convert(t reflect.Type, text string) (reflect.Value, error) {
	v := reflect.New(t).Elem()

	if t == durationType {
		d, err := time.ParseDuration(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(int64(d))
		return v, nil
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)
	default:
		return reflect.Value{}, &UnsupportedKindError{Kind: t.Kind()}
	}

	return v, nil
}

// UnsupportedKindError reports a reflect.Kind Convert cannot handle.
// Callers are expected to gate on Supported first; this exists so a missed
// gate fails loudly instead of silently.
type UnsupportedKindError struct {
	Kind reflect.Kind
}

func (e *UnsupportedKindError) Error() string {
	return "unsupported destination kind: " + e.Kind.String()
}
