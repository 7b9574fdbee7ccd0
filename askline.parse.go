package askline

import (
	"encoding"
	"reflect"

	"github.com/itsatony/go-askline/internal"
)

// ParseFunc is the parse capability for a concrete type: it converts one
// trimmed line of input text into a T or reports why it cannot.
type ParseFunc[T any] func(text string) (T, error)

// WithParseFunc overrides parser resolution for one request with a custom
// parse capability. The destination type must match T exactly.
func WithParseFunc[T any](parse ParseFunc[T]) AskOption {
	typeName := reflect.TypeOf((*T)(nil)).Elem().String()
	return func(c *askConfig) {
		c.parser = func(dst any) (func(string) error, string, bool) {
			p, ok := dst.(*T)
			if !ok {
				return nil, typeName, false
			}
			return func(text string) error {
				v, err := parse(text)
				if err != nil {
					return err
				}
				*p = v
				return nil
			}, typeName, true
		}
	}
}

// setterFor resolves the parse capability for a request, honoring a custom
// parser before the default resolution.
func (c *askConfig) setterFor(dst any) (func(text string) error, string, error) {
	if c.parser != nil {
		set, typeName, ok := c.parser(dst)
		if !ok {
			return nil, "", NewParserMismatchError(typeName)
		}
		return set, typeName, nil
	}
	return setterFor(dst)
}

// setterFor resolves the default parse capability for a destination pointer:
//  1. encoding.TextUnmarshaler implemented by the pointer (custom domain
//     types, time.Time, net.IP, ...),
//  2. builtin kinds: string, bool, int/uint widths, float32/64, and
//     time.Duration - including named types over those kinds.
//
// Anything else is a configuration error, not a retryable one.
func setterFor(dst any) (func(text string) error, string, error) {
	if dst == nil {
		return nil, "", NewNilDestinationError()
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, "", NewNilDestinationError()
	}

	elem := rv.Elem()
	typeName := elem.Type().String()

	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return func(text string) error {
			return u.UnmarshalText([]byte(text))
		}, typeName, nil
	}

	if internal.Supported(elem.Type()) {
		return func(text string) error {
			v, err := internal.Convert(elem.Type(), text)
			if err != nil {
				return err
			}
			elem.Set(v)
			return nil
		}, typeName, nil
	}

	return nil, "", NewUnsupportedTypeError(typeName)
}

// deref returns the value behind a destination pointer and its type name.
func deref(dst any) (any, string) {
	rv := reflect.ValueOf(dst).Elem()
	return rv.Interface(), rv.Type().String()
}
