package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"biteutil/internal/components/telemetry"
)

var (
	// ErrParsing is returned when text handed to Parse is not valid JSON.
	ErrParsing = errors.New("failed to parse json")
	// ErrDumping is returned when a value handed to Dump cannot be encoded.
	ErrDumping = errors.New("failed to dump json")
	// ErrEmpty is returned by Decode when there is no text to decode.
	ErrEmpty = errors.New("empty json text")
)

const report_parse = "json.parse"

// Codec wraps encoding/json with the calling conventions the web handlers
// expect: falsy input short-circuits to the empty string, and parse
// failures are reported before they are returned.
type Codec struct {
	tel telemetry.API
}

func NewCodec(tel telemetry.API) Codec {
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}
	return Codec{tel: tel}
}

// Default reports through slog.Default().
var Default = NewCodec(telemetry.SlogAPI{})

// Parse decodes text into a generic value. Empty text yields the empty
// string and no error.
func (c Codec) Parse(text string) (any, error) {
	if text == "" {
		return "", nil
	}
	var out any
	err := json.Unmarshal([]byte(text), &out)
	if err != nil {
		c.tel.ReportBroken(report_parse, slog.String("text", text), err)
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return out, nil
}

// Decode is Parse for a typed destination. Empty text leaves out untouched
// and returns ErrEmpty so callers can tell it apart from a decoded value.
func (c Codec) Decode(text string, out any) error {
	if text == "" {
		return ErrEmpty
	}
	err := json.Unmarshal([]byte(text), out)
	if err != nil {
		c.tel.ReportBroken(report_parse, slog.String("text", text), err)
		return fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return nil
}

// Dump encodes v as compact JSON. Falsy values (see Falsy) yield the empty
// string and no error.
func (c Codec) Dump(v any) (string, error) {
	if Falsy(v) {
		return "", nil
	}
	var out strings.Builder
	enc := json.NewEncoder(&out)
	// <, > and & are written as is
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDumping, err)
	}
	return strings.TrimSuffix(out.String(), "\n"), nil
}

func ParseJSON(text string) (any, error) {
	return Default.Parse(text)
}

func DumpJSON(v any) (string, error) {
	return Default.Dump(v)
}

// Falsy reports whether v counts as empty: nil, false, numeric zero, the
// empty string, and empty slices, arrays and maps. Pointers and interfaces
// are falsy only when nil, structs never are.
func Falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
