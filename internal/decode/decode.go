// Package decode maps JSON payloads onto caller supplied result shapes.
//
// Payloads are parsed into a generic tree first and then mapped field by
// field onto the target type, so a single field that fails to convert does not
// abort the whole decode. Whether those failures are reported or skipped is
// chosen per call with a Mode.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
)

// Mode selects how per-field conversion failures are handled.
type Mode int

const (
	// Lenient skips fields that fail to convert and keeps the rest of the shape.
	Lenient Mode = iota
	// Strict fails the decode on the first batch of field conversion errors.
	Strict
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Static errors for err113 compliance.
var (
	ErrNull          = errors.New("payload is empty or null")
	ErrSyntax        = errors.New("payload is not valid JSON")
	ErrShapeMismatch = errors.New("payload does not match the result shape")
)

// FieldErrors is returned in Strict mode when one or more fields failed to convert.
type FieldErrors struct {
	Errs []error
}

// Error implements the error interface.
func (e *FieldErrors) Error() string {
	if len(e.Errs) == 1 {
		return "field conversion failed: " + e.Errs[0].Error()
	}

	return fmt.Sprintf("%d field conversions failed: %v", len(e.Errs), errors.Join(e.Errs...))
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e *FieldErrors) Unwrap() []error {
	return e.Errs
}

// Into decodes data into a value of type T.
//
// ErrNull is returned for an empty body or a JSON null, ErrSyntax for invalid
// JSON and ErrShapeMismatch when the top level kind cannot hold T (an array
// where an object is expected, or the reverse). These are total failures and
// the returned value is the zero T.
//
// Field level failures never abort the decode. In Lenient mode they are
// returned as skipped with a nil error; in Strict mode they are returned as a
// *FieldErrors error. The partially populated value is returned either way.
func Into[T any](data []byte, mode Mode) (T, []error, error) {
	var result T

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return result, nil, ErrNull
	}

	tree, err := parseTree(trimmed)
	if err != nil {
		return result, nil, err
	}

	if tree == nil {
		return result, nil, ErrNull
	}

	err = checkShape(reflect.TypeOf(&result).Elem(), tree)
	if err != nil {
		return result, nil, err
	}

	skipped := mapTree(tree, &result)
	if len(skipped) == 0 {
		return result, nil, nil
	}

	if mode == Strict {
		return result, skipped, &FieldErrors{Errs: skipped}
	}

	return result, skipped, nil
}

// parseTree parses data keeping numbers as json.Number, so 64-bit ids such
// as Steam IDs survive without float rounding.
func parseTree(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var tree interface{}

	err := decoder.Decode(&tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	var trailing interface{}

	err = decoder.Decode(&trailing)
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top level value", ErrSyntax)
	}

	return tree, nil
}

// numberHook lets a fractional number such as 24.0 or 12.5 still fill an
// integer field by truncation.
func numberHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	number, ok := data.(json.Number)
	if !ok {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, err := number.Int64(); err == nil {
			return data, nil
		}

		if f, err := number.Float64(); err == nil {
			return int64(f), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if _, err := number.Int64(); err == nil {
			return data, nil
		}

		if f, err := number.Float64(); err == nil && f >= 0 {
			return uint64(f), nil
		}
	default:
	}

	return data, nil
}

// mapTree copies tree onto target and returns the per-field failures.
func mapTree(tree interface{}, target interface{}) []error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		DecodeHook:       numberHook,
	})
	if err != nil {
		return []error{fmt.Errorf("building decoder: %w", err)}
	}

	err = decoder.Decode(tree)
	if err != nil {
		return splitErrors(err)
	}

	return nil
}

// splitErrors flattens the aggregated error mapstructure returns.
func splitErrors(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs := joined.Unwrap()
		if len(errs) > 0 {
			return errs
		}
	}

	var wrapped interface{ WrappedErrors() []error }
	if errors.As(err, &wrapped) {
		errs := wrapped.WrappedErrors()
		if len(errs) > 0 {
			return errs
		}
	}

	return []error{err}
}

// checkShape rejects payloads whose top level kind can never fit the target.
func checkShape(target reflect.Type, tree interface{}) error {
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}

	switch target.Kind() {
	case reflect.Struct, reflect.Map:
		if _, ok := tree.(map[string]interface{}); !ok {
			return fmt.Errorf("%w: expected a JSON object for %s, got %s", ErrShapeMismatch, target, kindOf(tree))
		}
	case reflect.Slice, reflect.Array:
		if _, ok := tree.([]interface{}); !ok {
			return fmt.Errorf("%w: expected a JSON array for %s, got %s", ErrShapeMismatch, target, kindOf(tree))
		}
	case reflect.Interface:
	default:
		switch tree.(type) {
		case map[string]interface{}, []interface{}:
			return fmt.Errorf("%w: expected a JSON scalar for %s, got %s", ErrShapeMismatch, target, kindOf(tree))
		}
	}

	return nil
}

func kindOf(tree interface{}) string {
	switch tree.(type) {
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", tree)
	}
}
