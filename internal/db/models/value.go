// Package models contains database model definitions.
package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ValueType is the declared type tag of a setting value.
type ValueType string

const (
	// TypeInt marks an integer setting value.
	TypeInt ValueType = "int"
	// TypeFloat marks a floating point setting value.
	TypeFloat ValueType = "float"
	// TypeBool marks a boolean setting value.
	TypeBool ValueType = "bool"
	// TypeString marks a plain string setting value.
	TypeString ValueType = "string"
	// TypeJSON marks a structured (JSON) setting value.
	TypeJSON ValueType = "json"
)

// Normalize maps unrecognized type tags to string.
func (t ValueType) Normalize() ValueType {
	switch t {
	case TypeInt, TypeFloat, TypeBool, TypeString, TypeJSON:
		return t
	default:
		return TypeString
	}
}

// ErrMalformedValue is returned when a stored raw value cannot be parsed
// as its declared type.
var ErrMalformedValue = errors.New("malformed setting value")

// truthy and falsy are the accepted textual spellings of boolean values.
var (
	truthy = map[string]bool{"true": true, "1": true, "yes": true, "on": true}
	falsy  = map[string]bool{"false": true, "0": true, "no": true, "off": true}
)

// Value is a tagged variant holding one setting value: a type tag plus the
// payload for exactly that type. Values are only built through the
// constructors, ParseValue or CoerceValue, so a Value in hand is always
// well-typed.
type Value struct {
	kind ValueType
	i    int64
	f    float64
	b    bool
	s    string
	j    any
}

// IntValue builds an integer Value.
func IntValue(v int64) Value { return Value{kind: TypeInt, i: v} }

// FloatValue builds a float Value.
func FloatValue(v float64) Value { return Value{kind: TypeFloat, f: v} }

// BoolValue builds a boolean Value.
func BoolValue(v bool) Value { return Value{kind: TypeBool, b: v} }

// StringValue builds a string Value.
func StringValue(v string) Value { return Value{kind: TypeString, s: v} }

// Type returns the type tag.
func (v Value) Type() ValueType { return v.kind }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// Interface returns the payload as an untyped value for callers that do not
// care about the tag (JSON responses, audit payloads).
func (v Value) Interface() any {
	switch v.kind {
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeBool:
		return v.b
	case TypeJSON:
		return v.j
	default:
		return v.s
	}
}

// Encode returns the storage text representation.
func (v Value) Encode() string {
	switch v.kind {
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.b)
	default:
		// string payload, or pre-marshaled JSON text
		return v.s
	}
}

// String renders the value for humans (audit descriptions).
func (v Value) String() string { return v.Encode() }

// ParseValue parses a stored raw text into a Value of the given type.
// Unknown type tags are parsed as strings.
func ParseValue(t ValueType, raw string) (Value, error) {
	switch t.Normalize() {
	case TypeInt:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Value{}, errors.Wrapf(ErrMalformedValue, "%q is not an int", raw)
		}

		return IntValue(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, errors.Wrapf(ErrMalformedValue, "%q is not a float", raw)
		}

		return FloatValue(f), nil
	case TypeBool:
		return BoolValue(truthy[strings.ToLower(strings.TrimSpace(raw))]), nil
	case TypeJSON:
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			return Value{}, errors.Wrapf(ErrMalformedValue, "%q is not valid JSON", raw)
		}

		return Value{kind: TypeJSON, s: raw, j: decoded}, nil
	default:
		return StringValue(raw), nil
	}
}

// CoerceValue converts an arbitrary candidate (decoded request body, Go
// caller input) into a Value of the given type. It fails instead of silently
// miscoercing: a candidate is either representable as the declared type or
// rejected.
func CoerceValue(t ValueType, candidate any) (Value, error) { //nolint:cyclop
	switch t.Normalize() {
	case TypeInt:
		return coerceInt(candidate)
	case TypeFloat:
		return coerceFloat(candidate)
	case TypeBool:
		return coerceBool(candidate)
	case TypeJSON:
		raw, err := json.Marshal(candidate)
		if err != nil {
			return Value{}, errors.Wrap(ErrMalformedValue, "candidate is not JSON serializable")
		}

		return Value{kind: TypeJSON, s: string(raw), j: candidate}, nil
	default:
		if s, ok := candidate.(string); ok {
			return StringValue(s), nil
		}

		return Value{}, errors.Wrapf(ErrMalformedValue, "%T is not a string", candidate)
	}
}

func coerceInt(candidate any) (Value, error) {
	switch c := candidate.(type) {
	case int:
		return IntValue(int64(c)), nil
	case int32:
		return IntValue(int64(c)), nil
	case int64:
		return IntValue(c), nil
	case float64:
		// JSON numbers decode as float64; only whole numbers pass.
		if c != float64(int64(c)) {
			return Value{}, errors.Wrapf(ErrMalformedValue, "%v is not a whole number", c)
		}

		return IntValue(int64(c)), nil
	case string:
		return ParseValue(TypeInt, c)
	default:
		return Value{}, errors.Wrapf(ErrMalformedValue, "%T is not an int", candidate)
	}
}

func coerceFloat(candidate any) (Value, error) {
	switch c := candidate.(type) {
	case int:
		return FloatValue(float64(c)), nil
	case int64:
		return FloatValue(float64(c)), nil
	case float32:
		return FloatValue(float64(c)), nil
	case float64:
		return FloatValue(c), nil
	case string:
		return ParseValue(TypeFloat, c)
	default:
		return Value{}, errors.Wrapf(ErrMalformedValue, "%T is not a float", candidate)
	}
}

func coerceBool(candidate any) (Value, error) {
	switch c := candidate.(type) {
	case bool:
		return BoolValue(c), nil
	case string:
		lower := strings.ToLower(strings.TrimSpace(c))
		if truthy[lower] {
			return BoolValue(true), nil
		}

		if falsy[lower] {
			return BoolValue(false), nil
		}

		return Value{}, errors.Wrapf(ErrMalformedValue, "%q is not a bool", c)
	case float64:
		if c == 0 || c == 1 {
			return BoolValue(c == 1), nil
		}

		return Value{}, errors.Wrapf(ErrMalformedValue, "%v is not a bool", c)
	default:
		return Value{}, errors.Wrapf(ErrMalformedValue, "%T is not a bool", candidate)
	}
}
