package rowset

import (
	"math"
	"strconv"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind. The zero Value is invalid,
	// which keeps "no value" distinguishable from "null value".
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
)

// Value is a small typed scalar used for row fields and duplicate
// comparison.
//
// The representation is designed to make comparison fast and predictable:
// no reflection and no fmt-based stringification. Strings are interned so
// repetitive listing values share storage.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string]
	B    bool
}

// Null creates a null Value. A null is a present value that compares equal
// to other nulls; it is not the same as an absent field.
func Null() Value {
	return Value{Kind: KindNull}
}

// Int creates an integer Value.
func Int(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// Float creates a float Value.
func Float(f float64) Value {
	return Value{Kind: KindFloat, F64: f}
}

// String creates a string Value.
func String(s string) Value {
	return Value{Kind: KindString, s: unique.Make(s)}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, B: b}
}

// IsValid reports whether the Value carries any kind, including null.
func (v Value) IsValid() bool {
	return v.Kind != KindInvalid
}

// StringValue returns the string value if Kind is KindString, otherwise
// the empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// Key returns a stable string representation for use as a set or map key.
// Two Values compare as duplicates exactly when their keys are equal.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	default:
		return "invalid"
	}
}
