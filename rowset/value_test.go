package rowset

import "testing"

func TestValueKey(t *testing.T) {
	tests := []struct {
		name string
		a    Value
		b    Value
		same bool
	}{
		{name: "equal strings", a: String("A"), b: String("A"), same: true},
		{name: "different strings", a: String("A"), b: String("B"), same: false},
		{name: "equal ints", a: Int(42), b: Int(42), same: true},
		{name: "int vs string of same digits", a: Int(5), b: String("5"), same: false},
		{name: "int vs float of same magnitude", a: Int(1), b: Float(1.0), same: false},
		{name: "nulls compare equal", a: Null(), b: Null(), same: true},
		{name: "null vs empty string", a: Null(), b: String(""), same: false},
		{name: "bools", a: Bool(true), b: Bool(true), same: true},
		{name: "bool vs int", a: Bool(true), b: Int(1), same: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Key() == tt.b.Key(); got != tt.same {
				t.Errorf("Key() equality = %v, want %v (%q vs %q)", got, tt.same, tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if v, ok := String("x").AsString(); !ok || v != "x" {
		t.Errorf("AsString() = %q, %v", v, ok)
	}
	if v, ok := Int(7).AsInt64(); !ok || v != 7 {
		t.Errorf("AsInt64() = %d, %v", v, ok)
	}
	if v, ok := Float(2.5).AsFloat64(); !ok || v != 2.5 {
		t.Errorf("AsFloat64() = %v, %v", v, ok)
	}
	if v, ok := Bool(true).AsBool(); !ok || !v {
		t.Errorf("AsBool() = %v, %v", v, ok)
	}
	if _, ok := String("x").AsInt64(); ok {
		t.Error("AsInt64() on string should not be ok")
	}

	var zero Value
	if zero.IsValid() {
		t.Error("zero Value must be invalid")
	}
	if !Null().IsValid() {
		t.Error("Null() must be valid")
	}
}
