package reflectz

import (
	"cmp"
	"reflect"

	"github.com/dlshle/functional/errors"
)

// Truthy reports whether v is neither nil nor the zero value of its type.
// Empty but allocated slices and maps are truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	return !reflect.ValueOf(v).IsZero()
}

// IsSequence reports whether v holds a slice or an array. Maps are not
// sequences.
func IsSequence(v reflect.Value) bool {
	v = indirectInterface(v)
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

func indirectInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

// Compare orders two reflected values of the same kind family: signed
// integers, unsigned integers, floats, strings or bools (false < true).
func Compare(a, b reflect.Value) (int, error) {
	a, b = indirectInterface(a), indirectInterface(b)
	if !a.IsValid() || !b.IsValid() {
		return 0, errors.ContractViolation("can not compare nil values")
	}
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int()), nil
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint()), nil
	case isFloat(a) && isFloat(b):
		return cmp.Compare(a.Float(), b.Float()), nil
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return cmp.Compare(a.String(), b.String()), nil
	case a.Kind() == reflect.Bool && b.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool())), nil
	}
	return 0, errors.ContractViolation("can not order %s against %s", a.Type(), b.Type())
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// IsFunc reports whether v holds a non-nil function.
func IsFunc(v any) bool {
	fv := reflect.ValueOf(v)
	return fv.Kind() == reflect.Func && !fv.IsNil()
}
