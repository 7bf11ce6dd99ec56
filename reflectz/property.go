package reflectz

import (
	"reflect"

	"github.com/dlshle/functional/errors"
)

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// Property resolves o[name]. Structs are looked up by exported field name and
// maps by string key, both through any number of pointers. A missing map key
// is not an error: present is false and value is the element zero value.
func Property(o any, name string) (value reflect.Value, present bool, err error) {
	v := indirect(reflect.ValueOf(o))
	if !v.IsValid() {
		return reflect.Value{}, false, errors.ContractViolation("can not read property %q of nil", name)
	}
	switch v.Kind() {
	case reflect.Struct:
		field := v.FieldByName(name)
		if !field.IsValid() {
			return reflect.Value{}, false, errors.ContractViolation("type %s has no field %q", v.Type(), name)
		}
		if !field.CanInterface() {
			return reflect.Value{}, false, errors.ContractViolation("field %q of %s is not exported", name, v.Type())
		}
		return field, true, nil
	case reflect.Map:
		keyType := v.Type().Key()
		if keyType.Kind() != reflect.String {
			return reflect.Value{}, false, errors.ContractViolation("map of type %s is not keyed by strings", v.Type())
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !mv.IsValid() {
			return reflect.Zero(v.Type().Elem()), false, nil
		}
		return mv, true, nil
	}
	return reflect.Value{}, false, errors.ContractViolation("can not read property %q of %s", name, v.Type())
}

// PropertyAs is Property with the value asserted to V. An absent map key
// yields the zero V.
func PropertyAs[V any](o any, name string) (res V, present bool, err error) {
	value, present, err := Property(o, name)
	if err != nil {
		return
	}
	if !present {
		return
	}
	if value.Kind() == reflect.Interface && value.IsNil() {
		return
	}
	converted, ok := value.Interface().(V)
	if !ok {
		err = errors.ContractViolation("property %q is %s, not %s", name, value.Type(), reflect.TypeOf(&res).Elem())
		return
	}
	return converted, true, nil
}
