package reflectz

import (
	"reflect"

	"github.com/dlshle/functional/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// CallFunc calls fn with receiver as its first argument followed by args.
func CallFunc(fn any, receiver any, args ...any) (any, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, errors.ContractViolation("%T is not a function", fn)
	}
	return call(fv, append([]any{receiver}, args...))
}

// CallMethod looks up the method called name on o, trying the pointer
// receiver set when o is not addressable, then falls back to a function
// valued property of the same name.
func CallMethod(o any, name string, args ...any) (any, error) {
	v := reflect.ValueOf(o)
	if !v.IsValid() {
		return nil, errors.ContractViolation("can not call method %q on nil", name)
	}
	method := v.MethodByName(name)
	if !method.IsValid() && v.Kind() != reflect.Ptr {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		method = ptr.MethodByName(name)
	}
	if !method.IsValid() {
		prop, present, err := Property(o, name)
		if err != nil || !present || prop.Kind() != reflect.Func || prop.IsNil() {
			return nil, errors.ContractViolation("%T has no method %q", o, name)
		}
		method = prop
	}
	return call(method, args)
}

func call(fv reflect.Value, args []any) (any, error) {
	in, err := prepareArgs(fv.Type(), args)
	if err != nil {
		return nil, err
	}
	return results(fv.Call(in))
}

func prepareArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, errors.ContractViolation("%s needs at least %d arguments, got %d", ft, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, errors.ContractViolation("%s needs %d arguments, got %d", ft, numIn, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var paramType reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			paramType = ft.In(numIn - 1).Elem()
		} else {
			paramType = ft.In(i)
		}
		if arg == nil {
			in[i] = reflect.Zero(paramType)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(paramType) {
			return nil, errors.ContractViolation("argument %d of %s must be %s, got %s", i, ft, paramType, av.Type())
		}
		in[i] = av
	}
	return in, nil
}

// results folds call outputs: a trailing non-nil error is returned as the
// error, no value yields nil, one value yields itself and more yield []any.
func results(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	values := make([]any, len(out))
	for i := range out {
		values[i] = out[i].Interface()
	}
	return values, err
}
