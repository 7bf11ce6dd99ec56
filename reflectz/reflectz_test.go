package reflectz

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/dlshle/functional/errors"
)

type person struct {
	Name   string
	Age    int
	secret string
	Greet  func(string) string
}

func (p person) Hello(greeting string) string {
	return greeting + ", " + p.Name
}

func (p *person) Birthday() int {
	p.Age++
	return p.Age
}

func (p person) Split(sep string) (string, string, error) {
	parts := strings.SplitN(p.Name, sep, 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("no %q in %s", sep, p.Name)
	}
	return parts[0], parts[1], nil
}

func TestProperty(t *testing.T) {
	t.Run("should read exported struct fields through pointers", func(t *testing.T) {
		p := &person{Name: "ada", Age: 36}
		name, present, err := PropertyAs[string](&p, "Name")
		if err != nil || !present || name != "ada" {
			t.Fatalf("got %q %v %v", name, present, err)
		}
	})
	t.Run("should reject missing and unexported fields", func(t *testing.T) {
		for _, field := range []string{"Missing", "secret"} {
			_, _, err := Property(person{}, field)
			if !errors.Is(err, errors.ErrContractViolation) {
				t.Fatalf("expected contract violation for %s, got %v", field, err)
			}
		}
	})
	t.Run("should treat a missing map key as absent", func(t *testing.T) {
		v, present, err := PropertyAs[int](map[string]int{"a": 1}, "b")
		if err != nil || present || v != 0 {
			t.Fatalf("got %d %v %v", v, present, err)
		}
	})
	t.Run("should report type mismatches", func(t *testing.T) {
		_, _, err := PropertyAs[string](map[string]any{"a": 1}, "a")
		if !errors.Is(err, errors.ErrContractViolation) {
			t.Fatalf("expected contract violation, got %v", err)
		}
	})
	t.Run("should fail on nil and scalar values", func(t *testing.T) {
		if _, _, err := Property(nil, "a"); err == nil {
			t.Fatalf("nil should fail")
		}
		if _, _, err := Property(42, "a"); err == nil {
			t.Fatalf("int should fail")
		}
	})
}

func TestCall(t *testing.T) {
	t.Run("should call value and pointer receiver methods", func(t *testing.T) {
		res, err := CallMethod(person{Name: "ada"}, "Hello", "hi")
		if err != nil || res != "hi, ada" {
			t.Fatalf("got %v %v", res, err)
		}
		p := &person{Age: 1}
		res, err = CallMethod(p, "Birthday")
		if err != nil || res != 2 || p.Age != 2 {
			t.Fatalf("got %v %v (age %d)", res, err, p.Age)
		}
	})
	t.Run("should fall back to function valued fields", func(t *testing.T) {
		p := person{Greet: func(s string) string { return "<" + s + ">" }}
		res, err := CallMethod(p, "Greet", "x")
		if err != nil || res != "<x>" {
			t.Fatalf("got %v %v", res, err)
		}
	})
	t.Run("should fold multiple results and errors", func(t *testing.T) {
		res, err := CallMethod(person{Name: "a b"}, "Split", " ")
		if err != nil || !reflect.DeepEqual(res, []any{"a", "b"}) {
			t.Fatalf("got %v %v", res, err)
		}
		_, err = CallMethod(person{Name: "ab"}, "Split", " ")
		if err == nil {
			t.Fatalf("expected the method error")
		}
	})
	t.Run("should check arity and argument types", func(t *testing.T) {
		if _, err := CallMethod(person{}, "Hello"); !errors.Is(err, errors.ErrContractViolation) {
			t.Fatalf("expected arity violation, got %v", err)
		}
		if _, err := CallMethod(person{}, "Hello", 1); !errors.Is(err, errors.ErrContractViolation) {
			t.Fatalf("expected type violation, got %v", err)
		}
	})
	t.Run("should call functions with the receiver first", func(t *testing.T) {
		res, err := CallFunc(func(n int, rest ...int) int {
			for _, r := range rest {
				n += r
			}
			return n
		}, 1, 2, 3)
		if err != nil || res != 6 {
			t.Fatalf("got %v %v", res, err)
		}
		if _, err := CallFunc("nope", 1); !errors.Is(err, errors.ErrContractViolation) {
			t.Fatalf("expected contract violation, got %v", err)
		}
	})
}

func TestValues(t *testing.T) {
	t.Run("truthy", func(t *testing.T) {
		for _, v := range []any{nil, 0, "", false, (*int)(nil), []int(nil)} {
			if Truthy(v) {
				t.Fatalf("%#v should be falsy", v)
			}
		}
		for _, v := range []any{1, "a", true, []int{}, map[string]int{}} {
			if !Truthy(v) {
				t.Fatalf("%#v should be truthy", v)
			}
		}
	})
	t.Run("compare", func(t *testing.T) {
		c, err := Compare(reflect.ValueOf(int8(3)), reflect.ValueOf(int64(2)))
		if err != nil || c != 1 {
			t.Fatalf("got %d %v", c, err)
		}
		c, err = Compare(reflect.ValueOf("a"), reflect.ValueOf("b"))
		if err != nil || c != -1 {
			t.Fatalf("got %d %v", c, err)
		}
		if _, err = Compare(reflect.ValueOf("a"), reflect.ValueOf(1)); err == nil {
			t.Fatalf("mixed kinds should not compare")
		}
	})
	t.Run("is sequence", func(t *testing.T) {
		var boxed any = []int{1}
		if !IsSequence(reflect.ValueOf(&boxed).Elem()) || !IsSequence(reflect.ValueOf([2]int{})) {
			t.Fatalf("slices and arrays are sequences")
		}
		if IsSequence(reflect.ValueOf(map[string]int{})) || IsSequence(reflect.ValueOf("abc")) {
			t.Fatalf("maps and strings are not sequences")
		}
	})
}
