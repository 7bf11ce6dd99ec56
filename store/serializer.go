package store

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/dlshle/functional/errors"
)

// SerializeHandler turns memo keys and results into badger bytes and back.
type SerializeHandler[K comparable, V any] interface {
	KeySerializer(K) ([]byte, error)
	KeyDeserializer([]byte) (K, error)
	ValueSerializer(V) ([]byte, error)
	ValueDeserializer([]byte) (V, error)
}

// JSONSerializeHandler encodes both keys and values as JSON. Only key types
// whose JSON form tells every key apart are accepted, see CheckJSONKey.
type JSONSerializeHandler[K comparable, V any] struct{}

func NewJSONSerializeHandler[K comparable, V any]() SerializeHandler[K, V] {
	return JSONSerializeHandler[K, V]{}
}

func (h JSONSerializeHandler[K, V]) KeySerializer(k K) ([]byte, error) {
	data, err := json.Marshal(k)
	if err != nil {
		return nil, errors.Errorf("serialize key %v: %w", k, err)
	}
	return data, nil
}

func (h JSONSerializeHandler[K, V]) KeyDeserializer(data []byte) (k K, err error) {
	if err = json.Unmarshal(data, &k); err != nil {
		err = errors.Errorf("deserialize key %s: %w", string(data), err)
	}
	return
}

func (h JSONSerializeHandler[K, V]) ValueSerializer(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Errorf("serialize value: %w", err)
	}
	return data, nil
}

func (h JSONSerializeHandler[K, V]) ValueDeserializer(data []byte) (v V, err error) {
	if err = json.Unmarshal(data, &v); err != nil {
		err = errors.Errorf("deserialize value: %w", err)
	}
	return
}

// CheckJSONKey rejects key types that JSON can not encode without merging
// distinct keys: pointers, interfaces, channels, unexported or skipped
// struct fields. Booleans, numbers, strings and arrays or structs built from
// them pass.
func CheckJSONKey[K comparable]() error {
	keyType := reflect.TypeOf((*K)(nil)).Elem()
	if reason := jsonKeyProblem(keyType); reason != "" {
		return errors.ContractViolation("key type %s can not be a JSON key: %s", keyType, reason)
	}
	return nil
}

func jsonKeyProblem(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ""
	case reflect.Array:
		return jsonKeyProblem(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				return "field " + field.Name + " is not exported"
			}
			if name, _, _ := strings.Cut(field.Tag.Get("json"), ","); name == "-" {
				return "field " + field.Name + " is skipped"
			}
			if reason := jsonKeyProblem(field.Type); reason != "" {
				return reason
			}
		}
		return ""
	}
	return t.Kind().String() + " values lose their identity"
}

type StringSerializeHandler struct{}

func NewStringSerializeHandler() SerializeHandler[string, string] {
	return StringSerializeHandler{}
}

func (h StringSerializeHandler) KeySerializer(k string) ([]byte, error) {
	return []byte(k), nil
}

func (h StringSerializeHandler) KeyDeserializer(k []byte) (string, error) {
	return string(k), nil
}

func (h StringSerializeHandler) ValueSerializer(v string) ([]byte, error) {
	return []byte(v), nil
}

func (h StringSerializeHandler) ValueDeserializer(v []byte) (string, error) {
	return string(v), nil
}
