package jsonmap

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// Struct returns a codec that maps an object node onto the struct type T
// using its `json` field tags. Keys T does not declare are ignored.
//
// Scalar fields go through the same codecs as ReadItem: int kinds through
// Int64, uint kinds through Uint64, float kinds through Float64, plus String
// and Bool, so 4.12 never lands in an int and 12 never becomes "12". The
// first such failure is returned unchanged.
//
// A field is required unless it is a pointer, slice, map or interface, or
// its tag carries omitempty. An absent required key fails with
// *MissingFieldError and a null one with the field's type error. Nested
// struct fields are checked the same way. Other decode failures are
// reported as ExpectedError("Object", ...) with the mapstructure error as
// Cause.
//
// Encoding goes through JSON marshalling; values that cannot be marshalled
// encode as the null node.
func Struct[T any]() Codec[T] { return structCodec[T]{} }

type structCodec[T any] struct{}

func (structCodec[T]) DecodeJSON(n Node) (T, error) {
	return AsObject(n, func(m Object) (T, error) {
		var out T
		if err := checkRequired(reflect.TypeOf(out), m); err != nil {
			return out, err
		}
		var scalarErr error
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(numberTextHook, strictScalarHook(&scalarErr)),
			Result:     &out,
			TagName:    "json",
		})
		if err != nil {
			return out, err
		}
		if err := dec.Decode(m); err != nil {
			var zero T
			if scalarErr != nil {
				return zero, scalarErr
			}
			return zero, &ExpectedError{Expected: TypeObject, Actual: Render(n), Cause: err}
		}
		return out, nil
	})
}

func (structCodec[T]) EncodeJSON(v T) Node {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil
	}
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	return out
}

// numberTextHook normalizes foreign number types to json.Number, which
// mapstructure knows how to place into numeric fields.
func numberTextHook(from, to reflect.Type, data any) (any, error) {
	if _, ok := data.(json.Number); ok {
		return data, nil
	}
	if nt, ok := data.(numberText); ok {
		return json.Number(nt.String()), nil
	}
	return data, nil
}

// strictScalarHook decodes scalar destinations with the package codecs and
// records the first failure in *first.
func strictScalarHook(first *error) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		v, err := decodeScalar(to, data)
		if err != nil && *first == nil {
			*first = err
		}
		return v, err
	}
}

func decodeScalar(to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := Int64().DecodeJSON(data)
		if err != nil {
			return nil, err
		}
		if reflect.Zero(to).OverflowInt(i) {
			return nil, expected(TypeInt64, data)
		}
		return i, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := Uint64().DecodeJSON(data)
		if err != nil {
			return nil, err
		}
		if reflect.Zero(to).OverflowUint(u) {
			return nil, expected(TypeUint64, data)
		}
		return u, nil
	case reflect.Float32, reflect.Float64:
		f, err := Float64().DecodeJSON(data)
		if err != nil {
			return nil, err
		}
		return f, nil
	case reflect.String:
		s, err := String().DecodeJSON(data)
		if err != nil {
			return nil, err
		}
		return s, nil
	case reflect.Bool:
		b, err := Bool().DecodeJSON(data)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return data, nil
	}
}

// checkRequired walks the declared fields of t against m. mapstructure skips
// nil inputs before running hooks, so absent and null keys are settled here.
func checkRequired(t reflect.Type, m Object) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		v, ok := lookupField(m, name)
		if optionalField(f.Type, opts) {
			continue
		}
		if !ok {
			return &MissingFieldError{Key: name}
		}
		if v == nil {
			if _, err := decodeScalar(f.Type, nil); err != nil {
				return err
			}
			if f.Type.Kind() == reflect.Struct {
				return expected(TypeObject, nil)
			}
			continue
		}
		if f.Type.Kind() == reflect.Struct {
			if nested, ok := v.(map[string]any); ok {
				if err := checkRequired(f.Type, nested); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func optionalField(t reflect.Type, tagOpts string) bool {
	for _, o := range strings.Split(tagOpts, ",") {
		if o == "omitempty" {
			return true
		}
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// lookupField matches keys the way mapstructure does: exact first, then
// case-insensitively.
func lookupField(m Object, name string) (any, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
