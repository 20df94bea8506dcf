package jsonmap

// WithKey looks up key in m and runs action on the node found there. An
// absent key fails with *MissingFieldError; otherwise the result of action
// is returned unchanged.
func WithKey[R any](m Object, key string, action func(Node) (R, error)) (R, error) {
	n, ok := m[key]
	if !ok {
		var zero R
		return zero, &MissingFieldError{Key: key}
	}
	return action(n)
}

// WithOptionalKey is like WithKey, but a key that is absent or null yields
// (nil, nil). A non-null node of the wrong shape is still an error.
func WithOptionalKey[R any](m Object, key string, action func(Node) (R, error)) (*R, error) {
	n, ok := m[key]
	if !ok || n == nil {
		return nil, nil
	}
	v, err := action(n)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadItem decodes the value stored under key with d.
func ReadItem[T any](m Object, key string, d Decoder[T]) (T, error) {
	return WithKey(m, key, d.DecodeJSON)
}

// ReadOptionalItem decodes the value stored under key with d, treating an
// absent or null entry as no value.
func ReadOptionalItem[T any](m Object, key string, d Decoder[T]) (*T, error) {
	return WithOptionalKey(m, key, d.DecodeJSON)
}

// WriteItem encodes v with e and stores it under key, replacing any
// previous entry. m must not be nil.
func WriteItem[T any](m Object, key string, e Encoder[T], v T) {
	m[key] = e.EncodeJSON(v)
}

// CreateObject allocates an empty object, hands it to build and returns it.
//
//	obj := jsonmap.CreateObject(func(m jsonmap.Object) {
//		jsonmap.WriteItem(m, "id", jsonmap.Int64(), 13)
//	})
func CreateObject(build func(Object)) Object {
	m := make(Object)
	build(m)
	return m
}

// BuildObject is CreateObject for builders that can fail. The builder's
// error is returned as-is and the partially built object is discarded.
func BuildObject(build func(Object) error) (Object, error) {
	m := make(Object)
	if err := build(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AsObject runs build on the map held by n, or fails with
// ExpectedError("Object", ...) when n is not an object.
func AsObject[R any](n Node, build func(Object) (R, error)) (R, error) {
	m, ok := n.(map[string]any)
	if !ok {
		var zero R
		return zero, expected(TypeObject, n)
	}
	return build(m)
}

// ObjectCodec builds a Codec for a type stored as a JSON object from a pair
// of object-level functions.
func ObjectCodec[T any](decode func(Object) (T, error), encode func(T, Object)) Codec[T] {
	return objectCodec[T]{decode: decode, encode: encode}
}

type objectCodec[T any] struct {
	decode func(Object) (T, error)
	encode func(T, Object)
}

func (c objectCodec[T]) DecodeJSON(n Node) (T, error) { return AsObject(n, c.decode) }

func (c objectCodec[T]) EncodeJSON(v T) Node {
	return CreateObject(func(m Object) { c.encode(v, m) })
}
