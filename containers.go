package jsonmap

// Optional returns a codec for an optional T. The null node decodes to nil;
// any other node goes through c and a failure is returned unchanged.
// Encoding a nil pointer yields the null node.
func Optional[T any](c Codec[T]) Codec[*T] { return optionalCodec[T]{elem: c} }

type optionalCodec[T any] struct{ elem Codec[T] }

func (o optionalCodec[T]) DecodeJSON(n Node) (*T, error) {
	if n == nil {
		return nil, nil
	}
	v, err := o.elem.DecodeJSON(n)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (o optionalCodec[T]) EncodeJSON(v *T) Node {
	if v == nil {
		return nil
	}
	return o.elem.EncodeJSON(*v)
}

// Slice returns a codec for a homogeneous sequence of T. The node must be an
// array; elements are decoded in order and the first element that fails
// aborts the decode with that element's error. No partial slice is returned.
func Slice[T any](c Codec[T]) Codec[[]T] { return sliceCodec[T]{elem: c} }

type sliceCodec[T any] struct{ elem Codec[T] }

func (s sliceCodec[T]) DecodeJSON(n Node) ([]T, error) {
	arr, ok := n.([]any)
	if !ok {
		return nil, expected(TypeArray, n)
	}
	out := make([]T, 0, len(arr))
	for _, item := range arr {
		v, err := s.elem.DecodeJSON(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s sliceCodec[T]) EncodeJSON(v []T) Node {
	arr := make([]any, 0, len(v))
	for _, item := range v {
		arr = append(arr, s.elem.EncodeJSON(item))
	}
	return arr
}
