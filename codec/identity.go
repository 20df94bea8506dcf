// Package codec holds jsonmap codecs for types beyond the JSON scalars.
package codec

import "github.com/reoring/jsonmap"

// Raw returns a Codec that hands the node through untouched. It is useful
// for fields whose shape is decided later by the caller.
func Raw() jsonmap.Codec[jsonmap.Node] { return rawCodec{} }

type rawCodec struct{}

func (rawCodec) DecodeJSON(n jsonmap.Node) (jsonmap.Node, error) { return n, nil }
func (rawCodec) EncodeJSON(n jsonmap.Node) jsonmap.Node          { return n }

// StringAs projects the string codec onto a named string type.
func StringAs[T ~string]() jsonmap.Codec[T] {
	return jsonmap.NewCodec(
		func(n jsonmap.Node) (T, error) {
			s, err := jsonmap.String().DecodeJSON(n)
			return T(s), err
		},
		func(v T) jsonmap.Node { return string(v) },
	)
}

// Int64As projects the int64 codec onto a named integer type.
func Int64As[T ~int64]() jsonmap.Codec[T] {
	return jsonmap.NewCodec(
		func(n jsonmap.Node) (T, error) {
			i, err := jsonmap.Int64().DecodeJSON(n)
			return T(i), err
		},
		func(v T) jsonmap.Node { return int64(v) },
	)
}
