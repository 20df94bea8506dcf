package jsonmap

// Decoder constructs a T from a node, or reports why it cannot.
type Decoder[T any] interface {
	DecodeJSON(n Node) (T, error)
}

// Encoder converts a T into a node.
type Encoder[T any] interface {
	EncodeJSON(v T) Node
}

// Codec pairs the decoder and encoder of one target type.
type Codec[T any] interface {
	Decoder[T]
	Encoder[T]
}

// DecodeFunc adapts a plain function to Decoder.
type DecodeFunc[T any] func(n Node) (T, error)

func (f DecodeFunc[T]) DecodeJSON(n Node) (T, error) { return f(n) }

// EncodeFunc adapts a plain function to Encoder.
type EncodeFunc[T any] func(v T) Node

func (f EncodeFunc[T]) EncodeJSON(v T) Node { return f(v) }

// NewCodec pairs a decode and an encode function into a Codec.
func NewCodec[T any](dec func(Node) (T, error), enc func(T) Node) Codec[T] {
	return funcCodec[T]{dec: dec, enc: enc}
}

type funcCodec[T any] struct {
	dec func(Node) (T, error)
	enc func(T) Node
}

func (c funcCodec[T]) DecodeJSON(n Node) (T, error) { return c.dec(n) }
func (c funcCodec[T]) EncodeJSON(v T) Node          { return c.enc(v) }

// Decode runs d on n. It reads better than d.DecodeJSON(n) at call sites that
// pass codecs around as values.
func Decode[T any](d Decoder[T], n Node) (T, error) { return d.DecodeJSON(n) }

// Encode runs e on v.
func Encode[T any](e Encoder[T], v T) Node { return e.EncodeJSON(v) }
