package jsonmap

import (
	"encoding/json"
	"math"
	"strconv"
)

// Int64 returns the codec for signed 64-bit integers. Only integer-shaped
// numbers decode: 4.12, 4.0 and 1e3 are rejected rather than truncated.
func Int64() Codec[int64] { return int64Codec{} }

// Uint64 returns the codec for unsigned 64-bit integers. Negative numbers
// are rejected.
func Uint64() Codec[uint64] { return uint64Codec{} }

// Float64 returns the codec for 64-bit floats. Any number decodes.
func Float64() Codec[float64] { return float64Codec{} }

// Bool returns the codec for booleans.
func Bool() Codec[bool] { return boolCodec{} }

// String returns the codec for strings.
func String() Codec[string] { return stringCodec{} }

type int64Codec struct{}

func (int64Codec) DecodeJSON(n Node) (int64, error) {
	switch t := n.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		if uint64(t) <= math.MaxInt64 {
			return int64(t), nil
		}
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t), nil
		}
	case numberText:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return i, nil
		}
	}
	return 0, expected(TypeInt64, n)
}

func (int64Codec) EncodeJSON(v int64) Node { return v }

type uint64Codec struct{}

func (uint64Codec) DecodeJSON(n Node) (uint64, error) {
	switch t := n.(type) {
	case int:
		if t >= 0 {
			return uint64(t), nil
		}
	case int8:
		if t >= 0 {
			return uint64(t), nil
		}
	case int16:
		if t >= 0 {
			return uint64(t), nil
		}
	case int32:
		if t >= 0 {
			return uint64(t), nil
		}
	case int64:
		if t >= 0 {
			return uint64(t), nil
		}
	case uint:
		return uint64(t), nil
	case uint8:
		return uint64(t), nil
	case uint16:
		return uint64(t), nil
	case uint32:
		return uint64(t), nil
	case uint64:
		return t, nil
	case numberText:
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return u, nil
		}
	}
	return 0, expected(TypeUint64, n)
}

func (uint64Codec) EncodeJSON(v uint64) Node { return v }

type float64Codec struct{}

func (float64Codec) DecodeJSON(n Node) (float64, error) {
	switch t := n.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case numberText:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f, nil
		}
	}
	return 0, expected(TypeFloat64, n)
}

func (float64Codec) EncodeJSON(v float64) Node { return v }

type boolCodec struct{}

func (boolCodec) DecodeJSON(n Node) (bool, error) {
	b, ok := n.(bool)
	if !ok {
		return false, expected(TypeBool, n)
	}
	return b, nil
}

func (boolCodec) EncodeJSON(v bool) Node { return v }

type stringCodec struct{}

func (stringCodec) DecodeJSON(n Node) (string, error) {
	s, ok := n.(string)
	if !ok {
		return "", expected(TypeString, n)
	}
	return s, nil
}

func (stringCodec) EncodeJSON(v string) Node { return v }

// numberText matches json.Number and look-alikes from other JSON libraries
// that keep numbers as their literal text.
type numberText interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

var _ numberText = json.Number("")
