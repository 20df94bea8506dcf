package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token is one lexical element of a JSON stream.
type Token struct {
	Kind   Kind
	String string
	Number string // literal text
	Bool   bool
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
}

// NumberConv turns the literal text of a number token into a tree value.
type NumberConv func(string) (any, error)

// JSONNumber keeps numbers as json.Number.
func JSONNumber(s string) (any, error) { return json.Number(s), nil }

// Float64 decodes numbers as float64.
func Float64(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// BuildTree reads exactly one value from src and returns it as a tree of
// map[string]any, []any and scalars. A nil conv means JSONNumber.
func BuildTree(src TokenSource, conv NumberConv) (any, error) {
	if conv == nil {
		conv = JSONNumber
	}
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return buildValue(src, tok, conv)
}

func buildValue(src TokenSource, tok Token, conv NumberConv) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return buildObject(src, conv)
	case KindBeginArray:
		return buildArray(src, conv)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token kind %d: %w", tok.Kind, io.ErrUnexpectedEOF)
	}
}

func buildObject(src TokenSource, conv NumberConv) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, fmt.Errorf("expected object key: %w", io.ErrUnexpectedEOF)
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := buildValue(src, vt, conv)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func buildArray(src TokenSource, conv NumberConv) (any, error) {
	arr := []any{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := buildValue(src, tok, conv)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
