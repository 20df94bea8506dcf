package source

import (
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/jsonmap/internal/engine"
)

type frame struct {
	object       bool
	expectingKey bool
}

// tokenSource adapts a go-json Decoder to engine.TokenSource, telling object
// keys apart from string values.
type tokenSource struct {
	dec   *j.Decoder
	stack []frame
}

func newTokenSource(r io.Reader) *tokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &tokenSource{dec: dec}
}

func (s *tokenSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	if d, ok := tok.(j.Delim); ok {
		switch d {
		case '{':
			s.stack = append(s.stack, frame{object: true, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject}, nil
		case '[':
			s.stack = append(s.stack, frame{})
			return eng.Token{Kind: eng.KindBeginArray}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject}, nil
		default:
			s.pop()
			return eng.Token{Kind: eng.KindEndArray}, nil
		}
	}

	if top := s.top(); top != nil && top.object && top.expectingKey {
		if k, ok := tok.(string); ok {
			top.expectingKey = false
			return eng.Token{Kind: eng.KindKey, String: k}, nil
		}
	}
	s.valueDone()
	switch v := tok.(type) {
	case string:
		return eng.Token{Kind: eng.KindString, String: v}, nil
	case bool:
		return eng.Token{Kind: eng.KindBool, Bool: v}, nil
	case j.Number:
		return eng.Token{Kind: eng.KindNumber, Number: string(v)}, nil
	case float64:
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	default:
		return eng.Token{Kind: eng.KindNull}, nil
	}
}

func (s *tokenSource) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

func (s *tokenSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

// valueDone marks the enclosing object, if any, as waiting for its next key.
func (s *tokenSource) valueDone() {
	if top := s.top(); top != nil && top.object {
		top.expectingKey = true
	}
}
