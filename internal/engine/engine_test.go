package engine

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	toks []Token
}

func (s *sliceSource) NextToken() (Token, error) {
	if len(s.toks) == 0 {
		return Token{}, io.EOF
	}
	t := s.toks[0]
	s.toks = s.toks[1:]
	return t, nil
}

func obj(kv ...Token) []Token {
	out := []Token{{Kind: KindBeginObject}}
	out = append(out, kv...)
	return append(out, Token{Kind: KindEndObject})
}

func key(k string) Token { return Token{Kind: KindKey, String: k} }
func num(n string) Token { return Token{Kind: KindNumber, Number: n} }
func str(s string) Token { return Token{Kind: KindString, String: s} }
func beginArr() Token    { return Token{Kind: KindBeginArray} }
func endArr() Token      { return Token{Kind: KindEndArray} }

func TestBuildTree(t *testing.T) {
	toks := obj(key("a"), num("1"), key("b"), beginArr(), str("x"), Token{Kind: KindNull}, endArr())
	v, err := BuildTree(&sliceSource{toks: toks}, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": json.Number("1"), "b": []any{"x", nil}}, v)

	v, err = BuildTree(&sliceSource{toks: []Token{num("2.5")}}, Float64)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestBuildTree_Truncated(t *testing.T) {
	_, err := BuildTree(&sliceSource{toks: []Token{{Kind: KindBeginObject}, key("a")}}, nil)
	require.ErrorIs(t, err, io.EOF)

	_, err = BuildTree(&sliceSource{toks: []Token{{Kind: KindBeginObject}, str("a")}}, nil)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestEnforce_Paths(t *testing.T) {
	// {"a/b":[{"c":1,"c":2}]}
	toks := obj(key("a/b"), beginArr())
	toks = append(toks[:len(toks)-1], obj(key("c"), num("1"), key("c"), num("2"))...)
	toks = append(toks, endArr(), Token{Kind: KindEndObject})

	var got []SimpleIssue
	src := WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	_, err := BuildTree(src, nil)
	require.NoError(t, err)
	require.Equal(t, []SimpleIssue{{Code: "duplicate_key", Path: "/a~1b/0/c", Message: "key 'c' duplicated"}}, got)
}

func TestEnforce_DepthAndDuplicateErrors(t *testing.T) {
	toks := obj(key("a"), beginArr(), beginArr(), endArr(), endArr())
	_, err := BuildTree(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{MaxDepth: 2}), nil)
	var ie IssueError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, "parse_error", ie.Code)
	require.Equal(t, "/a/0", ie.Path)

	toks = obj(key("k"), num("1"), key("k"), num("2"))
	_, err = BuildTree(WrapWithEnforcement(&sliceSource{toks: toks}, EnforceOptions{OnDuplicate: DupError}), nil)
	require.ErrorAs(t, err, &ie)
	require.Equal(t, "duplicate_key", ie.Code)
	require.Equal(t, "/k", ie.Path)
}
