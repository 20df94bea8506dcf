// Package source bridges external parsers into jsonmap trees: JSON through
// goccy/go-json's token stream (with duplicate key, depth and size
// enforcement) and YAML through yaml.v3.
package source

import (
	"bytes"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonmap"
	eng "github.com/reoring/jsonmap/internal/engine"
)

// Issue is the issue type handed to ParseOpt.IssueSink.
type Issue = jsonmap.Issue

// JSON parses exactly one JSON value from b. The whole input is validated
// as JSON before the tree is built, so trailing commas, missing separators
// and other syntax errors fail with a parse_error issue.
func JSON(b []byte, opt ParseOpt) (jsonmap.Node, error) {
	if opt.MaxBytes > 0 && int64(len(b)) > opt.MaxBytes {
		return nil, truncated()
	}
	if !gojson.Valid(b) {
		return nil, invalid(b)
	}
	return parse(bytes.NewReader(b), opt)
}

// JSONReader reads r to the end (at most MaxBytes when set) and parses it
// like JSON.
func JSONReader(r io.Reader, opt ParseOpt) (jsonmap.Node, error) {
	if opt.MaxBytes > 0 {
		lr := &limitReader{r: r, remaining: opt.MaxBytes}
		b, err := io.ReadAll(lr)
		if lr.exceeded {
			return nil, truncated()
		}
		if err != nil {
			return nil, parseError(err)
		}
		return JSON(b, opt)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, parseError(err)
	}
	return JSON(b, opt)
}

// JSONObject parses b and requires the root to be an object.
func JSONObject(b []byte, opt ParseOpt) (jsonmap.Object, error) {
	n, err := JSON(b, opt)
	if err != nil {
		return nil, err
	}
	return jsonmap.AsObject(n, func(m jsonmap.Object) (jsonmap.Object, error) { return m, nil })
}

// Marshal serializes a tree to JSON text. Object keys are written in sorted
// order.
func Marshal(n jsonmap.Node) ([]byte, error) { return gojson.Marshal(n) }

func parse(r io.Reader, opt ParseOpt) (jsonmap.Node, error) {
	src := eng.WrapWithEnforcement(newTokenSource(r), opt.enforceOptions())
	n, err := eng.BuildTree(src, opt.numberConv())
	if err != nil {
		return nil, parseError(err)
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, parseError(err)
		}
		return nil, eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: jsonmap.CodeParseError, Path: "/", Message: "unexpected data after top-level value"}}
	}
	return n, nil
}

// parseError passes enforcement issues through and wraps everything else as
// a parse_error issue.
func parseError(err error) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return err
	}
	msg := err.Error()
	if errors.Is(err, io.EOF) {
		msg = "unexpected end of input"
	}
	return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: jsonmap.CodeParseError, Path: "/", Message: msg}}
}

func truncated() error {
	return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: jsonmap.CodeTruncated, Path: "/", Message: "max bytes exceeded"}}
}

func invalid(b []byte) error {
	msg := "invalid JSON"
	if len(bytes.TrimSpace(b)) == 0 {
		msg = "unexpected end of input"
	}
	return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: jsonmap.CodeParseError, Path: "/", Message: msg}}
}

type limitReader struct {
	r         io.Reader
	remaining int64
	exceeded  bool
}

var errLimit = errors.New("source: max bytes exceeded")

func (l *limitReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		l.exceeded = true
		return 0, errLimit
	}
	// read one byte past the limit so an input of exactly MaxBytes passes
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		l.exceeded = true
		return n, errLimit
	}
	return n, err
}
