package jsonmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/jsonmap/i18n"
	eng "github.com/reoring/jsonmap/internal/engine"
)

// Type names reported in ExpectedError.Expected.
const (
	TypeInt64   = "i64"
	TypeUint64  = "u64"
	TypeFloat64 = "f64"
	TypeBool    = "bool"
	TypeString  = "String"
	TypeArray   = "Array"
	TypeObject  = "Object"
)

// Issue codes
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

var (
	// ErrMissingField matches every *MissingFieldError via errors.Is.
	ErrMissingField = errors.New("jsonmap: missing field")
	// ErrTypeMismatch matches every *ExpectedError via errors.Is.
	ErrTypeMismatch = errors.New("jsonmap: type mismatch")
)

// MissingFieldError is returned by required key lookups when the key is
// absent from the object.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string { return fmt.Sprintf("MissingFieldError(%q)", e.Key) }

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// ExpectedError is returned when a node exists but does not have the shape
// the decode asked for. Actual holds the canonical JSON text of the node.
type ExpectedError struct {
	Expected string
	Actual   string
	// Cause is set when a nested decoder (for example Struct) reported
	// additional detail.
	Cause error
}

func (e *ExpectedError) Error() string {
	return fmt.Sprintf("ExpectedError(%q, %q)", e.Expected, e.Actual)
}

func (e *ExpectedError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *ExpectedError) Unwrap() error { return e.Cause }

func expected(typeName string, got Node) error {
	return &ExpectedError{Expected: typeName, Actual: Render(got)}
}

// Issue is a single error entry in a form suitable for API responses.
type Issue struct {
	Path    string // JSON Pointer relative to the object being read; empty when unknown.
	Code    string
	Message string
	Cause   error
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Path == "" {
			b.WriteString(it.Code)
			continue
		}
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ToIssues converts any error produced by this module into Issues. Errors of
// unknown origin become a single parse_error issue carrying the error as
// Cause. A nil error yields nil.
func ToIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return Issues{{
			Path:    pointerToken(mf.Key),
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, map[string]string{"key": mf.Key}),
			Cause:   err,
		}}
	}
	var ee *ExpectedError
	if errors.As(err, &ee) {
		return Issues{{
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": ee.Expected, "actual": ee.Actual}),
			Cause:   err,
		}}
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: i18n.T(ie.Code, nil), Cause: err}}
	}
	return Issues{{Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointerToken(key string) string { return "/" + pointerEscaper.Replace(key) }
