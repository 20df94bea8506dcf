package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string {
	return e.Code + " at " + e.Path + ": " + e.Message
}

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int // 0 disables the check
	// IssueSink receives every issue, including warnings that do not stop
	// the stream. May be nil.
	IssueSink func(SimpleIssue)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind       containerKind
	path       string
	keys       map[string]struct{}
	pendingKey string
	nextIndex  int
}

// WrapWithEnforcement returns a TokenSource that enforces duplicate key
// policy and maximum nesting depth on inner.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	path := e.pathFor(tok)

	switch tok.Kind {
	case KindBeginObject:
		e.stack = append(e.stack, frame{kind: kindObject, path: path, keys: make(map[string]struct{})})
	case KindBeginArray:
		e.stack = append(e.stack, frame{kind: kindArray, path: path})
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if top := e.top(); top != nil && top.kind == kindObject {
			if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate != DupIgnore {
				si := SimpleIssue{Code: "duplicate_key", Path: normalizeIssuePath(path), Message: "key '" + tok.String + "' duplicated"}
				e.report(si)
				if e.opt.OnDuplicate == DupError {
					return Token{}, IssueError{si}
				}
			}
			top.keys[tok.String] = struct{}{}
			top.pendingKey = tok.String
		}
	}

	if (tok.Kind == KindBeginObject || tok.Kind == KindBeginArray) &&
		e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
		si := SimpleIssue{Code: "parse_error", Path: normalizeIssuePath(path), Message: "max depth exceeded"}
		e.report(si)
		return Token{}, IssueError{si}
	}
	return tok, nil
}

func (e *enforcingTokenSource) report(si SimpleIssue) {
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(si)
	}
}

func (e *enforcingTokenSource) top() *frame {
	if len(e.stack) == 0 {
		return nil
	}
	return &e.stack[len(e.stack)-1]
}

// pathFor returns the JSON Pointer of the value tok starts (or of the
// container tok closes) and advances array indexes.
func (e *enforcingTokenSource) pathFor(tok Token) string {
	top := e.top()
	if top == nil {
		return ""
	}
	switch tok.Kind {
	case KindKey:
		return joinJSONPointer(top.path, tok.String)
	case KindEndObject, KindEndArray:
		return top.path
	}
	if top.kind == kindArray {
		p := joinJSONPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return joinJSONPointer(top.path, top.pendingKey)
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
