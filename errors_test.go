package jsonmap_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reoring/jsonmap"
	"github.com/reoring/jsonmap/source"
)

func TestToIssues_MissingField(t *testing.T) {
	_, err := jsonmap.ReadItem(jsonmap.Object{}, "a/b", jsonmap.String())
	iss := jsonmap.ToIssues(err)
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", iss)
	}
	if iss[0].Code != jsonmap.CodeRequired || iss[0].Path != "/a~1b" {
		t.Fatalf("unexpected issue %+v", iss[0])
	}
	if !strings.Contains(iss[0].Message, "a/b") {
		t.Fatalf("message should name the key: %q", iss[0].Message)
	}
	if !errors.Is(iss[0].Cause, jsonmap.ErrMissingField) {
		t.Fatalf("cause should be the original error, got %v", iss[0].Cause)
	}
}

func TestToIssues_TypeMismatchWrapped(t *testing.T) {
	_, err := jsonmap.ReadItem(jsonmap.Object{"n": "x"}, "n", jsonmap.Int64())
	wrapped := fmt.Errorf("reading config: %w", err)
	iss := jsonmap.ToIssues(wrapped)
	if len(iss) != 1 || iss[0].Code != jsonmap.CodeInvalidType {
		t.Fatalf("unexpected issues %v", iss)
	}
	if iss.Error() != "invalid_type" {
		t.Fatalf("unexpected summary %q", iss.Error())
	}
}

func TestToIssues_SourceErrors(t *testing.T) {
	_, err := source.JSON([]byte(`{"a":1,"a":2}`), source.DefaultParseOpt())
	iss := jsonmap.ToIssues(err)
	if len(iss) != 1 || iss[0].Code != jsonmap.CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("unexpected issues %v", iss)
	}

	iss = jsonmap.ToIssues(errors.New("other"))
	if len(iss) != 1 || iss[0].Code != jsonmap.CodeParseError {
		t.Fatalf("unexpected issues %v", iss)
	}
	if jsonmap.ToIssues(nil) != nil {
		t.Fatalf("nil error must map to nil issues")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := jsonmap.Issues{
		{Path: "/a", Code: jsonmap.CodeInvalidType},
		{Path: "/b", Code: jsonmap.CodeRequired},
		{Path: "/c", Code: jsonmap.CodeRequired},
		{Path: "/d", Code: jsonmap.CodeRequired},
	}
	want := "invalid_type at /a; required at /b; required at /c; ... (total 4)"
	if s := iss.Error(); s != want {
		t.Fatalf("want %q, got %q", want, s)
	}
	if got, ok := jsonmap.AsIssues(fmt.Errorf("wrap: %w", iss)); !ok || len(got) != 4 {
		t.Fatalf("AsIssues failed: %v %v", got, ok)
	}
	if iss2 := jsonmap.ToIssues(iss); len(iss2) != 4 {
		t.Fatalf("Issues should pass through ToIssues unchanged")
	}
}
