package jsonmap_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/jsonmap"
	"github.com/reoring/jsonmap/source"
)

type address struct {
	City string `json:"city"`
	Zip  string `json:"zip,omitempty"`
}

type user struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Score   float64  `json:"score"`
	Tags    []string `json:"tags"`
	Address address  `json:"address"`
}

func TestStruct_DecodeParsedDocument(t *testing.T) {
	obj, err := source.JSONObject([]byte(`{
		"id": 7, "name": "ann", "score": 9.5,
		"tags": ["a", "b"], "address": {"city": "Kyoto"}, "extra": true
	}`), source.DefaultParseOpt())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	u, err := jsonmap.ReadItem(jsonmap.Object{"user": obj}, "user", jsonmap.Struct[user]())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := user{ID: 7, Name: "ann", Score: 9.5, Tags: []string{"a", "b"}, Address: address{City: "Kyoto"}}
	if !reflect.DeepEqual(want, u) {
		t.Fatalf("want %+v, got %+v", want, u)
	}
}

func TestStruct_RoundTrip(t *testing.T) {
	c := jsonmap.Struct[user]()
	in := user{ID: 1, Name: "bob", Score: 2, Tags: []string{}, Address: address{City: "Osaka", Zip: "530"}}
	out, err := c.DecodeJSON(c.EncodeJSON(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("want %+v, got %+v", in, out)
	}
}

func TestStruct_Mismatch(t *testing.T) {
	c := jsonmap.Struct[user]()
	if _, err := c.DecodeJSON(int64(43)); err == nil || err.Error() != `ExpectedError("Object", "43")` {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := c.DecodeJSON(jsonmap.Object{
		"id": "seven", "name": "x", "score": 1, "address": jsonmap.Object{"city": "c"},
	})
	if err == nil || err.Error() != `ExpectedError("i64", "\"seven\"")` {
		t.Fatalf("unexpected error: %v", err)
	}
}

type scalars struct {
	N int64   `json:"n"`
	S string  `json:"s"`
	U uint8   `json:"u,omitempty"`
	F float64 `json:"f,omitempty"`
	B *bool   `json:"b"`
	L []int64 `json:"l"`
}

func TestStruct_ScalarFieldsAreStrict(t *testing.T) {
	c := jsonmap.Struct[scalars]()
	cases := []struct {
		name string
		in   jsonmap.Object
		want string
	}{
		{"float into int", jsonmap.Object{"n": 4.12, "s": "x"}, `ExpectedError("i64", "4.12")`},
		{"fractional number into int", jsonmap.Object{"n": json.Number("4.12"), "s": "x"}, `ExpectedError("i64", "4.12")`},
		{"number into string", jsonmap.Object{"n": int64(1), "s": json.Number("12")}, `ExpectedError("String", "12")`},
		{"negative into uint", jsonmap.Object{"n": int64(1), "s": "x", "u": json.Number("-1")}, `ExpectedError("u64", "-1")`},
		{"overflow uint8", jsonmap.Object{"n": int64(1), "s": "x", "u": json.Number("300")}, `ExpectedError("u64", "300")`},
		{"string into float", jsonmap.Object{"n": int64(1), "s": "x", "f": "1.5"}, `ExpectedError("f64", "\"1.5\"")`},
		{"number into bool", jsonmap.Object{"n": int64(1), "s": "x", "b": json.Number("1")}, `ExpectedError("bool", "1")`},
		{"float in slice", jsonmap.Object{"n": int64(1), "s": "x", "l": []any{json.Number("1"), 2.5}}, `ExpectedError("i64", "2.5")`},
		{"missing required", jsonmap.Object{"s": "x"}, `MissingFieldError("n")`},
		{"null required", jsonmap.Object{"n": nil, "s": "x"}, `ExpectedError("i64", "null")`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := c.DecodeJSON(tc.in)
			if err == nil || err.Error() != tc.want {
				t.Fatalf("want %s, got v=%+v err=%v", tc.want, v, err)
			}
		})
	}
}

func TestStruct_OptionalFields(t *testing.T) {
	v, err := jsonmap.Struct[scalars]().DecodeJSON(jsonmap.Object{
		"n": json.Number("-3"), "s": "x", "b": nil, "l": []any{int64(7)},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := scalars{N: -3, S: "x", L: []int64{7}}
	if !reflect.DeepEqual(want, v) {
		t.Fatalf("want %+v, got %+v", want, v)
	}
}

func TestStruct_NestedRequired(t *testing.T) {
	_, err := jsonmap.Struct[user]().DecodeJSON(jsonmap.Object{
		"id": int64(1), "name": "x", "score": int64(1), "address": jsonmap.Object{"zip": "1"},
	})
	if !errors.Is(err, jsonmap.ErrMissingField) || err.Error() != `MissingFieldError("city")` {
		t.Fatalf("unexpected error: %v", err)
	}
}
