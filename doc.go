// Package jsonmap decodes parsed JSON trees into typed Go values and builds
// trees back from them.
//
// A tree is made of nil, bool, numbers, string, []any and map[string]any.
// jsonmap never parses text itself; source.JSON builds trees that keep
// numbers as json.Number so Int64 and Uint64 see exact digits. Trees from
// json.Unmarshal hold float64 only and need Decoder.UseNumber for integer
// fields. See the source package for the bridge to goccy/go-json and
// yaml.v3.
//
// Each target type has a Codec (decode + encode). Scalars come from Int64,
// Uint64, Float64, Bool and String; Optional and Slice wrap any codec, and
// ObjectCodec or Struct cover object-shaped types. Object fields are read
// and written with free functions:
//
//	name, err := jsonmap.ReadItem(obj, "name", jsonmap.String())
//	tags, err := jsonmap.ReadItem(obj, "tags", jsonmap.Slice(jsonmap.String()))
//	age, err := jsonmap.ReadOptionalItem(obj, "age", jsonmap.Uint64())
//
//	out := jsonmap.CreateObject(func(m jsonmap.Object) {
//		jsonmap.WriteItem(m, "name", jsonmap.String(), name)
//	})
//
// Failures are either *MissingFieldError (a required key is absent) or
// *ExpectedError (a node has the wrong shape). Use errors.Is with
// ErrMissingField / ErrTypeMismatch, or ToIssues for an API-friendly form.
package jsonmap
