package jsonmap

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Node is one fragment of a parsed JSON document: nil, bool, a number,
// string, Array or Object. Trees from the source package can be used as-is.
// A plain json.Unmarshal into any yields float64 for every number, which the
// integer codecs reject; decode with Decoder.UseNumber (encoding/json or
// goccy/go-json) to keep integers readable.
type Node = any

// Object is the string-keyed mapping held by an object node.
type Object = map[string]any

// Array is the ordered sequence held by an array node.
type Array = []any

// IsNull reports whether n is the null node.
func IsNull(n Node) bool { return n == nil }

// Render returns the canonical JSON text of n ("null" for the null node).
func Render(n Node) string {
	if n == nil {
		return "null"
	}
	b, err := gojson.MarshalNoEscape(n)
	if err != nil {
		// Not JSON-representable (e.g. a func smuggled into the tree).
		return fmt.Sprintf("%v", n)
	}
	return string(b)
}
