package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonmap"
)

// YAML decodes the first document of b into a tree. Mapping keys are
// stringified, timestamps become RFC 3339 strings and integers stay Go
// integers, so the integer codecs accept them. Empty input yields the null
// node.
func YAML(b []byte) (jsonmap.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("source: decode yaml: %w", err)
	}
	return yamlNormalizeValue(doc), nil
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}
