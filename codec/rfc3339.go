package codec

import (
	"time"

	"github.com/reoring/jsonmap"
)

// TypeRFC3339 is reported in ExpectedError when a string is not a valid
// RFC 3339 timestamp.
const TypeRFC3339 = "RFC3339"

// TimeRFC3339 returns a Codec between RFC 3339 strings and time.Time.
// Encoding normalizes to UTC.
func TimeRFC3339() jsonmap.Codec[time.Time] { return rfc3339Codec{} }

type rfc3339Codec struct{}

func (rfc3339Codec) DecodeJSON(n jsonmap.Node) (time.Time, error) {
	s, err := jsonmap.String().DecodeJSON(n)
	if err != nil {
		return time.Time{}, err
	}
	t, err := parseRFC3339(s)
	if err != nil {
		return time.Time{}, &jsonmap.ExpectedError{Expected: TypeRFC3339, Actual: jsonmap.Render(n), Cause: err}
	}
	return t, nil
}

func (rfc3339Codec) EncodeJSON(t time.Time) jsonmap.Node { return formatRFC3339Canonical(t) }

func parseRFC3339(s string) (time.Time, error) {
	// RFC3339Nano also accepts inputs without fractional seconds
	return time.Parse(time.RFC3339Nano, s)
}

func formatRFC3339Canonical(t time.Time) string {
	// Go trims trailing zeros of the fraction
	return t.UTC().Format(time.RFC3339Nano)
}
