package source

import eng "github.com/reoring/jsonmap/internal/engine"

// NumberMode dictates how JSON numbers are placed in the tree.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // json.Number; exact, integer decoders accept it.
	NumberFloat64                      // float64; only Float64 decodes these.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options. The zero value parses leniently with
// json.Number numbers and no limits.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 = unlimited
	MaxBytes   int64 // 0 = unlimited
	NumberMode NumberMode
	// IssueSink receives non-fatal issues such as duplicate key warnings.
	IssueSink func(Issue)
}

// DefaultParseOpt rejects duplicate keys and nests at most 64 levels deep.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{
		Strictness: Strictness{OnDuplicateKey: Error},
		MaxDepth:   64,
	}
}

func (o ParseOpt) enforceOptions() eng.EnforceOptions {
	eo := eng.EnforceOptions{MaxDepth: o.MaxDepth}
	switch o.Strictness.OnDuplicateKey {
	case Error:
		eo.OnDuplicate = eng.DupError
	case Warn:
		eo.OnDuplicate = eng.DupWarn
	default:
		eo.OnDuplicate = eng.DupIgnore
	}
	if o.IssueSink != nil {
		sink := o.IssueSink
		eo.IssueSink = func(si eng.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	return eo
}

func (o ParseOpt) numberConv() eng.NumberConv {
	if o.NumberMode == NumberFloat64 {
		return eng.Float64
	}
	return eng.JSONNumber
}
