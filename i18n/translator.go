package i18n

import "sync/atomic"

// Translator retrieves localized messages for issue codes.
// data provides optional metadata to embed in the message ("key",
// "expected", "actual").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if data["expected"] != "" {
				return "型が不正です（期待: " + data["expected"] + "、実際: " + data["actual"] + "）"
			}
			return "型が不正です"
		case "required":
			if data["key"] != "" {
				return "必須プロパティ " + data["key"] + " が不足しています"
			}
			return "必須プロパティが不足しています"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if data["expected"] != "" {
				return "invalid type: expected " + data["expected"] + ", got " + data["actual"]
			}
			return "invalid type"
		case "required":
			if data["key"] != "" {
				return "required property " + data["key"] + " missing"
			}
			return "required property missing"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation. nil restores the
// built-in English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
