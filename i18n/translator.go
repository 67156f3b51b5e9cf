package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "source_not_found":
			return "ソースが見つからないか壊れています"
		case "parse_error":
			return "解析エラー"
		case "shape_mismatch":
			return "ノードの形が一致しません"
		case "scalar_parse":
			return "スカラー値を変換できません"
		case "unknown_enum":
			return "未知の列挙値です"
		case "no_matching_variant":
			return "一致するバリアントがありません"
		case "required":
			return "必須フィールドが不足しています"
		case "encode_error":
			return "エンコードエラー"
		case "no_codec":
			return "コーデックが登録されていません"
		case "invalid_schema":
			return "スキーマ定義が不正です"
		}
	default: // "en"
		switch code {
		case "source_not_found":
			return "source not found or broken"
		case "parse_error":
			return "parse error"
		case "shape_mismatch":
			return "node shape mismatch"
		case "scalar_parse":
			return "malformed scalar"
		case "unknown_enum":
			return "bad enum value"
		case "no_matching_variant":
			return "no matching variant"
		case "required":
			return "required field missing"
		case "encode_error":
			return "encode error"
		case "no_codec":
			return "no codec registered"
		case "invalid_schema":
			return "invalid schema declaration"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
