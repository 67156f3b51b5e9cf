package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("shape_mismatch", nil); msg == "shape_mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("shape_mismatch", nil); msg == "node shape mismatch" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("unknown_enum", nil); msg != "X-unknown_enum" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("unknown_enum", nil); msg != "bad enum value" {
		t.Fatalf("expected reset to en, got %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes echo the code, got %q", msg)
	}
}
