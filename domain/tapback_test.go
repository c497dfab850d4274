package domain

import (
	"reflect"
	"testing"
)

func TestParseTapbackRef_PartForm(t *testing.T) {
	ref := ParseTapbackRef("p:0/ABC-123-DEF")
	if ref.Kind != TapbackRefPart {
		t.Errorf("kind: got %v, want TapbackRefPart", ref.Kind)
	}
	if ref.TargetID != "ABC-123-DEF" {
		t.Errorf("target: got %q, want %q", ref.TargetID, "ABC-123-DEF")
	}
	want := []string{"ABC-123-DEF", "p:0/ABC-123-DEF"}
	if got := ref.Candidates(); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates: got %v, want %v", got, want)
	}
}

func TestParseTapbackRef_PrefixWithoutSlash(t *testing.T) {
	ref := ParseTapbackRef("bp:ABC-123")
	if ref.Kind != TapbackRefPart {
		t.Errorf("kind: got %v, want TapbackRefPart", ref.Kind)
	}
	if ref.TargetID != "ABC-123" {
		t.Errorf("target: got %q, want %q", ref.TargetID, "ABC-123")
	}
}

func TestParseTapbackRef_BareGUID(t *testing.T) {
	ref := ParseTapbackRef("ABC-123")
	if ref.Kind != TapbackRefPlain {
		t.Errorf("kind: got %v, want TapbackRefPlain", ref.Kind)
	}
	want := []string{"ABC-123"}
	if got := ref.Candidates(); !reflect.DeepEqual(got, want) {
		t.Errorf("candidates: got %v, want %v", got, want)
	}
}
