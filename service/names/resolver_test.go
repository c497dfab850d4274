package names_service

import (
	"testing"

	"github.com/vuciv/imessage-wrapped/domain"
)

func testLookup() *Lookup {
	return BuildLookup([]domain.NameRecord{
		{RawName: "Alice Johnson", Identifier: "+15551234567"},
		{RawName: "Bob Smith", Identifier: "bob.smith@example.com"},
	})
}

func TestResolve_SuffixMatch(t *testing.T) {
	r := NewResolver(testLookup(), false, NewPseudonymMap())

	// Same contact, different stored shapes of the number.
	for _, id := range []string{"+15551234567", "5551234567", "1 (555) 123-4567"} {
		if got := r.Resolve(id); got != "Alice Johnson" {
			t.Errorf("Resolve(%q): got %q, want %q", id, got, "Alice Johnson")
		}
	}
}

func TestResolve_SubstringMatch(t *testing.T) {
	r := NewResolver(testLookup(), false, NewPseudonymMap())
	if got := r.Resolve("BOB.SMITH@example.com"); got != "Bob Smith" {
		t.Errorf("got %q, want %q", got, "Bob Smith")
	}
}

func TestResolve_PrivacyKeepsFirstToken(t *testing.T) {
	r := NewResolver(testLookup(), true, NewPseudonymMap())
	if got := r.Resolve("+15551234567"); got != "Alice" {
		t.Errorf("got %q, want %q", got, "Alice")
	}
}

func TestResolve_NoMatchTruncatesLongIdentifiers(t *testing.T) {
	r := NewResolver(testLookup(), false, NewPseudonymMap())

	long := "someone.unknown@example.com"
	got := r.Resolve(long)
	want := "…" + long[len(long)-10:]
	if got != want {
		t.Errorf("long identifier: got %q, want %q", got, want)
	}

	short := "short@x.io"
	if got := r.Resolve(short); got != short {
		t.Errorf("short identifier: got %q, want %q", got, short)
	}
}

func TestResolve_PseudonymsAreStableAndDistinct(t *testing.T) {
	r := NewResolver(testLookup(), true, NewPseudonymMap())

	first := r.Resolve("+19990000001")
	second := r.Resolve("+19990000002")
	if first == second {
		t.Errorf("distinct identifiers share pseudonym %q", first)
	}

	// Re-querying out of order must not shift assignments.
	if got := r.Resolve("+19990000002"); got != second {
		t.Errorf("pseudonym drifted: got %q, want %q", got, second)
	}
	if got := r.Resolve("+19990000001"); got != first {
		t.Errorf("pseudonym drifted: got %q, want %q", got, first)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(testLookup(), false, NewPseudonymMap())
	a := r.Resolve("+15551234567")
	b := r.Resolve("+15551234567")
	if a != b {
		t.Errorf("two calls disagreed: %q vs %q", a, b)
	}
}

func TestFindIdentifier_Fuzzy(t *testing.T) {
	l := testLookup()
	id, ok := l.FindIdentifier("alice")
	if !ok {
		t.Fatal("expected a match for 'alice'")
	}
	if id != "+15551234567" {
		t.Errorf("got %q, want %q", id, "+15551234567")
	}
}

func TestFindIdentifier_EmptyLookup(t *testing.T) {
	l := BuildLookup(nil)
	if _, ok := l.FindIdentifier("anyone"); ok {
		t.Error("empty lookup should match nothing")
	}
}
