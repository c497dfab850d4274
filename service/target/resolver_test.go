package target_service

import (
	"errors"
	"strings"
	"testing"

	"github.com/vuciv/imessage-wrapped/domain"
	names_service "github.com/vuciv/imessage-wrapped/service/names"
)

type fakeHandleFinder struct {
	handles []domain.Handle
}

func (f *fakeHandleFinder) SearchHandles(substr string) ([]domain.Handle, error) {
	var out []domain.Handle
	for _, h := range f.handles {
		if strings.Contains(h.Identifier, substr) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeChatFinder struct {
	chats []domain.ChatCandidate
}

func (f *fakeChatFinder) SearchGroupChats(substr string, _ domain.TimeWindow) ([]domain.ChatCandidate, error) {
	var out []domain.ChatCandidate
	for _, c := range f.chats {
		if strings.Contains(strings.ToLower(c.DisplayName), strings.ToLower(substr)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func newResolver() (*names_service.Lookup, *names_service.Resolver) {
	lookup := names_service.BuildLookup([]domain.NameRecord{
		{RawName: "Alice Johnson", Identifier: "+15551234567"},
	})
	return lookup, names_service.NewResolver(lookup, false, names_service.NewPseudonymMap())
}

func TestResolveIndividual_DirectIdentifier(t *testing.T) {
	handles := &fakeHandleFinder{handles: []domain.Handle{
		{RowID: 7, Identifier: "+15551234567"},
		{RowID: 9, Identifier: "+15551234567"}, // second row for the same identifier
		{RowID: 3, Identifier: "+14440000000"},
	}}
	lookup, resolver := newResolver()

	res, err := ResolveIndividual(handles, lookup, resolver, "+15551234567", "", "YOU")
	if err != nil {
		t.Fatal(err)
	}
	if res.Scope.Kind != domain.ScopeHandleSet {
		t.Fatalf("scope kind: got %v, want ScopeHandleSet", res.Scope.Kind)
	}
	if len(res.Scope.HandleIDs) != 2 || res.Scope.HandleIDs[0] != 7 || res.Scope.HandleIDs[1] != 9 {
		t.Errorf("handle ids: got %v, want [7 9]", res.Scope.HandleIDs)
	}
	if res.Title != "YOU & Alice Johnson" {
		t.Errorf("title: got %q, want %q", res.Title, "YOU & Alice Johnson")
	}
}

func TestResolveIndividual_NameInput(t *testing.T) {
	handles := &fakeHandleFinder{handles: []domain.Handle{
		{RowID: 7, Identifier: "+15551234567"},
	}}
	lookup, resolver := newResolver()

	res, err := ResolveIndividual(handles, lookup, resolver, "Alice", "", "YOU")
	if err != nil {
		t.Fatal(err)
	}
	if res.ContactName != "Alice Johnson" {
		t.Errorf("contact name: got %q, want %q", res.ContactName, "Alice Johnson")
	}
}

func TestResolveIndividual_NotFound(t *testing.T) {
	handles := &fakeHandleFinder{}
	lookup, resolver := newResolver()

	if _, err := ResolveIndividual(handles, lookup, resolver, "+17770000000", "", "YOU"); !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("got %v, want ErrTargetNotFound", err)
	}
	if _, err := ResolveIndividual(handles, lookup, resolver, "Nobody Known", "", "YOU"); !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("unknown name: got %v, want ErrTargetNotFound", err)
	}
}

func TestResolveIndividual_OverrideName(t *testing.T) {
	handles := &fakeHandleFinder{handles: []domain.Handle{
		{RowID: 7, Identifier: "+15551234567"},
	}}
	lookup, resolver := newResolver()

	res, err := ResolveIndividual(handles, lookup, resolver, "+15551234567", "Al", "YOU")
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "YOU & Al" {
		t.Errorf("title: got %q, want %q", res.Title, "YOU & Al")
	}
}

func TestResolveGroup_PicksBusiestCandidate(t *testing.T) {
	chats := &fakeChatFinder{chats: []domain.ChatCandidate{
		{Identifier: "chat100", DisplayName: "Movie Club", MessageCount: 120},
		{Identifier: "chat200", DisplayName: "Movie Night Planning", MessageCount: 45},
	}}

	res, err := ResolveGroup(chats, "movie", "", domain.TimeWindow{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Scope.ChatID != "chat100" {
		t.Errorf("chat id: got %q, want %q", res.Scope.ChatID, "chat100")
	}
	if res.Title != "Movie Club" {
		t.Errorf("title: got %q, want %q", res.Title, "Movie Club")
	}
}

func TestResolveGroup_NotFound(t *testing.T) {
	chats := &fakeChatFinder{}
	if _, err := ResolveGroup(chats, "book club", "", domain.TimeWindow{}); !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("got %v, want ErrTargetNotFound", err)
	}
}

func TestResolveAll(t *testing.T) {
	res := ResolveAll()
	if res.Scope.Kind != domain.ScopeAllMessages {
		t.Errorf("scope kind: got %v, want ScopeAllMessages", res.Scope.Kind)
	}
	if res.Mode != domain.ModeAll {
		t.Errorf("mode: got %v, want ModeAll", res.Mode)
	}
	if res.Title == "" {
		t.Error("title should not be empty")
	}
}

func TestIsDirectIdentifier(t *testing.T) {
	cases := map[string]bool{
		"+15551234567":   true,
		"5551234567":     true,
		"bob@example.io": true,
		"Alice":          false,
		"":               false,
	}
	for input, want := range cases {
		if got := isDirectIdentifier(input); got != want {
			t.Errorf("isDirectIdentifier(%q): got %v, want %v", input, got, want)
		}
	}
}
