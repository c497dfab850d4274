package target_service

import (
	"fmt"
	"log"
	"strings"

	"github.com/vuciv/imessage-wrapped/domain"
	names_service "github.com/vuciv/imessage-wrapped/service/names"
)

//----------------------------------------------------------------------------------------------------
// Target Resolution (user input -> executable query scope)
//----------------------------------------------------------------------------------------------------

// HandleFinder searches the archive for handle rows by identifier substring.
type HandleFinder interface {
	SearchHandles(substr string) ([]domain.Handle, error)
}

// ChatFinder searches the archive for group chats by fuzzy name, counted by
// message volume within a window.
type ChatFinder interface {
	SearchGroupChats(substr string, window domain.TimeWindow) ([]domain.ChatCandidate, error)
}

// Resolution is a fully resolved target: the scope every statistics query
// runs under, plus the human title for the report.
type Resolution struct {
	Mode        domain.Mode
	Scope       domain.Scope
	Title       string
	ContactName string // Individual mode only
}

// ResolveAll covers the "everything" mode: no filter, fixed generic title.
func ResolveAll() Resolution {
	return Resolution{
		Mode:  domain.ModeAll,
		Scope: domain.Scope{Kind: domain.ScopeAllMessages},
		Title: "Your Year in Messages",
	}
}

// ResolveGroup matches a fuzzy group-name input against multi-party chats in
// the window. Several matches are not an error: all candidates are logged and
// the one with the most messages wins. The override name, when supplied,
// replaces the chat's own display name in the title.
func ResolveGroup(chats ChatFinder, input, overrideName string, window domain.TimeWindow) (Resolution, error) {
	candidates, err := chats.SearchGroupChats(input, window)
	if err != nil {
		return Resolution{}, fmt.Errorf("group chat search failed: %w", err)
	}
	if len(candidates) == 0 {
		return Resolution{}, fmt.Errorf("%w: no group chat matches '%s'", domain.ErrTargetNotFound, input)
	}
	if len(candidates) > 1 {
		log.Printf("Input '%s' matched %d group chats:", input, len(candidates))
		for _, c := range candidates {
			log.Printf("  %s (%q): %d messages", c.Identifier, c.DisplayName, c.MessageCount)
		}
		log.Printf("Picking the busiest: %s", candidates[0].Identifier)
	}

	chosen := candidates[0]
	title := overrideName
	if title == "" {
		title = chosen.DisplayName
	}
	if title == "" {
		title = chosen.Identifier
	}

	return Resolution{
		Mode:  domain.ModeGroup,
		Scope: domain.Scope{Kind: domain.ScopeSingleChat, ChatID: chosen.Identifier},
		Title: title,
	}, nil
}

// isDirectIdentifier classifies input as a phone/email rather than a name.
func isDirectIdentifier(input string) bool {
	if input == "" {
		return false
	}
	if strings.Contains(input, "@") {
		return true
	}
	c := input[0]
	return c == '+' || (c >= '0' && c <= '9')
}

// ResolveIndividual turns a contact input (direct identifier or fuzzy name)
// into the set of handle rows for that person. Every handle row matching the
// identifier substring is included; an identifier can own several rows and
// excluding any of them undercounts.
func ResolveIndividual(handles HandleFinder, lookup *names_service.Lookup, resolver *names_service.Resolver, input, overrideName, selfName string) (Resolution, error) {
	identifier := input
	if !isDirectIdentifier(input) {
		found, ok := lookup.FindIdentifier(input)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: no contact named '%s'", domain.ErrTargetNotFound, input)
		}
		identifier = found
	}

	// The archive may store the identifier without the leading "+".
	query := strings.TrimPrefix(identifier, "+")
	rows, err := handles.SearchHandles(query)
	if err != nil {
		return Resolution{}, fmt.Errorf("handle search failed: %w", err)
	}
	if len(rows) == 0 {
		return Resolution{}, fmt.Errorf("%w: no handle matches '%s'", domain.ErrTargetNotFound, identifier)
	}

	handleIDs := make([]int64, len(rows))
	for i, h := range rows {
		handleIDs[i] = h.RowID
	}

	contactName := overrideName
	if contactName == "" {
		contactName = resolver.Resolve(rows[0].Identifier)
	}

	return Resolution{
		Mode:        domain.ModeIndividual,
		Scope:       domain.Scope{Kind: domain.ScopeHandleSet, HandleIDs: handleIDs},
		Title:       fmt.Sprintf("%s & %s", selfName, contactName),
		ContactName: contactName,
	}, nil
}
