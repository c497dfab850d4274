package names_service

import (
	"fmt"
	"strings"

	"github.com/vuciv/imessage-wrapped/domain"
	"github.com/vuciv/imessage-wrapped/util"

	"github.com/sahilm/fuzzy"
)

//----------------------------------------------------------------------------------------------------
// Identifier -> Display Name Resolution
//----------------------------------------------------------------------------------------------------

// PseudonymMap assigns stable anonymized names for privacy mode. State is
// scoped to one run: the same identifier always maps to the same pseudonym
// within a run, and distinct identifiers never collide.
type PseudonymMap struct {
	byID map[string]string
	next int
}

// NewPseudonymMap returns an empty run-scoped map.
func NewPseudonymMap() *PseudonymMap {
	return &PseudonymMap{byID: make(map[string]string)}
}

// For returns the pseudonym for an identifier, creating one on first lookup.
func (p *PseudonymMap) For(identifier string) string {
	if name, ok := p.byID[identifier]; ok {
		return name
	}
	p.next++
	name := fmt.Sprintf("Friend %d", p.next)
	p.byID[identifier] = name
	return name
}

// Lookup is the immutable identifier->name table built once per run from the
// contacts source. It supports two match strategies: last-10-digit suffix
// match for phone-like identifiers, and case-insensitive substring match on
// the raw identifier otherwise.
type Lookup struct {
	bySuffix map[string]string
	records  []domain.NameRecord
}

// BuildLookup indexes the contacts records. A nil or empty source yields an
// empty lookup, not an error.
func BuildLookup(records []domain.NameRecord) *Lookup {
	l := &Lookup{bySuffix: make(map[string]string)}
	for _, rec := range records {
		digits := util.DigitsOnly(rec.Identifier)
		if len(digits) >= 10 {
			suffix := digits[len(digits)-10:]
			if _, exists := l.bySuffix[suffix]; !exists {
				l.bySuffix[suffix] = rec.RawName
			}
		}
		l.records = append(l.records, rec)
	}
	return l
}

// matchIdentifier applies the two lookup strategies for one identifier.
func (l *Lookup) matchIdentifier(identifier string) (string, bool) {
	digits := util.DigitsOnly(identifier)
	if len(digits) > 10 && strings.HasPrefix(digits, "1") {
		digits = digits[1:] // leading country code
	}
	if len(digits) >= 10 {
		if name, ok := l.bySuffix[digits[len(digits)-10:]]; ok {
			return name, true
		}
		return "", false
	}

	lowered := strings.ToLower(identifier)
	for _, rec := range l.records {
		if strings.Contains(strings.ToLower(rec.Identifier), lowered) {
			return rec.RawName, true
		}
	}
	return "", false
}

// FindIdentifier resolves a fuzzy contact-name input to a concrete
// identifier. Names are ranked with fuzzy matching first; when nothing
// matches, a case-insensitive substring scan is the fallback.
func (l *Lookup) FindIdentifier(name string) (string, bool) {
	if len(l.records) == 0 {
		return "", false
	}

	names := make([]string, len(l.records))
	for i, rec := range l.records {
		names[i] = rec.RawName
	}
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return l.records[matches[0].Index].Identifier, true
	}

	lowered := strings.ToLower(name)
	for _, rec := range l.records {
		if strings.Contains(strings.ToLower(rec.RawName), lowered) {
			return rec.Identifier, true
		}
	}
	return "", false
}

// Resolver turns raw identifiers into display names. The pseudonym map is
// the only cross-call state and is injected so each run owns its own.
type Resolver struct {
	lookup     *Lookup
	privacy    bool
	pseudonyms *PseudonymMap
}

// NewResolver builds a resolver for one run.
func NewResolver(lookup *Lookup, privacy bool, pseudonyms *PseudonymMap) *Resolver {
	return &Resolver{lookup: lookup, privacy: privacy, pseudonyms: pseudonyms}
}

// Resolve maps an identifier to its display name. On a contacts match,
// privacy mode keeps only the first name token. On a miss, privacy mode
// hands out a stable pseudonym; otherwise long raw identifiers collapse to
// an elided last-10-characters form.
func (r *Resolver) Resolve(identifier string) string {
	if name, ok := r.lookup.matchIdentifier(identifier); ok {
		if r.privacy {
			return util.FirstToken(name)
		}
		return strings.TrimSpace(name)
	}

	if r.privacy {
		return r.pseudonyms.For(identifier)
	}
	if len(identifier) > 15 {
		return "…" + identifier[len(identifier)-10:]
	}
	return identifier
}
