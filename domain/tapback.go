package domain

import "strings"

//----------------------------------------------------------------------------------------------------
// Tapback Reference Parsing
//----------------------------------------------------------------------------------------------------

// TapbackRefKind describes how a tapback row references its original message.
type TapbackRefKind int

const (
	// TapbackRefPart is the composite "p:<index>/<guid>" form, where <index>
	// selects a part of a multi-part original message.
	TapbackRefPart TapbackRefKind = iota
	// TapbackRefPlain is a bare GUID with no prefix.
	TapbackRefPlain
)

// TapbackRef is the parsed reference from a tapback row to the message it
// reacted to.
type TapbackRef struct {
	Kind     TapbackRefKind
	TargetID string // GUID extracted from the composite form
	Raw      string // The reference string exactly as stored
}

// ParseTapbackRef parses the archive's composite reference string. Archives
// are inconsistent here: most rows use "p:<n>/<guid>", some store the GUID
// bare. Candidates() preserves both interpretations so a lookup can try the
// extracted GUID first and fall back to raw equality.
func ParseTapbackRef(raw string) TapbackRef {
	ref := TapbackRef{Kind: TapbackRefPlain, TargetID: raw, Raw: raw}

	colon := strings.Index(raw, ":")
	if colon < 0 {
		return ref
	}

	ref.Kind = TapbackRefPart
	rest := raw[colon+1:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[slash+1:]
	}
	ref.TargetID = rest
	return ref
}

// Candidates returns the GUIDs to try, in order, when locating the original
// message row. The extracted target comes first; the raw string is the
// fallback and is omitted when identical.
func (r TapbackRef) Candidates() []string {
	if r.TargetID == r.Raw {
		return []string{r.Raw}
	}
	return []string{r.TargetID, r.Raw}
}
