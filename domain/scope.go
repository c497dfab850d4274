package domain

//----------------------------------------------------------------------------------------------------
// Resolved Query Scope
//----------------------------------------------------------------------------------------------------

// ScopeKind selects which filter a Scope applies.
type ScopeKind int

const (
	// ScopeAllMessages applies no participant or chat filter.
	ScopeAllMessages ScopeKind = iota
	// ScopeSingleChat restricts to one chat identifier.
	ScopeSingleChat
	// ScopeHandleSet restricts to a non-empty set of handle row ids.
	ScopeHandleSet
)

// Scope is the resolved, unambiguous filter every statistics query runs
// under. Exactly one kind is active; the fields of the other kinds are zero.
type Scope struct {
	Kind      ScopeKind
	ChatID    string  // Set for ScopeSingleChat
	HandleIDs []int64 // Set (non-empty) for ScopeHandleSet
}

// Mode selects what kind of target a run analyses.
type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeGroup      Mode = "group"
	ModeAll        Mode = "all"
)

// TimeWindow is a half-open range in native epoch seconds: start inclusive,
// end exclusive.
type TimeWindow struct {
	StartNative int64
	EndNative   int64
}

// Contains reports whether a native timestamp falls inside the window.
func (w TimeWindow) Contains(native int64) bool {
	return native >= w.StartNative && native < w.EndNative
}
