package domain

//----------------------------------------------------------------------------------------------------
// Structs for Message Archive Rows
//----------------------------------------------------------------------------------------------------

// ReactionKind identifies a tapback acknowledgment attached to a prior message.
type ReactionKind string

const (
	ReactionLoved      ReactionKind = "Loved"
	ReactionLiked      ReactionKind = "Liked"
	ReactionDisliked   ReactionKind = "Disliked"
	ReactionLaughed    ReactionKind = "Laughed"
	ReactionEmphasized ReactionKind = "Emphasized"
	ReactionQuestioned ReactionKind = "Questioned"
)

// ReactionKinds lists all tapback kinds in the archive's numeric tag order.
var ReactionKinds = []ReactionKind{
	ReactionLoved,
	ReactionLiked,
	ReactionDisliked,
	ReactionLaughed,
	ReactionEmphasized,
	ReactionQuestioned,
}

// MessageRecord is one row read from the message archive. The archive is
// read-only to this service; records are never written back.
type MessageRecord struct {
	GUID          string       // Archive-internal message GUID
	IsFromMe      bool         // True when the archive owner sent the message
	DateNative    int64        // Timestamp in native epoch seconds (Unix minus the archive offset)
	Text          *string      // Message body (nil for attachment-only and tapback rows)
	ParticipantID string       // Sender identifier (phone/email); empty for self
	ChatID        string       // Chat identifier the message belongs to
	Reaction      ReactionKind // Tapback kind, empty for ordinary messages
	TapbackRef    string       // Composite reference to the reacted-to message (tapbacks only)
}

// Handle is one archive row binding a participant identifier to an internal
// row id. One identifier may own several handle rows (e.g. after reachability
// changes), and all of them must be included when filtering by participant.
type Handle struct {
	RowID      int64  // Archive-internal handle row id
	Identifier string // Phone number or email as stored
}

// ChatCandidate is a group chat matched during fuzzy target resolution.
type ChatCandidate struct {
	Identifier   string // chat_identifier value
	DisplayName  string // User-visible group name, may be empty
	MessageCount int64  // Messages in the chat within the requested window
}

// ParticipantCount is one leaderboard row from the per-sender count query.
// Rows arrive in count-descending order; ties keep the store's ordering.
type ParticipantCount struct {
	ParticipantID string // Sender identifier, empty for self
	IsFromMe      bool
	Count         int64
}

// NameRecord is one (display name, identifier) pair from the contacts source.
type NameRecord struct {
	RawName    string
	Identifier string
}
