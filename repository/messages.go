package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/vuciv/imessage-wrapped/domain"
	"github.com/vuciv/imessage-wrapped/infra"
)

//----------------------------------------------------------------------------------------------------
// Read Queries Against the Message Archive
//----------------------------------------------------------------------------------------------------

// nativeDateExpr normalizes message.date to native epoch seconds. Modern
// archives store nanoseconds since the native epoch, older ones store
// seconds; anything above the threshold is treated as nanoseconds.
const nativeDateExpr = `(CASE WHEN m.date > 100000000000 THEN m.date / 1000000000 ELSE m.date END)`

// reactionKindByTag maps the archive's associated_message_type tags to kinds.
var reactionKindByTag = map[int64]domain.ReactionKind{
	2000: domain.ReactionLoved,
	2001: domain.ReactionLiked,
	2002: domain.ReactionDisliked,
	2003: domain.ReactionLaughed,
	2004: domain.ReactionEmphasized,
	2005: domain.ReactionQuestioned,
}

// ArchiveStore runs every read query the pipeline needs against one archive.
type ArchiveStore struct {
	db *infra.MessageDB
}

// NewArchiveStore wraps an open archive connection.
func NewArchiveStore(db *infra.MessageDB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

// scopeFilter translates a resolved scope into the join and where fragments
// shared by every message query. The window filter always applies.
func scopeFilter(scope domain.Scope, window domain.TimeWindow) (join string, where string, args []any) {
	where = nativeDateExpr + " >= ? AND " + nativeDateExpr + " < ?"
	args = []any{window.StartNative, window.EndNative}

	switch scope.Kind {
	case domain.ScopeSingleChat:
		join = `
		JOIN chat_message_join cmj ON cmj.message_id = m.ROWID
		JOIN chat c ON c.ROWID = cmj.chat_id`
		where += " AND c.chat_identifier = ?"
		args = append(args, scope.ChatID)
	case domain.ScopeHandleSet:
		placeholders := strings.Repeat("?,", len(scope.HandleIDs))
		where += " AND m.handle_id IN (" + placeholders[:len(placeholders)-1] + ")"
		for _, id := range scope.HandleIDs {
			args = append(args, id)
		}
	}
	return join, where, args
}

// FetchMessages returns every in-scope message row, oldest first.
func (s *ArchiveStore) FetchMessages(scope domain.Scope, window domain.TimeWindow) ([]domain.MessageRecord, error) {
	join, where, args := scopeFilter(scope, window)

	query := fmt.Sprintf(`
	SELECT m.guid, m.is_from_me, %s AS native_date, m.text,
	       COALESCE(h.id, ''), COALESCE(m.associated_message_type, 0),
	       COALESCE(m.associated_message_guid, '')
	FROM message m
	LEFT JOIN handle h ON h.ROWID = m.handle_id
	%s
	WHERE %s
	ORDER BY native_date ASC, m.ROWID ASC;`, nativeDateExpr, join, where)

	rows, err := s.db.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query in-scope messages: %w", err)
	}
	defer rows.Close()

	var records []domain.MessageRecord
	for rows.Next() {
		var (
			rec       domain.MessageRecord
			text      sql.NullString
			handleID  string
			assocType int64
			assocGUID string
		)
		if err := rows.Scan(&rec.GUID, &rec.IsFromMe, &rec.DateNative, &text, &handleID, &assocType, &assocGUID); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		if text.Valid {
			t := text.String
			rec.Text = &t
		}
		if !rec.IsFromMe {
			rec.ParticipantID = handleID
		}
		if scope.Kind == domain.ScopeSingleChat {
			rec.ChatID = scope.ChatID
		}
		if kind, ok := reactionKindByTag[assocType]; ok {
			rec.Reaction = kind
			rec.TapbackRef = assocGUID
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ParticipantCounts groups in-scope messages by sender and returns the rows
// count-descending. Self rows collapse into one entry with an empty
// identifier. Ties keep the identifier ordering so reruns are stable.
func (s *ArchiveStore) ParticipantCounts(scope domain.Scope, window domain.TimeWindow) ([]domain.ParticipantCount, error) {
	join, where, args := scopeFilter(scope, window)

	query := fmt.Sprintf(`
	SELECT m.is_from_me,
	       CASE WHEN m.is_from_me = 1 THEN '' ELSE COALESCE(h.id, '') END AS participant,
	       COUNT(*) AS cnt
	FROM message m
	LEFT JOIN handle h ON h.ROWID = m.handle_id
	%s
	WHERE %s
	GROUP BY m.is_from_me, participant
	ORDER BY cnt DESC, participant ASC;`, join, where)

	rows, err := s.db.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participant counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.ParticipantCount
	for rows.Next() {
		var pc domain.ParticipantCount
		if err := rows.Scan(&pc.IsFromMe, &pc.ParticipantID, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan participant count row: %w", err)
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

// AttachmentCount counts distinct image and video attachments linked to
// in-scope messages.
func (s *ArchiveStore) AttachmentCount(scope domain.Scope, window domain.TimeWindow) (int64, error) {
	join, where, args := scopeFilter(scope, window)

	query := fmt.Sprintf(`
	SELECT COUNT(DISTINCT a.ROWID)
	FROM message m
	JOIN message_attachment_join maj ON maj.message_id = m.ROWID
	JOIN attachment a ON a.ROWID = maj.attachment_id
	%s
	WHERE %s AND (a.mime_type LIKE 'image/%%' OR a.mime_type LIKE 'video/%%');`, join, where)

	var count int64
	if err := s.db.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attachments: %w", err)
	}
	return count, nil
}

// OriginalSender locates the message a tapback reacted to and returns its
// sender. Candidates are tried in parse order: extracted GUID first, raw
// reference string as the equality fallback.
func (s *ArchiveStore) OriginalSender(ref domain.TapbackRef) (participantID string, isFromMe bool, found bool, err error) {
	const query = `
	SELECT m.is_from_me, COALESCE(h.id, '')
	FROM message m
	LEFT JOIN handle h ON h.ROWID = m.handle_id
	WHERE m.guid = ?
	LIMIT 1;`

	for _, candidate := range ref.Candidates() {
		row := s.db.DB.QueryRow(query, candidate)
		scanErr := row.Scan(&isFromMe, &participantID)
		if scanErr == sql.ErrNoRows {
			continue
		}
		if scanErr != nil {
			return "", false, false, fmt.Errorf("failed to look up original message '%s': %w", candidate, scanErr)
		}
		if isFromMe {
			participantID = ""
		}
		return participantID, isFromMe, true, nil
	}
	return "", false, false, nil
}

// SearchHandles returns every handle row whose identifier contains the given
// substring. One identifier may own several rows; all are returned so the
// caller can include every one of them in the scope.
func (s *ArchiveStore) SearchHandles(substr string) ([]domain.Handle, error) {
	const query = `
	SELECT ROWID, id
	FROM handle
	WHERE id LIKE '%' || ? || '%'
	ORDER BY ROWID ASC;`

	rows, err := s.db.DB.Query(query, substr)
	if err != nil {
		return nil, fmt.Errorf("failed to search handles for '%s': %w", substr, err)
	}
	defer rows.Close()

	var handles []domain.Handle
	for rows.Next() {
		var h domain.Handle
		if err := rows.Scan(&h.RowID, &h.Identifier); err != nil {
			return nil, fmt.Errorf("failed to scan handle row: %w", err)
		}
		handles = append(handles, h)
	}
	return handles, rows.Err()
}

// SearchGroupChats returns group chats whose identifier or display name
// contains the input, counted by message volume inside the window and
// ordered count-descending. Group chats follow the archive's multi-party
// identifier convention ("chat" prefix); 1:1 chats never match.
func (s *ArchiveStore) SearchGroupChats(substr string, window domain.TimeWindow) ([]domain.ChatCandidate, error) {
	query := fmt.Sprintf(`
	SELECT c.chat_identifier, COALESCE(c.display_name, ''), COUNT(m.ROWID) AS cnt
	FROM chat c
	JOIN chat_message_join cmj ON cmj.chat_id = c.ROWID
	JOIN message m ON m.ROWID = cmj.message_id
	WHERE c.chat_identifier LIKE 'chat%%'
	  AND (c.chat_identifier LIKE '%%' || ? || '%%' OR c.display_name LIKE '%%' || ? || '%%')
	  AND %s >= ? AND %s < ?
	GROUP BY c.ROWID
	ORDER BY cnt DESC, c.chat_identifier ASC;`, nativeDateExpr, nativeDateExpr)

	rows, err := s.db.DB.Query(query, substr, substr, window.StartNative, window.EndNative)
	if err != nil {
		return nil, fmt.Errorf("failed to search group chats for '%s': %w", substr, err)
	}
	defer rows.Close()

	var candidates []domain.ChatCandidate
	for rows.Next() {
		var c domain.ChatCandidate
		if err := rows.Scan(&c.Identifier, &c.DisplayName, &c.MessageCount); err != nil {
			return nil, fmt.Errorf("failed to scan chat candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
