package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vuciv/imessage-wrapped/domain"

	_ "modernc.org/sqlite" // Import the sqlite driver
)

//----------------------------------------------------------------------------------------------------
// Contacts Source (macOS AddressBook)
//----------------------------------------------------------------------------------------------------

// LoadNameRecords reads (display name, identifier) pairs from the AddressBook
// database. The contacts source is optional: an empty path or a missing file
// yields no records and no error, and name resolution degrades to raw
// identifiers.
func LoadNameRecords(path string) ([]domain.NameRecord, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("Contacts database not found at %s; continuing without names.", path)
		return nil, nil
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts database: %w", err)
	}
	defer db.Close()

	// Phones and emails live in separate AddressBook tables keyed by the
	// owning record; both become identifiers for the same display name.
	const query = `
	SELECT r.ZFIRSTNAME, r.ZLASTNAME, p.ZFULLNUMBER AS identifier
	FROM ZABCDRECORD r
	JOIN ZABCDPHONENUMBER p ON p.ZOWNER = r.Z_PK
	UNION ALL
	SELECT r.ZFIRSTNAME, r.ZLASTNAME, e.ZADDRESS AS identifier
	FROM ZABCDRECORD r
	JOIN ZABCDEMAILADDRESS e ON e.ZOWNER = r.Z_PK;`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts database: %w", err)
	}
	defer rows.Close()

	var records []domain.NameRecord
	for rows.Next() {
		var first, last, identifier sql.NullString
		if err := rows.Scan(&first, &last, &identifier); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		name := strings.TrimSpace(strings.TrimSpace(first.String) + " " + strings.TrimSpace(last.String))
		if name == "" || !identifier.Valid || identifier.String == "" {
			continue
		}
		records = append(records, domain.NameRecord{
			RawName:    name,
			Identifier: identifier.String,
		})
	}
	return records, rows.Err()
}
