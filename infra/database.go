package infra

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/vuciv/imessage-wrapped/domain"

	_ "modernc.org/sqlite" // Import the sqlite driver
)

// MessageDB provides read-only database access to the message archive.
type MessageDB struct {
	DB *sql.DB
}

// ConnectMessageDB opens the sqlite message archive in read-only mode and
// verifies it is reachable. Permission problems (the usual failure on macOS,
// where the archive needs Full Disk Access) surface as ErrStoreUnavailable.
func ConnectMessageDB(path string) (*MessageDB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open archive: %v", domain.ErrStoreUnavailable, err)
	}

	// The archive is a single local file; one connection avoids lock churn.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to read archive at %s: %v", domain.ErrStoreUnavailable, path, err)
	}

	log.Printf("Successfully opened message archive at %s (read-only).", path)
	return &MessageDB{DB: db}, nil
}

// Close the database connection.
func (m *MessageDB) Close() error {
	return m.DB.Close()
}
