package export

import (
	"database/sql"
	"fmt"
)

// countProfileRows opens an exported database read-only and counts the
// rows in the profiles table.
func countProfileRows(path string) (int, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", profilesTable)
	if err := db.QueryRow(query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
