package export

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/geoforge/geoprofile/internal/profile"
	_ "github.com/mattn/go-sqlite3"
)

const profilesTable = "profiles"

// SQLite writes the batch into a single-table .db file. The driver needs
// cgo; in a CGO_ENABLED=0 build the exporter reports itself unavailable
// and the run continues without it.
type SQLite struct{}

func (SQLite) Name() string { return "SQLite" }

var (
	sqliteProbe     sync.Once
	sqliteAvailable bool
)

// Available probes the driver once with an in-memory database.
func (SQLite) Available() bool {
	sqliteProbe.Do(func() {
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			return
		}
		defer db.Close()
		sqliteAvailable = db.Ping() == nil
	})
	return sqliteAvailable
}

func (SQLite) Export(profiles []profile.Profile, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create SQLite database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createProfilesSQL()); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	builder := sq.Insert(profilesTable).Columns(profile.Columns()...)
	for _, p := range profiles {
		query, args, err := builder.Values(p.Values()...).ToSql()
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func createProfilesSQL() string {
	types := map[string]string{
		"latitude":   "REAL",
		"longitude":  "REAL",
		"unit_price": "REAL",
		"tax_rate":   "REAL",
		"subtotal":   "REAL",
		"tax_amount": "REAL",
		"total":      "REAL",
		"quantity":   "INTEGER",
	}
	defs := make([]string, 0, len(profile.Columns()))
	for _, col := range profile.Columns() {
		colType, ok := types[col]
		if !ok {
			colType = "TEXT"
		}
		defs = append(defs, col+" "+colType)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", profilesTable, strings.Join(defs, ", "))
}
