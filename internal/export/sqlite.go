package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"setup-mirrors/internal/catalog"
)

const schema = `CREATE TABLE IF NOT EXISTS setups (
	id                 TEXT PRIMARY KEY,
	position           INTEGER NOT NULL,
	leftover           TEXT NOT NULL,
	build              TEXT NOT NULL,
	cover_dependency   TEXT NOT NULL,
	intermediate       INTEGER NOT NULL,
	setup_code         TEXT NOT NULL,
	piece_sequence     TEXT NOT NULL,
	success_hundredths INTEGER NOT NULL,
	mirror_kind        TEXT NOT NULL,
	mirror             TEXT
)`

const insertSetup = `INSERT INTO setups (
	id, position, leftover, build, cover_dependency, intermediate,
	setup_code, piece_sequence, success_hundredths, mirror_kind, mirror
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// OpenDB opens a SQLite database with the pragmas the export relies on.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// SQLite writes every record of the table to the setups table of the
// database at path, replacing its previous contents in one transaction.
func SQLite(ctx context.Context, path string, table *catalog.Table) error {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	return WriteSetups(ctx, db, table)
}

// WriteSetups replaces the setups table of db with the records of table.
func WriteSetups(ctx context.Context, db *sql.DB, table *catalog.Table) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM setups"); err != nil {
		return fmt.Errorf("failed to clear setups: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSetup)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range table.Records() {
		var link sql.NullString
		if !rec.Mirror.IsUnset() {
			link = sql.NullString{String: rec.Mirror.Token(), Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			rec.ID, i, rec.Leftover, rec.Build, rec.CoverDependency, rec.Intermediate,
			rec.SetupCode, rec.PieceSequence, int64(rec.Success), rec.Mirror.Kind().String(), link,
		)
		if err != nil {
			return fmt.Errorf("failed to insert setup %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
