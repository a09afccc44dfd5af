package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"focusdesk/internal/modules/backup/domain"
	backupout "focusdesk/internal/modules/backup/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteCatalog opens its database on first use so commands that never
// touch backups do not create it.
type SQLiteCatalog struct {
	path string
	mu   sync.Mutex
	db   *sql.DB
}

func NewSQLiteCatalog(dbPath string) backupout.Catalog {
	return &SQLiteCatalog{path: dbPath}
}

func (c *SQLiteCatalog) conn(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}
	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	c.db = db
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS backups (
  folder TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  stamp TEXT NOT NULL,
  documents TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create backups table: %w", err)
	}
	return nil
}

func (c *SQLiteCatalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func (c *SQLiteCatalog) Reset(ctx context.Context) error {
	db, err := c.conn(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM backups`); err != nil {
		return fmt.Errorf("reset backups: %w", err)
	}
	return nil
}

func (c *SQLiteCatalog) Record(ctx context.Context, backup domain.Backup) error {
	const stmt = `
INSERT INTO backups (folder, name, stamp, documents, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(folder) DO UPDATE SET
  name=excluded.name,
  stamp=excluded.stamp,
  documents=excluded.documents,
  created_at=excluded.created_at;
`
	db, err := c.conn(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, stmt,
		backup.Folder,
		backup.Name,
		backup.Stamp,
		strings.Join(backup.Documents, ","),
		backup.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record backup: %w", err)
	}
	return nil
}

func (c *SQLiteCatalog) List(ctx context.Context) ([]domain.Backup, error) {
	db, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT folder, name, stamp, documents, created_at FROM backups ORDER BY stamp DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	defer rows.Close()

	out := []domain.Backup{}
	for rows.Next() {
		var backup domain.Backup
		var docs, createdAt string
		if err := rows.Scan(&backup.Folder, &backup.Name, &backup.Stamp, &docs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan backup: %w", err)
		}
		if docs != "" {
			backup.Documents = strings.Split(docs, ",")
		}
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse backup time %q: %w", createdAt, err)
		}
		backup.CreatedAt = parsed
		out = append(out, backup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate backups: %w", err)
	}
	return out, nil
}
