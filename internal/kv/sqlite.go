package kv

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteProvider stores all keys in a single kv table inside <dir>/kv.sqlite.
type SQLiteProvider struct {
	db *sql.DB
}

func OpenSQLite(dir string) (*SQLiteProvider, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFileName))
	if err != nil {
		return nil, err
	}
	ctx := context.Background()

	// WAL enables one writer + many readers; busy_timeout avoids "database is
	// locked" flakiness when a stray second process touches the same store.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL,
		updated_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteProvider{db: db}, nil
}

func (p *SQLiteProvider) Get(key string) ([]byte, bool, error) {
	var v string
	err := p.db.QueryRowContext(context.Background(), `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (p *SQLiteProvider) Put(key string, raw []byte) error {
	nowMs := time.Now().UTC().UnixMilli()
	_, err := p.db.ExecContext(context.Background(),
		`INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		key, string(raw), nowMs)
	return err
}

func (p *SQLiteProvider) Delete(key string) error {
	_, err := p.db.ExecContext(context.Background(), `DELETE FROM kv WHERE k = ?`, key)
	return err
}

func (p *SQLiteProvider) Close() error { return p.db.Close() }
