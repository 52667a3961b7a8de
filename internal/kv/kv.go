// Package kv is the persistence layer for jobtrack: a small keyed store of JSON
// documents with two interchangeable backends (per-key files or a single SQLite
// database).
//
// Reads are fail-soft by design: a missing or unparsable value is
// indistinguishable from "not yet initialized" and degrades to the caller's
// default. Writes replace the value under a key wholesale; a failed write never
// affects other keys.
package kv

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Provider is a keyed byte store. Implementations are single-writer: jobtrack
// assumes one process mutates a store dir at a time (no cross-process locking).
type Provider interface {
	// Get returns the raw value for key. ok is false when the key is absent;
	// absence is not an error.
	Get(key string) (raw []byte, ok bool, err error)
	Put(key string, raw []byte) error
	Delete(key string) error
	Close() error
}

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

const envBackend = "JOBTRACK_STORE_BACKEND"

const sqliteFileName = "kv.sqlite"

// DetectBackend picks the store backend for dir.
//
// Priority: JOBTRACK_STORE_BACKEND env override, then autodetect (an existing
// kv.sqlite means the dir was created by the sqlite backend), then the file
// backend as default.
func DetectBackend(dir string) Backend {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envBackend))) {
	case string(BackendFile):
		return BackendFile
	case string(BackendSQLite):
		return BackendSQLite
	}
	if _, err := os.Stat(filepath.Join(dir, sqliteFileName)); err == nil {
		return BackendSQLite
	}
	return BackendFile
}

// Open returns a Provider for dir using the detected backend, creating the dir
// if needed.
func Open(dir string) (Provider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	switch DetectBackend(dir) {
	case BackendSQLite:
		return OpenSQLite(dir)
	default:
		return &FileProvider{Dir: dir}, nil
	}
}

// Load reads the value under key and decodes it into T. Absent, unreadable, or
// unparsable values all return def; load never raises to the caller.
func Load[T any](p Provider, key string, def T) T {
	raw, ok, err := p.Get(key)
	if err != nil || !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Save serializes v and writes it under key.
func Save[T any](p Provider, key string, v T) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return p.Put(key, b)
}
