package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileProvider stores each key as <dir>/<key>.json.
//
// Writes go through a unique temp file + atomic rename so a failed or
// interrupted write can never corrupt the previously stored value.
type FileProvider struct {
	Dir string
}

func (p *FileProvider) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid store key: %q", key)
	}
	return filepath.Join(p.Dir, key+".json"), nil
}

func (p *FileProvider) Get(key string) ([]byte, bool, error) {
	path, err := p.path(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (p *FileProvider) Put(key string, raw []byte) error {
	path, err := p.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	return atomicWriteFile(p.Dir, key+".json.*.tmp", path, raw, 0o644)
}

func (p *FileProvider) Delete(key string) error {
	path, err := p.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (p *FileProvider) Close() error { return nil }

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
