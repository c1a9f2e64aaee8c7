package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirKV stores one file per key under a shared directory. Writes go through
// a temp file and rename, so a reader never observes a half-written value.
// This is the cross-process backend: any process that can see the directory
// sees the namespace.
type DirKV struct {
	dir string
}

// OpenDir opens (creating if needed) a directory-backed namespace.
func OpenDir(dir string) (*DirKV, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to open namespace %s: %w", dir, err)
	}
	return &DirKV{dir: dir}, nil
}

// Dir returns the namespace directory path.
func (s *DirKV) Dir() string {
	return s.dir
}

func (s *DirKV) keyPath(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *DirKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, true, nil
}

func (s *DirKV) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage key %s: %w", key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	if err := os.Rename(tmpPath, s.keyPath(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

func (s *DirKV) Delete(key string) error {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *DirKV) Close() error {
	return nil
}
