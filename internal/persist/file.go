// internal/persist/file.go
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per namespace under a state directory.
// Writes go through a temp file plus rename, so a crash mid-write leaves the
// previous snapshot intact.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(namespace string) string {
	// Per-user namespaces like "cart-storage:u1" must stay within the dir.
	name := strings.ReplaceAll(namespace, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(namespace string, v interface{}) error {
	data, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read snapshot %s: %w", namespace, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", namespace, err)
	}
	return nil
}

func (s *FileStore) Save(namespace string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", namespace, err)
	}

	target := s.path(namespace)
	tmp, err := os.CreateTemp(s.dir, namespace+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot %s: %w", namespace, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot %s: %w", namespace, err)
	}
	return nil
}

func (s *FileStore) Delete(namespace string) error {
	err := os.Remove(s.path(namespace))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot %s: %w", namespace, err)
	}
	return nil
}
