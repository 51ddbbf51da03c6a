package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sajidmehmood/demo-bank-ledger/internal/interfaces"
)

// FileKVStore keeps all records in a single JSON file, one key per
// entry. Writes go through a temp file and rename so a crash mid-write
// never corrupts the previous snapshot.
type FileKVStore struct {
	path   string
	values map[string]string
}

// New opens (or starts) a file-backed store at path. A missing file
// yields an empty store; an unreadable or malformed file also yields
// an empty store, since every record in it would fail its own parse
// anyway. Only non-NotExist I/O errors are reported.
func New(path string) (*FileKVStore, error) {
	s := &FileKVStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("could not read store file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileKVStore) Get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", interfaces.ErrNotFound
	}
	return v, nil
}

func (s *FileKVStore) Set(key, value string) error {
	s.values[key] = value
	return s.flush()
}

func (s *FileKVStore) Delete(key string) error {
	delete(s.values, key)
	return s.flush()
}

// flush rewrites the whole snapshot atomically: write to a temp file,
// then rename over the previous one.
func (s *FileKVStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

var _ interfaces.KVStore = (*FileKVStore)(nil)
