package powerbill

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the durable byte store the book persists into. It is the
// local-storage equivalent of the browser variant of this tool: a single
// opaque document, read once at startup and rewritten after mutations.
type Storage interface {
	// Load returns the stored document, or an error wrapping fs.ErrNotExist
	// when nothing has been stored yet (first run).
	Load() ([]byte, error)
	// Save overwrites the stored document.
	Save(data []byte) error
}

// FileStorage stores the document in a single file.
type FileStorage struct {
	Path string
}

// NewFileStorage returns a Storage backed by the file at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read book file %q: %w", s.Path, err)
	}
	return data, nil
}

func (s *FileStorage) Save(data []byte) error {
	// Ensure the directory for the book file exists.
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", s.Path, err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("could not write book file %q: %w", s.Path, err)
	}
	return nil
}

// MemStorage keeps the document in memory. Used in tests and as a scratch
// book.
type MemStorage struct {
	Data    []byte
	LoadErr error // returned by Load when set
	SaveErr error // returned by Save when set
	Saves   int   // number of successful Save calls
}

func (s *MemStorage) Load() ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Data == nil {
		return nil, fmt.Errorf("no document stored: %w", os.ErrNotExist)
	}
	return s.Data, nil
}

func (s *MemStorage) Save(data []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Data = append([]byte(nil), data...)
	s.Saves++
	return nil
}
