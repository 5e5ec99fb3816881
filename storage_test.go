package powerbill

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "book.json")
	storage := NewFileStorage(path)

	// first run: nothing stored yet.
	if _, err := storage.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() on first run error = %v, want fs.ErrNotExist", err)
	}

	// Save creates the parent directory.
	doc := []byte(`{"profiles":[],"apiKey":""}`)
	if err := storage.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := storage.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Load() = %s, want %s", got, doc)
	}
}

func TestFileStorage_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	storage := NewFileStorage(path)

	storage.Save([]byte("first"))
	storage.Save([]byte("second"))

	got, err := storage.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load() = %s, want the last saved document", got)
	}
}
