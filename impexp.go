package powerbill

import (
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the backup/restore format.
// It is the same document the book persists: human readable, single file,
// and safe to restore into another instance of the tool.

// Export writes the whole book to 'w' in the backup format.
func (b *Book) Export(w io.Writer) error {
	data, err := EncodeAppData(b.data)
	if err != nil {
		return fmt.Errorf("cannot export book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// Import reads a backup from 'r' and wholesale replaces the book's data
// with it. There is no field-level merge. A malformed document fails the
// whole operation and leaves the book untouched.
func (b *Book) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return &ImportError{Cause: err}
	}
	data, err := DecodeAppData(raw)
	if err != nil {
		return &ImportError{Cause: err}
	}
	b.data = data
	b.save()
	return nil
}

// ExportFilename derives the timestamped default file name for a backup
// taken at 'now'.
func ExportFilename(now time.Time) string {
	return "powerbill_backup_" + now.Format("20060102_150405") + ".json"
}
