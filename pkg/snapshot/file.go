package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/noah-isme/acc-api/internal/models"
)

// File stores the snapshot as a single JSON file on disk. Writes go through a
// temp file and rename so a crash mid-write never leaves a torn snapshot.
type File struct {
	path string
}

// NewFile ensures the parent directory exists and returns a file-backed store.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = "./data/ledger.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &File{path: path}, nil
}

// Load implements Store.
func (f *File) Load(ctx context.Context) (*models.Ledger, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return Decode(data)
}

// Save implements Store.
func (f *File) Save(ctx context.Context, ledger models.Ledger) error {
	data, err := Encode(ledger)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}
	return nil
}
