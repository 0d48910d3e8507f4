package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// FileConfig holds configuration for the JSON file store
type FileConfig struct {
	// Dir is the directory holding one <collection>.json file per collection
	Dir string
}

// fileStore implements the Store interface with one JSON file per collection
type fileStore struct {
	dir string
}

// NewFile creates a file-backed store, creating the data directory if needed
func NewFile(cfg *FileConfig) (*fileStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Dir == "" {
		return nil, errors.New("data directory cannot be empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &fileStore{dir: cfg.Dir}, nil
}

func (s *fileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads the collection file, seeding it with the default when missing
func (s *fileStore) Load(ctx context.Context, input *LoadInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path(input.Collection))
	if errors.Is(err, os.ErrNotExist) {
		data, err = encode(input.Default)
		if err != nil {
			return fmt.Errorf("failed to marshal default %s: %w", input.Collection, err)
		}
		if err := s.write(input.Collection, data); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to read %s: %w", input.Collection, err)
	}

	// Data files are edited by hand during the meet; tolerate comments and trailing commas
	if err := json.Unmarshal(jsonc.ToJSON(data), input.Target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", input.Collection, err)
	}
	return nil
}

// Save atomically replaces the collection file
func (s *fileStore) Save(ctx context.Context, input *SaveInput) error {
	if err := input.validate(); err != nil {
		return err
	}
	data, err := encode(input.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", input.Collection, err)
	}
	return s.write(input.Collection, data)
}

// write replaces the collection file via a synced temporary file and rename,
// so a crash leaves either the old or the new document on disk.
func (s *fileStore) write(collection string, data []byte) error {
	path := s.path(collection)
	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", collection, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("failed to write %s: %w", collection, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("failed to sync %s: %w", collection, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("failed to close %s: %w", collection, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("failed to rename %s into place: %w", collection, err)
	}
	return nil
}
