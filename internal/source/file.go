package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"fixhub/pkg/models"
)

// File reads the catalog from a local JSON file (a plain array of
// entries, the same shape catalog-server serves).
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Name() string { return "file:" + f.Path }

func (f *File) FetchAll(_ context.Context) ([]models.Entry, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", f.Path, err)
	}
	return clean(entries), nil
}
