package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/commentview/internal/domain"
)

// FileSource reads the collections from JSON files in a directory
// (comments.json and users.json), using the same document shape as the
// remote service.
type FileSource struct {
	dir string
}

// NewFileSource creates a source reading from dir.
func NewFileSource(dir string) (*FileSource, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("file source: directory cannot be empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("file source: %s is not a directory", dir)
	}
	return &FileSource{dir: dir}, nil
}

// FetchRecords implements Source.
func (s *FileSource) FetchRecords(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	if err := s.readJSON(ctx, CommentsPath, &records); err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

// FetchProfile implements Source.
func (s *FileSource) FetchProfile(ctx context.Context) (domain.Profile, error) {
	var users []domain.Profile
	if err := s.readJSON(ctx, UsersPath, &users); err != nil {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return firstProfile(users)
}

func (s *FileSource) readJSON(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
