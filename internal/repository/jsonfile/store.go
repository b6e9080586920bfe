package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
	"commsagent/internal/domain/repositories"
)

// Store persists the project document as a single JSON file.
//
// Every save rewrites the whole file. Last-writer-wins: there is no
// cross-process locking or optimistic-concurrency check, which is an
// accepted limitation of the single-user deployment model. The mutex only
// keeps concurrent request goroutines in this process from racing on the
// file; it does not prevent lost updates.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

var _ repositories.ProjectStore = (*Store)(nil)

// New creates a store backed by the JSON file at path. The file and its
// directory are created on first save.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load reads the full project document. A missing file loads as an empty
// document; unreadable or malformed content is a StoreError.
func (s *Store) Load(ctx context.Context) (*models.ProjectFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &models.ProjectFile{Projects: []*models.Project{}}, nil
		}
		return nil, &domain.StoreError{Message: "failed to read project store", Cause: err}
	}

	var file models.ProjectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &domain.StoreError{Message: "malformed project store", Cause: err}
	}
	if file.Projects == nil {
		file.Projects = []*models.Project{}
	}

	return &file, nil
}

// Save rewrites the full project document. The document is written to a
// temporary file and renamed into place so a crash mid-write cannot leave a
// truncated store behind.
func (s *Store) Save(ctx context.Context, file *models.ProjectFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &domain.StoreError{Message: "failed to create data directory", Cause: err}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return &domain.StoreError{Message: "failed to encode project store", Cause: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &domain.StoreError{Message: "failed to write project store", Cause: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &domain.StoreError{Message: "failed to replace project store", Cause: err}
	}

	s.logger.Debug("project store saved",
		"path", s.path,
		"projects", len(file.Projects),
	)

	return nil
}
