package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
)

// fakeStore is an in-memory ProjectStore. Load returns a deep copy so tests
// can verify that only saved mutations are visible.
type fakeStore struct {
	file    *models.ProjectFile
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore(projects ...*models.Project) *fakeStore {
	return &fakeStore{file: &models.ProjectFile{Projects: projects}}
}

func (s *fakeStore) Load(ctx context.Context) (*models.ProjectFile, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	data, err := json.Marshal(s.file)
	if err != nil {
		return nil, err
	}
	var copied models.ProjectFile
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	if copied.Projects == nil {
		copied.Projects = []*models.Project{}
	}
	return &copied, nil
}

func (s *fakeStore) Save(ctx context.Context, file *models.ProjectFile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.file = file
	s.saves++
	return nil
}

// fakeCollaborator returns canned plans and drafts.
type fakeCollaborator struct {
	plan     *models.CommsPlan
	planErr  error
	draftErr error
	drafted  []models.Audience
}

func (c *fakeCollaborator) Plan(ctx context.Context, project *models.Project) (*models.CommsPlan, error) {
	if c.planErr != nil {
		return nil, c.planErr
	}
	data, err := json.Marshal(c.plan)
	if err != nil {
		return nil, err
	}
	var copied models.CommsPlan
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	return &copied, nil
}

func (c *fakeCollaborator) Draft(ctx context.Context, project *models.Project, comm *models.PlannedComm, aud models.Audience) (*models.Draft, error) {
	if c.draftErr != nil {
		return nil, c.draftErr
	}
	c.drafted = append(c.drafted, aud)
	return &models.Draft{
		ID:       "draft-" + string(aud),
		Audience: aud,
		Subject:  "Subject for " + string(aud),
		Body:     "Body for " + string(aud),
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}
