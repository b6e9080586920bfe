package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commsagent/internal/domain/models"
	"commsagent/internal/domain/services"
)

func TestCreateProjectDefaults(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store, discardLogger())

	project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		Name:  "Payment Gateway",
		Owner: "dana",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(project.ID, "proj_"), "ID = %s", project.ID)
	assert.Len(t, project.ID, len("proj_")+8)
	assert.Equal(t, models.StatusPlanning, project.Status)
	assert.NotEmpty(t, project.StartDate)
	assert.NotNil(t, project.CommsHistory)
	assert.Empty(t, project.CommsHistory)
	assert.NotNil(t, project.CommsPlan.PlannedComms)
	assert.NotNil(t, project.RecentUpdates)
	assert.NotNil(t, project.UpcomingMilestones)

	// Persisted, not just returned.
	assert.Equal(t, 1, store.saves)
	require.Len(t, store.file.Projects, 1)
	assert.Equal(t, project.ID, store.file.Projects[0].ID)
}

func TestCreateProjectValidation(t *testing.T) {
	svc := NewProjectService(newFakeStore(), discardLogger())

	tests := []struct {
		name string
		req  *services.CreateProjectRequest
	}{
		{"empty name", &services.CreateProjectRequest{Name: ""}},
		{"whitespace name", &services.CreateProjectRequest{Name: "   "}},
		{"unknown status", &services.CreateProjectRequest{Name: "X", Status: "archived"}},
		{"bad start date", &services.CreateProjectRequest{Name: "X", StartDate: "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(context.Background(), tt.req)
			requireValidation(t, err)
		})
	}
}

func TestGetProject(t *testing.T) {
	store := newFakeStore(&models.Project{ID: "proj_11111111", Name: "A"})
	svc := NewProjectService(store, discardLogger())

	project, err := svc.GetProject(context.Background(), "proj_11111111")
	require.NoError(t, err)
	assert.Equal(t, "A", project.Name)

	_, err = svc.GetProject(context.Background(), "proj_missing1")
	requireNotFound(t, err)
}

func TestListProjectsLastCommDate(t *testing.T) {
	store := newFakeStore(
		&models.Project{
			ID:   "proj_11111111",
			Name: "With history",
			CommsHistory: []models.HistoryEntry{
				{DateSent: "2025-07-01", Subject: "First"},
				{DateSent: "2025-08-01", Subject: "Latest"},
			},
		},
		&models.Project{ID: "proj_22222222", Name: "Fresh"},
	)
	svc := NewProjectService(store, discardLogger())

	summaries, err := svc.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "2025-08-01", summaries[0].LastCommDate)
	assert.Empty(t, summaries[1].LastCommDate)
}

func TestUpdateProjectPartial(t *testing.T) {
	store := newFakeStore(&models.Project{
		ID:     "proj_11111111",
		Name:   "Old name",
		Owner:  "dana",
		Status: models.StatusPlanning,
	})
	svc := NewProjectService(store, discardLogger())

	name := "New name"
	status := models.StatusActive
	project, err := svc.UpdateProject(context.Background(), "proj_11111111", &services.UpdateProjectRequest{
		Name:   &name,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "New name", project.Name)
	assert.Equal(t, models.StatusActive, project.Status)
	assert.Equal(t, "dana", project.Owner, "untouched field must survive")
	assert.Equal(t, "New name", store.file.Projects[0].Name)
}

func TestUpdateProjectErrors(t *testing.T) {
	store := newFakeStore(&models.Project{ID: "proj_11111111", Name: "A"})
	svc := NewProjectService(store, discardLogger())

	_, err := svc.UpdateProject(context.Background(), "proj_missing1", &services.UpdateProjectRequest{})
	requireNotFound(t, err)

	empty := "  "
	_, err = svc.UpdateProject(context.Background(), "proj_11111111", &services.UpdateProjectRequest{Name: &empty})
	requireValidation(t, err)

	bad := models.ProjectStatus("archived")
	_, err = svc.UpdateProject(context.Background(), "proj_11111111", &services.UpdateProjectRequest{Status: &bad})
	requireValidation(t, err)
}
