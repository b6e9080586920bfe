package services

import (
	"context"

	"commsagent/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Name           string               `json:"name"`
	Owner          string               `json:"owner"`
	Status         models.ProjectStatus `json:"status"`
	Description    string               `json:"description"`
	BusinessValue  string               `json:"business_value"`
	StartDate      string               `json:"start_date"`
	CurrentPhase   string               `json:"current_phase"`
	ExpectedLaunch string               `json:"expected_launch"`
	Stakeholders   models.Stakeholders  `json:"stakeholders"`
	RecentUpdates  []string             `json:"recent_updates"`
	Milestones     []models.Milestone   `json:"upcoming_milestones"`
}

// UpdateProjectRequest represents a partial update of a project's mutable
// fields. Nil pointers leave the current value unchanged.
type UpdateProjectRequest struct {
	Name           *string               `json:"name"`
	Owner          *string               `json:"owner"`
	Status         *models.ProjectStatus `json:"status"`
	Description    *string               `json:"description"`
	BusinessValue  *string               `json:"business_value"`
	CurrentPhase   *string               `json:"current_phase"`
	ExpectedLaunch *string               `json:"expected_launch"`
	Stakeholders   *models.Stakeholders  `json:"stakeholders"`
	RecentUpdates  []string              `json:"recent_updates"`
	Milestones     []models.Milestone    `json:"upcoming_milestones"`
}

// ProjectSummary is a list row: the project plus dashboard annotations.
type ProjectSummary struct {
	*models.Project
	LastCommDate string `json:"last_comm_date,omitempty"`
}

// ProjectService defines business logic operations for projects.
// Projects are never deleted in normal operation.
type ProjectService interface {
	// CreateProject creates a new project with a generated ID and an empty
	// plan and history
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// ListProjects retrieves all projects annotated with the date of their
	// most recent communication
	ListProjects(ctx context.Context) ([]ProjectSummary, error)

	// UpdateProject applies a partial update to a project
	UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*models.Project, error)
}
