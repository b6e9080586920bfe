package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"commsagent/internal/config"
	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
	"commsagent/internal/domain/repositories"
	"commsagent/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	store  repositories.ProjectStore
	logger *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(store repositories.ProjectStore, logger *slog.Logger) services.ProjectService {
	return &projectService{
		store:  store,
		logger: logger,
	}
}

// CreateProject creates a new project with an empty plan and history
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusPlanning
	}
	startDate := req.StartDate
	if startDate == "" {
		startDate = time.Now().Format(models.DateLayout)
	}

	project := &models.Project{
		ID:                 models.NewID(models.ProjectIDPrefix),
		Name:               strings.TrimSpace(req.Name),
		Owner:              req.Owner,
		Status:             status,
		Description:        req.Description,
		BusinessValue:      req.BusinessValue,
		StartDate:          startDate,
		CurrentPhase:       req.CurrentPhase,
		ExpectedLaunch:     req.ExpectedLaunch,
		Stakeholders:       req.Stakeholders,
		RecentUpdates:      req.RecentUpdates,
		UpcomingMilestones: req.Milestones,
		CommsHistory:       []models.HistoryEntry{},
		CommsPlan: models.CommsPlan{
			PlannedComms: []models.PlannedComm{},
		},
	}
	if project.RecentUpdates == nil {
		project.RecentUpdates = []string{}
	}
	if project.UpcomingMilestones == nil {
		project.UpcomingMilestones = []models.Milestone{}
	}

	file.Projects = append(file.Projects, project)

	if err := s.store.Save(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"status", project.Status,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	project := file.Find(id)
	if project == nil {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}

	return project, nil
}

// ListProjects retrieves all projects annotated with the date of their most
// recent communication
func (s *projectService) ListProjects(ctx context.Context) ([]services.ProjectSummary, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]services.ProjectSummary, 0, len(file.Projects))
	for _, p := range file.Projects {
		summaries = append(summaries, services.ProjectSummary{
			Project:      p,
			LastCommDate: p.LastCommDate(),
		})
	}

	return summaries, nil
}

// UpdateProject applies a partial update to a project's mutable fields
func (s *projectService) UpdateProject(ctx context.Context, id string, req *services.UpdateProjectRequest) (*models.Project, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	project := file.Find(id)
	if project == nil {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}

	if req.Name != nil {
		project.Name = strings.TrimSpace(*req.Name)
	}
	if req.Owner != nil {
		project.Owner = *req.Owner
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.BusinessValue != nil {
		project.BusinessValue = *req.BusinessValue
	}
	if req.CurrentPhase != nil {
		project.CurrentPhase = *req.CurrentPhase
	}
	if req.ExpectedLaunch != nil {
		project.ExpectedLaunch = *req.ExpectedLaunch
	}
	if req.Stakeholders != nil {
		project.Stakeholders = *req.Stakeholders
	}
	if req.RecentUpdates != nil {
		project.RecentUpdates = req.RecentUpdates
	}
	if req.Milestones != nil {
		project.UpcomingMilestones = req.Milestones
	}

	if err := s.store.Save(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
	)

	return project, nil
}

// validateCreateRequest validates a create project request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(validateProjectName),
		),
		validation.Field(&req.Status, validation.By(validateOptionalStatus)),
		validation.Field(&req.StartDate, validation.Date(models.DateLayout)),
	)
}

// validateUpdateRequest validates an update project request
func (s *projectService) validateUpdateRequest(req *services.UpdateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.By(validateOptionalName),
		),
		validation.Field(&req.Status, validation.By(validateOptionalStatusPtr)),
	)
}

// validateProjectName rejects names that are empty after trimming
func validateProjectName(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return fmt.Errorf("name must be a string")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func validateOptionalName(value interface{}) error {
	name, ok := value.(*string)
	if !ok || name == nil {
		return nil
	}
	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(*name) > config.MaxProjectNameLength {
		return fmt.Errorf("name must be at most %d characters", config.MaxProjectNameLength)
	}
	return nil
}

func validateOptionalStatus(value interface{}) error {
	status, ok := value.(models.ProjectStatus)
	if !ok {
		return fmt.Errorf("status must be a string")
	}
	if status == "" || status.Valid() {
		return nil
	}
	return fmt.Errorf("status must be one of planning, active, completed")
}

func validateOptionalStatusPtr(value interface{}) error {
	status, ok := value.(*models.ProjectStatus)
	if !ok || status == nil {
		return nil
	}
	if status.Valid() {
		return nil
	}
	return fmt.Errorf("status must be one of planning, active, completed")
}
