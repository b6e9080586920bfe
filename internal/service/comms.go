package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"commsagent/internal/config"
	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
	"commsagent/internal/domain/repositories"
	"commsagent/internal/domain/services"
	"commsagent/internal/metrics"
	"commsagent/internal/schedule"
)

// commsService implements the CommsService interface
type commsService struct {
	store        repositories.ProjectStore
	collaborator services.Collaborator
	logger       *slog.Logger
	now          func() time.Time
}

// NewCommsService creates a new communications lifecycle service
func NewCommsService(
	store repositories.ProjectStore,
	collaborator services.Collaborator,
	logger *slog.Logger,
) services.CommsService {
	return &commsService{
		store:        store,
		collaborator: collaborator,
		logger:       logger,
		now:          time.Now,
	}
}

// GeneratePlan asks the collaborator for a fresh plan and replaces the
// project's stored plan with it. Collaborator failures surface unchanged;
// nothing is persisted on failure and nothing is retried.
func (s *commsService) GeneratePlan(ctx context.Context, projectID string) (*models.CommsPlan, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	project := file.Find(projectID)
	if project == nil {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}

	plan, err := s.collaborator.Plan(ctx, project)
	if err != nil {
		return nil, err
	}

	// Entries arrive without IDs; assign them before the plan is stored so
	// draft and send operations have something stable to reference.
	for i := range plan.PlannedComms {
		plan.PlannedComms[i].ID = models.NewID(models.PlannedCommIDPrefix)
	}
	if plan.GeneratedDate == "" {
		plan.GeneratedDate = s.now().Format(models.DateLayout)
	}
	if plan.PlanningHorizon == "" {
		plan.PlanningHorizon = config.PlanningHorizon
	}

	project.CommsPlan = *plan

	if err := s.store.Save(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("communications plan stored",
		"project_id", project.ID,
		"entries", len(plan.PlannedComms),
	)

	return plan, nil
}

// GenerateDrafts produces one draft per audience of the plan entry and
// attaches them to it. Fails whole: if any audience's draft fails, nothing
// is persisted.
func (s *commsService) GenerateDrafts(ctx context.Context, projectID, plannedCommID string) ([]models.Draft, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	project := file.Find(projectID)
	if project == nil {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}

	comm := project.FindPlannedComm(plannedCommID)
	if comm == nil {
		return nil, &domain.NotFoundError{Message: "planned communication not found"}
	}

	drafts := make([]models.Draft, 0, len(comm.Audiences))
	for _, aud := range comm.Audiences {
		draft, err := s.collaborator.Draft(ctx, project, comm, aud)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *draft)
	}

	for _, draft := range drafts {
		comm.AttachDraft(draft)
		metrics.IncrementDraftsGenerated(string(draft.Audience))
	}

	if err := s.store.Save(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("drafts generated",
		"project_id", project.ID,
		"planned_comm_id", comm.ID,
		"count", len(drafts),
	)

	return drafts, nil
}

// RecordSend marks the plan entry sent and appends a history entry carrying
// the final body.
//
// Deliberately not idempotent: sending the same entry twice appends two
// history entries. Duplicate detection is left to the caller.
func (s *commsService) RecordSend(ctx context.Context, req *services.RecordSendRequest) (*models.HistoryEntry, error) {
	if err := s.validateSendRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	project := file.Find(req.ProjectID)
	if project == nil {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}

	comm := project.FindPlannedComm(req.PlannedCommID)
	if comm == nil {
		return nil, &domain.NotFoundError{Message: "planned communication not found"}
	}

	commType := req.Type
	if commType == "" {
		commType = comm.Type
	}

	comm.Status = models.CommSent

	entry := models.HistoryEntry{
		ID:            models.NewID(models.HistoryIDPrefix),
		DateSent:      s.now().Format(models.DateLayout),
		Type:          commType,
		Audience:      req.Audience,
		Subject:       req.Subject,
		Summary:       models.Summarize(req.Body),
		KeyMessages:   req.KeyPoints,
		SentTo:        project.Stakeholders.ForAudience(req.Audience),
		PlannedCommID: comm.ID,
	}
	project.CommsHistory = append(project.CommsHistory, entry)

	if err := s.store.Save(ctx, file); err != nil {
		return nil, err
	}

	metrics.IncrementCommsSent(string(entry.Audience), string(entry.Type))
	s.logger.Info("communication recorded as sent",
		"project_id", project.ID,
		"planned_comm_id", comm.ID,
		"audience", entry.Audience,
		"history_id", entry.ID,
	)

	return &entry, nil
}

// AddHistoryEntry appends a manually recorded communication to the project's
// history, outside the planned lifecycle.
func (s *commsService) AddHistoryEntry(ctx context.Context, projectID string, req *services.AddHistoryRequest) (*models.HistoryEntry, error) {
	if err := s.validateHistoryRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	project := file.Find(projectID)
	if project == nil {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}

	dateSent := req.DateSent
	if dateSent == "" {
		dateSent = s.now().Format(models.DateLayout)
	}
	commType := req.Type
	if commType == "" {
		commType = models.CommStatusUpdate
	}

	entry := models.HistoryEntry{
		ID:          models.NewID(models.HistoryIDPrefix),
		DateSent:    dateSent,
		Type:        commType,
		Audience:    req.Audience,
		Subject:     req.Subject,
		Summary:     req.Summary,
		KeyMessages: req.KeyMessages,
		SentTo:      req.SentTo,
	}
	project.CommsHistory = append(project.CommsHistory, entry)

	if err := s.store.Save(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("manual history entry added",
		"project_id", project.ID,
		"history_id", entry.ID,
		"audience", entry.Audience,
	)

	return &entry, nil
}

// Due lists pending communications across all projects due within the
// default window of now, most urgent first.
func (s *commsService) Due(ctx context.Context, now time.Time) ([]services.DueComm, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	due := schedule.DueWithin(file.Projects, now, config.DueWindowDays)

	out := make([]services.DueComm, 0, len(due))
	for _, d := range due {
		out = append(out, services.DueComm{
			ProjectID:    d.Project.ID,
			ProjectName:  d.Project.Name,
			PlannedComm:  *d.Comm,
			DaysUntilDue: d.DaysUntilDue,
		})
	}

	return out, nil
}

func (s *commsService) validateSendRequest(req *services.RecordSendRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.PlannedCommID, validation.Required),
		validation.Field(&req.Audience, validation.Required, validation.By(validateAudience)),
		validation.Field(&req.Subject, validation.Required, validation.Length(1, config.MaxSubjectLength)),
		validation.Field(&req.Body, validation.Required),
		validation.Field(&req.Type, validation.By(validateOptionalCommType)),
	)
}

func (s *commsService) validateHistoryRequest(req *services.AddHistoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Audience, validation.Required, validation.By(validateAudience)),
		validation.Field(&req.Subject, validation.Required, validation.Length(1, config.MaxSubjectLength)),
		validation.Field(&req.DateSent, validation.Date(models.DateLayout)),
		validation.Field(&req.Type, validation.By(validateOptionalCommType)),
	)
}

func validateAudience(value interface{}) error {
	aud, ok := value.(models.Audience)
	if !ok {
		return fmt.Errorf("audience must be a string")
	}
	if !aud.Valid() {
		return fmt.Errorf("audience must be one of users, developers, management")
	}
	return nil
}

func validateOptionalCommType(value interface{}) error {
	t, ok := value.(models.CommType)
	if !ok {
		return fmt.Errorf("type must be a string")
	}
	if t == "" || t.Valid() {
		return nil
	}
	return fmt.Errorf("unknown communication type %q", t)
}
