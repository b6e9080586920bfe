package services

import (
	"context"
	"time"

	"commsagent/internal/domain/models"
)

// DueComm pairs a pending plan entry with its owning project for the due
// communications view.
type DueComm struct {
	ProjectID    string             `json:"project_id"`
	ProjectName  string             `json:"project_name"`
	PlannedComm  models.PlannedComm `json:"planned_comm"`
	DaysUntilDue int                `json:"days_until_due"`
}

// RecordSendRequest marks a drafted communication as sent for one audience.
// Body carries the final (possibly edited) text.
type RecordSendRequest struct {
	ProjectID     string          `json:"project_id"`
	PlannedCommID string          `json:"planned_comm_id"`
	Audience      models.Audience `json:"audience"`
	Type          models.CommType `json:"type"`
	Subject       string          `json:"subject"`
	Body          string          `json:"body"`
	KeyPoints     []string        `json:"key_points"`
}

// AddHistoryRequest appends a manually recorded communication to a project's
// history, outside the planned lifecycle.
type AddHistoryRequest struct {
	DateSent    string          `json:"date_sent"`
	Type        models.CommType `json:"type"`
	Audience    models.Audience `json:"audience"`
	Subject     string          `json:"subject"`
	Summary     string          `json:"summary"`
	KeyMessages []string        `json:"key_messages"`
	SentTo      []string        `json:"sent_to"`
}

// CommsService defines the plan/draft/send lifecycle over the project store.
type CommsService interface {
	// GeneratePlan asks the collaborator for a fresh plan, replaces the
	// project's stored plan with it, and returns the updated plan. Not
	// retried on collaborator failure.
	GeneratePlan(ctx context.Context, projectID string) (*models.CommsPlan, error)

	// GenerateDrafts produces one draft per audience of the plan entry and
	// attaches them to it, replacing earlier drafts for the same audiences.
	GenerateDrafts(ctx context.Context, projectID, plannedCommID string) ([]models.Draft, error)

	// RecordSend marks the plan entry sent and appends a history entry with
	// the final body and the current date. Deliberately not idempotent: a
	// duplicate send appends a second history entry.
	RecordSend(ctx context.Context, req *RecordSendRequest) (*models.HistoryEntry, error)

	// AddHistoryEntry appends a manual history entry to the project.
	AddHistoryEntry(ctx context.Context, projectID string, req *AddHistoryRequest) (*models.HistoryEntry, error)

	// Due lists pending communications across all projects due within the
	// default window of now, most urgent first.
	Due(ctx context.Context, now time.Time) ([]DueComm, error)
}
