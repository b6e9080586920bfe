package services

import (
	"context"

	"commsagent/internal/domain/models"
)

// Collaborator is the AI drafting boundary: an opaque external capability
// with exactly two operations. The core only requires that returned data
// validates against the domain model; any hosted model provider can sit
// behind this interface without touching the scheduler or lifecycle logic.
type Collaborator interface {
	// Plan produces a roughly-three-month communications plan for the
	// project. Entries come back without IDs; the lifecycle service assigns
	// them when the plan is stored.
	Plan(ctx context.Context, project *models.Project) (*models.CommsPlan, error)

	// Draft produces email text for one plan entry and one audience,
	// honoring that audience's tone and length guidelines. The word limits
	// are a prompt-level contract with the collaborator; the core does not
	// enforce them locally.
	Draft(ctx context.Context, project *models.Project, comm *models.PlannedComm, audience models.Audience) (*models.Draft, error)
}
