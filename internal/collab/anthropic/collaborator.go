// Package anthropic implements the AI drafting collaborator on the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"commsagent/internal/audience"
	"commsagent/internal/collab"
	"commsagent/internal/config"
	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
	"commsagent/internal/domain/services"
	"commsagent/internal/metrics"
)

const maxTokens = 4096

// Collaborator calls Claude for plan and draft generation. Calls are
// synchronous, block for their duration, and are never retried; a failed
// call or an invalid payload surfaces as a CollaboratorError.
type Collaborator struct {
	client   *anthropic.Client
	profiles *audience.Registry
	model    string
	logger   *slog.Logger
}

var _ services.Collaborator = (*Collaborator)(nil)

// New creates a collaborator with the given API key and model.
func New(apiKey, model string, profiles *audience.Registry, logger *slog.Logger) (*Collaborator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &Collaborator{
		client:   &client,
		profiles: profiles,
		model:    model,
		logger:   logger,
	}, nil
}

// Plan asks the model for a communications plan over the configured horizon.
func (c *Collaborator) Plan(ctx context.Context, project *models.Project) (*models.CommsPlan, error) {
	prompt := collab.BuildPlanPrompt(project, config.PlanningHorizon, time.Now())

	text, err := c.complete(ctx, "plan", prompt)
	if err != nil {
		return nil, err
	}

	plan, err := collab.ParsePlanResponse(text)
	if err != nil {
		c.logger.Warn("plan response rejected",
			"project_id", project.ID,
			"error", err,
		)
		return nil, err
	}

	c.logger.Info("plan generated",
		"project_id", project.ID,
		"entries", len(plan.PlannedComms),
	)

	return plan, nil
}

// Draft asks the model for email text for one plan entry and audience.
func (c *Collaborator) Draft(ctx context.Context, project *models.Project, comm *models.PlannedComm, aud models.Audience) (*models.Draft, error) {
	profile, err := c.profiles.Get(aud)
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	prompt := collab.BuildDraftPrompt(project, comm, profile)

	text, err := c.complete(ctx, "draft", prompt)
	if err != nil {
		return nil, err
	}

	draft, err := collab.ParseDraftResponse(text, aud)
	if err != nil {
		c.logger.Warn("draft response rejected",
			"project_id", project.ID,
			"planned_comm_id", comm.ID,
			"audience", aud,
			"error", err,
		)
		return nil, err
	}

	return draft, nil
}

// complete runs one Messages call and concatenates the text blocks of the
// response.
func (c *Collaborator) complete(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: collab.SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordCollaboratorCall(operation, status, time.Since(start))

	if err != nil {
		return "", &domain.CollaboratorError{Message: "anthropic call failed", Cause: err}
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	return b.String(), nil
}
