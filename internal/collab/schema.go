package collab

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
)

// Wire shapes for collaborator payloads. Kept separate from the domain
// model so a response is fully validated before anything touches a project
// record.

type planPayload struct {
	GeneratedDate   string               `json:"generated_date"`
	PlanningHorizon string               `json:"planning_horizon"`
	PlannedComms    []plannedCommPayload `json:"planned_communications"`
}

type plannedCommPayload struct {
	TargetDate string   `json:"target_date"`
	Type       string   `json:"type"`
	Audiences  []string `json:"audiences"`
	Reason     string   `json:"reason"`
	KeyTopics  []string `json:"key_topics"`
	Status     string   `json:"status"`
}

type draftPayload struct {
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	KeyPoints []string `json:"key_points"`
}

func commTypeValues() []interface{} {
	vals := make([]interface{}, 0, len(models.CommTypes))
	for _, t := range models.CommTypes {
		vals = append(vals, string(t))
	}
	return vals
}

func audienceValues() []interface{} {
	vals := make([]interface{}, 0, len(models.Audiences))
	for _, a := range models.Audiences {
		vals = append(vals, string(a))
	}
	return vals
}

func (p plannedCommPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.TargetDate, validation.Required, validation.Date(models.DateLayout)),
		validation.Field(&p.Type, validation.Required, validation.In(commTypeValues()...)),
		validation.Field(&p.Audiences, validation.Required, validation.Each(validation.In(audienceValues()...))),
	)
}

func (p draftPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Subject, validation.Required),
		validation.Field(&p.Body, validation.Required),
	)
}

// ParsePlanResponse extracts, validates, and converts a plan completion.
// Any failure is a CollaboratorError; nothing is salvaged from a response
// that does not validate whole.
func ParsePlanResponse(raw string) (*models.CommsPlan, error) {
	data, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, &domain.CollaboratorError{Message: "plan response has no JSON payload", Cause: err}
	}

	var payload planPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &domain.CollaboratorError{Message: "plan response does not match plan schema", Cause: err}
	}

	for i, comm := range payload.PlannedComms {
		if err := comm.Validate(); err != nil {
			return nil, &domain.CollaboratorError{
				Message: fmt.Sprintf("plan entry %d failed validation", i),
				Cause:   err,
			}
		}
	}

	plan := &models.CommsPlan{
		GeneratedDate:   payload.GeneratedDate,
		PlanningHorizon: payload.PlanningHorizon,
		PlannedComms:    make([]models.PlannedComm, 0, len(payload.PlannedComms)),
	}
	for _, comm := range payload.PlannedComms {
		audiences := make([]models.Audience, 0, len(comm.Audiences))
		for _, a := range comm.Audiences {
			audiences = append(audiences, models.Audience(a))
		}
		// A fresh plan is all pending regardless of what the model wrote.
		plan.PlannedComms = append(plan.PlannedComms, models.PlannedComm{
			TargetDate: comm.TargetDate,
			Type:       models.CommType(comm.Type),
			Audiences:  audiences,
			Reason:     comm.Reason,
			KeyTopics:  comm.KeyTopics,
			Status:     models.CommPending,
		})
	}

	return plan, nil
}

// ParseDraftResponse extracts, validates, and converts a draft completion
// for the given audience.
func ParseDraftResponse(raw string, aud models.Audience) (*models.Draft, error) {
	data, err := ExtractJSONObject(raw)
	if err != nil {
		return nil, &domain.CollaboratorError{Message: "draft response has no JSON payload", Cause: err}
	}

	var payload draftPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &domain.CollaboratorError{Message: "draft response does not match draft schema", Cause: err}
	}
	if err := payload.Validate(); err != nil {
		return nil, &domain.CollaboratorError{Message: "draft response failed validation", Cause: err}
	}

	return &models.Draft{
		ID:        uuid.NewString(),
		Audience:  aud,
		Subject:   payload.Subject,
		Body:      payload.Body,
		KeyPoints: payload.KeyPoints,
	}, nil
}
