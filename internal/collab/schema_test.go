package collab

import (
	"errors"
	"testing"

	"commsagent/internal/domain"
	"commsagent/internal/domain/models"
)

func TestParsePlanResponse(t *testing.T) {
	raw := `Here is your plan:
{
  "generated_date": "2025-08-20",
  "planning_horizon": "3 months",
  "planned_communications": [
    {
      "target_date": "2025-09-03",
      "type": "status_update",
      "audiences": ["developers"],
      "reason": "Regular status update",
      "key_topics": ["Progress", "Blockers"],
      "status": "pending"
    },
    {
      "target_date": "2025-09-20",
      "type": "management_update",
      "audiences": ["management"],
      "reason": "Monthly executive update",
      "key_topics": ["Budget", "Risks"],
      "status": "sent"
    }
  ]
}`

	plan, err := ParsePlanResponse(raw)
	if err != nil {
		t.Fatalf("ParsePlanResponse() unexpected error: %v", err)
	}

	if plan.GeneratedDate != "2025-08-20" {
		t.Errorf("GeneratedDate = %s, want 2025-08-20", plan.GeneratedDate)
	}
	if plan.PlanningHorizon != "3 months" {
		t.Errorf("PlanningHorizon = %s, want 3 months", plan.PlanningHorizon)
	}
	if len(plan.PlannedComms) != 2 {
		t.Fatalf("got %d planned comms, want 2", len(plan.PlannedComms))
	}
	if plan.PlannedComms[0].Type != models.CommStatusUpdate {
		t.Errorf("comm[0].Type = %s, want status_update", plan.PlannedComms[0].Type)
	}
	if got := plan.PlannedComms[0].Audiences; len(got) != 1 || got[0] != models.AudienceDevelopers {
		t.Errorf("comm[0].Audiences = %v, want [developers]", got)
	}
	// A fresh plan is all pending, even if the model claimed otherwise.
	for i, comm := range plan.PlannedComms {
		if comm.Status != models.CommPending {
			t.Errorf("comm[%d].Status = %s, want pending", i, comm.Status)
		}
	}
	// IDs are assigned by the lifecycle service, not the parser.
	for i, comm := range plan.PlannedComms {
		if comm.ID != "" {
			t.Errorf("comm[%d].ID = %q, want empty", i, comm.ID)
		}
	}
}

func TestParsePlanResponseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "no structure at all",
			raw:  "I had trouble generating a plan, please try again.",
		},
		{
			name: "bad target date",
			raw:  `{"planned_communications": [{"target_date": "soon", "type": "status_update", "audiences": ["users"]}]}`,
		},
		{
			name: "unknown type",
			raw:  `{"planned_communications": [{"target_date": "2025-09-03", "type": "press_release", "audiences": ["users"]}]}`,
		},
		{
			name: "unknown audience",
			raw:  `{"planned_communications": [{"target_date": "2025-09-03", "type": "status_update", "audiences": ["investors"]}]}`,
		},
		{
			name: "missing audiences",
			raw:  `{"planned_communications": [{"target_date": "2025-09-03", "type": "status_update"}]}`,
		},
		{
			name: "wrong payload shape",
			raw:  `{"planned_communications": "lots of them"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlanResponse(tt.raw)
			if err == nil {
				t.Fatal("ParsePlanResponse() expected error, got nil")
			}
			if !errors.Is(err, domain.ErrCollaborator) {
				t.Errorf("want ErrCollaborator, got %v", err)
			}
		})
	}
}

func TestParseDraftResponse(t *testing.T) {
	raw := "```json\n" + `{
  "subject": "Checkout beta update",
  "body": "Hi all, the beta is at 20% rollout.",
  "key_points": ["20% rollout", "no regressions"]
}` + "\n```"

	draft, err := ParseDraftResponse(raw, models.AudienceUsers)
	if err != nil {
		t.Fatalf("ParseDraftResponse() unexpected error: %v", err)
	}

	if draft.Subject != "Checkout beta update" {
		t.Errorf("Subject = %s", draft.Subject)
	}
	if draft.Audience != models.AudienceUsers {
		t.Errorf("Audience = %s, want users", draft.Audience)
	}
	if draft.ID == "" {
		t.Error("draft ID not assigned")
	}
	if len(draft.KeyPoints) != 2 {
		t.Errorf("KeyPoints = %v, want 2 entries", draft.KeyPoints)
	}
}

func TestParseDraftResponseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "no recognizable structure",
			raw:  "Dear team, here is your update. Best regards.",
		},
		{
			name: "missing body",
			raw:  `{"subject": "Update"}`,
		},
		{
			name: "missing subject",
			raw:  `{"body": "Hello"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDraftResponse(tt.raw, models.AudienceUsers)
			if err == nil {
				t.Fatal("ParseDraftResponse() expected error, got nil")
			}
			if !errors.Is(err, domain.ErrCollaborator) {
				t.Errorf("want ErrCollaborator, got %v", err)
			}
		})
	}
}
