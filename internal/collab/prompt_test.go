package collab

import (
	"strings"
	"testing"
	"time"

	"commsagent/internal/audience"
	"commsagent/internal/domain/models"
)

func testProject() *models.Project {
	return &models.Project{
		ID:             "proj_ab12cd34",
		Name:           "Payment Gateway",
		Status:         models.StatusActive,
		CurrentPhase:   "beta",
		StartDate:      "2025-06-01",
		ExpectedLaunch: "2025-10-15",
		BusinessValue:  "Reduces cart abandonment",
		Description:    "New checkout flow",
		RecentUpdates:  []string{"Beta rollout at 20%"},
		UpcomingMilestones: []models.Milestone{
			{Date: "2025-09-01", Description: "Feature freeze"},
		},
		Stakeholders: models.Stakeholders{
			Users: []string{"u1@example.com"},
		},
		CommsHistory: []models.HistoryEntry{
			{DateSent: "2025-07-01", Audience: models.AudienceUsers, Subject: "First beta invite"},
			{DateSent: "2025-07-15", Audience: models.AudienceDevelopers, Subject: "API changes"},
			{DateSent: "2025-08-01", Audience: models.AudienceUsers, Subject: "Beta progress"},
		},
	}
}

func TestBuildPlanPromptContent(t *testing.T) {
	p := testProject()
	got := BuildPlanPrompt(p, "3 months", time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"3 months communications plan",
		"Project: Payment Gateway",
		"Beta rollout at 20%",
		"2025-09-01: Feature freeze",
		"2025-07-15 (developers): API changes",
		`"generated_date": "2025-08-20"`,
		"status_update|launch_announcement|new_features|management_update",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BuildPlanPrompt() missing %q", want)
		}
	}
}

func TestBuildDraftPromptUsesAudienceGuidelines(t *testing.T) {
	reg, err := audience.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}
	profile, err := reg.Get(models.AudienceUsers)
	if err != nil {
		t.Fatalf("Get(users) unexpected error: %v", err)
	}

	p := testProject()
	comm := &models.PlannedComm{
		ID:         "plan_55667788",
		TargetDate: "2025-08-28",
		Type:       models.CommStatusUpdate,
		Audiences:  []models.Audience{models.AudienceUsers},
		Reason:     "Keep beta users engaged",
		KeyTopics:  []string{"Rollout progress"},
		Status:     models.CommPending,
	}

	got := BuildDraftPrompt(p, comm, profile)

	// The user-audience tone and length constraints ride in the prompt;
	// they are not enforced locally.
	for _, want := range []string{
		"Target Audience: users",
		"under 200 words",
		"accessible, non-technical language",
		"Reason for Communication: Keep beta users engaged",
		"Key Topics to Cover: Rollout progress",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BuildDraftPrompt() missing %q", want)
		}
	}

	// Only user-audience history is offered for continuity.
	if strings.Contains(got, "API changes") {
		t.Error("BuildDraftPrompt() leaked developer history into users prompt")
	}
	if !strings.Contains(got, "Beta progress") {
		t.Error("BuildDraftPrompt() missing prior users communication")
	}
}
