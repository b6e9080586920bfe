package audience

import (
	"strings"
	"testing"

	"commsagent/internal/domain/models"
)

func TestNewRegistryLoadsAllAudiences(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	tests := []struct {
		audience  models.Audience
		wordLimit int
	}{
		{models.AudienceUsers, 200},
		{models.AudienceDevelopers, 300},
		{models.AudienceManagement, 250},
	}

	for _, tt := range tests {
		t.Run(string(tt.audience), func(t *testing.T) {
			p, err := r.Get(tt.audience)
			if err != nil {
				t.Fatalf("Get(%s) unexpected error: %v", tt.audience, err)
			}
			if p.WordLimit != tt.wordLimit {
				t.Errorf("Get(%s) word limit = %d, want %d", tt.audience, p.WordLimit, tt.wordLimit)
			}
			if p.ID != tt.audience {
				t.Errorf("Get(%s) ID = %s, want %s", tt.audience, p.ID, tt.audience)
			}
			if len(p.Guidelines) == 0 {
				t.Errorf("Get(%s) has no guidelines", tt.audience)
			}
		})
	}
}

func TestRegistryGetUnknownAudience(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	if _, err := r.Get("executives"); err == nil {
		t.Error("Get(executives) expected error, got nil")
	}
}

func TestRegistryListOrder(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	profiles := r.List()
	if len(profiles) != len(models.Audiences) {
		t.Fatalf("List() returned %d profiles, want %d", len(profiles), len(models.Audiences))
	}
	for i, a := range models.Audiences {
		if profiles[i].ID != a {
			t.Errorf("List()[%d] = %s, want %s", i, profiles[i].ID, a)
		}
	}
}

func TestPromptGuidelinesIncludesWordLimit(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	p, err := r.Get(models.AudienceUsers)
	if err != nil {
		t.Fatalf("Get(users) unexpected error: %v", err)
	}

	got := p.PromptGuidelines()
	if !strings.Contains(got, "under 200 words") {
		t.Errorf("PromptGuidelines() missing word limit, got:\n%s", got)
	}
}
