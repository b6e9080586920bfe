package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"commsagent/internal/config"
	"commsagent/internal/domain/models"
	"commsagent/internal/repository/jsonfile"
)

func main() {
	// Parse command-line flags
	force := flag.Bool("force", false, "Overwrite an existing project file")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	store := jsonfile.New(cfg.DataFile, logger)
	ctx := context.Background()

	existing, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load project file: %v", err)
	}
	if len(existing.Projects) > 0 && !*force {
		log.Fatalf("Project file %s already has %d projects (use -force to overwrite)", cfg.DataFile, len(existing.Projects))
	}

	file := &models.ProjectFile{Projects: sampleProjects()}
	if err := store.Save(ctx, file); err != nil {
		log.Fatalf("Failed to write project file: %v", err)
	}

	logger.Info("sample data written",
		"file", cfg.DataFile,
		"projects", len(file.Projects),
	)
}

// sampleProjects returns a small demo data set to explore the API with.
func sampleProjects() []*models.Project {
	return []*models.Project{
		{
			ID:             models.NewID(models.ProjectIDPrefix),
			Name:           "Checkout Redesign",
			Owner:          "dana",
			Status:         models.StatusActive,
			Description:    "Rebuild of the checkout flow with saved payment methods",
			BusinessValue:  "Reduces cart abandonment on mobile",
			StartDate:      "2025-06-01",
			CurrentPhase:   "beta",
			ExpectedLaunch: "2025-10-15",
			Stakeholders: models.Stakeholders{
				Users:      []string{"beta-users@example.com"},
				Developers: []string{"platform-team@example.com"},
				Management: []string{"vp-product@example.com"},
			},
			RecentUpdates: []string{
				"Beta rollout reached 20% of traffic",
				"Saved cards shipped behind a feature flag",
			},
			UpcomingMilestones: []models.Milestone{
				{Date: "2025-09-01", Description: "Feature freeze"},
				{Date: "2025-10-01", Description: "Go/no-go review"},
			},
			CommsHistory: []models.HistoryEntry{},
			CommsPlan:    models.CommsPlan{PlannedComms: []models.PlannedComm{}},
		},
		{
			ID:            models.NewID(models.ProjectIDPrefix),
			Name:          "Search Relevance Tuning",
			Owner:         "sam",
			Status:        models.StatusPlanning,
			Description:   "Ranking improvements for long-tail queries",
			BusinessValue: "Lifts conversion on search-led sessions",
			StartDate:     "2025-08-01",
			CurrentPhase:  "discovery",
			Stakeholders: models.Stakeholders{
				Developers: []string{"search-team@example.com"},
				Management: []string{"vp-eng@example.com"},
			},
			RecentUpdates:      []string{"Baseline relevance metrics collected"},
			UpcomingMilestones: []models.Milestone{},
			CommsHistory:       []models.HistoryEntry{},
			CommsPlan:          models.CommsPlan{PlannedComms: []models.PlannedComm{}},
		},
	}
}
