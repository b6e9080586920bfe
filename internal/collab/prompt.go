package collab

import (
	"fmt"
	"strings"
	"time"

	"commsagent/internal/audience"
	"commsagent/internal/domain/models"
)

// SystemPrompt frames every collaborator call.
const SystemPrompt = `You are an expert communications strategist for technical teams.
Your role is to help project teams communicate effectively with different stakeholders:
- Users: focus on benefits, use accessible language, keep it brief
- Developers: technical details, architecture, integration points
- Management: metrics, ROI, risks, resources, strategic value

Maintain communication continuity by referencing previous updates.
Plan communications based on project phase, timeline, and audience needs.`

// projectContext renders the shared project context block used by both
// prompts.
func projectContext(p *models.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", p.Name)
	fmt.Fprintf(&b, "Status: %s\n", p.Status)
	fmt.Fprintf(&b, "Current Phase: %s\n", p.CurrentPhase)
	fmt.Fprintf(&b, "Start Date: %s\n", p.StartDate)
	fmt.Fprintf(&b, "Expected Launch: %s\n\n", p.ExpectedLaunch)

	fmt.Fprintf(&b, "Business Value: %s\n", p.BusinessValue)
	fmt.Fprintf(&b, "Description: %s\n\n", p.Description)

	b.WriteString("Recent Updates:\n")
	for _, u := range p.RecentUpdates {
		fmt.Fprintf(&b, "- %s\n", u)
	}

	b.WriteString("\nUpcoming Milestones:\n")
	for _, m := range p.UpcomingMilestones {
		fmt.Fprintf(&b, "- %s: %s\n", m.Date, m.Description)
	}

	b.WriteString("\nStakeholders:\n")
	fmt.Fprintf(&b, "- Users: %s\n", strings.Join(p.Stakeholders.Users, ", "))
	fmt.Fprintf(&b, "- Developers: %s\n", strings.Join(p.Stakeholders.Developers, ", "))
	fmt.Fprintf(&b, "- Management: %s\n", strings.Join(p.Stakeholders.Management, ", "))

	return b.String()
}

// BuildPlanPrompt renders the communications-plan prompt for a project.
func BuildPlanPrompt(p *models.Project, horizon string, today time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze this project and create a comprehensive %s communications plan.\n\n", horizon)
	b.WriteString(projectContext(p))

	b.WriteString("\nPrevious Communications:\n")
	for _, c := range p.CommsHistory {
		fmt.Fprintf(&b, "- %s (%s): %s\n", c.DateSent, c.Audience, c.Subject)
	}

	b.WriteString(`
Rules:
1. Status updates: every 2-4 weeks for active projects
2. Launch announcements: when status changes or the launch date is reached
3. New features: when milestones indicate feature releases
4. Management updates: monthly
5. Consider communication gaps - identify audiences not communicated with recently
6. Justify each planned communication with clear reasoning

For each planned communication, specify:
- target_date (YYYY-MM-DD)
- type (status_update|launch_announcement|new_features|management_update)
- audiences (list: users, developers, management)
- reason (why this communication at this time)
- key_topics (list of topics to cover)
- status: "pending"
`)

	fmt.Fprintf(&b, `
Return a JSON object with this structure:
{
  "generated_date": "%s",
  "planning_horizon": "%s",
  "planned_communications": [ ... ]
}
`, today.Format(models.DateLayout), horizon)

	return b.String()
}

// BuildDraftPrompt renders the email-draft prompt for one plan entry and
// one audience. The profile carries the audience's tone and word-limit
// guidelines; recent history for that audience is included so the draft can
// reference earlier updates.
func BuildDraftPrompt(p *models.Project, comm *models.PlannedComm, profile *audience.Profile) string {
	var b strings.Builder

	b.WriteString("Write an email for this project communication.\n\n")

	fmt.Fprintf(&b, "Project: %s\n", p.Name)
	fmt.Fprintf(&b, "Current Phase: %s\n", p.CurrentPhase)
	fmt.Fprintf(&b, "Status: %s\n\n", p.Status)

	fmt.Fprintf(&b, "Communication Type: %s\n", comm.Type)
	fmt.Fprintf(&b, "Target Audience: %s\n", profile.ID)
	fmt.Fprintf(&b, "Reason for Communication: %s\n", comm.Reason)
	fmt.Fprintf(&b, "Key Topics to Cover: %s\n", strings.Join(comm.KeyTopics, ", "))

	b.WriteString("\nRecent Project Updates:\n")
	for _, u := range p.RecentUpdates {
		fmt.Fprintf(&b, "- %s\n", u)
	}

	b.WriteString("\nUpcoming Milestones:\n")
	for _, m := range p.UpcomingMilestones {
		fmt.Fprintf(&b, "- %s: %s\n", m.Date, m.Description)
	}

	fmt.Fprintf(&b, "\nPrevious Communications to %s:\n", profile.ID)
	for _, c := range recentHistoryFor(p, profile.ID, 3) {
		fmt.Fprintf(&b, "- %s: %s\n", c.DateSent, c.Subject)
	}

	fmt.Fprintf(&b, "\nAudience Guidelines for %s:\n%s", profile.ID, profile.PromptGuidelines())

	fmt.Fprintf(&b, `
Additional Requirements:
- Reference previous communications if relevant (maintain continuity)
- Cover the key topics listed
- Match the communication type (%s)
- Be specific and actionable

Return a JSON object with:
{
  "subject": "compelling subject line",
  "body": "full email body text",
  "key_points": ["list", "of", "key", "points", "covered"]
}
`, comm.Type)

	return b.String()
}

// recentHistoryFor returns the last n history entries sent to the audience,
// oldest first.
func recentHistoryFor(p *models.Project, aud models.Audience, n int) []models.HistoryEntry {
	var matched []models.HistoryEntry
	for _, c := range p.CommsHistory {
		if c.Audience == aud {
			matched = append(matched, c)
		}
	}
	if len(matched) > n {
		matched = matched[len(matched)-n:]
	}
	return matched
}
