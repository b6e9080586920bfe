package models

type CommType string

const (
	CommStatusUpdate       CommType = "status_update"
	CommLaunchAnnouncement CommType = "launch_announcement"
	CommNewFeatures        CommType = "new_features"
	CommManagementUpdate   CommType = "management_update"
)

// CommTypes lists the valid communication types.
var CommTypes = []CommType{
	CommStatusUpdate,
	CommLaunchAnnouncement,
	CommNewFeatures,
	CommManagementUpdate,
}

func (t CommType) Valid() bool {
	for _, v := range CommTypes {
		if t == v {
			return true
		}
	}
	return false
}

type CommStatus string

const (
	CommPending CommStatus = "pending"
	CommSent    CommStatus = "sent"
)

// CommsPlan is a project's forward-looking communication schedule.
type CommsPlan struct {
	GeneratedDate   string        `json:"generated_date,omitempty"`
	PlanningHorizon string        `json:"planning_horizon,omitempty"`
	PlannedComms    []PlannedComm `json:"planned_communications"`
}

// PlannedComm is a single scheduled, not-yet-sent communication. It is owned
// by exactly one project and referenced by the ID assigned when the plan was
// stored.
type PlannedComm struct {
	ID         string     `json:"id,omitempty"`
	TargetDate string     `json:"target_date"`
	Type       CommType   `json:"type"`
	Audiences  []Audience `json:"audiences"`
	Reason     string     `json:"reason"`
	KeyTopics  []string   `json:"key_topics"`
	Status     CommStatus `json:"status"`
	Drafts     []Draft    `json:"drafts,omitempty"`
}

// DraftFor returns the attached draft for the given audience, or nil.
func (c *PlannedComm) DraftFor(a Audience) *Draft {
	for i := range c.Drafts {
		if c.Drafts[i].Audience == a {
			return &c.Drafts[i]
		}
	}
	return nil
}

// AttachDraft attaches a draft to the plan entry, replacing any existing
// draft for the same audience.
func (c *PlannedComm) AttachDraft(d Draft) {
	for i := range c.Drafts {
		if c.Drafts[i].Audience == d.Audience {
			c.Drafts[i] = d
			return
		}
	}
	c.Drafts = append(c.Drafts, d)
}

// Draft is generated email text awaiting review. Not persisted as sent until
// the send action records a history entry.
type Draft struct {
	ID        string   `json:"draft_id"`
	Audience  Audience `json:"audience"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	KeyPoints []string `json:"key_points"`
}

// HistoryEntry is an immutable record of a communication once sent.
// Append-only; entries are never updated or removed.
type HistoryEntry struct {
	ID            string   `json:"id"`
	DateSent      string   `json:"date_sent"`
	Type          CommType `json:"type"`
	Audience      Audience `json:"audience"`
	Subject       string   `json:"subject"`
	Summary       string   `json:"summary"`
	KeyMessages   []string `json:"key_messages"`
	SentTo        []string `json:"sent_to"`
	PlannedCommID string   `json:"planned_comm_id,omitempty"`
}

// summaryRuneLimit bounds history summaries; full bodies are not retained.
const summaryRuneLimit = 200

// Summarize derives a history summary from a full email body, truncating at
// 200 runes with a trailing ellipsis.
func Summarize(body string) string {
	runes := []rune(body)
	if len(runes) <= summaryRuneLimit {
		return body
	}
	return string(runes[:summaryRuneLimit]) + "..."
}
