package models

// DateLayout is the layout for every date persisted by the store. Dates are
// kept as plain YYYY-MM-DD strings so the JSON document stays human-editable.
const DateLayout = "2006-01-02"

type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "planning"
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists the closed set of valid project statuses.
var ProjectStatuses = []ProjectStatus{StatusPlanning, StatusActive, StatusCompleted}

func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Audience string

const (
	AudienceUsers      Audience = "users"
	AudienceDevelopers Audience = "developers"
	AudienceManagement Audience = "management"
)

// Audiences lists the stakeholder categories in presentation order.
var Audiences = []Audience{AudienceUsers, AudienceDevelopers, AudienceManagement}

func (a Audience) Valid() bool {
	for _, v := range Audiences {
		if a == v {
			return true
		}
	}
	return false
}

// Stakeholders groups stakeholder email addresses by audience.
type Stakeholders struct {
	Users      []string `json:"users"`
	Developers []string `json:"developers"`
	Management []string `json:"management"`
}

// ForAudience returns the email list for the given audience.
func (s Stakeholders) ForAudience(a Audience) []string {
	switch a {
	case AudienceUsers:
		return s.Users
	case AudienceDevelopers:
		return s.Developers
	case AudienceManagement:
		return s.Management
	}
	return nil
}

type Milestone struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Project struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Owner              string         `json:"owner"`
	Status             ProjectStatus  `json:"status"`
	Description        string         `json:"description"`
	BusinessValue      string         `json:"business_value"`
	StartDate          string         `json:"start_date"`
	CurrentPhase       string         `json:"current_phase"`
	ExpectedLaunch     string         `json:"expected_launch"`
	Stakeholders       Stakeholders   `json:"stakeholders"`
	RecentUpdates      []string       `json:"recent_updates"`
	UpcomingMilestones []Milestone    `json:"upcoming_milestones"`
	CommsHistory       []HistoryEntry `json:"comms_history"`
	CommsPlan          CommsPlan      `json:"comms_plan"`
}

// LastCommDate returns the sent date of the most recent history entry, or
// the empty string if nothing has been sent yet.
func (p *Project) LastCommDate() string {
	if len(p.CommsHistory) == 0 {
		return ""
	}
	return p.CommsHistory[len(p.CommsHistory)-1].DateSent
}

// FindPlannedComm returns the plan entry with the given ID, or nil.
func (p *Project) FindPlannedComm(id string) *PlannedComm {
	for i := range p.CommsPlan.PlannedComms {
		if p.CommsPlan.PlannedComms[i].ID == id {
			return &p.CommsPlan.PlannedComms[i]
		}
	}
	return nil
}

// ProjectFile is the full persisted document: every project the store knows
// about, in insertion order.
type ProjectFile struct {
	Projects []*Project `json:"projects"`
}

// Find returns the project with the given ID, or nil.
func (f *ProjectFile) Find(id string) *Project {
	for _, p := range f.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}
