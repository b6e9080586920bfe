package config

const (
	// MaxProjectNameLength is the maximum length for project names.
	// Kept short for reasonable UX (names should be short and descriptive).
	MaxProjectNameLength = 255

	// MaxSubjectLength is the maximum length for communication subjects.
	MaxSubjectLength = 255

	// DueWindowDays is the look-ahead window for the due-communications
	// view: pending entries due within this many days of "now", inclusive.
	DueWindowDays = 7

	// PlanningHorizon is the span the collaborator is asked to plan for.
	PlanningHorizon = "3 months"

	// MaxRequestBodyBytes bounds JSON request bodies.
	MaxRequestBodyBytes = 1 << 20
)
