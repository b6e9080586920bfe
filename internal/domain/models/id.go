package models

import "github.com/google/uuid"

// ID prefixes for the record kinds the store persists.
const (
	ProjectIDPrefix     = "proj_"
	PlannedCommIDPrefix = "plan_"
	HistoryIDPrefix     = "comm_"
)

// NewID returns a prefixed short identifier: the prefix plus the first eight
// characters of a random UUID.
func NewID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}
