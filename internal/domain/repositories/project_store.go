package repositories

import (
	"context"

	"commsagent/internal/domain/models"
)

// ProjectStore defines data access over the project document.
//
// The store is a single JSON document rewritten whole on every save.
// Last-writer-wins: there is no cross-process locking, transaction, or
// optimistic-concurrency check. This is a documented non-guarantee of the
// single-user deployment model, not an invariant implementations may tighten
// by changing observed behavior.
type ProjectStore interface {
	// Load reads the full project document. A missing backing file loads as
	// an empty document; a malformed one is a StoreError.
	Load(ctx context.Context) (*models.ProjectFile, error)

	// Save rewrites the full project document.
	Save(ctx context.Context, file *models.ProjectFile) error
}
