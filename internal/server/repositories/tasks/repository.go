// Package tasks persists task records and enforces owner scoping on every
// lookup: a task that exists but belongs to someone else is indistinguishable
// from a task that does not exist.
package tasks

import (
	"context"

	"taskboard/internal/server/models"
)

type Repository interface {
	// ListByOwner returns every task owned by ownerID, oldest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Task, error)
	// Create inserts the task and fills in the assigned id.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// GetOwned returns common.ErrorNotFound when the task is absent or owned
	// by a different user.
	GetOwned(ctx context.Context, id, ownerID int64) (*models.Task, error)
	// Update persists title, description and status of an owned task.
	// Returns common.ErrorNotFound under the same condition as GetOwned.
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	// Delete removes an owned task, common.ErrorNotFound as above.
	Delete(ctx context.Context, id, ownerID int64) error
}
