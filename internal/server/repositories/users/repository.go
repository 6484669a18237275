// Package users persists user credentials.
package users

import (
	"context"

	"taskboard/internal/server/models"
)

type Repository interface {
	// Create inserts the user and fills in the assigned id. Returns
	// common.ErrorAlreadyExists if the username is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByUsername returns common.ErrorNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByID returns common.ErrorNotFound when no such user exists.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
