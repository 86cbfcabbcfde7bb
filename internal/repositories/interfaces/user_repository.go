package interfaces

import (
	"context"

	"citytransit/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Upsert creates or refreshes the profile record for an identity
	// asserted by the external provider.
	Upsert(ctx context.Context, user *models.User) error
}
