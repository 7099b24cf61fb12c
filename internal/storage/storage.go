package storage

import (
	"context"

	"github.com/YeMinHein/App-Management/internal/models"
	usermodel "github.com/YeMinHein/App-Management/internal/models/user"
)

// AppStore owns the app collection. Every read and mutation is scoped to the
// owner's email; a record that exists under another owner is reported the
// same way as a record that does not exist.
type AppStore interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]*models.App, error)
	GetByOwner(ctx context.Context, appID, ownerEmail string) (*models.App, error)
	Create(ctx context.Context, app *models.App) error
	Update(ctx context.Context, appID, ownerEmail string, update *models.AppUpdate) (*models.App, error)
	Delete(ctx context.Context, appID, ownerEmail string) (bool, error)
}

// UserStore owns the user collection. Email is the identity key and is
// unique across the store.
type UserStore interface {
	Create(ctx context.Context, u *usermodel.User) error
	GetByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetByID(ctx context.Context, id string) (*usermodel.User, error)
}
