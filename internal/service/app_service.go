package service

import (
	"context"
	"fmt"
	"time"

	"github.com/YeMinHein/App-Management/internal/keygen"
	"github.com/YeMinHein/App-Management/internal/models"
	"github.com/YeMinHein/App-Management/internal/storage"
	"github.com/google/uuid"
)

type AppService struct {
	store storage.AppStore
}

func NewAppService(store storage.AppStore) *AppService {
	return &AppService{store: store}
}

func (s *AppService) List(ctx context.Context, ownerEmail string) ([]*models.App, error) {
	apps, err := s.store.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}
	return apps, nil
}

// Get returns (nil, nil) when the app does not exist or belongs to another
// owner; the two cases are indistinguishable on purpose.
func (s *AppService) Get(ctx context.Context, appID, ownerEmail string) (*models.App, error) {
	app, err := s.store.GetByOwner(ctx, appID, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get app: %w", err)
	}
	return app, nil
}

// Create assigns a fresh id and creation timestamp and stamps the owner.
// The environment is expected to be validated by the caller; a missing key
// is replaced with a generated one.
func (s *AppService) Create(ctx context.Context, req *models.CreateAppRequest, ownerEmail string) (*models.App, error) {
	appKey := req.AppKey
	if appKey == "" {
		key, err := keygen.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate app key: %w", err)
		}
		appKey = key
	}

	app := &models.App{
		AppID:       uuid.New().String(),
		AppTitle:    req.AppTitle,
		AppKey:      appKey,
		AppEnv:      req.AppEnv,
		CreatedDate: time.Now(),
		LoginUser:   ownerEmail,
	}

	if err := s.store.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	return app, nil
}

func (s *AppService) Update(ctx context.Context, appID string, update *models.AppUpdate, ownerEmail string) (*models.App, error) {
	app, err := s.store.Update(ctx, appID, ownerEmail, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update app: %w", err)
	}
	return app, nil
}

func (s *AppService) Delete(ctx context.Context, appID, ownerEmail string) (bool, error) {
	deleted, err := s.store.Delete(ctx, appID, ownerEmail)
	if err != nil {
		return false, fmt.Errorf("failed to delete app: %w", err)
	}
	return deleted, nil
}
