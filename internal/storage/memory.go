package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/YeMinHein/App-Management/internal/models"
)

// MemoryAppStore keeps apps in a slice so listings come back in insertion
// order. A single RWMutex serializes every read-modify-write sequence.
type MemoryAppStore struct {
	mu   sync.RWMutex
	apps []*models.App
}

func NewMemoryAppStore() *MemoryAppStore {
	return &MemoryAppStore{}
}

func (s *MemoryAppStore) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.App, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]*models.App, 0)
	for _, app := range s.apps {
		if app.LoginUser == ownerEmail {
			appCopy := *app
			apps = append(apps, &appCopy)
		}
	}

	return apps, nil
}

func (s *MemoryAppStore) GetByOwner(ctx context.Context, appID, ownerEmail string) (*models.App, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, app := range s.apps {
		if app.AppID == appID && app.LoginUser == ownerEmail {
			appCopy := *app
			return &appCopy, nil
		}
	}

	return nil, nil
}

func (s *MemoryAppStore) Create(ctx context.Context, app *models.App) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.apps {
		if existing.AppID == app.AppID {
			return fmt.Errorf("app with id %s already exists", app.AppID)
		}
	}

	appCopy := *app
	s.apps = append(s.apps, &appCopy)
	return nil
}

func (s *MemoryAppStore) Update(ctx context.Context, appID, ownerEmail string, update *models.AppUpdate) (*models.App, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.AppID != appID || app.LoginUser != ownerEmail {
			continue
		}

		// AppID, CreatedDate and LoginUser are immutable; only the
		// provided fields change.
		if update.AppTitle != nil {
			app.AppTitle = *update.AppTitle
		}
		if update.AppKey != nil {
			app.AppKey = *update.AppKey
		}
		if update.AppEnv != nil {
			app.AppEnv = *update.AppEnv
		}

		appCopy := *app
		return &appCopy, nil
	}

	return nil, nil
}

func (s *MemoryAppStore) Delete(ctx context.Context, appID, ownerEmail string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.apps {
		if app.AppID == appID && app.LoginUser == ownerEmail {
			s.apps = append(s.apps[:i], s.apps[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}
