package storage

import (
	"context"
	"fmt"

	"github.com/YeMinHein/App-Management/internal/database"
	"github.com/YeMinHein/App-Management/internal/models"
	"github.com/jackc/pgx/v5"
)

type PostgresAppStore struct {
	db *database.DBManager
}

func NewPostgresAppStore(db *database.DBManager) *PostgresAppStore {
	return &PostgresAppStore{db: db}
}

func (s *PostgresAppStore) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.App, error) {
	query := `
		SELECT app_id, app_title, app_key, app_env, created_date, login_user
		FROM apps
		WHERE login_user = $1
		ORDER BY position
	`

	rows, err := s.db.Pool().Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}
	defer rows.Close()

	apps := make([]*models.App, 0)
	for rows.Next() {
		var app models.App
		err := rows.Scan(
			&app.AppID,
			&app.AppTitle,
			&app.AppKey,
			&app.AppEnv,
			&app.CreatedDate,
			&app.LoginUser,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		apps = append(apps, &app)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return apps, nil
}

func (s *PostgresAppStore) GetByOwner(ctx context.Context, appID, ownerEmail string) (*models.App, error) {
	query := `
		SELECT app_id, app_title, app_key, app_env, created_date, login_user
		FROM apps
		WHERE app_id = $1 AND login_user = $2
	`

	var app models.App
	err := s.db.Pool().QueryRow(ctx, query, appID, ownerEmail).Scan(
		&app.AppID,
		&app.AppTitle,
		&app.AppKey,
		&app.AppEnv,
		&app.CreatedDate,
		&app.LoginUser,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get app: %w", err)
	}

	return &app, nil
}

func (s *PostgresAppStore) Create(ctx context.Context, app *models.App) error {
	query := `
		INSERT INTO apps (app_id, app_title, app_key, app_env, created_date, login_user)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Pool().Exec(ctx, query,
		app.AppID,
		app.AppTitle,
		app.AppKey,
		app.AppEnv,
		app.CreatedDate,
		app.LoginUser,
	)

	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	return nil
}

func (s *PostgresAppStore) Update(ctx context.Context, appID, ownerEmail string, update *models.AppUpdate) (*models.App, error) {
	query := `
		UPDATE apps
		SET app_title = COALESCE($3, app_title),
			app_key = COALESCE($4, app_key),
			app_env = COALESCE($5, app_env)
		WHERE app_id = $1 AND login_user = $2
		RETURNING app_id, app_title, app_key, app_env, created_date, login_user
	`

	var app models.App
	err := s.db.Pool().QueryRow(ctx, query,
		appID,
		ownerEmail,
		update.AppTitle,
		update.AppKey,
		update.AppEnv,
	).Scan(
		&app.AppID,
		&app.AppTitle,
		&app.AppKey,
		&app.AppEnv,
		&app.CreatedDate,
		&app.LoginUser,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update app: %w", err)
	}

	return &app, nil
}

func (s *PostgresAppStore) Delete(ctx context.Context, appID, ownerEmail string) (bool, error) {
	query := `DELETE FROM apps WHERE app_id = $1 AND login_user = $2`

	cmdTag, err := s.db.Pool().Exec(ctx, query, appID, ownerEmail)
	if err != nil {
		return false, fmt.Errorf("failed to delete app: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
