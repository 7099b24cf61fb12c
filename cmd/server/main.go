package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YeMinHein/App-Management/internal/auth"
	"github.com/YeMinHein/App-Management/internal/config"
	"github.com/YeMinHein/App-Management/internal/database"
	"github.com/YeMinHein/App-Management/internal/handlers"
	"github.com/YeMinHein/App-Management/internal/logger"
	"github.com/YeMinHein/App-Management/internal/middleware"
	usermodel "github.com/YeMinHein/App-Management/internal/models/user"
	redisclient "github.com/YeMinHein/App-Management/internal/redis"
	"github.com/YeMinHein/App-Management/internal/service"
	"github.com/YeMinHein/App-Management/internal/storage"
	"github.com/google/uuid"
)

func main() {
	log := logger.New("server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	appStore, userStore, cleanup, err := buildStores(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	if err := seedAdmin(ctx, userStore, cfg.Admin, log); err != nil {
		log.Fatal("Failed to seed admin user: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := service.NewUserService(userStore, jwtManager)
	appService := service.NewAppService(appStore)

	authHandler := handlers.NewAuthHandler(userService)
	appHandler := handlers.NewAppHandler(appService)
	authMW := middleware.NewAuthMiddleware(userService)

	register := authHandler.Register
	login := authHandler.Login

	if cfg.Redis.Addr != "" {
		rdb, err := redisclient.NewClient(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		register = limiter.Limit(register)
		login = limiter.Limit(login)
		log.Info("Auth rate limiting enabled: %d requests per %v", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/auth/register", register)
	mux.HandleFunc("/api/auth/login", login)
	mux.HandleFunc("/api/apps", authMW.RequireAuth(appHandler.Collection))
	mux.HandleFunc("/api/apps/generate-key", authMW.RequireAuth(appHandler.GenerateKey))
	mux.HandleFunc("/api/apps/", authMW.RequireAuth(appHandler.Item))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
}

// buildStores picks the Postgres backend when DATABASE_DSN is set and the
// in-memory backend otherwise.
func buildStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (storage.AppStore, storage.UserStore, func(), error) {
	if cfg.Database.DSN == "" {
		log.Info("Using in-memory storage")
		return storage.NewMemoryAppStore(), storage.NewMemoryUserStore(), func() {}, nil
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	if err := dbManager.Migrate(ctx); err != nil {
		dbManager.Close()
		return nil, nil, nil, err
	}

	log.Info("Using Postgres storage")
	return storage.NewPostgresAppStore(dbManager), storage.NewPostgresUserStore(dbManager), dbManager.Close, nil
}

// seedAdmin creates the bootstrap user when configured and not yet present.
func seedAdmin(ctx context.Context, users storage.UserStore, admin config.AdminConfig, log *logger.Logger) error {
	if admin.Email == "" || admin.Password == "" {
		return nil
	}

	existing, err := users.GetByEmail(ctx, admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	passwordHash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	err = users.Create(ctx, &usermodel.User{
		ID:           uuid.New().String(),
		Email:        admin.Email,
		Name:         admin.Name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	log.Info("Seeded admin user %s", admin.Email)
	return nil
}
