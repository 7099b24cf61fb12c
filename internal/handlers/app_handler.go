package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/YeMinHein/App-Management/internal/keygen"
	"github.com/YeMinHein/App-Management/internal/logger"
	"github.com/YeMinHein/App-Management/internal/middleware"
	"github.com/YeMinHein/App-Management/internal/models"
	"github.com/YeMinHein/App-Management/internal/service"
	"github.com/YeMinHein/App-Management/internal/validation"
)

type AppHandler struct {
	apps *service.AppService
	log  *logger.Logger
}

func NewAppHandler(apps *service.AppService) *AppHandler {
	return &AppHandler{
		apps: apps,
		log:  logger.New("app-handler"),
	}
}

// Collection handles /api/apps: GET lists the caller's apps, POST creates one.
func (h *AppHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Item handles /api/apps/{id}: GET, PUT, DELETE.
func (h *AppHandler) Item(w http.ResponseWriter, r *http.Request) {
	appID := strings.TrimPrefix(r.URL.Path, "/api/apps/")
	if appID == "" || strings.Contains(appID, "/") {
		respondError(w, http.StatusNotFound, "App not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, appID)
	case http.MethodPut:
		h.update(w, r, appID)
	case http.MethodDelete:
		h.delete(w, r, appID)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// GenerateKey handles POST /api/apps/generate-key.
func (h *AppHandler) GenerateKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	key, err := keygen.Generate()
	if err != nil {
		h.log.Error("Failed to generate app key: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, models.GenerateKeyResponse{AppKey: key})
}

func (h *AppHandler) list(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	apps, err := h.apps.List(r.Context(), user.Email)
	if err != nil {
		h.log.Error("Failed to list apps: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, models.ListAppsResponse{Apps: apps})
}

func (h *AppHandler) create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateTitle(req.AppTitle); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateEnvironment(req.AppEnv); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := h.apps.Create(r.Context(), &req, user.Email)
	if err != nil {
		h.log.Error("Failed to create app: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, models.AppResponse{App: app})
}

func (h *AppHandler) get(w http.ResponseWriter, r *http.Request, appID string) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	app, err := h.apps.Get(r.Context(), appID, user.Email)
	if err != nil {
		h.log.Error("Failed to get app: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if app == nil {
		respondError(w, http.StatusNotFound, "App not found")
		return
	}

	respondJSON(w, http.StatusOK, models.AppResponse{App: app})
}

func (h *AppHandler) update(w http.ResponseWriter, r *http.Request, appID string) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.AppUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.AppEnv != nil {
		if err := validation.ValidateEnvironment(*req.AppEnv); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	app, err := h.apps.Update(r.Context(), appID, &req, user.Email)
	if err != nil {
		h.log.Error("Failed to update app: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if app == nil {
		respondError(w, http.StatusNotFound, "App not found")
		return
	}

	respondJSON(w, http.StatusOK, models.AppResponse{App: app})
}

func (h *AppHandler) delete(w http.ResponseWriter, r *http.Request, appID string) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	deleted, err := h.apps.Delete(r.Context(), appID, user.Email)
	if err != nil {
		h.log.Error("Failed to delete app: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "App not found")
		return
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "App deleted successfully"})
}
