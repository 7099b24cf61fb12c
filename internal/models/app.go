package models

import "time"

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type App struct {
	AppID       string    `json:"appID"`
	AppTitle    string    `json:"appTitle"`
	AppKey      string    `json:"appKey"`
	AppEnv      string    `json:"appEnv"`
	CreatedDate time.Time `json:"createdDate"`
	LoginUser   string    `json:"loginUser"`
}

type CreateAppRequest struct {
	AppTitle string `json:"appTitle"`
	AppKey   string `json:"appKey,omitempty"`
	AppEnv   string `json:"appEnv"`
}

// AppUpdate carries a partial update; nil fields are left untouched.
type AppUpdate struct {
	AppTitle *string `json:"appTitle,omitempty"`
	AppKey   *string `json:"appKey,omitempty"`
	AppEnv   *string `json:"appEnv,omitempty"`
}

type AppResponse struct {
	App *App `json:"app"`
}

type ListAppsResponse struct {
	Apps []*App `json:"apps"`
}

type GenerateKeyResponse struct {
	AppKey string `json:"appKey"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
