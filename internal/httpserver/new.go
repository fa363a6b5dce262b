package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"intelliassist/internal/assistant"
	"intelliassist/internal/auth"
	"intelliassist/internal/dashboard"
	"intelliassist/internal/localtask"
	"intelliassist/internal/middleware"
	"intelliassist/internal/model"
	"intelliassist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment
	mw          middleware.Middleware

	// Domains
	authUC      auth.UseCase
	dashboardUC dashboard.UseCase
	localTaskUC localtask.UseCase
	assistantUC assistant.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment
	Middleware  middleware.Middleware

	AuthUC      auth.UseCase
	DashboardUC dashboard.UseCase
	LocalTaskUC localtask.UseCase
	AssistantUC assistant.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		authUC:      cfg.AuthUC,
		dashboardUC: cfg.DashboardUC,
		localTaskUC: cfg.LocalTaskUC,
		assistantUC: cfg.AssistantUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	if srv.dashboardUC == nil {
		return errors.New("dashboard use case is required")
	}
	if srv.localTaskUC == nil {
		return errors.New("local task use case is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	return nil
}
