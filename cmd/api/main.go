package main

import (
	"context"
	"fmt"
	"time"

	"intelliassist/config"
	_ "intelliassist/docs" // Swagger docs
	assistantUC "intelliassist/internal/assistant/usecase"
	authUC "intelliassist/internal/auth/usecase"
	"intelliassist/internal/classifier"
	dashboardUC "intelliassist/internal/dashboard/usecase"
	"intelliassist/internal/httpserver"
	"intelliassist/internal/localtask/repository/jsonfile"
	localtaskUC "intelliassist/internal/localtask/usecase"
	"intelliassist/internal/memory"
	"intelliassist/internal/middleware"
	"intelliassist/internal/router"
	"intelliassist/pkg/datemath"
	"intelliassist/pkg/googleauth"
	"intelliassist/pkg/llmprovider"
	"intelliassist/pkg/log"
)

// @title       IntelliAssist API
// @description Executive assistant backend: Google Calendar, Gmail, and Tasks dashboard with an LLM chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting IntelliAssist...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain (optional: the assistant degrades to canned
	// replies without it)
	var llm *llmprovider.Manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM providers not available: %v", err)
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		llm = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTimeout,
		}, logger)
		logger.Infof(ctx, "LLM chain initialized with %d providers", len(providers))
	}

	// 4. Google OAuth (optional: dashboard and chat degrade gracefully)
	oauthConfig, err := googleauth.NewConfig(cfg.Google.CredentialsPath, cfg.Google.RedirectURL)
	if err != nil {
		logger.Warnf(ctx, "Google OAuth not configured: %v", err)
		oauthConfig = nil
	}
	authUseCase := authUC.New(logger, oauthConfig, cfg.Google.TokenPath)

	// 5. Classifier and date parsing
	timezone := cfg.Assistant.Timezone
	eventClassifier, err := classifier.New(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		eventClassifier, _ = classifier.New(timezone)
	}
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Local task store
	taskRepo, err := jsonfile.New(logger, cfg.TaskStore.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store: %v", err)
		return
	}

	var generator localtaskUC.Generator
	if llm != nil {
		generator = llm
	}
	localTaskUseCase := localtaskUC.New(logger, generator, taskRepo, dateMathParser, timezone)

	// 7. Dashboard
	dashboardUseCase := dashboardUC.New(logger, authUseCase, eventClassifier, localTaskUseCase)

	// 8. Assistant
	sessionTTL, err := time.ParseDuration(cfg.Assistant.SessionTTL)
	if err != nil {
		sessionTTL = 0 // store default
	}
	sessions := memory.New(cfg.Assistant.MaxSessions, sessionTTL, cfg.Assistant.MaxTurns)

	var assistantLLM assistantUC.Generator
	var intentClassifier router.TextClassifier
	if llm != nil {
		assistantLLM = llm
		intentClassifier = assistantUC.NewTextClassifier(llm)
	}
	intentRouter := router.New(intentClassifier, logger)
	assistantUseCase := assistantUC.New(logger, assistantLLM, intentRouter, sessions, authUseCase, localTaskUseCase, timezone)

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		AuthUC:      authUseCase,
		DashboardUC: dashboardUseCase,
		LocalTaskUC: localTaskUseCase,
		AssistantUC: assistantUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
