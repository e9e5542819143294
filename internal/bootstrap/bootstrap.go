package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campuslink/portal/internal/app/controllers"
	"github.com/campuslink/portal/internal/app/pipeline"
	appRoutes "github.com/campuslink/portal/internal/app/routes"
	"github.com/campuslink/portal/internal/config"
	appMiddleware "github.com/campuslink/portal/internal/middleware"
	"github.com/campuslink/portal/internal/pkg/logger"
	"github.com/campuslink/portal/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Pipelines        *pipeline.Registry
	Sessions         *session.Store
	AuthController   *appControllers.AuthController
	PortalController *appControllers.PortalController
	ActionController *appControllers.ActionController
	AdminController  *appControllers.AdminController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupSessionStore connects to Redis and verifies the connection.
func SetupSessionStore(cfg *config.Config, lgr zerolog.Logger) (*session.Store, error) {
	lgr.Info().Str("url", cfg.Redis.URL).Msg("Connecting to session store...")
	sessions, err := session.NewStore(cfg.Redis.URL, cfg.SessionTTL())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to session store")
		return nil, fmt.Errorf("failed to connect to session store: %w", err)
	}
	lgr.Info().Msg("Session store connection successfully established.")
	return sessions, nil
}

// BuildDependencies initializes the pipeline registry and controllers.
// Pipelines are per-session; nothing identity-bearing is shared between
// sessions.
func BuildDependencies(cfg *config.Config, sessions *session.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Sessions: sessions, Logger: lgr}

	factory := pipeline.NewFactory(cfg.Backend.BaseURL, cfg.BackendTimeout(), lgr)
	deps.Pipelines = pipeline.NewRegistry(factory, cfg.SessionTTL())

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions, deps.Pipelines)

	deps.AuthController = appControllers.NewAuthController(deps.Pipelines, deps.Sessions, lgr)
	deps.PortalController = appControllers.NewPortalController()
	deps.ActionController = appControllers.NewActionController(lgr)
	deps.AdminController = appControllers.NewAdminController(lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PortalController,
		deps.ActionController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
