package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/pipeline"
	"github.com/campuslink/portal/internal/middleware"
	"github.com/campuslink/portal/internal/session"
)

// AuthController handles login and logout
type AuthController struct {
	pipelines *pipeline.Registry
	sessions  *session.Store
	logger    zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(pipelines *pipeline.Registry, sessions *session.Store, logger zerolog.Logger) *AuthController {
	return &AuthController{
		pipelines: pipelines,
		sessions:  sessions,
		logger:    logger,
	}
}

// Login authenticates against the backend and hands the page a session key.
// The fresh pipeline built here becomes the session's own once the record is
// persisted, keeping the initial post-login load warm.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	p := ctrl.pipelines.Fresh()
	account, err := p.Actions.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	key, err := session.NewSessionKey()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctrl.sessions.Save(c.Request.Context(), key, session.Record{
		User:  *account,
		Token: p.Actions.Token(),
	}); err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to persist session")
		respondError(c, err)
		return
	}
	ctrl.pipelines.Bind(key, p)

	respondOK(c, dto.LoginResponse{
		SessionKey: key,
		FullName:   account.FullName,
		Role:       string(account.Role),
	}, "Logged in")
}

// Logout deletes the persisted session and drops the session's pipeline
func (ctrl *AuthController) Logout(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}

	if key, ok := c.Get(middleware.ContextSessionKey); ok {
		sessionKey := key.(string)
		if err := ctrl.sessions.Delete(c.Request.Context(), sessionKey); err != nil {
			ctrl.logger.Warn().Err(err).Msg("Failed to delete session record")
		}
		ctrl.pipelines.Drop(sessionKey)
	}

	p.Actions.Logout()
	respondOK(c, nil, "Logged out")
}
