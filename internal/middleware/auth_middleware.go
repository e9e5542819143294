package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/pipeline"
	"github.com/campuslink/portal/internal/pkg/token"
	"github.com/campuslink/portal/internal/session"
)

// Context keys set for downstream handlers
const (
	ContextSessionKey = "sessionKey"
	ContextUser       = "currentUser"
	ContextPipeline   = "sessionPipeline"
)

// ErrInvalidAuthHeader indicates a malformed Authorization header
var ErrInvalidAuthHeader = errors.New("invalid authorization header format")

// timeNow is swappable in tests
var timeNow = time.Now

// AuthMiddleware resolves the portal page's session key into the logged-in
// account, backend token, and the session's own pipeline before any view or
// action handler runs. Each session resumes only its own pipeline; requests
// from different sessions never share a client token or current user.
type AuthMiddleware struct {
	sessions  *session.Store
	pipelines *pipeline.Registry
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *session.Store, pipelines *pipeline.Registry) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:  sessions,
		pipelines: pipelines,
	}
}

// SessionAuth validates the bearer session key and resumes the session
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		key, err := ExtractBearerToken(header)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		record, err := m.sessions.Lookup(c.Request.Context(), key)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Session expired or not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		// The backend token may have expired while the session key is
		// still live; treat that the same as a missing session.
		if claims, err := token.Decode(record.Token); err == nil && claims.Expired(timeNow()) {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Session expired, please log in again")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		p := m.pipelines.Get(key)
		p.Actions.Resume(&record.User, record.Token)

		c.Set(ContextSessionKey, key)
		c.Set(ContextUser, record.User)
		c.Set(ContextPipeline, p)
		c.Next()
	}
}

// ExtractBearerToken pulls the value out of a "Bearer <value>" header
func ExtractBearerToken(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthHeader
	}
	return strings.TrimSpace(parts[1]), nil
}
