// Package controllers is the gin surface of the portal gateway. Controllers
// translate HTTP requests into view or action calls and wrap results in the
// structured response envelope; they hold no domain logic.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/pipeline"
	"github.com/campuslink/portal/internal/middleware"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// pipelineFrom returns the session's pipeline set by SessionAuth. Handlers
// behind the middleware always have one; a missing pipeline means the route
// was wired without authentication, which is rejected rather than served
// with shared state.
func pipelineFrom(c *gin.Context) *pipeline.Pipeline {
	value, ok := c.Get(middleware.ContextPipeline)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil
	}
	return value.(*pipeline.Pipeline)
}

// respondOK writes a success envelope
func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, dto.NewStructuredResponse(data, message))
}

// respondError maps pipeline errors onto HTTP statuses and error codes
func respondError(c *gin.Context, err error) {
	var (
		ve *apperrors.ValidationError
		he *apperrors.HTTPError
		ne *apperrors.NetworkError
		le *apperrors.LoadError
	)

	switch {
	case errors.As(err, &ve):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidation, ve.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrConfirmationRequired),
		errors.Is(err, apperrors.ErrSubmissionInProgress):
		detail := dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrNotLoggedIn),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, err.Error())
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))

	case errors.Is(err, apperrors.ErrNotFound):
		detail := dto.NewErrorDetail(dto.ErrorCodeNotFound, err.Error())
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))

	case errors.As(err, &he):
		status := http.StatusBadGateway
		if he.Status >= 400 && he.Status < 500 {
			status = he.Status
		}
		detail := dto.NewErrorDetail(dto.ErrorCodeBackend, he.Error())
		c.JSON(status, dto.NewErrorResponse(detail))

	case errors.As(err, &ne):
		detail := dto.NewErrorDetail(dto.ErrorCodeNetwork, "The portal backend is unreachable")
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(detail))

	case errors.As(err, &le):
		detail := dto.NewErrorDetail(dto.ErrorCodeBackend, le.Error())
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(detail))

	default:
		detail := dto.NewErrorDetail(dto.ErrorCodeBackend, "Unexpected error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}

// bindJSON binds a JSON body, responding uniformly on failure
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidation, "Invalid request body").WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}

// formFile pulls an optional uploaded file out of a multipart form
func formFile(c *gin.Context, field string) (*dto.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &dto.FileUpload{FileName: header.Filename, Content: file}, nil
}
