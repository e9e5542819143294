package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/views"
)

// AdminController serves the admin panel views and moderation actions
type AdminController struct {
	logger zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(logger zerolog.Logger) *AdminController {
	return &AdminController{logger: logger}
}

// Users returns the user management list
func (ctrl *AdminController) Users(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	view := p.Engine.AdminUsers(views.AdminUserFilters{
		Query: c.Query("q"),
		Role:  c.Query("role"),
	})
	respondOK(c, view, "")
}

// OrganizerRequests returns the pending organizer request queue
func (ctrl *AdminController) OrganizerRequests(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.OrganizerRequests(), "")
}

// Moderation returns the content review view for a role and section
func (ctrl *AdminController) Moderation(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	view := p.Engine.Moderation(views.ModerationFilters{
		Role:    c.Query("role"),
		Section: c.Query("section"),
	})
	respondOK(c, view, "")
}

// ToggleBan bans or unbans a user
func (ctrl *AdminController) ToggleBan(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.ToggleBan(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// DeleteUser removes a user account
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	req := dto.DeleteRequest{
		ID:        c.Param("id"),
		Confirmed: c.Query("confirm") == "true",
	}
	if err := p.Actions.DeleteUser(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "User deleted")
}

// SubmitOrganizerRequest queues a club for organizer approval
func (ctrl *AdminController) SubmitOrganizerRequest(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	var req struct {
		Name        string `json:"name" binding:"required"`
		RequestedBy string `json:"requestedBy"`
		Email       string `json:"email" binding:"required,email"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Actions.SubmitOrganizerRequest(req.Name, req.RequestedBy, req.Email); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Request submitted")
}

// ApproveOrganizer grants a pending organizer request
func (ctrl *AdminController) ApproveOrganizer(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.ApproveOrganizer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Organizer approved")
}

// RejectOrganizer declines a pending organizer request
func (ctrl *AdminController) RejectOrganizer(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.RejectOrganizer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Organizer rejected")
}
