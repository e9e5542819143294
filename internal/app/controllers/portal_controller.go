package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/campuslink/portal/internal/app/views"
)

// PortalController serves the computed view models for the portal sections.
// Every handler renders through the session's own pipeline; sections a page
// does not show are simply never requested, and a request for a section with
// no matching content still returns a defined empty view.
type PortalController struct{}

// NewPortalController creates a new PortalController
func NewPortalController() *PortalController {
	return &PortalController{}
}

// Refresh runs a full load of every collection
func (ctrl *PortalController) Refresh(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Loader.LoadAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Refreshed")
}

// Resources renders the filtered academic resources section
func (ctrl *PortalController) Resources(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	view := p.Engine.Resources(views.ResourceFilters{
		Branch:   c.Query("branch"),
		Semester: c.Query("semester"),
		Query:    c.Query("q"),
	})
	respondOK(c, view, "")
}

// Wishlist renders the saved resources section
func (ctrl *PortalController) Wishlist(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.Wishlist(), "")
}

// PendingVerification renders the faculty verification queue
func (ctrl *PortalController) PendingVerification(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.PendingVerification(), "")
}

// Marketplace renders the marketplace grid
func (ctrl *PortalController) Marketplace(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	view := p.Engine.Marketplace(views.MarketplaceFilters{
		MyPurchases: c.Query("myPurchases") == "true",
	})
	respondOK(c, view, "")
}

// ChatThread renders the ephemeral chat modal for a listing
func (ctrl *PortalController) ChatThread(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.ChatThread(c.Param("id")), "")
}

// Events renders the public events grid
func (ctrl *PortalController) Events(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.Events(), "")
}

// OrganizerEvents renders the organizer's own-events management view
func (ctrl *PortalController) OrganizerEvents(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.OrganizerEvents(), "")
}

// LostFound renders the lost & found list
func (ctrl *PortalController) LostFound(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	view := p.Engine.LostFound(views.LostFoundFilters{
		Tab:   c.Query("tab"),
		Query: c.Query("q"),
	})
	respondOK(c, view, "")
}

// Discussions renders the community feed
func (ctrl *PortalController) Discussions(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	view := p.Engine.Discussions(views.DiscussionFilters{
		Category: c.Query("category"),
	})
	respondOK(c, view, "")
}

// Announcements renders the announcements feed
func (ctrl *PortalController) Announcements(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.Announcements(), "")
}

// Stats renders the dashboard counters for the viewer's role
func (ctrl *PortalController) Stats(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	respondOK(c, p.Engine.Stats(), "")
}
