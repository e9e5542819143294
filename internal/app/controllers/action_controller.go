package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/models/dto"
)

// ActionController exposes the user-triggered mutations
type ActionController struct {
	logger zerolog.Logger
}

// NewActionController creates a new ActionController
func NewActionController(logger zerolog.Logger) *ActionController {
	return &ActionController{logger: logger}
}

// UploadResource handles the resource upload form (multipart)
func (ctrl *ActionController) UploadResource(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	file, err := formFile(c, "file")
	if err != nil {
		respondError(c, err)
		return
	}

	err = p.Actions.UploadResource(c.Request.Context(), dto.UploadResourceRequest{
		Title:       c.PostForm("title"),
		Subject:     c.PostForm("subject"),
		Branch:      c.PostForm("branch"),
		Semester:    c.PostForm("semester"),
		Description: c.PostForm("description"),
		File:        file,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Resource uploaded")
}

// PostItem handles the marketplace listing form (multipart)
func (ctrl *ActionController) PostItem(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	image, err := formFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	err = p.Actions.PostItem(c.Request.Context(), dto.PostItemRequest{
		Title:       c.PostForm("title"),
		Price:       price,
		Description: c.PostForm("description"),
		Contact:     c.PostForm("contact"),
		Image:       image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Item listed")
}

// PostLostFound handles the lost & found report form (multipart)
func (ctrl *ActionController) PostLostFound(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	image, err := formFile(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}

	err = p.Actions.PostLostFound(c.Request.Context(), dto.PostLostFoundRequest{
		Type:        c.PostForm("type"),
		ItemName:    c.PostForm("itemName"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Contact:     c.PostForm("contact"),
		Image:       image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Report posted")
}

// CreateEvent handles the event creation form (multipart)
func (ctrl *ActionController) CreateEvent(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	poster, err := formFile(c, "poster")
	if err != nil {
		respondError(c, err)
		return
	}

	err = p.Actions.CreateEvent(c.Request.Context(), dto.CreateEventRequest{
		Title:       c.PostForm("title"),
		Date:        c.PostForm("date"),
		Venue:       c.PostForm("venue"),
		Description: c.PostForm("description"),
		FormLink:    c.PostForm("formLink"),
		Poster:      poster,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Event created")
}

// PostDiscussion starts a discussion thread
func (ctrl *ActionController) PostDiscussion(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	var req dto.PostDiscussionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Actions.PostDiscussion(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Discussion posted")
}

// PostAnnouncement publishes an announcement
func (ctrl *ActionController) PostAnnouncement(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	var req dto.PostAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Actions.PostAnnouncement(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Announcement posted")
}

// AddComment appends a reply to a community post
func (ctrl *ActionController) AddComment(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	var req dto.CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := p.Actions.AddComment(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Reply added")
}

// UpvoteResource casts an upvote on a resource
func (ctrl *ActionController) UpvoteResource(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.UpvoteResource(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// DownloadResource records a download and returns the file URL
func (ctrl *ActionController) DownloadResource(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	fileURL, err := p.Actions.DownloadResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"fileUrl": fileURL}, "")
}

// VerifyResource marks a resource verified
func (ctrl *ActionController) VerifyResource(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.VerifyResource(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Resource verified")
}

// DeleteResource removes a resource
func (ctrl *ActionController) DeleteResource(c *gin.Context) {
	if p := pipelineFrom(c); p != nil {
		ctrl.delete(c, p.Actions.DeleteResource)
	}
}

// DeleteItem removes a marketplace listing
func (ctrl *ActionController) DeleteItem(c *gin.Context) {
	if p := pipelineFrom(c); p != nil {
		ctrl.delete(c, p.Actions.DeleteItem)
	}
}

// DeleteEvent removes an event
func (ctrl *ActionController) DeleteEvent(c *gin.Context) {
	if p := pipelineFrom(c); p != nil {
		ctrl.delete(c, p.Actions.DeleteEvent)
	}
}

// DeleteLostFound removes a lost & found report
func (ctrl *ActionController) DeleteLostFound(c *gin.Context) {
	if p := pipelineFrom(c); p != nil {
		ctrl.delete(c, p.Actions.DeleteLostFound)
	}
}

// DeletePost removes a community post
func (ctrl *ActionController) DeletePost(c *gin.Context) {
	if p := pipelineFrom(c); p != nil {
		ctrl.delete(c, p.Actions.DeletePost)
	}
}

// UpvoteDiscussion casts an upvote on a discussion
func (ctrl *ActionController) UpvoteDiscussion(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.UpvoteDiscussion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// DownvoteDiscussion casts a downvote on a discussion
func (ctrl *ActionController) DownvoteDiscussion(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.DownvoteDiscussion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// RegisterForEvent registers the current user for an event
func (ctrl *ActionController) RegisterForEvent(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.RegisterForEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Registered")
}

// ToggleRegistration opens or closes event registrations
func (ctrl *ActionController) ToggleRegistration(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.ToggleRegistration(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// PurchaseItem buys a marketplace listing
func (ctrl *ActionController) PurchaseItem(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.PurchaseItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Purchased")
}

// ToggleSold flips a listing between sold and available
func (ctrl *ActionController) ToggleSold(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.ToggleSold(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// ToggleWishlist saves or removes a resource from the wishlist
func (ctrl *ActionController) ToggleWishlist(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	if err := p.Actions.ToggleWishlist(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

// SendChatMessage appends a message to the local chat thread
func (ctrl *ActionController) SendChatMessage(c *gin.Context) {
	p := pipelineFrom(c)
	if p == nil {
		return
	}
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	err := p.Actions.SendChatMessage(dto.ChatMessageRequest{
		ItemID: c.Param("id"),
		Text:   body.Text,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "")
}

func (ctrl *ActionController) delete(c *gin.Context, fn func(ctx context.Context, req dto.DeleteRequest) error) {
	req := dto.DeleteRequest{
		ID:        c.Param("id"),
		Confirmed: c.Query("confirm") == "true",
	}
	if err := fn(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil, "Deleted")
}
