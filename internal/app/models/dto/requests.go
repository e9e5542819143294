package dto

import "io"

// FileUpload is a file selected client-side for an image- or file-bearing
// creation. Creations that require one are rejected before any network call
// when it is missing.
type FileUpload struct {
	FileName string
	Content  io.Reader
}

// LoginRequest carries portal credentials
type LoginRequest struct {
	RegisteredID string `json:"registeredId" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
}

// LoginResponse returns the session key the portal pages hold on to
type LoginResponse struct {
	SessionKey string `json:"sessionKey"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
}

// UploadResourceRequest creates an academic resource
type UploadResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Branch      string `json:"branch"`
	Semester    string `json:"semester"`
	Description string `json:"description"`
	File        *FileUpload
}

// PostItemRequest creates a marketplace listing
type PostItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Contact     string  `json:"contact" binding:"required"`
	Image       *FileUpload
}

// PostLostFoundRequest creates a lost or found report
type PostLostFoundRequest struct {
	Type        string `json:"type" binding:"required"`
	ItemName    string `json:"itemName" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Image       *FileUpload
}

// PostDiscussionRequest creates a discussion thread
type PostDiscussionRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// PostAnnouncementRequest creates an announcement (organizer or admin only)
type PostAnnouncementRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateEventRequest creates a campus event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	FormLink    string `json:"formLink"`
	Poster      *FileUpload
}

// DeleteRequest identifies an entity for a destructive action. Confirmed
// must be set; unconfirmed deletes fail client-side.
type DeleteRequest struct {
	ID        string `json:"id" binding:"required"`
	Confirmed bool   `json:"confirmed"`
}

// CommentRequest appends a reply to a community post
type CommentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ChatMessageRequest appends a line to the local chat thread of an item
type ChatMessageRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}
