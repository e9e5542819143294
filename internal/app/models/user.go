package models

import "time"

// User defines a portal user as the admin endpoints return it. The client
// only reads, bans and deletes users; creation belongs to the backend.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	RegisteredID string `json:"registeredId"` // Campus registration number
	Role         Role   `json:"role"`
	Banned       bool   `json:"banned"`
}

// OrganizerRequest is a pending request to grant organizer rights. The queue
// is client-local until an admin approves or rejects an entry.
type OrganizerRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`        // Club or society name
	RequestedBy string `json:"requestedBy"` // Registration number of the requester
	Email       string `json:"email"`
}

// Account is the logged-in user as carried in the session. It is the only
// identity the pipeline consults for capability decisions.
type Account struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// ChatMessage is one line of the ephemeral per-item marketplace chat. The
// thread lives in the Store only and is never sent to the backend.
type ChatMessage struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}
