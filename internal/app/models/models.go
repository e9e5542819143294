// Package models holds the canonical in-memory entity shapes. Records enter
// these types only through the normalization step of a full load; render and
// action code never constructs domain entities ad hoc.
package models

import "encoding/json"

// Role defines the portal role of a user
type Role string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"

	// RoleTeacher is the UI-facing alias for RoleFaculty. Older pages and
	// the backend disagree on the name; capability checks normalize it.
	RoleTeacher Role = "teacher"
)

// VerificationStatus is the moderation status of an uploaded resource
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

// PostType distinguishes community post kinds
type PostType string

const (
	PostDiscussion   PostType = "discussion"
	PostAnnouncement PostType = "announcement"
)

// LostFoundType distinguishes lost reports from found reports
type LostFoundType string

const (
	TypeLost  LostFoundType = "lost"
	TypeFound LostFoundType = "found"
)

// Author identifies who created a record. The backend sends either a nested
// user object or just a display name depending on the endpoint, so both
// shapes decode into the same type.
type Author struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// UnmarshalJSON accepts either a JSON string (raw display name) or an object.
func (a *Author) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		a.FullName = name
		return nil
	}

	type alias Author
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Author(aux)
	return nil
}

// Display returns the best available display name for the author.
func (a Author) Display() string {
	if a.FullName != "" {
		return a.FullName
	}
	if a.ID != "" {
		return a.ID
	}
	return "Unknown"
}
