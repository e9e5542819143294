package models

// Event defines a campus event with optional external registration
type Event struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Date               string `json:"date"` // ISO timestamp or date string from the backend
	Venue              string `json:"venue"`
	Description        string `json:"description"`
	Image              string `json:"image,omitempty"`    // Poster, unified from backend image aliases
	FormLink           string `json:"formLink,omitempty"` // Optional external registration form
	Organizer          Author `json:"organizer"`
	RegistrationClosed bool   `json:"registrationClosed"`
	Registered         bool   `json:"registered"` // Whether the current user already registered
}

// LostFoundPost defines a lost or found report
type LostFoundPost struct {
	ID          string        `json:"id"`
	Type        LostFoundType `json:"type"` // lost | found
	ItemName    string        `json:"itemName"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Contact     string        `json:"contact"`
	Image       string        `json:"image,omitempty"`
	PostedBy    Author        `json:"postedBy"`
	CreatedAt   string        `json:"createdAt"`
}
