package dto

// View models are what the render pipeline produces: entity rows plus the
// computed flags a page needs, with no markup. Every list view carries an
// Empty placeholder when zero rows match, so pages always have something
// defined to show.

// ResourceRow is one academic resource as a view sees it
type ResourceRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Branch      string `json:"branch"`
	Semester    string `json:"semester"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
	UploadedBy  string `json:"uploadedBy"`
	UploadedAt  string `json:"uploadedAt"`
	Verified    bool   `json:"verified"`
	Status      string `json:"status"`
	Upvotes     int    `json:"upvotes"`
	Downloads   int    `json:"downloads"`
	Wishlisted  bool   `json:"wishlisted"`
	JustAdded   bool   `json:"justAdded,omitempty"`
}

// ResourceListView is the filtered resources section
type ResourceListView struct {
	Rows  []ResourceRow `json:"rows"`
	Empty string        `json:"empty,omitempty"`
}

// MarketplaceRow is one listing with its per-viewer action flags
type MarketplaceRow struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Contact     string  `json:"contact"`
	Image       string  `json:"image,omitempty"`
	PostedBy    string  `json:"postedBy"`
	CreatedAt   string  `json:"createdAt"`
	Sold        bool    `json:"sold"`
	Mine        bool    `json:"mine"`
	CanBuy      bool    `json:"canBuy"`
	CanMarkSold bool    `json:"canMarkSold"`
	JustAdded   bool    `json:"justAdded,omitempty"`
}

// MarketplaceView is the marketplace grid
type MarketplaceView struct {
	Rows  []MarketplaceRow `json:"rows"`
	Empty string           `json:"empty,omitempty"`
}

// EventRow is one event with registration state resolved for the viewer
type EventRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	FormLink    string `json:"formLink,omitempty"`
	Organizer   string `json:"organizer"`
	Closed      bool   `json:"closed"`
	Registered  bool   `json:"registered"`
	CanRegister bool   `json:"canRegister"`
	CanManage   bool   `json:"canManage"`
}

// EventListView is the public events grid
type EventListView struct {
	Rows  []EventRow `json:"rows"`
	Empty string     `json:"empty,omitempty"`
}

// LostFoundRow is one lost or found report
type LostFoundRow struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Image       string `json:"image,omitempty"`
	PostedBy    string `json:"postedBy"`
	CreatedAt   string `json:"createdAt"`
	JustAdded   bool   `json:"justAdded,omitempty"`
}

// LostFoundView is the lost and found list
type LostFoundView struct {
	Rows  []LostFoundRow `json:"rows"`
	Empty string         `json:"empty,omitempty"`
}

// CommentRow is one reply on a discussion
type CommentRow struct {
	AuthorName string `json:"authorName"`
	Message    string `json:"message"`
}

// DiscussionRow is one community post in a feed
type DiscussionRow struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Content      string       `json:"content"`
	Category     string       `json:"category"`
	Type         string       `json:"type"`
	PostedBy     string       `json:"postedBy"`
	PostedAt     string       `json:"postedAt"`
	Upvotes      int          `json:"upvotes"`
	Downvotes    int          `json:"downvotes"`
	Comments     []CommentRow `json:"comments,omitempty"`
	Announcement bool         `json:"announcement"`
	JustAdded    bool         `json:"justAdded,omitempty"`
}

// DiscussionFeedView is the community feed under the active category filter
type DiscussionFeedView struct {
	Rows  []DiscussionRow `json:"rows"`
	Empty string          `json:"empty,omitempty"`
}

// AdminUserRow is one user row in the admin management view
type AdminUserRow struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	RegisteredID string `json:"registeredId"`
	Role         string `json:"role"`
	Banned       bool   `json:"banned"`
}

// AdminUserListView is the filtered admin user list
type AdminUserListView struct {
	Rows  []AdminUserRow `json:"rows"`
	Empty string         `json:"empty,omitempty"`
}

// OrganizerRequestRow is one pending organizer approval
type OrganizerRequestRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RequestedBy string `json:"requestedBy"`
	Email       string `json:"email"`
}

// OrganizerRequestListView is the pending organizer approval queue
type OrganizerRequestListView struct {
	Rows  []OrganizerRequestRow `json:"rows"`
	Empty string                `json:"empty,omitempty"`
}

// ModerationRow is one content row in the admin moderation view
type ModerationRow struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Section string `json:"section"`
}

// ModerationView renders nothing until both a role and a section are
// selected; Ready reports whether the gate has been passed.
type ModerationView struct {
	Ready bool            `json:"ready"`
	Rows  []ModerationRow `json:"rows"`
	Empty string          `json:"empty,omitempty"`
}

// PendingVerificationView lists resources awaiting a faculty decision
type PendingVerificationView struct {
	Rows  []ResourceRow `json:"rows"`
	Count int           `json:"count"`
	Empty string        `json:"empty,omitempty"`
}

// ChatThreadView is the ephemeral chat modal content for one listing
type ChatThreadView struct {
	ItemID   string     `json:"itemId"`
	Messages []ChatLine `json:"messages"`
}

// ChatLine is one message in a chat thread
type ChatLine struct {
	ID     string `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
	SentAt string `json:"sentAt"`
}

// StudentStats summarizes the student dashboard counters
type StudentStats struct {
	Resources  int `json:"resources"`
	MyUploads  int `json:"myUploads"`
	Events     int `json:"events"`
	Wishlisted int `json:"wishlisted"`
}

// FacultyStats summarizes the faculty dashboard counters
type FacultyStats struct {
	Resources       int `json:"resources"`
	PendingVerify   int `json:"pendingVerify"`
	MyVerifications int `json:"myVerifications"`
}

// OrganizerStats summarizes the organizer dashboard counters
type OrganizerStats struct {
	MyEvents      int `json:"myEvents"`
	Announcements int `json:"announcements"`
}

// AdminStats summarizes the admin dashboard counters
type AdminStats struct {
	Users           int `json:"users"`
	Banned          int `json:"banned"`
	PendingRequests int `json:"pendingRequests"`
	Resources       int `json:"resources"`
	Events          int `json:"events"`
}

// StatsView carries the counters for whichever dashboard the viewer owns
type StatsView struct {
	Role      string          `json:"role"`
	Student   *StudentStats   `json:"student,omitempty"`
	Faculty   *FacultyStats   `json:"faculty,omitempty"`
	Organizer *OrganizerStats `json:"organizer,omitempty"`
	Admin     *AdminStats     `json:"admin,omitempty"`
}
