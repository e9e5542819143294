package models

// CommunityPost defines a discussion thread or an announcement
type CommunityPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Type      PostType  `json:"type"` // discussion | announcement
	PostedBy  Author    `json:"postedBy"`
	PostedAt  string    `json:"postedAt"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Comments  []Comment `json:"comments,omitempty"` // Append-only, owned by this post
}

// IsAnnouncement reports whether the post belongs in the announcements feed
// rather than generic discussion lists.
func (p CommunityPost) IsAnnouncement() bool {
	return p.Type == PostAnnouncement
}

// Comment is a single reply on a community post
type Comment struct {
	AuthorName string `json:"authorName"`
	Message    string `json:"message"`
}
