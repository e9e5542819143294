package views

import (
	"sort"
	"strings"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
)

// AnnouncementCategory is the category value that folds announcements into
// the community feed.
const AnnouncementCategory = "Announcements"

// DiscussionFilters are the community section's category selector
type DiscussionFilters struct {
	Category string // "" or "All" = no constraint
}

// Discussions computes the community feed. The generic feed never contains
// announcements; selecting the announcement category merges both kinds into
// one feed ordered newest first.
func (e *Engine) Discussions(f DiscussionFilters) dto.DiscussionFeedView {
	snap := e.store.Snapshot()
	justAdded := e.store.TakeLastAdded(state.CollectionDiscussions)

	var rows []dto.DiscussionRow

	if strings.EqualFold(f.Category, AnnouncementCategory) {
		merged := make([]models.CommunityPost, 0, len(snap.Discussions)+len(snap.Notifications))
		merged = append(merged, snap.Discussions...)
		merged = append(merged, snap.Notifications...)
		// ISO timestamps order lexicographically
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].PostedAt > merged[j].PostedAt
		})
		for _, p := range merged {
			rows = append(rows, discussionRow(p, p.ID == justAdded))
		}
	} else {
		for _, p := range snap.Discussions {
			if f.Category != "" && !strings.EqualFold(f.Category, "All") &&
				!strings.EqualFold(p.Category, f.Category) {
				continue
			}
			rows = append(rows, discussionRow(p, p.ID == justAdded))
		}
	}

	view := dto.DiscussionFeedView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No discussions yet. Start a conversation!"
	}
	return view
}

// Announcements computes the announcements feed on its own
func (e *Engine) Announcements() dto.DiscussionFeedView {
	snap := e.store.Snapshot()

	var rows []dto.DiscussionRow
	for _, p := range snap.Notifications {
		rows = append(rows, discussionRow(p, false))
	}

	view := dto.DiscussionFeedView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No announcements yet."
	}
	return view
}

func discussionRow(p models.CommunityPost, justAdded bool) dto.DiscussionRow {
	comments := make([]dto.CommentRow, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, dto.CommentRow{
			AuthorName: c.AuthorName,
			Message:    c.Message,
		})
	}

	return dto.DiscussionRow{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Category:     p.Category,
		Type:         string(p.Type),
		PostedBy:     p.PostedBy.Display(),
		PostedAt:     formatDate(p.PostedAt),
		Upvotes:      p.Upvotes,
		Downvotes:    p.Downvotes,
		Comments:     comments,
		Announcement: p.IsAnnouncement(),
		JustAdded:    justAdded,
	}
}
