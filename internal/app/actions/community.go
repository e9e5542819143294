package actions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// PostDiscussion starts a discussion thread
func (s *Service) PostDiscussion(ctx context.Context, req dto.PostDiscussionRequest) error {
	return s.submitGuarded(func() error {
		if err := requireFields(map[string]string{
			"title":   req.Title,
			"content": req.Content,
		}); err != nil {
			return err
		}

		payload, err := s.client.Call(ctx, http.MethodPost, "/community", map[string]string{
			"title":    req.Title,
			"content":  req.Content,
			"category": req.Category,
			"type":     string(models.PostDiscussion),
		})
		if err != nil {
			return err
		}

		if err := s.refresh(ctx); err != nil {
			return err
		}
		if id := createdID(payload, "post"); id != "" {
			s.store.MarkLastAdded(state.CollectionDiscussions, id)
		}
		return nil
	})
}

// PostAnnouncement publishes an announcement. Organizer or admin only.
func (s *Service) PostAnnouncement(ctx context.Context, req dto.PostAnnouncementRequest) error {
	return s.submitGuarded(func() error {
		if decision := auth.Can(s.store.CurrentUser(), auth.ActionPostAnnouncement, nil); !decision.Allowed {
			return apperrors.ErrPermissionDenied
		}
		if err := requireFields(map[string]string{"content": req.Content}); err != nil {
			return err
		}

		_, err := s.client.Call(ctx, http.MethodPost, "/community/announcements", map[string]string{
			"content": req.Content,
			"type":    string(models.PostAnnouncement),
		})
		if err != nil {
			return err
		}
		return s.refresh(ctx)
	})
}

// AddComment appends a reply to a community post. Replies are append-only;
// the refreshed server copy is the one rendered.
func (s *Service) AddComment(ctx context.Context, req dto.CommentRequest) error {
	if err := requireFields(map[string]string{
		"postId":  req.PostID,
		"message": req.Message,
	}); err != nil {
		return err
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/community/%s/reply", req.PostID), map[string]string{
		"message": req.Message,
	}); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// UpvoteDiscussion casts an upvote; the count shown is always the
// post-refresh server value.
func (s *Service) UpvoteDiscussion(ctx context.Context, postID string) error {
	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/community/%s/upvote", postID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DownvoteDiscussion casts a downvote
func (s *Service) DownvoteDiscussion(ctx context.Context, postID string) error {
	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/community/%s/downvote", postID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DeletePost removes a discussion or announcement after confirmation. The
// full refresh matters here: deleting an announcement changes both the
// announcements feed and the merged community counts.
func (s *Service) DeletePost(ctx context.Context, req dto.DeleteRequest) error {
	if err := confirmDelete(req); err != nil {
		return err
	}

	post, ok := s.findPost(req.ID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionDeletePost, post); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodDelete, fmt.Sprintf("/community/%s", req.ID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// findPost searches both feeds; moderation can delete announcements too.
func (s *Service) findPost(id string) (models.CommunityPost, bool) {
	snap := s.store.Snapshot()
	for _, p := range snap.Discussions {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range snap.Notifications {
		if p.ID == id {
			return p, true
		}
	}
	return models.CommunityPost{}, false
}
