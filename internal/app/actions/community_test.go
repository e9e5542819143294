package actions

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

func TestPostDiscussionFlagsNewThread(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})
	f.respond(http.MethodPost, "/community", `{"post":{"_id":"p9","title":"New thread"}}`)

	err := svc.PostDiscussion(context.Background(), dto.PostDiscussionRequest{
		Title:    "New thread",
		Content:  "anyone up for a study group?",
		Category: "Academics",
	})
	if err != nil {
		t.Fatalf("PostDiscussion failed: %v", err)
	}

	if got := store.TakeLastAdded(state.CollectionDiscussions); got != "p9" {
		t.Errorf("new thread must carry the highlight mark, got %q", got)
	}
}

func TestPostAnnouncementOrganizerOnly(t *testing.T) {
	svc, store, f := setupService(t)

	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})
	err := svc.PostAnnouncement(context.Background(), dto.PostAnnouncementRequest{Content: "Fest next week"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("students must not announce, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("denied announcement must not hit the network")
	}

	store.SetCurrentUser(&models.Account{ID: "o1", Role: models.RoleOrganizer})
	if err := svc.PostAnnouncement(context.Background(), dto.PostAnnouncementRequest{Content: "Fest next week"}); err != nil {
		t.Errorf("organizer announcement failed: %v", err)
	}
}

func TestAddCommentValidation(t *testing.T) {
	svc, _, f := setupService(t)

	if err := svc.AddComment(context.Background(), dto.CommentRequest{PostID: "p1"}); !apperrors.IsValidation(err) {
		t.Errorf("empty message must fail validation, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("validation failure must not hit the network")
	}
}

func TestDeletePostSearchesBothFeeds(t *testing.T) {
	svc, store, _ := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "adm", Role: models.RoleAdmin})
	store.Install(state.Collections{
		Discussions:   []models.CommunityPost{{ID: "p1", PostedBy: models.Author{ID: "u1"}}},
		Notifications: []models.CommunityPost{{ID: "a1", PostedBy: models.Author{ID: "o1"}}},
	})

	// An announcement is deletable even though it lives in the other feed
	if err := svc.DeletePost(context.Background(), dto.DeleteRequest{ID: "a1", Confirmed: true}); err != nil {
		t.Errorf("announcement delete failed: %v", err)
	}

	err := svc.DeletePost(context.Background(), dto.DeleteRequest{ID: "ghost", Confirmed: true})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePostPosterOrAdminOnly(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u2", Role: models.RoleStudent})
	store.Install(state.Collections{
		Discussions: []models.CommunityPost{{ID: "p1", PostedBy: models.Author{ID: "u1"}}},
	})

	err := svc.DeletePost(context.Background(), dto.DeleteRequest{ID: "p1", Confirmed: true})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("denied delete must not hit the network")
	}
}
