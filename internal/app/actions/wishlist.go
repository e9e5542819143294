package actions

import (
	"context"
	"net/http"

	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// ToggleWishlist saves or removes a resource from the current user's
// wishlist, choosing the endpoint by current membership. Only the wishlist
// is re-fetched afterwards; the resource and wishlist views redraw, nothing
// else does.
func (s *Service) ToggleWishlist(ctx context.Context, resourceID string) error {
	if resourceID == "" {
		return apperrors.NewRequiredFieldError("resourceId")
	}
	if s.store.CurrentUser() == nil {
		return apperrors.ErrNotLoggedIn
	}

	endpoint := "/wishlist/add"
	if s.wishlisted(resourceID) {
		endpoint = "/wishlist/remove"
	}

	if _, err := s.client.Call(ctx, http.MethodPost, endpoint, map[string]string{
		"resourceId": resourceID,
	}); err != nil {
		return err
	}

	return s.loader.ReloadWishlist(ctx)
}

func (s *Service) wishlisted(resourceID string) bool {
	for _, id := range s.store.Snapshot().Wishlist {
		if id == resourceID {
			return true
		}
	}
	return false
}
