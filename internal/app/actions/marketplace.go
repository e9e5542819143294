package actions

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/client"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// PostItem lists an item on the marketplace. An image must be selected
// client-side before anything goes out.
func (s *Service) PostItem(ctx context.Context, req dto.PostItemRequest) error {
	return s.submitGuarded(func() error {
		if err := requireFields(map[string]string{
			"title":   req.Title,
			"contact": req.Contact,
		}); err != nil {
			return err
		}
		if req.Image == nil {
			return apperrors.NewValidationError("image", "an image must be selected")
		}

		payload, err := s.client.CallWithFormData(ctx, "/marketplace", map[string]string{
			"title":       req.Title,
			"price":       strconv.FormatFloat(req.Price, 'f', -1, 64),
			"description": req.Description,
			"contact":     req.Contact,
		}, []client.FilePart{{
			Field:    "image",
			FileName: req.Image.FileName,
			Content:  req.Image.Content,
		}})
		if err != nil {
			return err
		}

		if err := s.refresh(ctx); err != nil {
			return err
		}
		if id := createdID(payload, "item"); id != "" {
			s.store.MarkLastAdded(state.CollectionMarketplace, id)
		}
		return nil
	})
}

// PurchaseItem buys a listing. Sold items and the viewer's own listings are
// rejected before the backend is asked; the backend stays the arbiter of
// races between two buyers.
func (s *Service) PurchaseItem(ctx context.Context, itemID string) error {
	item, ok := s.findItem(itemID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionPurchaseItem, item); !decision.Allowed {
		return apperrors.NewValidationError("", decision.Reason)
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/marketplace/%s/purchase", itemID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// ToggleSold flips a listing between sold and available. Seller only.
func (s *Service) ToggleSold(ctx context.Context, itemID string) error {
	item, ok := s.findItem(itemID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionToggleSold, item); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/marketplace/%s/sold", itemID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DeleteItem removes a listing after confirmation
func (s *Service) DeleteItem(ctx context.Context, req dto.DeleteRequest) error {
	if err := confirmDelete(req); err != nil {
		return err
	}

	item, ok := s.findItem(req.ID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionDeleteItem, item); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodDelete, fmt.Sprintf("/marketplace/%s", req.ID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// SendChatMessage appends to the ephemeral chat thread of a listing. The
// thread is UI-only state: no backend call, no persistence.
func (s *Service) SendChatMessage(req dto.ChatMessageRequest) error {
	if err := requireFields(map[string]string{
		"itemId": req.ItemID,
		"text":   req.Text,
	}); err != nil {
		return err
	}

	sender := "You"
	if user := s.store.CurrentUser(); user != nil && user.FullName != "" {
		sender = user.FullName
	}

	s.store.AppendChat(req.ItemID, models.ChatMessage{
		ID:     uuid.NewString(),
		Sender: sender,
		Text:   req.Text,
		SentAt: time.Now(),
	})
	return nil
}

func (s *Service) findItem(id string) (models.MarketplaceItem, bool) {
	for _, item := range s.store.Snapshot().MarketplaceItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MarketplaceItem{}, false
}
