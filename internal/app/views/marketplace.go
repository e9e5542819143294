package views

import (
	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
)

// MarketplaceFilters are the marketplace section's scoping controls
type MarketplaceFilters struct {
	MyPurchases bool // Show only items the current user bought
}

// Marketplace computes the marketplace grid. Sold items never expose a buy
// action, and neither does a viewer's own listing.
func (e *Engine) Marketplace(f MarketplaceFilters) dto.MarketplaceView {
	snap := e.store.Snapshot()
	user := e.store.CurrentUser()
	justAdded := e.store.TakeLastAdded(state.CollectionMarketplace)

	userID := ""
	if user != nil {
		userID = user.ID
	}

	var rows []dto.MarketplaceRow
	for _, item := range snap.MarketplaceItems {
		if f.MyPurchases {
			if userID == "" || item.PurchasedBy != userID {
				continue
			}
		}

		mine := userID != "" && item.PostedBy.ID == userID
		rows = append(rows, dto.MarketplaceRow{
			ID:          item.ID,
			Title:       item.Title,
			Price:       item.Price,
			Description: item.Description,
			Contact:     item.Contact,
			Image:       item.Image,
			PostedBy:    item.PostedBy.Display(),
			CreatedAt:   formatDate(item.CreatedAt),
			Sold:        item.Sold,
			Mine:        mine,
			CanBuy:      auth.Can(user, auth.ActionPurchaseItem, item).Allowed,
			CanMarkSold: auth.Can(user, auth.ActionToggleSold, item).Allowed,
			JustAdded:   item.ID == justAdded,
		})
	}

	view := dto.MarketplaceView{Rows: rows}
	if len(rows) == 0 {
		if f.MyPurchases {
			view.Empty = "You have not purchased anything yet."
		} else {
			view.Empty = "No items listed yet. Post something to sell!"
		}
	}
	return view
}

// ChatThread computes the ephemeral chat modal for a listing
func (e *Engine) ChatThread(itemID string) dto.ChatThreadView {
	messages := e.store.ChatThread(itemID)

	lines := make([]dto.ChatLine, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, dto.ChatLine{
			ID:     m.ID,
			Sender: m.Sender,
			Text:   m.Text,
			SentAt: m.SentAt.Format("15:04"),
		})
	}

	return dto.ChatThreadView{ItemID: itemID, Messages: lines}
}
