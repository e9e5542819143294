package models

// MarketplaceItem defines a second-hand listing on the campus marketplace
type MarketplaceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Contact     string  `json:"contact"`
	Image       string  `json:"image,omitempty"` // Optional, unified from backend image aliases
	PostedBy    Author  `json:"postedBy"`
	CreatedAt   string  `json:"createdAt"`
	Sold        bool    `json:"sold"`
	PurchasedBy string  `json:"purchasedBy,omitempty"` // Buyer user id once sold through the portal
}

// PurchasableBy reports whether the given user may buy this item. Sold items
// never re-target, and sellers cannot buy their own listing.
func (m MarketplaceItem) PurchasableBy(userID string) bool {
	if m.Sold || userID == "" {
		return false
	}
	return m.PostedBy.ID != userID
}
