// Package state holds the single in-memory application state. The Loader is
// the only writer for fetched collections; everything else may only touch
// the ephemeral UI fields through the setters here.
package state

import (
	"sync"

	"github.com/campuslink/portal/internal/app/models"
)

// Collection names used for the last-added marker
const (
	CollectionResources   = "resources"
	CollectionMarketplace = "marketplaceItems"
	CollectionEvents      = "events"
	CollectionLostFound   = "lostFoundItems"
	CollectionDiscussions = "discussions"
)

// Collections are the fetched domain collections. They are replaced
// wholesale by a load, never patched in place.
type Collections struct {
	Resources         []models.Resource
	MarketplaceItems  []models.MarketplaceItem
	Events            []models.Event
	LostFoundItems    []models.LostFoundPost
	Discussions       []models.CommunityPost
	Notifications     []models.CommunityPost // Announcements, partitioned at load time
	Users             []models.User
	OrganizerRequests []models.OrganizerRequest
	Wishlist          []string // Resource ids saved by the current user
}

// Mark flags the most recently created entity so a view can highlight it
// once. It self-clears on the next render of its collection.
type Mark struct {
	Collection string
	ID         string
}

// Store is the application state container
type Store struct {
	mu          sync.RWMutex
	collections Collections
	currentUser *models.Account
	submitting  bool
	lastAdded   Mark
	chats       map[string][]models.ChatMessage
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		chats: make(map[string][]models.ChatMessage),
	}
}

// Install replaces every fetched collection at once. Only the Loader calls
// this, after all sub-fetches have settled, so readers never observe a
// partially refreshed state. The client-local organizer request queue is
// not part of a load and survives it.
func (s *Store) Install(c Collections) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.OrganizerRequests = s.collections.OrganizerRequests
	s.collections = c
}

// SetWishlist replaces only the wishlist collection. This is the narrow
// refresh path used by the wishlist toggle.
func (s *Store) SetWishlist(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections.Wishlist = append([]string(nil), ids...)
}

// Snapshot returns a copy of the fetched collections. Slices are copied at
// the top level; consumers treat rows as read-only.
func (s *Store) Snapshot() Collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.collections
	c.Resources = append([]models.Resource(nil), c.Resources...)
	c.MarketplaceItems = append([]models.MarketplaceItem(nil), c.MarketplaceItems...)
	c.Events = append([]models.Event(nil), c.Events...)
	c.LostFoundItems = append([]models.LostFoundPost(nil), c.LostFoundItems...)
	c.Discussions = append([]models.CommunityPost(nil), c.Discussions...)
	c.Notifications = append([]models.CommunityPost(nil), c.Notifications...)
	c.Users = append([]models.User(nil), c.Users...)
	c.OrganizerRequests = append([]models.OrganizerRequest(nil), c.OrganizerRequests...)
	c.Wishlist = append([]string(nil), c.Wishlist...)
	return c
}

// CurrentUser returns the logged-in account, or nil
func (s *Store) CurrentUser() *models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// SetCurrentUser installs the logged-in account
func (s *Store) SetCurrentUser(account *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if account == nil {
		s.currentUser = nil
		return
	}
	u := *account
	s.currentUser = &u
}

// BeginSubmit marks a form submission as in progress. It returns false when
// one is already running, which callers must treat as a no-op.
func (s *Store) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit clears the submission flag. Handlers call it on every exit path.
func (s *Store) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// Submitting reports whether a form submission is in progress
func (s *Store) Submitting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitting
}

// MarkLastAdded flags the most recently created entity of a collection
func (s *Store) MarkLastAdded(collection, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAdded = Mark{Collection: collection, ID: id}
}

// TakeLastAdded returns the marked id for a collection and clears the mark,
// so the highlight shows exactly once.
func (s *Store) TakeLastAdded(collection string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastAdded.Collection != collection {
		return ""
	}
	id := s.lastAdded.ID
	s.lastAdded = Mark{}
	return id
}

// AppendChat adds a message to the ephemeral chat thread of a marketplace
// item. Threads are local-only and vanish on logout.
func (s *Store) AppendChat(itemID string, msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[itemID] = append(s.chats[itemID], msg)
}

// ChatThread returns a copy of the chat thread for a marketplace item
func (s *Store) ChatThread(itemID string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ChatMessage(nil), s.chats[itemID]...)
}

// AddOrganizerRequest appends to the client-local pending queue
func (s *Store) AddOrganizerRequest(req models.OrganizerRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections.OrganizerRequests = append(s.collections.OrganizerRequests, req)
}

// RemoveOrganizerRequest drops a request from the pending queue after an
// admin approved or rejected it.
func (s *Store) RemoveOrganizerRequest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.collections.OrganizerRequests[:0]
	for _, r := range s.collections.OrganizerRequests {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.collections.OrganizerRequests = kept
}

// Reset clears everything at logout
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = Collections{}
	s.currentUser = nil
	s.submitting = false
	s.lastAdded = Mark{}
	s.chats = make(map[string][]models.ChatMessage)
}
