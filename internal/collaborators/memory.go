package collaborators

import (
	"fmt"
	"sync"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// MemoryImageStore is an in-process ImageStore producing deterministic
// CDN-style URLs. It backs local runs and integration tests.
type MemoryImageStore struct {
	mu     sync.Mutex
	stored map[string]bool
	next   int
}

// NewMemoryImageStore creates an empty in-memory image store.
func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{stored: make(map[string]bool)}
}

// Upload stores the files and returns one URL per file, in order.
func (s *MemoryImageStore) Upload(files []model.ImageFile) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(files))
	for _, f := range files {
		s.next++
		url := fmt.Sprintf("https://cdn.local/images/%d-%s", s.next, f.Name)
		s.stored[url] = true
		urls = append(urls, url)
	}
	return urls, nil
}

// Delete removes previously uploaded URLs. Unknown URLs are ignored.
func (s *MemoryImageStore) Delete(urls []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, url := range urls {
		delete(s.stored, url)
	}
	return nil
}

// Stored reports whether a URL is currently held by the store.
func (s *MemoryImageStore) Stored(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored[url]
}

// MemoryUserDirectory is an in-process UserDirectory seeded at startup.
type MemoryUserDirectory struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryUserDirectory creates an empty in-memory user directory.
func NewMemoryUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{users: make(map[string]model.User)}
}

// AddUser registers a user in the directory.
func (d *MemoryUserDirectory) AddUser(user model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID] = user
}

// FindByID looks up a user by ID.
func (d *MemoryUserDirectory) FindByID(userID string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("find user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// RecordingSink is an in-process PaymentSink and NotificationSink that
// records every delivery, for local runs and tests.
type RecordingSink struct {
	mu            sync.Mutex
	wonAuctions   []string
	endedAuctions []string
	canceled      []string
}

// NewRecordingSink creates an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// AuctionWon records a payment trigger for the winning bid.
func (s *RecordingSink) AuctionWon(auction model.Auction, winning model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wonAuctions = append(s.wonAuctions, auction.ID)
	return nil
}

// AuctionEnded records an end-of-auction notification.
func (s *RecordingSink) AuctionEnded(auction model.Auction, winnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endedAuctions = append(s.endedAuctions, auction.ID)
	return nil
}

// RegistrationCanceled records a cancellation notification to likers.
func (s *RecordingSink) RegistrationCanceled(product model.Product, likerIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canceled = append(s.canceled, product.ID)
	return nil
}

// WonAuctions returns the auction IDs payment was triggered for.
func (s *RecordingSink) WonAuctions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.wonAuctions...)
}

// EndedAuctions returns the auction IDs end notifications went out for.
func (s *RecordingSink) EndedAuctions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.endedAuctions...)
}

// CanceledProducts returns the product IDs cancellation notices went out for.
func (s *RecordingSink) CanceledProducts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.canceled...)
}
