package repository

import (
	"fmt"
	"sort"
	"time"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// CreateAuction stores a new auction, enforcing at most one auction per
// product. A second promotion of the same product fails, it never
// silently returns the existing auction.
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[auction.ProductID]; !ok {
		return fmt.Errorf("create auction for product %s: %w", auction.ProductID, auctionerrors.ErrProductNotFound)
	}
	if _, ok := r.productAuction[auction.ProductID]; ok {
		return fmt.Errorf("create auction for product %s: %w", auction.ProductID, auctionerrors.ErrAlreadyAuctioned)
	}

	r.auctions[auction.ID] = auction
	r.productAuction[auction.ProductID] = auction.ID
	return nil
}

// GetAuction returns the auction with the given ID.
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// GetAuctionByProduct returns the auction created from a product, if any.
func (r *MemoryRepo) GetAuctionByProduct(productID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionID, ok := r.productAuction[productID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction for product %s: %w", productID, auctionerrors.ErrAuctionNotFound)
	}
	return r.auctions[auctionID], nil
}

// ListAuctions returns auctions sorted by close time ascending (shortest
// time remaining first), optionally filtered by status.
func (r *MemoryRepo) ListAuctions(status model.AuctionStatus) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		if status != "" && a.Status != status {
			continue
		}
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].CloseTime.Before(auctions[j].CloseTime)
	})
	return auctions, nil
}

// DueAuctions returns PROCEEDING auctions whose close time has elapsed.
func (r *MemoryRepo) DueAuctions(now time.Time) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []model.Auction
	for _, a := range r.auctions {
		if a.Status == model.StatusProceeding && !now.Before(a.CloseTime) {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].CloseTime.Before(due[j].CloseTime)
	})
	return due, nil
}

// CloseAuction atomically transitions an auction to ENDED and selects
// the winning bid: highest amount, ties broken by earliest creation time
// and then by insertion sequence. It holds the same lock RecordBid takes,
// so no bid can slip in during winner selection, and any in-flight
// admission holding a stale version token fails afterwards.
//
// Closing an already ENDED auction is a no-op, reported by the returned
// bool, so overlapping sweeps are safe.
func (r *MemoryRepo) CloseAuction(auctionID string, now time.Time) (model.Auction, model.Bid, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, model.Bid{}, false, fmt.Errorf("close auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auction.Status == model.StatusEnded {
		return auction, model.Bid{}, false, nil
	}

	var winner model.Bid
	var hasWinner bool
	for _, b := range r.bids[auctionID] {
		if !hasWinner || beats(b, winner) {
			winner = b
			hasWinner = true
		}
	}

	auction.Status = model.StatusEnded
	if hasWinner {
		auction.WinnerBidID = winner.BidID
		auction.WinningBidderID = winner.BidderID
	}
	auction.Version++
	auction.UpdatedAt = now
	r.auctions[auctionID] = auction

	return auction, winner, true, nil
}

// beats reports whether bid a wins over bid b.
func beats(a, b model.Bid) bool {
	if a.Amount != b.Amount {
		return a.Amount > b.Amount
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}
