package repository

import (
	"fmt"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// RecordBid appends a validated bid to the ledger. expectedVersion is the
// auction version the caller validated against: if the token has moved
// (another bid was admitted or the auction was closed) the write fails
// with ErrVersionConflict and nothing is stored. On success the bid is
// assigned its insertion sequence and the bidder's running count, the
// auction's cached highest amount is updated and the version bumped, all
// under one lock.
func (r *MemoryRepo) RecordBid(bid model.Bid, expectedVersion uint64) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return model.Bid{}, fmt.Errorf("record bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if auction.Status == model.StatusEnded || !bid.CreatedAt.Before(auction.CloseTime) {
		return model.Bid{}, fmt.Errorf("record bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionEnded)
	}
	if auction.Version != expectedVersion {
		return model.Bid{}, fmt.Errorf("record bid on auction %s: %w", bid.AuctionID, auctionerrors.ErrVersionConflict)
	}

	counts := r.bidderCounts[bid.AuctionID]
	if counts == nil {
		counts = make(map[string]int)
		r.bidderCounts[bid.AuctionID] = counts
	}
	counts[bid.BidderID]++
	bid.Count = counts[bid.BidderID]

	r.seq++
	bid.Seq = r.seq
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)

	auction.HighestAmount = bid.Amount
	auction.Version++
	auction.UpdatedAt = bid.CreatedAt
	r.auctions[bid.AuctionID] = auction

	if bid.Count == 1 {
		r.bidderAuctions[bid.BidderID] = append(r.bidderAuctions[bid.BidderID], bid.AuctionID)
	}

	return bid, nil
}

// BidderBidCount returns how many bids a bidder has placed on an auction.
func (r *MemoryRepo) BidderBidCount(auctionID, bidderID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return 0, fmt.Errorf("bid count on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return r.bidderCounts[auctionID][bidderID], nil
}

// GetBidsByAuction returns all bids for an auction in admission order.
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetWinningBid returns the currently leading bid for an auction.
func (r *MemoryRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	bids := r.bids[auctionID]
	if len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if beats(b, winning) {
			winning = b
		}
	}
	return winning, nil
}

// GetAuctionsByBidder returns all auctions a bidder has placed bids on.
func (r *MemoryRepo) GetAuctionsByBidder(bidderID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionIDs, ok := r.bidderAuctions[bidderID]
	if !ok || len(auctionIDs) == 0 {
		return nil, fmt.Errorf("get auctions for bidder %s: %w", bidderID, auctionerrors.ErrUserNoBids)
	}

	auctions := make([]model.Auction, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		if a, exists := r.auctions[id]; exists {
			auctions = append(auctions, a)
		}
	}
	return auctions, nil
}
