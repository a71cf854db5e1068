package bidding

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/collaborators"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// admissionAttempts bounds how often PlaceBid retries a version conflict
// before surfacing a retryable contention error to the caller.
const admissionAttempts = 2

// SortByAmount and SortByTime are the accepted bid history orderings.
const (
	SortByAmount = "amount"
	SortByTime   = "time"
)

// BiddingService defines the business logic for auction bidding.
type BiddingService struct {
	auctions repository.AuctionStore
	bids     repository.BidStore
	users    collaborators.UserDirectory
	clock    utils.Clock
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(auctions repository.AuctionStore, bids repository.BidStore, users collaborators.UserDirectory, clock utils.Clock) *BiddingService {
	return &BiddingService{
		auctions: auctions,
		bids:     bids,
		users:    users,
		clock:    clock,
	}
}

// PlaceBid validates and records a bidder's raise on an auction.
//
// Admission is optimistic: the auction is read together with its version
// token, all preconditions are checked against that snapshot, and the
// write compare-and-swaps on the token. A lost race re-reads and
// re-validates once, so a concurrent raise to the same amount resolves to
// a deterministic ErrBidTooLow; losing the token twice surfaces
// ErrBidContention, which callers may retry. No lock is held across
// anything slower than a map access.
func (s *BiddingService) PlaceBid(auctionID, bidderID string, amount int64) (models.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if _, err := s.users.FindByID(bidderID); err != nil {
		return models.Bid{}, fmt.Errorf("service: bidder lookup: %w", err)
	}

	for attempt := 0; attempt < admissionAttempts; attempt++ {
		auction, err := s.auctions.GetAuction(auctionID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: %w", err)
		}

		now := s.clock.Now()
		if err := s.admit(auction, bidderID, amount, now); err != nil {
			return models.Bid{}, err
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		}

		recorded, err := s.bids.RecordBid(bid, auction.Version)
		if errors.Is(err, auctionerrors.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %s by bidder %s: %w", auctionID, bidderID, err)
		}
		return recorded, nil
	}

	return models.Bid{}, fmt.Errorf("service: auction %s: %w", auctionID, auctionerrors.ErrBidContention)
}

// admit checks every admission precondition against one auction snapshot.
// The close time, not the status, is the authoritative boundary: a bid
// arriving after close time fails even if the closing sweep has not run.
func (s *BiddingService) admit(auction models.Auction, bidderID string, amount int64, now time.Time) error {
	if auction.Closed(now) {
		return fmt.Errorf("service: auction %s: %w", auction.ID, auctionerrors.ErrAuctionEnded)
	}
	if bidderID == auction.SellerID {
		return fmt.Errorf("service: auction %s: %w", auction.ID, auctionerrors.ErrSelfBid)
	}

	count, err := s.bids.BidderBidCount(auction.ID, bidderID)
	if err != nil {
		return fmt.Errorf("service: failed to check bid count: %w", err)
	}
	if count >= models.MaxBidsPerBidder {
		return fmt.Errorf("service: auction %s bidder %s: %w", auction.ID, bidderID, auctionerrors.ErrBidLimitExceeded)
	}

	// The product's minimum price floors the first bid; afterwards the
	// cached highest amount must be strictly exceeded.
	if auction.HighestAmount == 0 {
		if amount < auction.MinPrice {
			return fmt.Errorf("service: %w - minimum price is %d", auctionerrors.ErrBidTooLow, auction.MinPrice)
		}
	} else if amount <= auction.HighestAmount {
		return fmt.Errorf("service: %w - current highest bid is %d", auctionerrors.ErrBidTooLow, auction.HighestAmount)
	}

	return nil
}

// GetBidsForAuction returns the bid history of an auction, sorted by
// amount (descending, ties by admission order) or by creation time.
func (s *BiddingService) GetBidsForAuction(auctionID, sortBy string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.bids.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	switch sortBy {
	case SortByAmount:
		sort.Slice(bids, func(i, j int) bool {
			if bids[i].Amount != bids[j].Amount {
				return bids[i].Amount > bids[j].Amount
			}
			return bids[i].Seq < bids[j].Seq
		})
	case SortByTime, "":
		sort.Slice(bids, func(i, j int) bool {
			if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
				return bids[i].CreatedAt.Before(bids[j].CreatedAt)
			}
			return bids[i].Seq < bids[j].Seq
		})
	default:
		return nil, fmt.Errorf("service: %w - unknown sort %q", auctionerrors.ErrInvalidRequest, sortBy)
	}

	return bids, nil
}

// GetWinningBid returns the currently leading bid for an auction.
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	winningBid, err := s.bids.GetWinningBid(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	return winningBid, nil
}

// GetAuctionsByBidder returns all auctions a bidder has placed bids on.
func (s *BiddingService) GetAuctionsByBidder(bidderID string) ([]models.Auction, error) {
	if bidderID == "" {
		return nil, fmt.Errorf("service: %w - empty bidder ID", auctionerrors.ErrInvalidBid)
	}

	auctions, err := s.bids.GetAuctionsByBidder(bidderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for bidder %s: %w", bidderID, err)
	}

	return auctions, nil
}
