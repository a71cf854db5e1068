package closer

import (
	"context"
	"time"

	"auction-market/internal/collaborators"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// Closer is the recurring sweep that finalizes due auctions: it moves
// PROCEEDING auctions whose close time has elapsed to ENDED and resolves
// the winner inside the store's atomic close step. Payment and
// notification sinks are informed after the transition commits, outside
// any store lock.
type Closer struct {
	auctions repository.AuctionStore
	payments collaborators.PaymentSink
	notify   collaborators.NotificationSink
	clock    utils.Clock
	interval time.Duration
}

// New creates a Closer sweeping every interval.
func New(auctions repository.AuctionStore, payments collaborators.PaymentSink, notify collaborators.NotificationSink, clock utils.Clock, interval time.Duration) *Closer {
	return &Closer{
		auctions: auctions,
		payments: payments,
		notify:   notify,
		clock:    clock,
		interval: interval,
	}
}

// Run drives the sweep until the context is canceled. It is meant to be
// started once as its own goroutine, owned by the process lifecycle.
func (c *Closer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	utils.Info("closer: started", map[string]any{"interval": c.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("closer: stopped", nil)
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

// Sweep runs one pass over all due auctions. A failure on one auction is
// logged and the sweep continues; re-sweeping an already ENDED auction
// is a no-op, so overlapping or retried sweeps are harmless.
func (c *Closer) Sweep() {
	now := c.clock.Now()
	due, err := c.auctions.DueAuctions(now)
	if err != nil {
		utils.Error("closer: failed to select due auctions", map[string]any{"error": err.Error()})
		return
	}

	for _, a := range due {
		if err := c.closeOne(a.ID); err != nil {
			utils.Error("closer: failed to close auction", map[string]any{
				"auction_id": a.ID,
				"error":      err.Error(),
			})
		}
	}
}

// closeOne finalizes a single auction and fans out the outcome.
func (c *Closer) closeOne(auctionID string) error {
	auction, winner, closed, err := c.auctions.CloseAuction(auctionID, c.clock.Now())
	if err != nil {
		return err
	}
	if !closed {
		// Already ENDED, a previous or overlapping sweep got here first.
		return nil
	}

	fields := map[string]any{
		"auction_id": auction.ID,
		"product_id": auction.ProductID,
	}
	if auction.WinnerBidID == "" {
		utils.Info("closer: auction ended without bids", fields)
	} else {
		fields["winner_bid_id"] = auction.WinnerBidID
		fields["winning_bidder"] = auction.WinningBidderID
		fields["amount"] = winner.Amount
		utils.Info("closer: auction ended", fields)

		if err := c.payments.AuctionWon(auction, winner); err != nil {
			utils.Warn("closer: payment trigger failed", map[string]any{
				"auction_id": auction.ID,
				"error":      err.Error(),
			})
		}
	}

	if err := c.notify.AuctionEnded(auction, auction.WinningBidderID); err != nil {
		utils.Warn("closer: end notification failed", map[string]any{
			"auction_id": auction.ID,
			"error":      err.Error(),
		})
	}

	return nil
}
