package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Product
func newProduct(productID, sellerID string, minPrice int64) model.Product {
	return model.Product{
		ID:          productID,
		SellerID:    sellerID,
		Name:        fmt.Sprintf("%s name", productID),
		Description: fmt.Sprintf("%s description", productID),
		Category:    model.CategoryElectronics,
		MinPrice:    minPrice,
	}
}

// Helper to create a new Auction in PROCEEDING state
func newAuction(auctionID, productID, sellerID string, minPrice int64, closeTime time.Time) model.Auction {
	return model.Auction{
		ID:        auctionID,
		ProductID: productID,
		SellerID:  sellerID,
		MinPrice:  minPrice,
		Status:    model.StatusProceeding,
		CloseTime: closeTime,
	}
}

// Helper to create a new Bid
func newBid(bidID, auctionID, bidderID string, amount int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// seedAuction registers a product and its auction in one go.
func seedAuction(t *testing.T, repo *MemoryRepo, auctionID, productID, sellerID string, minPrice int64, closeTime time.Time) model.Auction {
	t.Helper()
	require.NoError(t, repo.CreateProduct(newProduct(productID, sellerID, minPrice)))
	a := newAuction(auctionID, productID, sellerID, minPrice, closeTime)
	require.NoError(t, repo.CreateAuction(a))
	return a
}

// Test product CRUD preconditions
func TestMemoryRepo_Products(t *testing.T) {
	t.Parallel()

	closeTime := time.Now().Add(24 * time.Hour)

	t.Run("get_missing_product", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.GetProduct("missing")
		require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	})

	t.Run("update_and_delete_unauctioned", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateProduct(newProduct("p1", "seller1", 1000)))

		updated := newProduct("p1", "seller1", 2000)
		updated.Name = "renamed"
		require.NoError(t, repo.UpdateProduct(updated))

		got, err := repo.GetProduct("p1")
		require.NoError(t, err)
		require.Equal(t, "renamed", got.Name)
		require.Equal(t, int64(2000), got.MinPrice)

		require.NoError(t, repo.DeleteProduct("p1"))
		_, err = repo.GetProduct("p1")
		require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)
	})

	t.Run("update_and_delete_blocked_once_auctioned", func(t *testing.T) {
		repo := NewMemoryRepo()
		seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		err := repo.UpdateProduct(newProduct("p1", "seller1", 2000))
		require.ErrorIs(t, err, auctionerrors.ErrProductAlreadyAuctioned)

		err = repo.DeleteProduct("p1")
		require.ErrorIs(t, err, auctionerrors.ErrProductAlreadyAuctioned)
	})

	t.Run("list_products_filters_by_category", func(t *testing.T) {
		repo := NewMemoryRepo()
		p1 := newProduct("p1", "seller1", 1000)
		p2 := newProduct("p2", "seller1", 1000)
		p2.Category = model.CategoryBooks
		require.NoError(t, repo.CreateProduct(p1))
		require.NoError(t, repo.CreateProduct(p2))

		all, err := repo.ListProducts("")
		require.NoError(t, err)
		require.Len(t, all, 2)

		books, err := repo.ListProducts(model.CategoryBooks)
		require.NoError(t, err)
		require.Len(t, books, 1)
		require.Equal(t, "p2", books[0].ID)
	})

	t.Run("toggle_like_flips_state_and_count", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.CreateProduct(newProduct("p1", "seller1", 1000)))

		liked, count, err := repo.ToggleLike("p1", "user1")
		require.NoError(t, err)
		require.True(t, liked)
		require.Equal(t, int64(1), count)

		likers, err := repo.GetLikers("p1")
		require.NoError(t, err)
		require.Equal(t, []string{"user1"}, likers)

		liked, count, err = repo.ToggleLike("p1", "user1")
		require.NoError(t, err)
		require.False(t, liked)
		require.Equal(t, int64(0), count)
	})
}

// Test the one-auction-per-product rule
func TestMemoryRepo_CreateAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	closeTime := time.Now().Add(24 * time.Hour)
	require.NoError(t, repo.CreateProduct(newProduct("p1", "seller1", 1000)))

	require.NoError(t, repo.CreateAuction(newAuction("a1", "p1", "seller1", 1000, closeTime)))

	// second promotion of the same product must fail, not return the existing auction
	err := repo.CreateAuction(newAuction("a2", "p1", "seller1", 1000, closeTime))
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyAuctioned)

	// auction against a product that was never registered
	err = repo.CreateAuction(newAuction("a3", "missing", "seller1", 1000, closeTime))
	require.ErrorIs(t, err, auctionerrors.ErrProductNotFound)

	got, err := repo.GetAuctionByProduct("p1")
	require.NoError(t, err)
	require.Equal(t, "a1", got.ID)
}

// Test RecordBid admission bookkeeping and the version token
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	closeTime := now.Add(24 * time.Hour)

	t.Run("accepts_and_updates_cached_highest", func(t *testing.T) {
		repo := NewMemoryRepo()
		a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		recorded, err := repo.RecordBid(newBid("b1", "a1", "bidder1", 1000, now), a.Version)
		require.NoError(t, err)
		require.Equal(t, 1, recorded.Count)
		require.NotZero(t, recorded.Seq)

		got, err := repo.GetAuction("a1")
		require.NoError(t, err)
		require.Equal(t, int64(1000), got.HighestAmount)
		require.Equal(t, a.Version+1, got.Version)
	})

	t.Run("stale_version_is_rejected", func(t *testing.T) {
		repo := NewMemoryRepo()
		a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		_, err := repo.RecordBid(newBid("b1", "a1", "bidder1", 1000, now), a.Version)
		require.NoError(t, err)

		// same token again: the first write moved it
		_, err = repo.RecordBid(newBid("b2", "a1", "bidder2", 1500, now), a.Version)
		require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)
	})

	t.Run("rejects_after_close_time", func(t *testing.T) {
		repo := NewMemoryRepo()
		a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, now.Add(time.Minute))

		late := newBid("b1", "a1", "bidder1", 1000, now.Add(2*time.Minute))
		_, err := repo.RecordBid(late, a.Version)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionEnded)
	})

	t.Run("rejects_unknown_auction", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.RecordBid(newBid("b1", "missing", "bidder1", 1000, now), 0)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})

	t.Run("tracks_per_bidder_count", func(t *testing.T) {
		repo := NewMemoryRepo()
		a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		version := a.Version
		for i, amount := range []int64{1000, 2000, 3000} {
			recorded, err := repo.RecordBid(newBid(fmt.Sprintf("b%d", i), "a1", "bidder1", amount, now), version)
			require.NoError(t, err)
			require.Equal(t, i+1, recorded.Count)
			version++
		}

		count, err := repo.BidderBidCount("a1", "bidder1")
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})

	// concurrency: with one shared token only one of N concurrent writers can win per round
	t.Run("concurrent_bids_serialize_on_version", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		var wg sync.WaitGroup
		concurrentCount := 50
		results := make([]error, concurrentCount)

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				bid := newBid(fmt.Sprintf("b%d", i), "a1", fmt.Sprintf("bidder%d", i), int64(1000+i), now)
				_, results[i] = repo.RecordBid(bid, a.Version)
			}()
		}
		wg.Wait()

		accepted := 0
		for _, err := range results {
			if err == nil {
				accepted++
			} else {
				require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)
			}
		}
		require.Equal(t, 1, accepted, "exactly one writer may win a given version")
	})
}

// Test winner selection and close idempotence
func TestMemoryRepo_CloseAuction(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	closeTime := now.Add(time.Hour)

	record := func(t *testing.T, repo *MemoryRepo, bid model.Bid) {
		t.Helper()
		a, err := repo.GetAuction(bid.AuctionID)
		require.NoError(t, err)
		_, err = repo.RecordBid(bid, a.Version)
		require.NoError(t, err)
	}

	t.Run("selects_highest_amount", func(t *testing.T) {
		repo := NewMemoryRepo()
		seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		record(t, repo, newBid("b1", "a1", "bidderA", 1000, now))
		record(t, repo, newBid("b2", "a1", "bidderB", 1500, now.Add(time.Second)))

		auction, winner, closed, err := repo.CloseAuction("a1", closeTime)
		require.NoError(t, err)
		require.True(t, closed)
		require.Equal(t, model.StatusEnded, auction.Status)
		require.Equal(t, "b2", auction.WinnerBidID)
		require.Equal(t, "bidderB", auction.WinningBidderID)
		require.Equal(t, int64(1500), winner.Amount)
	})

	t.Run("tie_broken_by_creation_then_sequence", func(t *testing.T) {
		repo := NewMemoryRepo()
		seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		// equal amounts cannot normally be admitted, but the close step must
		// still resolve deterministically if they ever exist
		record(t, repo, newBid("b1", "a1", "bidderA", 1000, now))
		b2 := newBid("b2", "a1", "bidderB", 1000, now) // identical amount and timestamp
		repo.mu.Lock()
		repo.seq++
		b2.Seq = repo.seq
		repo.bids["a1"] = append(repo.bids["a1"], b2)
		repo.mu.Unlock()

		auction, _, closed, err := repo.CloseAuction("a1", closeTime)
		require.NoError(t, err)
		require.True(t, closed)
		require.Equal(t, "b1", auction.WinnerBidID, "earlier insertion sequence wins the tie")
	})

	t.Run("no_bids_ends_without_winner", func(t *testing.T) {
		repo := NewMemoryRepo()
		seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		auction, _, closed, err := repo.CloseAuction("a1", closeTime)
		require.NoError(t, err)
		require.True(t, closed)
		require.Equal(t, model.StatusEnded, auction.Status)
		require.Empty(t, auction.WinnerBidID)
	})

	t.Run("reclose_is_noop", func(t *testing.T) {
		repo := NewMemoryRepo()
		seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)
		record(t, repo, newBid("b1", "a1", "bidderA", 1200, now))

		first, _, closed, err := repo.CloseAuction("a1", closeTime)
		require.NoError(t, err)
		require.True(t, closed)

		second, _, closed, err := repo.CloseAuction("a1", closeTime.Add(time.Minute))
		require.NoError(t, err)
		require.False(t, closed)
		require.Equal(t, first.WinnerBidID, second.WinnerBidID)
		require.Equal(t, first.Status, second.Status)
	})

	t.Run("in_flight_bid_loses_to_close", func(t *testing.T) {
		repo := NewMemoryRepo()
		a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

		_, _, closed, err := repo.CloseAuction("a1", closeTime)
		require.NoError(t, err)
		require.True(t, closed)

		// a bidder that validated before the sweep holds a stale token
		_, err = repo.RecordBid(newBid("b1", "a1", "bidderA", 1000, now), a.Version)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionEnded)
	})
}

// Test DueAuctions selection
func TestMemoryRepo_DueAuctions(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "due1", "p1", "seller1", 1000, now.Add(-time.Minute))
	seedAuction(t, repo, "due2", "p2", "seller1", 1000, now.Add(-time.Hour))
	seedAuction(t, repo, "open1", "p3", "seller1", 1000, now.Add(time.Hour))

	due, err := repo.DueAuctions(now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	require.Equal(t, "due2", due[0].ID, "oldest close time first")
	require.Equal(t, "due1", due[1].ID)

	// an ended auction never shows up again
	_, _, _, err = repo.CloseAuction("due1", now)
	require.NoError(t, err)
	due, err = repo.DueAuctions(now)
	require.NoError(t, err)
	require.Len(t, due, 1)
}

// Test bid queries
func TestMemoryRepo_BidQueries(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	closeTime := now.Add(time.Hour)

	repo := NewMemoryRepo()
	a := seedAuction(t, repo, "a1", "p1", "seller1", 1000, closeTime)

	_, err := repo.GetBidsByAuction("a1")
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)

	version := a.Version
	for i, bid := range []model.Bid{
		newBid("b1", "a1", "bidderA", 1000, now),
		newBid("b2", "a1", "bidderB", 1500, now.Add(time.Second)),
	} {
		_, err := repo.RecordBid(bid, version+uint64(i))
		require.NoError(t, err)
	}

	bids, err := repo.GetBidsByAuction("a1")
	require.NoError(t, err)
	require.Len(t, bids, 2)

	winning, err := repo.GetWinningBid("a1")
	require.NoError(t, err)
	require.Equal(t, "b2", winning.BidID)

	auctions, err := repo.GetAuctionsByBidder("bidderA")
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	require.Equal(t, "a1", auctions[0].ID)

	_, err = repo.GetAuctionsByBidder("stranger")
	require.ErrorIs(t, err, auctionerrors.ErrUserNoBids)
}
