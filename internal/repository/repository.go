package repository

import (
	model "auction-market/internal/models"
	"sync"
	"time"
)

// ProductStore is the persistence contract for pre-registered products.
type ProductStore interface {
	CreateProduct(product model.Product) error
	GetProduct(productID string) (model.Product, error)
	UpdateProduct(product model.Product) error
	DeleteProduct(productID string) error
	ListProducts(category model.Category) ([]model.Product, error)
	ToggleLike(productID, userID string) (liked bool, likeCount int64, err error)
	GetLikers(productID string) ([]string, error)
}

// AuctionStore is the persistence contract for auctions. CreateAuction
// enforces the one-auction-per-product rule; CloseAuction owns the
// PROCEEDING -> ENDED transition and winner selection.
type AuctionStore interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionByProduct(productID string) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
	DueAuctions(now time.Time) ([]model.Auction, error)
	CloseAuction(auctionID string, now time.Time) (model.Auction, model.Bid, bool, error)
}

// BidStore is the persistence contract for the bid ledger. RecordBid is
// the single admission write: it compare-and-swaps on the auction's
// version token so that concurrent raises on one auction serialize.
type BidStore interface {
	RecordBid(bid model.Bid, expectedVersion uint64) (model.Bid, error)
	BidderBidCount(auctionID, bidderID string) (int, error)
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
	GetAuctionsByBidder(bidderID string) ([]model.Auction, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of
// ProductStore, AuctionStore and BidStore.
type MemoryRepo struct {
	mu             sync.RWMutex
	products       map[string]model.Product    // key: productID
	likes          map[string]map[string]bool  // key: productID -> userID -> liked
	auctions       map[string]model.Auction    // key: auctionID
	productAuction map[string]string           // key: productID -> auctionID (1:1)
	bids           map[string][]model.Bid      // key: auctionID -> bids in admission order
	bidderCounts   map[string]map[string]int   // key: auctionID -> bidderID -> bid count
	bidderAuctions map[string][]string         // key: bidderID -> auctionIDs bid on
	seq            uint64                      // global insertion sequence for tie-breaks
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:       make(map[string]model.Product),
		likes:          make(map[string]map[string]bool),
		auctions:       make(map[string]model.Auction),
		productAuction: make(map[string]string),
		bids:           make(map[string][]model.Bid),
		bidderCounts:   make(map[string]map[string]int),
		bidderAuctions: make(map[string][]string),
	}
}
