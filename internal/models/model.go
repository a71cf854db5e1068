package models

import "time"

// MinPriceUnit is the smallest unit a product's minimum price may be expressed in.
// Minimum prices must be positive multiples of this unit.
const MinPriceUnit = 1000

// MaxBidsPerBidder limits how many times a single bidder may raise on one auction.
const MaxBidsPerBidder = 3

// Timestamps carries creation/update times shared by all entities.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User represents a marketplace participant (seller or bidder).
type User struct {
	ID       string `json:"user_id"`
	Nickname string `json:"nickname"`
}

// Category classifies a product.
type Category string

const (
	CategoryElectronics    Category = "ELECTRONICS"
	CategoryHomeAppliances Category = "HOME_APPLIANCES"
	CategoryFashion        Category = "FASHION"
	CategoryBooks          Category = "BOOKS"
	CategorySports         Category = "SPORTS"
	CategoryOther          Category = "OTHER"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryHomeAppliances, CategoryFashion,
		CategoryBooks, CategorySports, CategoryOther:
		return true
	}
	return false
}

// Product is a seller-owned item. It is mutable only while no auction
// references it; promotion to an auction freezes it.
type Product struct {
	ID          string   `json:"product_id"`
	SellerID    string   `json:"seller_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	MinPrice    int64    `json:"min_price"`
	ImageURLs   []string `json:"image_urls"`
	LikeCount   int64    `json:"like_count"`
	Timestamps
}

// AuctionStatus is the lifecycle state of an auction. Transitions are
// monotonic: PENDING -> PROCEEDING -> ENDED, never backwards.
type AuctionStatus string

const (
	StatusPending    AuctionStatus = "PENDING"
	StatusProceeding AuctionStatus = "PROCEEDING"
	StatusEnded      AuctionStatus = "ENDED"
)

// Auction is the time-boxed sale of exactly one product.
//
// HighestAmount caches the current admission floor and Version is the
// optimistic-concurrency token guarding it: every accepted bid and the
// closing transition bump Version, so a writer holding a stale version
// loses the race deterministically.
type Auction struct {
	ID              string        `json:"auction_id"`
	ProductID       string        `json:"product_id"`
	SellerID        string        `json:"seller_id"`
	MinPrice        int64         `json:"min_price"`
	Status          AuctionStatus `json:"status"`
	CloseTime       time.Time     `json:"close_time"`
	WinnerBidID     string        `json:"winner_bid_id,omitempty"`
	WinningBidderID string        `json:"winning_bidder_id,omitempty"`
	HighestAmount   int64         `json:"highest_amount"`
	Version         uint64        `json:"-"`
	Timestamps
}

// Closed reports whether the auction's close time has elapsed at now.
// Time is the authoritative boundary; Status merely caches it.
func (a Auction) Closed(now time.Time) bool {
	return a.Status == StatusEnded || !now.Before(a.CloseTime)
}

// RegisterMode selects the registration strategy.
type RegisterMode string

const (
	ModeDirect      RegisterMode = "DIRECT"
	ModePreRegister RegisterMode = "PRE_REGISTER"
)

// Bid is one accepted raise on an auction. Count is the bidder's running
// bid count on that auction; Seq is the store-assigned insertion sequence
// used as the deterministic tie-break after CreatedAt.
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	Count     int       `json:"count"`
	Seq       uint64    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageFile is a raw image payload handed to the image store collaborator.
type ImageFile struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}
