package auctionerrors

import "errors"

// Not-found errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrUserNoBids      = errors.New("user has not placed any bids")
)

// Ownership and conflict errors
var (
	ErrForbidden               = errors.New("caller does not own this product")
	ErrAlreadyAuctioned        = errors.New("product is already registered as an auction")
	ErrProductAlreadyAuctioned = errors.New("product cannot be changed once auctioned")
	ErrAuctionEnded            = errors.New("auction has ended")
	ErrBidTooLow               = errors.New("bid amount too low")
	ErrSelfBid                 = errors.New("sellers cannot bid on their own auction")
	ErrBidLimitExceeded        = errors.New("bid limit for this auction exceeded")
)

// Validation errors
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidBid     = errors.New("invalid bid")
)

// Concurrency errors. ErrVersionConflict is internal to the store layer;
// ErrBidContention is the retryable form surfaced to callers.
var (
	ErrVersionConflict = errors.New("auction version conflict")
	ErrBidContention   = errors.New("auction is contended, retry the bid")
)

// Collaborator errors
var (
	ErrImageUpload = errors.New("image upload failed")
)
