package handler

import (
	"time"

	model "auction-market/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string `json:"auction_id" binding:"required"`
	BidderID  string `json:"bidder_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	AuctionID string `json:"auction_id"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	Count     int    `json:"count"`
	CreatedAt string `json:"created_at"`
}

func toBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		Count:     bid.Count,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
