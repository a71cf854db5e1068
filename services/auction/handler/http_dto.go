package handler

import (
	"time"

	auction "auction-market/internal/auctionService"
	model "auction-market/internal/models"
)

// Request/Response DTOs
type StartAuctionRequest struct {
	SellerID  string `json:"seller_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

type AuctionResponse struct {
	AuctionID       string `json:"auction_id"`
	ProductID       string `json:"product_id"`
	Status          string `json:"status"`
	MinPrice        int64  `json:"min_price"`
	HighestAmount   int64  `json:"highest_amount"`
	CloseTime       string `json:"close_time"`
	WinnerBidID     string `json:"winner_bid_id,omitempty"`
	WinningBidderID string `json:"winning_bidder_id,omitempty"`
}

type AuctionDetailResponse struct {
	AuctionResponse
	ProductName      string `json:"product_name,omitempty"`
	TimeRemainingSec int64  `json:"time_remaining_sec"`
}

func toAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:       a.ID,
		ProductID:       a.ProductID,
		Status:          string(a.Status),
		MinPrice:        a.MinPrice,
		HighestAmount:   a.HighestAmount,
		CloseTime:       a.CloseTime.UTC().Format(time.RFC3339),
		WinnerBidID:     a.WinnerBidID,
		WinningBidderID: a.WinningBidderID,
	}
}

func toAuctionDetailResponse(d auction.AuctionDetail) AuctionDetailResponse {
	return AuctionDetailResponse{
		AuctionResponse:  toAuctionResponse(d.Auction),
		ProductName:      d.ProductName,
		TimeRemainingSec: int64(d.TimeRemaining / time.Second),
	}
}
