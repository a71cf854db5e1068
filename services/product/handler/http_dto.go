package handler

import (
	"time"

	model "auction-market/internal/models"
	registration "auction-market/internal/registrationService"
)

// Request/Response DTOs
type ImagePayload struct {
	Name string `json:"name" binding:"required"`
	Data []byte `json:"data" binding:"required"`
}

type RegisterProductRequest struct {
	SellerID    string         `json:"seller_id" binding:"required"`
	Mode        string         `json:"mode" binding:"required,oneof=DIRECT PRE_REGISTER"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" binding:"required"`
	MinPrice    int64          `json:"min_price" binding:"required,gt=0"`
	Images      []ImagePayload `json:"images"`
}

type RegisterProductResponse struct {
	ProductID string `json:"product_id"`
	AuctionID string `json:"auction_id,omitempty"`
	Status    string `json:"status,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

type UpdateProductRequest struct {
	SellerID    string         `json:"seller_id" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" binding:"required"`
	MinPrice    int64          `json:"min_price" binding:"required,gt=0"`
	Images      []ImagePayload `json:"images"`
}

type LikeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type LikeResponse struct {
	ProductID string `json:"product_id"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"like_count"`
}

func toImageFiles(payloads []ImagePayload) []model.ImageFile {
	if payloads == nil {
		return nil
	}
	files := make([]model.ImageFile, 0, len(payloads))
	for _, p := range payloads {
		files = append(files, model.ImageFile{Name: p.Name, Data: p.Data})
	}
	return files
}

func toRegisterResponse(result registration.RegisterResult) RegisterProductResponse {
	resp := RegisterProductResponse{
		ProductID: result.ProductID,
		AuctionID: result.AuctionID,
		Status:    string(result.Status),
	}
	if !result.CloseTime.IsZero() {
		resp.CloseTime = result.CloseTime.UTC().Format(time.RFC3339)
	}
	return resp
}
