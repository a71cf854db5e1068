package auction

import (
	"fmt"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/collaborators"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// Duration is the fixed lifetime of every auction. The close time is set
// at creation and never extended.
const Duration = 24 * time.Hour

// AuctionService owns the promotion of products into auctions and the
// auction read surface.
type AuctionService struct {
	products repository.ProductStore
	auctions repository.AuctionStore
	users    collaborators.UserDirectory
	clock    utils.Clock
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(products repository.ProductStore, auctions repository.AuctionStore, users collaborators.UserDirectory, clock utils.Clock) *AuctionService {
	return &AuctionService{
		products: products,
		auctions: auctions,
		users:    users,
		clock:    clock,
	}
}

// AuctionDetail is an auction read model with derived time remaining.
type AuctionDetail struct {
	Auction       models.Auction
	ProductName   string
	TimeRemaining time.Duration
}

// StartAuction promotes a pre-registered product into a PROCEEDING
// auction closing a fixed duration from now. Promotion is a one-time
// economic event: a second call on the same product fails with
// ErrAlreadyAuctioned rather than returning the existing auction.
func (s *AuctionService) StartAuction(sellerID, productID string) (models.Auction, error) {
	if sellerID == "" || productID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing sellerID or productID", auctionerrors.ErrInvalidRequest)
	}
	if _, err := s.users.FindByID(sellerID); err != nil {
		return models.Auction{}, fmt.Errorf("service: seller lookup: %w", err)
	}

	product, err := s.products.GetProduct(productID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	if product.SellerID != sellerID {
		return models.Auction{}, fmt.Errorf("service: product %s: %w", productID, auctionerrors.ErrForbidden)
	}

	now := s.clock.Now()
	auction := models.Auction{
		ID:        utils.GenerateID(),
		ProductID: product.ID,
		SellerID:  product.SellerID,
		MinPrice:  product.MinPrice,
		Status:    models.StatusProceeding,
		CloseTime: now.Add(Duration),
		Timestamps: models.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// CreateAuction enforces the one-auction-per-product rule atomically.
	if err := s.auctions.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to start auction for product %s: %w", productID, err)
	}

	return auction, nil
}

// GetAuctionDetail returns one auction with its product name and the
// time remaining until close (zero once closed).
func (s *AuctionService) GetAuctionDetail(auctionID string) (AuctionDetail, error) {
	if auctionID == "" {
		return AuctionDetail{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidRequest)
	}

	auction, err := s.auctions.GetAuction(auctionID)
	if err != nil {
		return AuctionDetail{}, fmt.Errorf("service: %w", err)
	}

	detail := AuctionDetail{Auction: auction}
	if product, err := s.products.GetProduct(auction.ProductID); err == nil {
		detail.ProductName = product.Name
	}
	if remaining := auction.CloseTime.Sub(s.clock.Now()); remaining > 0 && auction.Status == models.StatusProceeding {
		detail.TimeRemaining = remaining
	}

	return detail, nil
}

// ListAuctions returns auctions ordered by time remaining (ascending
// close time), optionally filtered by status.
func (s *AuctionService) ListAuctions(status models.AuctionStatus) ([]models.Auction, error) {
	if status != "" && status != models.StatusProceeding && status != models.StatusEnded {
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidRequest, status)
	}

	auctions, err := s.auctions.ListAuctions(status)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}
