package registration

import (
	"fmt"
	"time"

	"auction-market/internal/auctionerrors"
	auction "auction-market/internal/auctionService"
	"auction-market/internal/collaborators"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// RegisterRequest carries everything a seller submits when registering a
// product, including the registration mode and raw image payloads.
type RegisterRequest struct {
	Mode        models.RegisterMode
	Name        string
	Description string
	Category    models.Category
	MinPrice    int64
	Images      []models.ImageFile
}

// RegisterResult reports the created product and, for direct
// registration, the auction it was promoted into.
type RegisterResult struct {
	ProductID string
	AuctionID string
	Status    models.AuctionStatus
	CloseTime time.Time
}

// strategy is one registration behavior, resolved from the mode through
// an explicit lookup table rather than reflection.
type strategy func(seller models.User, req RegisterRequest) (RegisterResult, error)

// RegistrationService routes a registration request to the pre-register
// or direct-auction strategy.
type RegistrationService struct {
	users      collaborators.UserDirectory
	images     collaborators.ImageStore
	products   repository.ProductStore
	auctions   repository.AuctionStore
	clock      utils.Clock
	strategies map[models.RegisterMode]strategy
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(users collaborators.UserDirectory, images collaborators.ImageStore, products repository.ProductStore, auctions repository.AuctionStore, clock utils.Clock) *RegistrationService {
	s := &RegistrationService{
		users:    users,
		images:   images,
		products: products,
		auctions: auctions,
		clock:    clock,
	}
	s.strategies = map[models.RegisterMode]strategy{
		models.ModePreRegister: s.preRegister,
		models.ModeDirect:      s.directRegister,
	}
	return s
}

// Register dispatches to the strategy selected by the request mode.
// Exactly one product and, for DIRECT mode, one auction are created per
// successful call; an image upload failure rolls the product back.
func (s *RegistrationService) Register(sellerID string, req RegisterRequest) (RegisterResult, error) {
	if err := validateRequest(req); err != nil {
		return RegisterResult{}, err
	}

	strat, ok := s.strategies[req.Mode]
	if !ok {
		return RegisterResult{}, fmt.Errorf("service: %w - unknown register mode %q", auctionerrors.ErrInvalidRequest, req.Mode)
	}

	seller, err := s.users.FindByID(sellerID)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("service: seller lookup: %w", err)
	}

	return strat(seller, req)
}

// preRegister creates a product without an auction. The product stays
// mutable until it is promoted.
func (s *RegistrationService) preRegister(seller models.User, req RegisterRequest) (RegisterResult, error) {
	product, err := s.createProduct(seller, req)
	if err != nil {
		return RegisterResult{}, err
	}
	return RegisterResult{ProductID: product.ID}, nil
}

// directRegister creates a product and immediately promotes it into a
// PROCEEDING auction closing a fixed duration from now.
func (s *RegistrationService) directRegister(seller models.User, req RegisterRequest) (RegisterResult, error) {
	product, err := s.createProduct(seller, req)
	if err != nil {
		return RegisterResult{}, err
	}

	now := s.clock.Now()
	a := models.Auction{
		ID:        utils.GenerateID(),
		ProductID: product.ID,
		SellerID:  product.SellerID,
		MinPrice:  product.MinPrice,
		Status:    models.StatusProceeding,
		CloseTime: now.Add(auction.Duration),
		Timestamps: models.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.auctions.CreateAuction(a); err != nil {
		return RegisterResult{}, fmt.Errorf("service: failed to create auction for product %s: %w", product.ID, err)
	}

	return RegisterResult{
		ProductID: product.ID,
		AuctionID: a.ID,
		Status:    a.Status,
		CloseTime: a.CloseTime,
	}, nil
}

// createProduct persists the product, then delegates image payloads to
// the image store. Registration is all-or-nothing: an upload failure
// deletes the just-created product before the error surfaces.
func (s *RegistrationService) createProduct(seller models.User, req RegisterRequest) (models.Product, error) {
	now := s.clock.Now()
	product := models.Product{
		ID:          utils.GenerateID(),
		SellerID:    seller.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MinPrice:    req.MinPrice,
		Timestamps: models.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.products.CreateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to create product: %w", err)
	}

	if len(req.Images) > 0 {
		urls, err := s.images.Upload(req.Images)
		if err != nil {
			if delErr := s.products.DeleteProduct(product.ID); delErr != nil {
				utils.Error("registration: product rollback failed", map[string]any{
					"product_id": product.ID,
					"error":      delErr.Error(),
				})
			}
			return models.Product{}, fmt.Errorf("service: %w: %v", auctionerrors.ErrImageUpload, err)
		}
		product.ImageURLs = urls
		if err := s.products.UpdateProduct(product); err != nil {
			return models.Product{}, fmt.Errorf("service: failed to attach images to product %s: %w", product.ID, err)
		}
	}

	return product, nil
}

// validateRequest checks the product fields shared by both strategies.
// Minimum prices must be positive multiples of the pricing unit.
func validateRequest(req RegisterRequest) error {
	if req.Name == "" {
		return fmt.Errorf("service: %w - empty product name", auctionerrors.ErrInvalidRequest)
	}
	if !req.Category.Valid() {
		return fmt.Errorf("service: %w - unknown category %q", auctionerrors.ErrInvalidRequest, req.Category)
	}
	if req.MinPrice <= 0 || req.MinPrice%models.MinPriceUnit != 0 {
		return fmt.Errorf("service: %w - min price must be a positive multiple of %d", auctionerrors.ErrInvalidRequest, models.MinPriceUnit)
	}
	return nil
}
