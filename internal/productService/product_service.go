package product

import (
	"errors"
	"fmt"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/collaborators"
	"auction-market/internal/models"
	"auction-market/internal/repository"
	"auction-market/utils"
)

// ProductService owns the pre-registration surface: products stay
// mutable and deletable only until they are promoted to an auction.
type ProductService struct {
	products repository.ProductStore
	auctions repository.AuctionStore
	images   collaborators.ImageStore
	notify   collaborators.NotificationSink
	clock    utils.Clock
}

// NewProductService creates a new ProductService instance.
func NewProductService(products repository.ProductStore, auctions repository.AuctionStore, images collaborators.ImageStore, notify collaborators.NotificationSink, clock utils.Clock) *ProductService {
	return &ProductService{
		products: products,
		auctions: auctions,
		images:   images,
		notify:   notify,
		clock:    clock,
	}
}

// UpdateProductRequest carries the mutable product fields. A non-nil
// Images slice replaces the product's images wholesale.
type UpdateProductRequest struct {
	Name        string
	Description string
	Category    models.Category
	MinPrice    int64
	Images      []models.ImageFile
}

// UpdateProduct changes a product's fields. Only the owning seller may
// update, and only while no auction references the product.
func (s *ProductService) UpdateProduct(sellerID, productID string, req UpdateProductRequest) (models.Product, error) {
	product, err := s.ownedMutableProduct(sellerID, productID)
	if err != nil {
		return models.Product{}, err
	}

	if req.Name == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product name", auctionerrors.ErrInvalidRequest)
	}
	if !req.Category.Valid() {
		return models.Product{}, fmt.Errorf("service: %w - unknown category %q", auctionerrors.ErrInvalidRequest, req.Category)
	}
	if req.MinPrice <= 0 || req.MinPrice%models.MinPriceUnit != 0 {
		return models.Product{}, fmt.Errorf("service: %w - min price must be a positive multiple of %d", auctionerrors.ErrInvalidRequest, models.MinPriceUnit)
	}

	oldURLs := product.ImageURLs
	if req.Images != nil {
		urls, err := s.images.Upload(req.Images)
		if err != nil {
			return models.Product{}, fmt.Errorf("service: %w: %v", auctionerrors.ErrImageUpload, err)
		}
		product.ImageURLs = urls
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.MinPrice = req.MinPrice
	product.UpdatedAt = s.clock.Now()

	if err := s.products.UpdateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("service: failed to update product %s: %w", productID, err)
	}

	if req.Images != nil && len(oldURLs) > 0 {
		if err := s.images.Delete(oldURLs); err != nil {
			utils.Warn("product: stale image cleanup failed", map[string]any{
				"product_id": productID,
				"error":      err.Error(),
			})
		}
	}

	return product, nil
}

// DeleteProduct removes an unauctioned product. Likers get a best-effort
// cancellation notice and the product's images are deleted; collaborator
// failures are logged, never propagated, because the deletion has
// already committed.
func (s *ProductService) DeleteProduct(sellerID, productID string) error {
	product, err := s.ownedMutableProduct(sellerID, productID)
	if err != nil {
		return err
	}

	likers, err := s.products.GetLikers(productID)
	if err != nil {
		likers = nil
	}

	if err := s.products.DeleteProduct(productID); err != nil {
		return fmt.Errorf("service: failed to delete product %s: %w", productID, err)
	}

	if len(product.ImageURLs) > 0 {
		if err := s.images.Delete(product.ImageURLs); err != nil {
			utils.Warn("product: image cleanup failed on delete", map[string]any{
				"product_id": productID,
				"error":      err.Error(),
			})
		}
	}
	if err := s.notify.RegistrationCanceled(product, likers); err != nil {
		utils.Warn("product: cancellation notification failed", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
	}

	return nil
}

// GetProduct returns one product.
func (s *ProductService) GetProduct(productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - empty product ID", auctionerrors.ErrInvalidRequest)
	}
	product, err := s.products.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: %w", err)
	}
	return product, nil
}

// ListProducts returns products, newest first, optionally by category.
func (s *ProductService) ListProducts(category models.Category) ([]models.Product, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("service: %w - unknown category %q", auctionerrors.ErrInvalidRequest, category)
	}
	products, err := s.products.ListProducts(category)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// ToggleLike flips a user's like on a product and returns the new state.
func (s *ProductService) ToggleLike(userID, productID string) (bool, int64, error) {
	if userID == "" || productID == "" {
		return false, 0, fmt.Errorf("service: %w - missing userID or productID", auctionerrors.ErrInvalidRequest)
	}
	liked, count, err := s.products.ToggleLike(productID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("service: failed to toggle like on product %s: %w", productID, err)
	}
	return liked, count, nil
}

// ownedMutableProduct loads a product and enforces the two write
// preconditions: caller ownership and no auction referencing it.
func (s *ProductService) ownedMutableProduct(sellerID, productID string) (models.Product, error) {
	if sellerID == "" || productID == "" {
		return models.Product{}, fmt.Errorf("service: %w - missing sellerID or productID", auctionerrors.ErrInvalidRequest)
	}

	product, err := s.products.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: %w", err)
	}
	if product.SellerID != sellerID {
		return models.Product{}, fmt.Errorf("service: product %s: %w", productID, auctionerrors.ErrForbidden)
	}

	if _, err := s.auctions.GetAuctionByProduct(productID); err == nil {
		return models.Product{}, fmt.Errorf("service: product %s: %w", productID, auctionerrors.ErrProductAlreadyAuctioned)
	} else if !errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return models.Product{}, fmt.Errorf("service: failed to check auction state: %w", err)
	}

	return product, nil
}
