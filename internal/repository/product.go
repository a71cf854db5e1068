package repository

import (
	"fmt"
	"sort"

	"auction-market/internal/auctionerrors"
	model "auction-market/internal/models"
)

// CreateProduct stores a new product.
func (r *MemoryRepo) CreateProduct(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = product
	return nil
}

// GetProduct returns the product with the given ID.
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return product, nil
}

// UpdateProduct replaces a product. The product must not have been
// promoted to an auction.
func (r *MemoryRepo) UpdateProduct(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("update product %s: %w", product.ID, auctionerrors.ErrProductNotFound)
	}
	if _, ok := r.productAuction[product.ID]; ok {
		return fmt.Errorf("update product %s: %w", product.ID, auctionerrors.ErrProductAlreadyAuctioned)
	}
	r.products[product.ID] = product
	return nil
}

// DeleteProduct removes an unauctioned product and its like bookkeeping.
func (r *MemoryRepo) DeleteProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if _, ok := r.productAuction[productID]; ok {
		return fmt.Errorf("delete product %s: %w", productID, auctionerrors.ErrProductAlreadyAuctioned)
	}
	delete(r.products, productID)
	delete(r.likes, productID)
	return nil
}

// ListProducts returns products, newest first, optionally filtered by category.
func (r *MemoryRepo) ListProducts(category model.Category) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && p.Category != category {
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

// ToggleLike flips the user's like on a product and returns the new state
// and the updated like count.
func (r *MemoryRepo) ToggleLike(productID, userID string) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return false, 0, fmt.Errorf("toggle like on product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}

	userLikes := r.likes[productID]
	if userLikes == nil {
		userLikes = make(map[string]bool)
		r.likes[productID] = userLikes
	}

	liked := !userLikes[userID]
	if liked {
		userLikes[userID] = true
		product.LikeCount++
	} else {
		delete(userLikes, userID)
		product.LikeCount--
	}
	r.products[productID] = product
	return liked, product.LikeCount, nil
}

// GetLikers returns the IDs of users currently liking a product.
func (r *MemoryRepo) GetLikers(productID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.products[productID]; !ok {
		return nil, fmt.Errorf("get likers of product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}

	likers := make([]string, 0, len(r.likes[productID]))
	for userID := range r.likes[productID] {
		likers = append(likers, userID)
	}
	sort.Strings(likers)
	return likers, nil
}
