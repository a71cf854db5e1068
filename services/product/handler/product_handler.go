package handler

import (
	"fmt"
	"net/http"

	model "auction-market/internal/models"
	product "auction-market/internal/productService"
	registration "auction-market/internal/registrationService"
	"auction-market/services/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

type RegistrationServiceInterface interface {
	Register(sellerID string, req registration.RegisterRequest) (registration.RegisterResult, error)
}

type ProductServiceInterface interface {
	UpdateProduct(sellerID, productID string, req product.UpdateProductRequest) (model.Product, error)
	DeleteProduct(sellerID, productID string) error
	GetProduct(productID string) (model.Product, error)
	ListProducts(category model.Category) ([]model.Product, error)
	ToggleLike(userID, productID string) (bool, int64, error)
}

type ProductHandler struct {
	registrations RegistrationServiceInterface
	products      ProductServiceInterface
}

func NewProductHandler(registrations RegistrationServiceInterface, products ProductServiceInterface) *ProductHandler {
	return &ProductHandler{registrations: registrations, products: products}
}

// RegisterProductHandler handles POST /products
func (h *ProductHandler) RegisterProductHandler(c *gin.Context) {
	var req RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterProductHandler", err)
		return
	}

	result, err := h.registrations.Register(req.SellerID, registration.RegisterRequest{
		Mode:        model.RegisterMode(req.Mode),
		Name:        req.Name,
		Description: req.Description,
		Category:    model.Category(req.Category),
		MinPrice:    req.MinPrice,
		Images:      toImageFiles(req.Images),
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterProductHandler: failed to register product", map[string]any{
			"handler":   "RegisterProductHandler",
			"seller_id": req.SellerID,
			"mode":      req.Mode,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toRegisterResponse(result), "product registered successfully")
	helpers.LogSuccess("RegisterProductHandler", "product registered successfully", map[string]any{
		"product_id": result.ProductID,
		"auction_id": result.AuctionID,
		"mode":       req.Mode,
	})
}

// UpdateProductHandler handles PATCH /products/:product_id
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	updated, err := h.products.UpdateProduct(req.SellerID, productID, product.UpdateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    model.Category(req.Category),
		MinPrice:    req.MinPrice,
		Images:      toImageFiles(req.Images),
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateProductHandler: failed to update product", map[string]any{
			"product_id": productID,
			"seller_id":  req.SellerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "product updated successfully")
	helpers.LogSuccess("UpdateProductHandler", "product updated successfully", map[string]any{
		"product_id": productID,
	})
}

// DeleteProductHandler handles DELETE /products/:product_id?seller_id=
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	sellerID := c.Query("seller_id")

	if err := h.products.DeleteProduct(sellerID, productID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteProductHandler: failed to delete product", map[string]any{
			"product_id": productID,
			"seller_id":  sellerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"product_id": productID}, "product deleted successfully")
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": productID,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	p, err := h.products.GetProduct(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "product retrieved successfully")
	helpers.LogSuccess("GetProductHandler", "product retrieved successfully", map[string]any{
		"product_id": productID,
	})
}

// ListProductsHandler handles GET /products
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	category := model.Category(c.Query("category"))

	products, err := h.products.ListProducts(category)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListProductsHandler: error listing products", map[string]any{"category": category, "error": err.Error()})
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	utils.JSONResponse(c, http.StatusOK, products, "products retrieved successfully")
	helpers.LogSuccess("ListProductsHandler", "products retrieved successfully", map[string]any{
		"count": len(products),
	})
}

// ToggleLikeHandler handles POST /products/:product_id/likes
func (h *ProductHandler) ToggleLikeHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ToggleLikeHandler", err)
		return
	}

	liked, count, err := h.products.ToggleLike(req.UserID, productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ToggleLikeHandler: failed to toggle like", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	resp := LikeResponse{ProductID: productID, Liked: liked, LikeCount: count}
	utils.JSONResponse(c, http.StatusOK, resp, "like toggled successfully")
	helpers.LogSuccess("ToggleLikeHandler", "like toggled successfully", map[string]any{
		"product_id": productID,
		"liked":      liked,
	})
}
