package server

import (
	auctionhandler "auction-market/services/auction/handler"
	biddinghandler "auction-market/services/bidding/handler"
	producthandler "auction-market/services/product/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles the business services the router exposes.
type Services struct {
	Registration producthandler.RegistrationServiceInterface
	Products     producthandler.ProductServiceInterface
	Auctions     auctionhandler.AuctionServiceInterface
	Bidding      biddinghandler.BiddingServiceInterface
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svcs Services, opts ...Option) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	for _, opt := range opts {
		opt(router)
	}

	productHandler := producthandler.NewProductHandler(svcs.Registration, svcs.Products)
	auctionHandler := auctionhandler.NewAuctionHandler(svcs.Auctions)
	biddingHandler := biddinghandler.NewBiddingHandler(svcs.Bidding)

	products := router.Group("/products")
	{
		products.POST("", productHandler.RegisterProductHandler)
		products.GET("", productHandler.ListProductsHandler)
		products.GET("/:product_id", productHandler.GetProductHandler)
		products.PATCH("/:product_id", productHandler.UpdateProductHandler)
		products.DELETE("/:product_id", productHandler.DeleteProductHandler)
		products.POST("/:product_id/likes", productHandler.ToggleLikeHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.StartAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", biddingHandler.GetAuctionsByBidderHandler)
	}

	return router
}

// Option customizes the router during setup.
type Option func(*gin.Engine)

// WithRateLimit installs the per-client rate-limit middleware.
func WithRateLimit(rps float64, burst int) Option {
	return func(router *gin.Engine) {
		router.Use(RateLimitMiddleware(rps, burst))
	}
}
