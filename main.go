package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	auction "auction-market/internal/auctionService"
	bidding "auction-market/internal/biddingService"
	"auction-market/internal/closer"
	"auction-market/internal/collaborators"
	model "auction-market/internal/models"
	product "auction-market/internal/productService"
	registration "auction-market/internal/registrationService"
	"auction-market/internal/repository"
	"auction-market/internal/server"
	"auction-market/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.Debug("no .env file loaded", map[string]any{"error": err.Error()})
	}

	repo := repository.NewMemoryRepo()
	users := collaborators.NewMemoryUserDirectory()
	images := collaborators.NewMemoryImageStore()
	sink := collaborators.NewRecordingSink()
	clock := utils.SystemClock{}

	prepopulateUsers(users)

	registrationSvc := registration.NewRegistrationService(users, images, repo, repo, clock)
	productSvc := product.NewProductService(repo, repo, images, sink, clock)
	auctionSvc := auction.NewAuctionService(repo, repo, users, clock)
	biddingSvc := bidding.NewBiddingService(repo, repo, users, clock)

	auctionCloser := closer.New(repo, sink, sink, clock, sweepInterval())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go auctionCloser.Run(ctx)

	router := server.SetupRouter(server.Services{
		Registration: registrationSvc,
		Products:     productSvc,
		Auctions:     auctionSvc,
		Bidding:      biddingSvc,
	}, server.WithRateLimit(rateLimitRPS(), rateLimitBurst()))

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateUsers seeds the in-memory user directory
func prepopulateUsers(users *collaborators.MemoryUserDirectory) {
	seed := []model.User{
		{ID: "seller1", Nickname: "First Seller"},
		{ID: "bidder1", Nickname: "First Bidder"},
		{ID: "bidder2", Nickname: "Second Bidder"},
	}

	for _, u := range seed {
		users.AddUser(u)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// sweepInterval returns the closer interval from env or a 5s default
func sweepInterval() time.Duration {
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return 5 * time.Second
}

// rateLimitRPS returns the per-client request rate from env or 50/s
func rateLimitRPS() float64 {
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		if rps, err := strconv.ParseFloat(raw, 64); err == nil && rps > 0 {
			return rps
		}
	}
	return 50
}

// rateLimitBurst returns the per-client burst size from env or 100
func rateLimitBurst() int {
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		if burst, err := strconv.Atoi(raw); err == nil && burst > 0 {
			return burst
		}
	}
	return 100
}
