package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
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

	"github.com/gin-gonic/gin"
)

// TestEnv bundles the fully wired application with its test doubles so
// integration tests can drive HTTP traffic, move time, and run sweeps.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
	Sink   *collaborators.RecordingSink
	Clock  *utils.FixedClock
	Closer *closer.Closer
}

// SetupTestEnv wires all services against in-memory backends, seeded with
// the given users, and returns the environment.
func SetupTestEnv(users ...model.User) *TestEnv {
	return SetupTestEnvWithOptions(nil, users...)
}

// SetupTestEnvWithOptions is SetupTestEnv with extra router options, for
// tests exercising middleware such as rate limiting.
func SetupTestEnvWithOptions(opts []server.Option, users ...model.User) *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	directory := collaborators.NewMemoryUserDirectory()
	for _, u := range users {
		directory.AddUser(u)
	}
	images := collaborators.NewMemoryImageStore()
	sink := collaborators.NewRecordingSink()
	clock := &utils.FixedClock{Time: time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)}

	router := server.SetupRouter(server.Services{
		Registration: registration.NewRegistrationService(directory, images, repo, repo, clock),
		Products:     product.NewProductService(repo, repo, images, sink, clock),
		Auctions:     auction.NewAuctionService(repo, repo, directory, clock),
		Bidding:      bidding.NewBiddingService(repo, repo, directory, clock),
	}, opts...)

	return &TestEnv{
		Router: router,
		Repo:   repo,
		Sink:   sink,
		Clock:  clock,
		Closer: closer.New(repo, sink, sink, clock, time.Second),
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

// seedUsers is the default cast for marketplace scenarios.
func seedUsers() []model.User {
	return []model.User{
		{ID: "seller1", Nickname: "Seller One"},
		{ID: "bidder1", Nickname: "Bidder One"},
		{ID: "bidder2", Nickname: "Bidder Two"},
		{ID: "bidder3", Nickname: "Bidder Three"},
	}
}
