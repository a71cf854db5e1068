package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-market/internal/auctionerrors"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and a
// stable message. Contention maps to 503 so clients know a retry is safe.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, auctionerrors.ErrAlreadyAuctioned):
		return http.StatusConflict, "product is already registered as an auction"
	case errors.Is(err, auctionerrors.ErrProductAlreadyAuctioned):
		return http.StatusConflict, "product cannot be changed once auctioned"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusConflict, "sellers cannot bid on their own auction"
	case errors.Is(err, auctionerrors.ErrBidLimitExceeded):
		return http.StatusConflict, "bid limit for this auction exceeded"
	case errors.Is(err, auctionerrors.ErrBidContention):
		return http.StatusServiceUnavailable, "auction is contended, retry the bid"
	case errors.Is(err, auctionerrors.ErrImageUpload):
		return http.StatusBadGateway, "image upload failed"
	case errors.Is(err, auctionerrors.ErrInvalidRequest), errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrUserNoBids):
		return http.StatusOK, "no auctions found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
