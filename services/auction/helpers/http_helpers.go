package helpers

import (
	"errors"
	"net/http"

	"voice-auction/internal/auctionerrors"
	"voice-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName, message string, err error) {
	utils.JSONError(c, http.StatusBadRequest, message)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// The messages are the API's wire error strings, not the internal error text.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "Auction not found"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "Missing required auction fields"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "Bid must be higher than current bid"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusBadRequest, "Auction has ended"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "Invalid bid"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
