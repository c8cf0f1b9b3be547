package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends the auction API's standard error payload
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}

// JSONBidError sends a bid rejection, reporting the auction's current bid
// when it could still be read so clients can re-prompt with a higher amount
func JSONBidError(c *gin.Context, status int, message string, currentBid int, known bool) {
	payload := gin.H{
		"error": message,
	}
	if known {
		payload["currentBid"] = currentBid
	}
	c.JSON(status, payload)
}
