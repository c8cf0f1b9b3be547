package server

import (
	auction "voice-auction/internal/auctionService"
	handler "voice-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	api := router.Group("/api")
	{
		api.GET("/auctions", auctionHandler.GetAllAuctionsHandler)
		api.GET("/auction/:id", auctionHandler.GetAuctionByIDHandler)
		api.POST("/auction", auctionHandler.CreateAuctionHandler)
		api.POST("/auction/:id/bid", auctionHandler.PlaceBidHandler)
		api.DELETE("/auction/:id", auctionHandler.DeleteAuctionHandler)
	}

	return router
}
