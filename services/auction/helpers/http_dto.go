package helpers

import (
	"time"

	"voice-auction/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartingBid int            `json:"startingBid"`
	EndTime     time.Time      `json:"endTime"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	CreatedBy   string         `json:"createdBy"`
	Seller      *models.Seller `json:"seller"`
}

// PlaceBidRequest carries either an explicit amount or a voice transcript
// the amount is extracted from.
type PlaceBidRequest struct {
	User       string `json:"user"`
	Amount     int    `json:"amount"`
	Transcript string `json:"transcript"`
}

type BidAcceptedResponse struct {
	Message    string             `json:"message"`
	CurrentBid int                `json:"currentBid"`
	Auction    models.AuctionView `json:"auction"`
}

type AuctionDeletedResponse struct {
	Message string             `json:"message"`
	Auction models.AuctionView `json:"auction"`
}
