package handler

import (
	"errors"
	"net/http"

	auction "voice-auction/internal/auctionService"
	"voice-auction/internal/auctionerrors"
	model "voice-auction/internal/models"
	"voice-auction/services/auction/helpers"
	"voice-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions() []model.AuctionView
	GetAuction(id string) (model.AuctionView, error)
	CreateAuction(in auction.CreateAuctionInput) (model.AuctionView, error)
	PlaceBid(id, bidder string, amount int) (model.AuctionView, error)
	ResolveBidAmount(amount int, transcript string) (int, error)
	CurrentBid(id string) (int, bool)
	DeleteAuction(id string) (model.AuctionView, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// GetAllAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) GetAllAuctionsHandler(c *gin.Context) {
	auctions := h.service.ListAuctions()

	c.JSON(http.StatusOK, auctions)
	helpers.LogSuccess("GetAllAuctionsHandler", "auctions listed", map[string]any{
		"count": len(auctions),
	})
}

// GetAuctionByIDHandler handles GET /api/auction/:id
func (h *AuctionHandler) GetAuctionByIDHandler(c *gin.Context) {
	id := c.Param("id")
	view, err := h.service.GetAuction(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetAuctionByIDHandler: failed to get auction", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, view)
	helpers.LogSuccess("GetAuctionByIDHandler", "auction viewed", map[string]any{
		"auction_id": id,
		"title":      view.Title,
		"views":      view.Views,
	})
}

// CreateAuctionHandler handles POST /api/auction
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", "Missing required auction fields", err)
		return
	}

	view, err := h.service.CreateAuction(auction.CreateAuctionInput{
		Title:       req.Title,
		Description: req.Description,
		StartingBid: req.StartingBid,
		EndTime:     req.EndTime,
		Category:    req.Category,
		Image:       req.Image,
		CreatedBy:   req.CreatedBy,
		Seller:      req.Seller,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("CreateAuctionHandler: failed to create auction", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, view)
	helpers.LogSuccess("CreateAuctionHandler", "auction created", map[string]any{
		"auction_id":   view.ID,
		"title":        view.Title,
		"starting_bid": view.StartingBid,
	})
}

// PlaceBidHandler handles POST /api/auction/:id/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBid(c, id, http.StatusBadRequest, "Invalid bid")
		utils.Warn("PlaceBidHandler: binding error", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}

	amount, err := h.service.ResolveBidAmount(req.Amount, req.Transcript)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		h.rejectBid(c, id, status, message)
		utils.Warn("PlaceBidHandler: no usable bid amount", map[string]any{
			"auction_id": id,
			"transcript": req.Transcript,
			"error":      err.Error(),
		})
		return
	}

	view, err := h.service.PlaceBid(id, req.User, amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			utils.JSONError(c, status, message)
		} else {
			h.rejectBid(c, id, status, message)
		}
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"auction_id": id,
			"user":       req.User,
			"amount":     amount,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.BidAcceptedResponse{
		Message:    "Bid accepted",
		CurrentBid: view.CurrentBid,
		Auction:    view,
	})
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"auction_id":  id,
		"user":        req.User,
		"amount":      amount,
		"current_bid": view.CurrentBid,
		"bid_count":   view.BidCount,
	})
}

// rejectBid reports a bid failure, attaching the auction's current bid when
// it can still be read so the client can re-prompt with a higher amount
func (h *AuctionHandler) rejectBid(c *gin.Context, id string, status int, message string) {
	currentBid, known := h.service.CurrentBid(id)
	utils.JSONBidError(c, status, message, currentBid, known)
}

// DeleteAuctionHandler handles DELETE /api/auction/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	id := c.Param("id")
	view, err := h.service.DeleteAuction(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("DeleteAuctionHandler: failed to delete auction", map[string]any{
			"auction_id": id,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.AuctionDeletedResponse{
		Message: "Auction deleted",
		Auction: view,
	})
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted", map[string]any{
		"auction_id": id,
		"title":      view.Title,
	})
}
