package auction

import (
	"fmt"
	"time"

	"voice-auction/internal/auctionerrors"
	"voice-auction/internal/ledger"
	"voice-auction/internal/models"
	"voice-auction/internal/voice"
	"voice-auction/utils"
)

// Defaults applied to creation fields the caller left empty
const (
	DefaultCategory  = "General"
	DefaultImage     = "https://images.pexels.com/photos/3184298/pexels-photo-3184298.jpeg"
	DefaultCreatedBy = "Voice Assistant"
)

// CreateAuctionInput carries the caller-supplied fields for a new auction.
// Optional fields left zero are defaulted during creation.
type CreateAuctionInput struct {
	Title       string
	Description string
	StartingBid int
	EndTime     time.Time
	Category    string
	Image       string
	CreatedBy   string
	Seller      *models.Seller
}

// AuctionService defines the business logic for the auction ledger
type AuctionService struct {
	ledger ledger.AuctionLedger
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(l ledger.AuctionLedger) *AuctionService {
	return &AuctionService{
		ledger: l,
	}
}

// CreateAuction validates the input and inserts a new auction with its
// current bid at the starting bid and a seeded "System" history entry
func (s *AuctionService) CreateAuction(in CreateAuctionInput) (models.AuctionView, error) {
	if err := validateCreate(in); err != nil {
		return models.AuctionView{}, err
	}

	now := time.Now().UTC()

	seller := models.Seller{Name: "Voice Bot", Rating: 0, Verified: false}
	if in.Seller != nil {
		seller = *in.Seller
	}

	a := models.Auction{
		ID:          utils.GenerateID(),
		Title:       in.Title,
		Description: in.Description,
		StartingBid: in.StartingBid,
		CurrentBid:  in.StartingBid,
		EndTime:     in.EndTime,
		Category:    defaultIfEmpty(in.Category, DefaultCategory),
		Image:       defaultIfEmpty(in.Image, DefaultImage),
		BidCount:    0,
		Seller:      seller,
		History: []models.BidRecord{
			{User: "System", Bid: in.StartingBid, Time: now},
		},
		CreatedAt: now,
		CreatedBy: defaultIfEmpty(in.CreatedBy, DefaultCreatedBy),
	}

	return s.ledger.InsertAuction(a), nil
}

// validateCreate checks the required creation fields
func validateCreate(in CreateAuctionInput) error {
	if in.Title == "" || in.Description == "" {
		return fmt.Errorf("service: %w - missing title or description", auctionerrors.ErrInvalidAuction)
	}
	if in.StartingBid <= 0 {
		return fmt.Errorf("service: %w - starting bid must be positive", auctionerrors.ErrInvalidAuction)
	}
	if in.EndTime.IsZero() {
		return fmt.Errorf("service: %w - missing end time", auctionerrors.ErrInvalidAuction)
	}
	return nil
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ListAuctions returns snapshots of every auction in the ledger
func (s *AuctionService) ListAuctions() []models.AuctionView {
	return s.ledger.ListAuctions()
}

// GetAuction returns one auction's snapshot, counting the read as a view
func (s *AuctionService) GetAuction(id string) (models.AuctionView, error) {
	if id == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrAuctionNotFound)
	}

	view, err := s.ledger.GetAuction(id)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}

	return view, nil
}

// PlaceBid validates the amount and applies the bid through the ledger's
// atomic transition
func (s *AuctionService) PlaceBid(id, bidder string, amount int) (models.AuctionView, error) {
	if id == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrAuctionNotFound)
	}
	if amount <= 0 {
		return models.AuctionView{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}

	view, err := s.ledger.PlaceBid(id, bidder, amount)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to place bid on auction %s: %w", id, err)
	}

	return view, nil
}

// ResolveBidAmount returns the explicit amount when one was given, otherwise
// the amount spoken in the transcript
func (s *AuctionService) ResolveBidAmount(amount int, transcript string) (int, error) {
	if amount > 0 {
		return amount, nil
	}
	if transcript == "" {
		return 0, fmt.Errorf("service: %w - no bid amount provided", auctionerrors.ErrInvalidBid)
	}

	parsed, ok := voice.ParseBidAmount(transcript)
	if !ok {
		return 0, fmt.Errorf("service: %w - no bid amount found in transcript", auctionerrors.ErrInvalidBid)
	}
	return parsed, nil
}

// CurrentBid reports the current bid of an auction for error responses
func (s *AuctionService) CurrentBid(id string) (int, bool) {
	return s.ledger.CurrentBid(id)
}

// DeleteAuction removes the auction and returns its final snapshot
func (s *AuctionService) DeleteAuction(id string) (models.AuctionView, error) {
	if id == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrAuctionNotFound)
	}

	view, err := s.ledger.RemoveAuction(id)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to delete auction %s: %w", id, err)
	}

	return view, nil
}
