package auctionerrors

import "errors"

// Ledger-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
)

// business logic errors
var (
	ErrInvalidAuction = errors.New("missing required auction fields")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid must be higher than current bid")
	ErrAuctionEnded   = errors.New("auction has ended")
)
