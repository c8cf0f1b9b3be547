package models

import (
	"fmt"
	"time"
)

// Auction lifecycle states, derived from the end time on every read
const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

// TimeLeftEnded is the sentinel reported once an auction's end time has passed
const TimeLeftEnded = "Ended"

// Seller describes who listed an auction
type Seller struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
}

// BidRecord is one accepted bid in an auction's history
type BidRecord struct {
	User string    `json:"user"`
	Bid  int       `json:"bid"`
	Time time.Time `json:"time"`
}

// Auction is the authoritative record of a single auction lot. History is
// append-only and chronological; the last entry always carries CurrentBid.
type Auction struct {
	ID          string
	Title       string
	Description string
	StartingBid int
	CurrentBid  int
	EndTime     time.Time
	Category    string
	Image       string
	BidCount    int
	Rarity      string
	Views       int
	Likes       int
	IsHot       bool
	IsTrending  bool
	Seller      Seller
	History     []BidRecord
	CreatedAt   time.Time
	CreatedBy   string
}

// Expired reports whether the auction's end time has passed
func (a *Auction) Expired(now time.Time) bool {
	return now.After(a.EndTime)
}

// CurrentStatus derives the lifecycle state from the end time
func (a *Auction) CurrentStatus(now time.Time) string {
	if a.Expired(now) {
		return StatusEnded
	}
	return StatusActive
}

// TimeLeft formats the remaining duration as a component breakdown
// ("2h 5m 30s", with a leading days component for multi-day auctions).
// Once the end time has passed it returns the "Ended" sentinel, never a
// negative duration.
func (a *Auction) TimeLeft(now time.Time) string {
	diff := a.EndTime.Sub(now)
	if diff <= 0 {
		return TimeLeftEnded
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60
	seconds := int(diff.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// AuctionView is the read model served to clients: every stored field plus
// the state derived from the wall clock at snapshot time.
type AuctionView struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartingBid int         `json:"startingBid"`
	CurrentBid  int         `json:"currentBid"`
	EndTime     time.Time   `json:"endTime"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	BidCount    int         `json:"bidCount"`
	Rarity      string      `json:"rarity,omitempty"`
	Views       int         `json:"views"`
	Likes       int         `json:"likes"`
	IsHot       bool        `json:"isHot"`
	IsTrending  bool        `json:"isTrending"`
	Seller      Seller      `json:"seller"`
	History     []BidRecord `json:"history"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	CreatedBy   string      `json:"createdBy"`
	TimeLeft    string      `json:"timeLeft"`
	IsExpired   bool        `json:"isExpired"`
}

// Snapshot returns a read-only view of the auction with derived fields
// computed at now. History is copied so callers never alias ledger state.
func (a *Auction) Snapshot(now time.Time) AuctionView {
	history := make([]BidRecord, len(a.History))
	copy(history, a.History)

	return AuctionView{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		StartingBid: a.StartingBid,
		CurrentBid:  a.CurrentBid,
		EndTime:     a.EndTime,
		Category:    a.Category,
		Image:       a.Image,
		BidCount:    a.BidCount,
		Rarity:      a.Rarity,
		Views:       a.Views,
		Likes:       a.Likes,
		IsHot:       a.IsHot,
		IsTrending:  a.IsTrending,
		Seller:      a.Seller,
		History:     history,
		Status:      a.CurrentStatus(now),
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy,
		TimeLeft:    a.TimeLeft(now),
		IsExpired:   a.Expired(now),
	}
}
