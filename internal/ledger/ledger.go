package ledger

import (
	"fmt"
	"sync"
	"time"

	"voice-auction/internal/auctionerrors"
	model "voice-auction/internal/models"
)

// AuctionLedger defines the auction storage interface for the auction system
type AuctionLedger interface {
	ListAuctions() []model.AuctionView
	GetAuction(id string) (model.AuctionView, error)
	InsertAuction(a model.Auction) model.AuctionView
	PlaceBid(id, bidder string, amount int) (model.AuctionView, error)
	CurrentBid(id string) (int, bool)
	RemoveAuction(id string) (model.AuctionView, error)
}

// MemoryLedger is a concurrency-safe in-memory implementation of AuctionLedger.
// All writes go through one mutex, so a bid's check-then-act (compare against
// the current bid, then overwrite it) is a single critical section and two
// concurrent bids can never both pass the comparison against a stale value.
type MemoryLedger struct {
	mu       sync.RWMutex
	auctions map[string]*model.Auction // key: auction id
	order    []string                  // iteration order, newest first
	now      func() time.Time
}

// NewMemoryLedger creates a new in-memory ledger instance
func NewMemoryLedger() *MemoryLedger {
	return NewMemoryLedgerWithClock(time.Now)
}

// NewMemoryLedgerWithClock creates a ledger with an injected clock so expiry
// behavior can be tested without real waits
func NewMemoryLedgerWithClock(now func() time.Time) *MemoryLedger {
	return &MemoryLedger{
		auctions: make(map[string]*model.Auction),
		order:    []string{},
		now:      now,
	}
}

// ListAuctions returns snapshots of every auction, newest first. An empty
// ledger yields an empty slice, never nil.
func (l *MemoryLedger) ListAuctions() []model.AuctionView {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := l.now()
	views := make([]model.AuctionView, 0, len(l.order))
	for _, id := range l.order {
		if a, ok := l.auctions[id]; ok {
			views = append(views, a.Snapshot(now))
		}
	}
	return views
}

// GetAuction returns a snapshot of one auction and bumps its view counter.
// Every get counts as a view, including repeat polls from the same client.
func (l *MemoryLedger) GetAuction(id string) (model.AuctionView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[id]
	if !ok {
		return model.AuctionView{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}

	a.Views++
	return a.Snapshot(l.now()), nil
}

// InsertAuction stores the auction at the front of the iteration order and
// returns its snapshot. ID uniqueness is the caller's concern.
func (l *MemoryLedger) InsertAuction(a model.Auction) model.AuctionView {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := a
	l.auctions[stored.ID] = &stored
	l.order = append([]string{stored.ID}, l.order...)

	return stored.Snapshot(l.now())
}

// PlaceBid applies the single guarded state transition of an auction: reject
// when the auction is missing, the amount is not strictly above the current
// bid, or the auction has ended; otherwise bump the current bid and bid count
// and append a history entry, all atomically under the write lock. An empty
// bidder is recorded as "Anonymous".
func (l *MemoryLedger) PlaceBid(id, bidder string, amount int) (model.AuctionView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[id]
	if !ok {
		return model.AuctionView{}, fmt.Errorf("place bid on auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}

	now := l.now()
	if amount <= a.CurrentBid {
		return model.AuctionView{}, fmt.Errorf("place bid on auction %s: %w - current bid is %d", id, auctionerrors.ErrBidTooLow, a.CurrentBid)
	}
	if a.Expired(now) {
		return model.AuctionView{}, fmt.Errorf("place bid on auction %s: %w", id, auctionerrors.ErrAuctionEnded)
	}

	if bidder == "" {
		bidder = "Anonymous"
	}

	a.CurrentBid = amount
	a.BidCount++
	a.History = append(a.History, model.BidRecord{User: bidder, Bid: amount, Time: now})

	return a.Snapshot(now), nil
}

// CurrentBid reports the current bid of an auction, if it still exists. Used
// by the bid endpoint to include the current bid in rejection responses.
func (l *MemoryLedger) CurrentBid(id string) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.auctions[id]
	if !ok {
		return 0, false
	}
	return a.CurrentBid, true
}

// RemoveAuction deletes the auction and returns its final snapshot
func (l *MemoryLedger) RemoveAuction(id string) (model.AuctionView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.auctions[id]
	if !ok {
		return model.AuctionView{}, fmt.Errorf("remove auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}

	removed := a.Snapshot(l.now())
	delete(l.auctions, id)
	for i, ordered := range l.order {
		if ordered == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return removed, nil
}
