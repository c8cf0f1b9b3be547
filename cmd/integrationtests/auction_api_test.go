package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"voice-auction/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

func newClock() *testClock {
	return &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// GET /api/auctions
func TestListAuctionsEndpoint(t *testing.T) {
	t.Run("empty_ledger", func(t *testing.T) {
		router := SetupTestRouter(newClock())

		w := ExecuteRequest(t, router, http.MethodGet, "/api/auctions", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("lists_with_derived_fields", func(t *testing.T) {
		clock := newClock()
		router := SetupTestRouter(clock, newTestAuction(clock, "a1", 100), newTestAuction(clock, "a2", 200))

		w := ExecuteRequest(t, router, http.MethodGet, "/api/auctions", nil)
		require.Equal(t, http.StatusOK, w.Code)

		auctions := ParseArray(t, w)
		require.Len(t, auctions, 2)
		// newest first
		require.Equal(t, "a2", auctions[0]["id"])
		require.Equal(t, "a1", auctions[1]["id"])
		require.Equal(t, "active", auctions[0]["status"])
		require.Equal(t, false, auctions[0]["isExpired"])
		require.Equal(t, "1h 0m 0s", auctions[0]["timeLeft"])
	})
}

// GET /api/auction/:id
func TestGetAuctionEndpoint(t *testing.T) {
	clock := newClock()
	router := SetupTestRouter(clock, newTestAuction(clock, "a1", 100))

	t.Run("increments_views_per_get", func(t *testing.T) {
		first := ParseObject(t, ExecuteRequest(t, router, http.MethodGet, "/api/auction/a1", nil))
		second := ParseObject(t, ExecuteRequest(t, router, http.MethodGet, "/api/auction/a1", nil))
		require.Equal(t, 1.0, first["views"])
		require.Equal(t, 2.0, second["views"])
	})

	t.Run("not_found", func(t *testing.T) {
		w := ExecuteRequest(t, router, http.MethodGet, "/api/auction/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Auction not found", ParseObject(t, w)["error"])
	})
}

// POST /api/auction
func TestCreateAuctionEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name: "valid_auction",
			request: helpers.CreateAuctionRequest{
				Title:       "Vintage Camera",
				Description: "A 1960s rangefinder in working order.",
				StartingBid: 5000,
				EndTime:     time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing_fields",
			request: helpers.CreateAuctionRequest{
				Title: "Vintage Camera",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_json",
			request:    "{title: 'missing quotes'}",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouter(newClock())

			w := ExecuteRequest(t, router, http.MethodPost, "/api/auction", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			resp := ParseObject(t, w)
			if tt.wantStatus == http.StatusCreated {
				require.NotEmpty(t, resp["id"])
				require.Equal(t, 5000.0, resp["startingBid"])
				require.Equal(t, 5000.0, resp["currentBid"])
				require.Equal(t, 0.0, resp["bidCount"])
				require.Equal(t, "General", resp["category"])
				require.Equal(t, "Voice Assistant", resp["createdBy"])

				history := resp["history"].([]any)
				require.Len(t, history, 1)
				entry := history[0].(map[string]any)
				require.Equal(t, "System", entry["user"])
				require.Equal(t, 5000.0, entry["bid"])

				// the new auction is listed first
				list := ParseArray(t, ExecuteRequest(t, router, http.MethodGet, "/api/auctions", nil))
				require.Equal(t, resp["id"], list[0]["id"])
			} else {
				require.Equal(t, "Missing required auction fields", resp["error"])
			}
		})
	}
}

// POST /api/auction/:id/bid — the full lifecycle scenario
func TestPlaceBidEndpoint_Lifecycle(t *testing.T) {
	clock := newClock()
	router := SetupTestRouter(clock, newTestAuction(clock, "a1", 1000))

	// Alice outbids the starting bid
	w := ExecuteRequest(t, router, http.MethodPost, "/api/auction/a1/bid", helpers.PlaceBidRequest{User: "Alice", Amount: 1500})
	require.Equal(t, http.StatusOK, w.Code)
	resp := ParseObject(t, w)
	require.Equal(t, "Bid accepted", resp["message"])
	require.Equal(t, 1500.0, resp["currentBid"])

	auctionPayload := resp["auction"].(map[string]any)
	require.Equal(t, 1500.0, auctionPayload["currentBid"])
	require.Equal(t, 1.0, auctionPayload["bidCount"])
	history := auctionPayload["history"].([]any)
	require.Len(t, history, 2)
	last := history[len(history)-1].(map[string]any)
	require.Equal(t, "Alice", last["user"])
	require.Equal(t, 1500.0, last["bid"])

	// Bob bids lower and is told the current bid
	w = ExecuteRequest(t, router, http.MethodPost, "/api/auction/a1/bid", helpers.PlaceBidRequest{User: "Bob", Amount: 1200})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp = ParseObject(t, w)
	require.Equal(t, "Bid must be higher than current bid", resp["error"])
	require.Equal(t, 1500.0, resp["currentBid"])

	// past the end time Carol's higher bid is refused
	clock.Advance(2 * time.Hour)
	w = ExecuteRequest(t, router, http.MethodPost, "/api/auction/a1/bid", helpers.PlaceBidRequest{User: "Carol", Amount: 2000})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp = ParseObject(t, w)
	require.Equal(t, "Auction has ended", resp["error"])
	require.Equal(t, 1500.0, resp["currentBid"])

	// the ended auction reads back frozen with ended semantics
	resp = ParseObject(t, ExecuteRequest(t, router, http.MethodGet, "/api/auction/a1", nil))
	require.Equal(t, 1500.0, resp["currentBid"])
	require.Equal(t, 1.0, resp["bidCount"])
	require.Equal(t, "ended", resp["status"])
	require.Equal(t, true, resp["isExpired"])
	require.Equal(t, "Ended", resp["timeLeft"])
}

// POST /api/auction/:id/bid — remaining edge cases
func TestPlaceBidEndpoint_Errors(t *testing.T) {
	t.Run("auction_not_found", func(t *testing.T) {
		router := SetupTestRouter(newClock())

		w := ExecuteRequest(t, router, http.MethodPost, "/api/auction/missing/bid", helpers.PlaceBidRequest{User: "Alice", Amount: 100})
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Auction not found", ParseObject(t, w)["error"])
	})

	t.Run("anonymous_bidder", func(t *testing.T) {
		clock := newClock()
		router := SetupTestRouter(clock, newTestAuction(clock, "a1", 100))

		w := ExecuteRequest(t, router, http.MethodPost, "/api/auction/a1/bid", helpers.PlaceBidRequest{Amount: 150})
		require.Equal(t, http.StatusOK, w.Code)

		auctionPayload := ParseObject(t, w)["auction"].(map[string]any)
		history := auctionPayload["history"].([]any)
		last := history[len(history)-1].(map[string]any)
		require.Equal(t, "Anonymous", last["user"])
	})

	t.Run("voice_transcript_bid", func(t *testing.T) {
		clock := newClock()
		router := SetupTestRouter(clock, newTestAuction(clock, "a1", 100))

		w := ExecuteRequest(t, router, http.MethodPost, "/api/auction/a1/bid", helpers.PlaceBidRequest{User: "Alice", Transcript: "I bid 250 on this"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 250.0, ParseObject(t, w)["currentBid"])
	})

	t.Run("no_amount_at_all", func(t *testing.T) {
		clock := newClock()
		router := SetupTestRouter(clock, newTestAuction(clock, "a1", 100))

		w := ExecuteRequest(t, router, http.MethodPost, "/api/auction/a1/bid", helpers.PlaceBidRequest{User: "Alice"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := ParseObject(t, w)
		require.Equal(t, "Invalid bid", resp["error"])
		require.Equal(t, 100.0, resp["currentBid"])
	})
}

// DELETE /api/auction/:id
func TestDeleteAuctionEndpoint(t *testing.T) {
	clock := newClock()
	router := SetupTestRouter(clock, newTestAuction(clock, "a1", 100))

	w := ExecuteRequest(t, router, http.MethodDelete, "/api/auction/a1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := ParseObject(t, w)
	require.Equal(t, "Auction deleted", resp["message"])
	require.Equal(t, "a1", resp["auction"].(map[string]any)["id"])

	// a second delete reports not found
	w = ExecuteRequest(t, router, http.MethodDelete, "/api/auction/a1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Auction not found", ParseObject(t, w)["error"])

	// and the listing is empty again
	w = ExecuteRequest(t, router, http.MethodGet, "/api/auctions", nil)
	require.JSONEq(t, "[]", w.Body.String())
}
