package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "voice-auction/internal/auctionService"
	"voice-auction/internal/ledger"
	model "voice-auction/internal/models"
	"voice-auction/internal/server"

	"github.com/gin-gonic/gin"
)

// testClock is a controllable wall clock for driving auction expiry in tests.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// SetupTestRouter initializes the full stack around a controllable clock and
// seeds the ledger with the given auctions.
func SetupTestRouter(clock *testClock, auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := ledger.NewMemoryLedgerWithClock(clock.Now)
	for _, a := range auctions {
		l.InsertAuction(a)
	}

	service := auction.NewAuctionService(l)
	return server.SetupRouter(service)
}

// newTestAuction builds an active auction ending one hour after the clock.
func newTestAuction(clock *testClock, id string, startingBid int) model.Auction {
	return model.Auction{
		ID:          id,
		Title:       "Auction " + id,
		Description: "Integration test auction " + id,
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		EndTime:     clock.Now().Add(1 * time.Hour),
		Category:    "General",
		Seller:      model.Seller{Name: "System", Rating: 5, Verified: true},
		History: []model.BidRecord{
			{User: "System", Bid: startingBid, Time: clock.Now()},
		},
		CreatedAt: clock.Now(),
		CreatedBy: "System",
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseObject unmarshals a JSON object response body.
func ParseObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

// ParseArray unmarshals a JSON array response body.
func ParseArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}
