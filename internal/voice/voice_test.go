package voice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test ParseBidAmount
func TestParseBidAmount(t *testing.T) {
	t.Parallel()

	// Table-driven test cases
	tests := []struct {
		name       string
		transcript string
		wantAmount int
		wantOK     bool
	}{
		{name: "number_after_bid", transcript: "I want to bid 500 please", wantAmount: 500, wantOK: true},
		{name: "bid_uppercase", transcript: "BID 1200 on the watch", wantAmount: 1200, wantOK: true},
		{name: "fallback_first_number", transcript: "offer 250 for this one", wantAmount: 250, wantOK: true},
		{name: "bid_number_preferred_over_earlier_number", transcript: "lot 3, bid 900", wantAmount: 900, wantOK: true},
		{name: "multiple_numbers_first_wins", transcript: "maybe 100 or 200", wantAmount: 100, wantOK: true},
		{name: "no_number", transcript: "raise my offer a little", wantAmount: 0, wantOK: false},
		{name: "empty_transcript", transcript: "", wantAmount: 0, wantOK: false},
		{name: "bid_without_number_falls_back", transcript: "bid higher than 750", wantAmount: 750, wantOK: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			amount, ok := ParseBidAmount(tc.transcript)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantAmount, amount)
		})
	}
}
