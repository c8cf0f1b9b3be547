package voice

import (
	"regexp"
	"strconv"
)

var (
	bidPattern   = regexp.MustCompile(`(?i)bid\s+(\d+)`)
	digitPattern = regexp.MustCompile(`(\d+)`)
)

// ParseBidAmount extracts a bid amount from a spoken transcript. It prefers
// the number directly after the word "bid" and falls back to the first number
// anywhere in the text. The second return value is false when the transcript
// contains no usable amount.
func ParseBidAmount(transcript string) (int, bool) {
	match := bidPattern.FindStringSubmatch(transcript)
	if match == nil {
		match = digitPattern.FindStringSubmatch(transcript)
	}
	if match == nil {
		return 0, false
	}

	amount, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return amount, true
}
